package http

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	rewardsapp "civicpulse/internal/application/rewards"
	"civicpulse/internal/domain/complaint"
	"civicpulse/internal/infrastructure/auth"
	"civicpulse/internal/infrastructure/config"
	"civicpulse/internal/infrastructure/email"
	"civicpulse/internal/infrastructure/kvstore"
	"civicpulse/internal/infrastructure/pubsub"
	"civicpulse/internal/infrastructure/routing"
	"civicpulse/internal/interfaces/http/middleware"
	"civicpulse/internal/shared/biztime"
	"civicpulse/internal/shared/logger"
	"civicpulse/internal/shared/services/text"
)

// Infrastructure carries the connections opened by the caller. DB is nil
// unless the database backend is selected; Redis is nil unless some enabled
// component needs it. MQTT is set only for the mqtt event transport.
type Infrastructure struct {
	DB    *gorm.DB
	Redis *redis.Client
	MQTT  mqtt.Client
}

// Container wires storage, use cases, handlers and middleware together.
type Container struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface
	infra  Infrastructure
	clock  biztime.Clock

	store      kvstore.Store
	repos      *repositories
	classifier *complaint.Classifier
	textSvc    text.Service
	publisher  complaint.EventPublisher
	notifier   complaint.Notifier
	ledger     *rewardsapp.LedgerService
	jwtSvc     *auth.JWTService
	workIDHash string

	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware *middleware.AuthMiddleware
	submitLimiter  *middleware.RateLimiter
	loginLimiter   *middleware.RateLimiter
}

func NewContainer(cfg *config.Config, infra Infrastructure, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		cfg:    cfg,
		log:    log,
		infra:  infra,
		clock:  biztime.SystemClock(),
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	c.ucs = c.newUseCases()
	c.hdlrs = c.newHandlers()
	c.initMiddlewares()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	store, err := kvstore.New(&cfg.Storage, c.infra.Redis, c.infra.DB)
	if err != nil {
		return fmt.Errorf("failed to create storage backend: %w", err)
	}
	c.store = store
	c.repos = newRepositories(store, log)
	log.Infow("storage backend ready", "backend", cfg.Storage.Backend)

	classifier, err := routing.LoadFile(cfg.Routing.RulesFile, cfg.Routing.Fallback)
	if err != nil {
		return fmt.Errorf("failed to load routing rules: %w", err)
	}
	c.classifier = classifier
	log.Infow("routing rules loaded", "rules", len(classifier.Rules()), "fallback", classifier.Fallback())

	c.textSvc = text.NewService()

	switch {
	case cfg.Events.Enabled && cfg.Events.UsesMQTT() && c.infra.MQTT != nil:
		c.publisher = pubsub.NewMQTTComplaintEventBus(c.infra.MQTT, cfg.Events.MQTTTopicPrefix, log.Named("events"))
		log.Infow("complaint events enabled", "transport", "mqtt", "topic_prefix", cfg.Events.MQTTTopicPrefix)
	case cfg.Events.Enabled && !cfg.Events.UsesMQTT() && c.infra.Redis != nil:
		c.publisher = pubsub.NewRedisComplaintEventBus(c.infra.Redis, cfg.Events.Channel, log.Named("events"))
		log.Infow("complaint events enabled", "transport", "redis", "channel", cfg.Events.Channel)
	default:
		c.publisher = pubsub.NopPublisher{}
	}

	if cfg.Email.Enabled {
		c.notifier = email.NewSMTPNotifier(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
		}, c.textSvc, log.Named("email"))
	} else {
		c.notifier = email.NewLogNotifier(log.Named("email"))
	}

	c.ledger = rewardsapp.NewLedgerService(c.repos.rewardsRepo, log.Named("rewards"))

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	hash, err := hasher.Hash(cfg.Auth.AdminWorkID)
	if err != nil {
		return fmt.Errorf("failed to hash admin work ID: %w", err)
	}
	c.workIDHash = hash
	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWTSecret)

	return nil
}

func (c *Container) initMiddlewares() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log.Named("auth"))

	if c.cfg.RateLimit.Enabled {
		if c.infra.Redis == nil {
			c.log.Warnw("rate limiting requested but Redis is not configured; disabled")
			return
		}
		rl := c.cfg.RateLimit
		c.submitLimiter = middleware.NewRateLimiter(c.infra.Redis, "submit", rl.Requests, rl.Window, c.log)
		c.loginLimiter = middleware.NewRateLimiter(c.infra.Redis, "login", rl.Requests, rl.Window, c.log)
	}
}

func (c *Container) sessionTTL() time.Duration {
	return time.Duration(c.cfg.Auth.SessionExpMinutes) * time.Minute
}

// Engine returns the Gin engine
func (c *Container) Engine() *gin.Engine {
	return c.engine
}
