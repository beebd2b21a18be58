package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "civicpulse/internal/shared/config"
)

type Config struct {
	Server     sharedConfig.ServerConfig     `mapstructure:"server"`
	Database   sharedConfig.DatabaseConfig   `mapstructure:"database"`
	Logger     sharedConfig.LoggerConfig     `mapstructure:"logger"`
	Redis      sharedConfig.RedisConfig      `mapstructure:"redis"`
	Storage    sharedConfig.StorageConfig    `mapstructure:"storage"`
	Auth       sharedConfig.AuthConfig       `mapstructure:"auth"`
	Submission sharedConfig.SubmissionConfig `mapstructure:"submission"`
	Routing    sharedConfig.RoutingConfig    `mapstructure:"routing"`
	Email      sharedConfig.EmailConfig      `mapstructure:"email"`
	Events     sharedConfig.EventsConfig     `mapstructure:"events"`
	Timezone   sharedConfig.TimezoneConfig   `mapstructure:"timezone"`
	RateLimit  sharedConfig.RateLimitConfig  `mapstructure:"rate_limit"`
}

// NeedsRedis reports whether any enabled component talks to Redis.
func (c *Config) NeedsRedis() bool {
	return c.Storage.Backend == "redis" ||
		(c.Events.Enabled && !c.Events.UsesMQTT()) ||
		c.RateLimit.Enabled
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml (if present) and CIVICPULSE_* environment
// variables. A .env file in the working directory is loaded first; variables
// already set in the process environment win over it. A missing config file
// is not an error; defaults apply.
func Load(env string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("CIVICPULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func validate(c *Config) error {
	switch c.Storage.Backend {
	case "memory", "redis", "database":
	default:
		return fmt.Errorf("invalid storage.backend %q: want memory, redis or database", c.Storage.Backend)
	}
	switch c.Database.Driver {
	case "sqlite", "mysql", "postgres":
	default:
		return fmt.Errorf("invalid database.driver %q: want sqlite, mysql or postgres", c.Database.Driver)
	}
	if c.Submission.PointsPerComplaint <= 0 {
		return fmt.Errorf("submission.points_per_complaint must be positive, got %d", c.Submission.PointsPerComplaint)
	}
	if c.Submission.Delay < 0 {
		return fmt.Errorf("submission.delay must not be negative")
	}
	if c.Auth.AdminWorkID == "" {
		return fmt.Errorf("auth.admin_work_id must be set")
	}
	switch c.Events.Transport {
	case "redis", "mqtt":
	default:
		return fmt.Errorf("invalid events.transport %q: want redis or mqtt", c.Events.Transport)
	}
	if c.Events.Enabled && c.Events.UsesMQTT() && c.Events.MQTTBroker == "" {
		return fmt.Errorf("events.mqtt_broker must be set when events.transport is mqtt")
	}
	if c.RateLimit.Enabled && c.RateLimit.Requests <= 0 {
		return fmt.Errorf("rate_limit.requests must be positive when rate limiting is enabled")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "civicpulse.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "civicpulse")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("storage.backend", "memory")
	v.SetDefault("storage.key_prefix", "civicpulse:")

	v.SetDefault("auth.admin_work_id", "admin123")
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auth.jwt_secret", "change-me-in-production")
	v.SetDefault("auth.session_exp_minutes", 480)

	v.SetDefault("submission.delay", "0s")
	v.SetDefault("submission.points_per_complaint", 20)

	v.SetDefault("routing.rules_file", "")
	v.SetDefault("routing.fallback", "Others")

	v.SetDefault("email.enabled", false)
	v.SetDefault("email.smtp_host", "localhost")
	v.SetDefault("email.smtp_port", 1025)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "noreply@civicpulse.local")
	v.SetDefault("email.from_name", "CivicPulse")

	v.SetDefault("events.enabled", false)
	v.SetDefault("events.transport", "redis")
	v.SetDefault("events.channel", "civicpulse:complaint:events")
	v.SetDefault("events.mqtt_broker", "tcp://localhost:1883")
	v.SetDefault("events.mqtt_client_id", "civicpulse")
	v.SetDefault("events.mqtt_topic_prefix", "civicpulse/complaints")

	v.SetDefault("timezone.business", "UTC")

	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.requests", 10)
	v.SetDefault("rate_limit.window", "1m")
}
