package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"civicpulse/internal/infrastructure/config"
	"civicpulse/internal/infrastructure/database"
	"civicpulse/internal/infrastructure/persistence/migrations"
	"civicpulse/internal/infrastructure/persistence/models"
	"civicpulse/internal/infrastructure/pubsub"
	httpRouter "civicpulse/internal/interfaces/http"
	"civicpulse/internal/shared/biztime"
	"civicpulse/internal/shared/logger"
	"civicpulse/internal/shared/version"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the CivicPulse HTTP API with the configured storage backend.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Create the key-value table on startup when the database backend is selected")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	ginMode := MapEnvToGinMode(env)

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = ginMode

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Timezone.Business); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	log.Infow("starting server",
		"environment", env,
		"version", version.Current(),
		"storage", cfg.Storage.Backend)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	infra, cleanup, err := openInfrastructure(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	container, err := httpRouter.NewContainer(cfg, infra, log)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	container.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      container.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15*time.Second + cfg.Submission.Delay,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

// openInfrastructure connects only to what the configuration needs. The
// returned cleanup closes every connection that was opened.
func openInfrastructure(ctx context.Context, cfg *config.Config, log logger.Interface) (httpRouter.Infrastructure, func(), error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var infra httpRouter.Infrastructure
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.Storage.Backend == "database" {
		if err := database.Init(&cfg.Database); err != nil {
			return infra, cleanup, fmt.Errorf("failed to initialize database: %w", err)
		}
		closers = append(closers, func() {
			if err := database.Close(); err != nil {
				log.Errorw("failed to close database", "error", err)
			}
		})
		infra.DB = database.Get()

		if err := ensureSchema(infra.DB, log); err != nil {
			cleanup()
			return infra, func() {}, err
		}
	}

	if cfg.NeedsRedis() {
		rdb, err := database.OpenRedis(ctx, &cfg.Redis)
		if err != nil {
			cleanup()
			return infra, func() {}, err
		}
		closers = append(closers, func() { _ = rdb.Close() })
		infra.Redis = rdb
		log.Infow("redis connection established", "address", cfg.Redis.GetAddr())
	}

	if cfg.Events.Enabled && cfg.Events.UsesMQTT() {
		client, err := pubsub.ConnectMQTT(pubsub.MQTTConfig{
			BrokerURL: cfg.Events.MQTTBroker,
			ClientID:  cfg.Events.MQTTClientID,
		}, log.Named("mqtt"))
		if err != nil {
			cleanup()
			return infra, func() {}, err
		}
		closers = append(closers, func() { client.Disconnect(250) })
		infra.MQTT = client
	}

	return infra, cleanup, nil
}

func ensureSchema(db *gorm.DB, log logger.Interface) error {
	if autoMigrate {
		if env == "production" {
			log.Warnw("auto-migration is enabled in production environment - this is not recommended!")
		}
		if err := migrations.MigrateKVTables(db); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		log.Infow("auto-migration completed successfully")
		return nil
	}

	if !db.Migrator().HasTable(&models.KVEntryModel{}) {
		return fmt.Errorf("table %s is missing: run `civicpulse migrate up` or start with --auto-migrate", models.KVEntryModel{}.TableName())
	}
	return nil
}

// MapEnvToGinMode translates an environment name to a gin mode.
func MapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
