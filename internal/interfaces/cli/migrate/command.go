package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"civicpulse/internal/infrastructure/config"
	"civicpulse/internal/infrastructure/database"
	"civicpulse/internal/infrastructure/persistence/migrations"
	"civicpulse/internal/infrastructure/persistence/models"
	"civicpulse/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database schema tools",
		Long:  `Create or inspect the key-value table used by the database storage backend.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Create or update the schema",
		RunE:  runUp,
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show schema status",
		RunE:  runStatus,
	}
}

func initEnv() (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running migrations", "environment", env, "driver", cfg.Database.Driver)

	if err := migrations.MigrateKVTables(database.Get()); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("checking migration status", "environment", env)

	db := database.Get()
	table := models.KVEntryModel{}.TableName()
	exists := db.Migrator().HasTable(&models.KVEntryModel{})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment: %s\n", env)
	fmt.Fprintf(out, "  Driver:      %s\n", cfg.Database.Driver)
	if !exists {
		fmt.Fprintf(out, "  Table %s:  missing\n", table)
		return nil
	}

	var count int64
	if err := db.Model(&models.KVEntryModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count entries: %w", err)
	}
	fmt.Fprintf(out, "  Table %s:  present (%d keys)\n", table, count)

	return nil
}
