package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"civicpulse/internal/domain/complaint"
	"civicpulse/internal/infrastructure/config"
	"civicpulse/internal/infrastructure/database"
	"civicpulse/internal/infrastructure/pubsub"
	"civicpulse/internal/shared/logger"
)

var env string

type subscriber interface {
	Subscribe(ctx context.Context, handler func(complaint.Event)) error
}

// NewCommand tails the configured event transport and prints one JSON line per
// event until interrupted.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Stream complaint events published by the server",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var bus subscriber
	if cfg.Events.UsesMQTT() {
		client, err := pubsub.ConnectMQTT(pubsub.MQTTConfig{
			BrokerURL: cfg.Events.MQTTBroker,
			ClientID:  cfg.Events.MQTTClientID + "-tail",
		}, log.Named("mqtt"))
		if err != nil {
			return err
		}
		defer client.Disconnect(250)
		bus = pubsub.NewMQTTComplaintEventBus(client, cfg.Events.MQTTTopicPrefix, log.Named("events"))
	} else {
		rdb, err := database.OpenRedis(ctx, &cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()
		bus = pubsub.NewRedisComplaintEventBus(rdb, cfg.Events.Channel, log.Named("events"))
	}

	err = bus.Subscribe(ctx, Printer(cmd.OutOrStdout()))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Printer writes each event as a single JSON line.
func Printer(w io.Writer) func(complaint.Event) {
	enc := json.NewEncoder(w)
	return func(e complaint.Event) {
		_ = enc.Encode(e)
	}
}
