package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"civicpulse/internal/domain/complaint"
	"civicpulse/internal/shared/logger"
)

// DefaultMQTTTopicPrefix is the root of the complaint topics:
// <prefix>/filed and <prefix>/status_changed.
const DefaultMQTTTopicPrefix = "civicpulse/complaints"

const (
	mqttQoS            = 1
	mqttPublishTimeout = 3 * time.Second
	mqttConnectTimeout = 10 * time.Second
)

type MQTTConfig struct {
	BrokerURL string
	ClientID  string
}

// ConnectMQTT dials the broker with auto-reconnect enabled. It fails if the
// first connection does not complete within a few seconds.
func ConnectMQTT(cfg MQTTConfig, log logger.Interface) (mqtt.Client, error) {
	if cfg.BrokerURL == "" {
		return nil, errors.New("mqtt broker URL is empty")
	}
	if cfg.ClientID == "" {
		cfg.ClientID = "civicpulse"
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(cfg.ClientID).
		SetConnectTimeout(5 * time.Second).
		SetKeepAlive(30 * time.Second).
		SetAutoReconnect(true)

	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Warnw("mqtt connection lost", "broker", cfg.BrokerURL, "error", err)
	}
	opts.OnConnect = func(_ mqtt.Client) {
		log.Infow("mqtt connected", "broker", cfg.BrokerURL, "client_id", cfg.ClientID)
	}

	client := mqtt.NewClient(opts)
	tok := client.Connect()
	if !tok.WaitTimeout(mqttConnectTimeout) {
		return nil, fmt.Errorf("timed out connecting to mqtt broker %s", cfg.BrokerURL)
	}
	if err := tok.Error(); err != nil {
		return nil, fmt.Errorf("failed to connect to mqtt broker %s: %w", cfg.BrokerURL, err)
	}
	return client, nil
}

// MQTTComplaintEventBus publishes complaint events to per-type MQTT topics,
// for brokers shared with field devices and ward dashboards.
type MQTTComplaintEventBus struct {
	client      mqtt.Client
	topicPrefix string
	logger      logger.Interface
}

func NewMQTTComplaintEventBus(client mqtt.Client, topicPrefix string, logger logger.Interface) *MQTTComplaintEventBus {
	if topicPrefix == "" {
		topicPrefix = DefaultMQTTTopicPrefix
	}
	return &MQTTComplaintEventBus{
		client:      client,
		topicPrefix: strings.TrimSuffix(topicPrefix, "/"),
		logger:      logger,
	}
}

// Topic maps an event type to its topic, e.g. complaint.filed -> <prefix>/filed.
func (b *MQTTComplaintEventBus) Topic(t complaint.EventType) string {
	return b.topicPrefix + "/" + strings.TrimPrefix(string(t), "complaint.")
}

func (b *MQTTComplaintEventBus) Publish(ctx context.Context, event complaint.Event) error {
	if !b.client.IsConnected() {
		return fmt.Errorf("mqtt client not connected")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal complaint event: %w", err)
	}

	topic := b.Topic(event.Type)
	tok := b.client.Publish(topic, mqttQoS, false, data)

	select {
	case <-tok.Done():
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(mqttPublishTimeout):
		return fmt.Errorf("timed out publishing to %s", topic)
	}

	if err := tok.Error(); err != nil {
		b.logger.Errorw("failed to publish complaint event",
			"topic", topic,
			"complaint_id", event.ComplaintID,
			"error", err,
		)
		return fmt.Errorf("failed to publish complaint event: %w", err)
	}

	b.logger.Debugw("complaint event published", "topic", topic, "complaint_id", event.ComplaintID)
	return nil
}

// Subscribe delivers events from every complaint topic to handler until ctx
// is cancelled.
func (b *MQTTComplaintEventBus) Subscribe(ctx context.Context, handler func(complaint.Event)) error {
	filter := b.topicPrefix + "/#"

	tok := b.client.Subscribe(filter, mqttQoS, func(_ mqtt.Client, msg mqtt.Message) {
		var event complaint.Event
		if err := json.Unmarshal(msg.Payload(), &event); err != nil {
			b.logger.Warnw("failed to unmarshal complaint event", "topic", msg.Topic(), "error", err)
			return
		}
		handler(event)
	})
	if !tok.WaitTimeout(mqttConnectTimeout) {
		return fmt.Errorf("timed out subscribing to %s", filter)
	}
	if err := tok.Error(); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", filter, err)
	}

	b.logger.Infow("subscribed to complaint events", "topic", filter)

	<-ctx.Done()
	b.client.Unsubscribe(filter).WaitTimeout(mqttPublishTimeout)
	return ctx.Err()
}
