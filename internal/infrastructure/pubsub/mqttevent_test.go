package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicpulse/internal/domain/complaint"
	"civicpulse/internal/shared/logger"
)

// fakeToken completes immediately with err.
type fakeToken struct {
	err  error
	done chan struct{}
}

func newFakeToken(err error) *fakeToken {
	t := &fakeToken{err: err, done: make(chan struct{})}
	close(t.done)
	return t
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{}          { return t.done }
func (t *fakeToken) Error() error                   { return t.err }

type published struct {
	topic   string
	qos     byte
	payload []byte
}

// fakeMQTTClient implements the parts of mqtt.Client the event bus uses.
type fakeMQTTClient struct {
	mqtt.Client
	connected  bool
	publishErr error
	published  []published
	handler    mqtt.MessageHandler
	filter     string
	subscribed chan struct{}
}

func (c *fakeMQTTClient) IsConnected() bool { return c.connected }

func (c *fakeMQTTClient) Publish(topic string, qos byte, _ bool, payload interface{}) mqtt.Token {
	c.published = append(c.published, published{topic: topic, qos: qos, payload: payload.([]byte)})
	return newFakeToken(c.publishErr)
}

func (c *fakeMQTTClient) Subscribe(topic string, _ byte, callback mqtt.MessageHandler) mqtt.Token {
	c.filter = topic
	c.handler = callback
	if c.subscribed != nil {
		close(c.subscribed)
	}
	return newFakeToken(nil)
}

func (c *fakeMQTTClient) Unsubscribe(...string) mqtt.Token { return newFakeToken(nil) }

type fakeMessage struct {
	mqtt.Message
	topic   string
	payload []byte
}

func (m fakeMessage) Topic() string   { return m.topic }
func (m fakeMessage) Payload() []byte { return m.payload }

func TestMQTTComplaintEventBus_Topic(t *testing.T) {
	bus := NewMQTTComplaintEventBus(&fakeMQTTClient{}, "city/ward7/", logger.NewNopLogger())

	assert.Equal(t, "city/ward7/filed", bus.Topic(complaint.EventFiled))
	assert.Equal(t, "city/ward7/status_changed", bus.Topic(complaint.EventStatusChanged))

	bus = NewMQTTComplaintEventBus(&fakeMQTTClient{}, "", logger.NewNopLogger())
	assert.Equal(t, "civicpulse/complaints/filed", bus.Topic(complaint.EventFiled))
}

func TestMQTTComplaintEventBus_Publish(t *testing.T) {
	client := &fakeMQTTClient{connected: true}
	bus := NewMQTTComplaintEventBus(client, "", logger.NewNopLogger())

	sent := complaint.Event{
		Type:        complaint.EventFiled,
		ComplaintID: "k3j9x0a1b",
		Department:  "Sanitation & Drainage",
		NewStatus:   "pending",
		OccurredAt:  time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, bus.Publish(context.Background(), sent))

	require.Len(t, client.published, 1)
	assert.Equal(t, "civicpulse/complaints/filed", client.published[0].topic)
	assert.Equal(t, byte(1), client.published[0].qos)

	var got complaint.Event
	require.NoError(t, json.Unmarshal(client.published[0].payload, &got))
	assert.Equal(t, sent, got)
}

func TestMQTTComplaintEventBus_PublishFailures(t *testing.T) {
	t.Run("not connected", func(t *testing.T) {
		client := &fakeMQTTClient{}
		bus := NewMQTTComplaintEventBus(client, "", logger.NewNopLogger())

		assert.Error(t, bus.Publish(context.Background(), complaint.Event{Type: complaint.EventFiled}))
		assert.Empty(t, client.published)
	})

	t.Run("broker rejects", func(t *testing.T) {
		client := &fakeMQTTClient{connected: true, publishErr: errors.New("not authorized")}
		bus := NewMQTTComplaintEventBus(client, "", logger.NewNopLogger())

		err := bus.Publish(context.Background(), complaint.Event{Type: complaint.EventFiled})
		assert.ErrorContains(t, err, "not authorized")
	})
}

func TestMQTTComplaintEventBus_Subscribe(t *testing.T) {
	client := &fakeMQTTClient{connected: true, subscribed: make(chan struct{})}
	bus := NewMQTTComplaintEventBus(client, "", logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	received := make(chan complaint.Event, 2)
	errc := make(chan error, 1)
	go func() { errc <- bus.Subscribe(ctx, func(e complaint.Event) { received <- e }) }()

	select {
	case <-client.subscribed:
	case <-time.After(time.Second):
		t.Fatal("subscription not made")
	}
	assert.Equal(t, "civicpulse/complaints/#", client.filter)

	payload, err := json.Marshal(complaint.Event{Type: complaint.EventStatusChanged, ComplaintID: "a1", NewStatus: "resolved"})
	require.NoError(t, err)
	client.handler(client, fakeMessage{topic: "civicpulse/complaints/status_changed", payload: []byte("not json")})
	client.handler(client, fakeMessage{topic: "civicpulse/complaints/status_changed", payload: payload})

	select {
	case got := <-received:
		assert.Equal(t, "a1", got.ComplaintID)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}

	cancel()
	assert.ErrorIs(t, <-errc, context.Canceled)
}
