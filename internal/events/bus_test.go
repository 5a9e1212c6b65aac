package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestBusDeliversEnvelope(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	messages, err := bus.Subscribe(ctx)
	assert.NoError(t, err)

	publisher := NewBusPublisher(bus, nopLogger{})
	publisher.PublishWishlistItemAdded(ctx, 10, "Gift Ideas")

	select {
	case msg := <-messages:
		assert.Equal(t, WishlistItemAdded, msg.Metadata.Get("event_type"))

		var env struct {
			Type string                 `json:"type"`
			Data map[string]interface{} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(msg.Payload, &env))
		assert.Equal(t, WishlistItemAdded, env.Type)
		assert.Equal(t, float64(10), env.Data["product_id"])
		assert.Equal(t, "Gift Ideas", env.Data["collection_name"])
		msg.Ack()
	case <-ctx.Done():
		t.Fatal("event not delivered")
	}
}

func TestNilBusPublisherIsSilent(t *testing.T) {
	publisher := NewBusPublisher(nil, nopLogger{})

	// Must not panic; stores publish fire-and-forget.
	publisher.PublishCartItemAdded(context.Background(), 1, 1)
	publisher.PublishCustomOrderSubmitted(context.Background(), 1, "a@b.com")
}
