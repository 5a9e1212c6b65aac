package events

import (
	"context"
	"time"

	"github.com/jyush98/jason-co-ecom-sub004/internal/pkg/logger"
)

// Publisher abstracts event publishing for the domain stores.
type Publisher interface {
	PublishWishlistItemAdded(ctx context.Context, productId int, collectionName string)
	PublishWishlistItemRemoved(ctx context.Context, productId int)
	PublishCartItemAdded(ctx context.Context, productId, quantity int)
	PublishCartItemRemoved(ctx context.Context, productId int)
	PublishCartItemUpdated(ctx context.Context, productId, quantity int)
	PublishCustomOrderSubmitted(ctx context.Context, orderId int, email string)
}

// BusPublisher implements Publisher over the in-process bus.
type BusPublisher struct {
	bus    *Bus
	logger logger.ILogger
}

func NewBusPublisher(bus *Bus, logger logger.ILogger) *BusPublisher {
	return &BusPublisher{
		bus:    bus,
		logger: logger,
	}
}

func (p *BusPublisher) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if p.bus == nil {
		return
	}

	evt := BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}

	if err := p.bus.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}

func (p *BusPublisher) PublishWishlistItemAdded(ctx context.Context, productId int, collectionName string) {
	p.publish(ctx, WishlistItemAdded, map[string]interface{}{
		"product_id":      productId,
		"collection_name": collectionName,
	})
}

func (p *BusPublisher) PublishWishlistItemRemoved(ctx context.Context, productId int) {
	p.publish(ctx, WishlistItemRemoved, map[string]interface{}{
		"product_id": productId,
	})
}

func (p *BusPublisher) PublishCartItemAdded(ctx context.Context, productId, quantity int) {
	p.publish(ctx, CartItemAdded, map[string]interface{}{
		"product_id": productId,
		"quantity":   quantity,
	})
}

func (p *BusPublisher) PublishCartItemRemoved(ctx context.Context, productId int) {
	p.publish(ctx, CartItemRemoved, map[string]interface{}{
		"product_id": productId,
	})
}

func (p *BusPublisher) PublishCartItemUpdated(ctx context.Context, productId, quantity int) {
	p.publish(ctx, CartItemUpdated, map[string]interface{}{
		"product_id": productId,
		"quantity":   quantity,
	})
}

func (p *BusPublisher) PublishCustomOrderSubmitted(ctx context.Context, orderId int, email string) {
	p.publish(ctx, CustomOrderSubmitted, map[string]interface{}{
		"order_id": orderId,
		"email":    email,
	})
}
