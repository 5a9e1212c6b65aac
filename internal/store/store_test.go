package store

import (
	"context"
	"sync"

	"github.com/jyush98/jason-co-ecom-sub004/internal/auth"
	"github.com/jyush98/jason-co-ecom-sub004/pkg/api"
)

// nopLogger keeps store tests quiet.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// recordingPublisher captures event types in publish order.
type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingPublisher) record(eventType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, eventType)
}

func (r *recordingPublisher) published() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	copy(out, r.events)
	return out
}

func (r *recordingPublisher) PublishWishlistItemAdded(_ context.Context, productId int, collectionName string) {
	r.record("wishlist_item_added")
}
func (r *recordingPublisher) PublishWishlistItemRemoved(_ context.Context, productId int) {
	r.record("wishlist_item_removed")
}
func (r *recordingPublisher) PublishCartItemAdded(_ context.Context, productId, quantity int) {
	r.record("cart_item_added")
}
func (r *recordingPublisher) PublishCartItemRemoved(_ context.Context, productId int) {
	r.record("cart_item_removed")
}
func (r *recordingPublisher) PublishCartItemUpdated(_ context.Context, productId, quantity int) {
	r.record("cart_item_updated")
}
func (r *recordingPublisher) PublishCustomOrderSubmitted(_ context.Context, orderId int, email string) {
	r.record("custom_order_submitted")
}

func testClient(baseURL string) *api.Client {
	return api.NewClient(baseURL)
}

func testTokens() auth.TokenSource {
	return auth.NewStaticTokenSource("opaque-test-token")
}

func emptyTokens() auth.TokenSource {
	return auth.NewStaticTokenSource("")
}
