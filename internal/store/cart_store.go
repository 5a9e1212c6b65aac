package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jyush98/jason-co-ecom-sub004/internal/auth"
	"github.com/jyush98/jason-co-ecom-sub004/internal/dto"
	"github.com/jyush98/jason-co-ecom-sub004/internal/entity"
	"github.com/jyush98/jason-co-ecom-sub004/internal/events"
	"github.com/jyush98/jason-co-ecom-sub004/internal/pkg/logger"
	"github.com/jyush98/jason-co-ecom-sub004/pkg/api"
)

// CartStore mirrors the shopping cart. Add merges quantity into an
// existing line the same way the server upserts, so the optimistic view
// matches what the next fetch returns.
type CartStore struct {
	state  collection[entity.CartItem]
	api    *api.Client
	tokens auth.TokenSource
	events events.Publisher
	logger logger.ILogger
}

func NewCartStore(client *api.Client, tokens auth.TokenSource, publisher events.Publisher, log logger.ILogger) *CartStore {
	return &CartStore{
		api:    client,
		tokens: tokens,
		events: publisher,
		logger: log,
	}
}

func (s *CartStore) FetchAll(ctx context.Context) error {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		s.state.reject(errorMessage(err))
		return err
	}

	s.state.begin()

	var items []entity.CartItem
	if err := s.api.Get(ctx, "/api/cart", token, &items); err != nil {
		s.state.fail(errorMessage(err))
		s.logger.Error("CART", "Failed to fetch cart", map[string]interface{}{"error": err.Error()})
		return err
	}

	s.state.settleWith(items)
	return nil
}

func (s *CartStore) Add(ctx context.Context, productId, quantity int) ActionResult {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return failed(err)
	}
	if quantity <= 0 {
		quantity = 1
	}

	snap := s.state.snapshot()
	s.state.begin()
	s.state.mutate(func(items []entity.CartItem) []entity.CartItem {
		for i := range items {
			if items[i].ProductId == productId {
				items[i].Quantity += quantity
				return items
			}
		}
		placeholder := entity.CartItem{
			Id:        entity.PlaceholderId,
			ProductId: productId,
			Quantity:  quantity,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}
		return append([]entity.CartItem{placeholder}, items...)
	})

	req := dto.CartItemRequest{ProductId: productId, Quantity: quantity}
	var resp dto.CartMessageResponse
	if err := s.api.Post(ctx, "/api/cart/add", token, req, &resp); err != nil {
		s.state.restore(snap)
		s.state.fail(errorMessage(err))
		s.logger.Error("CART", "Failed to add cart item", map[string]interface{}{
			"product_id": productId,
			"error":      err.Error(),
		})
		return failed(err)
	}

	s.state.settle()
	s.events.PublishCartItemAdded(ctx, productId, quantity)

	if err := s.FetchAll(ctx); err != nil {
		s.logger.Warn("CART", "Reconcile fetch after add failed", map[string]interface{}{"error": err.Error()})
	}
	return succeeded(resp.Message)
}

func (s *CartStore) Remove(ctx context.Context, productId int) ActionResult {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return failed(err)
	}

	snap := s.state.snapshot()
	s.state.begin()
	s.state.mutate(func(items []entity.CartItem) []entity.CartItem {
		kept := make([]entity.CartItem, 0, len(items))
		for _, item := range items {
			if item.ProductId != productId {
				kept = append(kept, item)
			}
		}
		return kept
	})

	var resp dto.CartMessageResponse
	if err := s.api.Delete(ctx, "/api/cart/remove/"+strconv.Itoa(productId), token, nil, &resp); err != nil {
		s.state.restore(snap)
		s.state.fail(errorMessage(err))
		s.logger.Error("CART", "Failed to remove cart item", map[string]interface{}{
			"product_id": productId,
			"error":      err.Error(),
		})
		return failed(err)
	}

	s.state.settle()
	s.events.PublishCartItemRemoved(ctx, productId)
	return succeeded(resp.Message)
}

// UpdateQuantity sets the line quantity; zero removes the line, matching
// the server's PATCH semantics.
func (s *CartStore) UpdateQuantity(ctx context.Context, productId, quantity int) ActionResult {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return failed(err)
	}
	if quantity < 0 {
		return ActionResult{Success: false, Err: "Quantity cannot be negative"}
	}

	snap := s.state.snapshot()
	s.state.begin()
	s.state.mutate(func(items []entity.CartItem) []entity.CartItem {
		if quantity == 0 {
			kept := make([]entity.CartItem, 0, len(items))
			for _, item := range items {
				if item.ProductId != productId {
					kept = append(kept, item)
				}
			}
			return kept
		}
		for i := range items {
			if items[i].ProductId == productId {
				items[i].Quantity = quantity
			}
		}
		return items
	})

	req := dto.CartItemRequest{ProductId: productId, Quantity: quantity}
	var resp dto.CartMessageResponse
	if err := s.api.Patch(ctx, "/api/cart/update", token, req, &resp); err != nil {
		s.state.restore(snap)
		s.state.fail(errorMessage(err))
		s.logger.Error("CART", "Failed to update cart item", map[string]interface{}{
			"product_id": productId,
			"quantity":   quantity,
			"error":      err.Error(),
		})
		return failed(err)
	}

	s.state.settle()
	s.events.PublishCartItemUpdated(ctx, productId, quantity)
	return succeeded(resp.Message)
}

// Count asks the server for the badge count. The navbar polls this before
// the full cart is ever fetched.
func (s *CartStore) Count(ctx context.Context) (int, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return 0, err
	}

	var resp dto.CartCountResponse
	if err := s.api.Get(ctx, "/api/cart/count", token, &resp); err != nil {
		return 0, fmt.Errorf("fetch cart count: %w", err)
	}
	return resp.Count, nil
}

// Subtotal is the local sum over mirrored lines; shipping and tax are the
// checkout API's business.
func (s *CartStore) Subtotal() float64 {
	var total float64
	for _, item := range s.state.Items() {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount sums line quantities from local state.
func (s *CartStore) ItemCount() int {
	var count int
	for _, item := range s.state.Items() {
		count += item.Quantity
	}
	return count
}

// Contains reports whether the product already has a cart line.
func (s *CartStore) Contains(productId int) bool {
	for _, item := range s.state.Items() {
		if item.ProductId == productId {
			return true
		}
	}
	return false
}

func (s *CartStore) Items() []entity.CartItem { return s.state.Items() }
func (s *CartStore) Len() int                 { return s.state.Len() }
func (s *CartStore) IsLoading() bool          { return s.state.IsLoading() }
func (s *CartStore) Phase() Phase             { return s.state.Phase() }
func (s *CartStore) LastError() string        { return s.state.LastError() }
func (s *CartStore) ClearError()              { s.state.ClearError() }
