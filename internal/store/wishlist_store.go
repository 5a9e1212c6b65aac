package store

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/jyush98/jason-co-ecom-sub004/internal/auth"
	"github.com/jyush98/jason-co-ecom-sub004/internal/dto"
	"github.com/jyush98/jason-co-ecom-sub004/internal/entity"
	"github.com/jyush98/jason-co-ecom-sub004/internal/events"
	"github.com/jyush98/jason-co-ecom-sub004/internal/pkg/logger"
	"github.com/jyush98/jason-co-ecom-sub004/pkg/api"
)

// WishlistStore mirrors the user's wishlist. It is the representative
// optimistic store: Add/Remove/Update/BulkRemove speculate locally, then
// reconcile against the server or roll back.
type WishlistStore struct {
	state  collection[entity.WishlistItem]
	api    *api.Client
	tokens auth.TokenSource
	events events.Publisher
	logger logger.ILogger

	statsMu  sync.Mutex
	stats    entity.WishlistStats
	hasStats bool
}

func NewWishlistStore(client *api.Client, tokens auth.TokenSource, publisher events.Publisher, log logger.ILogger) *WishlistStore {
	return &WishlistStore{
		api:    client,
		tokens: tokens,
		events: publisher,
		logger: log,
	}
}

// FetchAll replaces the mirrored items wholesale with the server response.
// On failure the previous items stay untouched and only the error surfaces.
func (s *WishlistStore) FetchAll(ctx context.Context, filter dto.WishlistFilter) error {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		s.state.reject(errorMessage(err))
		return err
	}

	s.state.begin()

	var items []entity.WishlistItem
	if err := s.api.Get(ctx, "/api/wishlist"+wishlistQuery(filter), token, &items); err != nil {
		s.state.fail(errorMessage(err))
		s.logger.Error("WISHLIST", "Failed to fetch wishlist", map[string]interface{}{"error": err.Error()})
		return err
	}

	s.state.settleWith(items)
	return nil
}

// Add inserts an optimistic placeholder at the head of the list before the
// request goes out, then re-fetches the collection so the server-assigned
// id supersedes the placeholder. On failure the placeholder is dropped.
func (s *WishlistStore) Add(ctx context.Context, input dto.AddToWishlistRequest) ActionResult {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return failed(err)
	}

	priority := input.Priority
	if priority == 0 {
		priority = entity.PriorityLow
	}

	placeholder := entity.WishlistItem{
		Id:             entity.PlaceholderId,
		ProductId:      input.ProductId,
		Notes:          input.Notes,
		CollectionName: input.CollectionName,
		Priority:       priority,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	s.state.begin()
	s.state.mutate(func(items []entity.WishlistItem) []entity.WishlistItem {
		return append([]entity.WishlistItem{placeholder}, items...)
	})

	var resp dto.AddToWishlistResponse
	if err := s.api.Post(ctx, "/api/wishlist/add", token, input, &resp); err != nil {
		s.state.mutate(func(items []entity.WishlistItem) []entity.WishlistItem {
			// Allocate rather than filter in place: the snapshot and any
			// slice a caller still holds must stay intact.
			kept := make([]entity.WishlistItem, 0, len(items))
			for _, item := range items {
				if item.Id != entity.PlaceholderId {
					kept = append(kept, item)
				}
			}
			return kept
		})
		s.state.fail(errorMessage(err))
		s.logger.Error("WISHLIST", "Failed to add wishlist item", map[string]interface{}{
			"product_id": input.ProductId,
			"error":      err.Error(),
		})
		return failed(err)
	}

	s.state.settle()
	s.events.PublishWishlistItemAdded(ctx, input.ProductId, deref(input.CollectionName))

	// Reconcile: the re-fetch swaps the placeholder for the confirmed record.
	if err := s.FetchAll(ctx, dto.WishlistFilter{}); err != nil {
		s.logger.Warn("WISHLIST", "Reconcile fetch after add failed", map[string]interface{}{"error": err.Error()})
	}

	message := resp.Message
	if message == "" {
		message = "Product added to wishlist"
	}
	return succeeded(message)
}

// Remove optimistically drops every item for the product, then restores the
// snapshot verbatim if the server rejects the delete.
func (s *WishlistStore) Remove(ctx context.Context, productId int) ActionResult {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return failed(err)
	}

	snap := s.state.snapshot()
	s.state.begin()
	s.state.mutate(func(items []entity.WishlistItem) []entity.WishlistItem {
		kept := make([]entity.WishlistItem, 0, len(items))
		for _, item := range items {
			if item.ProductId != productId {
				kept = append(kept, item)
			}
		}
		return kept
	})

	var resp dto.MutationResponse
	if err := s.api.Delete(ctx, "/api/wishlist/remove/"+strconv.Itoa(productId), token, nil, &resp); err != nil {
		s.state.restore(snap)
		s.state.fail(errorMessage(err))
		s.logger.Error("WISHLIST", "Failed to remove wishlist item", map[string]interface{}{
			"product_id": productId,
			"error":      err.Error(),
		})
		return failed(err)
	}

	s.state.settle()
	s.events.PublishWishlistItemRemoved(ctx, productId)
	return succeeded(resp.Message)
}

// Update merges the partial attributes into the matching item before the
// PUT goes out; the snapshot comes back on failure.
func (s *WishlistStore) Update(ctx context.Context, itemId int, patch dto.UpdateWishlistItemRequest) ActionResult {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return failed(err)
	}

	snap := s.state.snapshot()
	s.state.begin()
	s.state.mutate(func(items []entity.WishlistItem) []entity.WishlistItem {
		for i := range items {
			if items[i].Id != itemId {
				continue
			}
			if patch.Notes != nil {
				items[i].Notes = patch.Notes
			}
			if patch.CollectionName != nil {
				items[i].CollectionName = patch.CollectionName
			}
			if patch.Priority != nil {
				items[i].Priority = *patch.Priority
			}
		}
		return items
	})

	var resp dto.MutationResponse
	if err := s.api.Put(ctx, "/api/wishlist/items/"+strconv.Itoa(itemId), token, patch, &resp); err != nil {
		s.state.restore(snap)
		s.state.fail(errorMessage(err))
		s.logger.Error("WISHLIST", "Failed to update wishlist item", map[string]interface{}{
			"wishlist_item_id": itemId,
			"error":            err.Error(),
		})
		return failed(err)
	}

	s.state.settle()
	return succeeded(resp.Message)
}

// BulkRemove drops a whole set of products in one request. On success the
// dashboard stats are refreshed once, since every count they report moved.
func (s *WishlistStore) BulkRemove(ctx context.Context, productIds []int) ActionResult {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return failed(err)
	}

	drop := make(map[int]bool, len(productIds))
	for _, id := range productIds {
		drop[id] = true
	}

	snap := s.state.snapshot()
	s.state.begin()
	s.state.mutate(func(items []entity.WishlistItem) []entity.WishlistItem {
		kept := make([]entity.WishlistItem, 0, len(items))
		for _, item := range items {
			if !drop[item.ProductId] {
				kept = append(kept, item)
			}
		}
		return kept
	})

	var resp dto.BulkRemoveResponse
	if err := s.api.Delete(ctx, "/api/wishlist/bulk/remove", token, productIds, &resp); err != nil {
		s.state.restore(snap)
		s.state.fail(errorMessage(err))
		s.logger.Error("WISHLIST", "Failed to bulk remove wishlist items", map[string]interface{}{
			"requested": len(productIds),
			"error":     err.Error(),
		})
		return failed(err)
	}

	s.state.settle()
	for _, id := range productIds {
		s.events.PublishWishlistItemRemoved(ctx, id)
	}

	if _, err := s.Stats(ctx); err != nil {
		s.logger.Warn("WISHLIST", "Stats refresh after bulk remove failed", map[string]interface{}{"error": err.Error()})
	}

	return succeeded(resp.Message)
}

// BulkAddToCart hands a set of wishlist products to the cart in one
// request. The cart store picks up the change on its next fetch.
func (s *WishlistStore) BulkAddToCart(ctx context.Context, productIds []int) ActionResult {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return failed(err)
	}

	var resp dto.MutationResponse
	if err := s.api.Post(ctx, "/api/wishlist/bulk/add-to-cart", token, productIds, &resp); err != nil {
		s.logger.Error("WISHLIST", "Failed to move wishlist items to cart", map[string]interface{}{"error": err.Error()})
		return failed(err)
	}
	return succeeded(resp.Message)
}

// Stats fetches the precomputed dashboard summary and caches the last one.
func (s *WishlistStore) Stats(ctx context.Context) (entity.WishlistStats, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return entity.WishlistStats{}, err
	}

	var stats entity.WishlistStats
	if err := s.api.Get(ctx, "/api/wishlist/stats", token, &stats); err != nil {
		return entity.WishlistStats{}, fmt.Errorf("fetch wishlist stats: %w", err)
	}

	s.statsMu.Lock()
	s.stats = stats
	s.hasStats = true
	s.statsMu.Unlock()
	return stats, nil
}

// CachedStats returns the last fetched summary without a network call.
func (s *WishlistStore) CachedStats() (entity.WishlistStats, bool) {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()
	return s.stats, s.hasStats
}

// Collections lists the user's wishlist collections.
func (s *WishlistStore) Collections(ctx context.Context) ([]entity.WishlistCollection, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	var collections []entity.WishlistCollection
	if err := s.api.Get(ctx, "/api/wishlist/collections", token, &collections); err != nil {
		return nil, fmt.Errorf("fetch wishlist collections: %w", err)
	}
	return collections, nil
}

func (s *WishlistStore) CreateCollection(ctx context.Context, req dto.CreateCollectionRequest) ActionResult {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return failed(err)
	}

	var resp dto.CreateCollectionResponse
	if err := s.api.Post(ctx, "/api/wishlist/collections", token, req, &resp); err != nil {
		s.logger.Error("WISHLIST", "Failed to create collection", map[string]interface{}{
			"name":  req.Name,
			"error": err.Error(),
		})
		return failed(err)
	}
	return succeeded(resp.Message)
}

// DeleteCollection removes a collection; the server moves its items back to
// "no collection", so a re-fetch keeps them visible.
func (s *WishlistStore) DeleteCollection(ctx context.Context, collectionId int) ActionResult {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return failed(err)
	}

	var resp dto.MutationResponse
	if err := s.api.Delete(ctx, "/api/wishlist/collections/"+strconv.Itoa(collectionId), token, nil, &resp); err != nil {
		return failed(err)
	}

	if err := s.FetchAll(ctx, dto.WishlistFilter{}); err != nil {
		s.logger.Warn("WISHLIST", "Reconcile fetch after collection delete failed", map[string]interface{}{"error": err.Error()})
	}
	return succeeded(resp.Message)
}

// Contains reports whether the product is saved. Pure scan over current
// state; deliberately never fails (guards the heart icon affordance).
func (s *WishlistStore) Contains(productId int) bool {
	for _, item := range s.state.Items() {
		if item.ProductId == productId {
			return true
		}
	}
	return false
}

// ItemByProduct looks up the saved record for a product.
func (s *WishlistStore) ItemByProduct(productId int) (entity.WishlistItem, bool) {
	for _, item := range s.state.Items() {
		if item.ProductId == productId {
			return item, true
		}
	}
	return entity.WishlistItem{}, false
}

// FilterByCollection returns the saved items tagged with the collection,
// in display order.
func (s *WishlistStore) FilterByCollection(name string) []entity.WishlistItem {
	matched := make([]entity.WishlistItem, 0)
	for _, item := range s.state.Items() {
		if item.CollectionName != nil && *item.CollectionName == name {
			matched = append(matched, item)
		}
	}
	return matched
}

func (s *WishlistStore) Items() []entity.WishlistItem { return s.state.Items() }
func (s *WishlistStore) Len() int                     { return s.state.Len() }
func (s *WishlistStore) IsLoading() bool              { return s.state.IsLoading() }
func (s *WishlistStore) Phase() Phase                 { return s.state.Phase() }
func (s *WishlistStore) LastError() string            { return s.state.LastError() }
func (s *WishlistStore) ClearError()                  { s.state.ClearError() }

func wishlistQuery(filter dto.WishlistFilter) string {
	params := url.Values{}
	if filter.Collection != "" {
		params.Add("collection", filter.Collection)
	}
	if filter.Limit > 0 {
		params.Add("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		params.Add("offset", strconv.Itoa(filter.Offset))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
