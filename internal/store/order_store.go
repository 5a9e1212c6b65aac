package store

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jyush98/jason-co-ecom-sub004/internal/auth"
	"github.com/jyush98/jason-co-ecom-sub004/internal/entity"
	"github.com/jyush98/jason-co-ecom-sub004/internal/pkg/logger"
	"github.com/jyush98/jason-co-ecom-sub004/pkg/api"
)

// OrderStore mirrors the user's order history. Read-only: orders are
// created by checkout, never by this store, so there is nothing to
// speculate about.
type OrderStore struct {
	state  collection[entity.Order]
	api    *api.Client
	tokens auth.TokenSource
	logger logger.ILogger
}

func NewOrderStore(client *api.Client, tokens auth.TokenSource, log logger.ILogger) *OrderStore {
	return &OrderStore{
		api:    client,
		tokens: tokens,
		logger: log,
	}
}

func (s *OrderStore) FetchAll(ctx context.Context, limit, offset int) error {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		s.state.reject(errorMessage(err))
		return err
	}

	s.state.begin()

	params := url.Values{}
	if limit > 0 {
		params.Add("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		params.Add("offset", strconv.Itoa(offset))
	}
	path := "/api/orders"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var orders []entity.Order
	if err := s.api.Get(ctx, path, token, &orders); err != nil {
		s.state.fail(errorMessage(err))
		s.logger.Error("ORDERS", "Failed to fetch orders", map[string]interface{}{"error": err.Error()})
		return err
	}

	s.state.settleWith(orders)
	return nil
}

// Recent returns the most recent order for the confirmation page.
func (s *OrderStore) Recent(ctx context.Context) (entity.Order, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return entity.Order{}, err
	}

	var order entity.Order
	if err := s.api.Get(ctx, "/api/orders/recent", token, &order); err != nil {
		return entity.Order{}, fmt.Errorf("fetch recent order: %w", err)
	}
	return order, nil
}

// GuestLookup finds a guest checkout's order by email. No bearer session
// exists for guests; the endpoint accepts the storefront's public token.
func (s *OrderStore) GuestLookup(ctx context.Context, email string) (entity.Order, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return entity.Order{}, err
	}

	var order entity.Order
	if err := s.api.Get(ctx, "/api/orders/guest/"+url.PathEscape(email), token, &order); err != nil {
		return entity.Order{}, fmt.Errorf("fetch guest order: %w", err)
	}
	return order, nil
}

// ByStatus filters the mirrored history locally.
func (s *OrderStore) ByStatus(status string) []entity.Order {
	matched := make([]entity.Order, 0)
	for _, order := range s.state.Items() {
		if order.Status == status {
			matched = append(matched, order)
		}
	}
	return matched
}

func (s *OrderStore) Items() []entity.Order { return s.state.Items() }
func (s *OrderStore) Len() int              { return s.state.Len() }
func (s *OrderStore) IsLoading() bool       { return s.state.IsLoading() }
func (s *OrderStore) Phase() Phase          { return s.state.Phase() }
func (s *OrderStore) LastError() string     { return s.state.LastError() }
func (s *OrderStore) ClearError()           { s.state.ClearError() }
