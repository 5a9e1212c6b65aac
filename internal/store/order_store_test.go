package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jyush98/jason-co-ecom-sub004/internal/entity"
)

func TestOrderFetchAllPassesPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "20", r.URL.Query().Get("offset"))
		json.NewEncoder(w).Encode([]entity.Order{
			{Id: 1, Status: "delivered"},
			{Id: 2, Status: "processing"},
		})
	}))
	defer srv.Close()

	s := NewOrderStore(testClient(srv.URL), testTokens(), nopLogger{})
	err := s.FetchAll(context.Background(), 10, 20)

	assert.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, PhaseSettled, s.Phase())
}

func TestOrderByStatusFiltersLocally(t *testing.T) {
	s := NewOrderStore(testClient("http://127.0.0.1:0"), testTokens(), nopLogger{})
	s.state.mutate(func([]entity.Order) []entity.Order {
		return []entity.Order{
			{Id: 1, Status: "delivered"},
			{Id: 2, Status: "processing"},
			{Id: 3, Status: "delivered"},
		}
	})

	delivered := s.ByStatus("delivered")
	assert.Len(t, delivered, 2)
	assert.Empty(t, s.ByStatus("cancelled"))
}

func TestOrderRecent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/recent", r.URL.Path)
		json.NewEncoder(w).Encode(entity.Order{Id: 9, TotalPrice: 980})
	}))
	defer srv.Close()

	s := NewOrderStore(testClient(srv.URL), testTokens(), nopLogger{})
	order, err := s.Recent(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 9, order.Id)
}

func TestOrderGuestLookupEscapesEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/guest/guest@example.com", r.URL.Path)
		json.NewEncoder(w).Encode(entity.Order{Id: 4})
	}))
	defer srv.Close()

	s := NewOrderStore(testClient(srv.URL), testTokens(), nopLogger{})
	order, err := s.GuestLookup(context.Background(), "guest@example.com")

	assert.NoError(t, err)
	assert.Equal(t, 4, order.Id)
}
