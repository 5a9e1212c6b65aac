package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jyush98/jason-co-ecom-sub004/internal/dto"
	"github.com/jyush98/jason-co-ecom-sub004/internal/entity"
)

func TestCustomOrderFetchAllReadsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "submitted", r.URL.Query().Get("status"))
		json.NewEncoder(w).Encode(dto.CustomOrderListResponse{
			Items: []entity.CustomOrder{{Id: 1, Status: entity.CustomOrderSubmitted}},
			Total: 14, Page: 1, PageSize: 1,
		})
	}))
	defer srv.Close()

	s := NewCustomOrderStore(testClient(srv.URL), testTokens(), &recordingPublisher{}, nopLogger{})
	err := s.FetchAll(context.Background(), dto.CustomOrderFilter{Status: "submitted", Page: 1, PageSize: 1})

	assert.NoError(t, err)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 14, s.Total(), "server total survives pagination")
}

func TestCustomOrderSubmitSwapsPlaceholder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(entity.CustomOrder{Id: 77, Name: "Ava", Email: "ava@example.com", Status: entity.CustomOrderSubmitted})
	}))
	defer srv.Close()

	pub := &recordingPublisher{}
	s := NewCustomOrderStore(testClient(srv.URL), testTokens(), pub, nopLogger{})

	res := s.Submit(context.Background(), dto.CustomOrderCreate{Name: "Ava", Email: "ava@example.com"})

	assert.True(t, res.Success)
	items := s.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 77, items[0].Id, "placeholder replaced by confirmed record")
	assert.Equal(t, []string{"custom_order_submitted"}, pub.published())
}

func TestCustomOrderSubmitFailureDropsPlaceholder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": "Email is required"}`))
	}))
	defer srv.Close()

	pub := &recordingPublisher{}
	s := NewCustomOrderStore(testClient(srv.URL), testTokens(), pub, nopLogger{})

	res := s.Submit(context.Background(), dto.CustomOrderCreate{Name: "Ava"})

	assert.False(t, res.Success)
	assert.Equal(t, "Email is required", res.Err)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, pub.published())
}

func TestCustomOrderDraftMissIsClean(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "No draft found"}`))
	}))
	defer srv.Close()

	s := NewCustomOrderStore(testClient(srv.URL), testTokens(), &recordingPublisher{}, nopLogger{})
	draft, found, err := s.Draft(context.Background(), "nobody@example.com")

	assert.NoError(t, err, "a 404 draft is an empty form, not an error")
	assert.False(t, found)
	assert.Zero(t, draft.Id)
}

func TestCustomOrderUpdateRollsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail": "boom"}`))
	}))
	defer srv.Close()

	s := NewCustomOrderStore(testClient(srv.URL), testTokens(), &recordingPublisher{}, nopLogger{})
	s.state.mutate(func([]entity.CustomOrder) []entity.CustomOrder {
		return []entity.CustomOrder{{Id: 5, Name: "Before"}}
	})

	res := s.Update(context.Background(), 5, dto.CustomOrderCreate{Name: "After", Email: "a@b.com"})

	assert.False(t, res.Success)
	assert.Equal(t, "Before", s.Items()[0].Name)
}
