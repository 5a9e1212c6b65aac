package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jyush98/jason-co-ecom-sub004/internal/auth"
	"github.com/jyush98/jason-co-ecom-sub004/internal/dto"
	"github.com/jyush98/jason-co-ecom-sub004/internal/entity"
	"github.com/jyush98/jason-co-ecom-sub004/pkg/api"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestProductsCachesPerFilter(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		json.NewEncoder(w).Encode(dto.ProductListResponse{
			Products: []entity.Product{{Id: 1, Name: "Ring"}},
			Total:    1,
		})
	}))
	defer srv.Close()

	s := NewService(api.NewClient(srv.URL), auth.NewStaticTokenSource("tok"), time.Minute, nopLogger{})
	ctx := context.Background()

	first, err := s.Products(ctx, dto.ProductFilter{Category: "rings"})
	assert.NoError(t, err)
	second, err := s.Products(ctx, dto.ProductFilter{Category: "rings"})
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, hits, "second identical read served from cache")

	_, err = s.Products(ctx, dto.ProductFilter{Category: "chains"})
	assert.NoError(t, err)
	assert.Equal(t, 2, hits, "different filter misses the cache")
}

func TestProductQueryEncoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "rings", r.URL.Query().Get("category"))
		assert.Equal(t, "true", r.URL.Query().Get("featured"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		json.NewEncoder(w).Encode(dto.ProductListResponse{})
	}))
	defer srv.Close()

	s := NewService(api.NewClient(srv.URL), auth.NewStaticTokenSource("tok"), time.Minute, nopLogger{})
	_, err := s.Products(context.Background(), dto.ProductFilter{Category: "rings", Featured: true, Page: 2})
	assert.NoError(t, err)
}

func TestInvalidateFlushesCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		json.NewEncoder(w).Encode([]entity.Category{{Id: 1, Name: "Rings", Slug: "rings"}})
	}))
	defer srv.Close()

	s := NewService(api.NewClient(srv.URL), auth.NewStaticTokenSource("tok"), time.Minute, nopLogger{})
	ctx := context.Background()

	_, _ = s.Categories(ctx)
	_, _ = s.Categories(ctx)
	assert.Equal(t, 1, hits)

	s.Invalidate()
	_, _ = s.Categories(ctx)
	assert.Equal(t, 2, hits)
}

func TestProductErrorNotCached(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Product not found"}`))
	}))
	defer srv.Close()

	s := NewService(api.NewClient(srv.URL), auth.NewStaticTokenSource("tok"), time.Minute, nopLogger{})
	ctx := context.Background()

	_, err := s.Product(ctx, 99)
	assert.Error(t, err)
	assert.True(t, api.IsNotFound(err))

	_, _ = s.Product(ctx, 99)
	assert.Equal(t, 2, hits, "failures are retried, not cached")
}
