// Package catalog is the read-only product browse client. Catalog reads
// are public, cache-friendly, and hit on nearly every page, so responses
// sit in a short-lived in-process cache.
package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/jyush98/jason-co-ecom-sub004/internal/auth"
	"github.com/jyush98/jason-co-ecom-sub004/internal/dto"
	"github.com/jyush98/jason-co-ecom-sub004/internal/entity"
	"github.com/jyush98/jason-co-ecom-sub004/internal/pkg/logger"
	"github.com/jyush98/jason-co-ecom-sub004/pkg/api"
)

type Service struct {
	api    *api.Client
	tokens auth.TokenSource
	cache  *cache.Cache
	logger logger.ILogger
}

func NewService(client *api.Client, tokens auth.TokenSource, ttl time.Duration, log logger.ILogger) *Service {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Service{
		api:    client,
		tokens: tokens,
		cache:  cache.New(ttl, 10*time.Minute),
		logger: log,
	}
}

func (s *Service) Products(ctx context.Context, filter dto.ProductFilter) (dto.ProductListResponse, error) {
	key := "products:" + productQuery(filter)
	if x, found := s.cache.Get(key); found {
		return x.(dto.ProductListResponse), nil
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return dto.ProductListResponse{}, err
	}

	var resp dto.ProductListResponse
	if err := s.api.Get(ctx, "/api/products"+productQuery(filter), token, &resp); err != nil {
		s.logger.Error("CATALOG", "Failed to fetch products", map[string]interface{}{"error": err.Error()})
		return dto.ProductListResponse{}, fmt.Errorf("fetch products: %w", err)
	}

	s.cache.Set(key, resp, cache.DefaultExpiration)
	return resp, nil
}

func (s *Service) Product(ctx context.Context, productId int) (entity.Product, error) {
	key := "product:" + strconv.Itoa(productId)
	if x, found := s.cache.Get(key); found {
		return x.(entity.Product), nil
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return entity.Product{}, err
	}

	var product entity.Product
	if err := s.api.Get(ctx, "/api/products/"+strconv.Itoa(productId), token, &product); err != nil {
		return entity.Product{}, fmt.Errorf("fetch product %d: %w", productId, err)
	}

	s.cache.Set(key, product, cache.DefaultExpiration)
	return product, nil
}

func (s *Service) Categories(ctx context.Context) ([]entity.Category, error) {
	if x, found := s.cache.Get("categories"); found {
		return x.([]entity.Category), nil
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	var categories []entity.Category
	if err := s.api.Get(ctx, "/api/categories", token, &categories); err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}

	s.cache.Set("categories", categories, cache.DefaultExpiration)
	return categories, nil
}

func (s *Service) Collections(ctx context.Context) ([]entity.Collection, error) {
	if x, found := s.cache.Get("collections"); found {
		return x.([]entity.Collection), nil
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	var collections []entity.Collection
	if err := s.api.Get(ctx, "/api/collections", token, &collections); err != nil {
		return nil, fmt.Errorf("fetch collections: %w", err)
	}

	s.cache.Set("collections", collections, cache.DefaultExpiration)
	return collections, nil
}

func (s *Service) CollectionProducts(ctx context.Context, collectionId int) (dto.ProductListResponse, error) {
	key := "collection-products:" + strconv.Itoa(collectionId)
	if x, found := s.cache.Get(key); found {
		return x.(dto.ProductListResponse), nil
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return dto.ProductListResponse{}, err
	}

	var resp dto.ProductListResponse
	path := "/api/collections/" + strconv.Itoa(collectionId) + "/products"
	if err := s.api.Get(ctx, path, token, &resp); err != nil {
		return dto.ProductListResponse{}, fmt.Errorf("fetch collection products: %w", err)
	}

	s.cache.Set(key, resp, cache.DefaultExpiration)
	return resp, nil
}

// Invalidate drops all cached catalog reads. Admin product edits call this
// so the storefront stops serving the stale page.
func (s *Service) Invalidate() {
	s.cache.Flush()
}

func productQuery(filter dto.ProductFilter) string {
	params := url.Values{}
	if filter.Category != "" {
		params.Add("category", filter.Category)
	}
	if filter.Search != "" {
		params.Add("search", filter.Search)
	}
	if filter.Featured {
		params.Add("featured", "true")
	}
	if filter.Page > 0 {
		params.Add("page", strconv.Itoa(filter.Page))
	}
	if filter.PageSize > 0 {
		params.Add("pageSize", strconv.Itoa(filter.PageSize))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}
