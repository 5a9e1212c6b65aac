package mockapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/jyush98/jason-co-ecom-sub004/internal/config"
	"github.com/jyush98/jason-co-ecom-sub004/internal/dto"
	"github.com/jyush98/jason-co-ecom-sub004/internal/entity"
)

const testSecret = "test-secret"

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestServer() *Server {
	cfg := &config.Config{}
	cfg.Mock.Port = "0"
	cfg.Mock.JWTSecret = testSecret
	return NewServer(cfg, nopLogger{})
}

func bearer(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "user-1", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return "Bearer " + token
}

func request(t *testing.T, srv *Server, method, path, auth string, body interface{}) *http.Response {
	t.Helper()
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		assert.NoError(t, err)
		payload = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := srv.App().Test(req, -1)
	assert.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestAuthRequired(t *testing.T) {
	srv := newTestServer()

	t.Run("missing token", func(t *testing.T) {
		resp := request(t, srv, http.MethodGet, "/api/cart", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var body map[string]string
		decode(t, resp, &body)
		assert.Equal(t, "Missing token", body["detail"])
	})

	t.Run("garbage token", func(t *testing.T) {
		resp := request(t, srv, http.MethodGet, "/api/cart", "Bearer not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("health is public", func(t *testing.T) {
		resp := request(t, srv, http.MethodGet, "/health", "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestProductListing(t *testing.T) {
	srv := newTestServer()
	auth := bearer(t)

	resp := request(t, srv, http.MethodGet, "/api/products?featured=true", auth, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var page dto.ProductListResponse
	decode(t, resp, &page)
	assert.Equal(t, 2, page.Total)
	for _, p := range page.Products {
		assert.True(t, p.Featured)
	}
}

func TestProductPaginationClampsBadInput(t *testing.T) {
	srv := newTestServer()
	auth := bearer(t)

	for _, path := range []string{
		"/api/products?page=0",
		"/api/products?page=-1",
		"/api/products?pageSize=0",
		"/api/products?page=0&pageSize=0",
	} {
		resp := request(t, srv, http.MethodGet, path, auth, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)

		var page dto.ProductListResponse
		decode(t, resp, &page)
		assert.Equal(t, 4, page.Total, path)
		assert.Len(t, page.Products, 4, path)
		assert.Equal(t, 1, page.Page, path)
	}

	// Same clamping on the custom-orders listing.
	resp := request(t, srv, http.MethodGet, "/api/custom-orders?page=0&page_size=0", auth, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var orders dto.CustomOrderListResponse
	decode(t, resp, &orders)
	assert.Equal(t, 1, orders.Page)
}

func TestWishlistRoundTrip(t *testing.T) {
	srv := newTestServer()
	auth := bearer(t)

	// Add
	resp := request(t, srv, http.MethodPost, "/api/wishlist/add", auth, dto.AddToWishlistRequest{ProductId: 1, Priority: entity.PriorityHigh})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var added dto.AddToWishlistResponse
	decode(t, resp, &added)
	assert.True(t, added.Success)
	assert.Equal(t, "Eternal Solitaire Ring", added.ProductName)

	// Duplicate add conflicts
	resp = request(t, srv, http.MethodPost, "/api/wishlist/add", auth, dto.AddToWishlistRequest{ProductId: 1})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// List
	resp = request(t, srv, http.MethodGet, "/api/wishlist", auth, nil)
	var items []entity.WishlistItem
	decode(t, resp, &items)
	assert.Len(t, items, 1)
	assert.Equal(t, entity.PriorityHigh, items[0].Priority)
	assert.NotNil(t, items[0].PriceWhenAdded)

	// Stats reflect the add
	resp = request(t, srv, http.MethodGet, "/api/wishlist/stats", auth, nil)
	var stats entity.WishlistStats
	decode(t, resp, &stats)
	assert.Equal(t, 1, stats.TotalItems)
	assert.Equal(t, 1, stats.HighPriorityItems)

	// Remove
	resp = request(t, srv, http.MethodDelete, "/api/wishlist/remove/1", auth, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Removing again is a 404
	resp = request(t, srv, http.MethodDelete, "/api/wishlist/remove/1", auth, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestBulkAddToCartMovesWishlistItems(t *testing.T) {
	srv := newTestServer()
	auth := bearer(t)

	resp := request(t, srv, http.MethodPost, "/api/wishlist/add", auth, dto.AddToWishlistRequest{ProductId: 1})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp = request(t, srv, http.MethodPost, "/api/wishlist/add", auth, dto.AddToWishlistRequest{ProductId: 3})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Unknown products are skipped, not an error.
	resp = request(t, srv, http.MethodPost, "/api/wishlist/bulk/add-to-cart", auth, []int{1, 3, 999})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var moved dto.MutationResponse
	decode(t, resp, &moved)
	assert.True(t, moved.Success)
	assert.Equal(t, "Moved 2 items to cart", moved.Message)

	resp = request(t, srv, http.MethodGet, "/api/cart", auth, nil)
	var cart []entity.CartItem
	decode(t, resp, &cart)
	assert.Len(t, cart, 2)
	for _, line := range cart {
		assert.Equal(t, 1, line.Quantity)
	}
}

func TestWishlistValidation(t *testing.T) {
	srv := newTestServer()
	auth := bearer(t)

	resp := request(t, srv, http.MethodPost, "/api/wishlist/add", auth, dto.AddToWishlistRequest{ProductId: 1, Priority: 9})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()
}

func TestCartFlow(t *testing.T) {
	srv := newTestServer()
	auth := bearer(t)

	resp := request(t, srv, http.MethodPost, "/api/cart/add", auth, dto.CartItemRequest{ProductId: 2, Quantity: 1})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Adding again merges the line
	resp = request(t, srv, http.MethodPost, "/api/cart/add", auth, dto.CartItemRequest{ProductId: 2, Quantity: 2})
	resp.Body.Close()

	resp = request(t, srv, http.MethodGet, "/api/cart", auth, nil)
	var items []entity.CartItem
	decode(t, resp, &items)
	assert.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)

	resp = request(t, srv, http.MethodGet, "/api/cart/count", auth, nil)
	var count dto.CartCountResponse
	decode(t, resp, &count)
	assert.Equal(t, 3, count.Count)

	// Quantity zero removes the line
	resp = request(t, srv, http.MethodPatch, "/api/cart/update", auth, dto.CartItemRequest{ProductId: 2, Quantity: 0})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = request(t, srv, http.MethodGet, "/api/cart/count", auth, nil)
	decode(t, resp, &count)
	assert.Equal(t, 0, count.Count)
}

func TestCustomOrderDraftLifecycle(t *testing.T) {
	srv := newTestServer()
	auth := bearer(t)

	email := "ava@example.com"

	// No draft yet
	resp := request(t, srv, http.MethodGet, "/api/custom-orders/draft/"+email, auth, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Save one
	resp = request(t, srv, http.MethodPost, "/api/custom-orders/draft", auth, dto.CustomOrderCreate{Name: "Ava", Email: email})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = request(t, srv, http.MethodGet, "/api/custom-orders/draft/"+email, auth, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var draft entity.CustomOrder
	decode(t, resp, &draft)
	assert.Equal(t, entity.CustomOrderDraft, draft.Status)

	// Submitting clears the draft
	resp = request(t, srv, http.MethodPost, "/api/custom-orders/submit", auth, dto.CustomOrderCreate{Name: "Ava", Email: email})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var order entity.CustomOrder
	decode(t, resp, &order)
	assert.Equal(t, entity.CustomOrderSubmitted, order.Status)
	assert.NotZero(t, order.Id)

	resp = request(t, srv, http.MethodGet, "/api/custom-orders/draft/"+email, auth, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestNotificationPreferenceRoundTrip(t *testing.T) {
	srv := newTestServer()
	auth := bearer(t)

	settings := entity.DefaultNotificationSettings()
	settings.NotificationFrequency = entity.FrequencyWeekly

	resp := request(t, srv, http.MethodPost, "/api/account/notification-preferences", auth, settings)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = request(t, srv, http.MethodGet, "/api/account/notification-preferences", auth, nil)
	var got entity.NotificationSettings
	decode(t, resp, &got)
	assert.Equal(t, entity.FrequencyWeekly, got.NotificationFrequency)
	assert.NotNil(t, got.LastUpdated)

	// Check endpoint reflects the document
	resp = request(t, srv, http.MethodGet, "/api/account/notification-preferences/check/order_confirmations", auth, nil)
	var check dto.NotificationCheckResponse
	decode(t, resp, &check)
	assert.True(t, check.Enabled)

	// Reset restores defaults
	resp = request(t, srv, http.MethodDelete, "/api/account/notification-preferences/reset", auth, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = request(t, srv, http.MethodGet, "/api/account/notification-preferences", auth, nil)
	decode(t, resp, &got)
	assert.Equal(t, entity.FrequencyImmediate, got.NotificationFrequency)
}

func TestSavePreferencesRejectsSmsWithoutPhone(t *testing.T) {
	srv := newTestServer()
	auth := bearer(t)

	settings := entity.DefaultNotificationSettings()
	settings.SmsNotifications.Enabled = true

	resp := request(t, srv, http.MethodPost, "/api/account/notification-preferences", auth, settings)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "Phone number is required for SMS notifications", body["detail"])
}

func TestAnalyticsEndpoints(t *testing.T) {
	srv := newTestServer()
	auth := bearer(t)
	dateRange := dto.DateRange{StartDate: "2026-01-01", EndDate: "2026-01-31"}

	resp := request(t, srv, http.MethodPost, "/api/admin/analytics/revenue", auth, dateRange)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var points []dto.RevenueDataPoint
	decode(t, resp, &points)
	assert.Len(t, points, 7)
	for _, p := range points {
		assert.Equal(t, p.Revenue/p.Orders, p.AvgOrderValue)
	}

	// Missing range is a validation error
	resp = request(t, srv, http.MethodPost, "/api/admin/analytics/customer", auth, map[string]string{})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()
}
