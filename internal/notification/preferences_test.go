package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jyush98/jason-co-ecom-sub004/internal/auth"
	"github.com/jyush98/jason-co-ecom-sub004/internal/entity"
	"github.com/jyush98/jason-co-ecom-sub004/pkg/api"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestStore(baseURL string) *PreferencesStore {
	return NewPreferencesStore(api.NewClient(baseURL), auth.NewStaticTokenSource("tok"), nopLogger{})
}

func TestDefaultsBeforeFirstFetch(t *testing.T) {
	s := newTestStore("http://127.0.0.1:0")

	settings := s.Settings()
	assert.False(t, s.Loaded())
	assert.True(t, settings.EmailNotifications["order_confirmations"])
	assert.False(t, settings.MarketingNotifications["new_products"])
	assert.Equal(t, entity.FrequencyImmediate, settings.NotificationFrequency)
}

func TestFetchReplacesDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		settings := entity.DefaultNotificationSettings()
		settings.NotificationFrequency = entity.FrequencyWeekly
		json.NewEncoder(w).Encode(settings)
	}))
	defer srv.Close()

	s := newTestStore(srv.URL)
	err := s.Fetch(context.Background())

	assert.NoError(t, err)
	assert.True(t, s.Loaded())
	assert.Equal(t, entity.FrequencyWeekly, s.Settings().NotificationFrequency)
}

func TestSaveRollsBackOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": "Phone number is required for SMS notifications"}`))
	}))
	defer srv.Close()

	s := newTestStore(srv.URL)
	before := s.Settings()

	attempted := entity.DefaultNotificationSettings()
	attempted.SmsNotifications.Enabled = true

	err := s.Save(context.Background(), attempted)

	assert.Error(t, err)
	assert.Equal(t, before.SmsNotifications.Enabled, s.Settings().SmsNotifications.Enabled, "rejected write rolled back")
	assert.Equal(t, "Phone number is required for SMS notifications", s.LastError())
}

func TestSaveOptimisticSwap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	s := newTestStore(srv.URL)
	attempted := entity.DefaultNotificationSettings()
	attempted.NotificationFrequency = entity.FrequencyDaily

	err := s.Save(context.Background(), attempted)

	assert.NoError(t, err)
	assert.Equal(t, entity.FrequencyDaily, s.Settings().NotificationFrequency)
	assert.True(t, s.Loaded())
	assert.Empty(t, s.LastError())
}

func TestCheckEnabledFailsSafe(t *testing.T) {
	t.Run("server error reads as disabled", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		s := newTestStore(srv.URL)
		assert.False(t, s.CheckEnabled(context.Background(), "price_drops"))
	})

	t.Run("missing token reads as disabled", func(t *testing.T) {
		s := NewPreferencesStore(api.NewClient("http://127.0.0.1:0"), auth.NewStaticTokenSource(""), nopLogger{})
		assert.False(t, s.CheckEnabled(context.Background(), "price_drops"))
	})

	t.Run("enabled passes through", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/account/notification-preferences/check/price_drops", r.URL.Path)
			w.Write([]byte(`{"notification_type": "price_drops", "enabled": true}`))
		}))
		defer srv.Close()

		s := newTestStore(srv.URL)
		assert.True(t, s.CheckEnabled(context.Background(), "price_drops"))
	})
}

func TestResetRestoresDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	s := newTestStore(srv.URL)
	modified := entity.DefaultNotificationSettings()
	modified.NotificationFrequency = entity.FrequencyWeekly
	s.mu.Lock()
	s.settings = modified
	s.mu.Unlock()

	err := s.Reset(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, entity.FrequencyImmediate, s.Settings().NotificationFrequency)
}
