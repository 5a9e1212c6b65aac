// Package notification mirrors the account's notification preference
// document. Unlike the collection stores there is exactly one record, but
// the optimistic-save-and-rollback contract is the same.
package notification

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"github.com/jyush98/jason-co-ecom-sub004/internal/auth"
	"github.com/jyush98/jason-co-ecom-sub004/internal/dto"
	"github.com/jyush98/jason-co-ecom-sub004/internal/entity"
	"github.com/jyush98/jason-co-ecom-sub004/internal/pkg/logger"
	"github.com/jyush98/jason-co-ecom-sub004/pkg/api"
)

const basePath = "/api/account/notification-preferences"

type PreferencesStore struct {
	mu       sync.Mutex
	settings entity.NotificationSettings
	loaded   bool
	lastErr  string

	api    *api.Client
	tokens auth.TokenSource
	logger logger.ILogger
}

func NewPreferencesStore(client *api.Client, tokens auth.TokenSource, log logger.ILogger) *PreferencesStore {
	return &PreferencesStore{
		settings: entity.DefaultNotificationSettings(),
		api:      client,
		tokens:   tokens,
		logger:   log,
	}
}

// Fetch replaces the local document with the server's copy.
func (s *PreferencesStore) Fetch(ctx context.Context) error {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		s.setError(errMessage(err))
		return err
	}

	var settings entity.NotificationSettings
	if err := s.api.Get(ctx, basePath, token, &settings); err != nil {
		s.setError(errMessage(err))
		s.logger.Error("NOTIFICATIONS", "Failed to fetch preferences", map[string]interface{}{"error": err.Error()})
		return err
	}

	s.mu.Lock()
	s.settings = settings
	s.loaded = true
	s.lastErr = ""
	s.mu.Unlock()
	return nil
}

// Save posts the whole document, swapping it in locally first. The
// previous document comes back if the server rejects the write.
func (s *PreferencesStore) Save(ctx context.Context, settings entity.NotificationSettings) error {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		s.setError(errMessage(err))
		return err
	}

	s.mu.Lock()
	previous := s.settings
	s.settings = settings
	s.mu.Unlock()

	if err := s.api.Post(ctx, basePath, token, settings, nil); err != nil {
		s.mu.Lock()
		s.settings = previous
		s.lastErr = errMessage(err)
		s.mu.Unlock()
		s.logger.Error("NOTIFICATIONS", "Failed to save preferences", map[string]interface{}{"error": err.Error()})
		return err
	}

	s.mu.Lock()
	s.loaded = true
	s.lastErr = ""
	s.mu.Unlock()
	return nil
}

// CheckEnabled reports whether a notification type is on for this account.
// Fails safe: any error reads as disabled, because this guards optional
// sends, never required ones.
func (s *PreferencesStore) CheckEnabled(ctx context.Context, notificationType string) bool {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return false
	}

	var resp dto.NotificationCheckResponse
	if err := s.api.Get(ctx, basePath+"/check/"+url.PathEscape(notificationType), token, &resp); err != nil {
		return false
	}
	return resp.Enabled
}

// Reset asks the server to restore defaults and mirrors them locally.
func (s *PreferencesStore) Reset(ctx context.Context) error {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return err
	}

	if err := s.api.Delete(ctx, basePath+"/reset", token, nil, nil); err != nil {
		s.setError(errMessage(err))
		return fmt.Errorf("reset preferences: %w", err)
	}

	s.mu.Lock()
	s.settings = entity.DefaultNotificationSettings()
	s.loaded = true
	s.lastErr = ""
	s.mu.Unlock()
	return nil
}

// SendTest fires a test notification over the configured channels.
func (s *PreferencesStore) SendTest(ctx context.Context, notificationType string) error {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return err
	}

	req := dto.SendTestRequest{NotificationType: notificationType}
	if err := s.api.Post(ctx, basePath+"/send-test", token, req, nil); err != nil {
		return fmt.Errorf("send test notification: %w", err)
	}
	return nil
}

func (s *PreferencesStore) History(ctx context.Context, limit int) ([]dto.NotificationHistoryEntry, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	path := basePath + "/history"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var entries []dto.NotificationHistoryEntry
	if err := s.api.Get(ctx, path, token, &entries); err != nil {
		return nil, fmt.Errorf("fetch notification history: %w", err)
	}
	return entries, nil
}

// Settings returns the current local document (defaults until loaded).
func (s *PreferencesStore) Settings() entity.NotificationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *PreferencesStore) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

func (s *PreferencesStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *PreferencesStore) setError(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}

func errMessage(err error) string {
	var httpErr *api.HTTPError
	switch {
	case errors.Is(err, api.ErrAuthRequired):
		return "Please sign in to continue"
	case errors.As(err, &httpErr):
		if httpErr.Message != "" {
			return httpErr.Message
		}
		return fmt.Sprintf("Request failed (status %d)", httpErr.Status)
	default:
		return "Something went wrong. Please try again."
	}
}
