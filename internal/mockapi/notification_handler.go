package mockapi

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jyush98/jason-co-ecom-sub004/internal/dto"
	"github.com/jyush98/jason-co-ecom-sub004/internal/entity"
)

func (s *Server) getPreferences(ctx *fiber.Ctx) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return ctx.JSON(s.state.preferences)
}

func (s *Server) savePreferences(ctx *fiber.Ctx) error {
	var settings entity.NotificationSettings
	if err := ctx.BodyParser(&settings); err != nil {
		return detail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	switch settings.NotificationFrequency {
	case entity.FrequencyImmediate, entity.FrequencyDaily, entity.FrequencyWeekly:
	default:
		return detail(ctx, fiber.StatusUnprocessableEntity, "Invalid notification frequency")
	}
	if settings.SmsNotifications.Enabled && settings.SmsNotifications.PhoneNumber == "" {
		return detail(ctx, fiber.StatusUnprocessableEntity, "Phone number is required for SMS notifications")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	settings.LastUpdated = &now

	s.state.mu.Lock()
	s.state.preferences = settings
	s.state.mu.Unlock()
	return ctx.JSON(settings)
}

func (s *Server) checkPreference(ctx *fiber.Ctx) error {
	notificationType := ctx.Params("type")

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	enabled := false
	for _, group := range []map[string]bool{
		s.state.preferences.EmailNotifications,
		s.state.preferences.MarketingNotifications,
		s.state.preferences.AccountNotifications,
	} {
		if v, ok := group[notificationType]; ok {
			enabled = v
			break
		}
	}
	return ctx.JSON(dto.NotificationCheckResponse{
		NotificationType: notificationType,
		Enabled:          enabled,
	})
}

func (s *Server) resetPreferences(ctx *fiber.Ctx) error {
	s.state.mu.Lock()
	s.state.preferences = entity.DefaultNotificationSettings()
	s.state.mu.Unlock()
	return ctx.JSON(fiber.Map{"success": true, "message": "Preferences reset to defaults"})
}

func (s *Server) sendTestNotification(ctx *fiber.Ctx) error {
	var req dto.SendTestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return detail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return detail(ctx, fiber.StatusUnprocessableEntity, err.Error())
	}

	if userId, _ := ctx.Locals("user_id").(string); userId != "" {
		s.hub.Send(userId, "test_notification", fiber.Map{
			"notification_type": req.NotificationType,
			"sent_at":           time.Now().UTC().Format(time.RFC3339),
		})
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Test notification sent"})
}

func (s *Server) notificationHistory(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 10)

	entries := []dto.NotificationHistoryEntry{
		{Id: 1, NotificationType: "order_confirmations", Channel: "email", Subject: "Your order is confirmed", SentAt: time.Now().AddDate(0, 0, -2).UTC().Format(time.RFC3339), Status: "delivered"},
		{Id: 2, NotificationType: "shipping_notifications", Channel: "email", Subject: "Your order has shipped", SentAt: time.Now().AddDate(0, 0, -1).UTC().Format(time.RFC3339), Status: "delivered"},
		{Id: 3, NotificationType: "price_drops", Channel: "email", Subject: "A wishlist item dropped in price", SentAt: time.Now().UTC().Format(time.RFC3339), Status: "sent"},
	}
	if limit < len(entries) {
		entries = entries[:limit]
	}
	return ctx.JSON(entries)
}
