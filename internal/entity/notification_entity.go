package entity

// Notification delivery frequencies accepted by the API.
const (
	FrequencyImmediate = "immediate"
	FrequencyDaily     = "daily"
	FrequencyWeekly    = "weekly"
)

type SmsSettings struct {
	Enabled               bool   `json:"enabled"`
	PhoneNumber           string `json:"phone_number"`
	OrderUpdates          bool   `json:"order_updates"`
	ShippingAlerts        bool   `json:"shipping_alerts"`
	DeliveryNotifications bool   `json:"delivery_notifications"`
	SecurityAlerts        bool   `json:"security_alerts"`
}

type QuietHours struct {
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Timezone  string `json:"timezone"`
}

// NotificationSettings is the full preference document. The API reads and
// writes it whole; there is no per-field endpoint.
type NotificationSettings struct {
	EmailNotifications     map[string]bool `json:"email_notifications"`
	MarketingNotifications map[string]bool `json:"marketing_notifications"`
	AccountNotifications   map[string]bool `json:"account_notifications"`
	SmsNotifications       SmsSettings     `json:"sms_notifications"`
	NotificationFrequency  string          `json:"notification_frequency"`
	QuietHours             QuietHours      `json:"quiet_hours"`
	LastUpdated            *string         `json:"last_updated,omitempty"`
}

// DefaultNotificationSettings mirrors the server-side defaults so a brand
// new account renders a sensible form before the first save.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		EmailNotifications: map[string]bool{
			"order_confirmations":    true,
			"order_updates":          true,
			"shipping_notifications": true,
			"delivery_confirmations": true,
			"payment_receipts":       true,
			"returns_refunds":        true,
		},
		MarketingNotifications: map[string]bool{
			"new_products":       false,
			"sales_promotions":   false,
			"exclusive_offers":   true,
			"collection_launches": false,
			"wishlist_updates":   true,
			"price_drops":        true,
			"abandoned_cart":     true,
		},
		AccountNotifications: map[string]bool{
			"security_alerts":  true,
			"password_changes": true,
			"profile_updates":  false,
			"privacy_updates":  true,
		},
		SmsNotifications: SmsSettings{
			SecurityAlerts: true,
		},
		NotificationFrequency: FrequencyImmediate,
		QuietHours: QuietHours{
			StartTime: "22:00",
			EndTime:   "08:00",
			Timezone:  "America/New_York",
		},
	}
}
