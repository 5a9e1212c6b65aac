package bootstrap

import (
	"github.com/jyush98/jason-co-ecom-sub004/internal/admin"
	"github.com/jyush98/jason-co-ecom-sub004/internal/auth"
	"github.com/jyush98/jason-co-ecom-sub004/internal/catalog"
	"github.com/jyush98/jason-co-ecom-sub004/internal/config"
	"github.com/jyush98/jason-co-ecom-sub004/internal/events"
	"github.com/jyush98/jason-co-ecom-sub004/internal/notification"
	"github.com/jyush98/jason-co-ecom-sub004/internal/pkg/logger"
	"github.com/jyush98/jason-co-ecom-sub004/internal/store"
	"github.com/jyush98/jason-co-ecom-sub004/pkg/api"
)

// Container wires the whole client data layer. Stores share one API
// client, one token source, and one event bus; callers pick the pieces
// they need.
type Container struct {
	Logger logger.ILogger
	Bus    *events.Bus

	Wishlist     *store.WishlistStore
	Cart         *store.CartStore
	Orders       *store.OrderStore
	CustomOrders *store.CustomOrderStore

	Preferences *notification.PreferencesStore
	Catalog     *catalog.Service
	Analytics   *admin.AnalyticsService
}

func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	bus := events.NewBus()
	publisher := events.NewBusPublisher(bus, sysLogger)

	client := api.NewClient(cfg.API.BaseURL)
	tokens := auth.NewStaticTokenSource(cfg.API.Token)

	return &Container{
		Logger: sysLogger,
		Bus:    bus,

		Wishlist:     store.NewWishlistStore(client, tokens, publisher, sysLogger),
		Cart:         store.NewCartStore(client, tokens, publisher, sysLogger),
		Orders:       store.NewOrderStore(client, tokens, sysLogger),
		CustomOrders: store.NewCustomOrderStore(client, tokens, publisher, sysLogger),

		Preferences: notification.NewPreferencesStore(client, tokens, sysLogger),
		Catalog:     catalog.NewService(client, tokens, cfg.API.CatalogTTL, sysLogger),
		Analytics:   admin.NewAnalyticsService(client, tokens, cfg.API.AnalyticsTTL, sysLogger),
	}
}

// Close releases shared infrastructure.
func (c *Container) Close() error {
	if err := c.Bus.Close(); err != nil {
		return err
	}
	return c.Logger.Sync()
}
