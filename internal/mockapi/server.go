// Package mockapi is a local stand-in for the storefront's production
// backend. It serves the same routes, auth scheme, and error envelope from
// in-memory state, so the client stack can be developed and tested without
// network access to the real API.
package mockapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/jyush98/jason-co-ecom-sub004/internal/config"
	"github.com/jyush98/jason-co-ecom-sub004/internal/pkg/logger"
)

type Server struct {
	app      *fiber.App
	state    *state
	hub      *Hub
	validate *validator.Validate
	cfg      *config.Config
	logger   logger.ILogger
}

func NewServer(cfg *config.Config, log logger.ILogger) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "jason-co-mock-api",
		DisableStartupMessage: true,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return ctx.Status(code).JSON(fiber.Map{"detail": err.Error()})
		},
	})

	s := &Server{
		app:      app,
		state:    newState(),
		hub:      NewHub(log),
		validate: validator.New(),
		cfg:      cfg,
		logger:   log,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	api := s.app.Group("/api", jwtMiddleware(s.cfg.Mock.JWTSecret))

	api.Get("/products", s.listProducts)
	api.Get("/products/:id", s.getProduct)
	api.Get("/categories", s.listCategories)
	api.Get("/collections", s.listCollections)
	api.Get("/collections/:id/products", s.listCollectionProducts)

	api.Get("/wishlist", s.listWishlist)
	api.Post("/wishlist/add", s.addWishlistItem)
	api.Delete("/wishlist/remove/:productId", s.removeWishlistItem)
	api.Put("/wishlist/items/:itemId", s.updateWishlistItem)
	api.Delete("/wishlist/bulk/remove", s.bulkRemoveWishlist)
	api.Post("/wishlist/bulk/add-to-cart", s.bulkAddToCart)
	api.Get("/wishlist/stats", s.wishlistStats)
	api.Get("/wishlist/collections", s.listWishlistCollections)
	api.Post("/wishlist/collections", s.createWishlistCollection)
	api.Delete("/wishlist/collections/:id", s.deleteWishlistCollection)

	api.Get("/cart", s.listCart)
	api.Post("/cart/add", s.addCartItem)
	api.Delete("/cart/remove/:productId", s.removeCartItem)
	api.Patch("/cart/update", s.updateCartItem)
	api.Get("/cart/count", s.cartCount)

	api.Get("/orders", s.listOrders)
	api.Get("/orders/recent", s.recentOrder)
	api.Get("/orders/guest/:email", s.guestOrder)

	api.Get("/custom-orders", s.listCustomOrders)
	api.Post("/custom-orders/submit", s.submitCustomOrder)
	api.Post("/custom-orders/draft", s.saveCustomOrderDraft)
	api.Get("/custom-orders/draft/:email", s.getCustomOrderDraft)
	api.Get("/custom-orders/consultations", s.listConsultations)
	api.Post("/custom-orders/consultations", s.scheduleConsultation)
	api.Get("/custom-orders/:id", s.getCustomOrder)
	api.Put("/custom-orders/:id", s.updateCustomOrder)

	api.Get("/account/notification-preferences", s.getPreferences)
	api.Post("/account/notification-preferences", s.savePreferences)
	api.Get("/account/notification-preferences/check/:type", s.checkPreference)
	api.Delete("/account/notification-preferences/reset", s.resetPreferences)
	api.Post("/account/notification-preferences/send-test", s.sendTestNotification)
	api.Get("/account/notification-preferences/history", s.notificationHistory)

	api.Post("/admin/analytics/revenue", s.revenueAnalytics)
	api.Post("/admin/analytics/customer", s.customerAnalytics)
	api.Post("/admin/analytics/product", s.productAnalytics)
	api.Post("/admin/analytics/geographic", s.geographicAnalytics)

	ws := s.app.Group("/ws", jwtMiddleware(s.cfg.Mock.JWTSecret))
	ws.Use(func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	ws.Get("/notifications", websocket.New(func(conn *websocket.Conn) {
		userId, _ := conn.Locals("user_id").(string)
		serveWs(s.hub, conn, userId)
	}))
}

// Listen blocks serving HTTP until Shutdown.
func (s *Server) Listen() error {
	go s.hub.Run()
	addr := ":" + s.cfg.Mock.Port
	s.logger.Info("MOCKAPI", "Mock API listening", map[string]interface{}{"addr": addr})
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	s.hub.Close()
	return s.app.Shutdown()
}

// App exposes the fiber app for in-process request tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func detail(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(fiber.Map{"detail": message})
}
