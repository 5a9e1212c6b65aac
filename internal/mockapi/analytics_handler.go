package mockapi

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jyush98/jason-co-ecom-sub004/internal/dto"
)

// parseDateRange returns a *fiber.Error on bad input; the app error
// handler renders it in the {"detail": ...} envelope.
func (s *Server) parseDateRange(ctx *fiber.Ctx) (dto.DateRange, error) {
	var dateRange dto.DateRange
	if err := ctx.BodyParser(&dateRange); err != nil {
		return dateRange, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.validate.Struct(dateRange); err != nil {
		return dateRange, fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	return dateRange, nil
}

// Analytics figures are cents; the mock synthesizes a stable series so
// dashboard charts render deterministically.
func (s *Server) revenueAnalytics(ctx *fiber.Ctx) error {
	if _, err := s.parseDateRange(ctx); err != nil {
		return err
	}

	points := make([]dto.RevenueDataPoint, 0, 7)
	base := time.Now().AddDate(0, 0, -7)
	for i := 0; i < 7; i++ {
		revenue := 850000 + i*120000
		orders := 3 + i%4
		points = append(points, dto.RevenueDataPoint{
			Date:          base.AddDate(0, 0, i).Format("2006-01-02"),
			Revenue:       revenue,
			Orders:        orders,
			AvgOrderValue: revenue / orders,
			Growth:        float64(i) * 1.5,
		})
	}
	return ctx.JSON(points)
}

func (s *Server) customerAnalytics(ctx *fiber.Ctx) error {
	if _, err := s.parseDateRange(ctx); err != nil {
		return err
	}
	return ctx.JSON(dto.CustomerAnalytics{
		TotalCustomers:        412,
		NewCustomers:          38,
		ReturningCustomers:    374,
		CustomerRetentionRate: 68.4,
		AverageLifetimeValue:  1240000,
	})
}

func (s *Server) productAnalytics(ctx *fiber.Ctx) error {
	if _, err := s.parseDateRange(ctx); err != nil {
		return err
	}
	return ctx.JSON(dto.ProductAnalytics{
		TopProducts: []map[string]interface{}{
			{"productId": 1, "name": "Eternal Solitaire Ring", "revenue": 4200000, "units": 5},
			{"productId": 2, "name": "Cuban Link Chain", "revenue": 1920000, "units": 6},
		},
		CategoryPerformance: []map[string]interface{}{
			{"category": "rings", "revenue": 5100000},
			{"category": "chains", "revenue": 2400000},
		},
		InventoryTurns: 2.3,
	})
}

func (s *Server) geographicAnalytics(ctx *fiber.Ctx) error {
	if _, err := s.parseDateRange(ctx); err != nil {
		return err
	}
	return ctx.JSON(dto.GeographicAnalytics{
		SalesByRegion: []map[string]interface{}{
			{"region": "Northeast", "revenue": 3800000},
			{"region": "West", "revenue": 2100000},
		},
		TopCities: []map[string]interface{}{
			{"city": "New York", "revenue": 2900000},
			{"city": "Los Angeles", "revenue": 1400000},
		},
		CountryBreakdown: []map[string]interface{}{
			{"country": "US", "revenue": 7200000},
			{"country": "CA", "revenue": 600000},
		},
	})
}
