package mockapi

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jyush98/jason-co-ecom-sub004/internal/dto"
	"github.com/jyush98/jason-co-ecom-sub004/internal/entity"
)

func (s *Server) listOrders(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 0)
	offset := ctx.QueryInt("offset", 0)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	orders := s.state.orders
	if offset > len(orders) {
		offset = len(orders)
	}
	orders = orders[offset:]
	if limit > 0 && limit < len(orders) {
		orders = orders[:limit]
	}
	return ctx.JSON(orders)
}

func (s *Server) recentOrder(ctx *fiber.Ctx) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if len(s.state.orders) == 0 {
		return detail(ctx, fiber.StatusNotFound, "No orders found")
	}
	return ctx.JSON(s.state.orders[0])
}

func (s *Server) guestOrder(ctx *fiber.Ctx) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	// The mock does not track order emails; any known guest gets the
	// latest order back.
	if len(s.state.orders) == 0 {
		return detail(ctx, fiber.StatusNotFound, "No order found for this email")
	}
	return ctx.JSON(s.state.orders[0])
}

func (s *Server) listCustomOrders(ctx *fiber.Ctx) error {
	status := ctx.Query("status")
	page := ctx.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := ctx.QueryInt("page_size", 20)
	if pageSize < 1 {
		pageSize = 20
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	matched := make([]entity.CustomOrder, 0, len(s.state.customOrders))
	for _, order := range s.state.customOrders {
		if status != "" && order.Status != status {
			continue
		}
		matched = append(matched, order)
	}

	total := len(matched)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return ctx.JSON(dto.CustomOrderListResponse{
		Items:    matched[start:end],
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (s *Server) getCustomOrder(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return detail(ctx, fiber.StatusBadRequest, "Invalid order id")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for _, order := range s.state.customOrders {
		if order.Id == id {
			return ctx.JSON(order)
		}
	}
	return detail(ctx, fiber.StatusNotFound, "Custom order not found")
}

func (s *Server) submitCustomOrder(ctx *fiber.Ctx) error {
	var req dto.CustomOrderCreate
	if err := ctx.BodyParser(&req); err != nil {
		return detail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return detail(ctx, fiber.StatusUnprocessableEntity, err.Error())
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	order := entity.CustomOrder{
		Id:                 s.state.nextCustomOrderId,
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		ProjectType:        req.ProjectType,
		StylePreference:    req.StylePreference,
		BudgetRange:        req.BudgetRange,
		ProjectDescription: req.ProjectDescription,
		Status:             entity.CustomOrderSubmitted,
		CreatedAt:          time.Now().UTC().Format(time.RFC3339),
	}
	s.state.nextCustomOrderId++
	s.state.customOrders = append([]entity.CustomOrder{order}, s.state.customOrders...)
	delete(s.state.drafts, req.Email)

	s.hub.Broadcast("custom_order_submitted", order)
	return ctx.JSON(order)
}

func (s *Server) saveCustomOrderDraft(ctx *fiber.Ctx) error {
	var req dto.CustomOrderCreate
	if err := ctx.BodyParser(&req); err != nil {
		return detail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Email == "" {
		return detail(ctx, fiber.StatusUnprocessableEntity, "Email is required to save a draft")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	draft := entity.CustomOrder{
		Id:                 0,
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		ProjectType:        req.ProjectType,
		StylePreference:    req.StylePreference,
		BudgetRange:        req.BudgetRange,
		ProjectDescription: req.ProjectDescription,
		Status:             entity.CustomOrderDraft,
		CreatedAt:          time.Now().UTC().Format(time.RFC3339),
	}
	s.state.drafts[req.Email] = draft
	return ctx.JSON(draft)
}

func (s *Server) getCustomOrderDraft(ctx *fiber.Ctx) error {
	email := ctx.Params("email")

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	draft, ok := s.state.drafts[email]
	if !ok {
		return detail(ctx, fiber.StatusNotFound, "No draft found")
	}
	return ctx.JSON(draft)
}

func (s *Server) updateCustomOrder(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return detail(ctx, fiber.StatusBadRequest, "Invalid order id")
	}

	var req dto.CustomOrderCreate
	if err := ctx.BodyParser(&req); err != nil {
		return detail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return detail(ctx, fiber.StatusUnprocessableEntity, err.Error())
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for i := range s.state.customOrders {
		if s.state.customOrders[i].Id != id {
			continue
		}
		s.state.customOrders[i].Name = req.Name
		s.state.customOrders[i].Email = req.Email
		s.state.customOrders[i].Phone = req.Phone
		s.state.customOrders[i].ProjectType = req.ProjectType
		s.state.customOrders[i].StylePreference = req.StylePreference
		s.state.customOrders[i].BudgetRange = req.BudgetRange
		s.state.customOrders[i].ProjectDescription = req.ProjectDescription
		return ctx.JSON(s.state.customOrders[i])
	}
	return detail(ctx, fiber.StatusNotFound, "Custom order not found")
}

func (s *Server) listConsultations(ctx *fiber.Ctx) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return ctx.JSON(s.state.consultations)
}

func (s *Server) scheduleConsultation(ctx *fiber.Ctx) error {
	var req dto.ConsultationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return detail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return detail(ctx, fiber.StatusUnprocessableEntity, err.Error())
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	consultation := entity.DesignConsultation{
		Id:            len(s.state.consultations) + 1,
		Name:          req.Name,
		Email:         req.Email,
		PreferredDate: req.PreferredDate,
		Notes:         req.Notes,
		CustomOrderId: req.CustomOrderId,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	s.state.consultations = append(s.state.consultations, consultation)
	return ctx.JSON(consultation)
}
