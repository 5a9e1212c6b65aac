package mockapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jyush98/jason-co-ecom-sub004/internal/dto"
)

func (s *Server) listProducts(ctx *fiber.Ctx) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	matched := s.state.filterProducts(
		ctx.Query("category"),
		ctx.Query("search"),
		ctx.QueryBool("featured"),
	)

	page := ctx.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := ctx.QueryInt("pageSize", 20)
	if pageSize < 1 {
		pageSize = 20
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

	totalPages := (total + pageSize - 1) / pageSize
	return ctx.JSON(dto.ProductListResponse{
		Products:   matched[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

func (s *Server) getProduct(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return detail(ctx, fiber.StatusBadRequest, "Invalid product id")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	product, ok := s.state.productById(id)
	if !ok {
		return detail(ctx, fiber.StatusNotFound, "Product not found")
	}
	return ctx.JSON(product)
}

func (s *Server) listCategories(ctx *fiber.Ctx) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return ctx.JSON(s.state.categories)
}

func (s *Server) listCollections(ctx *fiber.Ctx) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return ctx.JSON(s.state.collections)
}

func (s *Server) listCollectionProducts(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return detail(ctx, fiber.StatusBadRequest, "Invalid collection id")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	found := false
	for _, c := range s.state.collections {
		if c.Id == id {
			found = true
			break
		}
	}
	if !found {
		return detail(ctx, fiber.StatusNotFound, "Collection not found")
	}

	// The mock does not model collection membership; every collection
	// serves the featured subset.
	products := s.state.filterProducts("", "", true)
	return ctx.JSON(dto.ProductListResponse{
		Products:   products,
		Total:      len(products),
		Page:       1,
		PageSize:   len(products),
		TotalPages: 1,
	})
}
