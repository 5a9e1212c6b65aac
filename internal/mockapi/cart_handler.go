package mockapi

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jyush98/jason-co-ecom-sub004/internal/dto"
	"github.com/jyush98/jason-co-ecom-sub004/internal/entity"
)

// upsertCartLine merges quantity into an existing line or appends a new
// one. Callers hold state.mu.
func (s *state) upsertCartLine(product entity.Product, quantity int) {
	for i := range s.cart {
		if s.cart[i].ProductId == product.Id {
			s.cart[i].Quantity += quantity
			return
		}
	}
	s.cart = append(s.cart, entity.CartItem{
		Id:        s.nextCartId,
		ProductId: product.Id,
		Quantity:  quantity,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Product:   product,
	})
	s.nextCartId++
}

func (s *Server) listCart(ctx *fiber.Ctx) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return ctx.JSON(s.state.cart)
}

func (s *Server) addCartItem(ctx *fiber.Ctx) error {
	var req dto.CartItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return detail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return detail(ctx, fiber.StatusUnprocessableEntity, err.Error())
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	product, ok := s.state.productById(req.ProductId)
	if !ok {
		return detail(ctx, fiber.StatusNotFound, "Product not found")
	}
	s.state.upsertCartLine(product, req.Quantity)

	s.hub.Broadcast("cart_item_added", req)
	return ctx.JSON(dto.CartMessageResponse{Message: "Item added to cart"})
}

func (s *Server) removeCartItem(ctx *fiber.Ctx) error {
	productId, err := ctx.ParamsInt("productId")
	if err != nil {
		return detail(ctx, fiber.StatusBadRequest, "Invalid product id")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	kept := s.state.cart[:0]
	removed := false
	for _, item := range s.state.cart {
		if item.ProductId == productId {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return detail(ctx, fiber.StatusNotFound, "Item not in cart")
	}
	s.state.cart = kept

	return ctx.JSON(dto.CartMessageResponse{Message: "Item removed from cart"})
}

func (s *Server) updateCartItem(ctx *fiber.Ctx) error {
	var req dto.CartItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return detail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return detail(ctx, fiber.StatusUnprocessableEntity, err.Error())
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if req.Quantity == 0 {
		kept := s.state.cart[:0]
		for _, item := range s.state.cart {
			if item.ProductId != req.ProductId {
				kept = append(kept, item)
			}
		}
		s.state.cart = kept
		return ctx.JSON(dto.CartMessageResponse{Message: "Item removed from cart"})
	}

	for i := range s.state.cart {
		if s.state.cart[i].ProductId == req.ProductId {
			s.state.cart[i].Quantity = req.Quantity
			return ctx.JSON(dto.CartMessageResponse{Message: "Cart updated"})
		}
	}
	return detail(ctx, fiber.StatusNotFound, "Item not in cart")
}

func (s *Server) cartCount(ctx *fiber.Ctx) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	count := 0
	for _, item := range s.state.cart {
		count += item.Quantity
	}
	return ctx.JSON(dto.CartCountResponse{Count: count})
}
