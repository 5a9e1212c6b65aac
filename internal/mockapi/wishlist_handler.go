package mockapi

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jyush98/jason-co-ecom-sub004/internal/dto"
	"github.com/jyush98/jason-co-ecom-sub004/internal/entity"
)

func (s *Server) listWishlist(ctx *fiber.Ctx) error {
	collection := ctx.Query("collection")
	limit := ctx.QueryInt("limit", 0)
	offset := ctx.QueryInt("offset", 0)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	items := make([]entity.WishlistItem, 0, len(s.state.wishlist))
	for _, item := range s.state.wishlist {
		if collection != "" && (item.CollectionName == nil || *item.CollectionName != collection) {
			continue
		}
		items = append(items, item)
	}

	if offset > len(items) {
		offset = len(items)
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return ctx.JSON(items)
}

func (s *Server) addWishlistItem(ctx *fiber.Ctx) error {
	var req dto.AddToWishlistRequest
	if err := ctx.BodyParser(&req); err != nil {
		return detail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return detail(ctx, fiber.StatusUnprocessableEntity, err.Error())
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	product, ok := s.state.productById(req.ProductId)
	if !ok {
		return detail(ctx, fiber.StatusNotFound, "Product not found")
	}
	for _, item := range s.state.wishlist {
		if item.ProductId == req.ProductId {
			return detail(ctx, fiber.StatusConflict, "Product already in wishlist")
		}
	}

	priority := req.Priority
	if priority == 0 {
		priority = entity.PriorityLow
	}

	item := entity.WishlistItem{
		Id:             s.state.nextWishlistId,
		ProductId:      req.ProductId,
		Notes:          req.Notes,
		CollectionName: req.CollectionName,
		Priority:       priority,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
		PriceWhenAdded: f64Ptr(product.Price),
		Product:        product,
	}
	s.state.nextWishlistId++
	s.state.wishlist = append([]entity.WishlistItem{item}, s.state.wishlist...)

	s.hub.Broadcast("wishlist_item_added", item)
	return ctx.JSON(dto.AddToWishlistResponse{
		Success:        true,
		Message:        fmt.Sprintf("%s added to wishlist", product.Name),
		WishlistItemId: item.Id,
		ProductName:    product.Name,
	})
}

func (s *Server) removeWishlistItem(ctx *fiber.Ctx) error {
	productId, err := ctx.ParamsInt("productId")
	if err != nil {
		return detail(ctx, fiber.StatusBadRequest, "Invalid product id")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	kept := s.state.wishlist[:0]
	removed := 0
	for _, item := range s.state.wishlist {
		if item.ProductId == productId {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	if removed == 0 {
		return detail(ctx, fiber.StatusNotFound, "Product not in wishlist")
	}
	s.state.wishlist = kept

	return ctx.JSON(dto.MutationResponse{Success: true, Message: "Product removed from wishlist"})
}

func (s *Server) updateWishlistItem(ctx *fiber.Ctx) error {
	itemId, err := ctx.ParamsInt("itemId")
	if err != nil {
		return detail(ctx, fiber.StatusBadRequest, "Invalid item id")
	}

	var req dto.UpdateWishlistItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return detail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return detail(ctx, fiber.StatusUnprocessableEntity, err.Error())
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for i := range s.state.wishlist {
		if s.state.wishlist[i].Id != itemId {
			continue
		}
		if req.Notes != nil {
			s.state.wishlist[i].Notes = req.Notes
		}
		if req.CollectionName != nil {
			s.state.wishlist[i].CollectionName = req.CollectionName
		}
		if req.Priority != nil {
			s.state.wishlist[i].Priority = *req.Priority
		}
		return ctx.JSON(dto.MutationResponse{Success: true, Message: "Wishlist item updated"})
	}
	return detail(ctx, fiber.StatusNotFound, "Wishlist item not found")
}

func (s *Server) bulkRemoveWishlist(ctx *fiber.Ctx) error {
	var productIds []int
	if err := ctx.BodyParser(&productIds); err != nil {
		return detail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	drop := make(map[int]bool, len(productIds))
	for _, id := range productIds {
		drop[id] = true
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	kept := s.state.wishlist[:0]
	removed := 0
	for _, item := range s.state.wishlist {
		if drop[item.ProductId] {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	s.state.wishlist = kept

	return ctx.JSON(dto.BulkRemoveResponse{
		Success:        true,
		Message:        fmt.Sprintf("Removed %d items from wishlist", removed),
		RemovedCount:   removed,
		RequestedCount: len(productIds),
	})
}

func (s *Server) bulkAddToCart(ctx *fiber.Ctx) error {
	var productIds []int
	if err := ctx.BodyParser(&productIds); err != nil {
		return detail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	moved := 0
	for _, productId := range productIds {
		product, ok := s.state.productById(productId)
		if !ok {
			continue
		}
		s.state.upsertCartLine(product, 1)
		moved++
	}

	return ctx.JSON(dto.MutationResponse{
		Success: true,
		Message: fmt.Sprintf("Moved %d items to cart", moved),
	})
}

func (s *Server) wishlistStats(ctx *fiber.Ctx) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	stats := entity.WishlistStats{
		TotalItems:  len(s.state.wishlist),
		Collections: len(s.state.wishlistCollections),
	}
	for _, item := range s.state.wishlist {
		stats.TotalValue += item.Product.Price
		if item.Priority == entity.PriorityHigh {
			stats.HighPriorityItems++
		}
	}
	return ctx.JSON(stats)
}

func (s *Server) listWishlistCollections(ctx *fiber.Ctx) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	collections := make([]entity.WishlistCollection, len(s.state.wishlistCollections))
	copy(collections, s.state.wishlistCollections)
	for i := range collections {
		count := 0
		for _, item := range s.state.wishlist {
			if item.CollectionName != nil && *item.CollectionName == collections[i].Name {
				count++
			}
		}
		collections[i].ItemCount = count
	}
	return ctx.JSON(collections)
}

func (s *Server) createWishlistCollection(ctx *fiber.Ctx) error {
	var req dto.CreateCollectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return detail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return detail(ctx, fiber.StatusUnprocessableEntity, err.Error())
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for _, c := range s.state.wishlistCollections {
		if c.Name == req.Name {
			return detail(ctx, fiber.StatusConflict, "Collection already exists")
		}
	}

	color := req.Color
	if color == "" {
		color = "#D4AF37"
	}
	collection := entity.WishlistCollection{
		Id:          len(s.state.wishlistCollections) + 1,
		Name:        req.Name,
		Description: req.Description,
		Color:       color,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	s.state.wishlistCollections = append(s.state.wishlistCollections, collection)

	return ctx.JSON(dto.CreateCollectionResponse{
		Success:        true,
		Message:        "Collection created",
		CollectionId:   collection.Id,
		CollectionName: collection.Name,
	})
}

func (s *Server) deleteWishlistCollection(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return detail(ctx, fiber.StatusBadRequest, "Invalid collection id")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for i, c := range s.state.wishlistCollections {
		if c.Id != id {
			continue
		}
		// Items fall back to "no collection".
		for j := range s.state.wishlist {
			if s.state.wishlist[j].CollectionName != nil && *s.state.wishlist[j].CollectionName == c.Name {
				s.state.wishlist[j].CollectionName = nil
			}
		}
		s.state.wishlistCollections = append(s.state.wishlistCollections[:i], s.state.wishlistCollections[i+1:]...)
		return ctx.JSON(dto.MutationResponse{Success: true, Message: "Collection deleted"})
	}
	return detail(ctx, fiber.StatusNotFound, "Collection not found")
}
