package dto

// CartItemRequest serves both add (quantity > 0) and update (quantity 0
// removes the line, matching the server's PATCH semantics).
type CartItemRequest struct {
	ProductId int `json:"product_id" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"gte=0"`
}

type CartCountResponse struct {
	Count int `json:"count"`
}

type CartMessageResponse struct {
	Message string `json:"message"`
}
