package entity

// Wishlist priorities. Lower is more urgent.
const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

// PlaceholderId marks an optimistic local insert that the server has not
// confirmed yet. Reconciliation replaces it with the server-assigned id.
const PlaceholderId = -1

type WishlistItem struct {
	Id             int      `json:"id"`
	ProductId      int      `json:"product_id"`
	Notes          *string  `json:"notes"`
	CollectionName *string  `json:"collection_name"`
	Priority       int      `json:"priority"`
	CreatedAt      string   `json:"created_at"`
	PriceWhenAdded *float64 `json:"price_when_added"`
	Product        Product  `json:"product"`
}

type WishlistStats struct {
	TotalItems        int     `json:"total_items"`
	Collections       int     `json:"collections"`
	TotalValue        float64 `json:"total_value"`
	HighPriorityItems int     `json:"high_priority_items"`
}

// WishlistCollection is a user-defined grouping of wishlist items.
type WishlistCollection struct {
	Id          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Color       string  `json:"color"`
	CreatedAt   string  `json:"created_at"`
	ItemCount   int     `json:"item_count"`
}
