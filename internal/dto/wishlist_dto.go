package dto

type AddToWishlistRequest struct {
	ProductId      int     `json:"product_id" validate:"required,gt=0"`
	Notes          *string `json:"notes"`
	CollectionName *string `json:"collection_name"`
	Priority       int     `json:"priority" validate:"omitempty,min=1,max=3"`
}

type UpdateWishlistItemRequest struct {
	Notes          *string `json:"notes"`
	CollectionName *string `json:"collection_name"`
	Priority       *int    `json:"priority" validate:"omitempty,min=1,max=3"`
}

type CreateCollectionRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description"`
	Color       string  `json:"color" validate:"omitempty,hexcolor"`
}

// WishlistFilter narrows a collection read. Zero value = everything.
type WishlistFilter struct {
	Collection string
	Limit      int
	Offset     int
}

type AddToWishlistResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	WishlistItemId int    `json:"wishlist_item_id"`
	ProductName    string `json:"product_name"`
}

type MutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type BulkRemoveResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	RemovedCount   int    `json:"removed_count"`
	RequestedCount int    `json:"requested_count"`
}

type CreateCollectionResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	CollectionId   int    `json:"collection_id"`
	CollectionName string `json:"collection_name"`
}
