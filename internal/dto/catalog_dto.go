package dto

import "github.com/jyush98/jason-co-ecom-sub004/internal/entity"

type ProductFilter struct {
	Category string
	Search   string
	Featured bool
	Page     int
	PageSize int
}

type ProductListResponse struct {
	Products   []entity.Product `json:"products"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}
