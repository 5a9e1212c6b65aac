package dto

import "github.com/jyush98/jason-co-ecom-sub004/internal/entity"

type CustomOrderCreate struct {
	Name               string  `json:"name" validate:"required"`
	Email              string  `json:"email" validate:"required,email"`
	Phone              *string `json:"phone"`
	ProjectType        *string `json:"project_type"`
	StylePreference    *string `json:"style_preference"`
	BudgetRange        *string `json:"budget_range"`
	ProjectDescription *string `json:"project_description"`
}

type CustomOrderFilter struct {
	Status   string
	Page     int
	PageSize int
}

type CustomOrderListResponse struct {
	Items    []entity.CustomOrder `json:"items"`
	Total    int                  `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

type ConsultationRequest struct {
	Name          string  `json:"name" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	PreferredDate string  `json:"preferred_date" validate:"required"`
	Notes         *string `json:"notes"`
	CustomOrderId *int    `json:"custom_order_id"`
}
