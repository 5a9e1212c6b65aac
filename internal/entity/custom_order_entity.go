package entity

// Custom order lifecycle statuses as the API reports them.
const (
	CustomOrderInquiry    = "inquiry"
	CustomOrderDraft      = "draft"
	CustomOrderSubmitted  = "submitted"
	CustomOrderInProgress = "in_progress"
	CustomOrderCompleted  = "completed"
)

type CustomOrder struct {
	Id                 int                    `json:"id"`
	Name               string                 `json:"name"`
	Email              string                 `json:"email"`
	Phone              *string                `json:"phone"`
	ProjectType        *string                `json:"project_type"`
	StylePreference    *string                `json:"style_preference"`
	BudgetRange        *string                `json:"budget_range"`
	ProjectDescription *string                `json:"project_description"`
	Status             string                 `json:"status"`
	CreatedAt          string                 `json:"created_at"`
	UpdatedAt          *string                `json:"updated_at"`
	Timeline           []CustomOrderMilestone `json:"timeline"`
	Images             []CustomOrderImage     `json:"images"`
}

type CustomOrderMilestone struct {
	Id            int     `json:"id"`
	CustomOrderId int     `json:"custom_order_id"`
	Milestone     string  `json:"milestone"`
	Description   *string `json:"description"`
	IsCompleted   bool    `json:"is_completed"`
}

type CustomOrderImage struct {
	Id            int    `json:"id"`
	CustomOrderId int    `json:"custom_order_id"`
	ImageUrl      string `json:"image_url"`
	ImageType     string `json:"image_type"`
	UploadOrder   int    `json:"upload_order"`
	CreatedAt     string `json:"created_at"`
}

type DesignConsultation struct {
	Id            int     `json:"id"`
	CustomOrderId *int    `json:"custom_order_id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	PreferredDate string  `json:"preferred_date"`
	Notes         *string `json:"notes"`
	CreatedAt     string  `json:"created_at"`
}
