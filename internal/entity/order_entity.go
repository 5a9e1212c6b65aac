package entity

type OrderItem struct {
	ProductId   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}

type Order struct {
	Id         int         `json:"id"`
	TotalPrice float64     `json:"total_price"`
	Status     string      `json:"status"`
	CreatedAt  string      `json:"created_at"`
	Items      []OrderItem `json:"items"`
}
