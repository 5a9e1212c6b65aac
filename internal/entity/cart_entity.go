package entity

type CartItem struct {
	Id        int     `json:"id"`
	ProductId int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	CreatedAt string  `json:"created_at"`
	Product   Product `json:"product"`
}
