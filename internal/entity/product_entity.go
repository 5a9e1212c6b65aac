package entity

// Product is the catalog record as the API serves it. Prices are dollars
// on this surface; the analytics endpoints report cents.
type Product struct {
	Id          int      `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       float64  `json:"price"`
	ImageUrl    *string  `json:"image_url"`
	ImageUrls   []string `json:"image_urls"`
	Category    *string  `json:"category"`
	Featured    bool     `json:"featured"`
}

type Category struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Collection here is a merchandising collection (e.g. "Signature"), not a
// wishlist collection.
type Collection struct {
	Id          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}
