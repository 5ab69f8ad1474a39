package models

type Product struct {
	ID              int       `json:"id"`
	Slug            string    `json:"slug"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	Price           string    `json:"price"`
	DiscountedPrice *string   `json:"discountedPrice"`
	Images          ImageList `json:"images"`
	Image           string    `json:"image"`
	Featured        bool      `json:"featured"`
}
