package models

// Product categories the shop knows about.
const (
	CategoryApparel   = "apparel"
	CategoryHomeDecor = "home-decor"
	CategoryBaskets   = "baskets"
	CategoryArt       = "art"
)

// Categories returns the known product categories in display order.
func Categories() []string {
	return []string{CategoryApparel, CategoryHomeDecor, CategoryBaskets, CategoryArt}
}

type Product struct {
	ID          string            `json:"id" validate:"required"`
	Name        string            `json:"name" validate:"required"`
	Price       float64           `json:"price" validate:"gte=0"`
	Category    string            `json:"category" validate:"oneof=apparel home-decor baskets art"`
	Image       string            `json:"image"`
	Description string            `json:"description"`
	Details     map[string]string `json:"details"`
	Care        string            `json:"care"`
	Featured    bool              `json:"featured"`
}
