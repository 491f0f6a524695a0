package restaurant

import (
	"time"

	"github.com/Tezay/mariam/internal/taxonomy"
)

// Restaurant is a university restaurant (RU). Menus and events belong
// to exactly one restaurant.
type Restaurant struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	Code           string         `json:"code"`
	Address        string         `json:"address,omitempty"`
	IsActive       bool           `json:"is_active"`
	MenuCategories []MenuCategory `json:"menu_categories,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// MenuCategory is one slot of a restaurant's menu layout.
type MenuCategory struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Order int    `json:"order"`
}

// DefaultMenuCategories is used when a restaurant has no custom layout.
var DefaultMenuCategories = []MenuCategory{
	{ID: taxonomy.CategoryEntree, Label: "Entrée", Icon: "salad", Order: 1},
	{ID: taxonomy.CategoryPlat, Label: "Plat principal", Icon: "utensils", Order: 2},
	{ID: taxonomy.CategoryVG, Label: "Option végétarienne", Icon: "leaf", Order: 3},
	{ID: taxonomy.CategoryDessert, Label: "Dessert", Icon: "cake-slice", Order: 4},
}

// Categories returns the configured menu layout, falling back to the default.
func (r *Restaurant) Categories() []MenuCategory {
	if len(r.MenuCategories) > 0 {
		return r.MenuCategories
	}
	return DefaultMenuCategories
}
