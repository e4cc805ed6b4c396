package domain

// Category classifies a catalog product
type Category string

const (
	CategoryOther      Category = "other"
	CategorySoftSkill  Category = "soft-skill"
	CategoryAdditional Category = "additional"
	CategoryButton     Category = "button"
	CategoryHardSkill  Category = "hard-skill"
)

// IsValid checks if the category is valid
func (c Category) IsValid() bool {
	switch c {
	case CategoryOther,
		CategorySoftSkill,
		CategoryAdditional,
		CategoryButton,
		CategoryHardSkill:
		return true
	default:
		return false
	}
}

// Product represents a catalog item. A nil Price means the product is
// priceless and cannot be purchased on its own.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    Category `json:"category"`
	Price       *float64 `json:"price"`
	Selected    bool     `json:"-"`
}

// HasPrice reports whether the product carries a purchasable price
func (p *Product) HasPrice() bool {
	return p.Price != nil
}
