package shopapi

import "github.com/jafarshop/storefront/internal/domain"

func price(v float64) *float64 {
	return &v
}

// SeedCatalog returns the development catalog. One product is priceless on
// purpose so the priceless flow stays exercised.
func SeedCatalog() []domain.Product {
	return []domain.Product{
		{
			ID:          "854cef69-976d-4c2a-a18c-2aa45046c390",
			Title:       "+1 hour a day",
			Description: "If you are tired, but still plenty to do, buy yourself one more hour.",
			Image:       "/5_Dots.svg",
			Category:    domain.CategorySoftSkill,
			Price:       price(750),
		},
		{
			ID:          "c101ab44-ed99-4a54-990d-47aa2bb4e7d9",
			Title:       "HEX-leprechaun",
			Description: "Lives in trees. Steals only green objects.",
			Image:       "/Shell.svg",
			Category:    domain.CategoryOther,
			Price:       price(1450),
		},
		{
			ID:          "b06cde61-912f-4663-9751-09956c0eed67",
			Title:       "Will-o'-the-wisp",
			Description: "Walks where others fear to. No one has seen it blink.",
			Image:       "/Asterisk_2.svg",
			Category:    domain.CategoryAdditional,
			Price:       nil,
		},
		{
			ID:          "412bcf81-7e75-4e70-bdb9-d3c73c9803b7",
			Title:       "Backend anti-stress",
			Description: "Squeeze it to stop worrying whether your deploy will break production.",
			Image:       "/Polygon.svg",
			Category:    domain.CategoryButton,
			Price:       price(2500),
		},
		{
			ID:          "1c521d84-c48d-48fa-8cfb-9d911fa515fd",
			Title:       "BEM pill",
			Description: "Swallow it and all your blocks fall into elements and modifiers.",
			Image:       "/Pill.svg",
			Category:    domain.CategoryHardSkill,
			Price:       price(1500),
		},
	}
}
