package views

import (
	"fmt"
	"strings"

	"github.com/jafarshop/storefront/internal/domain"
)

// CardProps is the projection a catalog card renders
type CardProps struct {
	ID       string
	Title    string
	Category domain.Category
	Price    *float64
	Selected bool
}

// Catalog renders the card list with a selection cursor
type Catalog struct {
	items  []CardProps
	cursor int
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// SetItems replaces the rendered card list
func (v *Catalog) SetItems(items []CardProps) {
	v.items = items
	if v.cursor >= len(items) {
		v.cursor = 0
	}
}

// SetCursor moves the selection cursor, clamped to the list bounds
func (v *Catalog) SetCursor(i int) {
	if i < 0 || i >= len(v.items) {
		return
	}
	v.cursor = i
}

// Cursor returns the current cursor position
func (v *Catalog) Cursor() int {
	return v.cursor
}

// Len returns the number of rendered cards
func (v *Catalog) Len() int {
	return len(v.items)
}

// SelectedID returns the id of the card under the cursor, or ""
func (v *Catalog) SelectedID() string {
	if v.cursor < 0 || v.cursor >= len(v.items) {
		return ""
	}
	return v.items[v.cursor].ID
}

func (v *Catalog) Render() string {
	if len(v.items) == 0 {
		return "The catalog is empty.\n"
	}
	b := &strings.Builder{}
	for i, item := range v.items {
		marker := " "
		if i == v.cursor {
			marker = ">"
		}
		inBasket := ""
		if item.Selected {
			inBasket = " [in basket]"
		}
		fmt.Fprintf(b, " %s [%s] %s - %s%s\n", marker, item.Category, item.Title, FormatPrice(item.Price), inBasket)
	}
	return b.String()
}

// PreviewProps is the projection the product detail view renders
type PreviewProps struct {
	ID          string
	Title       string
	Description string
	Category    domain.Category
	Price       *float64
	Selected    bool
}

// Preview renders the product detail card with an add-to-basket affordance
type Preview struct {
	props PreviewProps
}

func NewPreview() *Preview {
	return &Preview{}
}

// Set replaces the rendered product projection
func (v *Preview) Set(props PreviewProps) {
	v.props = props
}

// ProductID returns the id of the displayed product
func (v *Preview) ProductID() string {
	return v.props.ID
}

func (v *Preview) Render() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s\n", v.props.Title)
	fmt.Fprintf(b, "[%s]  %s\n\n", v.props.Category, FormatPrice(v.props.Price))
	fmt.Fprintf(b, "%s\n\n", v.props.Description)
	switch {
	case v.props.Price == nil:
		fmt.Fprint(b, "This product is priceless and cannot be bought.\n")
	case v.props.Selected:
		fmt.Fprint(b, "Already in the basket.\n")
	default:
		fmt.Fprint(b, "[enter] add to basket\n")
	}
	return b.String()
}
