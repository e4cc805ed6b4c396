package views

import (
	"fmt"
	"strings"
)

// BasketItemProps is one basket line: a 1-based index, title and price
type BasketItemProps struct {
	Index int
	ID    string
	Title string
	Price *float64
}

// Basket renders the basket contents, the running total and the checkout
// affordance. The affordance is disabled while the basket is empty.
type Basket struct {
	items  []BasketItemProps
	total  float64
	cursor int
}

func NewBasket() *Basket {
	return &Basket{}
}

// SetItems replaces the rendered basket lines and reindexes them as a
// contiguous 1-based sequence.
func (v *Basket) SetItems(items []BasketItemProps) {
	v.items = items
	v.refreshIndices()
	if v.cursor >= len(items) {
		v.cursor = 0
	}
}

// SetTotal replaces the rendered total
func (v *Basket) SetTotal(total float64) {
	v.total = total
}

// SetCursor moves the selection cursor, clamped to the list bounds
func (v *Basket) SetCursor(i int) {
	if i < 0 || i >= len(v.items) {
		return
	}
	v.cursor = i
}

// Cursor returns the current cursor position
func (v *Basket) Cursor() int {
	return v.cursor
}

// Len returns the number of rendered basket lines
func (v *Basket) Len() int {
	return len(v.items)
}

// SelectedID returns the id of the line under the cursor, or ""
func (v *Basket) SelectedID() string {
	if v.cursor < 0 || v.cursor >= len(v.items) {
		return ""
	}
	return v.items[v.cursor].ID
}

// Items returns the rendered basket lines
func (v *Basket) Items() []BasketItemProps {
	return v.items
}

func (v *Basket) refreshIndices() {
	for i := range v.items {
		v.items[i].Index = i + 1
	}
}

func (v *Basket) Render() string {
	b := &strings.Builder{}
	if len(v.items) == 0 {
		fmt.Fprint(b, "The basket is empty.\n")
	}
	for i, item := range v.items {
		marker := " "
		if i == v.cursor {
			marker = ">"
		}
		fmt.Fprintf(b, " %s %d. %s - %s\n", marker, item.Index, item.Title, FormatPrice(item.Price))
	}
	fmt.Fprintf(b, "\nTotal: %s\n", FormatTotal(v.total))
	if len(v.items) > 0 {
		fmt.Fprint(b, "[enter] checkout  [d] delete item\n")
	}
	return b.String()
}
