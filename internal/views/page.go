package views

import (
	"fmt"
	"strings"
)

// Page renders the storefront chrome: the header with the basket counter and
// the footer hints. While locked, a modal stage owns the interaction.
type Page struct {
	counter int
	locked  bool
}

func NewPage() *Page {
	return &Page{}
}

// SetCounter replaces the basket counter display
func (v *Page) SetCounter(n int) {
	v.counter = n
}

// Counter returns the displayed basket counter
func (v *Page) Counter() int {
	return v.counter
}

// Lock marks the page as owned by a modal stage
func (v *Page) Lock() {
	v.locked = true
}

// Unlock returns interaction to the catalog
func (v *Page) Unlock() {
	v.locked = false
}

// Locked reports whether a modal stage owns the interaction
func (v *Page) Locked() bool {
	return v.locked
}

func (v *Page) Render() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "Larek  |  basket: %d\n", v.counter)
	fmt.Fprint(b, strings.Repeat("-", 40), "\n")
	return b.String()
}
