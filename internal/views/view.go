// Package views holds the storefront's display components. Each component
// caches a plain props projection and renders it as a text block; none of
// them reach into the application state directly.
package views

import "strconv"

// View renders its current props into a text block
type View interface {
	Render() string
}

// FormatPrice renders a price, or "priceless" for products without one
func FormatPrice(price *float64) string {
	if price == nil {
		return "priceless"
	}
	return strconv.FormatFloat(*price, 'f', -1, 64) + " synapses"
}

// FormatTotal renders an order or basket total
func FormatTotal(total float64) string {
	return strconv.FormatFloat(total, 'f', -1, 64) + " synapses"
}
