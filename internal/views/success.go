package views

import "fmt"

// Success renders the purchase confirmation with the server-reported total
type Success struct {
	total float64
}

func NewSuccess() *Success {
	return &Success{}
}

// SetTotal replaces the displayed total
func (v *Success) SetTotal(total float64) {
	v.total = total
}

func (v *Success) Render() string {
	return fmt.Sprintf("Order placed\n\nYou spent %s\n\n[enter] back to the catalog\n", FormatTotal(v.total))
}
