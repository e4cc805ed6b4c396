package views

import (
	"fmt"
	"strings"

	"github.com/jafarshop/storefront/internal/domain"
)

// OrderForm renders the payment + address step. Its submit affordance is
// enabled by the opportunistic order-ready notification and disabled again
// after a purchase completes.
type OrderForm struct {
	payment  domain.PaymentMethod
	address  string
	errors   string
	valid    bool
	disabled bool
	focus    string
}

func NewOrderForm() *OrderForm {
	return &OrderForm{focus: domain.FieldAddress}
}

// SetOrder refreshes the rendered field values from the order draft
func (v *OrderForm) SetOrder(order domain.Order) {
	v.payment = order.Payment
	v.address = order.Address
}

// Reset prepares the form for a fresh checkout: no errors shown yet and the
// submit affordance disabled until an order-ready notification arrives.
func (v *OrderForm) Reset() {
	v.payment = domain.PaymentUnset
	v.address = ""
	v.errors = ""
	v.valid = false
	v.focus = domain.FieldAddress
}

// SetErrors replaces the rendered error line and the valid flag
func (v *OrderForm) SetErrors(errs domain.FormErrors) {
	v.valid = errs[domain.FieldPayment] == "" && errs[domain.FieldAddress] == ""
	v.errors = joinErrors(errs, domain.FieldPayment, domain.FieldAddress)
}

// Valid reports whether the order step currently satisfies validation
func (v *OrderForm) Valid() bool {
	return v.valid && !v.disabled
}

// DisableButtons blocks the submit affordance until the next fresh order
func (v *OrderForm) DisableButtons() {
	v.disabled = true
}

// EnableButtons unblocks the submit affordance for a new checkout
func (v *OrderForm) EnableButtons() {
	v.disabled = false
}

// SetFocus moves input focus to the given field
func (v *OrderForm) SetFocus(field string) {
	v.focus = field
}

// Focus returns the focused field name
func (v *OrderForm) Focus() string {
	return v.focus
}

func (v *OrderForm) Render() string {
	b := &strings.Builder{}
	fmt.Fprint(b, "Order\n\n")
	payment := "not chosen"
	if v.payment != domain.PaymentUnset {
		payment = string(v.payment)
	}
	fmt.Fprintf(b, " %s payment: %s  ([c] card / [m] cash)\n", focusMarker(v.focus, domain.FieldPayment), payment)
	fmt.Fprintf(b, " %s address: %s\n", focusMarker(v.focus, domain.FieldAddress), v.address)
	if v.errors != "" {
		fmt.Fprintf(b, "\n! %s\n", v.errors)
	}
	if v.valid && !v.disabled {
		fmt.Fprint(b, "\n[enter] next\n")
	}
	return b.String()
}

// ContactsForm renders the email + phone step. Its submit affordance is
// enabled by the contacts-ready notification.
type ContactsForm struct {
	email  string
	phone  string
	errors string
	valid  bool
	focus  string
}

func NewContactsForm() *ContactsForm {
	return &ContactsForm{focus: domain.FieldEmail}
}

// SetOrder refreshes the rendered field values from the order draft
func (v *ContactsForm) SetOrder(order domain.Order) {
	v.email = order.Email
	v.phone = order.Phone
}

// Reset prepares the form for a fresh checkout step: no errors shown yet and
// the submit affordance disabled until a contacts-ready notification arrives.
func (v *ContactsForm) Reset() {
	v.email = ""
	v.phone = ""
	v.errors = ""
	v.valid = false
	v.focus = domain.FieldEmail
}

// SetErrors replaces the rendered error line and the valid flag
func (v *ContactsForm) SetErrors(errs domain.FormErrors) {
	v.valid = errs[domain.FieldEmail] == "" && errs[domain.FieldPhone] == ""
	v.errors = joinErrors(errs, domain.FieldPhone, domain.FieldEmail)
}

// Valid reports whether the contacts step currently satisfies validation
func (v *ContactsForm) Valid() bool {
	return v.valid
}

// SetFocus moves input focus to the given field
func (v *ContactsForm) SetFocus(field string) {
	v.focus = field
}

// Focus returns the focused field name
func (v *ContactsForm) Focus() string {
	return v.focus
}

func (v *ContactsForm) Render() string {
	b := &strings.Builder{}
	fmt.Fprint(b, "Contacts\n\n")
	fmt.Fprintf(b, " %s email: %s\n", focusMarker(v.focus, domain.FieldEmail), v.email)
	fmt.Fprintf(b, " %s phone: %s\n", focusMarker(v.focus, domain.FieldPhone), v.phone)
	if v.errors != "" {
		fmt.Fprintf(b, "\n! %s\n", v.errors)
	}
	if v.valid {
		fmt.Fprint(b, "\n[enter] pay\n")
	}
	return b.String()
}

func focusMarker(focus, field string) string {
	if focus == field {
		return ">"
	}
	return " "
}

// joinErrors joins the messages for the given fields with "; ", keeping the
// field order stable.
func joinErrors(errs domain.FormErrors, fields ...string) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if msg := errs[f]; msg != "" {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, "; ")
}
