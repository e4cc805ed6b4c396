package domain

// PaymentMethod represents how the customer pays for an order
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
	// PaymentUnset - no payment method chosen yet
	PaymentUnset PaymentMethod = ""
)

// IsValid checks if the payment method is valid (unset is not)
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCard, PaymentCash:
		return true
	default:
		return false
	}
}

// Order field names used by forms, validation and the error maps
const (
	FieldPayment = "payment"
	FieldAddress = "address"
	FieldEmail   = "email"
	FieldPhone   = "phone"
)

// Order is the in-progress purchase draft. It is rebuilt fresh after every
// completed or abandoned checkout.
type Order struct {
	Items   []string      `json:"items"`
	Payment PaymentMethod `json:"payment"`
	Total   *float64      `json:"total"`
	Address string        `json:"address"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
}

// NewOrder returns an order draft in its empty initial shape
func NewOrder() Order {
	return Order{
		Items:   []string{},
		Payment: PaymentUnset,
		Total:   nil,
		Address: "",
		Email:   "",
		Phone:   "",
	}
}

// FormErrors maps an order-form field name to a human-readable error.
// It is recomputed wholesale on every validation pass, never patched.
type FormErrors map[string]string
