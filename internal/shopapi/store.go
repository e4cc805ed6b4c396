package shopapi

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jafarshop/storefront/internal/domain"
	apperrors "github.com/jafarshop/storefront/pkg/errors"
)

// OrderResponse is the body returned for a placed order. Total echoes the
// charged amount.
type OrderResponse struct {
	ID    string  `json:"id"`
	Total float64 `json:"total"`
}

// Store keeps the catalog and placed orders in memory. Orders are not
// persisted anywhere; the storefront rebuilds all state from the API on load.
type Store struct {
	mu          sync.Mutex
	products    []domain.Product
	orders      map[string]domain.Order
	idempotency map[string]OrderResponse
}

// NewStore creates a store with the given catalog
func NewStore(products []domain.Product) *Store {
	return &Store{
		products:    products,
		orders:      make(map[string]domain.Order),
		idempotency: make(map[string]OrderResponse),
	}
}

// Products returns the catalog
func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products
}

// PlaceOrder validates and records an order. A repeated idempotency key
// replays the stored response instead of recording a second order.
func (s *Store) PlaceOrder(order domain.Order, idempotencyKey string) (OrderResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idempotencyKey != "" {
		if resp, ok := s.idempotency[idempotencyKey]; ok {
			return resp, nil
		}
	}

	if err := s.validateOrder(order); err != nil {
		return OrderResponse{}, err
	}

	resp := OrderResponse{
		ID:    uuid.NewString(),
		Total: s.totalFor(order.Items),
	}
	s.orders[resp.ID] = order
	if idempotencyKey != "" {
		s.idempotency[idempotencyKey] = resp
	}
	return resp, nil
}

// OrderCount returns the number of recorded orders
func (s *Store) OrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

func (s *Store) validateOrder(order domain.Order) error {
	fields := map[string]string{}
	if len(order.Items) == 0 {
		fields["items"] = "order has no items"
	}
	if !order.Payment.IsValid() {
		fields[domain.FieldPayment] = "payment method is required"
	}
	if order.Address == "" {
		fields[domain.FieldAddress] = "address is required"
	}
	if order.Email == "" {
		fields[domain.FieldEmail] = "email is required"
	}
	if order.Phone == "" {
		fields[domain.FieldPhone] = "phone is required"
	}
	for _, id := range order.Items {
		if s.findProduct(id) == nil {
			return &apperrors.ErrNotFound{Resource: "product", ID: id}
		}
	}
	if len(fields) > 0 {
		return &apperrors.ErrValidation{Message: "invalid order", Fields: fields}
	}
	// Priceless items occupy order slots but contribute nothing
	if order.Total != nil && *order.Total != s.totalFor(order.Items) {
		return &apperrors.ErrValidation{Message: "order total does not match item prices"}
	}
	return nil
}

func (s *Store) totalFor(ids []string) float64 {
	var total float64
	for _, id := range ids {
		if p := s.findProduct(id); p != nil && p.Price != nil {
			total += *p.Price
		}
	}
	return total
}

func (s *Store) findProduct(id string) *domain.Product {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i]
		}
	}
	return nil
}
