// Package state owns the catalog, the basket and the in-progress order draft.
// It is the single source of truth for the storefront: every mutation goes
// through its methods and every externally observable change is announced on
// the event bus. All calls happen from the frontend's single update loop, so
// no locking discipline is required.
package state

import (
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/pkg/events"
)

// AppState holds the application model and emits change notifications
type AppState struct {
	catalog    []*domain.Product
	basket     []*domain.Product
	order      domain.Order
	formErrors domain.FormErrors
	events     *events.Bus
	logger     *zap.Logger
}

// New creates an application state bound to the given event bus
func New(bus *events.Bus, logger *zap.Logger) *AppState {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AppState{
		catalog:    []*domain.Product{},
		basket:     []*domain.Product{},
		order:      domain.NewOrder(),
		formErrors: domain.FormErrors{},
		events:     bus,
		logger:     logger,
	}
}

// SetCatalog replaces the catalog with the given items, each marked
// unselected. Full replace, no merge with the previous catalog.
func (s *AppState) SetCatalog(items []domain.Product) {
	catalog := make([]*domain.Product, 0, len(items))
	for _, item := range items {
		p := item
		p.Selected = false
		catalog = append(catalog, &p)
	}
	s.catalog = catalog
	s.logger.Debug("catalog replaced", zap.Int("count", len(catalog)))
	s.events.Emit(events.TopicCatalogChanged, s.catalog)
}

// Catalog returns the current catalog list
func (s *AppState) Catalog() []*domain.Product {
	return s.catalog
}

// FindProduct looks up a catalog entry by id; nil if absent
func (s *AppState) FindProduct(id string) *domain.Product {
	for _, p := range s.catalog {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// AddToBasket appends a product to the basket. An id already in the basket is
// a no-op: the basket holds at most one entry per product.
func (s *AppState) AddToBasket(p *domain.Product) {
	for _, item := range s.basket {
		if item.ID == p.ID {
			return
		}
	}
	s.basket = append(s.basket, p)
}

// RemoveFromBasket filters the basket to exclude the given id; no-op if absent
func (s *AppState) RemoveFromBasket(id string) {
	basket := s.basket[:0]
	for _, item := range s.basket {
		if item.ID != id {
			basket = append(basket, item)
		}
	}
	s.basket = basket
}

// ClearBasket empties the basket
func (s *AppState) ClearBasket() {
	s.basket = s.basket[:0]
}

// Basket returns the current basket entries in insertion order
func (s *AppState) Basket() []*domain.Product {
	return s.basket
}

// BasketCount returns the number of basket entries
func (s *AppState) BasketCount() int {
	return len(s.basket)
}

// BasketTotal sums prices over the basket. A priceless product contributes
// nothing to the total while still occupying a basket slot.
func (s *AppState) BasketTotal() float64 {
	var total float64
	for _, item := range s.basket {
		if item.Price != nil {
			total += *item.Price
		}
	}
	return total
}

// SetOrderItems snapshots the basket product ids into the order draft.
// Called at checkout submit-step, not kept continuously in sync.
func (s *AppState) SetOrderItems() {
	items := make([]string, 0, len(s.basket))
	for _, item := range s.basket {
		items = append(items, item.ID)
	}
	s.order.Items = items
}

// SetOrderTotal stamps the order total
func (s *AppState) SetOrderTotal(total float64) {
	s.order.Total = &total
}

// Order returns a copy of the current order draft
func (s *AppState) Order() domain.Order {
	return s.order
}

// Errors returns the current form error map
func (s *AppState) Errors() domain.FormErrors {
	return s.formErrors
}

// SetOrderField assigns one field on the order draft, then runs both contact
// and order validation unconditionally. Whichever section currently
// validates fires its readiness event, regardless of which field changed:
// the orchestration layer relies on receiving readiness opportunistically
// rather than step-gated.
func (s *AppState) SetOrderField(field, value string) {
	switch field {
	case domain.FieldPayment:
		s.order.Payment = domain.PaymentMethod(value)
	case domain.FieldAddress:
		s.order.Address = value
	case domain.FieldEmail:
		s.order.Email = value
	case domain.FieldPhone:
		s.order.Phone = value
	default:
		s.logger.Warn("unknown order field", zap.String("field", field))
		return
	}

	if s.ValidateContacts() {
		s.events.Emit(events.TopicContactsReady, s.order)
	}
	if s.ValidateOrder() {
		s.events.Emit(events.TopicOrderReady, s.order)
	}
}

// ValidateContacts checks the contact fields, replaces the error map and
// announces it (even when empty, so views can clear stale errors). Returns
// whether the contact section is valid.
func (s *AppState) ValidateContacts() bool {
	errs := domain.FormErrors{}
	if s.order.Email == "" {
		errs[domain.FieldEmail] = "email is required"
	}
	if s.order.Phone == "" {
		errs[domain.FieldPhone] = "phone is required"
	}
	s.formErrors = errs
	s.events.Emit(events.TopicContactsFormErrorsChanged, s.formErrors)
	return len(errs) == 0
}

// ValidateOrder checks the order-step fields with the same replace, emit and
// return pattern as ValidateContacts, on a distinct topic.
func (s *AppState) ValidateOrder() bool {
	errs := domain.FormErrors{}
	if s.order.Address == "" {
		errs[domain.FieldAddress] = "address is required"
	}
	if !s.order.Payment.IsValid() {
		errs[domain.FieldPayment] = "payment method is required"
	}
	s.formErrors = errs
	s.events.Emit(events.TopicOrderFormErrorsChanged, s.formErrors)
	return len(errs) == 0
}

// RefreshOrder resets the order draft to its empty initial shape. The basket
// is untouched.
func (s *AppState) RefreshOrder() {
	s.order = domain.NewOrder()
}

// MarkSelected flips the selected flag on a catalog entry in place
func (s *AppState) MarkSelected(id string, selected bool) {
	if p := s.FindProduct(id); p != nil {
		p.Selected = selected
	}
}

// ResetSelected marks every catalog entry unselected, so previously bought
// items show as available again after a purchase completes.
func (s *AppState) ResetSelected() {
	for _, p := range s.catalog {
		p.Selected = false
	}
}
