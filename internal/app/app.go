// Package app wires the event bus topics to application-state mutations and
// view renders. It is the only place that knows the full checkout sequence.
package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/shop"
	"github.com/jafarshop/storefront/internal/state"
	"github.com/jafarshop/storefront/internal/views"
	"github.com/jafarshop/storefront/pkg/events"
)

// FieldChange is the order-field-changed payload
type FieldChange struct {
	Field string
	Value string
}

// Views groups the display components the orchestrator drives
type Views struct {
	Page     *views.Page
	Catalog  *views.Catalog
	Preview  *views.Preview
	Basket   *views.Basket
	Order    *views.OrderForm
	Contacts *views.ContactsForm
	Success  *views.Success
}

// App coordinates the storefront: state mutations in, view updates out
type App struct {
	bus    *events.Bus
	state  *state.AppState
	client *shop.Client
	views  Views
	logger *zap.Logger

	// set by the contacts-submit handler when both form sections validate;
	// the frontend collects it and runs the order submission
	pendingSubmit bool
}

// New creates the orchestrator and subscribes every topic handler
func New(bus *events.Bus, st *state.AppState, client *shop.Client, v Views, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		bus:    bus,
		state:  st,
		client: client,
		views:  v,
		logger: logger,
	}
	a.subscribe()
	return a
}

func (a *App) subscribe() {
	a.bus.On(events.TopicCatalogChanged, a.onCatalogChanged)
	a.bus.On(events.TopicCardSelected, a.onCardSelected)
	a.bus.On(events.TopicAddToBasket, a.onAddToBasket)
	a.bus.On(events.TopicBasketOpen, a.onBasketOpen)
	a.bus.On(events.TopicBasketItemDeleted, a.onBasketItemDeleted)
	a.bus.On(events.TopicBasketOrder, a.onBasketOrder)
	a.bus.On(events.TopicOrderFormErrorsChanged, a.onOrderFormErrors)
	a.bus.On(events.TopicContactsFormErrorsChanged, a.onContactsFormErrors)
	a.bus.On(events.TopicOrderFieldChanged, a.onOrderFieldChanged)
	a.bus.On(events.TopicOrderSubmitStep, a.onOrderSubmitStep)
	a.bus.On(events.TopicContactsSubmit, a.onContactsSubmit)
	a.bus.On(events.TopicOrderSuccess, a.onOrderSuccess)
	a.bus.On(events.TopicModalClose, a.onModalClose)
}

// LoadCatalog fetches the catalog from the shop API. A failure leaves the
// catalog empty; there is no retry.
func (a *App) LoadCatalog(ctx context.Context) ([]domain.Product, error) {
	items, err := a.client.GetProducts(ctx)
	if err != nil {
		a.logger.Error("failed to load catalog", zap.Error(err))
		return nil, err
	}
	return items, nil
}

// ApplyCatalog feeds a fetched catalog into the application state
func (a *App) ApplyCatalog(items []domain.Product) {
	a.state.SetCatalog(items)
}

// TakePendingSubmit reports whether a contacts-submit passed validation and
// clears the flag. The frontend turns a true result into an order submission.
func (a *App) TakePendingSubmit() bool {
	pending := a.pendingSubmit
	a.pendingSubmit = false
	return pending
}

// SubmitOrder posts the given order draft to the shop API
func (a *App) SubmitOrder(ctx context.Context, order domain.Order) (*shop.OrderResult, error) {
	return a.client.PlaceOrder(ctx, order)
}

// ApplyOrderResult applies a completed order submission. On success the
// basket empties, the draft resets, the order form's submit is blocked until
// the next fresh order and all selected flags clear. On failure the contacts
// form stays open for resubmission.
func (a *App) ApplyOrderResult(res *shop.OrderResult, err error) {
	if err != nil {
		a.logger.Error("order submission failed", zap.Error(err))
		return
	}
	a.bus.Emit(events.TopicOrderSuccess, res)
	a.state.ClearBasket()
	a.state.RefreshOrder()
	a.views.Order.DisableButtons()
	a.views.Page.SetCounter(0)
	a.state.ResetSelected()
}

func (a *App) onCatalogChanged(_ string, _ any) {
	catalog := a.state.Catalog()
	cards := make([]views.CardProps, 0, len(catalog))
	for _, p := range catalog {
		cards = append(cards, views.CardProps{
			ID:       p.ID,
			Title:    p.Title,
			Category: p.Category,
			Price:    p.Price,
			Selected: p.Selected,
		})
	}
	a.views.Catalog.SetItems(cards)
}

func (a *App) onCardSelected(_ string, payload any) {
	id, ok := payload.(string)
	if !ok {
		return
	}
	p := a.state.FindProduct(id)
	if p == nil {
		a.logger.Warn("selected card not in catalog", zap.String("id", id))
		return
	}
	a.views.Page.Lock()
	a.views.Preview.Set(views.PreviewProps{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Selected:    p.Selected,
	})
}

func (a *App) onAddToBasket(_ string, payload any) {
	id, ok := payload.(string)
	if !ok {
		return
	}
	p := a.state.FindProduct(id)
	if p == nil {
		return
	}
	a.state.MarkSelected(id, true)
	a.state.AddToBasket(p)
	a.views.Page.SetCounter(a.state.BasketCount())
	a.onCatalogChanged("", nil)
}

func (a *App) onBasketOpen(_ string, _ any) {
	a.views.Page.Lock()
	a.refreshBasketView()
}

func (a *App) onBasketItemDeleted(_ string, payload any) {
	id, ok := payload.(string)
	if !ok {
		return
	}
	a.state.RemoveFromBasket(id)
	a.state.MarkSelected(id, false)
	a.refreshBasketView()
	a.views.Page.SetCounter(a.state.BasketCount())
	a.onCatalogChanged("", nil)
}

func (a *App) onBasketOrder(_ string, _ any) {
	a.views.Order.Reset()
	a.views.Order.EnableButtons()
	a.views.Order.SetOrder(a.state.Order())
}

func (a *App) onOrderFormErrors(_ string, payload any) {
	errs, ok := payload.(domain.FormErrors)
	if !ok {
		return
	}
	a.views.Order.SetErrors(errs)
	a.views.Order.SetOrder(a.state.Order())
}

func (a *App) onContactsFormErrors(_ string, payload any) {
	errs, ok := payload.(domain.FormErrors)
	if !ok {
		return
	}
	a.views.Contacts.SetErrors(errs)
	a.views.Contacts.SetOrder(a.state.Order())
}

func (a *App) onOrderFieldChanged(_ string, payload any) {
	change, ok := payload.(FieldChange)
	if !ok {
		return
	}
	a.state.SetOrderField(change.Field, change.Value)
}

// onOrderSubmitStep stamps the total from the current basket and snapshots
// the basket ids into the order before the contacts step opens. Triggered by
// the explicit submit action only; order-ready merely enables the affordance.
func (a *App) onOrderSubmitStep(_ string, _ any) {
	a.state.SetOrderTotal(a.state.BasketTotal())
	a.state.SetOrderItems()
	a.views.Contacts.Reset()
	a.views.Contacts.SetOrder(a.state.Order())
}

// onContactsSubmit re-validates both sections; only when both pass does the
// submission proceed.
func (a *App) onContactsSubmit(_ string, _ any) {
	if a.state.ValidateOrder() && a.state.ValidateContacts() {
		a.pendingSubmit = true
	}
}

func (a *App) onOrderSuccess(_ string, payload any) {
	res, ok := payload.(*shop.OrderResult)
	if !ok {
		return
	}
	a.views.Success.SetTotal(res.Total)
}

func (a *App) onModalClose(_ string, _ any) {
	a.views.Page.Unlock()
	a.state.RefreshOrder()
}

func (a *App) refreshBasketView() {
	basket := a.state.Basket()
	items := make([]views.BasketItemProps, 0, len(basket))
	for _, p := range basket {
		items = append(items, views.BasketItemProps{
			ID:    p.ID,
			Title: p.Title,
			Price: p.Price,
		})
	}
	a.views.Basket.SetItems(items)
	a.views.Basket.SetTotal(a.state.BasketTotal())
}
