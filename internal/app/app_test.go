package app

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/shop"
	"github.com/jafarshop/storefront/internal/shopapi"
	"github.com/jafarshop/storefront/internal/state"
	"github.com/jafarshop/storefront/internal/views"
	"github.com/jafarshop/storefront/pkg/events"
)

func price(v float64) *float64 {
	return &v
}

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Title: "BEM pill", Description: "desc", Category: domain.CategoryHardSkill, Price: price(100)},
		{ID: "p2", Title: "Will-o'-the-wisp", Description: "desc", Category: domain.CategoryAdditional, Price: nil},
	}
}

type fixture struct {
	app    *App
	bus    *events.Bus
	state  *state.AppState
	views  Views
	store  *shopapi.Store
	client *shop.Client
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := shopapi.NewStore(testProducts())
	srv := httptest.NewServer(shopapi.NewRouter("production", store, zap.NewNop()))
	t.Cleanup(srv.Close)

	bus := events.NewBus(nil)
	st := state.New(bus, nil)
	client := shop.NewClient(srv.URL, 0, nil)
	v := Views{
		Page:     views.NewPage(),
		Catalog:  views.NewCatalog(),
		Preview:  views.NewPreview(),
		Basket:   views.NewBasket(),
		Order:    views.NewOrderForm(),
		Contacts: views.NewContactsForm(),
		Success:  views.NewSuccess(),
	}
	a := New(bus, st, client, v, nil)

	return &fixture{app: a, bus: bus, state: st, views: v, store: store, client: client}
}

func (f *fixture) loadCatalog(t *testing.T) {
	t.Helper()
	items, err := f.app.LoadCatalog(context.Background())
	require.NoError(t, err)
	f.app.ApplyCatalog(items)
}

func TestCatalogChangedRebuildsCards(t *testing.T) {
	f := newFixture(t)
	f.loadCatalog(t)

	require.Equal(t, 2, f.views.Catalog.Len())
	assert.Contains(t, f.views.Catalog.Render(), "BEM pill")
	assert.Contains(t, f.views.Catalog.Render(), "priceless")
}

func TestCardSelectedLocksPageAndFillsPreview(t *testing.T) {
	f := newFixture(t)
	f.loadCatalog(t)

	f.bus.Emit(events.TopicCardSelected, "p1")

	assert.True(t, f.views.Page.Locked())
	assert.Equal(t, "p1", f.views.Preview.ProductID())
	assert.Contains(t, f.views.Preview.Render(), "BEM pill")
}

func TestAddToBasketMarksSelectedAndCounts(t *testing.T) {
	f := newFixture(t)
	f.loadCatalog(t)

	f.bus.Emit(events.TopicAddToBasket, "p1")

	assert.Equal(t, 1, f.state.BasketCount())
	assert.True(t, f.state.FindProduct("p1").Selected)
	assert.Equal(t, 1, f.views.Page.Counter())
	assert.Contains(t, f.views.Catalog.Render(), "[in basket]")
}

func TestBasketItemDeletedReindexesAndRetotals(t *testing.T) {
	f := newFixture(t)
	f.loadCatalog(t)

	f.bus.Emit(events.TopicAddToBasket, "p1")
	f.bus.Emit(events.TopicAddToBasket, "p2")
	f.bus.Emit(events.TopicBasketOpen, nil)
	require.Equal(t, 2, f.views.Basket.Len())

	f.bus.Emit(events.TopicBasketItemDeleted, "p1")

	items := f.views.Basket.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Index)
	assert.Equal(t, "p2", items[0].ID)
	assert.Equal(t, 1, f.views.Page.Counter())
	assert.False(t, f.state.FindProduct("p1").Selected)
	assert.Contains(t, f.views.Basket.Render(), "Total: 0 synapses")
}

func TestOrderSubmitStepStampsTotalAndItems(t *testing.T) {
	f := newFixture(t)
	f.loadCatalog(t)

	f.bus.Emit(events.TopicAddToBasket, "p1")
	f.bus.Emit(events.TopicAddToBasket, "p2")
	f.bus.Emit(events.TopicOrderSubmitStep, nil)

	order := f.state.Order()
	require.NotNil(t, order.Total)
	assert.Equal(t, 100.0, *order.Total)
	assert.Equal(t, []string{"p1", "p2"}, order.Items)
}

func TestContactsSubmitRequiresBothSectionsValid(t *testing.T) {
	f := newFixture(t)
	f.loadCatalog(t)

	f.bus.Emit(events.TopicOrderFieldChanged, FieldChange{Field: domain.FieldEmail, Value: "a@b.com"})
	f.bus.Emit(events.TopicOrderFieldChanged, FieldChange{Field: domain.FieldPhone, Value: "123"})

	// Order section is still incomplete, so no submission is pending
	f.bus.Emit(events.TopicContactsSubmit, nil)
	assert.False(t, f.app.TakePendingSubmit())

	f.bus.Emit(events.TopicOrderFieldChanged, FieldChange{Field: domain.FieldAddress, Value: "Main st 1"})
	f.bus.Emit(events.TopicOrderFieldChanged, FieldChange{Field: domain.FieldPayment, Value: string(domain.PaymentCard)})

	f.bus.Emit(events.TopicContactsSubmit, nil)
	assert.True(t, f.app.TakePendingSubmit())
	// The flag is one-shot
	assert.False(t, f.app.TakePendingSubmit())
}

func TestModalCloseUnlocksAndDiscardsDraft(t *testing.T) {
	f := newFixture(t)
	f.loadCatalog(t)

	f.bus.Emit(events.TopicCardSelected, "p1")
	f.bus.Emit(events.TopicOrderFieldChanged, FieldChange{Field: domain.FieldAddress, Value: "Main st 1"})
	require.True(t, f.views.Page.Locked())

	f.bus.Emit(events.TopicModalClose, nil)

	assert.False(t, f.views.Page.Locked())
	assert.Empty(t, f.state.Order().Address)
}

func TestFailedSubmissionLeavesStateForResubmission(t *testing.T) {
	f := newFixture(t)
	f.loadCatalog(t)

	f.bus.Emit(events.TopicAddToBasket, "p1")
	f.bus.Emit(events.TopicOrderSubmitStep, nil)

	var successes int
	f.bus.On(events.TopicOrderSuccess, func(_ string, _ any) { successes++ })

	f.app.ApplyOrderResult(nil, assert.AnError)

	assert.Zero(t, successes)
	assert.Equal(t, 1, f.state.BasketCount())
	assert.NotEmpty(t, f.state.Order().Items)
}

func TestCheckoutEndToEnd(t *testing.T) {
	f := newFixture(t)
	f.loadCatalog(t)

	// One priced and one priceless product in the basket
	f.bus.Emit(events.TopicAddToBasket, "p1")
	f.bus.Emit(events.TopicAddToBasket, "p2")
	require.Equal(t, 2, f.state.BasketCount())
	require.Equal(t, 100.0, f.state.BasketTotal())

	f.bus.Emit(events.TopicBasketOpen, nil)
	f.bus.Emit(events.TopicBasketOrder, nil)

	f.bus.Emit(events.TopicOrderFieldChanged, FieldChange{Field: domain.FieldPayment, Value: string(domain.PaymentCard)})
	f.bus.Emit(events.TopicOrderFieldChanged, FieldChange{Field: domain.FieldAddress, Value: "Main st 1"})
	require.True(t, f.views.Order.Valid())

	f.bus.Emit(events.TopicOrderSubmitStep, nil)

	f.bus.Emit(events.TopicOrderFieldChanged, FieldChange{Field: domain.FieldEmail, Value: "a@b.com"})
	f.bus.Emit(events.TopicOrderFieldChanged, FieldChange{Field: domain.FieldPhone, Value: "123"})
	require.True(t, f.views.Contacts.Valid())

	f.bus.Emit(events.TopicContactsSubmit, nil)
	require.True(t, f.app.TakePendingSubmit())

	var successTotal float64
	f.bus.On(events.TopicOrderSuccess, func(_ string, payload any) {
		successTotal = payload.(*shop.OrderResult).Total
	})

	order := f.state.Order()
	require.Equal(t, []string{"p1", "p2"}, order.Items)
	res, err := f.app.SubmitOrder(context.Background(), order)
	require.NoError(t, err)
	f.app.ApplyOrderResult(res, nil)

	// The server accepted the order and echoed the priced total
	assert.Equal(t, 1, f.store.OrderCount())
	assert.Equal(t, 100.0, successTotal)
	assert.Contains(t, f.views.Success.Render(), "You spent 100 synapses")

	// Success side effects: basket empty, counter zeroed, selected flags
	// reset, draft fresh, order form blocked until the next checkout
	assert.Zero(t, f.state.BasketCount())
	assert.Zero(t, f.views.Page.Counter())
	assert.False(t, f.state.FindProduct("p1").Selected)
	assert.False(t, f.state.FindProduct("p2").Selected)
	assert.Empty(t, f.state.Order().Items)
	assert.False(t, f.views.Order.Valid())
}
