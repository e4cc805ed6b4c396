// Package tui is the terminal frontend. It translates key presses into event
// bus topics and composes the view components' rendered blocks; all state
// mutation happens behind the bus. Network calls run as tea commands whose
// completion messages apply their full side effects whenever they arrive.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/app"
	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/shop"
	"github.com/jafarshop/storefront/internal/state"
	"github.com/jafarshop/storefront/pkg/events"
)

// Stage is the checkout stage the frontend currently displays
type Stage int

const (
	StageCatalog Stage = iota
	StagePreview
	StageBasket
	StageOrder
	StageContacts
	StageSuccess
)

type catalogLoadedMsg struct {
	items []domain.Product
	err   error
}

type orderPlacedMsg struct {
	res *shop.OrderResult
	err error
}

// Model is the bubbletea model driving the storefront
type Model struct {
	app    *app.App
	bus    *events.Bus
	state  *state.AppState
	views  app.Views
	logger *zap.Logger

	stage   Stage
	status  string
	busy    bool
	address string
	email   string
	phone   string
}

// New creates the frontend model
func New(a *app.App, bus *events.Bus, st *state.AppState, v app.Views, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Model{
		app:    a,
		bus:    bus,
		state:  st,
		views:  v,
		logger: logger,
		stage:  StageCatalog,
		status: "Loading catalog...",
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadCatalogCmd()
}

func (m Model) loadCatalogCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		items, err := m.app.LoadCatalog(ctx)
		return catalogLoadedMsg{items: items, err: err}
	}
}

func (m Model) submitOrderCmd(order domain.Order) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		res, err := m.app.SubmitOrder(ctx, order)
		return orderPlacedMsg{res: res, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		if msg.err != nil {
			m.status = "Failed to load catalog: " + msg.err.Error()
			return m, nil
		}
		m.status = ""
		m.app.ApplyCatalog(msg.items)
		return m, nil

	case orderPlacedMsg:
		m.busy = false
		m.app.ApplyOrderResult(msg.res, msg.err)
		if msg.err != nil {
			m.status = "Order failed: " + msg.err.Error()
			return m, nil
		}
		m.status = ""
		m.resetInputs()
		m.stage = StageSuccess
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.stage {
	case StageCatalog:
		return m.updateCatalog(msg)
	case StagePreview:
		return m.updatePreview(msg)
	case StageBasket:
		return m.updateBasket(msg)
	case StageOrder:
		return m.updateOrder(msg)
	case StageContacts:
		return m.updateContacts(msg)
	case StageSuccess:
		return m.updateSuccess(msg)
	}
	return m, nil
}

func (m Model) updateCatalog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up":
		m.views.Catalog.SetCursor(m.views.Catalog.Cursor() - 1)
	case "down":
		m.views.Catalog.SetCursor(m.views.Catalog.Cursor() + 1)
	case "enter":
		if id := m.views.Catalog.SelectedID(); id != "" {
			m.bus.Emit(events.TopicCardSelected, id)
			m.stage = StagePreview
		}
	case "b":
		m.bus.Emit(events.TopicBasketOpen, nil)
		m.stage = StageBasket
	}
	return m, nil
}

func (m Model) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if id := m.views.Preview.ProductID(); id != "" {
			if p := m.state.FindProduct(id); p != nil && p.HasPrice() && !p.Selected {
				m.bus.Emit(events.TopicAddToBasket, id)
			}
		}
		m.closeModal()
	case "esc":
		m.closeModal()
	}
	return m, nil
}

func (m Model) updateBasket(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		m.views.Basket.SetCursor(m.views.Basket.Cursor() - 1)
	case "down":
		m.views.Basket.SetCursor(m.views.Basket.Cursor() + 1)
	case "d":
		if id := m.views.Basket.SelectedID(); id != "" {
			m.bus.Emit(events.TopicBasketItemDeleted, id)
		}
	case "enter":
		if m.views.Basket.Len() > 0 {
			m.bus.Emit(events.TopicBasketOrder, nil)
			m.stage = StageOrder
		}
	case "esc":
		m.closeModal()
	}
	return m, nil
}

func (m Model) updateOrder(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	focus := m.views.Order.Focus()
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "tab":
		if focus == domain.FieldPayment {
			m.views.Order.SetFocus(domain.FieldAddress)
		} else {
			m.views.Order.SetFocus(domain.FieldPayment)
		}
		return m, nil
	case "enter":
		if m.views.Order.Valid() {
			m.bus.Emit(events.TopicOrderSubmitStep, nil)
			m.stage = StageContacts
		}
		return m, nil
	case "backspace":
		if focus == domain.FieldAddress && m.address != "" {
			m.address = m.address[:len(m.address)-1]
			m.emitField(domain.FieldAddress, m.address)
		}
		return m, nil
	}

	if focus == domain.FieldPayment {
		switch msg.String() {
		case "c":
			m.emitField(domain.FieldPayment, string(domain.PaymentCard))
		case "m":
			m.emitField(domain.FieldPayment, string(domain.PaymentCash))
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		m.address += keyText(msg)
		m.emitField(domain.FieldAddress, m.address)
	}
	return m, nil
}

func (m Model) updateContacts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	focus := m.views.Contacts.Focus()
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "tab":
		if focus == domain.FieldEmail {
			m.views.Contacts.SetFocus(domain.FieldPhone)
		} else {
			m.views.Contacts.SetFocus(domain.FieldEmail)
		}
		return m, nil
	case "enter":
		m.bus.Emit(events.TopicContactsSubmit, nil)
		if m.app.TakePendingSubmit() {
			m.busy = true
			m.status = "Placing order..."
			return m, m.submitOrderCmd(m.state.Order())
		}
		return m, nil
	case "backspace":
		if focus == domain.FieldEmail && m.email != "" {
			m.email = m.email[:len(m.email)-1]
			m.emitField(domain.FieldEmail, m.email)
		} else if focus == domain.FieldPhone && m.phone != "" {
			m.phone = m.phone[:len(m.phone)-1]
			m.emitField(domain.FieldPhone, m.phone)
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		if focus == domain.FieldEmail {
			m.email += keyText(msg)
			m.emitField(domain.FieldEmail, m.email)
		} else {
			m.phone += keyText(msg)
			m.emitField(domain.FieldPhone, m.phone)
		}
	}
	return m, nil
}

func (m Model) updateSuccess(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.closeModal()
	}
	return m, nil
}

func (m *Model) closeModal() {
	m.bus.Emit(events.TopicModalClose, nil)
	m.resetInputs()
	m.stage = StageCatalog
}

func (m *Model) resetInputs() {
	m.address = ""
	m.email = ""
	m.phone = ""
	m.views.Order.SetFocus(domain.FieldAddress)
	m.views.Contacts.SetFocus(domain.FieldEmail)
}

func (m Model) emitField(field, value string) {
	m.bus.Emit(events.TopicOrderFieldChanged, app.FieldChange{Field: field, Value: value})
}

func (m Model) View() string {
	b := &strings.Builder{}
	b.WriteString(m.views.Page.Render())

	switch m.stage {
	case StageCatalog:
		b.WriteString(m.views.Catalog.Render())
		b.WriteString("\n[enter] view product  [b] basket  [q] quit\n")
	case StagePreview:
		b.WriteString(m.views.Preview.Render())
		b.WriteString("\n[esc] back\n")
	case StageBasket:
		b.WriteString(m.views.Basket.Render())
		b.WriteString("\n[esc] back\n")
	case StageOrder:
		b.WriteString(m.views.Order.Render())
		b.WriteString("\n[tab] switch field  [esc] cancel\n")
	case StageContacts:
		b.WriteString(m.views.Contacts.Render())
		b.WriteString("\n[tab] switch field  [esc] cancel\n")
	case StageSuccess:
		b.WriteString(m.views.Success.Render())
	}

	if m.status != "" {
		fmt.Fprintf(b, "\n%s\n", m.status)
	}
	return b.String()
}

func keyText(msg tea.KeyMsg) string {
	if msg.Type == tea.KeySpace {
		return " "
	}
	return string(msg.Runes)
}
