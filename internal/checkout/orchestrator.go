// Package checkout wires the stores, the event bus, and the backend gateway
// into the browse-to-order flow.
package checkout

import (
	"context"
	"errors"
	"sync"

	"weblarek/internal/domain"
	"weblarek/internal/events"
	"weblarek/internal/gateway"
	applog "weblarek/internal/log"
	"weblarek/internal/store"
)

// Phase tracks where the user is in the checkout flow. Transitions are
// driven by observed actions; validation stays advisory until final submit.
type Phase int

const (
	PhaseBrowsing Phase = iota
	PhaseItemSelected
	PhaseInBasket
	PhaseAddressEntered
	PhaseContactEntered
	PhaseSubmitting
	PhaseSuccess
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrBasketEmpty        = errors.New("basket is empty")
	ErrInvalidOrder       = errors.New("order draft has validation errors")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
)

// Orchestrator owns the flow: it mutates the stores in response to UI
// actions, re-emits derived events, and talks to the backend. Stores and the
// gateway are injected; there is no ambient state.
type Orchestrator struct {
	bus     *events.Bus
	catalog *store.Catalog
	basket  *store.Basket
	order   *store.Order
	backend gateway.Backend

	mu       sync.Mutex
	inFlight bool
	phase    Phase
}

func New(bus *events.Bus, catalog *store.Catalog, basket *store.Basket, order *store.Order, backend gateway.Backend) *Orchestrator {
	o := &Orchestrator{bus: bus, catalog: catalog, basket: basket, order: order, backend: backend}
	bus.Subscribe(events.KindOrderValidate, func(events.Event) {
		bus.Publish(events.FormErrorsChanged{Errors: o.order.Validate()})
	})
	return o
}

func (o *Orchestrator) Phase() Phase {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.phase
}

func (o *Orchestrator) setPhase(p Phase) {
	o.mu.Lock()
	o.phase = p
	o.mu.Unlock()
}

// LoadCatalog fetches the product list and replaces the catalog store. On
// failure the catalog keeps its previous contents.
func (o *Orchestrator) LoadCatalog(ctx context.Context) error {
	products, err := o.backend.FetchProducts(ctx)
	if err != nil {
		applog.Error(nil, "catalog.fetch", err, nil)
		return err
	}
	o.catalog.SetProducts(products)
	return nil
}

// SelectProduct resolves a card click to its product. A miss is not fatal:
// the card may reference a product dropped by a concurrent refresh.
func (o *Orchestrator) SelectProduct(id string) (domain.Product, bool) {
	p, ok := o.catalog.ProductByID(id)
	if ok {
		o.setPhase(PhaseItemSelected)
	}
	return p, ok
}

// AddToBasket looks the product up and adds it to the basket.
func (o *Orchestrator) AddToBasket(id string) error {
	p, ok := o.catalog.ProductByID(id)
	if !ok {
		return ErrProductNotFound
	}
	o.basket.Add(p)
	o.setPhase(PhaseInBasket)
	return nil
}

func (o *Orchestrator) RemoveFromBasket(id string) {
	o.basket.Remove(id)
}

// OpenCheckout snapshots the basket into the order draft. An empty basket
// cannot proceed to the forms.
func (o *Orchestrator) OpenCheckout() error {
	lines := o.basket.Lines()
	if len(lines) == 0 {
		return ErrBasketEmpty
	}
	o.order.SnapshotItems(lines)
	return nil
}

// SetPayment records the chosen payment button and re-runs validation.
func (o *Orchestrator) SetPayment(method string) {
	o.order.SetPayment(method)
	o.bus.Publish(events.OrderValidate{})
}

// SetAddress feeds the delivery form field into the draft.
func (o *Orchestrator) SetAddress(address string) {
	o.order.SetOrderData(store.DraftPatch{Address: &address})
	o.bus.Publish(events.OrderValidate{})
	if address != "" {
		o.setPhase(PhaseAddressEntered)
	}
}

// SetContact feeds the contact form fields into the draft.
func (o *Orchestrator) SetContact(email, phone string) {
	o.order.SetUserData(store.ContactPatch{Email: &email, Phone: &phone})
	o.bus.Publish(events.OrderValidate{})
	if email != "" && phone != "" {
		o.setPhase(PhaseContactEntered)
	}
}

// Submit is the hard gate. It refuses to run while a previous submission is
// in flight (a double-click must not place two orders), refuses drafts that
// fail validation or carry no items, and only clears the basket after the
// backend confirmed the order. On any failure every store keeps its
// pre-call state.
func (o *Orchestrator) Submit(ctx context.Context) (domain.OrderConfirmation, error) {
	o.mu.Lock()
	if o.inFlight {
		o.mu.Unlock()
		return domain.OrderConfirmation{}, ErrSubmissionInFlight
	}
	o.inFlight = true
	o.phase = PhaseSubmitting
	o.mu.Unlock()
	defer func() {
		o.mu.Lock()
		o.inFlight = false
		o.mu.Unlock()
	}()

	errs := o.order.Validate()
	if len(o.order.Items()) == 0 {
		errs = append(errs, store.ErrBasketIsEmpty)
	}
	o.bus.Publish(events.FormErrorsChanged{Errors: errs})
	if len(errs) > 0 {
		o.setPhase(PhaseContactEntered)
		return domain.OrderConfirmation{}, ErrInvalidOrder
	}

	payload := o.order.BuildSubmission(o.basket)
	conf, err := o.backend.SubmitOrder(ctx, payload)
	if err != nil {
		// Basket and draft stay intact so the user can retry manually.
		applog.Error(nil, "order.submit", err, map[string]any{"total": payload.Total})
		o.setPhase(PhaseContactEntered)
		return domain.OrderConfirmation{}, err
	}

	o.order.SetStatus(conf.Status)
	o.basket.Clear()
	o.setPhase(PhaseSuccess)
	applog.Audit(nil, "order.success", map[string]any{"order_id": conf.ID, "total": conf.Total})
	// Success handlers observe the confirmed status; the draft resets for the
	// next order only after they ran.
	o.bus.Publish(events.OrderSuccess{Confirmation: conf})
	o.order.Reset()
	return conf, nil
}
