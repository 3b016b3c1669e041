package events

import (
	"sync"

	"weblarek/internal/domain"
)

// Kind identifies published event categories.
type Kind string

const (
	KindProductsUpdated Kind = "products:updated"
	KindBasketUpdated   Kind = "basket:update"
	KindOrderValidate   Kind = "order:validate"
	KindFormErrors      Kind = "formErrors:change"
	KindOrderSuccess    Kind = "order:success"
	KindUserUpdated     Kind = "user:updated"
	KindOrderUpdated    Kind = "order:updated"
)

// Event is the closed set of things the stores and orchestrator publish.
// Every payload is a concrete struct; there are no untyped payloads.
type Event interface {
	Kind() Kind
}

// ProductsUpdated carries the full catalog after a wholesale replace.
type ProductsUpdated struct {
	Products []domain.Product
}

// BasketUpdated carries the complete current line list and the freshly
// computed display total after any basket mutation.
type BasketUpdated struct {
	Items []domain.BasketLine
	Total string
}

// OrderValidate asks the order draft to re-run validation.
type OrderValidate struct{}

// FormErrorsChanged carries the ordered list of human-readable validation
// errors; an empty list means the draft is valid.
type FormErrorsChanged struct {
	Errors []string
}

// OrderSuccess carries the backend confirmation of a submitted order.
type OrderSuccess struct {
	Confirmation domain.OrderConfirmation
}

// UserUpdated carries the contact fields after a merge that changed them.
type UserUpdated struct {
	Contact domain.UserContact
}

// OrderUpdated carries the draft-level fields after a merge that changed them.
type OrderUpdated struct {
	Payment string
	Address string
}

func (ProductsUpdated) Kind() Kind   { return KindProductsUpdated }
func (BasketUpdated) Kind() Kind     { return KindBasketUpdated }
func (OrderValidate) Kind() Kind     { return KindOrderValidate }
func (FormErrorsChanged) Kind() Kind { return KindFormErrors }
func (OrderSuccess) Kind() Kind      { return KindOrderSuccess }
func (UserUpdated) Kind() Kind       { return KindUserUpdated }
func (OrderUpdated) Kind() Kind      { return KindOrderUpdated }

// Handler consumes published events.
type Handler func(Event)

// Bus is a synchronous observer dispatcher. Handlers for a kind run in
// subscription order before Publish returns; a handler publishing a further
// event has that emission fully processed (depth-first) before control comes
// back to the original publisher.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Kind][]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[Kind][]Handler)}
}

// Subscribe registers a handler for one event kind.
func (b *Bus) Subscribe(k Kind, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[k] = append(b.handlers[k], h)
}

// Publish dispatches e to every handler subscribed to its kind.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	hs := b.handlers[e.Kind()]
	b.mu.RUnlock()
	for _, h := range hs {
		h(e)
	}
}
