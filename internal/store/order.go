package store

import (
	"weblarek/internal/domain"
	"weblarek/internal/events"
	"weblarek/internal/validate"
)

// Validation messages, one per failed check, surfaced in a fixed order:
// address, email, phone, payment.
const (
	ErrAddressEmpty  = "Address must not be empty"
	ErrEmailInvalid  = "Enter a valid email address"
	ErrPhoneInvalid  = "Enter a valid phone number"
	ErrPaymentUnset  = "Choose a payment method"
	ErrBasketIsEmpty = "Basket is empty"
)

// ContactPatch carries the contact fields a form edit supplies. Nil fields
// are left untouched by the merge.
type ContactPatch struct {
	Email   *string
	Phone   *string
	Address *string
}

// DraftPatch carries draft-level fields (payment choice, address echo from
// the delivery form).
type DraftPatch struct {
	Payment *string
	Address *string
}

// Order is the in-progress checkout draft: payment choice, contact fields,
// and a snapshot of basket items taken when the checkout form opened. It
// never references live basket lines, so a late basket mutation cannot alter
// an order already under validation.
type Order struct {
	bus     *events.Bus
	payment string
	contact domain.UserContact
	items   []domain.OrderItem
	status  string
}

func NewOrder(bus *events.Bus) *Order {
	return &Order{bus: bus, status: domain.OrderStatusPending}
}

// SetUserData shallow-merges the supplied contact fields. A patch with no
// fields set is a no-op and publishes nothing.
func (o *Order) SetUserData(p ContactPatch) {
	changed := false
	if p.Email != nil {
		o.contact.Email = *p.Email
		changed = true
	}
	if p.Phone != nil {
		o.contact.Phone = *p.Phone
		changed = true
	}
	if p.Address != nil {
		o.contact.Address = *p.Address
		changed = true
	}
	if !changed {
		return
	}
	o.bus.Publish(events.UserUpdated{Contact: o.contact})
}

// SetOrderData shallow-merges draft-level fields and publishes order:updated.
func (o *Order) SetOrderData(p DraftPatch) {
	changed := false
	if p.Payment != nil {
		o.payment = *p.Payment
		changed = true
	}
	if p.Address != nil {
		o.contact.Address = *p.Address
		changed = true
	}
	if !changed {
		return
	}
	o.bus.Publish(events.OrderUpdated{Payment: o.payment, Address: o.contact.Address})
}

// SetPayment records the chosen payment method. The method is an opaque
// string from the configured button set, not a closed enum.
func (o *Order) SetPayment(method string) {
	o.payment = method
}

// SnapshotItems copies basket lines into the draft as (productId, quantity)
// pairs, decoupled from the live basket.
func (o *Order) SnapshotItems(lines []domain.BasketLine) {
	o.items = make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		o.items = append(o.items, domain.OrderItem{ProductID: l.ProductID, Quantity: l.Quantity})
	}
}

func (o *Order) Items() []domain.OrderItem {
	out := make([]domain.OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) Contact() domain.UserContact { return o.contact }
func (o *Order) Payment() string             { return o.payment }
func (o *Order) Status() string              { return o.status }

func (o *Order) SetStatus(status string) { o.status = status }

// Validate runs every check and returns all failures at once, one message
// per failed check, in address, email, phone, payment order. The UI shows
// every problem simultaneously instead of one at a time.
func (o *Order) Validate() []string {
	var errs []string
	if _, ok := validate.Address(o.contact.Address); !ok {
		errs = append(errs, ErrAddressEmpty)
	}
	if _, ok := validate.Email(o.contact.Email); !ok {
		errs = append(errs, ErrEmailInvalid)
	}
	if _, ok := validate.Phone(o.contact.Phone); !ok {
		errs = append(errs, ErrPhoneInvalid)
	}
	if _, ok := validate.Payment(o.payment); !ok {
		errs = append(errs, ErrPaymentUnset)
	}
	return errs
}

// BuildSubmission assembles the wire payload from the draft, the contact
// fields, and a total recomputed from the basket right now. Recomputing here
// guards against a stale total when the basket changed between draft edits
// and the final submit. Items repeat each product id once per unit.
func (o *Order) BuildSubmission(basket *Basket) domain.OrderPayload {
	var ids []string
	for _, it := range o.items {
		for i := 0; i < it.Quantity; i++ {
			ids = append(ids, it.ProductID)
		}
	}
	return domain.OrderPayload{
		Payment: o.payment,
		Email:   o.contact.Email,
		Phone:   o.contact.Phone,
		Address: o.contact.Address,
		Total:   basket.Total(),
		Items:   ids,
	}
}

// Reset returns the draft to its initial state after a successful submission.
func (o *Order) Reset() {
	o.payment = ""
	o.contact = domain.UserContact{}
	o.items = nil
	o.status = domain.OrderStatusPending
}
