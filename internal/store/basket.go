package store

import (
	"weblarek/internal/domain"
	"weblarek/internal/events"
)

// Basket holds the ordered basket lines. Insertion order is display order.
// At most one line exists per product: adding an already-present product
// increments its quantity instead of duplicating the line.
type Basket struct {
	bus   *events.Bus
	lines []domain.BasketLine
}

func NewBasket(bus *events.Bus) *Basket {
	return &Basket{bus: bus}
}

// Add puts a product in the basket, or bumps its quantity if a line for it
// already exists. The product's price is frozen into the line as a display
// string at add time.
func (b *Basket) Add(p domain.Product) {
	for i := range b.lines {
		if b.lines[i].ProductID == p.ID {
			b.lines[i].Quantity++
			b.publish()
			return
		}
	}
	b.lines = append(b.lines, domain.BasketLine{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     domain.FormatPrice(p.Price),
		Quantity:  1,
	})
	b.publish()
}

// Remove drops the line for productID. Removing an absent product is a no-op
// but still publishes, so views re-render against the unchanged list.
func (b *Basket) Remove(productID string) {
	for i := range b.lines {
		if b.lines[i].ProductID == productID {
			b.lines = append(b.lines[:i], b.lines[i+1:]...)
			break
		}
	}
	b.publish()
}

// Clear empties the basket.
func (b *Basket) Clear() {
	b.lines = nil
	b.publish()
}

// Lines returns a copy of the current basket lines.
func (b *Basket) Lines() []domain.BasketLine {
	out := make([]domain.BasketLine, len(b.lines))
	copy(out, b.lines)
	return out
}

func (b *Basket) Len() int { return len(b.lines) }

// Total sums quantity-weighted line prices. Lines whose display price does
// not parse to a number (priceless items) are excluded from the sum, not
// treated as zero-priced purchases; they do not block checkout either.
func (b *Basket) Total() float64 {
	sum := 0.0
	for _, l := range b.lines {
		if v, ok := domain.ParsePrice(l.Price); ok {
			sum += v * float64(l.Quantity)
		}
	}
	return sum
}

// TotalPrice formats Total for display: two decimals plus the currency suffix.
func (b *Basket) TotalPrice() string {
	return domain.FormatTotal(b.Total())
}

func (b *Basket) publish() {
	b.bus.Publish(events.BasketUpdated{Items: b.Lines(), Total: b.TotalPrice()})
}
