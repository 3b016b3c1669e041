package domain

// Product is a catalog entry as served by the backend. A nil Price marks a
// "priceless" item: it can sit in a basket but contributes nothing to totals.
type Product struct {
	ID          string   `json:"id" db:"id"`
	Title       string   `json:"title" db:"title"`
	Category    string   `json:"category" db:"category"`
	Price       *float64 `json:"price" db:"price"`
	Image       string   `json:"image" db:"image"`
	Description string   `json:"description,omitempty" db:"description"`
}

// BasketLine is one aggregated product entry in the basket. Price is the
// display string captured at add time, not a number, because "priceless" is a
// display state.
type BasketLine struct {
	ProductID string
	Title     string
	Price     string
	Quantity  int
}

type UserContact struct {
	Email   string
	Phone   string
	Address string
}

// OrderItem is a (product, quantity) pair snapshotted from the basket when
// the checkout form opens.
type OrderItem struct {
	ProductID string
	Quantity  int
}

// OrderPayload is the wire shape sent to the backend on final submission.
// Items carries one product id per unit ordered.
type OrderPayload struct {
	Payment string   `json:"paymentMethod" validate:"required"`
	Email   string   `json:"email" validate:"required,email"`
	Phone   string   `json:"phone" validate:"required,phone"`
	Address string   `json:"address" validate:"required"`
	Total   float64  `json:"total" validate:"gte=0"`
	Items   []string `json:"items" validate:"required,min=1,dive,required"`
}

type OrderConfirmation struct {
	ID     string  `json:"id"`
	Total  float64 `json:"total"`
	Status string  `json:"status"`
}

const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
	OrderStatusShipped = "shipped"
)
