package repos

import "github.com/jmoiron/sqlx"

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

type OrderRow struct {
	ID          string  `db:"id" json:"id"`
	Payment     string  `db:"payment" json:"payment"`
	Email       string  `db:"email" json:"email"`
	Phone       string  `db:"phone" json:"phone"`
	Address     string  `db:"address" json:"address"`
	Total       float64 `db:"total" json:"total"`
	ClientTotal float64 `db:"client_total" json:"clientTotal"`
	Status      string  `db:"status" json:"status"`
	CreatedAt   string  `db:"created_at" json:"createdAt"`
}

type OrderItemRow struct {
	ProductID string  `db:"product_id" json:"productId"`
	Title     string  `db:"title" json:"title"`
	Qty       int     `db:"qty" json:"qty"`
	Price     float64 `db:"price" json:"price"`
	Subtotal  float64 `db:"subtotal" json:"subtotal"`
}

// Create inserts a new order header. Both the server-recomputed total and the
// client-claimed total are kept for audit.
func (r *OrderRepo) Create(orderID, payment, email, phone, address string, total, clientTotal float64, status string) error {
	_, err := r.db.Exec(`
	  INSERT INTO orders(id, payment, email, phone, address, total, client_total, status, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, orderID, payment, email, phone, address, total, clientTotal, status)
	return err
}

// InsertItem inserts a single aggregated line item.
func (r *OrderRepo) InsertItem(orderID, productID string, qty int, price float64) error {
	_, err := r.db.Exec(`
	  INSERT INTO order_items(order_id, product_id, qty, price)
	  VALUES(?, ?, ?, ?)
	`, orderID, productID, qty, price)
	return err
}

func (r *OrderRepo) Get(orderID string) (OrderRow, []OrderItemRow, error) {
	var o OrderRow
	if err := r.db.Get(&o, `
		SELECT id, payment, email, phone, address, total, client_total, status, created_at
		FROM orders WHERE id = ?
	`, orderID); err != nil {
		return OrderRow{}, nil, err
	}

	var items []OrderItemRow
	if err := r.db.Select(&items, `
		SELECT oi.product_id, p.title, oi.qty, oi.price, (oi.qty * oi.price) AS subtotal
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ?
		ORDER BY p.title
	`, orderID); err != nil {
		return OrderRow{}, nil, err
	}

	return o, items, nil
}

func (r *OrderRepo) ListLatest(limit int) ([]OrderRow, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []OrderRow
	err := r.db.Select(&out, `
		SELECT id, payment, email, phone, address, total, client_total, status, created_at
		FROM orders
		ORDER BY datetime(created_at) DESC
		LIMIT ?
	`, limit)
	return out, err
}

func (r *OrderRepo) UpdateStatus(id, status string) error {
	_, err := r.db.Exec(`UPDATE orders SET status = ? WHERE id = ?`, status, id)
	return err
}
