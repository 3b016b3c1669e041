package services

import (
	"errors"
	"fmt"

	"weblarek/internal/domain"
	"weblarek/internal/repos"

	"github.com/google/uuid"
)

type OrderService struct {
	Prods  *repos.ProductRepo
	Orders *repos.OrderRepo
}

func NewOrderService(prods *repos.ProductRepo, orders *repos.OrderRepo) *OrderService {
	return &OrderService{Prods: prods, Orders: orders}
}

// Place persists a submitted order. The payload's item list repeats a product
// id once per unit; lines are aggregated back to (product, qty) here. The
// total is recomputed server-side from catalog prices (priceless products
// contribute zero) and returned next to the client-claimed total so the
// handler can audit mismatches.
func (s *OrderService) Place(payload domain.OrderPayload) (string, float64, error) {
	if len(payload.Items) == 0 {
		return "", 0, errors.New("order has no items")
	}

	qty := map[string]int{}
	var order []string
	for _, id := range payload.Items {
		if qty[id] == 0 {
			order = append(order, id)
		}
		qty[id]++
	}

	type line struct {
		productID string
		qty       int
		price     float64
	}
	var lines []line
	total := 0.0
	for _, id := range order {
		p, err := s.Prods.Get(id)
		if err != nil {
			return "", 0, fmt.Errorf("unknown product %s", id)
		}
		price := 0.0
		if p.Price != nil {
			price = *p.Price
		}
		lines = append(lines, line{productID: id, qty: qty[id], price: price})
		total += price * float64(qty[id])
	}

	orderID := uuid.NewString()
	if err := s.Orders.Create(orderID, payload.Payment, payload.Email, payload.Phone, payload.Address,
		total, payload.Total, domain.OrderStatusPending); err != nil {
		return "", 0, err
	}
	for _, l := range lines {
		if err := s.Orders.InsertItem(orderID, l.productID, l.qty, l.price); err != nil {
			return "", 0, err
		}
	}
	return orderID, total, nil
}
