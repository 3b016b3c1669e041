package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"weblarek/internal/domain"
	"weblarek/internal/repos"
	"weblarek/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	schema := `
	CREATE TABLE products(id TEXT PRIMARY KEY, title TEXT, category TEXT, description TEXT DEFAULT '',
	  price NUMERIC NULL, image TEXT DEFAULT '', active INTEGER DEFAULT 1, created_at TEXT, updated_at TEXT);
	CREATE TABLE orders(id TEXT PRIMARY KEY, payment TEXT, email TEXT, phone TEXT, address TEXT,
	  total NUMERIC, client_total NUMERIC, status TEXT, created_at TEXT);
	CREATE TABLE order_items(order_id TEXT, product_id TEXT, qty INTEGER, price NUMERIC,
	  PRIMARY KEY(order_id, product_id));

	INSERT INTO products(id,title,category,price,active) VALUES
	  ('hammer-001','+1 hour in a day','hard-skill',750,1),
	  ('butter-004','Anti-stress oil','other',540,1),
	  ('backend-003','Framework for solving problems','other',NULL,1);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestOrderPlaceRecomputesTotalAndAggregates(t *testing.T) {
	db := memdb(t)
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	svc := services.NewOrderService(prodRepo, orderRepo)

	payload := domain.OrderPayload{
		Payment: "card",
		Email:   "t@e.com",
		Phone:   "12345678901",
		Address: "Main st 1",
		Total:   9999, // client claim is audited, never stored as the total
		Items:   []string{"hammer-001", "hammer-001", "butter-004", "backend-003"},
	}
	oid, serverTotal, err := svc.Place(payload)
	if err != nil {
		t.Fatal(err)
	}
	if oid == "" {
		t.Fatal("no order id")
	}
	// 2*750 + 540, priceless backend-003 contributes zero
	if serverTotal != 2040 {
		t.Fatalf("want server total 2040, got %v", serverTotal)
	}

	o, items, err := orderRepo.Get(oid)
	if err != nil {
		t.Fatal(err)
	}
	if o.Total != 2040 || o.ClientTotal != 9999 || o.Status != domain.OrderStatusPending {
		t.Fatalf("bad order row: %+v", o)
	}
	if len(items) != 3 {
		t.Fatalf("want 3 aggregated lines, got %d", len(items))
	}
	for _, it := range items {
		if it.ProductID == "hammer-001" && it.Qty != 2 {
			t.Fatalf("duplicated id must aggregate to qty=2, got %d", it.Qty)
		}
	}
}

func TestOrderPlaceUnknownProduct(t *testing.T) {
	db := memdb(t)
	svc := services.NewOrderService(repos.NewProductRepo(db), repos.NewOrderRepo(db))

	_, _, err := svc.Place(domain.OrderPayload{
		Payment: "card", Email: "t@e.com", Phone: "12345678901", Address: "x",
		Items: []string{"ghost"},
	})
	if err == nil {
		t.Fatal("expected error for unknown product")
	}

	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM orders`); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("no order row should exist, got %d", n)
	}
}

func TestOrderPlaceEmptyItems(t *testing.T) {
	db := memdb(t)
	svc := services.NewOrderService(repos.NewProductRepo(db), repos.NewOrderRepo(db))

	if _, _, err := svc.Place(domain.OrderPayload{Payment: "card"}); err == nil {
		t.Fatal("expected error for empty item list")
	}
}
