package repos

import (
	"weblarek/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) List() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT id, title, category, description, price, image
	  FROM products
	  WHERE active = 1
	  ORDER BY created_at, id
	`)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, title, category, description, price, image
	  FROM products
	  WHERE id = ? AND active = 1
	`, id)
	return p, err
}
