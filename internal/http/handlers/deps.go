package handlers

import (
	"weblarek/internal/repos"
	"weblarek/internal/services"
	"weblarek/internal/validate"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
)

type Deps struct {
	ProductHandler *ProductHandler
	OrderHandler   *OrderHandler
	AdminHandler   *AdminHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	orderSvc := services.NewOrderService(prodRepo, orderRepo)

	v := validator.New()
	// Phones arrive formatted ("+7 (900) 123-45-67"); count digits like the
	// storefront does instead of characters.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		_, ok := validate.Phone(fl.Field().String())
		return ok
	})

	return &Deps{
		ProductHandler: &ProductHandler{Catalog: catalogSvc},
		OrderHandler:   &OrderHandler{Order: orderSvc, Repo: orderRepo, Validate: v},
		AdminHandler:   &AdminHandler{Orders: orderRepo},
	}
}
