package handlers

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "weblarek/internal/log"
	"weblarek/internal/services"
	"weblarek/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// List serves the whole catalog as {total, items}. Priceless products carry
// a JSON null price.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProducts()
	if err != nil {
		applog.Error(c, "product.list", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load products"})
	}
	return c.JSON(fiber.Map{"total": len(products), "items": products})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	p, err := h.Catalog.GetProduct(id)
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	if err != nil {
		applog.Error(c, "product.detail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load product"})
	}
	return c.JSON(p)
}

// Index renders the server-side catalog page.
func (h *ProductHandler) Index(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProducts()
	if err != nil {
		applog.Error(c, "product.index", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load the catalog"})
	}
	type row struct {
		ID, Title, Category, Price string
	}
	rows := make([]row, 0, len(products))
	for _, p := range products {
		rows = append(rows, row{ID: p.ID, Title: p.Title, Category: p.Category, Price: p.DisplayPrice()})
	}
	return c.Render("catalog", fiber.Map{"Products": rows})
}
