package handlers

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"weblarek/internal/domain"
	applog "weblarek/internal/log"
	"weblarek/internal/repos"
	"weblarek/internal/services"
	"weblarek/internal/validate"
)

type OrderHandler struct {
	Order    *services.OrderService
	Repo     *repos.OrderRepo
	Validate *validator.Validate
}

// Create accepts a submitted order. The payload is validated structurally
// here; the service re-checks every product and recomputes the total from
// catalog prices, so a tampered client total never becomes the stored one.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var payload domain.OrderPayload
	if err := c.BodyParser(&payload); err != nil {
		applog.Warn(c, "order.create.badjson", map[string]any{"error": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed order payload"})
	}

	if err := h.Validate.Struct(payload); err != nil {
		var verrs validator.ValidationErrors
		fields := []string{}
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields = append(fields, strings.ToLower(fe.Field()))
			}
		}
		applog.Warn(c, "order.create.invalid", map[string]any{"fields": fields})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "order payload failed validation",
			"fields": fields,
		})
	}

	orderID, serverTotal, err := h.Order.Place(payload)
	if err != nil {
		applog.Warn(c, "order.create.fail", map[string]any{"error": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	applog.Audit(c, "order.create", map[string]any{
		"order_id":     orderID,
		"server_total": serverTotal,
		"client_total": payload.Total,
		"mismatch":     serverTotal != payload.Total,
	})

	return c.Status(fiber.StatusCreated).JSON(domain.OrderConfirmation{
		ID:     orderID,
		Total:  serverTotal,
		Status: domain.OrderStatusPending,
	})
}

func (h *OrderHandler) View(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}
	o, items, err := h.Repo.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	}
	if err != nil {
		applog.Error(c, "order.view", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load order"})
	}
	return c.JSON(fiber.Map{"order": o, "items": items})
}
