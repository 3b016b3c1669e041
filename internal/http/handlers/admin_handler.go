package handlers

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"weblarek/internal/domain"
	applog "weblarek/internal/log"
	"weblarek/internal/repos"
	"weblarek/internal/validate"
)

type AdminHandler struct {
	Orders *repos.OrderRepo
}

// GET /api/admin/orders
func (h *AdminHandler) LatestOrders(c *fiber.Ctx) error {
	ords, err := h.Orders.ListLatest(c.QueryInt("limit", 100))
	if err != nil {
		applog.Error(c, "admin.orders.list", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load orders"})
	}
	return c.JSON(fiber.Map{"total": len(ords), "items": ords})
}

// PATCH /api/order/:id/status
// Orders move pending -> paid -> shipped; anything else is rejected.
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed status payload"})
	}
	switch body.Status {
	case domain.OrderStatusPending, domain.OrderStatusPaid, domain.OrderStatusShipped:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown status"})
	}

	if _, _, err := h.Orders.Get(id); errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	} else if err != nil {
		applog.Error(c, "admin.orders.update", err, map[string]any{"order_id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load order"})
	}

	if err := h.Orders.UpdateStatus(id, body.Status); err != nil {
		applog.Error(c, "admin.orders.update", err, map[string]any{"order_id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not update status"})
	}
	applog.Audit(c, "admin.orders.update", map[string]any{"order_id": id, "status": body.Status})
	return c.JSON(fiber.Map{"id": id, "status": body.Status})
}
