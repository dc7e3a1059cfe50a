package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/iam-david1/shophub/internal/domain"
	applog "github.com/iam-david1/shophub/internal/log"
	"github.com/iam-david1/shophub/internal/services"
	"github.com/iam-david1/shophub/internal/validate"
)

type OrderHandler struct {
	Order *services.OrderService
}

type checkoutReq struct {
	SessionID string `json:"sessionId"`
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req checkoutReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	sid, ok := validate.SessionID(req.SessionID)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "sessionId"})
		return badRequest(c, "sessionId is required")
	}

	orderID, total, err := h.Order.Checkout(sid)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			return badRequest(c, "Cart is empty")
		}
		return err
	}
	applog.Audit(c, "order.place", map[string]any{"order_id": orderID, "total": total})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"orderId": orderID, "total": total})
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return notFound(c, "Order not found")
	}
	order, items, err := h.Order.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Order not found")
		}
		return err
	}
	return c.JSON(fiber.Map{"order": order, "items": items})
}
