package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/iam-david1/shophub/internal/domain"
	applog "github.com/iam-david1/shophub/internal/log"
	"github.com/iam-david1/shophub/internal/services"
	"github.com/iam-david1/shophub/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

// sessionParam validates the opaque session token from the path before any
// storage is touched.
func sessionParam(c *fiber.Ctx) (string, bool) {
	sid, ok := validate.SessionID(c.Params("sessionId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "sessionId"})
	}
	return sid, ok
}

type createCartReq struct {
	SessionID string `json:"sessionId"`
}

func (h *CartHandler) Create(c *fiber.Ctx) error {
	var req createCartReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	sid, ok := validate.SessionID(req.SessionID)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "sessionId"})
		return badRequest(c, "sessionId is required and must be under 100 characters")
	}
	if err := h.Cart.EnsureCart(sid); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"sessionId": sid})
}

func (h *CartHandler) List(c *fiber.Ctx) error {
	sid, ok := sessionParam(c)
	if !ok {
		return badRequest(c, "invalid sessionId")
	}
	lines, err := h.Cart.List(sid)
	if err != nil {
		return err
	}
	return c.JSON(lines)
}

type addItemReq struct {
	ProductID int64 `json:"productId"`
	Quantity  *int  `json:"quantity"`
}

func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	sid, ok := sessionParam(c)
	if !ok {
		return badRequest(c, "invalid sessionId")
	}
	var req addItemReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if req.ProductID < 1 {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return badRequest(c, "productId must be a positive integer")
	}
	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}
	if !validate.Qty(qty) {
		applog.Security(c, "validation.fail", map[string]any{"field": "quantity"})
		return badRequest(c, "quantity must be between 1 and 100")
	}

	itemID, created, err := h.Cart.AddItem(sid, req.ProductID, qty)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return badRequest(c, "productId does not reference a known product")
		}
		return err
	}
	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"cartItemId": itemID})
}

type updateItemReq struct {
	Quantity *int `json:"quantity"`
}

func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	sid, ok := sessionParam(c)
	if !ok {
		return badRequest(c, "invalid sessionId")
	}
	itemID, ok := validate.IntID(c.Params("itemId"))
	if !ok {
		return badRequest(c, "invalid cart item id")
	}
	var req updateItemReq
	if err := c.BodyParser(&req); err != nil || req.Quantity == nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "quantity"})
		return badRequest(c, "quantity must be a number")
	}

	deleted, err := h.Cart.SetQuantity(sid, itemID, *req.Quantity)
	if err != nil {
		return err
	}
	if deleted {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(fiber.Map{"cartItemId": itemID, "quantity": *req.Quantity})
}

func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	sid, ok := sessionParam(c)
	if !ok {
		return badRequest(c, "invalid sessionId")
	}
	itemID, ok := validate.IntID(c.Params("itemId"))
	if !ok {
		return badRequest(c, "invalid cart item id")
	}
	if err := h.Cart.RemoveItem(sid, itemID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
