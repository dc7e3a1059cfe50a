package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "github.com/iam-david1/shophub/internal/log"
	"github.com/iam-david1/shophub/internal/services"
	"github.com/iam-david1/shophub/internal/validate"
)

type ContactHandler struct {
	Contact *services.ContactService
}

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req contactReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "name"})
		return badRequest(c, "name, email and message are required")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return badRequest(c, "name, email and message are required")
	}
	msg, ok := validate.Comment(req.Message)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "message"})
		return badRequest(c, "name, email and message are required")
	}

	id, err := h.Contact.Submit(name, email, msg)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}
