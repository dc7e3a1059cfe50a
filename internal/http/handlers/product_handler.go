package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/iam-david1/shophub/internal/domain"
	applog "github.com/iam-david1/shophub/internal/log"
	"github.com/iam-david1/shophub/internal/services"
	"github.com/iam-david1/shophub/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProducts()
	if err != nil {
		return err
	}
	return c.JSON(products)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return notFound(c, "Product not found")
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Product not found")
		}
		return err
	}
	return c.JSON(p)
}
