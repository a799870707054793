package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "dukastore/internal/log"
	"dukastore/internal/services"
	"dukastore/internal/validate"
)

// AdminHandler carries the catalog mutations. The admin check itself lives
// in the store facade, so these handlers just surface its verdict.
type AdminHandler struct {
	Store *services.Store
}

func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	ensureSID(c)
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("name must be 1-60 characters")
	}
	price, ok := validate.Price(c.FormValue("price"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("price must be a positive number")
	}

	p, err := h.Store.AddProduct(name, price)
	if err != nil {
		return fail(c, "admin.product.create", err)
	}
	applog.Audit(c, "admin.product.create", map[string]any{"product_id": p.ID, "name": p.Name})
	return c.Redirect("/")
}

func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	ensureSID(c)
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	if err := h.Store.DeleteProduct(id); err != nil {
		return fail(c, "admin.product.delete", err)
	}
	applog.Audit(c, "admin.product.delete", map[string]any{"product_id": id})
	return c.Redirect("/")
}
