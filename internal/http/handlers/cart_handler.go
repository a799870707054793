package handlers

import (
	"github.com/gofiber/fiber/v2"

	"dukastore/internal/services"
	"dukastore/internal/validate"
)

type CartHandler struct {
	Store *services.Store
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	ensureSID(c)
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	qty := validate.Qty(c.FormValue("qty"))
	if err := h.Store.AddToCart(id, qty); err != nil {
		return fail(c, "cart.add", err)
	}
	return c.Redirect("/")
}

func (h *CartHandler) ChangeQty(c *fiber.Ctx) error {
	ensureSID(c)
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	delta, ok := validate.Delta(c.FormValue("delta"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing delta")
	}
	if err := h.Store.ChangeQty(id, delta); err != nil {
		return fail(c, "cart.qty", err)
	}
	return c.Redirect("/")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	ensureSID(c)
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	if err := h.Store.RemoveFromCart(id); err != nil {
		return fail(c, "cart.remove", err)
	}
	return c.Redirect("/")
}
