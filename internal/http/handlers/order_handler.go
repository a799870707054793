package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "dukastore/internal/log"
	"dukastore/internal/services"
)

type OrderHandler struct {
	Store *services.Store
}

func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	o, err := h.Store.Checkout()
	if err != nil {
		applog.Security(c, "order.checkout.fail", map[string]any{"sid": sid, "error": err.Error()})
		return fail(c, "order.checkout", err)
	}
	applog.Audit(c, "order.checkout", map[string]any{"order_id": o.ID, "user": o.User, "items": len(o.Items)})
	return c.Redirect("/?msg=Checkout+successful")
}
