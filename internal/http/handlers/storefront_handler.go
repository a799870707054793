package handlers

import (
	"github.com/gofiber/fiber/v2"

	"dukastore/internal/services"
	"dukastore/internal/validate"
)

type StorefrontHandler struct {
	Store *services.Store
}

// Home renders the whole storefront in one page: products (optionally
// filtered by ?q=), cart, login state, admin panel and order history.
func (h *StorefrontHandler) Home(c *fiber.Ctx) error {
	ensureSID(c)
	q := validate.Q(c.Query("q"))

	return render(c, "index", fiber.Map{
		"Q":        q,
		"Products": h.Store.SearchProducts(q),
		"Cart":     h.Store.CartContents(),
		"User":     h.Store.CurrentSession(),
		"Orders":   h.Store.OrderHistory(),
		"Msg":      validate.Q(c.Query("msg")),
	})
}
