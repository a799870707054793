package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "dukastore/internal/log"
	"dukastore/internal/services"
	"dukastore/internal/validate"
)

type ReviewHandler struct {
	Store *services.Store
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	ensureSID(c)
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	text := validate.Text(c.FormValue("text"))
	ratingValue, ok := validate.Rating(c.FormValue("rating"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing rating")
	}

	if err := h.Store.AddReview(id, text, ratingValue); err != nil {
		return fail(c, "review.create", err)
	}
	applog.Audit(c, "review.create", map[string]any{"product_id": id, "rating": ratingValue})
	return c.Redirect("/?msg=Thanks+for+your+review")
}
