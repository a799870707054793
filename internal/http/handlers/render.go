package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"dukastore/internal/domain"
	applog "dukastore/internal/log"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Pick up the token the CSRF middleware put into Locals.
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	} else if cookTok := c.Cookies("csrf_"); cookTok != "" {
		data["CSRFToken"] = cookTok
	}
	return c.Render(tmpl, data)
}

// ensureSID tags the browser with a session cookie for audit logging.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // set true behind HTTPS
		})
	}
	return sid
}

// fail maps model-layer errors onto HTTP statuses. The model never renders
// anything itself; user-visible messaging lives here.
func fail(c *fiber.Ctx, action string, err error) error {
	var ve *domain.ValidationError
	var nfe *domain.NotFoundError
	var pe *domain.PersistenceError
	switch {
	case errors.Is(err, domain.ErrAuthRequired):
		applog.Security(c, action+".denied", map[string]any{"reason": "no_session"})
		return c.Status(fiber.StatusUnauthorized).SendString("Please login first.")
	case errors.Is(err, domain.ErrPermissionDenied):
		applog.Security(c, action+".denied", map[string]any{"reason": "not_admin"})
		return c.Status(fiber.StatusForbidden).SendString("Admin access only.")
	case errors.Is(err, domain.ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).SendString("Your cart is empty.")
	case errors.As(err, &ve):
		applog.Security(c, "validation.fail", map[string]any{"field": ve.Field})
		return c.Status(fiber.StatusBadRequest).SendString(ve.Error())
	case errors.As(err, &nfe):
		return c.Status(fiber.StatusNotFound).SendString("This item is no longer available.")
	case errors.As(err, &pe):
		applog.Error(c, action+".persist", err, map[string]any{"record": pe.Record})
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
	default:
		applog.Error(c, action+".fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
	}
}
