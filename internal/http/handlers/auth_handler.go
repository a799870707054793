package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "dukastore/internal/log"
	"dukastore/internal/services"
	"dukastore/internal/validate"
)

type AuthHandler struct {
	Store *services.Store
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	username, _ := validate.Credential(c.FormValue("username"))
	password, _ := validate.Credential(c.FormValue("password"))

	sess, err := h.Store.Login(username, password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"username": username})
		return fail(c, "auth.login", err)
	}

	applog.Audit(c, "auth.login.success", map[string]any{"username": sess.Username, "role": sess.Role, "sid": sid})
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if err := h.Store.Logout(); err != nil {
		return fail(c, "auth.logout", err)
	}
	applog.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}
