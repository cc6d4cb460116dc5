package handlers

import (
	"github.com/Princeaman007/interships/internal/authctx"
	"github.com/Princeaman007/interships/internal/respond"
	"github.com/Princeaman007/interships/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	dashboard *services.DashboardService
}

func NewAdminHandler(dashboard *services.DashboardService) *AdminHandler {
	return &AdminHandler{dashboard: dashboard}
}

// Dashboard returns the back-office overview; ?range=N adds the activity of
// the last N days.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	days := c.QueryInt("range", 0)
	if days > 365 {
		days = 365
	}
	out, err := h.dashboard.Overview(c.UserContext(), days, authctx.Lang(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, out)
}
