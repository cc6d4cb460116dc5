package middleware

import (
	"github.com/Princeaman007/interships/internal/apperr"
	"github.com/Princeaman007/interships/internal/authctx"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/Princeaman007/interships/internal/respond"
	"github.com/Princeaman007/interships/internal/services"
	"github.com/gofiber/fiber/v2"
)

// RequireRole lets the request through only when the authenticated user holds
// one of allowed. It must run after Authenticate.
func RequireRole(allowed ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := authctx.User(c)
		if user == nil {
			return respond.Error(c, services.ErrUnauthenticated)
		}
		if !user.Role.Valid() || !user.Role.In(allowed...) {
			return respond.Error(c, apperr.ErrForbidden)
		}
		return c.Next()
	}
}

func StudentOnly() fiber.Handler {
	return RequireRole(models.RoleStudent)
}

// AdminOnly admits admins and super admins.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := authctx.User(c)
		if user == nil {
			return respond.Error(c, services.ErrUnauthenticated)
		}
		if !user.Role.IsAdmin() {
			return respond.Error(c, apperr.ErrForbidden)
		}
		return c.Next()
	}
}

func SuperAdminOnly() fiber.Handler {
	return RequireRole(models.RoleSuperAdmin)
}
