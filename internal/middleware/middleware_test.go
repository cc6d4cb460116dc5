package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Princeaman007/interships/internal/authctx"
	"github.com/Princeaman007/interships/internal/config"
	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func appWithUser(role models.Role, guard fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(Language())
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			authctx.SetUser(c, &models.User{ID: uuid.New(), Role: role, IsActive: true})
		}
		return c.Next()
	})
	app.Get("/", guard, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestRoleGuards(t *testing.T) {
	tests := []struct {
		name  string
		guard fiber.Handler
		role  models.Role
		want  int
	}{
		{"admin only lets admin in", AdminOnly(), models.RoleAdmin, http.StatusNoContent},
		{"admin only lets super admin in", AdminOnly(), models.RoleSuperAdmin, http.StatusNoContent},
		{"admin only refuses student", AdminOnly(), models.RoleStudent, http.StatusForbidden},
		{"admin only without user", AdminOnly(), "", http.StatusUnauthorized},
		{"student only refuses admin", StudentOnly(), models.RoleAdmin, http.StatusForbidden},
		{"student only lets student in", StudentOnly(), models.RoleStudent, http.StatusNoContent},
		{"super admin only refuses admin", SuperAdminOnly(), models.RoleAdmin, http.StatusForbidden},
		{"super admin only", SuperAdminOnly(), models.RoleSuperAdmin, http.StatusNoContent},
		{"unknown role", RequireRole(models.RoleStudent), models.Role("guest"), http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := appWithUser(tt.role, tt.guard)
			resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestForbiddenMessageFollowsLanguage(t *testing.T) {
	app := appWithUser(models.RoleStudent, AdminOnly())
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Accept-Language", "en-GB,en;q=0.8,fr;q=0.5")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "FORBIDDEN" || body.Message != i18n.T(i18n.EN, "auth.forbidden") {
		t.Fatalf("unexpected body %+v", body)
	}
	if got := resp.Header.Get("Content-Language"); got != "en" {
		t.Fatalf("Content-Language = %q, want en", got)
	}
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	app := fiber.New()
	app.Use(CORS(&config.Config{CORSOrigins: []string{"http://localhost:5173"}}))
	app.Use(SecurityHeaders())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("Access-Control-Allow-Origin = %q", got)
	}
	if got := resp.Header.Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Fatalf("Access-Control-Allow-Credentials = %q", got)
	}
	if got := resp.Header.Get("X-Frame-Options"); got != "DENY" {
		t.Fatalf("X-Frame-Options = %q", got)
	}
}
