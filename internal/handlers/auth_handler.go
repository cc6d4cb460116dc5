package handlers

import (
	"log/slog"
	"time"

	"github.com/Princeaman007/interships/internal/authctx"
	"github.com/Princeaman007/interships/internal/config"
	"github.com/Princeaman007/interships/internal/dto"
	"github.com/Princeaman007/interships/internal/respond"
	"github.com/Princeaman007/interships/internal/services"
	"github.com/gofiber/fiber/v2"
)

// RefreshCookie is the name of the cookie carrying the refresh token.
const RefreshCookie = "refreshToken"

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := respond.Bind(c, &req); err != nil {
		return respond.Error(c, err)
	}

	user, err := h.authService.Register(c.UserContext(), &req, authctx.Lang(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.MessageData(c, fiber.StatusCreated, "auth.registered", dto.NewUserSummary(user))
}

func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	if err := h.authService.VerifyEmail(c.UserContext(), c.Query("token")); err != nil {
		return respond.Error(c, err)
	}
	return respond.Message(c, fiber.StatusOK, "auth.verified")
}

func (h *AuthHandler) ResendVerification(c *fiber.Ctx) error {
	var req dto.ResendVerificationRequest
	if err := respond.Bind(c, &req); err != nil {
		return respond.Error(c, err)
	}
	if err := h.authService.ResendVerification(c.UserContext(), req.Email, authctx.Lang(c)); err != nil {
		return respond.Error(c, err)
	}
	return respond.Message(c, fiber.StatusOK, "auth.verification_sent")
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := respond.Bind(c, &req); err != nil {
		return respond.Error(c, err)
	}

	session, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		return respond.Error(c, err)
	}

	h.setRefreshCookie(c, session)
	return respond.MessageData(c, fiber.StatusOK, "auth.login_success", dto.LoginResponse{
		AccessToken: session.AccessToken,
		User:        dto.NewUserSummary(session.User),
	})
}

// Refresh rotates the refresh cookie and returns a new access token.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	session, err := h.authService.Refresh(c.UserContext(), c.Cookies(RefreshCookie))
	if err != nil {
		return respond.Error(c, err)
	}

	h.setRefreshCookie(c, session)
	return respond.OK(c, dto.TokenResponse{AccessToken: session.AccessToken})
}

// Logout always clears the cookie and answers 200, even without a session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authService.Logout(c.UserContext(), c.Cookies(RefreshCookie)); err != nil {
		slog.ErrorContext(c.UserContext(), "failed to revoke refresh token",
			"error", err.Error(),
			"request_id", c.Locals("requestid"),
		)
	}
	h.clearRefreshCookie(c)
	return respond.Message(c, fiber.StatusOK, "auth.logged_out")
}

func (h *AuthHandler) setRefreshCookie(c *fiber.Ctx, s *services.Session) {
	c.Cookie(&fiber.Cookie{
		Name:     RefreshCookie,
		Value:    s.RefreshToken,
		Path:     "/",
		MaxAge:   int(time.Until(s.RefreshExpires).Seconds()),
		Expires:  s.RefreshExpires,
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     RefreshCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
