package middleware

import (
	"context"
	"errors"

	"github.com/Princeaman007/interships/internal/authctx"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/Princeaman007/interships/internal/respond"
	"github.com/Princeaman007/interships/internal/services"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenKey = "jwt"

// UserLoader resolves the account behind a verified token.
type UserLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Authenticate verifies the Bearer access token and attaches the account to
// the request. Disabled accounts are refused even with a valid token.
func Authenticate(issuer *services.TokenIssuer, users UserLoader) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: issuer.AccessKey()},
		Claims:     &services.Claims{},
		ContextKey: tokenKey,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			switch {
			case errors.Is(err, jwtware.ErrJWTMissingOrMalformed):
				return respond.Error(c, services.ErrUnauthenticated)
			case errors.Is(err, jwt.ErrTokenExpired):
				return respond.Error(c, services.ErrExpiredToken)
			default:
				return respond.Error(c, services.ErrInvalidToken)
			}
		},
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals(tokenKey).(*jwt.Token)
			if !ok {
				return respond.Error(c, services.ErrInvalidToken)
			}
			claims, ok := token.Claims.(*services.Claims)
			if !ok || claims.Kind != services.AccessToken || !claims.Role.Valid() {
				return respond.Error(c, services.ErrInvalidToken)
			}
			id, err := claims.UserID()
			if err != nil {
				return respond.Error(c, services.ErrInvalidToken)
			}

			user, err := users.GetByID(c.UserContext(), id)
			if err != nil {
				if errors.Is(err, services.ErrUserNotFound) {
					return respond.Error(c, services.ErrUnauthenticated)
				}
				return respond.Error(c, err)
			}
			if !user.IsActive {
				return respond.Error(c, services.ErrAccountDisabled)
			}

			authctx.SetUser(c, user)
			return c.Next()
		},
	})
}
