// Package authctx stores the resolved identity and language on a request.
package authctx

import (
	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	userKey = "auth_user"
	langKey = "lang"
)

func SetUser(c *fiber.Ctx, u *models.User) {
	c.Locals(userKey, u)
}

// User returns the authenticated user, or nil on public routes.
func User(c *fiber.Ctx) *models.User {
	if u, ok := c.Locals(userKey).(*models.User); ok {
		return u
	}
	return nil
}

// UserID returns the authenticated user's id, or uuid.Nil.
func UserID(c *fiber.Ctx) uuid.UUID {
	if u := User(c); u != nil {
		return u.ID
	}
	return uuid.Nil
}

func SetLang(c *fiber.Ctx, l i18n.Lang) {
	c.Locals(langKey, l)
}

// Lang returns the request language resolved by the language middleware,
// falling back to the Accept-Language header.
func Lang(c *fiber.Ctx) i18n.Lang {
	if l, ok := c.Locals(langKey).(i18n.Lang); ok {
		return l
	}
	return i18n.FromAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
}

// QueryLang lets an explicit ?lang= override the request language. Used by
// the public listings.
func QueryLang(c *fiber.Ctx) i18n.Lang {
	if q := c.Query("lang"); q != "" {
		return i18n.Parse(q)
	}
	return Lang(c)
}
