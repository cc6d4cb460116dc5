package middleware

import (
	"github.com/Princeaman007/interships/internal/authctx"
	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/gofiber/fiber/v2"
)

// Language resolves the response language from Accept-Language once per
// request and echoes it in Content-Language.
func Language() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := i18n.FromAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
		authctx.SetLang(c, lang)
		c.Set(fiber.HeaderContentLanguage, lang.String())
		return c.Next()
	}
}
