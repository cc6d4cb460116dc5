// Package respond writes the JSON envelopes shared by every handler.
package respond

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/Princeaman007/interships/internal/apperr"
	"github.com/Princeaman007/interships/internal/authctx"
	"github.com/Princeaman007/interships/internal/database"
	"github.com/Princeaman007/interships/internal/dto"
	"github.com/Princeaman007/interships/internal/i18n"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const debugKey = "respond_debug"

// Debug marks requests whose 500 responses may carry error details.
// It is installed outside production only.
func Debug(enabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(debugKey, enabled)
		return c.Next()
	}
}

func debugEnabled(c *fiber.Ctx) bool {
	v, _ := c.Locals(debugKey).(bool)
	return v
}

// Error maps err onto a status code and a localized ErrorResponse.
func Error(c *fiber.Ctx, err error) error {
	lang := authctx.Lang(c)

	var fe *apperr.FieldError
	if errors.As(err, &fe) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   apperr.ErrValidation.Code,
			Message: i18n.T(lang, apperr.ErrValidation.Key),
			Fields:  fe.Fields,
		})
	}

	var mt *i18n.MissingTranslationError
	if errors.As(err, &mt) {
		fields := make(map[string]string, len(mt.Fields))
		for _, f := range mt.Fields {
			fields[f] = "required"
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   apperr.ErrTranslations.Code,
			Message: i18n.T(lang, apperr.ErrTranslations.Key),
			Fields:  fields,
		})
	}

	if ae, ok := apperr.As(err); ok {
		return c.Status(ae.Status).JSON(dto.ErrorResponse{
			Error:   ae.Code,
			Message: i18n.T(lang, ae.Key),
		})
	}

	if database.IsUniqueViolation(err) {
		return c.Status(apperr.ErrDuplicate.Status).JSON(dto.ErrorResponse{
			Error:   apperr.ErrDuplicate.Code,
			Message: i18n.T(lang, apperr.ErrDuplicate.Key),
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
		return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{
			Error:   "HTTP_" + strconv.Itoa(fiberErr.Code),
			Message: fiberErr.Message,
		})
	}

	attrs := []any{
		"method", c.Method(),
		"path", c.Path(),
		"error", err.Error(),
	}
	if rid, ok := c.Locals("requestid").(string); ok {
		attrs = append(attrs, "request_id", rid)
	}
	if uid := authctx.UserID(c); uid != uuid.Nil {
		attrs = append(attrs, "user_id", uid.String())
	}
	slog.ErrorContext(c.UserContext(), "request failed", attrs...)

	if hub := sentryfiber.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}

	body := dto.ErrorResponse{
		Error:   "INTERNAL_ERROR",
		Message: i18n.T(lang, "common.internal"),
	}
	if debugEnabled(c) {
		body.Details = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}

// OK writes {success: true, data}.
func OK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(dto.Response{Success: true, Data: data})
}

// Message writes {success: true, message} with the localized key.
func Message(c *fiber.Ctx, status int, key string) error {
	return c.Status(status).JSON(dto.Response{
		Success: true,
		Message: i18n.T(authctx.Lang(c), key),
	})
}

// MessageData writes a localized message together with data.
func MessageData(c *fiber.Ctx, status int, key string, data interface{}) error {
	return c.Status(status).JSON(dto.Response{
		Success: true,
		Message: i18n.T(authctx.Lang(c), key),
		Data:    data,
	})
}

// ParamID parses the named route parameter as a UUID.
func ParamID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apperr.ErrInvalidID
	}
	return id, nil
}

// Pagination reads page and limit query parameters, clamping limit to max.
func Pagination(c *fiber.Ctx, defaultLimit, max int) (page, limit int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > max {
		limit = max
	}
	return page, limit
}
