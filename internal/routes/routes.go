// Package routes builds the fiber application and mounts every endpoint.
package routes

import (
	"errors"
	"time"

	"github.com/Princeaman007/interships/internal/authctx"
	"github.com/Princeaman007/interships/internal/config"
	"github.com/Princeaman007/interships/internal/content"
	"github.com/Princeaman007/interships/internal/dto"
	"github.com/Princeaman007/interships/internal/handlers"
	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/Princeaman007/interships/internal/metrics"
	"github.com/Princeaman007/interships/internal/middleware"
	"github.com/Princeaman007/interships/internal/respond"
	"github.com/Princeaman007/interships/internal/services"
	"github.com/Princeaman007/interships/internal/storage"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Services groups the domain services the HTTP layer calls into.
type Services struct {
	Auth         *services.AuthService
	Users        *services.UserService
	Internships  *services.InternshipService
	Applications *services.ApplicationService
	Dashboard    *services.DashboardService
}

type Deps struct {
	Config   *config.Config
	DB       *gorm.DB
	Tokens   *services.TokenIssuer
	Services Services
	Files    storage.FileStore
	Modules  []content.Module
}

// NewApp creates the fiber app with the global middleware chain installed.
func NewApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.BodyLimitMB * 1024 * 1024,
		ErrorHandler: errorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${locals:requestid} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.Tracing())
	app.Use(metrics.Middleware())
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())
	app.Use(middleware.Language())
	app.Use(respond.Debug(!cfg.IsProduction()))

	return app
}

// errorHandler renders errors that escaped a handler, typically fiber's own
// 404 and 413, in the shared error shape.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		lang := authctx.Lang(c)
		switch fe.Code {
		case fiber.StatusNotFound:
			return c.Status(fe.Code).JSON(dto.ErrorResponse{
				Error:   "ROUTE_NOT_FOUND",
				Message: i18n.T(lang, "common.route_not_found"),
			})
		case fiber.StatusRequestEntityTooLarge:
			return c.Status(fe.Code).JSON(dto.ErrorResponse{
				Error:   "BODY_TOO_LARGE",
				Message: i18n.T(lang, "common.body_too_large"),
			})
		}
	}
	return respond.Error(c, err)
}

func rateLimit(perMinute int) fiber.Handler {
	if perMinute <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:               perMinute,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Error:   "RATE_LIMITED",
				Message: i18n.T(authctx.Lang(c), "common.rate_limited"),
			})
		},
	})
}

func Setup(app *fiber.App, d Deps) {
	cfg := d.Config

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	if local, ok := d.Files.(*storage.LocalStore); ok {
		app.Static(cfg.UploadURLPrefix, local.Dir(), fiber.Static{MaxAge: 3600})
	}

	authHandler := handlers.NewAuthHandler(d.Services.Auth, cfg)
	healthHandler := handlers.NewHealthHandler(d.DB)
	userHandler := handlers.NewUserHandler(d.Services.Users)
	internshipHandler := handlers.NewInternshipHandler(d.Services.Internships)
	applicationHandler := handlers.NewApplicationHandler(d.Services.Applications)
	adminHandler := handlers.NewAdminHandler(d.Services.Dashboard)

	authenticate := middleware.Authenticate(d.Tokens, d.Services.Users)
	adminOnly := middleware.AdminOnly()

	api := app.Group("/api")
	api.Use(rateLimit(cfg.RateLimitPerMinute))

	api.Get("/health", healthHandler.Check)

	auth := api.Group("/auth")
	auth.Use(rateLimit(cfg.AuthRateLimitPerMinute))
	auth.Post("/register", authHandler.Register)
	auth.Get("/verify-email", authHandler.VerifyEmail)
	auth.Post("/resend-verification", authHandler.ResendVerification)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh-token", authHandler.Refresh)
	auth.Post("/logout", authHandler.Logout)

	users := api.Group("/users", authenticate)
	users.Get("/me", userHandler.Me)
	users.Put("/me", userHandler.UpdateMe)
	users.Put("/me/avatar", userHandler.UploadAvatar)
	users.Delete("/avatar", userHandler.RemoveAvatar)
	users.Put("/change-password", userHandler.ChangePassword)
	users.Get("/all", adminOnly, userHandler.List)
	users.Get("/stats/overview", adminOnly, userHandler.Stats)
	users.Get("/:id", adminOnly, userHandler.Get)
	users.Patch("/:id/active", adminOnly, userHandler.SetActive)
	users.Put("/:id/role", middleware.SuperAdminOnly(), userHandler.SetRole)
	users.Delete("/:id", adminOnly, userHandler.Delete)

	internships := api.Group("/internships")
	internships.Get("/public", internshipHandler.ListPublic)
	internships.Get("/", authenticate, adminOnly, internshipHandler.ListAll)
	internships.Post("/", authenticate, adminOnly, internshipHandler.Create)
	internships.Get("/:id", internshipHandler.Get)
	internships.Put("/:id", authenticate, adminOnly, internshipHandler.Update)
	internships.Delete("/:id", authenticate, adminOnly, internshipHandler.Delete)
	internships.Put("/:id/image", authenticate, adminOnly, internshipHandler.UploadImage)

	applications := api.Group("/applications", authenticate)
	applications.Post("/", middleware.StudentOnly(), applicationHandler.Apply)
	applications.Get("/me", applicationHandler.ListMine)
	applications.Put("/me/:id", applicationHandler.UpdateMessage)
	applications.Delete("/me/:id", applicationHandler.Delete)
	applications.Get("/etudiant/:studentId", applicationHandler.ListByStudent)
	applications.Get("/all", adminOnly, applicationHandler.ListAll)
	applications.Get("/:id", applicationHandler.Get)
	applications.Patch("/:id/status", adminOnly, applicationHandler.UpdateStatus)

	admin := api.Group("/admin", authenticate, adminOnly)
	admin.Get("/dashboard", adminHandler.Dashboard)

	guards := content.Guards{Auth: authenticate, Admin: adminOnly}
	for _, m := range d.Modules {
		m.RegisterRoutes(api, d.DB, guards)
	}
}
