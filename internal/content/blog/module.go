package blog

import (
	"github.com/Princeaman007/interships/internal/content"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) ID() string { return "blog" }

func (m *Module) Models() []interface{} {
	return []interface{}{&Post{}}
}

func (m *Module) RegisterRoutes(router fiber.Router, db *gorm.DB, g content.Guards) {
	h := NewHandler(NewService(db))

	r := router.Group("/blog")
	r.Get("/", h.List)
	r.Get("/admin/all", g.Auth, g.Admin, h.AdminList)
	r.Get("/:slug", h.Get)
	r.Post("/", g.Auth, g.Admin, h.Create)
	r.Put("/:slug", g.Auth, g.Admin, h.Update)
	r.Delete("/:slug", g.Auth, g.Admin, h.Delete)
}
