// Package content holds the editorial modules (blog, FAQ, testimonials,
// contact, offers, partners, static pages). Each module owns its tables and
// mounts its own routes under /api.
package content

import (
	"context"

	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Guards are the authorization middlewares a module can put in front of its
// routes. Admin must be used after Auth.
type Guards struct {
	Auth  fiber.Handler
	Admin fiber.Handler
}

// Module defines the interface every content module implements.
type Module interface {
	// ID returns the unique module identifier.
	ID() string

	// Models returns the GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts the module's routes on the /api group.
	RegisterRoutes(router fiber.Router, db *gorm.DB, g Guards)
}

// Seeder is implemented by modules that ship default rows. Seeding must be
// idempotent.
type Seeder interface {
	Seed(ctx context.Context, db *gorm.DB) error
}

// PageText is a localized title and body.
type PageText struct {
	Title   string `gorm:"size:255" json:"title"`
	Content string `gorm:"type:text" json:"content"`
}

func (t PageText) Missing() []string {
	var m []string
	if i18n.Blank(t.Title) {
		m = append(m, "title")
	}
	if i18n.Blank(t.Content) {
		m = append(m, "content")
	}
	return m
}

// PageTexts is the translation pair stored by pages and partner content.
type PageTexts = i18n.Translations[PageText]
