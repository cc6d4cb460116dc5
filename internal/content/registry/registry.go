// Package registry lists the content modules mounted by the server.
package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Princeaman007/interships/internal/content"
	"github.com/Princeaman007/interships/internal/content/blog"
	"github.com/Princeaman007/interships/internal/content/contact"
	"github.com/Princeaman007/interships/internal/content/faq"
	"github.com/Princeaman007/interships/internal/content/offers"
	"github.com/Princeaman007/interships/internal/content/pages"
	"github.com/Princeaman007/interships/internal/content/partners"
	"github.com/Princeaman007/interships/internal/content/testimonials"
	"github.com/Princeaman007/interships/internal/notify"
	"gorm.io/gorm"
)

// Modules returns every content module in mount order.
func Modules(notifier notify.Notifier) []content.Module {
	return []content.Module{
		blog.New(),
		faq.New(),
		testimonials.New(),
		contact.New(notifier),
		offers.New(),
		partners.New(),
		pages.New(),
	}
}

// Models collects the models of mods for migration.
func Models(mods []content.Module) []interface{} {
	var out []interface{}
	for _, m := range mods {
		out = append(out, m.Models()...)
	}
	return out
}

// Seed runs every module that ships default data.
func Seed(ctx context.Context, db *gorm.DB, mods []content.Module) error {
	for _, m := range mods {
		s, ok := m.(content.Seeder)
		if !ok {
			continue
		}
		if err := s.Seed(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", m.ID(), err)
		}
		slog.Info("module seeded", "module", m.ID())
	}
	return nil
}
