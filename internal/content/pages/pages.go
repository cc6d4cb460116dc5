// Package pages serves the fixed "about" and "services" pages. Each section
// has a closed set of slugs; the rows are seeded and then edited by admins.
package pages

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Princeaman007/interships/internal/apperr"
	"github.com/Princeaman007/interships/internal/content"
	"github.com/Princeaman007/interships/internal/database"
	"github.com/Princeaman007/interships/internal/i18n"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Section string

const (
	About    Section = "about"
	Services Section = "services"
)

var slugs = map[Section][]string{
	About:    {"why-hire", "how-it-works", "submit-offer"},
	Services: {"internship-search", "housing", "airport-pickup", "support"},
}

var (
	ErrInvalidSlug = apperr.Validation("INVALID_SLUG", "page.invalid_slug")
	ErrNotFound    = apperr.NotFound("PAGE_NOT_FOUND", "page.not_found")
)

// ValidSlug reports whether slug belongs to section.
func ValidSlug(section Section, slug string) bool {
	for _, s := range slugs[section] {
		if s == slug {
			return true
		}
	}
	return false
}

type Page struct {
	Section      Section           `gorm:"size:20;primaryKey" json:"section"`
	Slug         string            `gorm:"size:50;primaryKey" json:"slug"`
	Icon         string            `gorm:"size:100" json:"icon,omitempty"`
	Translations content.PageTexts `gorm:"embedded" json:"translations"`
	PricingTable datatypes.JSON    `json:"pricingTable,omitempty"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// View is a page projected into one language.
type View struct {
	Slug         string         `json:"slug"`
	Icon         string         `json:"icon,omitempty"`
	Title        string         `json:"title"`
	Content      string         `json:"content"`
	PricingTable datatypes.JSON `json:"pricingTable,omitempty"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func (p *Page) View(lang i18n.Lang) View {
	text := p.Translations.Get(lang)
	return View{
		Slug:         p.Slug,
		Icon:         p.Icon,
		Title:        text.Title,
		Content:      text.Content,
		PricingTable: p.PricingTable,
		UpdatedAt:    p.UpdatedAt,
	}
}

type Input struct {
	Icon         string            `json:"icon" validate:"omitempty,max=100"`
	Translations content.PageTexts `json:"translations"`
	PricingTable datatypes.JSON    `json:"pricingTable"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Get(ctx context.Context, section Section, slug string) (*Page, error) {
	if !ValidSlug(section, slug) {
		return nil, ErrInvalidSlug
	}
	var p Page
	err := s.db.WithContext(ctx).First(&p, "section = ? AND slug = ?", section, slug).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Save creates or replaces a page.
func (s *Service) Save(ctx context.Context, section Section, slug string, in *Input) (*Page, error) {
	if !ValidSlug(section, slug) {
		return nil, ErrInvalidSlug
	}
	if err := in.Translations.Validate(); err != nil {
		return nil, err
	}
	p := &Page{
		Section:      section,
		Slug:         slug,
		Icon:         in.Icon,
		Translations: in.Translations,
		PricingTable: in.PricingTable,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "section"}, {Name: "slug"}},
		UpdateAll: true,
	}).Create(p).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save page: %w", err)
	}
	return p, nil
}

//go:embed seed.yaml
var seedYAML []byte

type seedPage struct {
	Section      Section                  `yaml:"section"`
	Slug         string                   `yaml:"slug"`
	Icon         string                   `yaml:"icon"`
	Title        map[string]string        `yaml:"title"`
	Content      map[string]string        `yaml:"content"`
	PricingTable []map[string]interface{} `yaml:"pricingTable"`
}

func loadSeed() ([]Page, error) {
	var raw []seedPage
	if err := yaml.Unmarshal(seedYAML, &raw); err != nil {
		return nil, fmt.Errorf("parse page seed: %w", err)
	}
	pages := make([]Page, 0, len(raw))
	for _, r := range raw {
		if !ValidSlug(r.Section, r.Slug) {
			return nil, fmt.Errorf("page seed: unknown slug %s/%s", r.Section, r.Slug)
		}
		texts, err := i18n.New(
			content.PageText{Title: r.Title["fr"], Content: r.Content["fr"]},
			content.PageText{Title: r.Title["en"], Content: r.Content["en"]},
		)
		if err != nil {
			return nil, fmt.Errorf("page seed %s/%s: %w", r.Section, r.Slug, err)
		}
		p := Page{Section: r.Section, Slug: r.Slug, Icon: r.Icon, Translations: texts}
		if len(r.PricingTable) > 0 {
			b, err := json.Marshal(r.PricingTable)
			if err != nil {
				return nil, fmt.Errorf("page seed %s/%s: %w", r.Section, r.Slug, err)
			}
			p.PricingTable = datatypes.JSON(b)
		}
		pages = append(pages, p)
	}
	return pages, nil
}

// Seed inserts the default pages, leaving existing rows untouched.
func (s *Service) Seed(ctx context.Context) error {
	pages, err := loadSeed()
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&pages).Error
}
