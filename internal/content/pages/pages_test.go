package pages

import (
	"context"
	"errors"
	"testing"

	"github.com/Princeaman007/interships/internal/content"
	"github.com/Princeaman007/interships/internal/dbtest"
	"github.com/Princeaman007/interships/internal/i18n"
)

func TestValidSlug(t *testing.T) {
	tests := []struct {
		section Section
		slug    string
		want    bool
	}{
		{About, "why-hire", true},
		{About, "housing", false},
		{Services, "housing", true},
		{Services, "airport-pickup", true},
		{Services, "why-hire", false},
		{Section("legal"), "terms", false},
	}
	for _, tt := range tests {
		if got := ValidSlug(tt.section, tt.slug); got != tt.want {
			t.Errorf("ValidSlug(%s, %s) = %v, want %v", tt.section, tt.slug, got, tt.want)
		}
	}
}

func TestSeedCoversEverySlug(t *testing.T) {
	pages, err := loadSeed()
	if err != nil {
		t.Fatalf("loadSeed: %v", err)
	}
	want := 0
	for _, s := range slugs {
		want += len(s)
	}
	if len(pages) != want {
		t.Fatalf("seed has %d pages, want %d", len(pages), want)
	}
}

func TestSeedKeepsEditedPages(t *testing.T) {
	db := dbtest.New(t, &Page{})
	svc := NewService(db)
	ctx := context.Background()

	if err := svc.Seed(ctx); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	in := &Input{Translations: content.PageTexts{
		FR: content.PageText{Title: "Logement", Content: "Nouveau texte"},
		EN: content.PageText{Title: "Housing", Content: "New text"},
	}}
	if _, err := svc.Save(ctx, Services, "housing", in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := svc.Seed(ctx); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	p, err := svc.Get(ctx, Services, "housing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v := p.View(i18n.EN); v.Content != "New text" {
		t.Fatalf("content = %q, seed overwrote the edit", v.Content)
	}

	if _, err := svc.Get(ctx, About, "housing"); !errors.Is(err, ErrInvalidSlug) {
		t.Fatalf("err = %v, want ErrInvalidSlug", err)
	}
	if _, err := svc.Save(ctx, About, "why-hire", &Input{}); err == nil {
		t.Fatal("Save accepted empty translations")
	}
}
