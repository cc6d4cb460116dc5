package i18n

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Lang
	}{
		{"en", EN},
		{"EN", EN},
		{"en-GB", EN},
		{"fr", FR},
		{"fr-CA", FR},
		{"de", FR},
		{"", FR},
		{"not a tag!", FR},
	}
	for _, tt := range tests {
		if got := Parse(tt.in); got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFromAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   Lang
	}{
		{"en-US,en;q=0.9", EN},
		{"fr-FR,fr;q=0.9,en;q=0.8", FR},
		{"fr;q=0.5,en;q=0.9", EN},
		{"es", FR},
		{"", FR},
		{";;;", FR},
	}
	for _, tt := range tests {
		if got := FromAcceptLanguage(tt.header); got != tt.want {
			t.Errorf("FromAcceptLanguage(%q) = %s, want %s", tt.header, got, tt.want)
		}
	}
}

func TestT(t *testing.T) {
	if got := T(FR, "auth.forbidden"); got != "Accès refusé" {
		t.Fatalf("FR = %q", got)
	}
	if got := T(EN, "auth.forbidden"); got != "Access denied" {
		t.Fatalf("EN = %q", got)
	}
	if got := T(EN, "no.such.key"); got != "no.such.key" {
		t.Fatalf("unknown key = %q", got)
	}
	if Has("no.such.key") || !Has("common.validation") {
		t.Fatal("Has disagrees with the catalog")
	}
}

func TestCatalogHasBothLanguages(t *testing.T) {
	for key, e := range catalog {
		if e.fr == "" || e.en == "" {
			t.Errorf("%s is missing a translation", key)
		}
	}
}

type text struct{ Title, Body string }

func (t text) Missing() []string {
	var m []string
	if Blank(t.Title) {
		m = append(m, "title")
	}
	if Blank(t.Body) {
		m = append(m, "body")
	}
	return m
}

func TestTranslations(t *testing.T) {
	tr, err := New(text{"Titre", "Corps"}, text{"Title", "Body"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tr.Get(EN).Title != "Title" || tr.Get(FR).Title != "Titre" || tr.Get(Lang("de")).Title != "Titre" {
		t.Fatalf("Get returned the wrong record: %+v", tr)
	}

	_, err = New(text{"Titre", " "}, text{})
	var mt *MissingTranslationError
	if !errors.As(err, &mt) {
		t.Fatalf("err = %v, want MissingTranslationError", err)
	}
	want := []string{"fr.body", "en.title", "en.body"}
	if len(mt.Fields) != len(want) {
		t.Fatalf("fields = %v, want %v", mt.Fields, want)
	}
	for i := range want {
		if mt.Fields[i] != want[i] {
			t.Fatalf("fields = %v, want %v", mt.Fields, want)
		}
	}
}
