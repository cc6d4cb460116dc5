package i18n

import (
	"fmt"
	"strings"
)

// Localized is implemented by the per-language content records
// (internship text, blog text, FAQ entry...). Missing returns the
// json names of required fields that are empty.
type Localized interface {
	Missing() []string
}

// Translations holds one localized record per supported language.
// Both languages are required; call Validate before persisting.
type Translations[T Localized] struct {
	FR T `json:"fr" gorm:"embedded;embeddedPrefix:fr_"`
	EN T `json:"en" gorm:"embedded;embeddedPrefix:en_"`
}

// New builds a validated translation pair.
func New[T Localized](fr, en T) (Translations[T], error) {
	t := Translations[T]{FR: fr, EN: en}
	if err := t.Validate(); err != nil {
		return Translations[T]{}, err
	}
	return t, nil
}

// Get returns the record for l, defaulting to French.
func (t Translations[T]) Get(l Lang) T {
	if l == EN {
		return t.EN
	}
	return t.FR
}

// Validate checks that every required field is present in both languages.
func (t Translations[T]) Validate() error {
	var missing []string
	for _, f := range t.FR.Missing() {
		missing = append(missing, "fr."+f)
	}
	for _, f := range t.EN.Missing() {
		missing = append(missing, "en."+f)
	}
	if len(missing) > 0 {
		return &MissingTranslationError{Fields: missing}
	}
	return nil
}

// MissingTranslationError lists the translation fields that were empty.
type MissingTranslationError struct {
	Fields []string
}

func (e *MissingTranslationError) Error() string {
	return fmt.Sprintf("missing translations: %s", strings.Join(e.Fields, ", "))
}

// Blank reports whether s is empty after trimming.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
