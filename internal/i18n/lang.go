package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang is one of the two languages the platform serves.
type Lang string

const (
	FR Lang = "fr"
	EN Lang = "en"
)

// Default is used whenever a request does not clearly ask for English.
const Default = FR

var english = language.English

// Parse maps an explicit language code ("en", "en-GB", "fr") onto a Lang.
// Anything that is not English falls back to French.
func Parse(s string) Lang {
	s = strings.TrimSpace(s)
	if s == "" {
		return Default
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Default
	}
	return fromTag(tag)
}

// FromAcceptLanguage picks the language from an Accept-Language header.
// The highest weighted tag wins; malformed headers yield French.
func FromAcceptLanguage(header string) Lang {
	if strings.TrimSpace(header) == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Default
	}
	return fromTag(tags[0])
}

func fromTag(tag language.Tag) Lang {
	base, _ := tag.Base()
	en, _ := english.Base()
	if base == en {
		return EN
	}
	return FR
}

// Valid reports whether l is one of the supported languages.
func (l Lang) Valid() bool {
	switch l {
	case FR, EN:
		return true
	}
	return false
}

func (l Lang) String() string { return string(l) }
