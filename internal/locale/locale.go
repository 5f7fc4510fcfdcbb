// Package locale negotiates the manifest language from loose user input.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

const (
	English    = "en"
	Indonesian = "id"

	Default = English
)

var (
	supported = []language.Tag{language.English, language.Indonesian}
	matcher   = language.NewMatcher(supported)
)

// Match maps a BCP 47 tag such as "id-ID" or "en_US" onto a supported locale.
// Empty or unparseable input yields Default.
func Match(tag string) string {
	tag = strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	if tag == "" {
		return Default
	}
	t, err := language.Parse(tag)
	if err != nil {
		return Default
	}
	return pick(t)
}

// FromAcceptLanguage resolves an Accept-Language header. It returns "" when
// the header carries no usable tags so callers can try other hints.
func FromAcceptLanguage(header string) string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	return pick(tags...)
}

func pick(tags ...language.Tag) string {
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	base, _ := supported[idx].Base()
	return base.String()
}
