// Package i18n holds the user-facing copy of the page in every supported
// language.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	KeyContactMissing   = "contact.missing_fields"
	KeyContactPreparing = "contact.preparing"
	KeyNavOpen          = "nav.open"
	KeyNavClose         = "nav.close"
	KeyIntroSkipHint    = "intro.skip_hint"
)

// Keys lists every message key a catalog must define.
var Keys = []string{
	KeyContactMissing,
	KeyContactPreparing,
	KeyNavOpen,
	KeyNavClose,
	KeyIntroSkipHint,
}

var supportedTags = []language.Tag{
	language.Spanish,
	language.English,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the supported language tags, default first.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the page's native language.
func Default() language.Tag {
	return language.Spanish
}

// Resolve picks the best supported tag for a locale string such as "en-US"
// or an Accept-Language style list. Unknown input falls back to Default.
func Resolve(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return Default()
	}
	tags, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(tags) == 0 {
		return Default()
	}
	_, idx, conf := tagMatcher.Match(tags...)
	if conf == language.No {
		return Default()
	}
	return supportedTags[idx]
}

// Printer returns a message printer for the supplied locale.
func Printer(locale string) *message.Printer {
	return message.NewPrinter(Resolve(locale))
}
