// Package i18n localises navigation labels using golang.org/x/text catalogs.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/custodia-labs/postnav/internal/core/ports/driven"
)

// Labels shipped with translations.
var translations = map[string]map[language.Tag]string{
	"Previous Post": {
		language.German:  "Vorheriger Beitrag",
		language.French:  "Article précédent",
		language.Spanish: "Entrada anterior",
	},
	"Next Post": {
		language.German:  "Nächster Beitrag",
		language.French:  "Article suivant",
		language.Spanish: "Entrada siguiente",
	},
	"First Post": {
		language.German:  "Erster Beitrag",
		language.French:  "Premier article",
		language.Spanish: "Primera entrada",
	},
	"Last Post": {
		language.German:  "Letzter Beitrag",
		language.French:  "Dernier article",
		language.Spanish: "Última entrada",
	},
}

var _ driven.Translator = (*Translator)(nil)

// Translator looks labels up in a catalog for one language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New creates a translator for locale, such as "de" or "fr-CA".
// Unknown or unsupported locales fall back to English.
func New(locale string) *Translator {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, byLang := range translations {
		_ = b.SetString(language.English, key, key)
		for tag, text := range byLang {
			_ = b.SetString(tag, key, text)
		}
	}

	tag := language.English
	if parsed, err := language.Parse(locale); err == nil {
		tag, _, _ = b.Matcher().Match(parsed)
	}

	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b)),
	}
}

// Language returns the matched language.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// Translate returns the localised label, or msg unchanged when the
// catalog has no entry for it.
func (t *Translator) Translate(msg string) string {
	if _, ok := translations[msg]; !ok {
		return msg
	}
	return t.printer.Sprintf(msg)
}
