// Package i18n resolves message keys to human-readable strings per locale.
// It is a static lookup table: no business logic, no fallthrough surprises —
// a missing key falls back to the default locale, then to the key itself.
package i18n

import "strings"

const (
	DefaultLang = "en"
)

var supported = map[string]bool{"en": true, "ar": true}

// Normalize maps an Accept-Language style tag to a supported locale.
// "ar,en;q=0.9" -> "ar"; anything unknown -> "en".
func Normalize(tag string) string {
	lang := tag
	if i := strings.IndexAny(lang, ",;"); i >= 0 {
		lang = lang[:i]
	}
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.Index(lang, "-"); i >= 0 {
		lang = lang[:i]
	}
	if !supported[lang] {
		return DefaultLang
	}
	return lang
}

// T resolves key in lang, interpolating {placeholder} occurrences from data.
func T(lang, key string, data map[string]string) string {
	table, ok := messages[lang]
	if !ok {
		table = messages[DefaultLang]
	}
	tmpl, ok := table[key]
	if !ok {
		tmpl, ok = messages[DefaultLang][key]
		if !ok {
			return key
		}
	}
	for k, v := range data {
		tmpl = strings.ReplaceAll(tmpl, "{"+k+"}", v)
	}
	return tmpl
}
