package i18n

import (
	"net/http"
	"strings"
)

// Language is one of the two display languages of the site.
type Language string

const (
	English Language = "en"
	French  Language = "fr"
)

// CookieName is where the visitor's chosen language is persisted. The name
// matches the key the original frontend used in local storage.
const CookieName = "memorial-language"

// Parse validates a raw language value.
func Parse(s string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, true
	case French:
		return French, true
	}
	return "", false
}

// FromRequest resolves the display language for a request:
// explicit ?lang= query, then the persisted cookie, then Accept-Language,
// defaulting to English.
func FromRequest(r *http.Request) Language {
	if lang, ok := Parse(r.URL.Query().Get("lang")); ok {
		return lang
	}
	if c, err := r.Cookie(CookieName); err == nil {
		if lang, ok := Parse(c.Value); ok {
			return lang
		}
	}
	if strings.HasPrefix(strings.ToLower(r.Header.Get("Accept-Language")), "fr") {
		return French
	}
	return English
}

// T looks up a dot-path key for the given language. Falls back to English,
// then to the key itself, mirroring the original frontend's lookup.
func T(lang Language, key string) string {
	entry, ok := translations[key]
	if !ok {
		return key
	}
	if msg, ok := entry[lang]; ok {
		return msg
	}
	if msg, ok := entry[English]; ok {
		return msg
	}
	return key
}

// Dict returns the full dictionary flattened for one language, for the
// frontend to fetch at startup.
func Dict(lang Language) map[string]string {
	out := make(map[string]string, len(translations))
	for key := range translations {
		out[key] = T(lang, key)
	}
	return out
}
