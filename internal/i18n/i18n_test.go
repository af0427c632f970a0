package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParse(t *testing.T) {
	for raw, want := range map[string]Language{"en": English, "fr": French, " FR ": French, "En": English} {
		got, ok := Parse(raw)
		if !ok || got != want {
			t.Fatalf("Parse(%q) = %q, %v; want %q", raw, got, ok, want)
		}
	}
	for _, raw := range []string{"", "de", "english"} {
		if _, ok := Parse(raw); ok {
			t.Fatalf("Parse(%q) unexpectedly succeeded", raw)
		}
	}
}

func TestT_LookupAndFallback(t *testing.T) {
	if got := T(French, "candles.success"); got != "Bougie allumée" {
		t.Fatalf("fr lookup = %q", got)
	}
	if got := T(English, "candles.success"); got != "Candle lit" {
		t.Fatalf("en lookup = %q", got)
	}
	// unknown key falls back to the key itself
	if got := T(French, "no.such.key"); got != "no.such.key" {
		t.Fatalf("missing-key fallback = %q", got)
	}
}

func TestDict_CoversAllKeys(t *testing.T) {
	en := Dict(English)
	fr := Dict(French)
	if len(en) == 0 || len(en) != len(fr) {
		t.Fatalf("dictionaries out of sync: en=%d fr=%d", len(en), len(fr))
	}
	for key, msg := range en {
		if msg == "" {
			t.Fatalf("empty english message for %s", key)
		}
	}
}

func TestFromRequest_Resolution(t *testing.T) {
	// query param wins over everything
	r := httptest.NewRequest("GET", "/api/testimonials?lang=fr", nil)
	r.Header.Set("Accept-Language", "en-US")
	if got := FromRequest(r); got != French {
		t.Fatalf("query: got %q", got)
	}

	// then the persisted cookie
	r = httptest.NewRequest("GET", "/api/testimonials", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "fr"})
	r.Header.Set("Accept-Language", "en-US")
	if got := FromRequest(r); got != French {
		t.Fatalf("cookie: got %q", got)
	}

	// then Accept-Language
	r = httptest.NewRequest("GET", "/api/testimonials", nil)
	r.Header.Set("Accept-Language", "fr-FR,fr;q=0.9")
	if got := FromRequest(r); got != French {
		t.Fatalf("accept-language: got %q", got)
	}

	// default is english
	r = httptest.NewRequest("GET", "/api/testimonials", nil)
	if got := FromRequest(r); got != English {
		t.Fatalf("default: got %q", got)
	}
}
