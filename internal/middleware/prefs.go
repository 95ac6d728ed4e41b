package middleware

import (
	"net/http"

	"github.com/stormhq/storm-admin/i18n"
)

// LangCookie persists the visitor's language choice.
const LangCookie = "lang"

// Lang picks the request language: explicit ?lang= switch first (stored
// in a cookie for the next visit), then the cookie, then Accept-Language.
// The resolved value ends up in the lang cookie read by view rendering.
func Lang(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if q := r.URL.Query().Get("lang"); q == "pt" || q == "en" {
			http.SetCookie(w, &http.Cookie{
				Name:     LangCookie,
				Value:    q,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r)
	})
}

// LangFromRequest resolves the effective language for a request.
func LangFromRequest(r *http.Request) string {
	if q := r.URL.Query().Get("lang"); q == "pt" || q == "en" {
		return q
	}
	if c, err := r.Cookie(LangCookie); err == nil && (c.Value == "pt" || c.Value == "en") {
		return c.Value
	}
	return i18n.DetectLanguage(r.Header.Get("Accept-Language"))
}
