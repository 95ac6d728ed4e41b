// Package auth manages the Storm session-token cookie and threads the
// token through request contexts. The token is an opaque credential minted
// by the backend: this package never decodes or verifies it, it only
// checks presence. Server-side validation stays authoritative.
package auth

import (
	"context"
	"net/http"
	"time"
)

type ctxKey string

const (
	// TokenCookie is the session cookie name, shared with the backend.
	TokenCookie = "token"

	// TokenTTL is the fixed cookie lifetime set at issuance.
	TokenTTL = 24 * time.Hour

	tokenCtxKey = ctxKey("sessionToken")
)

// secureCookies toggles the Secure flag; enabled in production during app
// bootstrap via SetSecureCookies.
var secureCookies bool

// SetSecureCookies configures whether session cookies carry the Secure flag.
func SetSecureCookies(secure bool) { secureCookies = secure }

// SetToken stores the backend-issued session token in the cookie.
// Only the login handler calls this.
func SetToken(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secureCookies,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(TokenTTL),
	})
}

// ClearToken deletes the session cookie. Only the logout handler and the
// "stale session" paths call this.
func ClearToken(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secureCookies,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
	})
}

// TokenFromRequest returns the raw cookie value if the session cookie is
// present and non-empty. The value is opaque; no parsing happens here.
func TokenFromRequest(r *http.Request) (string, bool) {
	c, err := r.Cookie(TokenCookie)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// WithToken stores the session token in a context.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey, token)
}

// TokenFromContext extracts the session token placed by Middleware.
func TokenFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(tokenCtxKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Middleware copies the session cookie, when present, into the request
// context so downstream components read one explicit value instead of
// re-reading ambient cookie storage.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token, ok := TokenFromRequest(r); ok {
			r = r.WithContext(WithToken(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}
