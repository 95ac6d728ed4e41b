package middleware

import (
	"net/http"
	"path"
	"strings"

	"github.com/stormhq/storm-admin/auth"
)

// DebugHeader exposes the guard's decision for each request. Harmless in
// production and it keeps routing regressions observable from curl.
const DebugHeader = "X-Auth-Debug"

// excludedPrefixes are served as-is, session or not.
var excludedPrefixes = []string{"/static/", "/api/", "/health"}

// Guard is the coarse routing filter in front of every page. It only
// moves an already-authenticated visitor off the login page; it never
// blocks a deep link, because the session cookie is opaque here and the
// real check is the identity lookup each protected handler performs.
// It never fails: a missing or garbage cookie just means no session.
func Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		if excluded(p) {
			next.ServeHTTP(w, r)
			return
		}

		_, hasToken := auth.TokenFromRequest(r)

		if p == "/" {
			if hasToken {
				w.Header().Set(DebugHeader, "has-token->dashboard")
				http.Redirect(w, r, "/dashboard", http.StatusFound)
				return
			}
			w.Header().Set(DebugHeader, "no-token")
			next.ServeHTTP(w, r)
			return
		}

		if hasToken {
			w.Header().Set(DebugHeader, "has-token")
		} else {
			w.Header().Set(DebugHeader, "no-token")
		}
		next.ServeHTTP(w, r)
	})
}

func excluded(p string) bool {
	for _, prefix := range excludedPrefixes {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	// Asset requests carry extensions; pages never do.
	return path.Ext(p) != ""
}
