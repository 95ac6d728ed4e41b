// Package view renders the admin screens: every page template is wrapped
// in templates/layout.html, parsed once and cached. The host app injects
// resolvers for language and permission checks so the package stays
// decoupled from middleware and policy.
package view

import (
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/stormhq/storm-admin/i18n"
)

var (
	baseDir  string
	baseOnce sync.Once

	tplCache = struct {
		sync.RWMutex
		m map[string]*template.Template
	}{m: map[string]*template.Template{}}

	langResolver = func(_ *http.Request) string { return "pt" }
	// canResolver lets templates show or hide navigation and buttons based
	// on the authenticated role's profile permissions.
	canResolver func(*http.Request, string, string) bool
)

// SetLangResolver installs the language resolver (usually reading the
// prefs middleware's context value).
func SetLangResolver(f func(*http.Request) string) {
	if f != nil {
		langResolver = f
	}
}

// SetCanResolver installs the permission resolver used by the "can"
// template func.
func SetCanResolver(f func(*http.Request, string, string) bool) {
	if f != nil {
		canResolver = f
	}
}

// detectBase finds the templates directory whether the process runs from
// the repo root or a subdirectory (tests run from their package dir).
func detectBase() {
	candidates := []string{"templates", "../templates", "../../templates", "../../../templates"}
	for _, c := range candidates {
		if fi, err := os.Stat(filepath.Clean(c)); err == nil && fi.IsDir() {
			baseDir = filepath.Clean(c)
			return
		}
	}
	baseDir = "templates"
}

// Funcs returns the template func map: i18n plus small display helpers.
func Funcs(r *http.Request) template.FuncMap {
	lang := langResolver(r)
	return template.FuncMap{
		"t":    func(code string) string { return i18n.T(lang, code) },
		"lang": func() string { return lang },
		"can": func(resource, action string) bool {
			if canResolver == nil {
				return false
			}
			return canResolver(r, resource, action)
		},
		"year": func() int { return time.Now().Year() },
		// discount renders "10%" or "R$ 5.00" depending on the type.
		"discount": func(discountType string, value float64) string {
			if discountType == "percentage" {
				return fmt.Sprintf("%g%%", value)
			}
			return fmt.Sprintf("R$ %.2f", value)
		},
		// date accepts time.Time or *time.Time; optional dates render "-".
		"date": func(v any) string {
			var ts time.Time
			switch t := v.(type) {
			case time.Time:
				ts = t
			case *time.Time:
				if t == nil {
					return "-"
				}
				ts = *t
			default:
				return "-"
			}
			if ts.IsZero() {
				return "-"
			}
			return ts.Format("02/01/2006")
		},
	}
}

// Render writes the named page template wrapped in the shared layout.
// Parsed templates are cached per page name; the func map is request
// scoped, so the cached template is cloned and re-bound per render.
func Render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) error {
	baseOnce.Do(detectBase)

	tplCache.RLock()
	tpl, ok := tplCache.m[name]
	tplCache.RUnlock()

	if !ok {
		parsed, err := template.New("layout.html").Funcs(Funcs(r)).ParseFiles(
			filepath.Join(baseDir, "layout.html"),
			filepath.Join(baseDir, name),
		)
		if err != nil {
			return err
		}
		tplCache.Lock()
		tplCache.m[name] = parsed
		tplCache.Unlock()
		tpl = parsed
	}

	bound, err := tpl.Clone()
	if err != nil {
		return err
	}
	bound = bound.Funcs(Funcs(r))

	if data == nil {
		data = map[string]any{}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return bound.ExecuteTemplate(w, "layout.html", data)
}
