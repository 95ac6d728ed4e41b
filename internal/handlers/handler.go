// Package handlers implements the admin screens. Every protected page
// resolves the caller's identity against the backend on entry; the
// session cookie is opaque and proves nothing by itself. Mutations follow
// POST-redirect-GET, so the page after any write is always a fresh fetch.
package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/stormhq/storm-admin/auth"
	"github.com/stormhq/storm-admin/gate"
	"github.com/stormhq/storm-admin/i18n"
	"github.com/stormhq/storm-admin/internal/backend"
	"github.com/stormhq/storm-admin/internal/middleware"
	"github.com/stormhq/storm-admin/internal/models"
	"github.com/stormhq/storm-admin/internal/policy"
	"github.com/stormhq/storm-admin/view"
)

// Handler bundles the screen handlers with their two collaborators: the
// backend client and the authorization gate.
type Handler struct {
	api  *backend.Client
	gate *gate.Gate
}

func New(api *backend.Client, g *gate.Gate) *Handler {
	return &Handler{api: api, gate: g}
}

// Gate exposes the authorization table for template resolvers.
func (h *Handler) Gate() *gate.Gate { return h.gate }

type identityKey struct{}

// IdentityFromContext returns the identity requireIdentity resolved for
// this request. Template helpers read it to gate buttons and menus.
func IdentityFromContext(ctx context.Context) (*models.Identity, bool) {
	ident, ok := ctx.Value(identityKey{}).(*models.Identity)
	return ident, ok
}

// requireIdentity resolves the session into an identity. Any failure,
// whether missing cookie, expired session or backend trouble, clears the
// cookie and sends the visitor back to the login page. Returns false when
// the response is already written; the returned request carries the
// identity in its context.
func (h *Handler) requireIdentity(w http.ResponseWriter, r *http.Request) (*models.Identity, *http.Request, bool) {
	if _, ok := auth.TokenFromContext(r.Context()); !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return nil, r, false
	}
	ident, err := h.api.Me(r.Context())
	if err != nil {
		auth.ClearToken(w)
		http.Redirect(w, r, "/", http.StatusFound)
		return nil, r, false
	}
	r = r.WithContext(context.WithValue(r.Context(), identityKey{}, ident))
	return ident, r, true
}

// requirePermission enforces a profile permission for a screen. Denied
// visitors land on the dashboard, which every role can see.
func (h *Handler) requirePermission(w http.ResponseWriter, r *http.Request, ident *models.Identity, action gate.Action, resource string) bool {
	if h.gate.CanProfile(gate.Role(ident.RoleID), action, resource) {
		return true
	}
	http.Redirect(w, r, "/dashboard?err=forbidden", http.StatusFound)
	return false
}

// pageData builds the common template payload: identity, the role's menu
// and any flash codes carried through the redirect query.
func (h *Handler) pageData(r *http.Request, ident *models.Identity) map[string]any {
	lang := middleware.LangFromRequest(r)
	data := map[string]any{
		"Identity": ident,
	}
	if ident != nil {
		data["Nav"] = policy.VisibleItems(h.gate, ident.RoleID)
	}
	if code := r.URL.Query().Get("msg"); code != "" {
		data["Flash"] = i18n.T(lang, code)
	}
	if code := r.URL.Query().Get("err"); code != "" {
		data["Error"] = i18n.T(lang, code)
	}
	return data
}

// apiMessage picks the user-facing message for a failed backend call: the
// server's own words when it sent any, the localized fallback otherwise.
func apiMessage(r *http.Request, err error, fallbackCode string) string {
	if msg := backend.Message(err); msg != "" {
		return msg
	}
	return i18n.T(middleware.LangFromRequest(r), fallbackCode)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, data map[string]any) {
	if err := view.Render(w, r, page, data); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// redirect sends the visitor to path with a flash code attached.
func redirect(w http.ResponseWriter, r *http.Request, path, param, code string) {
	if code != "" {
		path += "?" + param + "=" + url.QueryEscape(code)
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}
