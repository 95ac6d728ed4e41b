// Package server assembles the HTTP surface: routes, middleware chain
// and template helper wiring.
package server

import (
	"net/http"

	"github.com/stormhq/storm-admin/auth"
	"github.com/stormhq/storm-admin/gate"
	"github.com/stormhq/storm-admin/httpx"
	"github.com/stormhq/storm-admin/internal/backend"
	"github.com/stormhq/storm-admin/internal/handlers"
	"github.com/stormhq/storm-admin/internal/middleware"
	"github.com/stormhq/storm-admin/internal/policy"
	"github.com/stormhq/storm-admin/view"
)

// New constructs the root http.Handler with all routes and middlewares
// applied.
func New(api *backend.Client) http.Handler {
	g := policy.NewGate()
	h := handlers.New(api, g)

	view.SetLangResolver(middleware.LangFromRequest)
	view.SetCanResolver(func(r *http.Request, resource, action string) bool {
		ident, ok := handlers.IdentityFromContext(r.Context())
		if !ok {
			return false
		}
		return g.CanProfile(gate.Role(ident.RoleID), gate.Action(action), resource)
	})

	mux := http.NewServeMux()

	//revive:disable:unused-parameter simple handlers intentionally ignore *http.Request
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	mux.HandleFunc("/api/session", h.Session)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		h.LoginPage(w, r)
	})
	mux.HandleFunc("/login", post(h.Login))
	mux.HandleFunc("/logout", h.Logout)
	mux.HandleFunc("/forgot-password", getPost(h.ForgotPasswordPage, h.ForgotPassword))
	mux.HandleFunc("/reset-password", getPost(h.ResetPasswordPage, h.ResetPassword))
	mux.HandleFunc("/first-access", getPost(h.FirstAccessPage, h.FirstAccess))

	mux.HandleFunc("/dashboard", h.Dashboard)
	mux.HandleFunc("/dashboard/configuracoes", getPost(h.Settings, h.ChangePassword))
	mux.HandleFunc("/dashboard/usuarios", h.Users)

	mux.HandleFunc("/dashboard/admin/usuarios", h.AdminUsers)
	mux.HandleFunc("/dashboard/admin/usuarios/create", post(h.CreateUser))
	mux.HandleFunc("/dashboard/admin/usuarios/update", post(h.UpdateUser))
	mux.HandleFunc("/dashboard/admin/usuarios/delete", post(h.DeleteUser))
	mux.HandleFunc("/dashboard/admin/usuarios/welcome-email", post(h.SendWelcomeEmail))

	mux.HandleFunc("/dashboard/admin/cupons", h.AdminCoupons)
	mux.HandleFunc("/dashboard/admin/cupons/create", post(h.CreateCoupon))
	mux.HandleFunc("/dashboard/admin/cupons/update", post(h.UpdateCoupon))
	mux.HandleFunc("/dashboard/admin/cupons/delete", post(h.DeleteCoupon))
	mux.HandleFunc("/dashboard/admin/cupons/share", getPost(h.ShareCouponPage, h.ShareCoupon))
	mux.HandleFunc("/dashboard/admin/cupons/export", h.ExportCoupons)

	mux.HandleFunc("/dashboard/cupons", h.MyCoupons)
	mux.HandleFunc("/dashboard/cupons/deactivate", post(h.DeactivateSharedCoupon))

	var root http.Handler = mux
	root = middleware.Guard(root)
	root = auth.Middleware(root)
	root = middleware.Lang(root)
	root = middleware.Logging(root)
	root = middleware.RequestID(root)
	root = middleware.Recover(root)
	return root
}

// post restricts a handler to POST requests.
func post(fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", "POST")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
			return
		}
		fn(w, r)
	}
}

// getPost splits a path between its page (GET) and form (POST) handler.
func getPost(get, postFn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			get(w, r)
		case http.MethodPost:
			postFn(w, r)
		default:
			w.Header().Set("Allow", "GET,POST")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		}
	}
}
