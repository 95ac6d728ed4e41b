package handlers

import (
	"net/http"
	"net/url"

	"github.com/stormhq/storm-admin/auth"
	"github.com/stormhq/storm-admin/internal/backend"
	"github.com/stormhq/storm-admin/validation"
)

// LoginPage renders the sign-in form.
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login.html", h.pageData(r, nil))
}

// Login exchanges the form credentials for a session cookie. A rejection
// flagged as first access forwards to the forced password change with the
// email in the query; the response body never carries it.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	violations := validation.Violations{}
	validation.Required("email", email, violations)
	validation.Required("password", password, violations)
	if !violations.Empty() {
		data := h.pageData(r, nil)
		data["Violations"] = violations
		data["Email"] = email
		h.render(w, r, "login.html", data)
		return
	}

	res, err := h.api.Login(r.Context(), email, password)
	if err != nil {
		if apiErr, ok := err.(*backend.APIError); ok && apiErr.IsFirstAccess {
			http.Redirect(w, r, "/first-access?email="+url.QueryEscape(email), http.StatusFound)
			return
		}
		data := h.pageData(r, nil)
		data["Error"] = apiMessage(r, err, "invalid_credentials")
		data["Email"] = email
		h.render(w, r, "login.html", data)
		return
	}

	auth.SetToken(w, res.Token)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// Logout invalidates the session. The cookie is cleared even when the
// backend call fails; a dead session server-side is its problem to reap.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.TokenFromContext(r.Context()); ok {
		_ = h.api.Logout(r.Context())
	}
	auth.ClearToken(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

// ForgotPasswordPage renders the reset-request form.
func (h *Handler) ForgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "forgot_password.html", h.pageData(r, nil))
}

// ForgotPassword requests a reset token by email. The confirmation is
// the same whether or not the address exists.
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")

	violations := validation.Violations{}
	validation.Required("email", email, violations)
	validation.Email("email", email, violations)
	if !violations.Empty() {
		data := h.pageData(r, nil)
		data["Violations"] = violations
		data["Email"] = email
		h.render(w, r, "forgot_password.html", data)
		return
	}

	_ = h.api.ForgotPassword(r.Context(), email)
	data := h.pageData(r, nil)
	data["Sent"] = true
	h.render(w, r, "forgot_password.html", data)
}

// ResetPasswordPage renders the new-password form for a reset token.
func (h *Handler) ResetPasswordPage(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r, nil)
	data["Token"] = r.URL.Query().Get("token")
	h.render(w, r, "reset_password.html", data)
}

// ResetPassword consumes the token and sets the new password. The policy
// runs client-side first; the backend has the last word either way.
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token := r.FormValue("token")
	password := r.FormValue("password")
	confirm := r.FormValue("confirmPassword")

	violations := validation.Violations{}
	validation.Password("password", password, violations)
	validation.PasswordConfirmation("confirmPassword", password, confirm, violations)
	if !violations.Empty() {
		data := h.pageData(r, nil)
		data["Violations"] = violations
		data["Token"] = token
		h.render(w, r, "reset_password.html", data)
		return
	}

	if err := h.api.ResetPassword(r.Context(), token, password); err != nil {
		data := h.pageData(r, nil)
		data["Error"] = apiMessage(r, err, "generic_error")
		data["Token"] = token
		h.render(w, r, "reset_password.html", data)
		return
	}
	redirect(w, r, "/", "msg", "reset_success")
}

// FirstAccessPage renders the forced password change, with the email
// pre-filled from the query the login redirect carried.
func (h *Handler) FirstAccessPage(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r, nil)
	data["Email"] = r.URL.Query().Get("email")
	h.render(w, r, "first_access.html", data)
}

// FirstAccess replaces the temporary password. Success lands back on the
// login page; the visitor signs in with the new credentials.
func (h *Handler) FirstAccess(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	current := r.FormValue("currentPassword")
	password := r.FormValue("newPassword")
	confirm := r.FormValue("confirmPassword")

	violations := validation.Violations{}
	validation.Required("email", email, violations)
	validation.Required("currentPassword", current, violations)
	validation.Password("newPassword", password, violations)
	validation.PasswordConfirmation("confirmPassword", password, confirm, violations)
	if !violations.Empty() {
		data := h.pageData(r, nil)
		data["Violations"] = violations
		data["Email"] = email
		h.render(w, r, "first_access.html", data)
		return
	}

	if err := h.api.FirstAccessChangePassword(r.Context(), email, current, password); err != nil {
		data := h.pageData(r, nil)
		data["Error"] = apiMessage(r, err, "generic_error")
		data["Email"] = email
		h.render(w, r, "first_access.html", data)
		return
	}
	redirect(w, r, "/", "msg", "password_changed")
}
