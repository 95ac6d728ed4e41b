package handlers

import (
	"net/http"

	"github.com/stormhq/storm-admin/validation"
)

// Settings renders the profile card and the change-password form.
func (h *Handler) Settings(w http.ResponseWriter, r *http.Request) {
	ident, r, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}
	h.render(w, r, "settings.html", h.pageData(r, ident))
}

// ChangePassword handles the authenticated password change. The policy
// runs client-side first; a backend rejection (wrong current password,
// server-side policy) is shown with the server's message.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ident, r, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	current := r.FormValue("currentPassword")
	password := r.FormValue("newPassword")
	confirm := r.FormValue("confirmPassword")

	violations := validation.Violations{}
	validation.Required("currentPassword", current, violations)
	validation.Password("newPassword", password, violations)
	validation.PasswordConfirmation("confirmPassword", password, confirm, violations)
	if !violations.Empty() {
		data := h.pageData(r, ident)
		data["Violations"] = violations
		h.render(w, r, "settings.html", data)
		return
	}

	if err := h.api.ChangePassword(r.Context(), current, password); err != nil {
		data := h.pageData(r, ident)
		data["Error"] = apiMessage(r, err, "password_current_bad")
		h.render(w, r, "settings.html", data)
		return
	}
	redirect(w, r, "/dashboard/configuracoes", "msg", "password_changed")
}
