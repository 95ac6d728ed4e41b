package handlers

import (
	"net/http"

	"github.com/stormhq/storm-admin/gate"
	"github.com/stormhq/storm-admin/httpx"
	"github.com/stormhq/storm-admin/internal/backend"
	"github.com/stormhq/storm-admin/internal/models"
	"github.com/stormhq/storm-admin/internal/policy"
	"github.com/stormhq/storm-admin/validation"
)

const adminUsersPath = "/dashboard/admin/usuarios"

// AdminUsers renders the full account management screen: list, filter,
// create and edit forms.
func (h *Handler) AdminUsers(w http.ResponseWriter, r *http.Request) {
	ident, r, ok := h.requireIdentity(w, r)
	if !ok || !h.requirePermission(w, r, ident, gate.ActionManage, policy.ResourceUser) {
		return
	}

	users, err := h.api.ListUsers(r.Context())
	if err != nil {
		data := h.pageData(r, ident)
		data["Error"] = apiMessage(r, err, "load_error")
		h.render(w, r, "admin_users.html", data)
		return
	}
	contracts, err := h.api.ListContracts(r.Context())
	if err != nil {
		data := h.pageData(r, ident)
		data["Error"] = apiMessage(r, err, "load_error")
		h.render(w, r, "admin_users.html", data)
		return
	}

	q := r.URL.Query().Get("q")
	data := h.pageData(r, ident)
	data["Users"] = models.FilterUsers(q, users)
	data["Contracts"] = contracts
	data["Roles"] = models.Roles
	data["Filter"] = q
	h.render(w, r, "admin_users.html", data)
}

// CreateUser creates an account. The backend generates a temporary
// password and returns it exactly once; the response page shows it with
// caching disabled and it is never stored or fetchable again.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ident, r, ok := h.requireIdentity(w, r)
	if !ok || !h.requirePermission(w, r, ident, gate.ActionManage, policy.ResourceUser) {
		return
	}

	in := backend.UserInput{
		Name:       r.FormValue("name"),
		Email:      r.FormValue("email"),
		RoleID:     models.RoleID(r.FormValue("roleId")),
		ContractID: r.FormValue("contractId"),
	}

	violations := validation.Violations{}
	validation.Required("name", in.Name, violations)
	validation.Required("email", in.Email, violations)
	validation.Email("email", in.Email, violations)
	validation.Required("roleId", string(in.RoleID), violations)
	if !violations.Empty() {
		redirect(w, r, adminUsersPath, "err", "user_create_error")
		return
	}

	created, err := h.api.CreateUser(r.Context(), in)
	if err != nil {
		data := h.pageData(r, ident)
		data["Error"] = apiMessage(r, err, "user_create_error")
		h.render(w, r, "admin_users.html", data)
		return
	}

	httpx.NoStore(w)
	data := h.pageData(r, ident)
	data["User"] = created.User
	data["TempPassword"] = created.TempPassword
	h.render(w, r, "temp_password.html", data)
}

// UpdateUser saves an edited account and returns to the refreshed list.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ident, r, ok := h.requireIdentity(w, r)
	if !ok || !h.requirePermission(w, r, ident, gate.ActionManage, policy.ResourceUser) {
		return
	}

	id := r.FormValue("id")
	in := backend.UserInput{
		Name:       r.FormValue("name"),
		Email:      r.FormValue("email"),
		RoleID:     models.RoleID(r.FormValue("roleId")),
		ContractID: r.FormValue("contractId"),
	}
	if id == "" {
		redirect(w, r, adminUsersPath, "err", "user_update_error")
		return
	}

	if _, err := h.api.UpdateUser(r.Context(), id, in); err != nil {
		redirect(w, r, adminUsersPath, "err", "user_update_error")
		return
	}
	redirect(w, r, adminUsersPath, "msg", "user_updated")
}

// DeleteUser removes an account behind an explicit confirmation step.
// The first POST renders the confirmation page without touching the
// backend; only the confirmed resubmission performs the delete.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ident, r, ok := h.requireIdentity(w, r)
	if !ok || !h.requirePermission(w, r, ident, gate.ActionManage, policy.ResourceUser) {
		return
	}

	id := r.FormValue("id")
	if id == "" {
		redirect(w, r, adminUsersPath, "err", "user_delete_error")
		return
	}

	if r.FormValue("confirm") != "1" {
		data := h.pageData(r, ident)
		data["ID"] = id
		data["Name"] = r.FormValue("name")
		data["Action"] = adminUsersPath + "/delete"
		data["Cancel"] = adminUsersPath
		data["PromptCode"] = "confirm_delete_user"
		h.render(w, r, "confirm_delete.html", data)
		return
	}

	if err := h.api.DeleteUser(r.Context(), id); err != nil {
		redirect(w, r, adminUsersPath, "err", "user_delete_error")
		return
	}
	redirect(w, r, adminUsersPath, "msg", "user_deleted")
}

// SendWelcomeEmail delivers credentials to an account by email.
func (h *Handler) SendWelcomeEmail(w http.ResponseWriter, r *http.Request) {
	ident, r, ok := h.requireIdentity(w, r)
	if !ok || !h.requirePermission(w, r, ident, gate.ActionManage, policy.ResourceUser) {
		return
	}

	id := r.FormValue("id")
	if id == "" {
		redirect(w, r, adminUsersPath, "err", "welcome_email_error")
		return
	}
	if err := h.api.SendWelcomeEmail(r.Context(), id); err != nil {
		redirect(w, r, adminUsersPath, "err", "welcome_email_error")
		return
	}
	redirect(w, r, adminUsersPath, "msg", "welcome_email_sent")
}

// Users is the read-only account listing available to admins.
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	ident, r, ok := h.requireIdentity(w, r)
	if !ok || !h.requirePermission(w, r, ident, gate.ActionList, policy.ResourceUser) {
		return
	}

	users, err := h.api.ListUsers(r.Context())
	if err != nil {
		data := h.pageData(r, ident)
		data["Error"] = apiMessage(r, err, "load_error")
		h.render(w, r, "users.html", data)
		return
	}

	q := r.URL.Query().Get("q")
	data := h.pageData(r, ident)
	data["Users"] = models.FilterUsers(q, users)
	data["Filter"] = q
	h.render(w, r, "users.html", data)
}
