package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/stormhq/storm-admin/gate"
	"github.com/stormhq/storm-admin/internal/backend"
	"github.com/stormhq/storm-admin/internal/models"
	"github.com/stormhq/storm-admin/internal/policy"
	"github.com/stormhq/storm-admin/validation"
)

const adminCouponsPath = "/dashboard/admin/cupons"

// AdminCoupons renders the coupon management screen.
func (h *Handler) AdminCoupons(w http.ResponseWriter, r *http.Request) {
	ident, r, ok := h.requireIdentity(w, r)
	if !ok || !h.requirePermission(w, r, ident, gate.ActionManage, policy.ResourceCoupon) {
		return
	}

	coupons, err := h.api.ListCoupons(r.Context())
	if err != nil {
		data := h.pageData(r, ident)
		data["Error"] = apiMessage(r, err, "load_error")
		h.render(w, r, "admin_coupons.html", data)
		return
	}

	q := r.URL.Query().Get("q")
	data := h.pageData(r, ident)
	data["Coupons"] = models.FilterCoupons(q, coupons)
	data["Filter"] = q
	h.render(w, r, "admin_coupons.html", data)
}

// couponForm reads a coupon create/edit form. Optional numeric and date
// fields stay nil when blank so the backend applies its own defaults.
func couponForm(r *http.Request) (backend.CouponInput, validation.Violations) {
	in := backend.CouponInput{
		Code:         r.FormValue("code"),
		Description:  r.FormValue("description"),
		DiscountType: r.FormValue("discountType"),
		IsActive:     r.FormValue("isActive") == "on" || r.FormValue("isActive") == "1",
	}
	in.DiscountValue, _ = strconv.ParseFloat(r.FormValue("discountValue"), 64)

	if v := r.FormValue("maxUses"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			in.MaxUses = &n
		}
	}
	if v := r.FormValue("minPurchaseAmount"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			in.MinPurchaseAmount = &f
		}
	}
	if v := r.FormValue("validFrom"); v != "" {
		if ts, err := time.Parse("2006-01-02", v); err == nil {
			in.ValidFrom = &ts
		}
	}
	if v := r.FormValue("validUntil"); v != "" {
		if ts, err := time.Parse("2006-01-02", v); err == nil {
			in.ValidUntil = &ts
		}
	}

	violations := validation.Violations{}
	validation.Required("code", in.Code, violations)
	validation.Required("discountType", in.DiscountType, violations)
	if in.DiscountValue <= 0 {
		violations["discountValue"] = "required"
	}
	return in, violations
}

func (h *Handler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	ident, r, ok := h.requireIdentity(w, r)
	if !ok || !h.requirePermission(w, r, ident, gate.ActionManage, policy.ResourceCoupon) {
		return
	}

	in, violations := couponForm(r)
	if !violations.Empty() {
		redirect(w, r, adminCouponsPath, "err", "coupon_create_error")
		return
	}
	if _, err := h.api.CreateCoupon(r.Context(), in); err != nil {
		data := h.pageData(r, ident)
		data["Error"] = apiMessage(r, err, "coupon_create_error")
		h.render(w, r, "admin_coupons.html", data)
		return
	}
	redirect(w, r, adminCouponsPath, "msg", "coupon_created")
}

func (h *Handler) UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	ident, r, ok := h.requireIdentity(w, r)
	if !ok || !h.requirePermission(w, r, ident, gate.ActionManage, policy.ResourceCoupon) {
		return
	}

	id := r.FormValue("id")
	in, violations := couponForm(r)
	if id == "" || !violations.Empty() {
		redirect(w, r, adminCouponsPath, "err", "coupon_update_error")
		return
	}
	if _, err := h.api.UpdateCoupon(r.Context(), id, in); err != nil {
		redirect(w, r, adminCouponsPath, "err", "coupon_update_error")
		return
	}
	redirect(w, r, adminCouponsPath, "msg", "coupon_updated")
}

// DeleteCoupon removes a coupon behind the same confirmation step as
// user deletion: the unconfirmed POST only renders the prompt.
func (h *Handler) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	ident, r, ok := h.requireIdentity(w, r)
	if !ok || !h.requirePermission(w, r, ident, gate.ActionManage, policy.ResourceCoupon) {
		return
	}

	id := r.FormValue("id")
	if id == "" {
		redirect(w, r, adminCouponsPath, "err", "coupon_delete_error")
		return
	}

	if r.FormValue("confirm") != "1" {
		data := h.pageData(r, ident)
		data["ID"] = id
		data["Name"] = r.FormValue("code")
		data["Action"] = adminCouponsPath + "/delete"
		data["Cancel"] = adminCouponsPath
		data["PromptCode"] = "confirm_delete_coupon"
		h.render(w, r, "confirm_delete.html", data)
		return
	}

	if err := h.api.DeleteCoupon(r.Context(), id); err != nil {
		redirect(w, r, adminCouponsPath, "err", "coupon_delete_error")
		return
	}
	redirect(w, r, adminCouponsPath, "msg", "coupon_deleted")
}

// ShareCouponPage renders the grant form for one coupon, with the target
// picked from the known-users list.
func (h *Handler) ShareCouponPage(w http.ResponseWriter, r *http.Request) {
	ident, r, ok := h.requireIdentity(w, r)
	if !ok || !h.requirePermission(w, r, ident, gate.ActionManage, policy.ResourceCoupon) {
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		redirect(w, r, adminCouponsPath, "err", "coupon_share_error")
		return
	}

	users, err := h.api.ListUsers(r.Context())
	if err != nil {
		redirect(w, r, adminCouponsPath, "err", "load_error")
		return
	}

	data := h.pageData(r, ident)
	data["CouponID"] = id
	data["CouponCode"] = r.URL.Query().Get("code")
	data["Users"] = users
	h.render(w, r, "share_coupon.html", data)
}

// ShareCoupon grants a user access to a coupon. Both capability flags
// default to false and are sent explicitly; whether a duplicate grant is
// acceptable is the backend's decision, so nothing is deduplicated here.
func (h *Handler) ShareCoupon(w http.ResponseWriter, r *http.Request) {
	ident, r, ok := h.requireIdentity(w, r)
	if !ok || !h.requirePermission(w, r, ident, gate.ActionManage, policy.ResourceCoupon) {
		return
	}

	in := backend.ShareInput{
		CouponID:         r.FormValue("couponId"),
		SharedWithUserID: r.FormValue("sharedWithUserId"),
		CanViewStats:     r.FormValue("canViewStats") == "on",
		CanDeactivate:    r.FormValue("canDeactivate") == "on",
	}
	if in.CouponID == "" {
		redirect(w, r, adminCouponsPath, "err", "coupon_share_error")
		return
	}
	if in.SharedWithUserID == "" {
		data := h.pageData(r, ident)
		data["Error"] = apiMessage(r, nil, "coupon_select_user")
		data["CouponID"] = in.CouponID
		if users, err := h.api.ListUsers(r.Context()); err == nil {
			data["Users"] = users
		}
		h.render(w, r, "share_coupon.html", data)
		return
	}

	if err := h.api.ShareCoupon(r.Context(), in); err != nil {
		data := h.pageData(r, ident)
		data["Error"] = apiMessage(r, err, "coupon_share_error")
		data["CouponID"] = in.CouponID
		if users, lerr := h.api.ListUsers(r.Context()); lerr == nil {
			data["Users"] = users
		}
		h.render(w, r, "share_coupon.html", data)
		return
	}
	redirect(w, r, adminCouponsPath, "msg", "coupon_shared")
}
