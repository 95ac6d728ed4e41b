package handlers

import (
	"net/http"

	"github.com/stormhq/storm-admin/gate"
	"github.com/stormhq/storm-admin/internal/backend"
	"github.com/stormhq/storm-admin/internal/models"
	"github.com/stormhq/storm-admin/internal/policy"
)

const myCouponsPath = "/dashboard/cupons"

// MyCoupons lists the coupons shared with the caller. Statistics render
// only for shares that grant canViewStats; deactivation buttons only for
// shares that grant canDeactivate.
func (h *Handler) MyCoupons(w http.ResponseWriter, r *http.Request) {
	ident, r, ok := h.requireIdentity(w, r)
	if !ok || !h.requirePermission(w, r, ident, gate.ActionList, policy.ResourceSharedCoupon) {
		return
	}

	coupons, err := h.api.PartnerCoupons(r.Context())
	if err != nil {
		data := h.pageData(r, ident)
		data["Error"] = apiMessage(r, err, "load_error")
		h.render(w, r, "my_coupons.html", data)
		return
	}

	q := r.URL.Query().Get("q")
	data := h.pageData(r, ident)
	data["Coupons"] = models.FilterSharedCoupons(q, coupons)
	data["Filter"] = q
	h.render(w, r, "my_coupons.html", data)
}

// DeactivateSharedCoupon turns a shared coupon off. The share must grant
// canDeactivate; a missing grant is rejected here, before any backend
// write, and the capability is re-read from a fresh fetch rather than
// trusted from the form.
func (h *Handler) DeactivateSharedCoupon(w http.ResponseWriter, r *http.Request) {
	ident, r, ok := h.requireIdentity(w, r)
	if !ok || !h.requirePermission(w, r, ident, gate.ActionDeactivate, policy.ResourceSharedCoupon) {
		return
	}

	id := r.FormValue("id")
	if id == "" {
		redirect(w, r, myCouponsPath, "err", "generic_error")
		return
	}

	coupons, err := h.api.PartnerCoupons(r.Context())
	if err != nil {
		redirect(w, r, myCouponsPath, "err", "load_error")
		return
	}

	var target *models.SharedCoupon
	for i := range coupons {
		if coupons[i].ID == id {
			target = &coupons[i]
			break
		}
	}
	if target == nil {
		redirect(w, r, myCouponsPath, "err", "generic_error")
		return
	}
	if !h.gate.Can(r.Context(), gate.Role(ident.RoleID), gate.ActionDeactivate, policy.ResourceSharedCoupon, target) {
		redirect(w, r, myCouponsPath, "err", "deactivate_not_allowed")
		return
	}

	in := backend.CouponInput{
		Code:              target.Code,
		Description:       target.Description,
		DiscountType:      target.DiscountType,
		DiscountValue:     target.DiscountValue,
		IsActive:          false,
		ValidFrom:         target.ValidFrom,
		ValidUntil:        target.ValidUntil,
		MaxUses:           target.MaxUses,
		MinPurchaseAmount: target.MinPurchaseAmount,
	}
	if _, err := h.api.UpdateCoupon(r.Context(), id, in); err != nil {
		redirect(w, r, myCouponsPath, "err", "coupon_update_error")
		return
	}
	redirect(w, r, myCouponsPath, "msg", "coupon_deactivated")
}
