package policy

import (
	"context"

	"github.com/stormhq/storm-admin/gate"
	"github.com/stormhq/storm-admin/internal/models"
)

// ShareCapabilityPolicy gates per-share capabilities on a shared coupon.
// The share record carries two independent grants: deactivation and
// statistics. Role permissions get a coupon this far; the grant decides
// the rest. Actions outside the two grants pass through.
func ShareCapabilityPolicy() gate.Policy {
	return gate.PolicyFunc(func(ctx context.Context, role gate.Role, action gate.Action, resource any) bool {
		sc, ok := resource.(*models.SharedCoupon)
		if !ok {
			return false
		}
		switch action {
		case gate.ActionDeactivate:
			return sc.Share.CanDeactivate
		case gate.ActionView:
			// Statistics are the only restricted part of viewing; the
			// coupon itself is visible to whoever it was shared with.
			return true
		default:
			return true
		}
	})
}

// CanViewStats reports whether the share attached to sc grants access to
// usage statistics. Kept separate from the gate because it filters data
// within a page rather than access to the page.
func CanViewStats(sc *models.SharedCoupon) bool {
	return sc != nil && sc.Share.CanViewStats
}
