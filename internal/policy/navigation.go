package policy

import (
	"github.com/stormhq/storm-admin/gate"
	"github.com/stormhq/storm-admin/internal/models"
)

// NavItem is one sidebar entry. LabelCode is an i18n message code, not
// display text; rendering translates it per request.
type NavItem struct {
	LabelCode  string
	Path       string
	Permission gate.Permission
}

// navItems is the full menu in display order. Visibility is decided
// entirely by the permission column; there is no per-role list to drift
// out of sync.
var navItems = []NavItem{
	{LabelCode: "nav_dashboard", Path: "/dashboard", Permission: gate.NewPermission(ResourceDashboard, gate.ActionView)},
	{LabelCode: "nav_my_coupons", Path: "/dashboard/cupons", Permission: gate.NewPermission(ResourceSharedCoupon, gate.ActionList)},
	{LabelCode: "nav_admin_users", Path: "/dashboard/admin/usuarios", Permission: gate.NewPermission(ResourceUser, gate.ActionManage)},
	{LabelCode: "nav_admin_coupons", Path: "/dashboard/admin/cupons", Permission: gate.NewPermission(ResourceCoupon, gate.ActionManage)},
	{LabelCode: "nav_users", Path: "/dashboard/usuarios", Permission: gate.NewPermission(ResourceUser, gate.ActionList)},
	{LabelCode: "nav_settings", Path: "/dashboard/configuracoes", Permission: gate.NewPermission(ResourceSettings, gate.ActionView)},
}

// VisibleItems returns the menu entries the role may see, preserving
// definition order. Unknown roles get an empty menu. Pure: same role,
// same slice, no side effects.
func VisibleItems(g *gate.Gate, role models.RoleID) []NavItem {
	var visible []NavItem
	for _, item := range navItems {
		res, act := item.Permission.Parse()
		if g.CanProfile(gate.Role(role), act, res) {
			visible = append(visible, item)
		}
	}
	return visible
}
