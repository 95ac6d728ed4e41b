// Package policy defines what each role may do and see. A single
// permission table drives both navigation visibility and screen access,
// so the menu and the guard can never disagree.
package policy

import (
	"github.com/stormhq/storm-admin/gate"
	"github.com/stormhq/storm-admin/internal/models"
)

// Resource types recognized by the permission table.
const (
	ResourceDashboard    = "dashboard"
	ResourceSettings     = "settings"
	ResourceUser         = "user"
	ResourceCoupon       = "coupon"
	ResourceSharedCoupon = "shared_coupon"
)

// NewGate builds the authorization gate with the fixed role table and the
// shared-coupon capability policy. Unknown roles resolve to nothing and
// are denied everywhere.
func NewGate() *gate.Gate {
	resolver := gate.NewStaticResolver()

	resolver.Set(gate.Role(models.RoleSuperAdmin), gate.NewStaticProfile(
		string(models.RoleSuperAdmin),
		gate.PermissionSuperAdmin,
	))
	resolver.Set(gate.Role(models.RoleAdmin), gate.NewStaticProfile(
		string(models.RoleAdmin),
		gate.NewPermission(ResourceDashboard, gate.ActionView),
		gate.NewPermission(ResourceSettings, gate.ActionView),
		gate.NewPermission(ResourceSharedCoupon, gate.Action(gate.WildcardAll)),
		gate.NewPermission(ResourceUser, gate.ActionList),
		gate.NewPermission(ResourceUser, gate.ActionView),
	))
	resolver.Set(gate.Role(models.RolePartner), gate.NewStaticProfile(
		string(models.RolePartner),
		gate.NewPermission(ResourceDashboard, gate.ActionView),
		gate.NewPermission(ResourceSettings, gate.ActionView),
		gate.NewPermission(ResourceSharedCoupon, gate.Action(gate.WildcardAll)),
	))
	resolver.Set(gate.Role(models.RoleContractManager), gate.NewStaticProfile(
		string(models.RoleContractManager),
		gate.NewPermission(ResourceDashboard, gate.ActionView),
		gate.NewPermission(ResourceSettings, gate.ActionView),
	))
	resolver.Set(gate.Role(models.RoleUser), gate.NewStaticProfile(
		string(models.RoleUser),
		gate.NewPermission(ResourceDashboard, gate.ActionView),
		gate.NewPermission(ResourceSettings, gate.ActionView),
	))

	g := gate.New(resolver)
	g.RegisterPolicy(ResourceSharedCoupon, ShareCapabilityPolicy())
	return g
}
