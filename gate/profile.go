package gate

// Profile is a named set of permissions attached to a role.
type Profile interface {
	Name() string
	HasPermission(permission Permission) bool
	Permissions() []Permission
}

// Resolver maps a role to its profile. Implementations are expected to be
// cheap and side-effect free; the role table is fixed at process start.
type Resolver interface {
	Resolve(role Role) (Profile, bool)
}

// StaticProfile is an in-memory profile.
type StaticProfile struct {
	name        string
	permissions map[Permission]bool
}

// NewStaticProfile creates a profile holding the given permissions.
func NewStaticProfile(name string, permissions ...Permission) *StaticProfile {
	p := &StaticProfile{name: name, permissions: make(map[Permission]bool, len(permissions))}
	for _, perm := range permissions {
		p.permissions[perm] = true
	}
	return p
}

func (p *StaticProfile) Name() string { return p.name }

// Permissions returns every permission held by the profile.
func (p *StaticProfile) Permissions() []Permission {
	perms := make([]Permission, 0, len(p.permissions))
	for perm := range p.permissions {
		perms = append(perms, perm)
	}
	return perms
}

// HasPermission reports whether the profile grants the requested
// permission, honoring wildcard entries.
func (p *StaticProfile) HasPermission(requested Permission) bool {
	for perm := range p.permissions {
		if perm.Matches(requested) {
			return true
		}
	}
	return false
}

// StaticResolver resolves roles from a fixed table.
type StaticResolver struct {
	profiles map[Role]Profile
}

// NewStaticResolver creates an empty role table.
func NewStaticResolver() *StaticResolver {
	return &StaticResolver{profiles: make(map[Role]Profile)}
}

// Set assigns a profile to a role.
func (r *StaticResolver) Set(role Role, profile Profile) {
	r.profiles[role] = profile
}

// Resolve returns the profile for the role. Unknown roles resolve to
// nothing, which the Gate treats as "no permissions" rather than an error.
func (r *StaticResolver) Resolve(role Role) (Profile, bool) {
	p, ok := r.profiles[role]
	return p, ok
}
