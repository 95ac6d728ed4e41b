// Package gate provides role-based authorization over a static permission
// table. A Gate resolves a role to its Profile, checks the profile's
// permissions for the requested resource:action pair, and optionally
// consults a per-resource Policy (e.g. a share grant) when a concrete
// resource is supplied. The package knows nothing about domain models and
// can be reused by any screen or middleware that holds a role.
package gate

import "context"

// Role identifies an access level. The application defines the closed set.
type Role string

// Gate is the central authorization checkpoint.
type Gate struct {
	resolver Resolver
	policies map[string]Policy
}

// New creates a Gate backed by the given role resolver.
func New(resolver Resolver) *Gate {
	return &Gate{resolver: resolver, policies: make(map[string]Policy)}
}

// RegisterPolicy adds a resource-level policy for a resource type.
// Overwrites any existing policy for that type.
func (g *Gate) RegisterPolicy(resourceType string, p Policy) {
	g.policies[resourceType] = p
}

// Authorize checks, in order:
//  1. the role is non-empty and resolves to a profile,
//  2. the profile grants resource:action,
//  3. if a policy is registered for the resource type and a concrete
//     resource is given, the policy allows the action on it.
//
// Returns ErrUnauthorized on any failed step.
func (g *Gate) Authorize(ctx context.Context, role Role, action Action, resourceType string, resource any) error {
	if role == "" {
		return ErrUnauthorized
	}
	profile, ok := g.resolver.Resolve(role)
	if !ok || profile == nil {
		return ErrUnauthorized
	}
	if !profile.HasPermission(NewPermission(resourceType, action)) {
		return ErrUnauthorized
	}
	if resource != nil {
		if p, ok := g.policies[resourceType]; ok {
			if !p.Can(ctx, role, action, resource) {
				return ErrUnauthorized
			}
		}
	}
	return nil
}

// Can is a convenience wrapper returning bool instead of error.
func (g *Gate) Can(ctx context.Context, role Role, action Action, resourceType string, resource any) bool {
	return g.Authorize(ctx, role, action, resourceType, resource) == nil
}

// CanProfile checks only the profile permission, skipping resource policies.
// Screens use it to gate whole pages before any resource is loaded.
func (g *Gate) CanProfile(role Role, action Action, resourceType string) bool {
	if role == "" {
		return false
	}
	profile, ok := g.resolver.Resolve(role)
	if !ok || profile == nil {
		return false
	}
	return profile.HasPermission(NewPermission(resourceType, action))
}
