package gate

import "context"

// Policy defines resource-level authorization for a resource type, checked
// after the role's profile permission. The resource is the concrete value
// the caller wants to act on (e.g. a coupon with its share grant); for
// list/create checks it may be nil and the policy is skipped.
type Policy interface {
	Can(ctx context.Context, role Role, action Action, resource any) bool
}

// PolicyFunc adapts a function to the Policy interface.
type PolicyFunc func(ctx context.Context, role Role, action Action, resource any) bool

func (f PolicyFunc) Can(ctx context.Context, role Role, action Action, resource any) bool {
	return f(ctx, role, action, resource)
}
