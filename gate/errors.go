package gate

import "errors"

// ErrUnauthorized is returned by Gate.Authorize for empty roles, unknown
// roles, missing permissions, and denied resource policies alike.
var ErrUnauthorized = errors.New("unauthorized")
