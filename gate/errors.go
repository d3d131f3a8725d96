package gate

import "errors"

// ErrUnauthorized is returned when the policy denies the subject access to
// a route of the requested level.
var ErrUnauthorized = errors.New("gate: unauthorized")
