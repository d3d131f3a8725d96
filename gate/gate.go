// Package gate decides whether a subject may enter a route. Routes declare
// an access Level when registered; the Gate runs its Policy predicate over
// the request's subject instead of matching route names against a list.
//
// The subject type is generic so the gate stays free of domain models:
//   - Gate[string] for username-based sessions
//   - Gate[uint] for numeric user IDs
package gate

import "context"

// Level is a route's declared access requirement.
type Level string

const (
	// LevelPublic routes are reachable by anonymous requests.
	LevelPublic Level = "public"
	// LevelProtected routes require an authenticated subject.
	LevelProtected Level = "protected"
)

// Policy decides whether subject may enter a route of the given level.
type Policy[U comparable] interface {
	Allows(ctx context.Context, subject U, level Level) bool
}

// PolicyFunc adapts a plain function to a Policy.
type PolicyFunc[U comparable] func(ctx context.Context, subject U, level Level) bool

func (f PolicyFunc[U]) Allows(ctx context.Context, subject U, level Level) bool {
	return f(ctx, subject, level)
}

// Gate is the central route-access checkpoint.
type Gate[U comparable] struct {
	policy Policy[U]
}

// New creates a Gate with the given policy. A nil policy denies everything
// above LevelPublic.
func New[U comparable](p Policy[U]) *Gate[U] {
	return &Gate[U]{policy: p}
}

// Authorize returns ErrUnauthorized when the policy denies the subject.
func (g *Gate[U]) Authorize(ctx context.Context, subject U, level Level) error {
	if level == LevelPublic {
		return nil
	}
	if g.policy == nil {
		return ErrUnauthorized
	}
	if !g.policy.Allows(ctx, subject, level) {
		return ErrUnauthorized
	}
	return nil
}

// Allows is a convenience wrapper returning bool instead of error.
func (g *Gate[U]) Allows(ctx context.Context, subject U, level Level) bool {
	return g.Authorize(ctx, subject, level) == nil
}
