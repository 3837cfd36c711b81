// Package auth provides roles, the authenticated principal and bearer tokens.
package auth

import (
	"context"
	"slices"
)

// Role is a coarse permission granted to a caller
type Role string

const (
	// RoleUser may read resources
	RoleUser Role = "USER"
	// RoleAdmin may read and write resources
	RoleAdmin Role = "ADMIN"
)

// Principal is the identity attached to a request after token verification
type Principal struct {
	Subject string
	Roles   []Role
}

// HasRole reports whether the principal holds role. ADMIN implies USER.
// A nil principal is anonymous and holds no roles.
func (p *Principal) HasRole(role Role) bool {
	if p == nil {
		return false
	}
	if slices.Contains(p.Roles, role) {
		return true
	}
	return role == RoleUser && slices.Contains(p.Roles, RoleAdmin)
}

type contextKey string

const principalKey contextKey = "principal"

// ContextWithPrincipal adds the principal to the context
func ContextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext returns the principal, or nil for anonymous callers
func PrincipalFromContext(ctx context.Context) *Principal {
	p, ok := ctx.Value(principalKey).(*Principal)
	if !ok {
		return nil
	}
	return p
}
