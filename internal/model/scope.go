package model

import "context"

// Scope identifies the authenticated caller. Every store call is bounded by it.
type Scope struct {
	UserID string
	Email  string
}

type scopeCtxKey struct{}

// SetScopeToContext stores sc in ctx.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the Scope stored by the auth middleware.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(Scope)
	return sc, ok && sc.UserID != ""
}
