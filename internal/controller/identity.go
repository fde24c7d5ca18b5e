package controller

import (
	"context"

	"github.com/samber/mo"
)

// Identity is who is acting on the page. The API has no sessions, so the
// surfaces resolve it and pass it in explicitly.
type Identity struct {
	EmployerID mo.Option[int]
}

// Anonymous is an identity with no account.
func Anonymous() Identity {
	return Identity{EmployerID: mo.None[int]()}
}

// EmployerIdentity acts as the employer with the given id.
func EmployerIdentity(id int) Identity {
	if id <= 0 {
		return Anonymous()
	}
	return Identity{EmployerID: mo.Some(id)}
}

type identityKey struct{}

// WithIdentity stores id in ctx.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity stored in ctx, or Anonymous.
func IdentityFrom(ctx context.Context) Identity {
	if id, ok := ctx.Value(identityKey{}).(Identity); ok {
		return id
	}
	return Anonymous()
}
