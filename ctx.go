package meet

import "context"

var identityCtxKey = &contextKey{"identity"}

type contextKey struct {
	name string
}

// WithIdentity sets the verified caller Identity in the given context.
// The authentication layer in front of the handlers is responsible for
// calling this; handlers never trust a payload-supplied identifier.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey, identity)
}

// IdentityFromContext finds the caller identity in the context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	raw, ok := ctx.Value(identityCtxKey).(Identity)
	return raw, ok
}

// RequireIdentity extracts the verified caller identity or fails with an
// unauthenticated error. Every identity-bound handler calls this first.
func RequireIdentity(ctx context.Context) (Identity, error) {
	identity, ok := IdentityFromContext(ctx)
	if !ok || identity == nil || identity.ID() == "" {
		return nil, ErrNoVerifiedIdentity
	}
	return identity, nil
}
