package domain

import "context"

// IdentityRepository is the abstraction for any kind of database
// intended to persist the identity registry.
type IdentityRepository interface {
	// SetIdentities discards the whole registry and stores the given
	// identities as its new content, preserving their order.
	SetIdentities(ctx context.Context, identities []Identity) error
	// GetIdentity returns the identity for the given address, or nil if
	// the address is not in the registry.
	GetIdentity(ctx context.Context, address string) (*Identity, error)
	// GetAllIdentities returns all identities sorted by position.
	GetAllIdentities(ctx context.Context) ([]Identity, error)
	// UpdateIdentity commits the changes made by the closure to the
	// identity with the given address. Returns ErrIdentityNotFound if the
	// address is not in the registry.
	UpdateIdentity(
		ctx context.Context,
		address string, updateFn func(i *Identity) (*Identity, error),
	) error
	// DeleteIdentity removes the identity with the given address. Deleting
	// an absent address is not an error.
	DeleteIdentity(ctx context.Context, address string) error
}
