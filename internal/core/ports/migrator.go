package ports

import "context"

// AddressBookMigrator moves chain-scoped address-book data when the
// chain identifier of an existing RPC endpoint changes. It is invoked
// exactly once per confirmed change, never on first creation of an
// endpoint.
type AddressBookMigrator interface {
	Migrate(ctx context.Context, oldChainID, newChainID string) error
}
