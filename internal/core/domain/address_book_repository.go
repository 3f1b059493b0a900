package domain

import "context"

// AddressBookRepository persists chain-scoped contact entries.
type AddressBookRepository interface {
	// AddEntry stores the entry, overwriting any existing entry with the
	// same chain/address pair.
	AddEntry(ctx context.Context, entry *AddressBookEntry) error
	// GetEntriesByChain returns all entries scoped to the given chain id.
	GetEntriesByChain(ctx context.Context, chainID string) ([]AddressBookEntry, error)
	// GetAllEntries returns every stored entry.
	GetAllEntries(ctx context.Context) ([]AddressBookEntry, error)
	// MoveEntries re-keys all entries from the old chain id to the new
	// one and returns how many were moved.
	MoveEntries(ctx context.Context, oldChainID, newChainID string) (int, error)
	// DeleteEntry removes the entry with the given chain/address pair.
	// Deleting an absent entry is not an error.
	DeleteEntry(ctx context.Context, chainID, address string) error
}
