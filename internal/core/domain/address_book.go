package domain

import "fmt"

// AddressBookEntry is a contact saved by the user, scoped to the chain
// it was created on.
type AddressBookEntry struct {
	// ChainID scopes the entry to one network.
	ChainID string
	// Address is the contact's account address.
	Address string
	// Name is the contact's display label.
	Name string
	// Memo is a free-form user note.
	Memo string
}

// NewAddressBookEntry validates the chain id format and returns a new
// contact entry.
func NewAddressBookEntry(
	chainID, address, name, memo string,
) (*AddressBookEntry, error) {
	if !IsValidChainID(chainID) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidChainID, chainID)
	}
	if len(address) == 0 {
		return nil, ErrMissingAddress
	}

	return &AddressBookEntry{
		ChainID: chainID,
		Address: NormalizeAddress(address),
		Name:    name,
		Memo:    memo,
	}, nil
}

// Key returns the storage key of the entry, unique per chain/address
// pair.
func (e AddressBookEntry) Key() string {
	return fmt.Sprintf("%s/%s", e.ChainID, e.Address)
}
