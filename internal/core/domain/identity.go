package domain

import "fmt"

// Identity is the display record of one account the wallet can select.
type Identity struct {
	// Address is the opaque account key, caller-supplied.
	Address string
	// Name is the display label shown to the user.
	Name string
	// Position is the 1-based creation index, used to keep listing order
	// stable across storage backends.
	Position int
}

// NewIdentity returns an identity with the default display label for
// the given 1-based position.
func NewIdentity(address string, position int) (*Identity, error) {
	if len(address) == 0 {
		return nil, ErrMissingAddress
	}

	return &Identity{
		Address:  NormalizeAddress(address),
		Name:     fmt.Sprintf("Account %d", position),
		Position: position,
	}, nil
}

// NewIdentities builds the full registry content for an ordered list of
// addresses, labelling them "Account 1".."Account n" in the given order.
func NewIdentities(addresses []string) ([]Identity, error) {
	identities := make([]Identity, 0, len(addresses))
	for i, addr := range addresses {
		identity, err := NewIdentity(addr, i+1)
		if err != nil {
			return nil, err
		}
		identities = append(identities, *identity)
	}
	return identities, nil
}

// Rename overwrites only the display label.
func (i *Identity) Rename(name string) {
	i.Name = name
}
