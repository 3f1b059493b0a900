package domain_test

import (
	"fmt"
	"testing"

	"github.com/hexwallet/prefsd/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestNewIdentities(t *testing.T) {
	t.Parallel()

	addresses := []string{"0xAA", "0xbb", "0xCC"}
	identities, err := domain.NewIdentities(addresses)
	require.NoError(t, err)
	require.Len(t, identities, 3)

	for i, identity := range identities {
		require.Equal(t, domain.NormalizeAddress(addresses[i]), identity.Address)
		require.Equal(t, fmt.Sprintf("Account %d", i+1), identity.Name)
		require.Equal(t, i+1, identity.Position)
	}
}

func TestFailingNewIdentities(t *testing.T) {
	t.Parallel()

	identities, err := domain.NewIdentities([]string{"0xaa", ""})
	require.Nil(t, identities)
	require.ErrorIs(t, err, domain.ErrMissingAddress)
}

func TestIdentityRename(t *testing.T) {
	t.Parallel()

	identity, err := domain.NewIdentity("0xaa", 1)
	require.NoError(t, err)
	require.Equal(t, "Account 1", identity.Name)

	identity.Rename("savings")
	require.Equal(t, "savings", identity.Name)
	require.Equal(t, "0xaa", identity.Address)
}

func TestNewAddressBookEntry(t *testing.T) {
	t.Parallel()

	entry, err := domain.NewAddressBookEntry("0x1", "0xDD", "alice", "rent")
	require.NoError(t, err)
	require.Equal(t, "0x1/0xdd", entry.Key())

	entry, err = domain.NewAddressBookEntry("1", "0xdd", "alice", "")
	require.Nil(t, entry)
	require.ErrorIs(t, err, domain.ErrInvalidChainID)
}
