package inmemory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hexwallet/prefsd/internal/core/domain"
)

func TestSetIdentitiesReplacesRegistry(t *testing.T) {
	repo := NewIdentityRepositoryImpl()

	identities, err := domain.NewIdentities([]string{"0xaa", "0xbb"})
	require.NoError(t, err)
	require.NoError(t, repo.SetIdentities(ctx, identities))

	require.NoError(t, repo.UpdateIdentity(
		ctx, "0xaa",
		func(i *domain.Identity) (*domain.Identity, error) {
			i.Rename("custom")
			return i, nil
		},
	))

	// A full replacement drops custom labels.
	identities, err = domain.NewIdentities([]string{"0xaa", "0xcc"})
	require.NoError(t, err)
	require.NoError(t, repo.SetIdentities(ctx, identities))

	stored, err := repo.GetAllIdentities(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	require.Equal(t, "0xaa", stored[0].Address)
	require.Equal(t, "Account 1", stored[0].Name)
	require.Equal(t, "0xcc", stored[1].Address)
	require.Equal(t, "Account 2", stored[1].Name)
}

func TestUpdateUnknownIdentity(t *testing.T) {
	repo := NewIdentityRepositoryImpl()

	err := repo.UpdateIdentity(
		ctx, "0xnope",
		func(i *domain.Identity) (*domain.Identity, error) {
			return i, nil
		},
	)
	require.ErrorIs(t, err, domain.ErrIdentityNotFound)
}

func TestDeleteAbsentIdentityIsNoOp(t *testing.T) {
	repo := NewIdentityRepositoryImpl()

	require.NoError(t, repo.DeleteIdentity(ctx, "0xnope"))
}

func TestMoveAddressBookEntries(t *testing.T) {
	repo := NewAddressBookRepositoryImpl()

	for _, address := range []string{"0xaa", "0xbb"} {
		entry, err := domain.NewAddressBookEntry("0x1", address, "friend", "")
		require.NoError(t, err)
		require.NoError(t, repo.AddEntry(ctx, entry))
	}
	other, err := domain.NewAddressBookEntry("0x5", "0xcc", "other", "")
	require.NoError(t, err)
	require.NoError(t, repo.AddEntry(ctx, other))

	moved, err := repo.MoveEntries(ctx, "0x1", "0x2")
	require.NoError(t, err)
	require.Equal(t, 2, moved)

	oldEntries, err := repo.GetEntriesByChain(ctx, "0x1")
	require.NoError(t, err)
	require.Empty(t, oldEntries)

	newEntries, err := repo.GetEntriesByChain(ctx, "0x2")
	require.NoError(t, err)
	require.Len(t, newEntries, 2)

	untouched, err := repo.GetEntriesByChain(ctx, "0x5")
	require.NoError(t, err)
	require.Len(t, untouched, 1)
}
