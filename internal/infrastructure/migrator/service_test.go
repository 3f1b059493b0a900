package migrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hexwallet/prefsd/internal/core/domain"
	"github.com/hexwallet/prefsd/internal/infrastructure/storage/db/inmemory"
)

var ctx = context.Background()

func TestMigrateMovesEntries(t *testing.T) {
	repoManager := inmemory.NewRepoManager()
	svc, err := NewService(repoManager)
	require.NoError(t, err)

	entry, err := domain.NewAddressBookEntry("0x1", "0xaa", "alice", "")
	require.NoError(t, err)
	require.NoError(t, repoManager.AddressBookRepository().AddEntry(ctx, entry))

	require.NoError(t, svc.Migrate(ctx, "0x1", "0x2"))

	entries, err := repoManager.AddressBookRepository().
		GetEntriesByChain(ctx, "0x2")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "alice", entries[0].Name)
}

func TestMigrateWithEmptyBookIsNoOp(t *testing.T) {
	repoManager := inmemory.NewRepoManager()
	svc, err := NewService(repoManager)
	require.NoError(t, err)

	require.NoError(t, svc.Migrate(ctx, "0x1", "0x2"))
}

func TestFailingNewService(t *testing.T) {
	_, err := NewService(nil)
	require.Error(t, err)
}
