package dbbadger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hexwallet/prefsd/internal/core/domain"
	"github.com/hexwallet/prefsd/internal/core/ports"
)

var ctx = context.Background()

func newTestRepoManager(t *testing.T) ports.RepoManager {
	repoManager, err := NewRepoManager("", nil)
	require.NoError(t, err)
	t.Cleanup(repoManager.Close)
	return repoManager
}

func TestEndpointRoundTrip(t *testing.T) {
	repoManager := newTestRepoManager(t)
	repo := repoManager.RPCEndpointRepository()

	endpoint, err := domain.NewRPCEndpoint(
		"https://mainnet.example.org", "0x1", domain.EndpointOptions{
			Nickname: "main",
			Prefs:    map[string]string{"blockExplorerUrl": "https://etherscan.io"},
		},
	)
	require.NoError(t, err)
	require.NoError(t, repo.AddEndpoint(ctx, endpoint))

	stored, err := repo.GetEndpointByURL(ctx, "https://mainnet.example.org")
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, "0x1", stored.ChainID)
	require.Equal(t, "ETH", stored.Ticker)
	require.Equal(t, "main", stored.Nickname)
	require.Equal(t, "https://etherscan.io", stored.Prefs["blockExplorerUrl"])
	require.Equal(t, 1, stored.Position)
}

func TestEndpointDedupeAndOrder(t *testing.T) {
	repoManager := newTestRepoManager(t)
	repo := repoManager.RPCEndpointRepository()

	for _, url := range []string{"url_1", "url_2"} {
		endpoint, err := domain.NewRPCEndpoint(url, "0x1", domain.EndpointOptions{})
		require.NoError(t, err)
		require.NoError(t, repo.AddEndpoint(ctx, endpoint))
	}

	replacement, err := domain.NewRPCEndpoint("url_1", "0x2", domain.EndpointOptions{})
	require.NoError(t, err)
	require.NoError(t, repo.AddEndpoint(ctx, replacement))

	endpoints, err := repo.GetAllEndpoints(ctx)
	require.NoError(t, err)
	require.Len(t, endpoints, 2)
	require.Equal(t, "url_1", endpoints[0].RPCURL)
	require.Equal(t, "0x2", endpoints[0].ChainID)
	require.Equal(t, "url_2", endpoints[1].RPCURL)
}

func TestIdentityRegistryReplacement(t *testing.T) {
	repoManager := newTestRepoManager(t)
	repo := repoManager.IdentityRepository()

	identities, err := domain.NewIdentities([]string{"0xaa", "0xbb", "0xcc"})
	require.NoError(t, err)
	require.NoError(t, repo.SetIdentities(ctx, identities))

	identities, err = domain.NewIdentities([]string{"0xdd"})
	require.NoError(t, err)
	require.NoError(t, repo.SetIdentities(ctx, identities))

	stored, err := repo.GetAllIdentities(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, "0xdd", stored[0].Address)

	gone, err := repo.GetIdentity(ctx, "0xaa")
	require.NoError(t, err)
	require.Nil(t, gone)
}

func TestPreferencesDefaultsAndUpdate(t *testing.T) {
	repoManager := newTestRepoManager(t)
	repo := repoManager.PreferencesRepository()

	preferences, err := repo.GetPreferences(ctx)
	require.NoError(t, err)
	require.True(t, preferences.UsePhishDetect)
	require.False(t, preferences.ForgottenPassword)
	require.Empty(t, preferences.SelectedAddress)

	require.NoError(t, repo.UpdatePreferences(
		ctx, func(p *domain.Preferences) (*domain.Preferences, error) {
			p.SelectedAddress = "0xaa"
			p.UseTokenDetection = true
			return p, nil
		},
	))

	preferences, err = repo.GetPreferences(ctx)
	require.NoError(t, err)
	require.Equal(t, "0xaa", preferences.SelectedAddress)
	require.True(t, preferences.UseTokenDetection)
	require.True(t, preferences.UsePhishDetect)
}

func TestAddressBookMove(t *testing.T) {
	repoManager := newTestRepoManager(t)
	repo := repoManager.AddressBookRepository()

	entry, err := domain.NewAddressBookEntry("0x1", "0xaa", "alice", "")
	require.NoError(t, err)
	require.NoError(t, repo.AddEntry(ctx, entry))

	moved, err := repo.MoveEntries(ctx, "0x1", "0x2")
	require.NoError(t, err)
	require.Equal(t, 1, moved)

	entries, err := repo.GetEntriesByChain(ctx, "0x2")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "alice", entries[0].Name)
}
