package domain_test

import (
	"testing"

	"github.com/hexwallet/prefsd/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestNewRPCEndpoint(t *testing.T) {
	t.Parallel()

	endpoint, err := domain.NewRPCEndpoint(
		"https://mainnet.example.org", "0x1", domain.EndpointOptions{},
	)
	require.NoError(t, err)
	require.NotNil(t, endpoint)
	require.Equal(t, "https://mainnet.example.org", endpoint.RPCURL)
	require.Equal(t, "0x1", endpoint.ChainID)
	require.Equal(t, domain.DefaultTicker, endpoint.Ticker)
	require.Empty(t, endpoint.Nickname)
	require.NotNil(t, endpoint.Prefs)
	require.Empty(t, endpoint.Prefs)
}

func TestNewRPCEndpointWithOptions(t *testing.T) {
	t.Parallel()

	endpoint, err := domain.NewRPCEndpoint(
		"https://testnet.example.org", "0xaa36a7", domain.EndpointOptions{
			Ticker:   "SepoliaETH",
			Nickname: "sepolia",
			Prefs:    map[string]string{"blockExplorerUrl": "https://sepolia.etherscan.io"},
		},
	)
	require.NoError(t, err)
	require.Equal(t, "SepoliaETH", endpoint.Ticker)
	require.Equal(t, "sepolia", endpoint.Nickname)
	require.Equal(t, "https://sepolia.etherscan.io", endpoint.Prefs["blockExplorerUrl"])
}

func TestNewRPCEndpointClonesPrefs(t *testing.T) {
	t.Parallel()

	callerPrefs := map[string]string{
		"blockExplorerUrl": "https://etherscan.io",
	}
	endpoint, err := domain.NewRPCEndpoint(
		"rpc_url", "0x1", domain.EndpointOptions{Prefs: callerPrefs},
	)
	require.NoError(t, err)

	callerPrefs["blockExplorerUrl"] = "https://evil.example"
	require.Equal(
		t, "https://etherscan.io", endpoint.Prefs["blockExplorerUrl"],
	)
}

func TestFailingNewRPCEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		rpcURL        string
		chainID       string
		expectedError error
	}{
		{
			name:          "missing_rpc_url",
			rpcURL:        "",
			chainID:       "0x1",
			expectedError: domain.ErrMissingRPCURL,
		},
		{
			name:          "decimal_chain_id",
			rpcURL:        "rpc_url",
			chainID:       "1",
			expectedError: domain.ErrInvalidChainID,
		},
		{
			name:          "empty_chain_id",
			rpcURL:        "rpc_url",
			chainID:       "",
			expectedError: domain.ErrInvalidChainID,
		},
		{
			name:          "bare_prefix",
			rpcURL:        "rpc_url",
			chainID:       "0x",
			expectedError: domain.ErrInvalidChainID,
		},
		{
			name:          "non_hex_digits",
			rpcURL:        "rpc_url",
			chainID:       "0xZZ",
			expectedError: domain.ErrInvalidChainID,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			endpoint, err := domain.NewRPCEndpoint(
				tt.rpcURL, tt.chainID, domain.EndpointOptions{},
			)
			require.Nil(t, endpoint)
			require.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestInvalidChainIDErrorCarriesValue(t *testing.T) {
	t.Parallel()

	_, err := domain.NewRPCEndpoint("rpc_url", "1337", domain.EndpointOptions{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "1337")
}
