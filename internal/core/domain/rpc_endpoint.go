package domain

import "fmt"

// DefaultTicker is the currency symbol assigned to an endpoint when the
// caller does not provide one.
const DefaultTicker = "ETH"

// EndpointOptions groups the optional fields of an RPC endpoint. The
// zero value of every field means "use the default".
type EndpointOptions struct {
	Ticker   string
	Nickname string
	Prefs    map[string]string
}

// RPCEndpoint is a user-configured network connection record.
type RPCEndpoint struct {
	// RPCURL uniquely identifies the endpoint within the registry.
	RPCURL string
	// ChainID is the 0x-prefixed hex identifier of the target network.
	ChainID string
	// Ticker is the currency symbol of the network's native asset.
	Ticker string
	// Nickname is a free-form user label.
	Nickname string
	// Prefs is an opaque bag of display preferences.
	Prefs map[string]string
	// Position is the insertion index, significant for UI ordering.
	Position int
}

// NewRPCEndpoint validates the chain id format and returns an endpoint
// with defaults applied to all unset optional fields. The position is
// assigned by the repository on insertion. The pref bag is cloned so
// the caller keeps no reference to stored state.
func NewRPCEndpoint(
	rpcURL, chainID string, opts EndpointOptions,
) (*RPCEndpoint, error) {
	if len(rpcURL) == 0 {
		return nil, ErrMissingRPCURL
	}
	if !IsValidChainID(chainID) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidChainID, chainID)
	}

	ticker := opts.Ticker
	if len(ticker) == 0 {
		ticker = DefaultTicker
	}

	return &RPCEndpoint{
		RPCURL:   rpcURL,
		ChainID:  chainID,
		Ticker:   ticker,
		Nickname: opts.Nickname,
		Prefs:    ClonePrefs(opts.Prefs),
	}, nil
}

// ClonePrefs returns a detached copy of a pref bag. A nil bag clones to
// an empty one.
func ClonePrefs(prefs map[string]string) map[string]string {
	cloned := make(map[string]string, len(prefs))
	for k, v := range prefs {
		cloned[k] = v
	}
	return cloned
}
