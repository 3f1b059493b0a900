package ports

import "context"

// ProviderConfig describes how the chain source is connected to the
// network.
type ProviderConfig struct {
	Type string
}

// BlockInfo is the subset of block data the controller reports about
// the active network.
type BlockInfo struct {
	Number uint64
	Hash   string
	Time   uint64
}

// ChainSource is the read-only network-status collaborator. The
// controller never mutates its state.
type ChainSource interface {
	// GetChainID returns the 0x-prefixed hex identifier of the network
	// the source is currently connected to.
	GetChainID(ctx context.Context) (string, error)
	// GetProviderConfig returns the connection info of the source.
	GetProviderConfig() ProviderConfig
	// GetLatestBlock returns the most recent block of the connected
	// network.
	GetLatestBlock(ctx context.Context) (*BlockInfo, error)
}
