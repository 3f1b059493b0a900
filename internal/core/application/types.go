package application

import (
	"github.com/hexwallet/prefsd/internal/core/domain"
	"github.com/hexwallet/prefsd/internal/core/ports"
)

// Snapshot is the immutable view of the aggregated preferences state
// published to observers after every mutation.
type Snapshot struct {
	Identities        []domain.Identity
	Endpoints         []domain.RPCEndpoint
	SelectedAddress   string
	ForgottenPassword bool
	UsePhishDetect    bool
	UseTokenDetection bool
}

// ObserverFunc is the callback through which external collaborators
// observe state changes.
type ObserverFunc func(Snapshot) error

// NetworkStatus reports the state of the connected network as seen by
// the read-only chain source.
type NetworkStatus struct {
	ChainID  string
	Provider ports.ProviderConfig
	Block    *ports.BlockInfo
}
