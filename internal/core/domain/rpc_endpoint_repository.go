package domain

import "context"

// RPCEndpointRepository is the abstraction for any kind of database
// intended to persist the RPC endpoint registry.
//
// The registry holds at most one endpoint per RPCURL at any time and
// preserves insertion order across updates.
type RPCEndpointRepository interface {
	// AddEndpoint stores the endpoint. If an endpoint with the same
	// RPCURL already exists its fields are overwritten in place and its
	// position is preserved, otherwise the endpoint is appended.
	AddEndpoint(ctx context.Context, endpoint *RPCEndpoint) error
	// GetEndpointByURL returns the endpoint with the given url, or nil if
	// no endpoint matches.
	GetEndpointByURL(ctx context.Context, rpcURL string) (*RPCEndpoint, error)
	// GetAllEndpoints returns all endpoints in insertion order. The
	// returned slice is a snapshot, not a live view.
	GetAllEndpoints(ctx context.Context) ([]RPCEndpoint, error)
	// UpdateEndpoint commits the changes made by the closure to the
	// endpoint with the given url, preserving its position. Updating an
	// absent url is a no-op.
	UpdateEndpoint(
		ctx context.Context,
		rpcURL string, updateFn func(e *RPCEndpoint) (*RPCEndpoint, error),
	) error
	// DeleteEndpoint removes the endpoint with the given url. Deleting an
	// absent url is not an error.
	DeleteEndpoint(ctx context.Context, rpcURL string) error
}
