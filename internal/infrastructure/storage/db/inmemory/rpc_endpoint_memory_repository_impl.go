package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/hexwallet/prefsd/internal/core/domain"
)

// RPCEndpointRepositoryImpl represents an in memory storage for the RPC
// endpoint registry.
type RPCEndpointRepositoryImpl struct {
	endpoints    map[string]domain.RPCEndpoint
	nextPosition int

	lock *sync.RWMutex
}

// NewRPCEndpointRepositoryImpl returns a new empty
// RPCEndpointRepositoryImpl.
func NewRPCEndpointRepositoryImpl() *RPCEndpointRepositoryImpl {
	return &RPCEndpointRepositoryImpl{
		endpoints:    map[string]domain.RPCEndpoint{},
		nextPosition: 1,
		lock:         &sync.RWMutex{},
	}
}

func (r *RPCEndpointRepositoryImpl) AddEndpoint(
	_ context.Context, endpoint *domain.RPCEndpoint,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	toStore := *endpoint
	if existing, ok := r.endpoints[endpoint.RPCURL]; ok {
		toStore.Position = existing.Position
	} else {
		toStore.Position = r.nextPosition
		r.nextPosition++
	}
	r.endpoints[endpoint.RPCURL] = toStore

	return nil
}

func (r *RPCEndpointRepositoryImpl) GetEndpointByURL(
	_ context.Context, rpcURL string,
) (*domain.RPCEndpoint, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	endpoint, ok := r.endpoints[rpcURL]
	if !ok {
		return nil, nil
	}
	return &endpoint, nil
}

func (r *RPCEndpointRepositoryImpl) GetAllEndpoints(
	_ context.Context,
) ([]domain.RPCEndpoint, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	endpoints := make([]domain.RPCEndpoint, 0, len(r.endpoints))
	for _, endpoint := range r.endpoints {
		endpoints = append(endpoints, endpoint)
	}
	sort.Slice(endpoints, func(i, j int) bool {
		return endpoints[i].Position < endpoints[j].Position
	})

	return endpoints, nil
}

func (r *RPCEndpointRepositoryImpl) UpdateEndpoint(
	_ context.Context,
	rpcURL string, updateFn func(e *domain.RPCEndpoint) (*domain.RPCEndpoint, error),
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	currentEndpoint, ok := r.endpoints[rpcURL]
	if !ok {
		return nil
	}
	position := currentEndpoint.Position

	updatedEndpoint, err := updateFn(&currentEndpoint)
	if err != nil {
		return err
	}

	updatedEndpoint.Position = position
	r.endpoints[rpcURL] = *updatedEndpoint

	return nil
}

func (r *RPCEndpointRepositoryImpl) DeleteEndpoint(
	_ context.Context, rpcURL string,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	delete(r.endpoints, rpcURL)

	return nil
}
