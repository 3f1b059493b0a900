package dbbadger

import (
	"context"
	"sort"

	"github.com/timshannon/badgerhold/v4"

	"github.com/hexwallet/prefsd/internal/core/domain"
)

type rpcEndpointRepositoryImpl struct {
	store *badgerhold.Store
}

func newRPCEndpointRepositoryImpl(store *badgerhold.Store) domain.RPCEndpointRepository {
	return rpcEndpointRepositoryImpl{store}
}

func (r rpcEndpointRepositoryImpl) AddEndpoint(
	ctx context.Context, endpoint *domain.RPCEndpoint,
) error {
	toStore := *endpoint

	existing, err := r.GetEndpointByURL(ctx, endpoint.RPCURL)
	if err != nil {
		return err
	}
	if existing != nil {
		toStore.Position = existing.Position
	} else {
		position, err := r.nextPosition(ctx)
		if err != nil {
			return err
		}
		toStore.Position = position
	}

	return r.store.Upsert(toStore.RPCURL, &toStore)
}

func (r rpcEndpointRepositoryImpl) GetEndpointByURL(
	_ context.Context, rpcURL string,
) (*domain.RPCEndpoint, error) {
	var endpoint domain.RPCEndpoint
	if err := r.store.Get(rpcURL, &endpoint); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &endpoint, nil
}

func (r rpcEndpointRepositoryImpl) GetAllEndpoints(
	_ context.Context,
) ([]domain.RPCEndpoint, error) {
	var endpoints []domain.RPCEndpoint
	if err := r.store.Find(&endpoints, nil); err != nil {
		return nil, err
	}
	sort.Slice(endpoints, func(i, j int) bool {
		return endpoints[i].Position < endpoints[j].Position
	})

	return endpoints, nil
}

func (r rpcEndpointRepositoryImpl) UpdateEndpoint(
	ctx context.Context,
	rpcURL string, updateFn func(e *domain.RPCEndpoint) (*domain.RPCEndpoint, error),
) error {
	currentEndpoint, err := r.GetEndpointByURL(ctx, rpcURL)
	if err != nil {
		return err
	}
	if currentEndpoint == nil {
		return nil
	}
	position := currentEndpoint.Position

	updatedEndpoint, err := updateFn(currentEndpoint)
	if err != nil {
		return err
	}
	updatedEndpoint.Position = position

	return r.store.Update(rpcURL, updatedEndpoint)
}

func (r rpcEndpointRepositoryImpl) DeleteEndpoint(
	_ context.Context, rpcURL string,
) error {
	if err := r.store.Delete(rpcURL, domain.RPCEndpoint{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return err
	}

	return nil
}

func (r rpcEndpointRepositoryImpl) nextPosition(
	ctx context.Context,
) (int, error) {
	endpoints, err := r.GetAllEndpoints(ctx)
	if err != nil {
		return 0, err
	}

	max := 0
	for _, endpoint := range endpoints {
		if endpoint.Position > max {
			max = endpoint.Position
		}
	}

	return max + 1, nil
}
