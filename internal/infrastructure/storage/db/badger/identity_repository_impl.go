package dbbadger

import (
	"context"
	"sort"

	"github.com/timshannon/badgerhold/v4"

	"github.com/hexwallet/prefsd/internal/core/domain"
)

type identityRepositoryImpl struct {
	store *badgerhold.Store
}

func newIdentityRepositoryImpl(store *badgerhold.Store) domain.IdentityRepository {
	return identityRepositoryImpl{store}
}

func (r identityRepositoryImpl) SetIdentities(
	_ context.Context, identities []domain.Identity,
) error {
	if err := r.store.DeleteMatching(&domain.Identity{}, nil); err != nil {
		return err
	}

	for i := range identities {
		identity := identities[i]
		if err := r.store.Upsert(identity.Address, &identity); err != nil {
			return err
		}
	}

	return nil
}

func (r identityRepositoryImpl) GetIdentity(
	_ context.Context, address string,
) (*domain.Identity, error) {
	var identity domain.Identity
	if err := r.store.Get(address, &identity); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &identity, nil
}

func (r identityRepositoryImpl) GetAllIdentities(
	_ context.Context,
) ([]domain.Identity, error) {
	var identities []domain.Identity
	if err := r.store.Find(&identities, nil); err != nil {
		return nil, err
	}
	sort.Slice(identities, func(i, j int) bool {
		return identities[i].Position < identities[j].Position
	})

	return identities, nil
}

func (r identityRepositoryImpl) UpdateIdentity(
	ctx context.Context,
	address string, updateFn func(i *domain.Identity) (*domain.Identity, error),
) error {
	currentIdentity, err := r.GetIdentity(ctx, address)
	if err != nil {
		return err
	}
	if currentIdentity == nil {
		return domain.ErrIdentityNotFound
	}

	updatedIdentity, err := updateFn(currentIdentity)
	if err != nil {
		return err
	}

	return r.store.Update(address, updatedIdentity)
}

func (r identityRepositoryImpl) DeleteIdentity(
	_ context.Context, address string,
) error {
	if err := r.store.Delete(address, domain.Identity{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return err
	}

	return nil
}
