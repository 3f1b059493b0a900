package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/hexwallet/prefsd/internal/core/domain"
)

// IdentityRepositoryImpl represents an in memory storage for the
// identity registry.
type IdentityRepositoryImpl struct {
	identities map[string]domain.Identity

	lock *sync.RWMutex
}

// NewIdentityRepositoryImpl returns a new empty IdentityRepositoryImpl.
func NewIdentityRepositoryImpl() *IdentityRepositoryImpl {
	return &IdentityRepositoryImpl{
		identities: map[string]domain.Identity{},
		lock:       &sync.RWMutex{},
	}
}

func (r *IdentityRepositoryImpl) SetIdentities(
	_ context.Context, identities []domain.Identity,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.identities = make(map[string]domain.Identity, len(identities))
	for _, identity := range identities {
		r.identities[identity.Address] = identity
	}

	return nil
}

func (r *IdentityRepositoryImpl) GetIdentity(
	_ context.Context, address string,
) (*domain.Identity, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	identity, ok := r.identities[address]
	if !ok {
		return nil, nil
	}
	return &identity, nil
}

func (r *IdentityRepositoryImpl) GetAllIdentities(
	_ context.Context,
) ([]domain.Identity, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	identities := make([]domain.Identity, 0, len(r.identities))
	for _, identity := range r.identities {
		identities = append(identities, identity)
	}
	sort.Slice(identities, func(i, j int) bool {
		return identities[i].Position < identities[j].Position
	})

	return identities, nil
}

func (r *IdentityRepositoryImpl) UpdateIdentity(
	_ context.Context,
	address string, updateFn func(i *domain.Identity) (*domain.Identity, error),
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	currentIdentity, ok := r.identities[address]
	if !ok {
		return domain.ErrIdentityNotFound
	}

	updatedIdentity, err := updateFn(&currentIdentity)
	if err != nil {
		return err
	}

	r.identities[address] = *updatedIdentity

	return nil
}

func (r *IdentityRepositoryImpl) DeleteIdentity(
	_ context.Context, address string,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	delete(r.identities, address)

	return nil
}
