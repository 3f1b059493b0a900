package inmemory

import (
	"github.com/hexwallet/prefsd/internal/core/domain"
	"github.com/hexwallet/prefsd/internal/core/ports"
)

// RepoManager aggregates the in-memory repositories. Useful for tests
// and for running the daemon without a datadir.
type RepoManager struct {
	identityRepository    domain.IdentityRepository
	rpcEndpointRepository domain.RPCEndpointRepository
	preferencesRepository domain.PreferencesRepository
	addressBookRepository domain.AddressBookRepository
}

func NewRepoManager() ports.RepoManager {
	return &RepoManager{
		identityRepository:    NewIdentityRepositoryImpl(),
		rpcEndpointRepository: NewRPCEndpointRepositoryImpl(),
		preferencesRepository: NewPreferencesRepositoryImpl(),
		addressBookRepository: NewAddressBookRepositoryImpl(),
	}
}

func (d *RepoManager) IdentityRepository() domain.IdentityRepository {
	return d.identityRepository
}

func (d *RepoManager) RPCEndpointRepository() domain.RPCEndpointRepository {
	return d.rpcEndpointRepository
}

func (d *RepoManager) PreferencesRepository() domain.PreferencesRepository {
	return d.preferencesRepository
}

func (d *RepoManager) AddressBookRepository() domain.AddressBookRepository {
	return d.addressBookRepository
}

func (d *RepoManager) Close() {}
