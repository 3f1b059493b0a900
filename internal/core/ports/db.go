package ports

import (
	"github.com/hexwallet/prefsd/internal/core/domain"
)

// RepoManager gives access to all repositories of a storage backend in
// a single data structure.
type RepoManager interface {
	IdentityRepository() domain.IdentityRepository
	RPCEndpointRepository() domain.RPCEndpointRepository
	PreferencesRepository() domain.PreferencesRepository
	AddressBookRepository() domain.AddressBookRepository

	// Close should be used to gracefully close the connection with the
	// underlying storage.
	Close()
}
