package dbbadger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/hexwallet/prefsd/internal/core/domain"
	"github.com/hexwallet/prefsd/internal/core/ports"
)

// repoManager holds all the badgerhold stores in a single data
// structure. State (identities, endpoints, flags) and the address book
// live in dedicated directories so the migrator can churn the latter
// without touching the former.
type repoManager struct {
	stateStore       *badgerhold.Store
	addressBookStore *badgerhold.Store

	identityRepository    domain.IdentityRepository
	rpcEndpointRepository domain.RPCEndpointRepository
	preferencesRepository domain.PreferencesRepository
	addressBookRepository domain.AddressBookRepository
}

// NewRepoManager opens (or creates if not existing) the badger stores
// in the given data directory. An empty dir opens in-memory stores.
func NewRepoManager(baseDbDir string, logger badger.Logger) (ports.RepoManager, error) {
	var stateDir, addressBookDir string
	if len(baseDbDir) > 0 {
		stateDir = filepath.Join(baseDbDir, "state")
		addressBookDir = filepath.Join(baseDbDir, "addressbook")
	}

	stateStore, err := createDb(stateDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}
	addressBookStore, err := createDb(addressBookDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening address book db: %w", err)
	}

	return &repoManager{
		stateStore:            stateStore,
		addressBookStore:      addressBookStore,
		identityRepository:    newIdentityRepositoryImpl(stateStore),
		rpcEndpointRepository: newRPCEndpointRepositoryImpl(stateStore),
		preferencesRepository: newPreferencesRepositoryImpl(stateStore),
		addressBookRepository: newAddressBookRepositoryImpl(addressBookStore),
	}, nil
}

func (d *repoManager) IdentityRepository() domain.IdentityRepository {
	return d.identityRepository
}

func (d *repoManager) RPCEndpointRepository() domain.RPCEndpointRepository {
	return d.rpcEndpointRepository
}

func (d *repoManager) PreferencesRepository() domain.PreferencesRepository {
	return d.preferencesRepository
}

func (d *repoManager) AddressBookRepository() domain.AddressBookRepository {
	return d.addressBookRepository
}

func (d *repoManager) Close() {
	d.stateStore.Close()
	d.addressBookStore.Close()
}

// JSONEncode is a custom JSON based encoder for badger.
func JSONEncode(value interface{}) ([]byte, error) {
	var buff bytes.Buffer

	en := json.NewEncoder(&buff)
	if err := en.Encode(value); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// JSONDecode is a custom JSON based decoder for badger.
func JSONDecode(data []byte, value interface{}) error {
	de := json.NewDecoder(bytes.NewReader(data))
	return de.Decode(value)
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	isInMemory := len(dbDir) <= 0

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger
	opts.InMemory = isInMemory

	return badgerhold.Open(badgerhold.Options{
		Encoder:          JSONEncode,
		Decoder:          JSONDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
}
