package inmemory

import (
	"context"
	"sync"

	"github.com/hexwallet/prefsd/internal/core/domain"
)

// AddressBookRepositoryImpl represents an in memory storage for
// chain-scoped contact entries.
type AddressBookRepositoryImpl struct {
	entries map[string]domain.AddressBookEntry

	lock *sync.RWMutex
}

// NewAddressBookRepositoryImpl returns a new empty
// AddressBookRepositoryImpl.
func NewAddressBookRepositoryImpl() *AddressBookRepositoryImpl {
	return &AddressBookRepositoryImpl{
		entries: map[string]domain.AddressBookEntry{},
		lock:    &sync.RWMutex{},
	}
}

func (r *AddressBookRepositoryImpl) AddEntry(
	_ context.Context, entry *domain.AddressBookEntry,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.entries[entry.Key()] = *entry

	return nil
}

func (r *AddressBookRepositoryImpl) GetEntriesByChain(
	_ context.Context, chainID string,
) ([]domain.AddressBookEntry, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	var entries []domain.AddressBookEntry
	for _, entry := range r.entries {
		if entry.ChainID == chainID {
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

func (r *AddressBookRepositoryImpl) GetAllEntries(
	_ context.Context,
) ([]domain.AddressBookEntry, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	entries := make([]domain.AddressBookEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *AddressBookRepositoryImpl) MoveEntries(
	_ context.Context, oldChainID, newChainID string,
) (int, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	moved := 0
	for key, entry := range r.entries {
		if entry.ChainID != oldChainID {
			continue
		}
		delete(r.entries, key)
		entry.ChainID = newChainID
		r.entries[entry.Key()] = entry
		moved++
	}

	return moved, nil
}

func (r *AddressBookRepositoryImpl) DeleteEntry(
	_ context.Context, chainID, address string,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	entry := domain.AddressBookEntry{ChainID: chainID, Address: address}
	delete(r.entries, entry.Key())

	return nil
}
