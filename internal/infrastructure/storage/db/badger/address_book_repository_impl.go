package dbbadger

import (
	"context"

	"github.com/timshannon/badgerhold/v4"

	"github.com/hexwallet/prefsd/internal/core/domain"
)

type addressBookRepositoryImpl struct {
	store *badgerhold.Store
}

func newAddressBookRepositoryImpl(store *badgerhold.Store) domain.AddressBookRepository {
	return addressBookRepositoryImpl{store}
}

func (r addressBookRepositoryImpl) AddEntry(
	_ context.Context, entry *domain.AddressBookEntry,
) error {
	return r.store.Upsert(entry.Key(), entry)
}

func (r addressBookRepositoryImpl) GetEntriesByChain(
	_ context.Context, chainID string,
) ([]domain.AddressBookEntry, error) {
	var entries []domain.AddressBookEntry
	query := badgerhold.Where("ChainID").Eq(chainID)
	if err := r.store.Find(&entries, query); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r addressBookRepositoryImpl) GetAllEntries(
	_ context.Context,
) ([]domain.AddressBookEntry, error) {
	var entries []domain.AddressBookEntry
	if err := r.store.Find(&entries, nil); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r addressBookRepositoryImpl) MoveEntries(
	ctx context.Context, oldChainID, newChainID string,
) (int, error) {
	entries, err := r.GetEntriesByChain(ctx, oldChainID)
	if err != nil {
		return 0, err
	}

	for i := range entries {
		entry := entries[i]
		if err := r.store.Delete(
			entry.Key(), domain.AddressBookEntry{},
		); err != nil && err != badgerhold.ErrNotFound {
			return 0, err
		}

		entry.ChainID = newChainID
		if err := r.store.Upsert(entry.Key(), &entry); err != nil {
			return 0, err
		}
	}

	return len(entries), nil
}

func (r addressBookRepositoryImpl) DeleteEntry(
	_ context.Context, chainID, address string,
) error {
	entry := domain.AddressBookEntry{ChainID: chainID, Address: address}
	if err := r.store.Delete(
		entry.Key(), domain.AddressBookEntry{},
	); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return err
	}

	return nil
}
