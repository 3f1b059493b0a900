package dbbadger

import (
	"context"

	"github.com/timshannon/badgerhold/v4"

	"github.com/hexwallet/prefsd/internal/core/domain"
)

const preferencesKey = "preferences"

type preferencesRepositoryImpl struct {
	store *badgerhold.Store
}

func newPreferencesRepositoryImpl(store *badgerhold.Store) domain.PreferencesRepository {
	return preferencesRepositoryImpl{store}
}

func (r preferencesRepositoryImpl) GetPreferences(
	_ context.Context,
) (*domain.Preferences, error) {
	var preferences domain.Preferences
	if err := r.store.Get(preferencesKey, &preferences); err != nil {
		if err == badgerhold.ErrNotFound {
			return domain.NewPreferences(), nil
		}
		return nil, err
	}

	return &preferences, nil
}

func (r preferencesRepositoryImpl) UpdatePreferences(
	ctx context.Context,
	updateFn func(p *domain.Preferences) (*domain.Preferences, error),
) error {
	currentPreferences, err := r.GetPreferences(ctx)
	if err != nil {
		return err
	}

	updatedPreferences, err := updateFn(currentPreferences)
	if err != nil {
		return err
	}

	return r.store.Upsert(preferencesKey, updatedPreferences)
}
