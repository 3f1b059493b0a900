package inmemory

import (
	"context"
	"sync"

	"github.com/hexwallet/prefsd/internal/core/domain"
)

// PreferencesRepositoryImpl represents an in memory storage for the
// scalar wallet settings.
type PreferencesRepositoryImpl struct {
	preferences domain.Preferences

	lock *sync.RWMutex
}

// NewPreferencesRepositoryImpl returns a PreferencesRepositoryImpl
// holding the default settings.
func NewPreferencesRepositoryImpl() *PreferencesRepositoryImpl {
	return &PreferencesRepositoryImpl{
		preferences: *domain.NewPreferences(),
		lock:        &sync.RWMutex{},
	}
}

func (r *PreferencesRepositoryImpl) GetPreferences(
	_ context.Context,
) (*domain.Preferences, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	preferences := r.preferences
	return &preferences, nil
}

func (r *PreferencesRepositoryImpl) UpdatePreferences(
	_ context.Context,
	updateFn func(p *domain.Preferences) (*domain.Preferences, error),
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	currentPreferences := r.preferences
	updatedPreferences, err := updateFn(&currentPreferences)
	if err != nil {
		return err
	}

	r.preferences = *updatedPreferences

	return nil
}
