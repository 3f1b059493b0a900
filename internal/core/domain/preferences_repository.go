package domain

import "context"

// PreferencesRepository persists the scalar wallet settings as a single
// record.
type PreferencesRepository interface {
	// GetPreferences returns the stored settings, or the defaults if
	// nothing has been stored yet.
	GetPreferences(ctx context.Context) (*Preferences, error)
	// UpdatePreferences commits the changes made by the closure to the
	// stored settings.
	UpdatePreferences(
		ctx context.Context,
		updateFn func(p *Preferences) (*Preferences, error),
	) error
}
