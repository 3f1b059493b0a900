package application

import "errors"

var (
	// ErrMigrationFailed is returned by UpdateRPCEndpoint when the
	// address-book migrator reports a failure. The endpoint update is
	// already committed when this error is returned.
	ErrMigrationFailed = errors.New("address book migration failed")
)
