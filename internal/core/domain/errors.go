package domain

import "errors"

var (
	// ErrInvalidChainID is thrown when a chain id does not match the
	// 0x-prefixed hexadecimal format.
	ErrInvalidChainID = errors.New("invalid chain id")
	// ErrIdentityNotFound ...
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrMissingRPCURL ...
	ErrMissingRPCURL = errors.New("rpc url must not be empty")
	// ErrMissingAddress ...
	ErrMissingAddress = errors.New("address must not be empty")
)
