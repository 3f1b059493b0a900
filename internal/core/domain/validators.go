package domain

import (
	"regexp"
	"strings"
)

var chainIDRegexp = regexp.MustCompile(`^0x[0-9a-fA-F]+$`)

// IsValidChainID returns whether the given string is a 0x-prefixed
// hexadecimal chain identifier. Matching is case-insensitive on the hex
// digits, the prefix must be lowercase.
func IsValidChainID(chainID string) bool {
	return chainIDRegexp.MatchString(chainID)
}

// NormalizeAddress lowercases an address so that it can be used as a
// stable registry key. No checksum validation is performed, addresses
// are opaque to this layer.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
