package domain_test

import (
	"testing"

	"github.com/hexwallet/prefsd/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestIsValidChainID(t *testing.T) {
	t.Parallel()

	valid := []string{"0x1", "0x539", "0xABCDEF", "0xdeadBEEF", "0x0"}
	for _, chainID := range valid {
		require.True(t, domain.IsValidChainID(chainID), chainID)
	}

	invalid := []string{"", "1", "0x", "0xNOPE", " 0x1", "0x1 ", "1337", "x1"}
	for _, chainID := range invalid {
		require.False(t, domain.IsValidChainID(chainID), chainID)
	}
}

func TestNormalizeAddress(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0xabc", domain.NormalizeAddress(" 0xABC "))
	require.Equal(t, "0xabc", domain.NormalizeAddress("0xabc"))
}
