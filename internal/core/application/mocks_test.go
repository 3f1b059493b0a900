package application

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hexwallet/prefsd/internal/core/ports"
)

/*
 * ChainSource
 */
type mockChainSource struct {
	mock.Mock
}

func (m *mockChainSource) GetChainID(ctx context.Context) (string, error) {
	args := m.Called(ctx)

	var res string
	if a := args.Get(0); a != nil {
		res = a.(string)
	}
	return res, args.Error(1)
}

func (m *mockChainSource) GetProviderConfig() ports.ProviderConfig {
	args := m.Called()
	return args.Get(0).(ports.ProviderConfig)
}

func (m *mockChainSource) GetLatestBlock(
	ctx context.Context,
) (*ports.BlockInfo, error) {
	args := m.Called(ctx)

	var res *ports.BlockInfo
	if a := args.Get(0); a != nil {
		res = a.(*ports.BlockInfo)
	}
	return res, args.Error(1)
}

/*
 * AddressBookMigrator
 */
type mockMigrator struct {
	mock.Mock
}

func (m *mockMigrator) Migrate(
	ctx context.Context, oldChainID, newChainID string,
) error {
	args := m.Called(ctx, oldChainID, newChainID)
	return args.Error(0)
}
