package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sony/gobreaker"

	"github.com/hexwallet/prefsd/internal/core/ports"
	"github.com/hexwallet/prefsd/pkg/circuitbreaker"
)

const providerTypeRPC = "rpc"

type ethereumChainSource struct {
	client *ethclient.Client
	cb     *gobreaker.CircuitBreaker
}

// NewEthereumChainSource connects to an EVM node over json-rpc and
// returns a read-only ports.ChainSource backed by it. All outbound
// calls go through a circuit breaker so a flaky node cannot pile up
// in-flight requests.
func NewEthereumChainSource(rpcURL string) (ports.ChainSource, error) {
	if len(rpcURL) == 0 {
		return nil, fmt.Errorf("missing chain rpc url")
	}

	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to chain node: %w", err)
	}

	return &ethereumChainSource{
		client: client,
		cb:     circuitbreaker.NewCircuitBreaker("chain-rpc"),
	}, nil
}

func (s *ethereumChainSource) GetChainID(ctx context.Context) (string, error) {
	res, err := s.cb.Execute(func() (interface{}, error) {
		return s.client.ChainID(ctx)
	})
	if err != nil {
		return "", fmt.Errorf("fetching chain id: %w", err)
	}

	return hexutil.EncodeBig(res.(*big.Int)), nil
}

func (s *ethereumChainSource) GetProviderConfig() ports.ProviderConfig {
	return ports.ProviderConfig{Type: providerTypeRPC}
}

func (s *ethereumChainSource) GetLatestBlock(
	ctx context.Context,
) (*ports.BlockInfo, error) {
	res, err := s.cb.Execute(func() (interface{}, error) {
		return s.client.HeaderByNumber(ctx, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("fetching latest block: %w", err)
	}
	header := res.(*types.Header)

	return &ports.BlockInfo{
		Number: header.Number.Uint64(),
		Hash:   header.Hash().Hex(),
		Time:   header.Time,
	}, nil
}
