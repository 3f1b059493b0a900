package migrator

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/hexwallet/prefsd/internal/core/ports"
)

type service struct {
	repoManager ports.RepoManager
}

// NewService returns a ports.AddressBookMigrator that re-keys all
// contact entries from one chain id to another in the injected storage.
func NewService(repoManager ports.RepoManager) (ports.AddressBookMigrator, error) {
	if repoManager == nil {
		return nil, fmt.Errorf("missing repo manager")
	}

	return &service{repoManager}, nil
}

func (s *service) Migrate(
	ctx context.Context, oldChainID, newChainID string,
) error {
	moved, err := s.repoManager.AddressBookRepository().MoveEntries(
		ctx, oldChainID, newChainID,
	)
	if err != nil {
		return fmt.Errorf(
			"moving address book entries from chain %s to %s: %w",
			oldChainID, newChainID, err,
		)
	}

	if moved > 0 {
		log.Debugf(
			"moved %d address book entries from chain %s to %s",
			moved, oldChainID, newChainID,
		)
	}
	return nil
}
