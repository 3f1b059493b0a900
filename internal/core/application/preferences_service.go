package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/hexwallet/prefsd/internal/core/domain"
	"github.com/hexwallet/prefsd/internal/core/ports"
)

// PreferencesService is the single entry point for mutating account
// identities, the RPC endpoint registry and the scalar wallet settings.
//
// All mutations are serialized by an internal mutex, so two concurrent
// AddRPCEndpoint calls with the same url never produce two rows. After
// every committed mutation a new immutable Snapshot is published to the
// registered observers. Observers run after the mutex is released, so
// an observer may safely call back into the service, as long as it does
// not mutate state from inside the callback.
type PreferencesService struct {
	repoManager ports.RepoManager
	chainSource ports.ChainSource
	migrator    ports.AddressBookMigrator

	lock *sync.Mutex

	observers    map[string]ObserverFunc
	observerLock *sync.RWMutex
}

// NewPreferencesService returns a controller with its collaborators
// injected. The chain source and the migrator are required even if the
// caller never changes an endpoint's chain id.
func NewPreferencesService(
	repoManager ports.RepoManager,
	chainSource ports.ChainSource,
	migrator ports.AddressBookMigrator,
) (*PreferencesService, error) {
	if repoManager == nil {
		return nil, fmt.Errorf("missing repo manager")
	}
	if chainSource == nil {
		return nil, fmt.Errorf("missing chain source")
	}
	if migrator == nil {
		return nil, fmt.Errorf("missing address book migrator")
	}

	return &PreferencesService{
		repoManager:  repoManager,
		chainSource:  chainSource,
		migrator:     migrator,
		lock:         &sync.Mutex{},
		observers:    make(map[string]ObserverFunc),
		observerLock: &sync.RWMutex{},
	}, nil
}

// SetAddresses discards the whole identity registry and re-creates one
// identity per given address, in order, labelled "Account 1".."Account n".
// Prior custom labels are not preserved. If no address was selected
// before the call, the first of the new addresses becomes selected.
func (s *PreferencesService) SetAddresses(
	ctx context.Context, addresses []string,
) error {
	if err := s.withLock(func() error {
		identities, err := domain.NewIdentities(addresses)
		if err != nil {
			return err
		}

		if err := s.repoManager.IdentityRepository().SetIdentities(
			ctx, identities,
		); err != nil {
			return err
		}

		selected, err := s.getSelectedAddress(ctx)
		if err != nil {
			return err
		}
		if len(selected) == 0 && len(identities) > 0 {
			return s.setSelectedAddress(ctx, identities[0].Address)
		}
		return nil
	}); err != nil {
		return err
	}

	s.publish(ctx)
	return nil
}

// RemoveAddress deletes the identity with the given address, if any.
// When the removed address is the selected one, the first remaining
// identity becomes selected, or the selection is cleared if none
// remains.
func (s *PreferencesService) RemoveAddress(
	ctx context.Context, address string,
) error {
	if err := s.withLock(func() error {
		addr := domain.NormalizeAddress(address)

		if err := s.repoManager.IdentityRepository().DeleteIdentity(
			ctx, addr,
		); err != nil {
			return err
		}

		selected, err := s.getSelectedAddress(ctx)
		if err != nil {
			return err
		}
		if selected == addr {
			identities, err := s.repoManager.IdentityRepository().
				GetAllIdentities(ctx)
			if err != nil {
				return err
			}
			replacement := ""
			if len(identities) > 0 {
				replacement = identities[0].Address
			}
			return s.setSelectedAddress(ctx, replacement)
		}
		return nil
	}); err != nil {
		return err
	}

	s.publish(ctx)
	return nil
}

// SetAccountLabel overwrites the display label of the identity with the
// given address. Returns domain.ErrIdentityNotFound if the address is
// not in the registry.
func (s *PreferencesService) SetAccountLabel(
	ctx context.Context, address, label string,
) error {
	if err := s.withLock(func() error {
		return s.repoManager.IdentityRepository().UpdateIdentity(
			ctx, domain.NormalizeAddress(address),
			func(i *domain.Identity) (*domain.Identity, error) {
				i.Rename(label)
				return i, nil
			},
		)
	}); err != nil {
		return err
	}

	s.publish(ctx)
	return nil
}

// SetSelectedAddress marks the given address as active. The address is
// normalized to its canonical form, trimmed and lowercased, before it
// is stored. No existence check is performed, selecting an address that
// is not in the registry represents a not-yet-synced selection.
func (s *PreferencesService) SetSelectedAddress(
	ctx context.Context, address string,
) error {
	if err := s.withLock(func() error {
		return s.setSelectedAddress(ctx, domain.NormalizeAddress(address))
	}); err != nil {
		return err
	}

	s.publish(ctx)
	return nil
}

// GetSelectedAddress returns the active identity's address, empty if
// none is selected.
func (s *PreferencesService) GetSelectedAddress(
	ctx context.Context,
) (string, error) {
	var selected string
	err := s.withLock(func() error {
		var err error
		selected, err = s.getSelectedAddress(ctx)
		return err
	})
	return selected, err
}

// ListIdentities returns all identities in registry order.
func (s *PreferencesService) ListIdentities(
	ctx context.Context,
) ([]domain.Identity, error) {
	return s.repoManager.IdentityRepository().GetAllIdentities(ctx)
}

// SetPasswordForgotten flags that the user started the password
// recovery flow.
func (s *PreferencesService) SetPasswordForgotten(
	ctx context.Context, forgotten bool,
) error {
	return s.updateFlag(ctx, func(p *domain.Preferences) {
		p.ForgottenPassword = forgotten
	})
}

// SetUsePhishDetect toggles phishing detection.
func (s *PreferencesService) SetUsePhishDetect(
	ctx context.Context, enabled bool,
) error {
	return s.updateFlag(ctx, func(p *domain.Preferences) {
		p.UsePhishDetect = enabled
	})
}

// SetUseTokenDetection toggles automatic token detection.
func (s *PreferencesService) SetUseTokenDetection(
	ctx context.Context, enabled bool,
) error {
	return s.updateFlag(ctx, func(p *domain.Preferences) {
		p.UseTokenDetection = enabled
	})
}

// AddRPCEndpoint validates the chain id format and stores a new
// endpoint. If an endpoint with the same url already exists, its fields
// are overwritten in place instead of appending a duplicate. The
// validation failure is returned before any state is touched.
func (s *PreferencesService) AddRPCEndpoint(
	ctx context.Context, rpcURL, chainID string, opts domain.EndpointOptions,
) error {
	if err := s.withLock(func() error {
		endpoint, err := domain.NewRPCEndpoint(rpcURL, chainID, opts)
		if err != nil {
			return err
		}
		return s.repoManager.RPCEndpointRepository().AddEndpoint(ctx, endpoint)
	}); err != nil {
		return err
	}

	s.publish(ctx)
	return nil
}

// RemoveRPCEndpoint removes the endpoint with the given url. Removing
// an absent url, including default or well-known ones, is a no-op.
func (s *PreferencesService) RemoveRPCEndpoint(
	ctx context.Context, rpcURL string,
) error {
	if err := s.withLock(func() error {
		return s.repoManager.RPCEndpointRepository().DeleteEndpoint(ctx, rpcURL)
	}); err != nil {
		return err
	}

	s.publish(ctx)
	return nil
}

// UpdateRPCEndpoint replaces the fields of the endpoint with the given
// url, preserving its position in the registry. Unset optional fields
// keep their stored values. Updating an absent url is a no-op.
//
// If the new chain id differs from the stored one, the address-book
// migrator is invoked with the old and new ids after the endpoint
// update is committed. The migrator runs outside the service mutex so
// a slow migration never stalls other callers. A migrator failure is
// surfaced as ErrMigrationFailed but does not roll back the committed
// update.
func (s *PreferencesService) UpdateRPCEndpoint(
	ctx context.Context, rpcURL, newChainID string, opts domain.EndpointOptions,
) error {
	var oldChainID string
	committed := false

	if err := s.withLock(func() error {
		if !domain.IsValidChainID(newChainID) {
			return fmt.Errorf("%w: %q", domain.ErrInvalidChainID, newChainID)
		}

		existing, err := s.repoManager.RPCEndpointRepository().GetEndpointByURL(
			ctx, rpcURL,
		)
		if err != nil {
			return err
		}
		if existing == nil {
			return nil
		}
		oldChainID = existing.ChainID

		if err := s.repoManager.RPCEndpointRepository().UpdateEndpoint(
			ctx, rpcURL,
			func(e *domain.RPCEndpoint) (*domain.RPCEndpoint, error) {
				e.ChainID = newChainID
				if len(opts.Ticker) > 0 {
					e.Ticker = opts.Ticker
				}
				if len(opts.Nickname) > 0 {
					e.Nickname = opts.Nickname
				}
				if opts.Prefs != nil {
					e.Prefs = domain.ClonePrefs(opts.Prefs)
				}
				return e, nil
			},
		); err != nil {
			return err
		}

		committed = true
		return nil
	}); err != nil {
		return err
	}
	if !committed {
		return nil
	}

	var migrationErr error
	if oldChainID != newChainID {
		if connectedChainID, err := s.chainSource.GetChainID(ctx); err == nil {
			log.Debugf(
				"endpoint %s moved from chain %s to %s, connected chain is %s",
				rpcURL, oldChainID, newChainID, connectedChainID,
			)
		}

		if err := s.migrator.Migrate(ctx, oldChainID, newChainID); err != nil {
			log.WithError(err).Warnf(
				"failed to migrate address book from chain %s to %s",
				oldChainID, newChainID,
			)
			migrationErr = fmt.Errorf("%w: %v", ErrMigrationFailed, err)
		}
	}

	s.publish(ctx)
	return migrationErr
}

// ListRPCEndpoints returns a snapshot of the registry in insertion
// order. The returned endpoints carry detached pref bags, mutating them
// never affects stored state.
func (s *PreferencesService) ListRPCEndpoints(
	ctx context.Context,
) ([]domain.RPCEndpoint, error) {
	endpoints, err := s.repoManager.RPCEndpointRepository().GetAllEndpoints(ctx)
	if err != nil {
		return nil, err
	}
	detachEndpointPrefs(endpoints)
	return endpoints, nil
}

// GetNetworkStatus reports the chain id, provider config and latest
// block of the network the chain source is connected to.
func (s *PreferencesService) GetNetworkStatus(
	ctx context.Context,
) (*NetworkStatus, error) {
	chainID, err := s.chainSource.GetChainID(ctx)
	if err != nil {
		return nil, err
	}
	block, err := s.chainSource.GetLatestBlock(ctx)
	if err != nil {
		return nil, err
	}

	return &NetworkStatus{
		ChainID:  chainID,
		Provider: s.chainSource.GetProviderConfig(),
		Block:    block,
	}, nil
}

// GetSnapshot returns the current aggregated state.
func (s *PreferencesService) GetSnapshot(
	ctx context.Context,
) (*Snapshot, error) {
	var snapshot *Snapshot
	err := s.withLock(func() error {
		var err error
		snapshot, err = s.snapshot(ctx)
		return err
	})
	return snapshot, err
}

// Subscribe registers an observer and returns the id to use for
// unsubscribing it.
func (s *PreferencesService) Subscribe(observer ObserverFunc) string {
	s.observerLock.Lock()
	defer s.observerLock.Unlock()

	id := uuid.NewString()
	s.observers[id] = observer
	return id
}

// Unsubscribe removes the observer with the given id, if any.
func (s *PreferencesService) Unsubscribe(id string) {
	s.observerLock.Lock()
	defer s.observerLock.Unlock()

	delete(s.observers, id)
}

func (s *PreferencesService) withLock(fn func() error) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	return fn()
}

func (s *PreferencesService) updateFlag(
	ctx context.Context, applyFn func(p *domain.Preferences),
) error {
	if err := s.withLock(func() error {
		return s.repoManager.PreferencesRepository().UpdatePreferences(
			ctx, func(p *domain.Preferences) (*domain.Preferences, error) {
				applyFn(p)
				return p, nil
			},
		)
	}); err != nil {
		return err
	}

	s.publish(ctx)
	return nil
}

func (s *PreferencesService) getSelectedAddress(
	ctx context.Context,
) (string, error) {
	prefs, err := s.repoManager.PreferencesRepository().GetPreferences(ctx)
	if err != nil {
		return "", err
	}
	return prefs.SelectedAddress, nil
}

func (s *PreferencesService) setSelectedAddress(
	ctx context.Context, address string,
) error {
	return s.repoManager.PreferencesRepository().UpdatePreferences(
		ctx, func(p *domain.Preferences) (*domain.Preferences, error) {
			p.SelectedAddress = address
			return p, nil
		},
	)
}

// snapshot must be called with the service mutex held.
func (s *PreferencesService) snapshot(ctx context.Context) (*Snapshot, error) {
	identities, err := s.repoManager.IdentityRepository().
		GetAllIdentities(ctx)
	if err != nil {
		return nil, err
	}
	endpoints, err := s.repoManager.RPCEndpointRepository().
		GetAllEndpoints(ctx)
	if err != nil {
		return nil, err
	}
	prefs, err := s.repoManager.PreferencesRepository().GetPreferences(ctx)
	if err != nil {
		return nil, err
	}

	detachEndpointPrefs(endpoints)

	return &Snapshot{
		Identities:        identities,
		Endpoints:         endpoints,
		SelectedAddress:   prefs.SelectedAddress,
		ForgottenPassword: prefs.ForgottenPassword,
		UsePhishDetect:    prefs.UsePhishDetect,
		UseTokenDetection: prefs.UseTokenDetection,
	}, nil
}

// detachEndpointPrefs clones the pref bags in place so callers can
// never mutate stored state through a returned slice.
func detachEndpointPrefs(endpoints []domain.RPCEndpoint) {
	for i := range endpoints {
		endpoints[i].Prefs = domain.ClonePrefs(endpoints[i].Prefs)
	}
}

// publish builds a snapshot under the service mutex and delivers it to
// the observers with the mutex released.
func (s *PreferencesService) publish(ctx context.Context) {
	var snapshot *Snapshot
	if err := s.withLock(func() error {
		var err error
		snapshot, err = s.snapshot(ctx)
		return err
	}); err != nil {
		log.WithError(err).Warn("failed to build state snapshot for observers")
		return
	}

	s.observerLock.RLock()
	observers := make([]ObserverFunc, 0, len(s.observers))
	for _, observer := range s.observers {
		observers = append(observers, observer)
	}
	s.observerLock.RUnlock()

	g := &errgroup.Group{}
	for _, observer := range observers {
		observer := observer
		g.Go(func() error {
			return observer(*snapshot)
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Warn("one or more observers failed to process snapshot")
	}
}
