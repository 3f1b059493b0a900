package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/hexwallet/prefsd/internal/config"
	"github.com/hexwallet/prefsd/internal/core/application"
	"github.com/hexwallet/prefsd/internal/core/ports"
	"github.com/hexwallet/prefsd/internal/infrastructure/chain"
	"github.com/hexwallet/prefsd/internal/infrastructure/migrator"
	dbbadger "github.com/hexwallet/prefsd/internal/infrastructure/storage/db/badger"
	"github.com/hexwallet/prefsd/internal/infrastructure/storage/db/inmemory"
	httpinterface "github.com/hexwallet/prefsd/internal/interfaces/http"
)

func main() {
	if err := config.InitConfig(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	repoManager, err := newRepoManager()
	if err != nil {
		log.WithError(err).Fatal("error while opening storage")
	}
	defer repoManager.Close()

	chainSource, err := chain.NewEthereumChainSource(
		config.GetString(config.ChainRPCURLKey),
	)
	if err != nil {
		log.WithError(err).Fatal("error while connecting to chain node")
	}

	migratorSvc, err := migrator.NewService(repoManager)
	if err != nil {
		log.WithError(err).Fatal("error while setting up address book migrator")
	}

	prefsSvc, err := application.NewPreferencesService(
		repoManager, chainSource, migratorSvc,
	)
	if err != nil {
		log.WithError(err).Fatal("error while setting up preferences service")
	}

	httpAddress := fmt.Sprintf(":%d", config.GetInt(config.HTTPListeningPortKey))
	apiSvc, err := httpinterface.NewAPIService(httpAddress, prefsSvc)
	if err != nil {
		log.WithError(err).Fatal("error while setting up http interface")
	}

	go func() {
		if err := apiSvc.Serve(); err != nil {
			log.WithError(err).Fatal("error while serving http interface")
		}
	}()

	log.Debug("daemon started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan

	log.Debug("exiting")
}

func newRepoManager() (ports.RepoManager, error) {
	if config.GetString(config.DBTypeKey) == config.DBInMemory {
		return inmemory.NewRepoManager(), nil
	}
	return dbbadger.NewRepoManager(config.GetDbDir(), nil)
}
