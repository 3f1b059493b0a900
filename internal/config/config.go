package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// HTTPListeningPortKey is the port where the HTTP admin interface will listen on
	HTTPListeningPortKey = "HTTP_LISTENING_PORT"
	// DatadirKey is the local data directory to store the internal state of the daemon
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// DBTypeKey is used to switch the storage backend between those supported (badger, inmemory)
	DBTypeKey = "DB_TYPE"
	// ChainRPCURLKey is the json-rpc url of the EVM node used as network-status source
	ChainRPCURLKey = "CHAIN_RPC_URL"

	// DBBadger ...
	DBBadger = "badger"
	// DBInMemory ...
	DBInMemory = "inmemory"

	dbLocation = "db"
)

var vip *viper.Viper

// InitConfig loads the daemon settings from PREFSD_* environment
// variables and prepares the data directory.
func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("PREFSD")
	vip.AutomaticEnv()

	defaultDatadir, _ := os.UserHomeDir()
	if len(defaultDatadir) > 0 {
		defaultDatadir = filepath.Join(defaultDatadir, ".prefsd")
	}

	vip.SetDefault(HTTPListeningPortKey, 9810)
	vip.SetDefault(LogLevelKey, int(log.InfoLevel))
	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(DBTypeKey, DBBadger)
	vip.SetDefault(ChainRPCURLKey, "http://localhost:8545")

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetDuration(key string) time.Duration {
	return vip.GetDuration(key)
}

func GetBool(key string) bool {
	return vip.GetBool(key)
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

// GetDbDir returns the path of the storage location inside the datadir.
func GetDbDir() string {
	return filepath.Join(GetDatadir(), dbLocation)
}

func validate() error {
	switch dbType := GetString(DBTypeKey); dbType {
	case DBBadger, DBInMemory:
	default:
		return fmt.Errorf("unsupported db type %s", dbType)
	}

	if len(GetString(ChainRPCURLKey)) == 0 {
		return fmt.Errorf("chain rpc url must not be empty")
	}

	return nil
}

func initDatadir() error {
	if GetString(DBTypeKey) != DBBadger {
		return nil
	}
	return makeDirectoryIfNotExists(GetDbDir())
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
