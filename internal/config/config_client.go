package config

import (
	"fmt"
	"time"
)

// ClientApp carries the application-level settings the client runtime needs.
type ClientApp struct {
	// HashKey signs draft payload hashes on upload and update requests.
	HashKey string
}

// ClientAdapter configures the resty transport towards the vault server.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientDB points the local mirror at its SQLite file.
type ClientDB struct {
	DSN string
}

// ClientStorage groups local storage settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers configures the client's background jobs.
type ClientWorkers struct {
	// SaltRetryInterval is how often an unconfirmed salt registration is
	// re-sent to the server.
	SaltRetryInterval time.Duration
}

// ClientConfig is the client-side view of the merged configuration. It keeps
// only what the client runtime uses; server-only keys never reach it.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig loads the merged configuration and projects it into a
// validated [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{SaltRetryInterval: cfg.Workers.SaltRetryInterval},
	}

	return clientCfg, clientCfg.validate()
}
