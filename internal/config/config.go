// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig aggregates every setting the quietpage binaries read. It
// is assembled by merging environment variables, command-line flags, and an
// optional JSON file; the env tags below drive the caarlos0/env mapping.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath, when set by CONFIG or -c/-config, names a JSON file
	// merged on top of the env and flag values.
	JSONFilePath string `env:"CONFIG"`
}

// App carries the secrets and token parameters of the vault server.
type App struct {
	// PasswordHashKey keys the server-side HMAC password verifier. It never
	// touches draft encryption, which happens entirely on the client.
	PasswordHashKey string `env:"PASSWORD_HASH_KEY"`

	// TokenSignKey signs and verifies JWTs.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the iss claim stamped into every token and checked on
	// every authenticated request.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration bounds a token's lifetime.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey keys the payload integrity HMAC on draft uploads and cipher
	// updates. Distinct from PasswordHashKey.
	HashKey string `env:"HASH_KEY"`

	// Version is reported by the version endpoint.
	Version string `env:"VERSION"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the database DSN: Postgres on the server, a SQLite file path on
// the client.
type DB struct {
	DSN string `env:"DATABASE_URI"`
}

// Server configures the inbound HTTP listener.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout cancels inbound requests that run too long.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter configures the client's outbound transport towards the vault.
type Adapter struct {
	HTTPAddress    string        `env:"ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers configures background jobs.
type Workers struct {
	// SaltRetryInterval is how often the salt retry job re-sends a salt
	// replacement that the server has not yet confirmed.
	SaltRetryInterval time.Duration `env:"SALT_RETRY_INTERVAL"`
}

// GetStructuredConfig merges env, flags, and the optional JSON file (path
// resolved from the first two) and validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
