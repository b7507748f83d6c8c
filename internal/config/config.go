// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the sync
// engine. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Engine holds sync engine settings: service endpoint, local data
	// directory, poll defaults.
	Engine Engine `envPrefix:"ENGINE_"`

	// Storage holds configuration for the local transport-data store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Features holds the feature switches controlling invalidation
	// delivery behavior.
	Features Features `envPrefix:"FEATURES_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Engine holds engine-level configuration values.
type Engine struct {
	// ServiceURL is the sync service endpoint the engine instance talks to.
	// Env: ENGINE_SERVICE_URL
	ServiceURL string `env:"SERVICE_URL"`

	// DataDir is the directory holding local sync state (Nigori storage,
	// legacy directory files). Created on backend initialization if absent.
	// Env: ENGINE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// LocalSyncBackend enables the loopback backend used for local-only
	// sync setups; when set, ServiceURL is not required.
	// Env: ENGINE_LOCAL_SYNC_BACKEND
	LocalSyncBackend bool `env:"LOCAL_SYNC_BACKEND"`

	// PollInterval overrides the default polling interval. Zero means
	// "use the persisted value, or the built-in default".
	// Env: ENGINE_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that backs the
// transport-data store.
type DB struct {
	// DSN is the SQLite connection string / file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Features holds the invalidation-delivery feature switches. They mirror
// what used to be ad-hoc runtime flag lookups in the decision points of the
// engine; here they are resolved once at startup.
type Features struct {
	// SendInterestedDataTypes makes the engine publish its interested-type
	// set to the invalidation delivery layer.
	// Env: FEATURES_SEND_INTERESTED_DATA_TYPES
	SendInterestedDataTypes bool `env:"SEND_INTERESTED_DATA_TYPES"`

	// UseSyncInvalidations routes invalidations for general data types
	// through the newer transport; only wallet data and wallet offers stay
	// on the legacy channel.
	// Env: FEATURES_USE_SYNC_INVALIDATIONS
	UseSyncInvalidations bool `env:"USE_SYNC_INVALIDATIONS"`

	// UseSyncInvalidationsForWalletAndOffer moves the two remaining legacy
	// types onto the newer transport as well. Combined with the two flags
	// above, the legacy invalidator is dropped entirely after a one-shot
	// subscription-migration handshake.
	// Env: FEATURES_USE_SYNC_INVALIDATIONS_FOR_WALLET_AND_OFFER
	UseSyncInvalidationsForWalletAndOffer bool `env:"USE_SYNC_INVALIDATIONS_FOR_WALLET_AND_OFFER"`

	// SkipInvalidationVersionCheck disables redundant-invalidation
	// suppression altogether: every invalidation is forwarded regardless of
	// its version. The newer transport guarantees ordering on its own.
	// Env: FEATURES_SKIP_INVALIDATION_VERSION_CHECK
	SkipInvalidationVersionCheck bool `env:"SKIP_INVALIDATION_VERSION_CHECK"`
}

// GetStructuredConfig loads, merges, and validates the engine configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
