package config

import (
	"fmt"
)

// EngineConfig is the resolved configuration view handed to the engine at
// construction time, assembled from [StructuredConfig].
type EngineConfig struct {
	// Engine contains service endpoint and local data directory settings.
	Engine Engine
	// Storage contains the local transport-data store settings.
	Storage Storage
	// Features contains the invalidation feature switches, resolved once.
	Features Features
}

// FullyUsesSyncInvalidations reports whether every data type, including
// wallet data and offers, has moved to the newer invalidations transport.
// When true the legacy invalidator is only contacted for the one-shot
// subscription-migration handshake.
func (f Features) FullyUsesSyncInvalidations() bool {
	return f.SendInterestedDataTypes &&
		f.UseSyncInvalidations &&
		f.UseSyncInvalidationsForWalletAndOffer
}

// GetEngineConfig builds and validates the engine config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the engine runtime, and validates the resulting [EngineConfig].
func GetEngineConfig() (*EngineConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	engineCfg := &EngineConfig{
		Engine:   cfg.Engine,
		Storage:  cfg.Storage,
		Features: cfg.Features,
	}

	return engineCfg, engineCfg.validate()
}
