// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final engine config view satisfies all invariants
// before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *EngineConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Engine.DataDir == "" {
		return ErrInvalidEngineConfigs
	}

	if cfg.Engine.ServiceURL == "" && !cfg.Engine.LocalSyncBackend {
		return ErrInvalidEngineConfigs
	}

	return nil
}
