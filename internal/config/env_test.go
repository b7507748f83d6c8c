// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"ENGINE_SERVICE_URL":        "https://sync.example.com/command",
		"ENGINE_DATA_DIR":           "/var/lib/sync",
		"ENGINE_LOCAL_SYNC_BACKEND": "true",
		"ENGINE_POLL_INTERVAL":      "4h",

		// Storage has a nested prefix: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "/var/lib/sync/transport.db",

		"FEATURES_SEND_INTERESTED_DATA_TYPES":                 "true",
		"FEATURES_USE_SYNC_INVALIDATIONS":                     "true",
		"FEATURES_USE_SYNC_INVALIDATIONS_FOR_WALLET_AND_OFFER": "true",
		"FEATURES_SKIP_INVALIDATION_VERSION_CHECK":            "true",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "https://sync.example.com/command", cfg.Engine.ServiceURL)
	assert.Equal(t, "/var/lib/sync", cfg.Engine.DataDir)
	assert.True(t, cfg.Engine.LocalSyncBackend)
	assert.Equal(t, 4*time.Hour, cfg.Engine.PollInterval)

	assert.Equal(t, "/var/lib/sync/transport.db", cfg.Storage.DB.DSN)

	assert.True(t, cfg.Features.SendInterestedDataTypes)
	assert.True(t, cfg.Features.UseSyncInvalidations)
	assert.True(t, cfg.Features.UseSyncInvalidationsForWalletAndOffer)
	assert.True(t, cfg.Features.SkipInvalidationVersionCheck)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"ENGINE_SERVICE_URL":      "https://sync.example.com/command",
		"STORAGE_DB_DATABASE_URI": "/tmp/transport.db",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "https://sync.example.com/command", cfg.Engine.ServiceURL)
	assert.Empty(t, cfg.Engine.DataDir)
	assert.False(t, cfg.Engine.LocalSyncBackend)
	assert.Zero(t, cfg.Engine.PollInterval)

	assert.Equal(t, "/tmp/transport.db", cfg.Storage.DB.DSN)

	assert.False(t, cfg.Features.SendInterestedDataTypes)
	assert.False(t, cfg.Features.UseSyncInvalidations)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ENGINE_POLL_INTERVAL": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}

func TestFeatures_FullyUsesSyncInvalidations(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		want     bool
	}{
		{
			name: "all three flags on",
			features: Features{
				SendInterestedDataTypes:               true,
				UseSyncInvalidations:                  true,
				UseSyncInvalidationsForWalletAndOffer: true,
			},
			want: true,
		},
		{
			name: "wallet and offer still on legacy channel",
			features: Features{
				SendInterestedDataTypes: true,
				UseSyncInvalidations:    true,
			},
			want: false,
		},
		{
			name:     "all off",
			features: Features{},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.features.FullyUsesSyncInvalidations())
		})
	}
}
