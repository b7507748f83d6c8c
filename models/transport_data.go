// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultPollInterval is used whenever no poll interval has been persisted
// yet (or a zero one was stored).
const DefaultPollInterval = 4 * time.Hour

// TransportData is the durable local bookkeeping of the sync client,
// distinct from the synced user data itself. One record exists per profile.
type TransportData struct {
	// CacheGUID is a client-generated random 128-bit identifier, stable
	// across restarts unless the transport data is invalidated.
	CacheGUID string
	// Birthday is the server-assigned epoch identifier; empty until the
	// first sync cycle completes.
	Birthday string
	// BagOfChips is an opaque server-assigned continuation blob, refreshed
	// every sync cycle.
	BagOfChips string
	// GaiaID is the stable identifier of the authenticated account the
	// transport data belongs to.
	GaiaID string
	// EncryptionBootstrapToken and KeystoreEncryptionBootstrapToken survive
	// transport-data resets: losing them forces a full re-encryption-key
	// exchange with the server.
	EncryptionBootstrapToken         string
	KeystoreEncryptionBootstrapToken string
	// InvalidationVersions maps each model type to the last invalidation
	// version seen for it.
	InvalidationVersions map[ModelType]int64
	PollInterval         time.Duration
	LastSyncedTime       time.Time
	LastPollTime         time.Time
}

// ValidationResult classifies persisted transport data on startup.
type ValidationResult int

const (
	// TransportDataValid means the persisted data may be reused.
	TransportDataValid ValidationResult = iota
	// TransportDataEmptyCacheGUID means local sync data was fully cleared.
	TransportDataEmptyCacheGUID
	// TransportDataEmptyBirthday means the first sync cycle never
	// completed; reusing the cache GUID against a fresh birthday would risk
	// protocol violations.
	TransportDataEmptyBirthday
	// TransportDataGaiaIDMismatch means the data belongs to a different
	// account and must be treated as corrupt.
	TransportDataGaiaIDMismatch
)

func (r ValidationResult) String() string {
	switch r {
	case TransportDataValid:
		return "valid"
	case TransportDataEmptyCacheGUID:
		return "empty_cache_guid"
	case TransportDataEmptyBirthday:
		return "empty_birthday"
	case TransportDataGaiaIDMismatch:
		return "gaia_id_mismatch"
	}
	return "unknown"
}
