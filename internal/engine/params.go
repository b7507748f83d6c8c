// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import (
	"time"

	"github.com/MKhiriev/go-sync-engine/internal/sequence"
	"github.com/MKhiriev/go-sync-engine/models"
)

// InitParams carries everything the facade needs to bring the engine up.
// All fields are value copies or interfaces safe to hand across sequences.
type InitParams struct {
	// Host receives upward callbacks on the frontend sequence.
	Host Host
	// AuthenticatedGaiaID is the stable identifier of the signed-in account;
	// it gates transport-data reuse.
	AuthenticatedGaiaID string
	Credentials         models.SyncCredentials
	// InvalidatorClientID identifies this client to the invalidation
	// delivery service.
	InvalidatorClientID string
	// SyncManagerFactory builds the engine instance on the sync sequence.
	SyncManagerFactory SyncManagerFactory
}

// ManagerInitArgs is the argument block passed to SyncManager.Init,
// assembled by the backend from the init params, the resolved configuration
// and the restored transport data.
type ManagerInitArgs struct {
	Observer            SyncManagerObserver
	ServiceURL          string
	LocalSyncBackend    bool
	InvalidatorClientID string
	Credentials         models.SyncCredentials

	// CancelSignal interrupts blocking network work when the facade begins
	// shutdown.
	CancelSignal *sequence.CancelSignal

	CacheGUID                        string
	Birthday                         string
	BagOfChips                       string
	PollInterval                     time.Duration
	EncryptionBootstrapToken         string
	KeystoreEncryptionBootstrapToken string
}

// ConfigureParams describes one purge-and-configure cycle.
type ConfigureParams struct {
	Reason models.ConfigureReason
	// EnabledTypes is the full desired enabled set after this cycle.
	EnabledTypes models.ModelTypeSet
	// ToDownload is the subset that needs a (re)download.
	ToDownload models.ModelTypeSet
	// ToPurge is the subset whose local sync state must be dropped before
	// configuring.
	ToPurge      models.ModelTypeSet
	FeatureState models.SyncFeatureState
	// Ready is invoked on the frontend sequence once the cycle finishes,
	// strictly after the interested-topic subscription has been updated.
	Ready func(succeeded, failed models.ModelTypeSet)
}

// ProtocolEvent is a debug-level record of one exchange with the sync
// server, forwarded to the host only on explicit subscription.
type ProtocolEvent struct {
	Time    time.Time
	Type    string
	Details string
}
