// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package engine implements the invalidation-to-configuration pipeline of
// the sync client: a facade living on the frontend sequence and a backend
// living on a dedicated sync sequence, cooperating purely through posted
// tasks. The backend owns the SyncManager instance doing the actual wire
// protocol; the facade owns the transport-data store and the host-facing
// state machine.
package engine

import (
	"time"

	"github.com/MKhiriev/go-sync-engine/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/engine_mock.go -package=mock

// Host is the upward contract of the engine. Every method is invoked on the
// frontend sequence, and never again after StopSyncingForShutdown returns.
type Host interface {
	OnEngineInitialized(initialTypes models.ModelTypeSet, success bool, isFirstTimeSyncConfigure bool)
	OnSyncCycleCompleted(snapshot models.SyncCycleSnapshot)
	OnActionableError(protocolError models.SyncProtocolError)
	OnMigrationNeededForTypes(types models.ModelTypeSet)
	OnConnectionStatusChange(status models.ConnectionStatus)
	// OnProtocolEvent is only invoked after the host explicitly subscribed
	// via RequestBufferedProtocolEventsAndEnableForwarding.
	OnProtocolEvent(event ProtocolEvent)
	OnBackedOffTypesChanged()
}

// SyncManager is the downward contract: the engine instance performing
// commit/download cycles, encryption and the wire protocol. It is owned by
// the backend, created in DoInitialize and destroyed in DoShutdown, and is
// only ever touched from the sync sequence. Observer callbacks are likewise
// delivered on the sync sequence.
type SyncManager interface {
	Init(args ManagerInitArgs)
	ConfigureSyncer(reason models.ConfigureReason, toDownload models.ModelTypeSet, featureState models.SyncFeatureState, ready func())
	StartConfiguration()
	StartSyncingNormally(lastPollTime time.Time)
	UpdateCredentials(credentials models.SyncCredentials)
	InvalidateCredentials()
	RefreshTypes(types models.ModelTypeSet)
	OnIncomingInvalidation(t models.ModelType, invalidation models.Invalidation)
	UpdateActiveDeviceInfo(count int, fcmRegistrationTokens []string)

	// InitialSyncEndedTypes returns every type that has completed its
	// initial download at least once on this client.
	InitialSyncEndedTypes() models.ModelTypeSet
	Birthday() string
	BagOfChips() string
	GetEncryptionHandler() EncryptionHandler
	GetModelTypeConnector() ModelTypeConnector

	// HasUnsyncedItems is a synchronous inspection hook, exposed upward only
	// through the facade's test-only bridge.
	HasUnsyncedItems() bool

	ShutdownOnSyncSequence()
}

// SyncManagerObserver receives engine lifecycle and cycle events. The
// backend is the one observer; callbacks arrive on the sync sequence.
type SyncManagerObserver interface {
	OnInitializationComplete(success bool)
	OnSyncCycleCompleted(snapshot models.SyncCycleSnapshot)
	OnConnectionStatusChange(status models.ConnectionStatus)
	OnActionableError(protocolError models.SyncProtocolError)
	OnMigrationRequested(types models.ModelTypeSet)
	OnProtocolEvent(event ProtocolEvent)
	OnSyncStatusChanged(status models.SyncStatus)
}

// SyncManagerFactory creates the engine instance. Injected so tests can
// substitute a fake manager; the backend never constructs one directly.
type SyncManagerFactory interface {
	CreateSyncManager(name string) SyncManager
}

// EncryptionHandler drives cryptographer state inside the engine instance.
type EncryptionHandler interface {
	// Init returns false when the persisted encryption state cannot be
	// loaded; initialization of the whole engine fails in that case.
	Init() bool
	SetEncryptionPassphrase(passphrase string)
	SetDecryptionPassphrase(passphrase string)
}

// ModelTypeConnector activates and deactivates individual data types inside
// the engine instance. Obtained from the SyncManager after a successful
// initialization; the facade releases its proxy at shutdown.
type ModelTypeConnector interface {
	ConnectDataType(t models.ModelType)
	DisconnectDataType(t models.ModelType)
	ConnectProxyType(t models.ModelType)
	DisconnectProxyType(t models.ModelType)
}

// Invalidator is the delivery service for server-pushed invalidations. The
// facade registers itself as a handler and keeps the interested-topic set
// up to date as the enabled types change.
type Invalidator interface {
	RegisterHandler(handler InvalidationHandler)
	// UpdateInterestedTopics replaces the handler's subscription set. An
	// empty or nil slice unsubscribes from everything.
	UpdateInterestedTopics(handler InvalidationHandler, topics []models.Topic) bool
	UnregisterHandler(handler InvalidationHandler)
}

// InvalidationHandler is the receiving side of the invalidator contract.
type InvalidationHandler interface {
	OnIncomingInvalidation(invalidations models.TopicInvalidationMap)
}

// ActiveDevicesProvider reports the other devices syncing to the same
// account, used by the engine to target reflection-blocking hints.
type ActiveDevicesProvider interface {
	ActiveDeviceCount() int
	// ActiveDeviceFCMRegistrationTokens returns the registration tokens of
	// all active devices except the one identified by localCacheGUID.
	ActiveDeviceFCMRegistrationTokens(localCacheGUID string) []string
	// SetActiveDevicesChangedCallback installs cb to be invoked whenever the
	// device list changes. A nil cb detaches.
	SetActiveDevicesChangedCallback(cb func())
}
