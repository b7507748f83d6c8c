// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-sync-engine/internal/config"
	"github.com/MKhiriev/go-sync-engine/internal/logger"
	"github.com/MKhiriev/go-sync-engine/internal/sequence"
	"github.com/MKhiriev/go-sync-engine/internal/store"
	"github.com/MKhiriev/go-sync-engine/models"
)

// EngineFacade is the frontend-sequence face of the sync engine. The host
// talks only to it; it validates and owns the transport-data store, posts
// work to the backend and receives posted callbacks guarded by its own
// liveness token.
//
// Every exported method must be called on the frontend sequence. Shutdown
// is two-phase: StopSyncingForShutdown first (cuts all upward callbacks),
// then Shutdown (posts the actual teardown). Violating that order is a
// caller contract violation, not something the facade defends against.
type EngineFacade struct {
	name string
	log  *logger.Logger

	frontend   *sequence.Runner
	syncRunner *sequence.Runner
	token      *sequence.Token

	backend       *Backend
	backendHandle sequence.Handle

	cfg           *config.EngineConfig
	store         store.TransportDataStore
	invalidator   Invalidator
	activeDevices ActiveDevicesProvider
	// clearedNotify fires whenever local transport data is wiped, so upper
	// layers purge their own metadata keyed by the old cache GUID.
	clearedNotify func()

	host        Host
	initialized bool

	cacheGUID      string
	birthday       string
	lastSyncedTime time.Time

	lastEnabledTypes              models.ModelTypeSet
	cachedStatus                  models.SyncStatus
	connector                     ModelTypeConnector
	invalidationHandlerRegistered bool
	sessionsInvalidationEnabled   bool
}

// NewEngineFacade wires a facade to its backend. frontend is the sequence
// the host calls from; syncRunner is the backend's sequence. The facade
// registers itself as the backend's host before any task can be posted.
func NewEngineFacade(name string, frontend, syncRunner *sequence.Runner, backend *Backend, cfg *config.EngineConfig, transportStore store.TransportDataStore, invalidator Invalidator, activeDevices ActiveDevicesProvider, clearedNotify func(), log *logger.Logger) *EngineFacade {
	e := &EngineFacade{
		name:                        name,
		log:                         log,
		frontend:                    frontend,
		syncRunner:                  syncRunner,
		token:                       sequence.NewToken(),
		backend:                     backend,
		backendHandle:               sequence.NewHandle(syncRunner, backend.token),
		cfg:                         cfg,
		store:                       transportStore,
		invalidator:                 invalidator,
		activeDevices:               activeDevices,
		clearedNotify:               clearedNotify,
		sessionsInvalidationEnabled: true,
	}
	backend.setHost(e, sequence.NewHandle(frontend, e.token))
	return e
}

// Initialize validates (and if needed regenerates) the local transport
// data, then posts DoInitialize to the sync sequence. Invalid local state
// is self-healing: it is silently cleared and a fresh random cache GUID is
// generated, never surfaced to the host as an error.
func (e *EngineFacade) Initialize(ctx context.Context, params InitParams) error {
	e.host = params.Host

	data, err := e.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading transport data: %w", err)
	}

	// One-time migration: older clients never stamped the account id.
	if data.GaiaID == "" && data.CacheGUID != "" {
		if err := e.store.SetGaiaID(ctx, params.AuthenticatedGaiaID); err != nil {
			return fmt.Errorf("migrating gaia id: %w", err)
		}
		data.GaiaID = params.AuthenticatedGaiaID
	}

	if result := store.ValidateTransportData(data, params.AuthenticatedGaiaID); result != models.TransportDataValid {
		e.log.Info().
			Str("func", "EngineFacade.Initialize").
			Str("reason", result.String()).
			Msg("local transport data invalid, resetting")

		if err := e.clearLocalTransportDataAndNotify(ctx); err != nil {
			return err
		}

		data = models.TransportData{
			CacheGUID:    generateCacheGUID(),
			GaiaID:       params.AuthenticatedGaiaID,
			PollInterval: models.DefaultPollInterval,
		}
		if err := e.store.SetCacheGUID(ctx, data.CacheGUID); err != nil {
			return fmt.Errorf("persisting fresh cache guid: %w", err)
		}
		if err := e.store.SetGaiaID(ctx, data.GaiaID); err != nil {
			return fmt.Errorf("persisting gaia id: %w", err)
		}
	}

	e.cacheGUID = data.CacheGUID
	e.birthday = data.Birthday
	e.lastSyncedTime = data.LastSyncedTime

	// One-shot subscription-migration handshake: when every type has moved
	// to the newer invalidations transport, tell the legacy invalidator we
	// are interested in nothing and walk away.
	if e.cfg.Features.FullyUsesSyncInvalidations() && e.invalidator != nil {
		e.invalidator.RegisterHandler(e)
		e.invalidator.UpdateInterestedTopics(e, nil)
		e.invalidator.UnregisterHandler(e)
	}

	if e.activeDevices != nil {
		e.activeDevices.SetActiveDevicesChangedCallback(e.onActiveDevicesChanged)
	}

	backend := e.backend
	restored := data
	e.backendHandle.Call(func() {
		backend.DoInitialize(params, restored)
	})
	return nil
}

// generateCacheGUID returns a fresh random 128-bit client identifier,
// base64-encoded.
func generateCacheGUID() string {
	id := uuid.New()
	return base64.StdEncoding.EncodeToString(id[:])
}

// ConfigureDataTypes purges then configures, as two separate posted tasks
// in that order: a type disabled and re-enabled in the same call must not
// race against stale Nigori state.
func (e *EngineFacade) ConfigureDataTypes(params ConfigureParams) {
	backend := e.backend
	e.backendHandle.Call(func() {
		backend.DoPurgeDisabledTypes(params.ToPurge)
	})
	e.backendHandle.Call(func() {
		backend.DoConfigureSyncer(params)
	})
}

// StartConfiguration puts the engine into configuration mode.
func (e *EngineFacade) StartConfiguration() {
	backend := e.backend
	e.backendHandle.Call(func() {
		backend.DoStartConfiguration()
	})
}

// StartSyncingWithServer begins steady-state sync cycles. A zero
// lastPollTime means "no poll recorded"; it is treated as a poll having
// just happened so the scheduler does not fire one immediately, and that
// baseline is persisted.
func (e *EngineFacade) StartSyncingWithServer(ctx context.Context, lastPollTime time.Time) {
	if lastPollTime.IsZero() {
		lastPollTime = time.Now()
		if err := e.store.SetLastPollTime(ctx, lastPollTime); err != nil {
			e.log.Err(err).
				Str("func", "EngineFacade.StartSyncingWithServer").
				Msg("failed to persist poll baseline")
		}
	}
	backend := e.backend
	e.backendHandle.Call(func() {
		backend.DoStartSyncing(lastPollTime)
	})
}

// TriggerRefresh asks the engine to re-download the given types.
func (e *EngineFacade) TriggerRefresh(types models.ModelTypeSet) {
	backend := e.backend
	e.backendHandle.Call(func() {
		backend.DoRefreshTypes(types)
	})
}

// UpdateCredentials hands fresh credentials to the engine.
func (e *EngineFacade) UpdateCredentials(credentials models.SyncCredentials) {
	backend := e.backend
	e.backendHandle.Call(func() {
		backend.DoUpdateCredentials(credentials)
	})
}

// InvalidateCredentials drops the engine's access token.
func (e *EngineFacade) InvalidateCredentials() {
	backend := e.backend
	e.backendHandle.Call(func() {
		backend.DoInvalidateCredentials()
	})
}

// SetEncryptionPassphrase sets a new explicit passphrase.
func (e *EngineFacade) SetEncryptionPassphrase(passphrase string) {
	backend := e.backend
	e.backendHandle.Call(func() {
		backend.DoSetEncryptionPassphrase(passphrase)
	})
}

// SetDecryptionPassphrase attempts decryption with a user passphrase.
func (e *EngineFacade) SetDecryptionPassphrase(passphrase string) {
	backend := e.backend
	e.backendHandle.Call(func() {
		backend.DoSetDecryptionPassphrase(passphrase)
	})
}

// SetEncryptionBootstrapToken persists the encryption bootstrap token.
// Direct store write on the frontend sequence.
func (e *EngineFacade) SetEncryptionBootstrapToken(ctx context.Context, token string) error {
	return e.store.SetEncryptionBootstrapToken(ctx, token)
}

// SetKeystoreEncryptionBootstrapToken persists the keystore token.
func (e *EngineFacade) SetKeystoreEncryptionBootstrapToken(ctx context.Context, token string) error {
	return e.store.SetKeystoreEncryptionBootstrapToken(ctx, token)
}

// ActivateDataType connects t inside the engine.
func (e *EngineFacade) ActivateDataType(t models.ModelType) {
	if e.connector == nil {
		return
	}
	e.connector.ConnectDataType(t)
}

// DeactivateDataType disconnects t inside the engine.
func (e *EngineFacade) DeactivateDataType(t models.ModelType) {
	if e.connector == nil {
		return
	}
	e.connector.DisconnectDataType(t)
}

// ActivateProxyDataType connects a storage-less proxy type.
func (e *EngineFacade) ActivateProxyDataType(t models.ModelType) {
	if e.connector == nil {
		return
	}
	e.connector.ConnectProxyType(t)
}

// DeactivateProxyDataType disconnects a proxy type.
func (e *EngineFacade) DeactivateProxyDataType(t models.ModelType) {
	if e.connector == nil {
		return
	}
	e.connector.DisconnectProxyType(t)
}

// SetInvalidationsForSessionsEnabled toggles the sessions-invalidation
// policy and pushes the updated topic set when already registered.
func (e *EngineFacade) SetInvalidationsForSessionsEnabled(enabled bool) {
	e.sessionsInvalidationEnabled = enabled
	if e.invalidationHandlerRegistered {
		e.sendInterestedTopicsToInvalidator()
	}
}

// OnIncomingInvalidation is the InvalidationHandler entry point, called on
// the frontend sequence by the invalidator. The batch is handed to the
// sync sequence as a value copy.
func (e *EngineFacade) OnIncomingInvalidation(invalidations models.TopicInvalidationMap) {
	backend := e.backend
	e.backendHandle.Call(func() {
		backend.DoOnIncomingInvalidation(invalidations)
	})
}

// RequestBufferedProtocolEventsAndEnableForwarding subscribes the host to
// protocol events, replaying what the backend buffered so far.
func (e *EngineFacade) RequestBufferedProtocolEventsAndEnableForwarding() {
	backend := e.backend
	e.backendHandle.Call(func() {
		backend.SendBufferedProtocolEventsAndEnableForwarding()
	})
}

// DisableProtocolEventForwarding unsubscribes the host.
func (e *EngineFacade) DisableProtocolEventForwarding() {
	backend := e.backend
	e.backendHandle.Call(func() {
		backend.DisableProtocolEventForwarding()
	})
}

// CacheGUID returns the client identifier restored or generated at
// Initialize time.
func (e *EngineFacade) CacheGUID() string {
	return e.cacheGUID
}

// Birthday returns the server-assigned epoch identifier.
func (e *EngineFacade) Birthday() string {
	return e.birthday
}

// LastSyncedTimeForDebugging returns the wall-clock time of the last
// completed sync cycle.
func (e *EngineFacade) LastSyncedTimeForDebugging() time.Time {
	return e.lastSyncedTime
}

// DetailedStatus returns the last engine-reported status snapshot.
func (e *EngineFacade) DetailedStatus() models.SyncStatus {
	return e.cachedStatus
}

// IsInitialized reports whether initialization completed successfully.
func (e *EngineFacade) IsInitialized() bool {
	return e.initialized
}

// HasUnsyncedItemsForTest synchronously asks the engine whether anything is
// waiting to commit. Test-only: it blocks the calling goroutine on the
// sync sequence.
func (e *EngineFacade) HasUnsyncedItemsForTest() bool {
	backend := e.backend
	result := make(chan bool, 1)
	posted := e.syncRunner.Post(func() {
		result <- backend.hasUnsyncedItems()
	})
	if !posted {
		return false
	}
	return <-result
}

// StopSyncingForShutdown is phase one of shutdown: it invalidates the
// facade token (no host callback can be observed afterwards, even from
// backend work already posted), clears the host and interrupts blocking
// engine work. Must precede Shutdown.
func (e *EngineFacade) StopSyncingForShutdown() {
	e.token.Invalidate()
	e.host = nil
	e.backend.RequestStop()
}

// Shutdown is phase two: it unwinds the invalidator registration, drops
// cached state, posts the backend teardown and releases the sync sequence
// — the backend is destroyed on its own sequence, never on this one. A
// sync-disabling shutdown also wipes local transport data.
func (e *EngineFacade) Shutdown(ctx context.Context, reason models.ShutdownReason) {
	if e.invalidationHandlerRegistered && e.invalidator != nil {
		// On browser shutdown the process is going away anyway; skip the
		// network round-trip of an empty-topic update.
		if reason != models.ShutdownBrowser {
			e.invalidator.UpdateInterestedTopics(e, nil)
		}
		e.invalidator.UnregisterHandler(e)
		e.invalidationHandlerRegistered = false
	}

	e.lastEnabledTypes = models.ModelTypeSet{}
	e.initialized = false
	e.connector = nil
	if e.activeDevices != nil {
		e.activeDevices.SetActiveDevicesChangedCallback(nil)
	}

	if reason == models.ShutdownDisableSync {
		if err := e.clearLocalTransportDataAndNotify(ctx); err != nil {
			e.log.Err(err).
				Str("func", "EngineFacade.Shutdown").
				Msg("failed to clear transport data")
		}
	}

	backend := e.backend
	e.syncRunner.Post(func() {
		backend.DoShutdown(reason)
	})
	e.syncRunner.Stop()
}

func (e *EngineFacade) clearLocalTransportDataAndNotify(ctx context.Context) error {
	if err := e.store.ClearAllExceptBootstrapTokens(ctx); err != nil {
		return fmt.Errorf("clearing transport data: %w", err)
	}
	if e.clearedNotify != nil {
		e.clearedNotify()
	}
	return nil
}

// sendInterestedTopicsToInvalidator publishes the topic set derived from
// the enabled types: commit-only types never need invalidations, sessions
// drop out when disabled by policy, and once general types moved to the
// newer transport only the two legacy wallet types remain.
func (e *EngineFacade) sendInterestedTopicsToInvalidator() {
	if e.invalidator == nil {
		return
	}

	types := e.lastEnabledTypes.Difference(models.CommitOnlyTypes())
	if !e.sessionsInvalidationEnabled {
		types = types.Without(models.Sessions)
	}
	if e.cfg.Features.SendInterestedDataTypes && e.cfg.Features.UseSyncInvalidations {
		types = types.Intersect(models.NewModelTypeSet(models.AutofillWalletData, models.AutofillWalletOffer))
	}

	e.invalidator.UpdateInterestedTopics(e, models.ModelTypeSetToTopics(types))
}

func (e *EngineFacade) onActiveDevicesChanged() {
	if e.activeDevices == nil {
		return
	}
	count := e.activeDevices.ActiveDeviceCount()
	tokens := e.activeDevices.ActiveDeviceFCMRegistrationTokens(e.cacheGUID)
	backend := e.backend
	e.backendHandle.Call(func() {
		backend.DoUpdateActiveDevices(count, tokens)
	})
}

// The handlers below run on the frontend sequence, posted by the backend
// through the token-guarded host handle.

func (e *EngineFacade) handleInitializationSuccessOnFrontendLoop(initialTypes models.ModelTypeSet, connector ModelTypeConnector, birthday, bagOfChips string) {
	ctx := e.log.WithContext(context.Background())

	e.connector = connector
	e.initialized = true
	e.birthday = birthday

	if e.invalidator != nil && !e.invalidationHandlerRegistered {
		e.invalidator.RegisterHandler(e)
		e.invalidationHandlerRegistered = true
	}

	if err := e.store.SetBirthday(ctx, birthday); err != nil {
		e.log.Err(err).Str("func", "EngineFacade.handleInitializationSuccessOnFrontendLoop").Msg("failed to persist birthday")
	}
	if err := e.store.SetBagOfChips(ctx, bagOfChips); err != nil {
		e.log.Err(err).Str("func", "EngineFacade.handleInitializationSuccessOnFrontendLoop").Msg("failed to persist bag of chips")
	}

	isFirstTimeSyncConfigure := e.lastSyncedTime.IsZero()
	if e.host != nil {
		e.host.OnEngineInitialized(initialTypes, true, isFirstTimeSyncConfigure)
	}
}

func (e *EngineFacade) handleInitializationFailureOnFrontendLoop() {
	if e.host != nil {
		e.host.OnEngineInitialized(models.ModelTypeSet{}, false, false)
	}
}

func (e *EngineFacade) finishConfigureDataTypesOnFrontendLoop(enabled, succeeded, failed models.ModelTypeSet, ready func(succeeded, failed models.ModelTypeSet)) {
	e.lastEnabledTypes = enabled

	// Subscription update strictly precedes the ready callback: by the time
	// the caller learns configuration finished, invalidation delivery for
	// the newly-enabled types is already active.
	if e.invalidationHandlerRegistered {
		e.sendInterestedTopicsToInvalidator()
	}

	if ready != nil {
		ready(succeeded, failed)
	}
}

func (e *EngineFacade) handleSyncCycleCompletedOnFrontendLoop(snapshot models.SyncCycleSnapshot) {
	// Defends against a cycle-completed message racing ahead of the
	// initialization-success message.
	if !e.initialized {
		return
	}
	ctx := e.log.WithContext(context.Background())

	// Wall-clock now, not the snapshot's own time: a skewed snapshot clock
	// must not regress the persisted value.
	now := time.Now()
	e.lastSyncedTime = now
	if err := e.store.SetLastSyncedTime(ctx, now); err != nil {
		e.log.Err(err).Str("func", "EngineFacade.handleSyncCycleCompletedOnFrontendLoop").Msg("failed to persist last synced time")
	}

	if !snapshot.PollFinishTime.IsZero() {
		if err := e.store.SetLastPollTime(ctx, snapshot.PollFinishTime); err != nil {
			e.log.Err(err).Str("func", "EngineFacade.handleSyncCycleCompletedOnFrontendLoop").Msg("failed to persist last poll time")
		}
	}

	if snapshot.PollInterval <= 0 {
		e.log.Error().
			Str("func", "EngineFacade.handleSyncCycleCompletedOnFrontendLoop").
			Msg("sync cycle reported a zero poll interval")
	} else if err := e.store.SetPollInterval(ctx, snapshot.PollInterval); err != nil {
		e.log.Err(err).Str("func", "EngineFacade.handleSyncCycleCompletedOnFrontendLoop").Msg("failed to persist poll interval")
	}

	if err := e.store.SetBagOfChips(ctx, snapshot.BagOfChips); err != nil {
		e.log.Err(err).Str("func", "EngineFacade.handleSyncCycleCompletedOnFrontendLoop").Msg("failed to persist bag of chips")
	}

	if e.host != nil {
		e.host.OnSyncCycleCompleted(snapshot)
	}
}

func (e *EngineFacade) updateInvalidationVersionsOnFrontendLoop(versions map[models.ModelType]int64) {
	ctx := e.log.WithContext(context.Background())
	if err := e.store.UpdateInvalidationVersions(ctx, versions); err != nil {
		e.log.Err(err).
			Str("func", "EngineFacade.updateInvalidationVersionsOnFrontendLoop").
			Msg("failed to persist invalidation versions")
	}
}

func (e *EngineFacade) handleConnectionStatusChangeOnFrontendLoop(status models.ConnectionStatus) {
	if e.host != nil {
		e.host.OnConnectionStatusChange(status)
	}
}

func (e *EngineFacade) handleActionableErrorOnFrontendLoop(protocolError models.SyncProtocolError) {
	if e.host != nil {
		e.host.OnActionableError(protocolError)
	}
}

func (e *EngineFacade) handleMigrationRequestedOnFrontendLoop(types models.ModelTypeSet) {
	if e.host != nil {
		e.host.OnMigrationNeededForTypes(types)
	}
}

func (e *EngineFacade) handleProtocolEventOnFrontendLoop(event ProtocolEvent) {
	if e.host != nil {
		e.host.OnProtocolEvent(event)
	}
}

func (e *EngineFacade) handleSyncStatusChangedOnFrontendLoop(status models.SyncStatus) {
	backedOffChanged := status.BackedOffTypes != e.cachedStatus.BackedOffTypes
	e.cachedStatus = status
	if backedOffChanged && e.host != nil {
		e.host.OnBackedOffTypesChanged()
	}
}
