// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-sync-engine/internal/config"
	"github.com/MKhiriev/go-sync-engine/internal/crypto"
	"github.com/MKhiriev/go-sync-engine/internal/logger"
	"github.com/MKhiriev/go-sync-engine/internal/sequence"
	"github.com/MKhiriev/go-sync-engine/models"
)

// BackendState is the sync-sequence half of the engine state machine.
type BackendState int

const (
	BackendUninitialized BackendState = iota
	BackendInitializing
	BackendRunning
	BackendShuttingDown
	BackendDestroyed
)

// Backend owns the SyncManager instance and lives on the sync sequence.
// Every exported Do* method must run on that sequence; the facade posts
// them through its backend handle. Callbacks flow back to the facade
// through the host handle, which the facade's liveness token guards.
//
// Backend deliberately outlives calls in flight: tasks already posted to
// the sync sequence still run after the facade tears down, which is why
// every Do* method guards on the manager existing.
type Backend struct {
	name string
	log  *logger.Logger

	runner *sequence.Runner
	token  *sequence.Token

	engineCfg config.Engine
	features  config.Features
	keybag    crypto.KeybagService

	// stopSignal is created up front so the facade can signal it from the
	// frontend sequence at any point of the backend lifecycle.
	stopSignal *sequence.CancelSignal

	// The fields below are only touched on the sync sequence.
	state                    BackendState
	host                     sequence.Handle
	facade                   *EngineFacade
	manager                  SyncManager
	nigori                   *NigoriController
	lastInvalidationVersions map[models.ModelType]int64

	forwardProtocolEvents  bool
	bufferedProtocolEvents []ProtocolEvent
}

// NewBackend builds a backend bound to the given sync-sequence runner.
func NewBackend(name string, runner *sequence.Runner, cfg *config.EngineConfig, keybag crypto.KeybagService, log *logger.Logger) *Backend {
	return &Backend{
		name:       name,
		log:        log,
		runner:     runner,
		token:      sequence.NewToken(),
		engineCfg:  cfg.Engine,
		features:   cfg.Features,
		keybag:     keybag,
		stopSignal: sequence.NewCancelSignal(),
	}
}

// setHost wires the upward path. Called once by the facade constructor,
// before any task is posted.
func (b *Backend) setHost(facade *EngineFacade, host sequence.Handle) {
	b.facade = facade
	b.host = host
}

// RequestStop fires the cancellation signal. Safe from any sequence.
func (b *Backend) RequestStop() {
	b.stopSignal.Signal()
}

// State returns the backend lifecycle state. Sync sequence only.
func (b *Backend) State() BackendState {
	return b.state
}

// DoInitialize creates the sync data directory, restores the invalidation
// version map, builds the Nigori controller and the SyncManager, and kicks
// off manager initialization. Completion arrives via
// OnInitializationComplete.
func (b *Backend) DoInitialize(params InitParams, restored models.TransportData) {
	b.state = BackendInitializing

	if err := os.MkdirAll(b.engineCfg.DataDir, 0o700); err != nil {
		// Local storage being writable is a process-level precondition;
		// nothing at this layer can recover from it.
		b.log.WithLevel(zerolog.FatalLevel).
			Err(err).
			Str("func", "Backend.DoInitialize").
			Str("dir", b.engineCfg.DataDir).
			Msg("failed to create local sync data directory")
	}

	b.lastInvalidationVersions = make(map[models.ModelType]int64, len(restored.InvalidationVersions))
	for t, v := range restored.InvalidationVersions {
		b.lastInvalidationVersions[t] = v
	}

	b.nigori = newNigoriController(b.keybag, b.engineCfg.DataDir, restored.EncryptionBootstrapToken, b.log)

	b.manager = params.SyncManagerFactory.CreateSyncManager(b.name)
	b.manager.Init(ManagerInitArgs{
		Observer:                         b,
		ServiceURL:                       b.engineCfg.ServiceURL,
		LocalSyncBackend:                 b.engineCfg.LocalSyncBackend,
		InvalidatorClientID:              params.InvalidatorClientID,
		Credentials:                      params.Credentials,
		CancelSignal:                     b.stopSignal,
		CacheGUID:                        restored.CacheGUID,
		Birthday:                         restored.Birthday,
		BagOfChips:                       restored.BagOfChips,
		PollInterval:                     restored.PollInterval,
		EncryptionBootstrapToken:         restored.EncryptionBootstrapToken,
		KeystoreEncryptionBootstrapToken: restored.KeystoreEncryptionBootstrapToken,
	})
}

// OnInitializationComplete is the SyncManagerObserver entry point for
// manager startup. On failure the manager is destroyed and the failure
// reported upward; retry policy, if any, lives in whoever re-constructs the
// engine. On success the control types that never finished their initial
// sync are configured, continuing in DoInitialProcessControlTypes.
func (b *Backend) OnInitializationComplete(success bool) {
	if !success {
		b.log.Error().
			Str("func", "Backend.OnInitializationComplete").
			Msg("sync manager initialization failed")
		b.DoDestroySyncManager()
		b.reportInitializationFailure()
		return
	}

	if err := b.nigori.LoadAndConnect(b.manager.GetModelTypeConnector()); err != nil {
		b.log.Err(err).
			Str("func", "Backend.OnInitializationComplete").
			Msg("failed to load nigori controller")
		b.DoDestroySyncManager()
		b.reportInitializationFailure()
		return
	}

	initialSyncEnded := b.manager.InitialSyncEndedTypes()
	newControlTypes := models.ControlTypes().Difference(initialSyncEnded)

	reason := models.ConfigureReasonNewlyEnabledDataType
	if initialSyncEnded.Empty() {
		reason = models.ConfigureReasonNewClient
	}

	b.manager.StartConfiguration()
	b.manager.ConfigureSyncer(reason, newControlTypes, models.SyncFeatureInitializing, b.DoInitialProcessControlTypes)
}

// DoInitialProcessControlTypes finishes bootstrap after the control-type
// download. There is no partial-success path: a failed encryption-handler
// init or an incomplete control-type set is fatal to this initialization
// attempt.
func (b *Backend) DoInitialProcessControlTypes() {
	encryption := b.manager.GetEncryptionHandler()
	if encryption == nil || !encryption.Init() {
		b.log.Error().
			Str("func", "Backend.DoInitialProcessControlTypes").
			Msg("encryption handler initialization failed")
		b.DoDestroySyncManager()
		b.reportInitializationFailure()
		return
	}

	initialSyncEnded := b.manager.InitialSyncEndedTypes()
	if !initialSyncEnded.HasAll(models.ControlTypes()) {
		b.log.Error().
			Str("func", "Backend.DoInitialProcessControlTypes").
			Str("initial_sync_ended", initialSyncEnded.String()).
			Msg("control types did not finish initial sync")
		b.DoDestroySyncManager()
		b.reportInitializationFailure()
		return
	}

	b.state = BackendRunning

	connector := b.manager.GetModelTypeConnector()
	birthday := b.manager.Birthday()
	bagOfChips := b.manager.BagOfChips()
	facade := b.facade
	b.host.Call(func() {
		facade.handleInitializationSuccessOnFrontendLoop(initialSyncEnded, connector, birthday, bagOfChips)
	})
}

func (b *Backend) reportInitializationFailure() {
	facade := b.facade
	b.host.Call(func() {
		facade.handleInitializationFailureOnFrontendLoop()
	})
}

// DoConfigureSyncer runs one configuration cycle and reports succeeded and
// failed sets back to the frontend when the engine finishes.
func (b *Backend) DoConfigureSyncer(params ConfigureParams) {
	if b.manager == nil {
		return
	}
	b.manager.ConfigureSyncer(params.Reason, params.ToDownload, params.FeatureState, func() {
		b.doFinishConfigureDataTypes(params.EnabledTypes, params.ToDownload, params.Ready)
	})
}

func (b *Backend) doFinishConfigureDataTypes(enabledTypes, toConfig models.ModelTypeSet, ready func(succeeded, failed models.ModelTypeSet)) {
	if b.manager == nil {
		return
	}

	failed := toConfig.Difference(b.manager.InitialSyncEndedTypes())
	succeeded := toConfig.Difference(failed)
	enabled := enabledTypes.Difference(models.ProxyTypes())

	facade := b.facade
	b.host.Call(func() {
		facade.finishConfigureDataTypesOnFrontendLoop(enabled, succeeded, failed, ready)
	})
}

// DoPurgeDisabledTypes drops local sync state for types being disabled.
// Nigori is the one type whose lifecycle the generic datatype manager does
// not own, so a purge containing it stops the controller and re-drives it
// fresh before anything else configures.
func (b *Backend) DoPurgeDisabledTypes(toPurge models.ModelTypeSet) {
	if b.manager == nil || toPurge.Empty() {
		return
	}

	if toPurge.Has(models.Nigori) {
		b.nigori.Stop(models.ShutdownStopSync)
		if err := b.nigori.LoadAndConnect(b.manager.GetModelTypeConnector()); err != nil {
			b.log.Err(err).
				Str("func", "Backend.DoPurgeDisabledTypes").
				Msg("failed to reload nigori controller after purge")
		}
	}
}

// DoOnIncomingInvalidation resolves each topic, drops redundant
// invalidations, forwards the rest to the engine and persists the updated
// version map upward unconditionally — even an all-redundant batch writes
// the map, so restart races resolve to "last call wins".
func (b *Backend) DoOnIncomingInvalidation(invalidations models.TopicInvalidationMap) {
	if b.manager == nil {
		return
	}

	for topic, list := range invalidations {
		t, ok := models.TopicToModelType(topic)
		if !ok {
			b.log.Warn().
				Str("func", "Backend.DoOnIncomingInvalidation").
				Str("topic", string(topic)).
				Msg("invalidation for unknown topic, dropping")
			continue
		}

		for _, invalidation := range list {
			if b.shouldIgnoreRedundantInvalidation(invalidation, t) {
				continue
			}
			b.manager.OnIncomingInvalidation(t, invalidation)
			if !invalidation.UnknownVersion {
				b.lastInvalidationVersions[t] = invalidation.Version
			}
		}
	}

	versions := make(map[models.ModelType]int64, len(b.lastInvalidationVersions))
	for t, v := range b.lastInvalidationVersions {
		versions[t] = v
	}
	facade := b.facade
	b.host.Call(func() {
		facade.updateInvalidationVersionsOnFrontendLoop(versions)
	})
}

// shouldIgnoreRedundantInvalidation reports whether an invalidation may be
// suppressed. Only a known-version invalidation at or below the last-seen
// version is redundant, and the skip-version-check feature disables
// suppression entirely.
func (b *Backend) shouldIgnoreRedundantInvalidation(invalidation models.Invalidation, t models.ModelType) bool {
	redundant := false
	if last, ok := b.lastInvalidationVersions[t]; ok &&
		!invalidation.UnknownVersion && invalidation.Version <= last {
		redundant = true
	}
	return !b.features.SkipInvalidationVersionCheck && redundant
}

// DoRefreshTypes asks the engine to re-download the given types.
func (b *Backend) DoRefreshTypes(types models.ModelTypeSet) {
	if b.manager == nil {
		return
	}
	b.manager.RefreshTypes(types)
}

// DoUpdateCredentials hands fresh credentials to the engine. The manager
// may already be gone if shutdown pre-empted this task.
func (b *Backend) DoUpdateCredentials(credentials models.SyncCredentials) {
	if b.manager == nil {
		return
	}
	b.manager.UpdateCredentials(credentials)
}

// DoInvalidateCredentials drops the engine's access token.
func (b *Backend) DoInvalidateCredentials() {
	if b.manager == nil {
		return
	}
	b.manager.InvalidateCredentials()
}

// DoStartConfiguration puts the engine into configuration mode.
func (b *Backend) DoStartConfiguration() {
	if b.manager == nil {
		return
	}
	b.manager.StartConfiguration()
}

// DoStartSyncing begins steady-state syncing with the given poll baseline.
func (b *Backend) DoStartSyncing(lastPollTime time.Time) {
	if b.manager == nil {
		return
	}
	b.manager.StartSyncingNormally(lastPollTime)
}

// DoSetEncryptionPassphrase forwards a new explicit passphrase.
func (b *Backend) DoSetEncryptionPassphrase(passphrase string) {
	if b.manager == nil {
		return
	}
	b.manager.GetEncryptionHandler().SetEncryptionPassphrase(passphrase)
}

// DoSetDecryptionPassphrase attempts decryption with a user passphrase.
func (b *Backend) DoSetDecryptionPassphrase(passphrase string) {
	if b.manager == nil {
		return
	}
	b.manager.GetEncryptionHandler().SetDecryptionPassphrase(passphrase)
}

// DoUpdateActiveDevices pushes the current device census into the engine.
func (b *Backend) DoUpdateActiveDevices(count int, fcmRegistrationTokens []string) {
	if b.manager == nil {
		return
	}
	b.manager.UpdateActiveDeviceInfo(count, fcmRegistrationTokens)
}

// SendBufferedProtocolEventsAndEnableForwarding replays buffered protocol
// events upward and keeps forwarding new ones.
func (b *Backend) SendBufferedProtocolEventsAndEnableForwarding() {
	b.forwardProtocolEvents = true
	facade := b.facade
	for _, event := range b.bufferedProtocolEvents {
		event := event
		b.host.Call(func() {
			facade.handleProtocolEventOnFrontendLoop(event)
		})
	}
}

// DisableProtocolEventForwarding stops forwarding; events keep buffering.
func (b *Backend) DisableProtocolEventForwarding() {
	b.forwardProtocolEvents = false
}

// DoShutdown tears the engine down. The Nigori controller is only stopped
// when both it and the manager exist, guarding against shutdown during a
// failed initialization that never got that far. A sync-disabling shutdown
// additionally wipes the on-disk sync data directory. Finally the host
// handle is reset and the backend token invalidated, pre-empting any
// in-flight posted replies.
func (b *Backend) DoShutdown(reason models.ShutdownReason) {
	b.state = BackendShuttingDown

	if b.nigori != nil && b.manager != nil {
		b.nigori.Stop(reason)
	}

	b.DoDestroySyncManager()

	if reason == models.ShutdownDisableSync {
		if err := os.RemoveAll(b.engineCfg.DataDir); err != nil {
			b.log.Err(err).
				Str("func", "Backend.DoShutdown").
				Str("dir", b.engineCfg.DataDir).
				Msg("failed to remove sync data directory")
		}
	}

	b.host = sequence.Handle{}
	b.facade = nil
	b.token.Invalidate()
	b.state = BackendDestroyed
}

// DoDestroySyncManager shuts the manager down on the sync sequence and
// drops it. Idempotent.
func (b *Backend) DoDestroySyncManager() {
	if b.manager == nil {
		return
	}
	b.manager.ShutdownOnSyncSequence()
	b.manager = nil
}

// hasUnsyncedItems services the facade's test-only synchronous bridge.
func (b *Backend) hasUnsyncedItems() bool {
	if b.manager == nil {
		return false
	}
	return b.manager.HasUnsyncedItems()
}

// The remaining SyncManagerObserver methods translate engine callbacks into
// posted frontend work.

func (b *Backend) OnSyncCycleCompleted(snapshot models.SyncCycleSnapshot) {
	facade := b.facade
	b.host.Call(func() {
		facade.handleSyncCycleCompletedOnFrontendLoop(snapshot)
	})
}

func (b *Backend) OnConnectionStatusChange(status models.ConnectionStatus) {
	facade := b.facade
	b.host.Call(func() {
		facade.handleConnectionStatusChangeOnFrontendLoop(status)
	})
}

func (b *Backend) OnActionableError(protocolError models.SyncProtocolError) {
	facade := b.facade
	b.host.Call(func() {
		facade.handleActionableErrorOnFrontendLoop(protocolError)
	})
}

func (b *Backend) OnMigrationRequested(types models.ModelTypeSet) {
	facade := b.facade
	b.host.Call(func() {
		facade.handleMigrationRequestedOnFrontendLoop(types)
	})
}

func (b *Backend) OnProtocolEvent(event ProtocolEvent) {
	b.bufferedProtocolEvents = append(b.bufferedProtocolEvents, event)
	if !b.forwardProtocolEvents {
		return
	}
	facade := b.facade
	b.host.Call(func() {
		facade.handleProtocolEventOnFrontendLoop(event)
	})
}

func (b *Backend) OnSyncStatusChanged(status models.SyncStatus) {
	facade := b.facade
	b.host.Call(func() {
		facade.handleSyncStatusChangedOnFrontendLoop(status)
	})
}
