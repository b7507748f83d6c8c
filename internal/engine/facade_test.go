package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-engine/internal/config"
	"github.com/MKhiriev/go-sync-engine/internal/store"
	"github.com/MKhiriev/go-sync-engine/models"
)

func TestFacade_ReusesValidTransportData(t *testing.T) {
	f := newEngineFixture(t)
	f.initialize(t)

	var guid string
	runOn(t, f.frontend, func() {
		guid = f.facade.CacheGUID()
	})
	assert.Equal(t, "stored-guid", guid)
	assert.Equal(t, 0, f.clearedCount())
	assert.Equal(t, "stored-guid", f.manager.initArgs.CacheGUID)
	assert.Equal(t, "stored-birthday", f.manager.initArgs.Birthday)
}

func TestFacade_EmptyCacheGUIDTriggersReset(t *testing.T) {
	// Persisted cache_guid="", birthday="abc", gaia="g1", account gaia "g1":
	// validation fails on the empty cache GUID, everything is cleared, a
	// fresh random GUID is stamped, and the backend initializes with an
	// empty birthday, forcing NEW_CLIENT for the control types.
	f := newEngineFixture(t, withStoredData(models.TransportData{
		Birthday: "abc",
		GaiaID:   "g1",
	}))
	f.initialize(t)

	assert.Equal(t, 1, f.clearedCount())

	var guid string
	runOn(t, f.frontend, func() {
		guid = f.facade.CacheGUID()
	})
	require.NotEmpty(t, guid)
	assert.Len(t, guid, 24) // base64 of 16 random bytes
	assert.NotEqual(t, "stored-guid", guid)

	assert.Equal(t, guid, f.manager.initArgs.CacheGUID)
	assert.Empty(t, f.manager.initArgs.Birthday)
	require.NotEmpty(t, f.manager.configureReasons)
	assert.Equal(t, models.ConfigureReasonNewClient, f.manager.configureReasons[0])

	snap := f.store.snapshot()
	assert.Equal(t, "g1", snap.GaiaID)
	assert.Equal(t, guid, snap.CacheGUID)
}

func TestFacade_GaiaMismatchTriggersReset(t *testing.T) {
	f := newEngineFixture(t, withStoredData(models.TransportData{
		CacheGUID: "stored-guid",
		Birthday:  "abc",
		GaiaID:    "someone-else",
	}))
	f.initialize(t)

	assert.Equal(t, 1, f.clearedCount())
	assert.NotEqual(t, "stored-guid", f.manager.initArgs.CacheGUID)
	assert.Equal(t, "g1", f.store.snapshot().GaiaID)
}

func TestFacade_GaiaMigrationPopulatesEmptyID(t *testing.T) {
	// Older clients never stamped the account id; an otherwise-valid record
	// gets it populated instead of being discarded.
	f := newEngineFixture(t, withStoredData(models.TransportData{
		CacheGUID: "stored-guid",
		Birthday:  "abc",
	}))
	f.initialize(t)

	assert.Equal(t, 0, f.clearedCount())
	assert.Equal(t, "stored-guid", f.manager.initArgs.CacheGUID)
	assert.Equal(t, "g1", f.store.snapshot().GaiaID)
}

func TestFacade_RegenerationProducesDistinctGUIDs(t *testing.T) {
	invalid := models.TransportData{Birthday: "abc", GaiaID: "g1"}

	f1 := newEngineFixture(t, withStoredData(invalid))
	f1.initialize(t)
	guid1 := f1.manager.initArgs.CacheGUID

	f2 := newEngineFixture(t, withStoredData(invalid))
	f2.initialize(t)
	guid2 := f2.manager.initArgs.CacheGUID

	require.NotEmpty(t, guid1)
	require.NotEmpty(t, guid2)
	assert.NotEqual(t, guid1, guid2, "regenerated cache GUIDs must never repeat")

	// Each regenerated state independently validates once a birthday lands.
	for _, f := range []*engineFixture{f1, f2} {
		snap := f.store.snapshot()
		assert.Equal(t, models.TransportDataValid, store.ValidateTransportData(snap, "g1"))
		assert.NotEmpty(t, snap.Birthday) // set from the init success callback
	}
}

func TestFacade_InitializationSuccessPersistsServerState(t *testing.T) {
	f := newEngineFixture(t)
	f.initialize(t)

	results := f.host.initializations()
	require.Len(t, results, 1)
	assert.True(t, results[0].success)
	assert.True(t, results[0].firstTime, "no last-synced time means first-time configure")

	snap := f.store.snapshot()
	assert.Equal(t, "server-birthday", snap.Birthday)
	assert.Equal(t, "server-chips", snap.BagOfChips)

	var initialized bool
	runOn(t, f.frontend, func() {
		initialized = f.facade.IsInitialized()
	})
	assert.True(t, initialized)
	assert.Contains(t, f.invalidator.actionLog(), "register")
}

func TestFacade_NotFirstTimeWhenPreviouslySynced(t *testing.T) {
	f := newEngineFixture(t, withStoredData(models.TransportData{
		CacheGUID:      "stored-guid",
		Birthday:       "stored-birthday",
		GaiaID:         "g1",
		LastSyncedTime: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}))
	f.initialize(t)

	results := f.host.initializations()
	require.Len(t, results, 1)
	assert.False(t, results[0].firstTime)
}

func TestFacade_InterestedTopicsFollowEnabledTypes(t *testing.T) {
	f := newEngineFixture(t)
	f.initialize(t)

	var topicsAtReady []models.Topic
	runOn(t, f.frontend, func() {
		f.facade.ConfigureDataTypes(ConfigureParams{
			Reason:       models.ConfigureReasonReconfiguration,
			EnabledTypes: models.NewModelTypeSet(models.Bookmarks, models.Sessions, models.UserEvents, models.ProxyTabs),
			ToDownload:   models.NewModelTypeSet(models.Bookmarks),
			FeatureState: models.SyncFeatureOn,
			Ready: func(models.ModelTypeSet, models.ModelTypeSet) {
				// Subscription must already be in place when the ready
				// callback fires.
				topicsAtReady = f.invalidator.lastTopics()
			},
		})
	})
	settle(t, f.frontend, f.syncRunner)

	// Commit-only and proxy types never subscribe; sessions does while the
	// policy allows it.
	assert.Equal(t, []models.Topic{"BOOKMARK", "SESSION"}, topicsAtReady)
	assert.Equal(t, []models.Topic{"BOOKMARK", "SESSION"}, f.invalidator.lastTopics())

	runOn(t, f.frontend, func() {
		f.facade.SetInvalidationsForSessionsEnabled(false)
	})
	assert.Equal(t, []models.Topic{"BOOKMARK"}, f.invalidator.lastTopics())
}

func TestFacade_TopicsNarrowedToWalletTypesOnNewTransport(t *testing.T) {
	f := newEngineFixture(t, withFeatures(config.Features{
		SendInterestedDataTypes: true,
		UseSyncInvalidations:    true,
	}))
	f.initialize(t)

	runOn(t, f.frontend, func() {
		f.facade.ConfigureDataTypes(ConfigureParams{
			Reason:       models.ConfigureReasonReconfiguration,
			EnabledTypes: models.NewModelTypeSet(models.Bookmarks, models.Sessions, models.AutofillWalletData),
			ToDownload:   models.NewModelTypeSet(models.Bookmarks),
			FeatureState: models.SyncFeatureOn,
			Ready:        func(models.ModelTypeSet, models.ModelTypeSet) {},
		})
	})
	settle(t, f.frontend, f.syncRunner)

	// General types moved to the newer transport; only the legacy-exempt
	// wallet types remain on this channel.
	assert.Equal(t, []models.Topic{"AUTOFILL_WALLET"}, f.invalidator.lastTopics())
}

func TestFacade_OneShotHandshakeWhenFullyMigrated(t *testing.T) {
	f := newEngineFixture(t, withFeatures(config.Features{
		SendInterestedDataTypes:               true,
		UseSyncInvalidations:                  true,
		UseSyncInvalidationsForWalletAndOffer: true,
	}))
	f.initialize(t)

	actions := f.invalidator.actionLog()
	require.GreaterOrEqual(t, len(actions), 3)
	// Register with zero interested topics and immediately unregister: a
	// subscription-state migration, not a steady-state behavior.
	assert.Equal(t, []string{"register", "update:0", "unregister"}, actions[:3])
}

func TestFacade_SyncCycleCompletedPersistsAndForwards(t *testing.T) {
	f := newEngineFixture(t)
	f.initialize(t)

	before := time.Now()
	pollFinish := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	runOn(t, f.syncRunner, func() {
		f.backend.OnSyncCycleCompleted(models.SyncCycleSnapshot{
			NumSuccessfulCommits: 3,
			PollFinishTime:       pollFinish,
			PollInterval:         30 * time.Minute,
			BagOfChips:           "fresh-chips",
		})
	})
	settle(t, f.frontend, f.syncRunner)

	snapshots := f.host.cycleSnapshots()
	require.Len(t, snapshots, 1)
	assert.Equal(t, 3, snapshots[0].NumSuccessfulCommits)

	snap := f.store.snapshot()
	// last_synced is wall-clock now, not the snapshot's own time.
	assert.False(t, snap.LastSyncedTime.Before(before))
	assert.Equal(t, pollFinish, snap.LastPollTime)
	assert.Equal(t, 30*time.Minute, snap.PollInterval)
	assert.Equal(t, "fresh-chips", snap.BagOfChips)
}

func TestFacade_ZeroPollIntervalNotPersisted(t *testing.T) {
	f := newEngineFixture(t)
	f.initialize(t)

	runOn(t, f.syncRunner, func() {
		f.backend.OnSyncCycleCompleted(models.SyncCycleSnapshot{
			PollInterval: 0,
			BagOfChips:   "chips",
		})
	})
	settle(t, f.frontend, f.syncRunner)

	// A zero interval is a protocol invariant violation and never lands in
	// the store; no poll finish time means last_poll stays untouched too.
	snap := f.store.snapshot()
	assert.Zero(t, snap.PollInterval)
	assert.True(t, snap.LastPollTime.IsZero())
}

func TestFacade_CycleCompletedBeforeInitializationIgnored(t *testing.T) {
	f := newEngineFixture(t)

	runOn(t, f.syncRunner, func() {
		f.backend.OnSyncCycleCompleted(models.SyncCycleSnapshot{PollInterval: time.Hour})
	})
	settle(t, f.frontend, f.syncRunner)

	assert.Equal(t, 0, f.host.callCount())
	assert.True(t, f.store.snapshot().LastSyncedTime.IsZero())
}

func TestFacade_NoHostCallbacksAfterStopSyncingForShutdown(t *testing.T) {
	f := newEngineFixture(t)
	f.initialize(t)
	callsBefore := f.host.callCount()

	runOn(t, f.frontend, func() {
		f.facade.StopSyncingForShutdown()
	})

	// Backend work already in flight still runs and attempts to call back;
	// none of it may reach the host.
	runOn(t, f.syncRunner, func() {
		f.backend.OnSyncCycleCompleted(models.SyncCycleSnapshot{PollInterval: time.Hour})
		f.backend.OnConnectionStatusChange(models.ConnectionOK)
		f.backend.OnActionableError(models.SyncProtocolError{ErrorType: "THROTTLED"})
	})
	settle(t, f.frontend, f.syncRunner)

	assert.Equal(t, callsBefore, f.host.callCount())
	assert.True(t, f.backend.stopSignal.Signaled())
}

func TestFacade_ShutdownUnregistersAndStopsSyncSequence(t *testing.T) {
	f := newEngineFixture(t)
	f.initialize(t)

	runOn(t, f.frontend, func() {
		f.facade.StopSyncingForShutdown()
		f.facade.Shutdown(context.Background(), models.ShutdownStopSync)
	})
	f.syncRunner.Join()

	actions := f.invalidator.actionLog()
	assert.Contains(t, actions, "unregister")
	// Stop-sync keeps local state.
	assert.Equal(t, "stored-guid", f.store.snapshot().CacheGUID)
	assert.Equal(t, 1, f.manager.shutdowns())
	assert.Equal(t, BackendDestroyed, f.backend.State())
}

func TestFacade_BrowserShutdownSkipsEmptyTopicUpdate(t *testing.T) {
	f := newEngineFixture(t)
	f.initialize(t)
	updatesBefore := len(f.invalidator.actionLog())

	runOn(t, f.frontend, func() {
		f.facade.StopSyncingForShutdown()
		f.facade.Shutdown(context.Background(), models.ShutdownBrowser)
	})
	f.syncRunner.Join()

	actions := f.invalidator.actionLog()
	assert.Contains(t, actions, "unregister")
	for _, a := range actions[updatesBefore:] {
		assert.NotEqual(t, "update:0", a, "browser shutdown must skip the empty-topic round-trip")
	}
}

func TestFacade_BackedOffTypesChangeDetection(t *testing.T) {
	f := newEngineFixture(t)
	f.initialize(t)

	status := models.SyncStatus{
		SyncID:         "sync-1",
		BackedOffTypes: models.NewModelTypeSet(models.Bookmarks),
	}
	runOn(t, f.syncRunner, func() {
		f.backend.OnSyncStatusChanged(status)
	})
	settle(t, f.frontend, f.syncRunner)
	assert.Equal(t, 1, f.host.backedOffChanges())

	// Same backed-off set again: cached status updates, no new callback.
	runOn(t, f.syncRunner, func() {
		f.backend.OnSyncStatusChanged(status)
	})
	settle(t, f.frontend, f.syncRunner)
	assert.Equal(t, 1, f.host.backedOffChanges())

	var cached models.SyncStatus
	runOn(t, f.frontend, func() {
		cached = f.facade.DetailedStatus()
	})
	assert.Equal(t, status, cached)
}

func TestFacade_ProtocolEventForwarding(t *testing.T) {
	f := newEngineFixture(t)
	f.initialize(t)

	event := func(id string) ProtocolEvent {
		return ProtocolEvent{Time: time.Now(), Type: "GET_UPDATES", Details: id}
	}

	// Not subscribed: events buffer silently.
	runOn(t, f.syncRunner, func() {
		f.backend.OnProtocolEvent(event("e1"))
	})
	settle(t, f.frontend, f.syncRunner)
	assert.Equal(t, 0, f.host.callCount()-len(f.host.initializations()))

	runOn(t, f.frontend, func() {
		f.facade.RequestBufferedProtocolEventsAndEnableForwarding()
	})
	settle(t, f.frontend, f.syncRunner)

	runOn(t, f.syncRunner, func() {
		f.backend.OnProtocolEvent(event("e2"))
	})
	settle(t, f.frontend, f.syncRunner)

	f.host.mu.Lock()
	got := len(f.host.events)
	f.host.mu.Unlock()
	assert.Equal(t, 2, got, "buffered event replayed plus live event")

	runOn(t, f.frontend, func() {
		f.facade.DisableProtocolEventForwarding()
	})
	settle(t, f.frontend, f.syncRunner)
	runOn(t, f.syncRunner, func() {
		f.backend.OnProtocolEvent(event("e3"))
	})
	settle(t, f.frontend, f.syncRunner)

	f.host.mu.Lock()
	got = len(f.host.events)
	f.host.mu.Unlock()
	assert.Equal(t, 2, got)
}

func TestFacade_StartSyncingWithServerZeroPollBaseline(t *testing.T) {
	f := newEngineFixture(t)
	f.initialize(t)

	before := time.Now()
	runOn(t, f.frontend, func() {
		f.facade.StartSyncingWithServer(context.Background(), time.Time{})
	})
	settle(t, f.frontend, f.syncRunner)

	// An unknown poll baseline is treated as "a poll just happened".
	assert.False(t, f.store.snapshot().LastPollTime.Before(before))
	assert.Contains(t, f.rec.trace(), "start_syncing")
}

func TestFacade_TriggerRefreshReachesManager(t *testing.T) {
	f := newEngineFixture(t)
	f.initialize(t)

	runOn(t, f.frontend, func() {
		f.facade.TriggerRefresh(models.NewModelTypeSet(models.Bookmarks, models.Passwords))
	})
	settle(t, f.frontend, f.syncRunner)

	assert.Contains(t, f.rec.trace(), "refresh:"+models.NewModelTypeSet(models.Bookmarks, models.Passwords).String())
}

func TestFacade_HasUnsyncedItemsForTest(t *testing.T) {
	f := newEngineFixture(t)
	f.manager.unsynced = true
	f.initialize(t)

	assert.True(t, f.facade.HasUnsyncedItemsForTest())
}

func TestFacade_BootstrapTokenSettersWriteThrough(t *testing.T) {
	f := newEngineFixture(t)
	f.initialize(t)

	runOn(t, f.frontend, func() {
		require.NoError(t, f.facade.SetEncryptionBootstrapToken(context.Background(), "enc-token"))
		require.NoError(t, f.facade.SetKeystoreEncryptionBootstrapToken(context.Background(), "keystore-token"))
	})

	snap := f.store.snapshot()
	assert.Equal(t, "enc-token", snap.EncryptionBootstrapToken)
	assert.Equal(t, "keystore-token", snap.KeystoreEncryptionBootstrapToken)
}
