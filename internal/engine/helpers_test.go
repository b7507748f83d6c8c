package engine

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-sync-engine/internal/config"
	"github.com/MKhiriev/go-sync-engine/internal/crypto"
	"github.com/MKhiriev/go-sync-engine/internal/logger"
	"github.com/MKhiriev/go-sync-engine/internal/sequence"
	"github.com/MKhiriev/go-sync-engine/models"
)

// runOn posts fn to r and waits for it to run. Tests drive facade methods
// through this so every frontend-affine call really happens on the
// frontend sequence.
func runOn(t *testing.T, r *sequence.Runner, fn func()) {
	t.Helper()
	done := make(chan struct{})
	if !r.Post(func() {
		fn()
		close(done)
	}) {
		t.Fatalf("post to stopped runner %q", r.Name())
	}
	<-done
}

// settle drains a few rounds of sync->frontend->sync hops so posted
// callback chains finish before assertions run.
func settle(t *testing.T, frontend, syncRunner *sequence.Runner) {
	t.Helper()
	for i := 0; i < 4; i++ {
		runOn(t, syncRunner, func() {})
		runOn(t, frontend, func() {})
	}
}

// fakeStore is an in-memory TransportDataStore with the same defaulting
// behavior as the SQLite-backed one.
type fakeStore struct {
	mu         sync.Mutex
	data       models.TransportData
	clearCalls int
}

func newFakeStore(data models.TransportData) *fakeStore {
	return &fakeStore{data: data}
}

func (s *fakeStore) snapshot() models.TransportData {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.data
	out.InvalidationVersions = make(map[models.ModelType]int64, len(s.data.InvalidationVersions))
	for k, v := range s.data.InvalidationVersions {
		out.InvalidationVersions[k] = v
	}
	return out
}

func (s *fakeStore) Load(context.Context) (models.TransportData, error) {
	out := s.snapshot()
	if out.PollInterval == 0 {
		out.PollInterval = models.DefaultPollInterval
	}
	return out, nil
}

func (s *fakeStore) SetCacheGUID(_ context.Context, v string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.CacheGUID = v
	return nil
}

func (s *fakeStore) SetBirthday(_ context.Context, v string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Birthday = v
	return nil
}

func (s *fakeStore) SetBagOfChips(_ context.Context, v string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.BagOfChips = v
	return nil
}

func (s *fakeStore) SetGaiaID(_ context.Context, v string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.GaiaID = v
	return nil
}

func (s *fakeStore) SetEncryptionBootstrapToken(_ context.Context, v string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.EncryptionBootstrapToken = v
	return nil
}

func (s *fakeStore) SetKeystoreEncryptionBootstrapToken(_ context.Context, v string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.KeystoreEncryptionBootstrapToken = v
	return nil
}

func (s *fakeStore) SetPollInterval(_ context.Context, v time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.PollInterval = v
	return nil
}

func (s *fakeStore) SetLastSyncedTime(_ context.Context, v time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.LastSyncedTime = v
	return nil
}

func (s *fakeStore) SetLastPollTime(_ context.Context, v time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.LastPollTime = v
	return nil
}

func (s *fakeStore) UpdateInvalidationVersions(_ context.Context, versions map[models.ModelType]int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.InvalidationVersions = make(map[models.ModelType]int64, len(versions))
	for k, v := range versions {
		s.data.InvalidationVersions[k] = v
	}
	return nil
}

func (s *fakeStore) ClearAllExceptBootstrapTokens(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = models.TransportData{
		EncryptionBootstrapToken:         s.data.EncryptionBootstrapToken,
		KeystoreEncryptionBootstrapToken: s.data.KeystoreEncryptionBootstrapToken,
	}
	s.clearCalls++
	return nil
}

func (s *fakeStore) clearCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearCalls
}

// callRecorder collects an ordered trace of calls shared between the fake
// manager and the fake connector, so cross-object ordering is assertable.
type callRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *callRecorder) add(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *callRecorder) trace() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

type recordingConnector struct {
	rec *callRecorder
}

func (c *recordingConnector) ConnectDataType(t models.ModelType) {
	c.rec.add("connect:" + t.String())
}

func (c *recordingConnector) DisconnectDataType(t models.ModelType) {
	c.rec.add("disconnect:" + t.String())
}

func (c *recordingConnector) ConnectProxyType(t models.ModelType) {
	c.rec.add("connect_proxy:" + t.String())
}

func (c *recordingConnector) DisconnectProxyType(t models.ModelType) {
	c.rec.add("disconnect_proxy:" + t.String())
}

type fakeEncryption struct {
	ok bool
}

func (e *fakeEncryption) Init() bool                     { return e.ok }
func (e *fakeEncryption) SetEncryptionPassphrase(string) {}
func (e *fakeEncryption) SetDecryptionPassphrase(string) {}

type forwardedInvalidation struct {
	t   models.ModelType
	inv models.Invalidation
}

// fakeSyncManager is a stateful engine double. Init reports completion to
// the observer inline (same sequence, matching the real contract), and
// ConfigureSyncer marks the requested types minus failTypes as having
// finished their initial sync before invoking the ready closure.
type fakeSyncManager struct {
	mu sync.Mutex

	rec       *callRecorder
	connector ModelTypeConnector

	initArgs         ManagerInitArgs
	initSuccess      bool
	initialSyncEnded models.ModelTypeSet
	failTypes        models.ModelTypeSet
	encryption       EncryptionHandler
	birthday         string
	bagOfChips       string

	configureReasons []models.ConfigureReason
	invalidations    []forwardedInvalidation
	shutdownCalls    int
	unsynced         bool
}

func newFakeSyncManager(rec *callRecorder) *fakeSyncManager {
	return &fakeSyncManager{
		rec:         rec,
		connector:   &recordingConnector{rec: rec},
		initSuccess: true,
		encryption:  &fakeEncryption{ok: true},
		birthday:    "server-birthday",
		bagOfChips:  "server-chips",
	}
}

func (m *fakeSyncManager) Init(args ManagerInitArgs) {
	m.mu.Lock()
	m.initArgs = args
	success := m.initSuccess
	m.mu.Unlock()
	m.rec.add("init")
	args.Observer.OnInitializationComplete(success)
}

func (m *fakeSyncManager) ConfigureSyncer(reason models.ConfigureReason, toDownload models.ModelTypeSet, _ models.SyncFeatureState, ready func()) {
	m.mu.Lock()
	m.configureReasons = append(m.configureReasons, reason)
	m.initialSyncEnded = m.initialSyncEnded.Union(toDownload.Difference(m.failTypes))
	m.mu.Unlock()
	m.rec.add(fmt.Sprintf("configure:%s:%s", reason, toDownload))
	ready()
}

func (m *fakeSyncManager) StartConfiguration() { m.rec.add("start_configuration") }

func (m *fakeSyncManager) StartSyncingNormally(time.Time) { m.rec.add("start_syncing") }

func (m *fakeSyncManager) UpdateCredentials(models.SyncCredentials) { m.rec.add("update_credentials") }

func (m *fakeSyncManager) InvalidateCredentials() { m.rec.add("invalidate_credentials") }

func (m *fakeSyncManager) RefreshTypes(types models.ModelTypeSet) {
	m.rec.add("refresh:" + types.String())
}

func (m *fakeSyncManager) OnIncomingInvalidation(t models.ModelType, inv models.Invalidation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidations = append(m.invalidations, forwardedInvalidation{t: t, inv: inv})
}

func (m *fakeSyncManager) UpdateActiveDeviceInfo(count int, _ []string) {
	m.rec.add(fmt.Sprintf("active_devices:%d", count))
}

func (m *fakeSyncManager) InitialSyncEndedTypes() models.ModelTypeSet {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialSyncEnded
}

func (m *fakeSyncManager) Birthday() string { return m.birthday }

func (m *fakeSyncManager) BagOfChips() string { return m.bagOfChips }

func (m *fakeSyncManager) GetEncryptionHandler() EncryptionHandler { return m.encryption }

func (m *fakeSyncManager) GetModelTypeConnector() ModelTypeConnector { return m.connector }

func (m *fakeSyncManager) HasUnsyncedItems() bool { return m.unsynced }

func (m *fakeSyncManager) ShutdownOnSyncSequence() {
	m.mu.Lock()
	m.shutdownCalls++
	m.mu.Unlock()
	m.rec.add("manager_shutdown")
}

func (m *fakeSyncManager) forwarded() []forwardedInvalidation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]forwardedInvalidation(nil), m.invalidations...)
}

func (m *fakeSyncManager) shutdowns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shutdownCalls
}

type fixedManagerFactory struct {
	manager SyncManager
}

func (f *fixedManagerFactory) CreateSyncManager(string) SyncManager { return f.manager }

// recordingHost captures upward callbacks; all arrive on the frontend
// sequence but tests read from their own goroutine.
type initResult struct {
	types     models.ModelTypeSet
	success   bool
	firstTime bool
}

type recordingHost struct {
	mu            sync.Mutex
	initResults   []initResult
	snapshots     []models.SyncCycleSnapshot
	statuses      []models.ConnectionStatus
	errors        []models.SyncProtocolError
	migrations    []models.ModelTypeSet
	events        []ProtocolEvent
	backedOff     int
	totalCalls    int
}

func (h *recordingHost) OnEngineInitialized(types models.ModelTypeSet, success, firstTime bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.initResults = append(h.initResults, initResult{types: types, success: success, firstTime: firstTime})
	h.totalCalls++
}

func (h *recordingHost) OnSyncCycleCompleted(snapshot models.SyncCycleSnapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.snapshots = append(h.snapshots, snapshot)
	h.totalCalls++
}

func (h *recordingHost) OnActionableError(e models.SyncProtocolError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors = append(h.errors, e)
	h.totalCalls++
}

func (h *recordingHost) OnMigrationNeededForTypes(types models.ModelTypeSet) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.migrations = append(h.migrations, types)
	h.totalCalls++
}

func (h *recordingHost) OnConnectionStatusChange(status models.ConnectionStatus) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
	h.totalCalls++
}

func (h *recordingHost) OnProtocolEvent(event ProtocolEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
	h.totalCalls++
}

func (h *recordingHost) OnBackedOffTypesChanged() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.backedOff++
	h.totalCalls++
}

func (h *recordingHost) initializations() []initResult {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]initResult(nil), h.initResults...)
}

func (h *recordingHost) cycleSnapshots() []models.SyncCycleSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]models.SyncCycleSnapshot(nil), h.snapshots...)
}

func (h *recordingHost) callCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.totalCalls
}

func (h *recordingHost) backedOffChanges() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.backedOff
}

// fakeInvalidator records the registration lifecycle and every topic set
// pushed to it, in order.
type fakeInvalidator struct {
	mu           sync.Mutex
	actions      []string
	topicUpdates [][]models.Topic
}

func (i *fakeInvalidator) RegisterHandler(InvalidationHandler) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.actions = append(i.actions, "register")
}

func (i *fakeInvalidator) UpdateInterestedTopics(_ InvalidationHandler, topics []models.Topic) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.actions = append(i.actions, fmt.Sprintf("update:%d", len(topics)))
	i.topicUpdates = append(i.topicUpdates, append([]models.Topic(nil), topics...))
	return true
}

func (i *fakeInvalidator) UnregisterHandler(InvalidationHandler) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.actions = append(i.actions, "unregister")
}

func (i *fakeInvalidator) actionLog() []string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]string(nil), i.actions...)
}

func (i *fakeInvalidator) lastTopics() []models.Topic {
	i.mu.Lock()
	defer i.mu.Unlock()
	if len(i.topicUpdates) == 0 {
		return nil
	}
	return i.topicUpdates[len(i.topicUpdates)-1]
}

// engineFixture wires a full facade+backend pair over fakes, on real
// sequence runners.
type engineFixture struct {
	frontend   *sequence.Runner
	syncRunner *sequence.Runner

	cfg         *config.EngineConfig
	store       *fakeStore
	rec         *callRecorder
	manager     *fakeSyncManager
	host        *recordingHost
	invalidator *fakeInvalidator

	backend *Backend
	facade  *EngineFacade

	clearNotifications int
	clearMu            sync.Mutex
}

type fixtureOption func(*engineFixture)

func withFeatures(features config.Features) fixtureOption {
	return func(f *engineFixture) {
		f.cfg.Features = features
	}
}

func withStoredData(data models.TransportData) fixtureOption {
	return func(f *engineFixture) {
		f.store = newFakeStore(data)
	}
}

func newEngineFixture(t *testing.T, opts ...fixtureOption) *engineFixture {
	t.Helper()

	log := logger.Nop()
	f := &engineFixture{
		frontend:   sequence.NewRunner("frontend", log),
		syncRunner: sequence.NewRunner("sync", log),
		cfg: &config.EngineConfig{
			Engine: config.Engine{
				DataDir:          t.TempDir(),
				LocalSyncBackend: true,
			},
		},
		store: newFakeStore(models.TransportData{
			CacheGUID: "stored-guid",
			Birthday:  "stored-birthday",
			GaiaID:    "g1",
		}),
		rec:         &callRecorder{},
		host:        &recordingHost{},
		invalidator: &fakeInvalidator{},
	}
	f.manager = newFakeSyncManager(f.rec)

	for _, opt := range opts {
		opt(f)
	}

	f.backend = NewBackend("test-engine", f.syncRunner, f.cfg, crypto.NewKeybagService(), log)
	f.facade = NewEngineFacade("test-engine", f.frontend, f.syncRunner, f.backend, f.cfg, f.store, f.invalidator, nil, func() {
		f.clearMu.Lock()
		f.clearNotifications++
		f.clearMu.Unlock()
	}, log)

	t.Cleanup(func() {
		f.frontend.Stop()
		f.syncRunner.Stop()
		f.frontend.Join()
		f.syncRunner.Join()
	})

	return f
}

func (f *engineFixture) initParams() InitParams {
	return InitParams{
		Host:                f.host,
		AuthenticatedGaiaID: "g1",
		Credentials:         models.SyncCredentials{Email: "user@example.com", AccessToken: "token"},
		InvalidatorClientID: "client-1",
		SyncManagerFactory:  &fixedManagerFactory{manager: f.manager},
	}
}

// initialize runs facade.Initialize on the frontend sequence and settles
// both sequences.
func (f *engineFixture) initialize(t *testing.T) {
	t.Helper()
	var err error
	runOn(t, f.frontend, func() {
		err = f.facade.Initialize(context.Background(), f.initParams())
	})
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	settle(t, f.frontend, f.syncRunner)
}

func (f *engineFixture) clearedCount() int {
	f.clearMu.Lock()
	defer f.clearMu.Unlock()
	return f.clearNotifications
}
