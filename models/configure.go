package models

// ConfigureReason explains why a (re)configuration cycle was requested.
type ConfigureReason int

const (
	ConfigureReasonUnknown ConfigureReason = iota
	// ConfigureReasonNewClient is used when no type has ever completed its
	// initial sync on this client.
	ConfigureReasonNewClient
	// ConfigureReasonNewlyEnabledDataType is used when sync is already
	// bootstrapped and additional types are being enabled.
	ConfigureReasonNewlyEnabledDataType
	ConfigureReasonReconfiguration
	ConfigureReasonMigration
)

func (r ConfigureReason) String() string {
	switch r {
	case ConfigureReasonNewClient:
		return "NEW_CLIENT"
	case ConfigureReasonNewlyEnabledDataType:
		return "NEWLY_ENABLED_DATA_TYPE"
	case ConfigureReasonReconfiguration:
		return "RECONFIGURATION"
	case ConfigureReasonMigration:
		return "MIGRATION"
	}
	return "UNKNOWN"
}

// ShutdownReason distinguishes the teardown flavors of the engine.
type ShutdownReason int

const (
	// ShutdownStopSync tears the engine down but keeps local state.
	ShutdownStopSync ShutdownReason = iota
	// ShutdownDisableSync additionally wipes local sync state.
	ShutdownDisableSync
	// ShutdownBrowser is process-wide shutdown; network round-trips are
	// skipped where safe.
	ShutdownBrowser
)

func (r ShutdownReason) String() string {
	switch r {
	case ShutdownStopSync:
		return "STOP_SYNC"
	case ShutdownDisableSync:
		return "DISABLE_SYNC"
	case ShutdownBrowser:
		return "BROWSER_SHUTDOWN"
	}
	return "UNKNOWN"
}

// SyncFeatureState tells the engine whether sync-the-feature (as opposed to
// sync-the-transport) is on for a configuration cycle.
type SyncFeatureState int

const (
	SyncFeatureInitializing SyncFeatureState = iota
	SyncFeatureOn
	SyncFeatureOff
)
