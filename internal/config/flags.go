package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-service-url sync service endpoint URL
//	-data-dir local sync data directory
//	-d database DSN (SQLite file path)
//	-local-sync-backend enable the loopback local sync backend
//	-poll-interval poll interval override (e.g., "4h", "30m")
//	-c/-config json file path with configs
//	-send-interested-data-types publish interested types to the invalidator
//	-use-sync-invalidations route general types through the new transport
//	-use-sync-invalidations-wallet-offer move wallet data/offers as well
//	-skip-invalidation-version-check forward invalidations regardless of version
func ParseFlags() *StructuredConfig {
	var serviceURL string
	var dataDir string
	var databaseDSN string
	var localSyncBackend bool
	var pollInterval time.Duration
	var jsonConfigPath string
	var sendInterestedDataTypes bool
	var useSyncInvalidations bool
	var useSyncInvalidationsWalletOffer bool
	var skipInvalidationVersionCheck bool

	flag.StringVar(&serviceURL, "service-url", "", "Sync service endpoint URL")
	flag.StringVar(&dataDir, "data-dir", "", "Local sync data directory")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.BoolVar(&localSyncBackend, "local-sync-backend", false, "Enable loopback local sync backend")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Poll interval override (e.g., 4h, 30m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.BoolVar(&sendInterestedDataTypes, "send-interested-data-types", false, "Publish interested types to the invalidator")
	flag.BoolVar(&useSyncInvalidations, "use-sync-invalidations", false, "Route general types through the new invalidations transport")
	flag.BoolVar(&useSyncInvalidationsWalletOffer, "use-sync-invalidations-wallet-offer", false, "Move wallet data/offers to the new transport")
	flag.BoolVar(&skipInvalidationVersionCheck, "skip-invalidation-version-check", false, "Forward invalidations regardless of version")

	flag.Parse()

	return &StructuredConfig{
		Engine: Engine{
			ServiceURL:       serviceURL,
			DataDir:          dataDir,
			LocalSyncBackend: localSyncBackend,
			PollInterval:     pollInterval,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Features: Features{
			SendInterestedDataTypes:               sendInterestedDataTypes,
			UseSyncInvalidations:                  useSyncInvalidations,
			UseSyncInvalidationsForWalletAndOffer: useSyncInvalidationsWalletOffer,
			SkipInvalidationVersionCheck:          skipInvalidationVersionCheck,
		},
		JSONFilePath: jsonConfigPath,
	}
}
