// synctool is the operational companion of the sync engine: it inspects and
// resets the persisted transport data of a profile without starting the
// engine itself.
//
// Usage:
//
//	synctool [flags] show     print the persisted transport data
//	synctool [flags] clear    wipe transport data, keeping bootstrap tokens
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/MKhiriev/go-sync-engine/internal/config"
	"github.com/MKhiriev/go-sync-engine/internal/logger"
	"github.com/MKhiriev/go-sync-engine/internal/store"
	"github.com/MKhiriev/go-sync-engine/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const defaultProfileID = "default"

func main() {
	printBuildInfo()

	log := logger.NewLogger("synctool")
	cfg, err := config.GetEngineConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := log.WithContext(context.Background())
	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repo := store.NewTransportDataRepository(db, defaultProfileID, log)

	command := "show"
	if args := flag.Args(); len(args) > 0 {
		command = args[0]
	}

	switch command {
	case "show":
		err = show(ctx, repo)
	case "clear":
		err = clear(ctx, repo)
	default:
		err = fmt.Errorf("unknown command %q", command)
	}
	if err != nil {
		log.Err(err).Str("command", command).Msg("command failed")
		os.Exit(1)
	}
}

func show(ctx context.Context, repo store.TransportDataStore) error {
	data, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading transport data: %w", err)
	}

	fmt.Printf("Cache GUID:    %s\n", orNA(data.CacheGUID))
	fmt.Printf("Birthday:      %s\n", orNA(data.Birthday))
	fmt.Printf("Gaia ID:       %s\n", orNA(data.GaiaID))
	fmt.Printf("Poll interval: %s\n", data.PollInterval)
	if data.LastSyncedTime.IsZero() {
		fmt.Println("Last synced:   never")
	} else {
		fmt.Printf("Last synced:   %s\n", data.LastSyncedTime.Format("2006-01-02 15:04:05 MST"))
	}
	if data.LastPollTime.IsZero() {
		fmt.Println("Last poll:     never")
	} else {
		fmt.Printf("Last poll:     %s\n", data.LastPollTime.Format("2006-01-02 15:04:05 MST"))
	}
	fmt.Printf("Bootstrap tokens: encryption=%t keystore=%t\n",
		data.EncryptionBootstrapToken != "",
		data.KeystoreEncryptionBootstrapToken != "")

	if len(data.InvalidationVersions) == 0 {
		fmt.Println("Invalidation versions: none")
		return nil
	}
	fmt.Println("Invalidation versions:")
	for _, t := range sortedTypes(data.InvalidationVersions) {
		fmt.Printf("  %-25s %d\n", t.String(), data.InvalidationVersions[t])
	}
	return nil
}

func clear(ctx context.Context, repo store.TransportDataStore) error {
	if err := repo.ClearAllExceptBootstrapTokens(ctx); err != nil {
		return fmt.Errorf("clearing transport data: %w", err)
	}
	fmt.Println("Transport data cleared (bootstrap tokens kept).")
	return nil
}

func sortedTypes(versions map[models.ModelType]int64) []models.ModelType {
	out := make([]models.ModelType, 0, len(versions))
	for t := range versions {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
