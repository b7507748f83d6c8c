// Package store provides durable cross-restart persistence for the sync
// transport data (cache GUID, birthday, bag of chips, invalidation
// versions) and the startup validation that gates its reuse.
//
// The store is owned exclusively by the engine facade and only ever touched
// from the frontend sequence; the backend receives value copies and sends
// updates back as posted callbacks. Single-writer discipline throughout.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sync-engine/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TransportDataStore persists the per-profile sync transport data.
type TransportDataStore interface {
	// Load reads all fields. A missing record yields a zero TransportData
	// (not an error); a zero stored poll interval is defaulted to
	// models.DefaultPollInterval.
	Load(ctx context.Context) (models.TransportData, error)

	SetCacheGUID(ctx context.Context, cacheGUID string) error
	SetBirthday(ctx context.Context, birthday string) error
	SetBagOfChips(ctx context.Context, bagOfChips string) error
	SetGaiaID(ctx context.Context, gaiaID string) error
	SetEncryptionBootstrapToken(ctx context.Context, token string) error
	SetKeystoreEncryptionBootstrapToken(ctx context.Context, token string) error
	SetPollInterval(ctx context.Context, interval time.Duration) error
	SetLastSyncedTime(ctx context.Context, at time.Time) error
	SetLastPollTime(ctx context.Context, at time.Time) error

	// UpdateInvalidationVersions overwrites the whole persisted version
	// map; last call wins, which avoids restart races between partially
	// written batches.
	UpdateInvalidationVersions(ctx context.Context, versions map[models.ModelType]int64) error

	// ClearAllExceptBootstrapTokens wipes every field except the two
	// encryption bootstrap tokens. Losing those would force a full
	// re-encryption-key exchange with the server, a much more expensive
	// recovery than a cold sync.
	ClearAllExceptBootstrapTokens(ctx context.Context) error
}
