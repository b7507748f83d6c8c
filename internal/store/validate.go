package store

import "github.com/MKhiriev/go-sync-engine/models"

// ValidateTransportData decides whether persisted transport data may be
// reused for the given authenticated account. Checks run in fixed order:
// cache GUID emptiness, then birthday emptiness, then account identity. A
// partially-populated record is never reusable; stale progress markers
// replayed against a fresh server-side birthday are a protocol violation.
func ValidateTransportData(data models.TransportData, authenticatedGaiaID string) models.ValidationResult {
	if data.CacheGUID == "" {
		return models.TransportDataEmptyCacheGUID
	}
	if data.Birthday == "" {
		return models.TransportDataEmptyBirthday
	}
	if data.GaiaID != authenticatedGaiaID {
		return models.TransportDataGaiaIDMismatch
	}
	return models.TransportDataValid
}
