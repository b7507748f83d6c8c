// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sync-engine/internal/logger"
	"github.com/MKhiriev/go-sync-engine/models"
)

// transportDataRepository is the SQLite-backed implementation of
// [TransportDataStore]. One repository serves one profile; the profile id
// keys both tables.
type transportDataRepository struct {
	db        *DB
	profileID string
	logger    *logger.Logger
}

func NewTransportDataRepository(db *DB, profileID string, log *logger.Logger) TransportDataStore {
	return &transportDataRepository{
		db:        db,
		profileID: profileID,
		logger:    log,
	}
}

var transportDataColumns = []string{
	"cache_guid",
	"birthday",
	"bag_of_chips",
	"gaia_id",
	"encryption_bootstrap_token",
	"keystore_encryption_bootstrap_token",
	"poll_interval_ns",
	"last_synced_at",
	"last_poll_at",
}

func (r *transportDataRepository) Load(ctx context.Context) (models.TransportData, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(transportDataColumns...).
		From("transport_data").
		Where(sq.Eq{"profile_id": r.profileID}).
		ToSql()
	if err != nil {
		return models.TransportData{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		data           models.TransportData
		pollIntervalNs int64
		lastSyncedAt   sql.NullTime
		lastPollAt     sql.NullTime
	)
	row := r.db.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(
		&data.CacheGUID,
		&data.Birthday,
		&data.BagOfChips,
		&data.GaiaID,
		&data.EncryptionBootstrapToken,
		&data.KeystoreEncryptionBootstrapToken,
		&pollIntervalNs,
		&lastSyncedAt,
		&lastPollAt,
	)
	if scanErr != nil && !errors.Is(scanErr, sql.ErrNoRows) {
		log.Err(scanErr).
			Str("func", "transportDataRepository.Load").
			Str("profile_id", r.profileID).
			Msg("failed to scan transport data row")
		return models.TransportData{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	data.PollInterval = time.Duration(pollIntervalNs)
	if data.PollInterval == 0 {
		data.PollInterval = models.DefaultPollInterval
	}
	if lastSyncedAt.Valid {
		data.LastSyncedTime = lastSyncedAt.Time
	}
	if lastPollAt.Valid {
		data.LastPollTime = lastPollAt.Time
	}

	versions, err := r.loadInvalidationVersions(ctx)
	if err != nil {
		return models.TransportData{}, err
	}
	data.InvalidationVersions = versions

	return data, nil
}

func (r *transportDataRepository) loadInvalidationVersions(ctx context.Context) (map[models.ModelType]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("topic", "version").
		From("invalidation_versions").
		Where(sq.Eq{"profile_id": r.profileID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "transportDataRepository.loadInvalidationVersions").
			Str("profile_id", r.profileID).
			Msg("failed to query invalidation versions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	versions := make(map[models.ModelType]int64)
	for rows.Next() {
		var topic string
		var version int64
		if scanErr := rows.Scan(&topic, &version); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		// Rows for topics this client version no longer knows are kept on
		// disk but not surfaced.
		if mt, ok := models.TopicToModelType(models.Topic(topic)); ok {
			versions[mt] = version
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return versions, nil
}

// setField upserts a single column of the profile's transport-data row.
func (r *transportDataRepository) setField(ctx context.Context, column string, value any) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("transport_data").
		Columns("profile_id", column).
		Values(r.profileID, value).
		Suffix("ON CONFLICT(profile_id) DO UPDATE SET " + column + " = excluded." + column).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "transportDataRepository.setField").
			Str("profile_id", r.profileID).
			Str("column", column).
			Msg("failed to upsert transport data field")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *transportDataRepository) SetCacheGUID(ctx context.Context, cacheGUID string) error {
	return r.setField(ctx, "cache_guid", cacheGUID)
}

func (r *transportDataRepository) SetBirthday(ctx context.Context, birthday string) error {
	return r.setField(ctx, "birthday", birthday)
}

func (r *transportDataRepository) SetBagOfChips(ctx context.Context, bagOfChips string) error {
	return r.setField(ctx, "bag_of_chips", bagOfChips)
}

func (r *transportDataRepository) SetGaiaID(ctx context.Context, gaiaID string) error {
	return r.setField(ctx, "gaia_id", gaiaID)
}

func (r *transportDataRepository) SetEncryptionBootstrapToken(ctx context.Context, token string) error {
	return r.setField(ctx, "encryption_bootstrap_token", token)
}

func (r *transportDataRepository) SetKeystoreEncryptionBootstrapToken(ctx context.Context, token string) error {
	return r.setField(ctx, "keystore_encryption_bootstrap_token", token)
}

func (r *transportDataRepository) SetPollInterval(ctx context.Context, interval time.Duration) error {
	return r.setField(ctx, "poll_interval_ns", int64(interval))
}

func (r *transportDataRepository) SetLastSyncedTime(ctx context.Context, at time.Time) error {
	return r.setField(ctx, "last_synced_at", at)
}

func (r *transportDataRepository) SetLastPollTime(ctx context.Context, at time.Time) error {
	return r.setField(ctx, "last_poll_at", at)
}

func (r *transportDataRepository) UpdateInvalidationVersions(ctx context.Context, versions map[models.ModelType]int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// Whole-map overwrite: delete first so types absent from the new map do
	// not linger.
	delQuery, delArgs, err := sq.Delete("invalidation_versions").
		Where(sq.Eq{"profile_id": r.profileID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, delQuery, delArgs...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for mt, version := range versions {
		insQuery, insArgs, err := sq.Insert("invalidation_versions").
			Columns("profile_id", "topic", "version").
			Values(r.profileID, mt.String(), version).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, insQuery, insArgs...); err != nil {
			log.Err(err).
				Str("func", "transportDataRepository.UpdateInvalidationVersions").
				Str("profile_id", r.profileID).
				Str("topic", mt.String()).
				Msg("failed to insert invalidation version")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *transportDataRepository) ClearAllExceptBootstrapTokens(ctx context.Context) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	updQuery, updArgs, err := sq.Update("transport_data").
		Set("cache_guid", "").
		Set("birthday", "").
		Set("bag_of_chips", "").
		Set("gaia_id", "").
		Set("poll_interval_ns", 0).
		Set("last_synced_at", nil).
		Set("last_poll_at", nil).
		Where(sq.Eq{"profile_id": r.profileID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, updQuery, updArgs...); err != nil {
		log.Err(err).
			Str("func", "transportDataRepository.ClearAllExceptBootstrapTokens").
			Str("profile_id", r.profileID).
			Msg("failed to clear transport data")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	delQuery, delArgs, err := sq.Delete("invalidation_versions").
		Where(sq.Eq{"profile_id": r.profileID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, delQuery, delArgs...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
