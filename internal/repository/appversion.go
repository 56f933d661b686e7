package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/service"
)

type AppVersionRepository struct {
	db *pgxpool.Pool
}

func NewAppVersionRepository(db *pgxpool.Pool) service.AppVersionRepository {
	return &AppVersionRepository{
		db: db,
	}
}

// Get возвращает запись о версии приложения для платформы
func (r *AppVersionRepository) Get(ctx context.Context, platform string) (*models.AppVersion, error) {
	query := `
		SELECT platform, min_version, latest_version, download_url, release_notes, updated_at
		FROM app_version
		WHERE platform = $1;
	`
	version := &models.AppVersion{}
	err := r.db.QueryRow(ctx, query, platform).Scan(
		&version.Platform,
		&version.MinVersion,
		&version.LatestVersion,
		&version.DownloadURL,
		&version.ReleaseNotes,
		&version.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrAppVersionNotFound
		}
		return nil, &service.StoreError{Op: "fetch app version", Err: err}
	}
	return version, nil
}

// Set поднимает минимальную и последнюю версию платформы до указанной
func (r *AppVersionRepository) Set(ctx context.Context, platform, version string, updatedAt time.Time) (*models.AppVersion, error) {
	query := `
		UPDATE app_version SET
			min_version = $1,
			latest_version = $1,
			updated_at = $2
		WHERE platform = $3
		RETURNING platform, min_version, latest_version, download_url, release_notes, updated_at;
	`
	updated := &models.AppVersion{}
	err := r.db.QueryRow(ctx, query, version, updatedAt, platform).Scan(
		&updated.Platform,
		&updated.MinVersion,
		&updated.LatestVersion,
		&updated.DownloadURL,
		&updated.ReleaseNotes,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrAppVersionNotFound
		}
		return nil, &service.StoreError{Op: "update app version", Err: err}
	}
	return updated, nil
}
