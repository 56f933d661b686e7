package service

//go:generate mockgen -source=appversion.go -destination=mock_appversion_test.go -package=service -exclude_interfaces=AppVersionService

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Поддерживаемые платформы
const (
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
)

// Версия-заглушка, заставляющая клиентов обновиться, когда запись недоступна.
// Нельзя отдавать 0.0.0 - это разрешило бы старые сборки.
const failClosedVersion = "99.0.0"

// VersionGate - ответ версионного гейта для мобильного клиента
type VersionGate struct {
	MinVersion    string  `json:"min_version"`
	LatestVersion string  `json:"latest_version"`
	ForceUpdate   bool    `json:"force_update"`
	DownloadURL   *string `json:"download_url"`
	ReleaseNotes  *string `json:"release_notes"`
}

// AppVersionRepository определяет контракт для работы с бд версий приложения
type AppVersionRepository interface {
	Get(ctx context.Context, platform string) (*models.AppVersion, error)
	Set(ctx context.Context, platform, version string, updatedAt time.Time) (*models.AppVersion, error)
}

// AppVersionService определяет контракт версионного гейта приложения
type AppVersionService interface {
	// GetVersionGate возвращает гейт для платформы; при недоступной записи
	// отдаёт fail-closed заглушку вместо ошибки
	GetVersionGate(ctx context.Context, platform string) (*VersionGate, error)
	SetVersion(ctx context.Context, platform, version string) (*models.AppVersion, error)
}

type appVersionService struct {
	repo   AppVersionRepository
	logger *logrus.Logger
	clock  clockwork.Clock
}

func NewAppVersionService(repo AppVersionRepository, logger *logrus.Logger, clock clockwork.Clock) AppVersionService {
	return &appVersionService{
		repo:   repo,
		logger: logger,
		clock:  clock,
	}
}

func (s *appVersionService) GetVersionGate(ctx context.Context, platform string) (*VersionGate, error) {
	platform = strings.ToLower(platform)
	if platform == "" {
		platform = PlatformAndroid
	}
	if platform != PlatformAndroid && platform != PlatformIOS {
		return nil, &ValidationError{Reason: "invalid platform. Use android or ios"}
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":  "appversion",
		"method":   "GetVersionGate",
		"platform": platform,
	})

	version, err := s.repo.Get(ctx, platform)
	if err != nil {
		if !errors.Is(err, ErrAppVersionNotFound) {
			log.WithError(err).Warn("Failed to fetch app version row, forcing update")
		} else {
			log.Warn("No app version row for platform, forcing update")
		}
		notes := "Please update the app. Version check could not be completed."
		return &VersionGate{
			MinVersion:    failClosedVersion,
			LatestVersion: failClosedVersion,
			ForceUpdate:   true,
			ReleaseNotes:  &notes,
		}, nil
	}

	// Работать разрешено только последней версии: min поднимается до latest
	gate := &VersionGate{
		MinVersion:    version.LatestVersion,
		LatestVersion: version.LatestVersion,
		ForceUpdate:   true,
		DownloadURL:   version.DownloadURL,
		ReleaseNotes:  version.ReleaseNotes,
	}
	log.WithField("latest_version", gate.LatestVersion).Info("Version gate resolved")
	return gate, nil
}

func (s *appVersionService) SetVersion(ctx context.Context, platform, version string) (*models.AppVersion, error) {
	version = strings.TrimSpace(version)
	if version == "" {
		return nil, &ValidationError{Reason: `body must include "version" (e.g. "1.2.0")`}
	}
	if platform != PlatformIOS {
		platform = PlatformAndroid
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":  "appversion",
		"method":   "SetVersion",
		"platform": platform,
		"version":  version,
	})

	updated, err := s.repo.Set(ctx, platform, version, s.clock.Now().UTC())
	if err != nil {
		log.WithError(err).Error("Failed to update app version")
		return nil, fmt.Errorf("service: could not update app version: %w", err)
	}

	log.Info("App version updated")
	return updated, nil
}
