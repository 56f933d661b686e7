package service

//go:generate mockgen -source=weather.go -destination=mock_weather_test.go -package=service -exclude_interfaces=WeatherService

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/emergency_response_system/internal/config"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/observability"
	"github.com/sirupsen/logrus"
)

// Пороги генерации погодных предупреждений. Интерпретация данных нарочно
// примитивная: фиксированные пороги по нормализованному наблюдению.
const (
	extremeHeatFeelsLike = 42.0 // °C
	highHeatFeelsLike    = 36.0 // °C
	highWindSpeed        = 60.0 // км/ч
	heavyRainPerHour     = 10.0 // мм
	heavyRainChance      = 0.8  // 0..1
	lowVisibilityKm      = 1.0  // км

	alertTTL = 6 * time.Hour
)

// WeatherProvider определяет контракт поставщика погодных данных
type WeatherProvider interface {
	CurrentObservation(ctx context.Context, lat, lng float64) (*models.WeatherObservation, error)
}

// WeatherRepository определяет контракт для хранения предупреждений и кэша наблюдений
type WeatherRepository interface {
	// InsertAlertIfNew вставляет предупреждение, если активного с тем же типом
	// ещё нет; возвращает true при фактической вставке
	InsertAlertIfNew(ctx context.Context, alert *models.WeatherAlert) (bool, error)
	ListActiveUserIDs(ctx context.Context) ([]string, error)
	GetObservationFromCache(ctx context.Context, lat, lng float64) (*models.WeatherObservation, error)
	SetObservationCache(ctx context.Context, lat, lng float64, obs *models.WeatherObservation) error
}

// WeatherAlertResult - итог одного прогона генерации предупреждений
type WeatherAlertResult struct {
	Observation   *models.WeatherObservation `json:"weather_data"`
	Alerts        []models.WeatherAlert      `json:"alerts"`
	AlertsCreated int                        `json:"alerts_created"`
}

// WeatherService определяет контракт генерации погодных предупреждений
type WeatherService interface {
	GenerateAlerts(ctx context.Context, lat, lng float64, city string) (*WeatherAlertResult, error)
}

type weatherService struct {
	provider  WeatherProvider
	repo      WeatherRepository
	notifRepo NotificationRepository
	broadcast RealtimeBroadcaster
	logger    *logrus.Logger
	cfg       *config.Config
	clock     clockwork.Clock
	metrics   *observability.Metrics
}

func NewWeatherService(
	provider WeatherProvider,
	repo WeatherRepository,
	notifRepo NotificationRepository,
	broadcast RealtimeBroadcaster,
	logger *logrus.Logger,
	cfg *config.Config,
	clock clockwork.Clock,
	metrics *observability.Metrics,
) WeatherService {
	return &weatherService{
		provider:  provider,
		repo:      repo,
		notifRepo: notifRepo,
		broadcast: broadcast,
		logger:    logger,
		cfg:       cfg,
		clock:     clock,
		metrics:   metrics,
	}
}

// GenerateAlerts получает наблюдение (из кэша или от поставщика), выводит
// пороговые предупреждения, сохраняет новые и рассылает по ним уведомления
func (s *weatherService) GenerateAlerts(ctx context.Context, lat, lng float64, city string) (*WeatherAlertResult, error) {
	if lat == 0 && lng == 0 {
		lat, lng = s.cfg.DefaultLatitude, s.cfg.DefaultLongitude
	}
	if city == "" {
		city = s.cfg.DefaultCity
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "weather",
		"method":  "GenerateAlerts",
		"lat":     lat,
		"lng":     lng,
	})
	log.Info("Fetching weather data")

	obs, err := s.repo.GetObservationFromCache(ctx, lat, lng)
	if err != nil {
		log.WithError(err).Warn("Weather cache read failed, falling back to provider")
	}
	if obs == nil {
		obs, err = s.provider.CurrentObservation(ctx, lat, lng)
		if err != nil {
			log.WithError(err).Error("Failed to fetch weather observation")
			return nil, fmt.Errorf("service: could not fetch weather observation: %w", err)
		}
		if cacheErr := s.repo.SetObservationCache(ctx, lat, lng, obs); cacheErr != nil {
			log.WithError(cacheErr).Warn("Failed to cache weather observation")
		}
	}

	now := s.clock.Now().UTC()
	alerts := analyzeObservation(obs, city, now)

	created := 0
	for i := range alerts {
		inserted, err := s.repo.InsertAlertIfNew(ctx, &alerts[i])
		if err != nil {
			log.WithField("alert_type", alerts[i].Type).WithError(err).Warn("Failed to store weather alert")
			continue
		}
		if inserted {
			created++
			s.metrics.WeatherAlerts.WithLabelValues(alerts[i].Type).Inc()
		}
	}

	if created > 0 {
		s.notifyWeatherAlerts(ctx, alerts, now)
	}

	log.WithFields(logrus.Fields{
		"alerts":  len(alerts),
		"created": created,
	}).Info("Weather alert run completed")
	return &WeatherAlertResult{Observation: obs, Alerts: alerts, AlertsCreated: created}, nil
}

// notifyWeatherAlerts рассылает уведомления о новых предупреждениях активным
// пользователям и вещает их на публичный канал. Best-effort.
func (s *weatherService) notifyWeatherAlerts(ctx context.Context, alerts []models.WeatherAlert, now time.Time) {
	log := s.logger.WithField("service", "weather")

	for _, alert := range alerts {
		if err := s.broadcast.Broadcast(ctx, "public:weather", "weather.alert", alert); err != nil {
			log.WithField("alert_type", alert.Type).WithError(err).Warn("Failed to broadcast weather alert")
		}
	}

	userIDs, err := s.repo.ListActiveUserIDs(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to list users for weather notifications")
		return
	}

	notifications := make([]models.Notification, 0, len(userIDs)*len(alerts))
	for _, alert := range alerts {
		for _, userID := range userIDs {
			notifications = append(notifications, models.Notification{
				UserID:  userID,
				Type:    "weather_alert",
				Title:   alert.Title,
				Message: alert.Message,
				Data: map[string]any{
					"alert_type": alert.Type,
					"priority":   alert.Priority,
					"expires_at": alert.ExpiresAt,
				},
				CreatedAt: now,
			})
		}
	}
	if len(notifications) == 0 {
		return
	}
	if err := s.notifRepo.InsertNotifications(ctx, notifications); err != nil {
		log.WithError(err).Warn("Failed to insert weather notifications")
	}
}

// analyzeObservation выводит предупреждения из наблюдения по фиксированным
// порогам. Чистая функция, время передаётся снаружи.
func analyzeObservation(obs *models.WeatherObservation, city string, now time.Time) []models.WeatherAlert {
	expires := now.Add(alertTTL)
	alerts := make([]models.WeatherAlert, 0, 4)

	switch {
	case obs.FeelsLike >= extremeHeatFeelsLike:
		alerts = append(alerts, models.WeatherAlert{
			Type:      "extreme_heat",
			Priority:  models.AlertPriorityCritical,
			Title:     "Extreme Heat Warning",
			Message:   fmt.Sprintf("Heat index of %.0f°C in %s. Avoid outdoor activities and stay hydrated.", obs.FeelsLike, city),
			ExpiresAt: expires,
			CreatedAt: now,
		})
	case obs.FeelsLike >= highHeatFeelsLike:
		alerts = append(alerts, models.WeatherAlert{
			Type:      "high_heat",
			Priority:  models.AlertPriorityHigh,
			Title:     "High Heat Advisory",
			Message:   fmt.Sprintf("Heat index of %.0f°C in %s. Limit prolonged sun exposure.", obs.FeelsLike, city),
			ExpiresAt: expires,
			CreatedAt: now,
		})
	}

	if obs.WindSpeed >= highWindSpeed {
		alerts = append(alerts, models.WeatherAlert{
			Type:      "high_wind",
			Priority:  models.AlertPriorityHigh,
			Title:     "High Wind Warning",
			Message:   fmt.Sprintf("Winds of %.0f km/h in %s. Secure loose objects and avoid open areas.", obs.WindSpeed, city),
			ExpiresAt: expires,
			CreatedAt: now,
		})
	}

	if obs.RainLastHour >= heavyRainPerHour || obs.RainChance >= heavyRainChance {
		alerts = append(alerts, models.WeatherAlert{
			Type:      "heavy_rain",
			Priority:  models.AlertPriorityHigh,
			Title:     "Heavy Rain Warning",
			Message:   fmt.Sprintf("Heavy rainfall expected in %s. Watch for flooding in low-lying areas.", city),
			ExpiresAt: expires,
			CreatedAt: now,
		})
	}

	if obs.VisibilityKm > 0 && obs.VisibilityKm < lowVisibilityKm {
		alerts = append(alerts, models.WeatherAlert{
			Type:      "low_visibility",
			Priority:  models.AlertPriorityMedium,
			Title:     "Low Visibility Advisory",
			Message:   fmt.Sprintf("Visibility below %.0f km in %s. Exercise caution when travelling.", lowVisibilityKm, city),
			ExpiresAt: expires,
			CreatedAt: now,
		})
	}

	if strings.Contains(strings.ToLower(obs.Condition), "thunderstorm") {
		alerts = append(alerts, models.WeatherAlert{
			Type:      "thunderstorm",
			Priority:  models.AlertPriorityCritical,
			Title:     "Thunderstorm Warning",
			Message:   fmt.Sprintf("Thunderstorm conditions in %s. Seek shelter indoors.", city),
			ExpiresAt: expires,
			CreatedAt: now,
		})
	}

	return alerts
}
