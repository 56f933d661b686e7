package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/service"
)

type WeatherRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewWeatherRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.WeatherRepository {
	return &WeatherRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// InsertAlertIfNew вставляет предупреждение, только если активного
// предупреждения того же типа ещё нет. Возвращает true при фактической вставке.
func (r *WeatherRepository) InsertAlertIfNew(ctx context.Context, alert *models.WeatherAlert) (bool, error) {
	query := `
		INSERT INTO weather_alerts (type, priority, title, message, expires_at, created_at)
		SELECT $1, $2, $3, $4, $5, $6
		WHERE NOT EXISTS (
			SELECT 1 FROM weather_alerts WHERE type = $1 AND expires_at > $6
		)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		alert.Type,
		alert.Priority,
		alert.Title,
		alert.Message,
		alert.ExpiresAt,
		alert.CreatedAt,
	).Scan(&alert.ID)
	if err != nil {
		// Нет строки - активное предупреждение того же типа уже существует
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, &service.StoreError{Op: "insert weather alert", Err: err}
	}
	return true, nil
}

// ListActiveUserIDs возвращает user_id всех активных пользователей
func (r *WeatherRepository) ListActiveUserIDs(ctx context.Context) ([]string, error) {
	query := `
		SELECT user_id
		FROM user_profiles
		WHERE is_active = TRUE;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, &service.StoreError{Op: "list active users", Err: err}
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan active user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error active user iteration: %w", err)
	}
	return ids, nil
}

// GetObservationFromCache пытается получить наблюдение из Redis
func (r *WeatherRepository) GetObservationFromCache(ctx context.Context, lat, lng float64) (*models.WeatherObservation, error) {
	key := observationCacheKey(lat, lng)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get observation from cache: %w", err)
	}

	obs := &models.WeatherObservation{}
	if err := json.Unmarshal(val, obs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal observation from cache: %w", err)
	}
	return obs, nil
}

// SetObservationCache сохраняет наблюдение в Redis
func (r *WeatherRepository) SetObservationCache(ctx context.Context, lat, lng float64, obs *models.WeatherObservation) error {
	val, err := json.Marshal(obs)
	if err != nil {
		return fmt.Errorf("failed to marshal observation for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, observationCacheKey(lat, lng), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set observation in cache: %w", err)
	}
	return nil
}

// observationCacheKey округляет координаты, чтобы близкие запросы делили кэш
func observationCacheKey(lat, lng float64) string {
	return fmt.Sprintf("weather:%.3f:%.3f", lat, lng)
}
