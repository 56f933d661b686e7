package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/service"
)

type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) service.NotificationRepository {
	return &NotificationRepository{
		db: db,
	}
}

// InsertNotifications вставляет пачку уведомлений одним батчем
func (r *NotificationRepository) InsertNotifications(ctx context.Context, notifications []models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	query := `
		INSERT INTO notifications (user_id, type, title, message, data, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch := &pgx.Batch{}
	for _, n := range notifications {
		data, err := json.Marshal(n.Data)
		if err != nil {
			return fmt.Errorf("failed to marshal notification data: %w", err)
		}
		batch.Queue(query, n.UserID, n.Type, n.Title, n.Message, data, n.Read, n.CreatedAt)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range notifications {
		if _, err := results.Exec(); err != nil {
			return &service.StoreError{Op: "insert notifications", Err: err}
		}
	}
	return nil
}

// InsertAuditRecord дописывает запись в журнал аудита
func (r *NotificationRepository) InsertAuditRecord(ctx context.Context, record *models.AuditRecord) error {
	details, err := json.Marshal(record.Details)
	if err != nil {
		return fmt.Errorf("failed to marshal audit details: %w", err)
	}

	query := `
		INSERT INTO audit_log (entity_type, entity_id, action, user_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = r.db.Exec(ctx, query,
		record.EntityType,
		record.EntityID,
		record.Action,
		record.UserID,
		details,
		record.CreatedAt,
	)
	if err != nil {
		return &service.StoreError{Op: "insert audit record", Err: err}
	}
	return nil
}

// ListAdminUserIDs возвращает user_id респондеров с ролью admin, ограниченная выборка
func (r *NotificationRepository) ListAdminUserIDs(ctx context.Context, limit int) ([]string, error) {
	query := `
		SELECT user_id
		FROM responder
		WHERE role = 'admin'
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, &service.StoreError{Op: "list admin users", Err: err}
	}
	defer rows.Close()

	ids := make([]string, 0, limit)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan admin user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error admin list iteration: %w", err)
	}
	return ids, nil
}

// ListPlayerIDs возвращает идентификаторы OneSignal-устройств пользователя
func (r *NotificationRepository) ListPlayerIDs(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT player_id
		FROM onesignal_subscriptions
		WHERE user_id = $1 AND player_id IS NOT NULL;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, &service.StoreError{Op: "list player ids", Err: err}
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan player id: %w", err)
		}
		if id != "" {
			ids = append(ids, id)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error player id iteration: %w", err)
	}
	return ids, nil
}
