package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/service"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{
		db: db,
	}
}

// GetResponderByID возвращает профиль респондера
func (r *UserRepository) GetResponderByID(ctx context.Context, id uuid.UUID) (*models.Responder, error) {
	query := `
		SELECT id, user_id, name, role
		FROM responder
		WHERE id = $1;
	`
	responder := &models.Responder{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&responder.ID,
		&responder.UserID,
		&responder.Name,
		&responder.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrResponderNotFound
		}
		return nil, &service.StoreError{Op: "fetch responder", Err: err}
	}
	return responder, nil
}

// ListSuperUserIDs возвращает user_id пользователей с ролью superuser или admin
func (r *UserRepository) ListSuperUserIDs(ctx context.Context) ([]string, error) {
	query := `
		SELECT user_id
		FROM user_profiles
		WHERE role IN ('superuser', 'admin') AND is_active = TRUE;
	`
	return r.queryUserIDs(ctx, query)
}

// ListProfiles возвращает все профили пользователей, новые первыми
func (r *UserRepository) ListProfiles(ctx context.Context) ([]*models.UserProfile, error) {
	query := `
		SELECT user_id, role, name, user_type, student_number, is_active, created_at
		FROM user_profiles
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, &service.StoreError{Op: "list user profiles", Err: err}
	}
	defer rows.Close()

	profiles := make([]*models.UserProfile, 0)
	for rows.Next() {
		profile := &models.UserProfile{}
		err := rows.Scan(
			&profile.UserID,
			&profile.Role,
			&profile.Name,
			&profile.UserType,
			&profile.StudentNumber,
			&profile.IsActive,
			&profile.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user profile row: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error profile list iteration: %w", err)
	}
	return profiles, nil
}

func (r *UserRepository) DeleteReportsByUser(ctx context.Context, userID uuid.UUID) error {
	return r.deleteWhere(ctx, "DELETE FROM reports WHERE user_id = $1;", userID, "delete reports")
}

func (r *UserRepository) DeleteNotificationsByUser(ctx context.Context, userID uuid.UUID) error {
	// user_id уведомлений текстовый: туда же пишутся легаси reporter_uid
	return r.deleteWhere(ctx, "DELETE FROM notifications WHERE user_id = $1;", userID.String(), "delete notifications")
}

func (r *UserRepository) DeleteSubscriptionsByUser(ctx context.Context, userID uuid.UUID) error {
	return r.deleteWhere(ctx, "DELETE FROM onesignal_subscriptions WHERE user_id = $1;", userID, "delete subscriptions")
}

func (r *UserRepository) DeleteAuditByUser(ctx context.Context, userID uuid.UUID) error {
	return r.deleteWhere(ctx, "DELETE FROM audit_log WHERE user_id = $1;", userID.String(), "delete audit records")
}

// ListResponderIDsByUser возвращает id респондерских профилей пользователя
func (r *UserRepository) ListResponderIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT id
		FROM responder
		WHERE user_id = $1;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, &service.StoreError{Op: "list responder ids", Err: err}
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan responder id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error responder id iteration: %w", err)
	}
	return ids, nil
}

func (r *UserRepository) DeleteAssignmentsByResponder(ctx context.Context, responderID uuid.UUID) error {
	return r.deleteWhere(ctx, "DELETE FROM assignment WHERE responder_id = $1;", responderID, "delete assignments")
}

func (r *UserRepository) DeleteResponderByUser(ctx context.Context, userID uuid.UUID) error {
	return r.deleteWhere(ctx, "DELETE FROM responder WHERE user_id = $1;", userID, "delete responder")
}

func (r *UserRepository) DeleteReporterByUser(ctx context.Context, userID uuid.UUID) error {
	return r.deleteWhere(ctx, "DELETE FROM reporter WHERE user_id = $1;", userID, "delete reporter")
}

func (r *UserRepository) DeleteProfileByUser(ctx context.Context, userID uuid.UUID) error {
	return r.deleteWhere(ctx, "DELETE FROM user_profiles WHERE user_id = $1;", userID, "delete user profile")
}

// deleteWhere выполняет удаление. Ноль затронутых строк не ошибка: каскад
// терпим к уже отсутствующим данным.
func (r *UserRepository) deleteWhere(ctx context.Context, query string, id any, op string) error {
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return &service.StoreError{Op: op, Err: err}
	}
	return nil
}

func (r *UserRepository) queryUserIDs(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, &service.StoreError{Op: "list user ids", Err: err}
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error user id iteration: %w", err)
	}
	return ids, nil
}
