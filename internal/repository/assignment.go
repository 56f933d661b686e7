package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/service"
)

type AssignmentRepository struct {
	db *pgxpool.Pool
}

func NewAssignmentRepository(db *pgxpool.Pool) service.AssignmentRepository {
	return &AssignmentRepository{
		db: db,
	}
}

// GetWithReport возвращает назначение вместе со снимком связанного репорта
// одним запросом
func (r *AssignmentRepository) GetWithReport(ctx context.Context, id uuid.UUID) (*models.Assignment, error) {
	query := `
		SELECT
			a.id,
			a.report_id,
			a.responder_id,
			a.status,
			a.assigned_at,
			a.accepted_at,
			a.enroute_at,
			a.on_scene_at,
			a.resolved_at,
			a.notes,
			a.updated_at,
			r.id,
			r.lifecycle_status,
			r.type,
			r.message,
			r.lat,
			r.lng,
			COALESCE(r.address, ''),
			r.reporter_uid,
			r.reporter_name,
			r.user_id,
			r.corrected_type,
			COALESCE(r.priority, 3),
			COALESCE(r.severity, ''),
			COALESCE(r.response_time, '')
		FROM assignment a
		JOIN reports r ON r.id = a.report_id
		WHERE a.id = $1;
	`
	assignment := &models.Assignment{Report: &models.ReportSnapshot{}}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&assignment.ID,
		&assignment.ReportID,
		&assignment.ResponderID,
		&assignment.Status,
		&assignment.AssignedAt,
		&assignment.AcceptedAt,
		&assignment.EnrouteAt,
		&assignment.OnSceneAt,
		&assignment.ResolvedAt,
		&assignment.Notes,
		&assignment.UpdatedAt,
		&assignment.Report.ID,
		&assignment.Report.LifecycleStatus,
		&assignment.Report.Type,
		&assignment.Report.Message,
		&assignment.Report.Location.Lat,
		&assignment.Report.Location.Lng,
		&assignment.Report.Location.Address,
		&assignment.Report.ReporterUID,
		&assignment.Report.ReporterName,
		&assignment.Report.UserID,
		&assignment.Report.CorrectedType,
		&assignment.Report.Priority,
		&assignment.Report.Severity,
		&assignment.Report.ResponseTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrAssignmentNotFound
		}
		return nil, &service.StoreError{Op: "fetch assignment", Err: err}
	}
	return assignment, nil
}

// UpdateAssignment применяет частичное обновление назначения. Условие по prev
// служит оптимистической проверкой: конкурентно изменённая строка не
// обновляется, а поля меток времени никогда не очищаются.
func (r *AssignmentRepository) UpdateAssignment(ctx context.Context, id uuid.UUID, prev models.AssignmentStatus, upd models.AssignmentUpdate) error {
	query := `
		UPDATE assignment SET
			status = $1,
			updated_at = $2,
			accepted_at = COALESCE($3, accepted_at),
			enroute_at = COALESCE($4, enroute_at),
			on_scene_at = COALESCE($5, on_scene_at),
			resolved_at = COALESCE($6, resolved_at),
			notes = COALESCE($7, notes)
		WHERE id = $8 AND status = $9;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		upd.Status,
		upd.UpdatedAt,
		upd.AcceptedAt,
		upd.EnrouteAt,
		upd.OnSceneAt,
		upd.ResolvedAt,
		upd.Notes,
		id,
		prev,
	)
	if err != nil {
		return &service.StoreError{Op: "update assignment", Err: err}
	}

	// Снимок уже подтвердил существование строки: ноль затронутых строк
	// означает конкурентное изменение статуса
	if cmdTag.RowsAffected() == 0 {
		return service.ErrAssignmentConflict
	}
	return nil
}

// RestoreAssignment возвращает статус и updated_at к дотранзиционному снимку
// (компенсирующая запись)
func (r *AssignmentRepository) RestoreAssignment(ctx context.Context, id uuid.UUID, status models.AssignmentStatus, updatedAt time.Time) error {
	query := `
		UPDATE assignment SET
			status = $1,
			updated_at = $2
		WHERE id = $3;
	`
	if _, err := r.db.Exec(ctx, query, status, updatedAt, id); err != nil {
		return &service.StoreError{Op: "restore assignment", Err: err}
	}
	return nil
}

// UpdateReport зеркалирует переход назначения на репорте
func (r *AssignmentRepository) UpdateReport(ctx context.Context, id uuid.UUID, upd models.ReportUpdate) error {
	query := `
		UPDATE reports SET
			lifecycle_status = $1,
			last_update = $2,
			status = COALESCE($3, status)
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query, upd.LifecycleStatus, upd.LastUpdate, upd.Status, id)
	if err != nil {
		return &service.StoreError{Op: "update report", Err: err}
	}
	if cmdTag.RowsAffected() == 0 {
		return &service.StoreError{Op: "update report", Err: fmt.Errorf("report with id %s not found", id)}
	}
	return nil
}

// GetReportSnapshot возвращает выборочные поля репорта
func (r *AssignmentRepository) GetReportSnapshot(ctx context.Context, id uuid.UUID) (*models.ReportSnapshot, error) {
	query := `
		SELECT
			id,
			lifecycle_status,
			type,
			message,
			lat,
			lng,
			COALESCE(address, ''),
			reporter_uid,
			reporter_name,
			user_id,
			corrected_type,
			COALESCE(priority, 3),
			COALESCE(severity, ''),
			COALESCE(response_time, '')
		FROM reports
		WHERE id = $1;
	`
	snapshot := &models.ReportSnapshot{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snapshot.ID,
		&snapshot.LifecycleStatus,
		&snapshot.Type,
		&snapshot.Message,
		&snapshot.Location.Lat,
		&snapshot.Location.Lng,
		&snapshot.Location.Address,
		&snapshot.ReporterUID,
		&snapshot.ReporterName,
		&snapshot.UserID,
		&snapshot.CorrectedType,
		&snapshot.Priority,
		&snapshot.Severity,
		&snapshot.ResponseTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrReportNotFound
		}
		return nil, &service.StoreError{Op: "fetch report", Err: err}
	}
	return snapshot, nil
}
