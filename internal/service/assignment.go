package service

//go:generate mockgen -source=assignment.go -destination=mock_assignment_test.go -package=service -exclude_interfaces=AssignmentService

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/emergency_response_system/internal/config"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/observability"
	"github.com/sirupsen/logrus"
)

// AssignmentRepository определяет контракт для работы с бд назначений и репортов
type AssignmentRepository interface {
	// GetWithReport возвращает назначение вместе со снимком связанного репорта
	GetWithReport(ctx context.Context, id uuid.UUID) (*models.Assignment, error)
	// UpdateAssignment применяет частичное обновление с оптимистической
	// проверкой prev: запись проходит только если статус не изменился
	// конкурентно с момента снимка
	UpdateAssignment(ctx context.Context, id uuid.UUID, prev models.AssignmentStatus, upd models.AssignmentUpdate) error
	// RestoreAssignment - компенсирующая запись, возвращающая статус и
	// updated_at к дотранзиционному снимку
	RestoreAssignment(ctx context.Context, id uuid.UUID, status models.AssignmentStatus, updatedAt time.Time) error
	UpdateReport(ctx context.Context, id uuid.UUID, upd models.ReportUpdate) error
	// GetReportSnapshot возвращает выборочные поля репорта без назначения
	GetReportSnapshot(ctx context.Context, id uuid.UUID) (*models.ReportSnapshot, error)
}

// NotificationRepository определяет контракт для записей уведомлений и аудита
type NotificationRepository interface {
	InsertNotifications(ctx context.Context, notifications []models.Notification) error
	InsertAuditRecord(ctx context.Context, record *models.AuditRecord) error
	// ListAdminUserIDs возвращает user_id респондеров с ролью admin (ограниченная выборка)
	ListAdminUserIDs(ctx context.Context, limit int) ([]string, error)
	// ListPlayerIDs возвращает идентификаторы OneSignal-устройств пользователя
	ListPlayerIDs(ctx context.Context, userID string) ([]string, error)
}

// RealtimeBroadcaster определяет контракт для реал-тайм вещания по каналам
type RealtimeBroadcaster interface {
	Broadcast(ctx context.Context, channel, event string, payload any) error
}

// PushDispatcher определяет контракт пуш-доставки: платформенный путь
// (OneSignal по player id) и легаси веб-пуш через шлюз. Оба обязаны
// переживать невалидные/протухшие идентификаторы получателей без паники.
type PushDispatcher interface {
	SendToPlayers(ctx context.Context, playerIDs []string, msg models.PushMessage) (int, error)
	SendWebPush(ctx context.Context, targetType, targetID string, msg models.PushMessage) error
}

// StatusUpdateRequest - входящий запрос на переход статуса назначения
type StatusUpdateRequest struct {
	AssignmentID string
	Status       string
	ResponderID  string
	Notes        *string
}

// AssignmentService определяет контракт бизнес-логики переходов статуса
type AssignmentService interface {
	// UpdateStatus проводит назначение через один шаг жизненного цикла и
	// возвращает событие перехода плюс человекочитаемую сводку
	UpdateStatus(ctx context.Context, req StatusUpdateRequest) (*models.TransitionEvent, string, error)
}

type assignmentService struct {
	repo      AssignmentRepository
	notifRepo NotificationRepository
	broadcast RealtimeBroadcaster
	push      PushDispatcher
	logger    *logrus.Logger
	cfg       *config.Config
	clock     clockwork.Clock
	metrics   *observability.Metrics
}

func NewAssignmentService(
	repo AssignmentRepository,
	notifRepo NotificationRepository,
	broadcast RealtimeBroadcaster,
	push PushDispatcher,
	logger *logrus.Logger,
	cfg *config.Config,
	clock clockwork.Clock,
	metrics *observability.Metrics,
) AssignmentService {
	return &assignmentService{
		repo:      repo,
		notifRepo: notifRepo,
		broadcast: broadcast,
		push:      push,
		logger:    logger,
		cfg:       cfg,
		clock:     clock,
		metrics:   metrics,
	}
}

// UpdateStatus - оркестратор перехода: валидация -> снимок -> легальность ->
// авторизация -> исполнение -> (аудит, фан-аут, best-effort) -> ответ.
// Всё до и включая исполнение прерывает запрос; всё после - нет.
func (s *assignmentService) UpdateStatus(ctx context.Context, req StatusUpdateRequest) (*models.TransitionEvent, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "assignment",
		"method":        "UpdateStatus",
		"assignment_id": req.AssignmentID,
		"target_status": req.Status,
	})

	assignmentID, responderID, target, err := validateStatusUpdateRequest(req)
	if err != nil {
		log.WithError(err).Warn("Status update request failed validation")
		return nil, "", err
	}

	// Единственный авторитетный снимок на весь запрос, без повторного фетча
	current, err := s.repo.GetWithReport(ctx, assignmentID)
	if err != nil {
		log.WithError(err).Warn("Failed to fetch assignment")
		return nil, "", err
	}

	// Легальность перехода проверяется до авторизации, чтобы ошибка
	// нелегального перехода имела приоритет, когда сработали бы обе
	if !current.Status.IsValid() {
		log.WithField("current_status", current.Status).Error("Assignment has unknown status")
		s.metrics.Transitions.WithLabelValues(string(current.Status), string(target), "rejected").Inc()
		return nil, "", &InvalidStateError{Status: string(current.Status)}
	}
	if !current.Status.CanTransitionTo(target) {
		log.WithField("current_status", current.Status).Warn("Illegal status transition requested")
		s.metrics.Transitions.WithLabelValues(string(current.Status), string(target), "rejected").Inc()
		return nil, "", &IllegalTransitionError{
			From:    current.Status,
			To:      target,
			Allowed: current.Status.Successors(),
		}
	}

	if current.ResponderID != responderID {
		log.WithField("responder_id", req.ResponderID).Warn("Responder does not own assignment")
		s.metrics.Transitions.WithLabelValues(string(current.Status), string(target), "rejected").Inc()
		return nil, "", &AuthorizationError{AssignmentID: req.AssignmentID}
	}

	event, err := s.executeTransition(ctx, current, target, req.Notes)
	if err != nil {
		log.WithError(err).Error("Failed to execute status transition")
		s.metrics.Transitions.WithLabelValues(string(current.Status), string(target), "error").Inc()
		return nil, "", err
	}
	s.metrics.Transitions.WithLabelValues(string(current.Status), string(target), "success").Inc()

	// Аудит и фан-аут некритичны: любые сбои логируются и проглатываются
	s.logAudit(ctx, event)
	s.fanOut(ctx, event)

	message := fmt.Sprintf("Assignment status updated from %s to %s", event.PreviousStatus, event.NewStatus)
	log.WithFields(logrus.Fields{
		"previous_status": event.PreviousStatus,
		"new_status":      event.NewStatus,
	}).Info("Assignment status updated")
	return event, message, nil
}

// validateStatusUpdateRequest проверяет форму запроса: три UUID-идентификатора,
// целевой статус из четырёх допустимых, notes не длиннее 1000 символов
func validateStatusUpdateRequest(req StatusUpdateRequest) (uuid.UUID, uuid.UUID, models.AssignmentStatus, error) {
	if req.AssignmentID == "" {
		return uuid.Nil, uuid.Nil, "", &ValidationError{Reason: "assignment_id is required"}
	}
	assignmentID, err := uuid.Parse(req.AssignmentID)
	if err != nil {
		return uuid.Nil, uuid.Nil, "", &ValidationError{Reason: "assignment_id must be a valid UUID"}
	}

	if req.ResponderID == "" {
		return uuid.Nil, uuid.Nil, "", &ValidationError{Reason: "responder_id is required"}
	}
	responderID, err := uuid.Parse(req.ResponderID)
	if err != nil {
		return uuid.Nil, uuid.Nil, "", &ValidationError{Reason: "responder_id must be a valid UUID"}
	}

	target := models.AssignmentStatus(req.Status)
	switch target {
	case models.StatusAccepted, models.StatusEnroute, models.StatusOnScene, models.StatusResolved:
	default:
		return uuid.Nil, uuid.Nil, "", &ValidationError{
			Reason: "status must be one of: accepted, enroute, on_scene, resolved",
		}
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > 1000 {
		return uuid.Nil, uuid.Nil, "", &ValidationError{Reason: "notes must be 1000 characters or less"}
	}

	return assignmentID, responderID, target, nil
}

// executeTransition выполняет двухтабличную мутацию: сначала назначение,
// затем зеркальный репорт. Запись репорта идёт только после подтверждённой
// записи назначения; при её сбое - компенсирующий откат по снимку.
func (s *assignmentService) executeTransition(
	ctx context.Context,
	current *models.Assignment,
	target models.AssignmentStatus,
	notes *string,
) (*models.TransitionEvent, error) {
	now := s.clock.Now().UTC()

	upd := models.AssignmentUpdate{
		Status:    target,
		UpdatedAt: now,
		Notes:     notes,
	}
	switch target {
	case models.StatusAccepted:
		upd.AcceptedAt = &now
	case models.StatusEnroute:
		upd.EnrouteAt = &now
	case models.StatusOnScene:
		upd.OnSceneAt = &now
	case models.StatusResolved:
		upd.ResolvedAt = &now
	}

	if err := s.repo.UpdateAssignment(ctx, current.ID, current.Status, upd); err != nil {
		return nil, err
	}

	reportUpd := models.ReportUpdate{
		LifecycleStatus: target.LifecycleStatus(),
		LastUpdate:      now,
	}
	if target == models.StatusResolved {
		completed := models.ReportStatusCompleted
		reportUpd.Status = &completed
	}

	if err := s.repo.UpdateReport(ctx, current.ReportID, reportUpd); err != nil {
		// Откат лучшими усилиями: если и он не удался, это известный принятый
		// пробел (двухфазного коммита нет) - логируем, не ретраим
		rollbackErr := s.repo.RestoreAssignment(ctx, current.ID, current.Status, current.UpdatedAt)
		if rollbackErr != nil {
			s.logger.WithFields(logrus.Fields{
				"service":       "assignment",
				"assignment_id": current.ID,
			}).WithError(rollbackErr).Error("Compensating rollback failed, assignment and report may disagree")
		}
		return nil, &TransactionError{Err: err, RollbackErr: rollbackErr}
	}

	return &models.TransitionEvent{
		AssignmentID:   current.ID,
		ReportID:       current.ReportID,
		ResponderID:    current.ResponderID,
		PreviousStatus: current.Status,
		NewStatus:      target,
		UpdatedAt:      now,
		Notes:          notes,
		Report:         *current.Report,
	}, nil
}

// logAudit дописывает структурированную запись аудита. Сбой здесь ловится и
// логируется: аудит явно некритичен для успеха перехода.
func (s *assignmentService) logAudit(ctx context.Context, event *models.TransitionEvent) {
	record := &models.AuditRecord{
		EntityType: "assignment",
		EntityID:   event.AssignmentID.String(),
		Action:     "status_update",
		UserID:     event.ResponderID.String(),
		Details: map[string]any{
			"assignment_id":   event.AssignmentID.String(),
			"report_id":       event.ReportID.String(),
			"responder_id":    event.ResponderID.String(),
			"previous_status": string(event.PreviousStatus),
			"new_status":      string(event.NewStatus),
			"notes":           event.Notes,
			"updated_at":      event.UpdatedAt,
			"report_type":     event.Report.Type,
			"report_location": event.Report.Location,
		},
		CreatedAt: event.UpdatedAt,
	}

	if err := s.notifRepo.InsertAuditRecord(ctx, record); err != nil {
		s.metrics.FanoutFailures.WithLabelValues("audit").Inc()
		s.logger.WithFields(logrus.Fields{
			"service":       "assignment",
			"assignment_id": event.AssignmentID,
		}).WithError(err).Warn("Failed to log status update audit")
	}
}
