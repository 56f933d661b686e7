package service

//go:generate mockgen -destination=mocks/mock_services.go -package=mocks github.com/shenikar/emergency_response_system/internal/service AssignmentService,AssistService,UserService,AppVersionService,WeatherService

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/emergency_response_system/internal/config"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Виды запросов помощи от респондера
const (
	AssistKindAssistance = "assistance"
	AssistKindBackup     = "backup"
)

// AssistRequest - запрос уведомить супервайзеров, что респондеру нужна помощь
type AssistRequest struct {
	Kind         string
	ResponderID  string
	AssignmentID *string
	ReportID     *string
}

// CriticalReportResult - итог рассылки по критическому репорту
type CriticalReportResult struct {
	Sent          int    `json:"sent"`
	NotifiedUsers int    `json:"notified_users"`
	Message       string `json:"message,omitempty"`
}

// AssistService определяет контракт уведомления супервайзеров
type AssistService interface {
	// NotifyAssistance рассылает уведомления супервайзерам и возвращает,
	// скольким они были доставлены
	NotifyAssistance(ctx context.Context, req AssistRequest) (int, error)
	// NotifyCriticalReport уведомляет супервайзеров о критическом репорте.
	// Некритические и отклонённые репорты пропускаются без ошибки.
	NotifyCriticalReport(ctx context.Context, reportID string) (*CriticalReportResult, error)
}

type assistService struct {
	userRepo   UserRepository
	assignRepo AssignmentRepository
	notifRepo  NotificationRepository
	broadcast  RealtimeBroadcaster
	push       PushDispatcher
	logger     *logrus.Logger
	cfg        *config.Config
	clock      clockwork.Clock
}

func NewAssistService(
	userRepo UserRepository,
	assignRepo AssignmentRepository,
	notifRepo NotificationRepository,
	broadcast RealtimeBroadcaster,
	push PushDispatcher,
	logger *logrus.Logger,
	cfg *config.Config,
	clock clockwork.Clock,
) AssistService {
	return &assistService{
		userRepo:   userRepo,
		assignRepo: assignRepo,
		notifRepo:  notifRepo,
		broadcast:  broadcast,
		push:       push,
		logger:     logger,
		cfg:        cfg,
		clock:      clock,
	}
}

func (s *assistService) NotifyAssistance(ctx context.Context, req AssistRequest) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "assist",
		"method":       "NotifyAssistance",
		"responder_id": req.ResponderID,
		"kind":         req.Kind,
	})

	if req.Kind != AssistKindAssistance && req.Kind != AssistKindBackup {
		return 0, &ValidationError{Reason: "kind must be one of: assistance, backup"}
	}
	responderID, err := uuid.Parse(req.ResponderID)
	if err != nil {
		return 0, &ValidationError{Reason: "responder_id must be a valid UUID"}
	}

	responder, err := s.userRepo.GetResponderByID(ctx, responderID)
	if err != nil {
		log.WithError(err).Warn("Failed to fetch responder")
		return 0, err
	}

	// Тип репорта - только контекст для текста, его отсутствие не фатально
	reportType := "Incident"
	var reportID *string
	if req.ReportID != nil {
		if id, parseErr := uuid.Parse(*req.ReportID); parseErr == nil {
			if snapshot, snapErr := s.assignRepo.GetReportSnapshot(ctx, id); snapErr == nil {
				if snapshot.Type != "" {
					reportType = snapshot.Type
				}
				idStr := snapshot.ID.String()
				reportID = &idStr
			} else {
				log.WithError(snapErr).Warn("Failed to fetch report for assistance notification")
			}
		}
	}

	isBackup := req.Kind == AssistKindBackup
	title := "Responder needs assistance"
	message := fmt.Sprintf("%s (%s) needs assistance.", responder.Name, responder.Role)
	if isBackup {
		title = "Responder requested backup"
		if reportID != nil {
			message = fmt.Sprintf("%s (%s) requested backup for %s incident.", responder.Name, responder.Role, reportType)
		}
	}

	superUsers, err := s.userRepo.ListSuperUserIDs(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list super users")
		return 0, fmt.Errorf("service: could not list super users: %w", err)
	}
	if len(superUsers) == 0 {
		log.Info("No super users to notify")
		return 0, nil
	}

	now := s.clock.Now().UTC()
	payload := map[string]any{
		"kind":           req.Kind,
		"responder_id":   responder.ID.String(),
		"responder_name": responder.Name,
		"responder_role": responder.Role,
		"assignment_id":  req.AssignmentID,
		"report_id":      reportID,
		"report_type":    reportType,
	}

	notifications := make([]models.Notification, len(superUsers))
	for i, userID := range superUsers {
		notifications[i] = models.Notification{
			UserID:    userID,
			Type:      "responder_needs_assistance",
			Title:     title,
			Message:   message,
			Data:      payload,
			CreatedAt: now,
		}
	}
	if err := s.notifRepo.InsertNotifications(ctx, notifications); err != nil {
		log.WithError(err).Error("Failed to insert assistance notifications")
		return 0, fmt.Errorf("service: could not insert assistance notifications: %w", err)
	}

	// Вещание и пуш - best-effort: строки уведомлений уже записаны
	if err := s.broadcast.Broadcast(ctx, "private:admin", "responder.needs_assistance", payload); err != nil {
		log.WithError(err).Warn("Failed to broadcast assistance event")
	}

	msg := models.PushMessage{Title: title, Body: message, Data: payload, Important: true}
	for _, userID := range superUsers {
		playerIDs, err := s.notifRepo.ListPlayerIDs(ctx, userID)
		if err != nil || len(playerIDs) == 0 {
			continue
		}
		if _, err := s.push.SendToPlayers(ctx, playerIDs, msg); err != nil {
			log.WithField("user_id", userID).WithError(err).Warn("Failed to push assistance notification")
		}
	}

	log.WithField("sent", len(superUsers)).Info("Assistance notifications sent")
	return len(superUsers), nil
}

func (s *assistService) NotifyCriticalReport(ctx context.Context, reportID string) (*CriticalReportResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "assist",
		"method":    "NotifyCriticalReport",
		"report_id": reportID,
	})

	id, err := uuid.Parse(reportID)
	if err != nil {
		return nil, &ValidationError{Reason: "report_id must be a valid UUID"}
	}

	report, err := s.assignRepo.GetReportSnapshot(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to fetch report")
		return nil, err
	}

	// Отклонённые и некритические репорты - штатный исход, не ошибка
	effectiveType := report.EffectiveType()
	switch effectiveType {
	case "false_alarm", "non_emergency":
		log.WithField("type", effectiveType).Info("Report dismissed, skipping notification")
		return &CriticalReportResult{Message: "report type does not require notification"}, nil
	}
	if !report.IsCritical() {
		log.WithFields(logrus.Fields{"priority": report.Priority, "severity": report.Severity}).
			Info("Report is not critical, skipping notification")
		return &CriticalReportResult{Message: "report is not critical"}, nil
	}

	// Недоступный список получателей деградирует до пустой рассылки:
	// вызов идемпотентен и может быть повторён
	superUsers, err := s.userRepo.ListSuperUserIDs(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list super users")
		return &CriticalReportResult{Message: "could not list super users"}, nil
	}
	if len(superUsers) == 0 {
		log.Info("No super users to notify")
		return &CriticalReportResult{}, nil
	}

	location := report.Location.Address
	if location == "" {
		location = fmt.Sprintf("%.4f, %.4f", report.Location.Lat, report.Location.Lng)
	}
	title := "Critical emergency report"
	message := fmt.Sprintf("A critical %s report was submitted at %s. Immediate response required.", effectiveType, location)

	now := s.clock.Now().UTC()
	payload := map[string]any{
		"report_id":     report.ID.String(),
		"type":          effectiveType,
		"priority":      report.Priority,
		"severity":      report.Severity,
		"response_time": report.ResponseTime,
		"lat":           report.Location.Lat,
		"lng":           report.Location.Lng,
	}

	notifications := make([]models.Notification, len(superUsers))
	for i, userID := range superUsers {
		notifications[i] = models.Notification{
			UserID:    userID,
			Type:      "critical_report",
			Title:     title,
			Message:   message,
			Data:      payload,
			CreatedAt: now,
		}
	}
	if err := s.notifRepo.InsertNotifications(ctx, notifications); err != nil {
		log.WithError(err).Error("Failed to insert critical report notifications")
		return nil, fmt.Errorf("service: could not insert critical report notifications: %w", err)
	}

	if err := s.broadcast.Broadcast(ctx, "private:admin", "report.critical", payload); err != nil {
		log.WithError(err).Warn("Failed to broadcast critical report event")
	}

	msg := models.PushMessage{Title: title, Body: message, Data: payload, Important: true}
	sent := 0
	for _, userID := range superUsers {
		playerIDs, err := s.notifRepo.ListPlayerIDs(ctx, userID)
		if err != nil || len(playerIDs) == 0 {
			continue
		}
		if n, pushErr := s.push.SendToPlayers(ctx, playerIDs, msg); pushErr == nil {
			sent += n
		} else {
			log.WithField("user_id", userID).WithError(pushErr).Warn("Failed to push critical report notification")
		}
	}

	log.WithFields(logrus.Fields{"sent": sent, "notified_users": len(superUsers)}).
		Info("Critical report notifications sent")
	return &CriticalReportResult{Sent: sent, NotifiedUsers: len(superUsers)}, nil
}
