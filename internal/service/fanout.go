package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Человекочитаемые сообщения для репортера по целевому статусу
var reporterStatusMessages = map[models.AssignmentStatus]string{
	models.StatusAccepted: "A responder has accepted your emergency report",
	models.StatusEnroute:  "A responder is on the way to your location",
	models.StatusOnScene:  "A responder has arrived at your location",
	models.StatusResolved: "Your emergency report has been resolved",
}

// Заголовок/тело пуша для репортера по целевому статусу
var reporterPushMessages = map[models.AssignmentStatus]models.PushMessage{
	models.StatusAccepted: {
		Title: "Responder Accepted Your Report",
		Body:  "A responder has accepted your emergency report and will be assisting you shortly.",
	},
	models.StatusEnroute: {
		Title: "Help is on the Way",
		Body:  "A responder is currently enroute to your location.",
	},
	models.StatusOnScene: {
		Title: "Responder Arrived",
		Body:  "A responder has arrived at your location and is providing assistance.",
	},
	models.StatusResolved: {
		Title: "Report Resolved",
		Body:  "Your emergency report has been successfully resolved.",
	},
}

type sinkResult struct {
	Sink string
	Err  error
}

// fanOut доставляет событие перехода в четыре независимых синка. Синки
// запускаются конкурентно, их результаты собираются (fire-and-collect) и
// логируются одной сводкой. Наружу не поднимается ничего: авторитетное
// изменение состояния уже состоялось.
func (s *assignmentService) fanOut(ctx context.Context, event *models.TransitionEvent) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.NotifyTimeout)
	defer cancel()

	sinks := []struct {
		name string
		run  func(context.Context, *models.TransitionEvent) error
	}{
		{"admin_notifications", s.notifyAdmins},
		{"reporter_notification", s.notifyReporter},
		{"realtime", s.broadcastTransition},
		{"push", s.pushTransition},
	}

	results := make([]sinkResult, len(sinks))
	var wg sync.WaitGroup
	for i, sink := range sinks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = sinkResult{Sink: sink.name, Err: sink.run(ctx, event)}
		}()
	}
	wg.Wait()

	fields := logrus.Fields{
		"service":       "assignment",
		"assignment_id": event.AssignmentID,
		"new_status":    event.NewStatus,
	}
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fields[r.Sink] = r.Err.Error()
			s.metrics.FanoutFailures.WithLabelValues(r.Sink).Inc()
		}
	}
	if failed > 0 {
		s.logger.WithFields(fields).Warnf("Notification fan-out completed with %d of %d sinks failed", failed, len(sinks))
		return
	}
	s.logger.WithFields(fields).Info("Notification fan-out completed")
}

// notificationPayload - общая полезная нагрузка для внутриприложенческих уведомлений
func notificationPayload(event *models.TransitionEvent) map[string]any {
	return map[string]any{
		"assignment_id":   event.AssignmentID.String(),
		"report_id":       event.ReportID.String(),
		"responder_id":    event.ResponderID.String(),
		"previous_status": string(event.PreviousStatus),
		"new_status":      string(event.NewStatus),
		"notes":           event.Notes,
		"updated_at":      event.UpdatedAt,
		"report_type":     event.Report.Type,
		"report_message":  event.Report.Message,
		"report_location": event.Report.Location,
	}
}

// notifyAdmins вставляет по одной строке уведомления на каждого админа
// (ограниченная выборка)
func (s *assignmentService) notifyAdmins(ctx context.Context, event *models.TransitionEvent) error {
	admins, err := s.notifRepo.ListAdminUserIDs(ctx, s.cfg.AdminNotifyLimit)
	if err != nil {
		return fmt.Errorf("list admins: %w", err)
	}
	if len(admins) == 0 {
		return nil
	}

	payload := notificationPayload(event)
	notifications := make([]models.Notification, len(admins))
	for i, adminID := range admins {
		notifications[i] = models.Notification{
			UserID:    adminID,
			Type:      "assignment_status_update",
			Title:     "Assignment Status Updated",
			Message:   fmt.Sprintf("Assignment status changed from %s to %s", event.PreviousStatus, event.NewStatus),
			Data:      payload,
			CreatedAt: event.UpdatedAt,
		}
	}

	if err := s.notifRepo.InsertNotifications(ctx, notifications); err != nil {
		return fmt.Errorf("insert admin notifications: %w", err)
	}
	return nil
}

// notifyReporter вставляет уведомление для репортера, если у репорта есть
// пользовательская идентичность (user_id предпочтительнее легаси reporter_uid)
func (s *assignmentService) notifyReporter(ctx context.Context, event *models.TransitionEvent) error {
	reporterID := event.Report.ReporterIdentity()
	if reporterID == "" {
		s.logger.WithFields(logrus.Fields{
			"service":   "assignment",
			"report_id": event.ReportID,
		}).Warn("No reporter user ID found - cannot send notification")
		return nil
	}

	message, ok := reporterStatusMessages[event.NewStatus]
	if !ok {
		message = fmt.Sprintf("Your report status has been updated to %s", event.NewStatus)
	}

	notification := models.Notification{
		UserID:    reporterID,
		Type:      "assignment_status_update",
		Title:     "Your Report Update",
		Message:   message,
		Data:      notificationPayload(event),
		CreatedAt: event.UpdatedAt,
	}

	if err := s.notifRepo.InsertNotifications(ctx, []models.Notification{notification}); err != nil {
		return fmt.Errorf("insert reporter notification: %w", err)
	}
	return nil
}

// broadcastTransition вещает событие максимум на четыре логических канала.
// Каждая отправка независима: сбой одного канала не блокирует остальные.
func (s *assignmentService) broadcastTransition(ctx context.Context, event *models.TransitionEvent) error {
	fullPayload := map[string]any{
		"assignment_id":   event.AssignmentID.String(),
		"report_id":       event.ReportID.String(),
		"responder_id":    event.ResponderID.String(),
		"previous_status": string(event.PreviousStatus),
		"new_status":      string(event.NewStatus),
		"updated_at":      event.UpdatedAt,
		"notes":           event.Notes,
		"report": map[string]any{
			"type":     event.Report.Type,
			"message":  event.Report.Message,
			"location": event.Report.Location,
		},
	}

	type channelSend struct {
		channel string
		event   string
		payload any
	}
	sends := []channelSend{
		{
			channel: fmt.Sprintf("private:responder:%s", event.ResponderID),
			event:   "assignment.status_updated",
			payload: fullPayload,
		},
		{
			channel: "private:admin",
			event:   "assignment.status_updated",
			payload: fullPayload,
		},
		{
			// Публичная сводка по репорту несёт только id, статус, координаты
			// и респондера
			channel: "public:reports",
			event:   "report.updated",
			payload: map[string]any{
				"id":               event.ReportID.String(),
				"status":           string(event.NewStatus),
				"lifecycle_status": event.NewStatus.LifecycleStatus(),
				"type":             event.Report.Type,
				"lat":              event.Report.Location.Lat,
				"lng":              event.Report.Location.Lng,
				"responder_id":     event.ResponderID.String(),
				"last_update":      event.UpdatedAt,
			},
		},
	}

	if reporterID := event.Report.ReporterIdentity(); reporterID != "" {
		sends = append(sends, channelSend{
			channel: fmt.Sprintf("private:user:%s", reporterID),
			event:   "report.status_updated",
			payload: map[string]any{
				"report_id":        event.ReportID.String(),
				"assignment_id":    event.AssignmentID.String(),
				"previous_status":  string(event.PreviousStatus),
				"new_status":       string(event.NewStatus),
				"lifecycle_status": event.NewStatus.LifecycleStatus(),
				"updated_at":       event.UpdatedAt,
				"notes":            event.Notes,
				"report": map[string]any{
					"type":     event.Report.Type,
					"message":  event.Report.Message,
					"location": event.Report.Location,
				},
			},
		})
	}

	var failed int
	for _, send := range sends {
		if err := s.broadcast.Broadcast(ctx, send.channel, send.event, send.payload); err != nil {
			failed++
			s.logger.WithFields(logrus.Fields{
				"service": "assignment",
				"channel": send.channel,
			}).WithError(err).Warn("Failed to broadcast transition event")
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d channel sends failed", failed, len(sends))
	}
	return nil
}

// pushTransition шлёт пуш респондеру и, если идентичность репортера - валидный
// UUID, дополнительно пробует два независимых пути доставки репортеру
// (OneSignal и легаси веб-пуш). Каждый путь может молча отказать, каждый
// логируется отдельно.
func (s *assignmentService) pushTransition(ctx context.Context, event *models.TransitionEvent) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "assignment",
		"assignment_id": event.AssignmentID,
	})
	important := event.NewStatus == models.StatusResolved || event.NewStatus == models.StatusOnScene

	var failed int

	responderMsg := models.PushMessage{
		Title: "Assignment Status Updated",
		Body:  fmt.Sprintf("Status changed from %s to %s", event.PreviousStatus, event.NewStatus),
		Data: map[string]any{
			"assignmentId":   event.AssignmentID.String(),
			"reportId":       event.ReportID.String(),
			"previousStatus": string(event.PreviousStatus),
			"newStatus":      string(event.NewStatus),
			"notes":          event.Notes,
			"timestamp":      event.UpdatedAt,
		},
		Important: important,
	}
	if err := s.push.SendWebPush(ctx, "responder", event.ResponderID.String(), responderMsg); err != nil {
		failed++
		s.metrics.PushDeliveries.WithLabelValues("web", "error").Inc()
		log.WithError(err).Warn("Failed to send push notification to responder")
	} else {
		s.metrics.PushDeliveries.WithLabelValues("web", "success").Inc()
	}

	reporterID := event.Report.ReporterIdentity()
	if reporterID == "" {
		log.Warn("No reporter user ID found - cannot send push notification")
		if failed > 0 {
			return fmt.Errorf("%d push deliveries failed", failed)
		}
		return nil
	}
	if _, err := uuid.Parse(reporterID); err != nil {
		// Легаси reporter_uid не обязан быть UUID: пуш-пути пропускаются
		log.WithField("reporter_user_id", reporterID).Warn("Reporter user ID is not a valid UUID, skipping push notification")
		if failed > 0 {
			return fmt.Errorf("%d push deliveries failed", failed)
		}
		return nil
	}

	reporterMsg, ok := reporterPushMessages[event.NewStatus]
	if !ok {
		reporterMsg = models.PushMessage{
			Title: "Report Status Updated",
			Body:  fmt.Sprintf("Your report status has been updated to %s", event.NewStatus),
		}
	}
	reporterMsg.Important = important
	reporterMsg.Data = map[string]any{
		"reportId":        event.ReportID.String(),
		"assignmentId":    event.AssignmentID.String(),
		"newStatus":       string(event.NewStatus),
		"lifecycleStatus": event.NewStatus.LifecycleStatus(),
		"timestamp":       event.UpdatedAt,
		"type":            "assignment_status_update",
	}

	// Платформенный путь: OneSignal напрямую по устройствам репортера
	playerIDs, err := s.notifRepo.ListPlayerIDs(ctx, reporterID)
	switch {
	case err != nil:
		failed++
		log.WithError(err).Warn("Failed to fetch OneSignal subscriptions for reporter")
	case len(playerIDs) == 0:
		log.WithField("reporter_user_id", reporterID).Warn("No OneSignal subscriptions found for reporter")
	default:
		if sent, err := s.push.SendToPlayers(ctx, playerIDs, reporterMsg); err != nil {
			failed++
			s.metrics.PushDeliveries.WithLabelValues("onesignal", "error").Inc()
			log.WithError(err).Warn("OneSignal notification failed (non-critical)")
		} else {
			s.metrics.PushDeliveries.WithLabelValues("onesignal", "success").Inc()
			log.WithField("recipients", sent).Debug("OneSignal notification sent to reporter")
		}
	}

	// Легаси веб-пуш: может отказать для мобильных пользователей, это ожидаемо
	if err := s.push.SendWebPush(ctx, "user", reporterID, reporterMsg); err != nil {
		failed++
		s.metrics.PushDeliveries.WithLabelValues("web", "error").Inc()
		log.WithError(err).Warn("Web push notification failed (expected for mobile users)")
	} else {
		s.metrics.PushDeliveries.WithLabelValues("web", "success").Inc()
	}

	if failed > 0 {
		return fmt.Errorf("%d push deliveries failed", failed)
	}
	return nil
}
