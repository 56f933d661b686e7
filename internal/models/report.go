package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Терминальный статус репорта, выставляется при переходе назначения в resolved
const ReportStatusCompleted = "completed"

// Location - структурированные координаты репорта с опциональным адресом
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// ReportSnapshot - выборочные поля репорта, которые ядро читает вместе с
// назначением. Ядро пишет только lifecycle_status, status и last_update;
// остальное используется как контекст для уведомлений.
type ReportSnapshot struct {
	ID              uuid.UUID  `json:"id"`
	LifecycleStatus string     `json:"lifecycle_status"`
	Type            string     `json:"type"`
	Message         string     `json:"message"`
	Location        Location   `json:"location"`
	ReporterUID     *string    `json:"reporter_uid,omitempty"`
	ReporterName    *string    `json:"reporter_name,omitempty"`
	UserID          *uuid.UUID `json:"user_id,omitempty"`

	// Поля критичности: corrected_type выставляет модератор, приоритет
	// по умолчанию 3
	CorrectedType *string `json:"corrected_type,omitempty"`
	Priority      int     `json:"priority"`
	Severity      string  `json:"severity,omitempty"`
	ResponseTime  string  `json:"response_time,omitempty"`
}

// EffectiveType возвращает тип репорта с учётом модераторской коррекции,
// нормализованный к нижнему регистру
func (r *ReportSnapshot) EffectiveType() string {
	t := r.Type
	if r.CorrectedType != nil && strings.TrimSpace(*r.CorrectedType) != "" {
		t = *r.CorrectedType
	}
	return strings.ToLower(strings.TrimSpace(t))
}

// IsCritical сообщает, требует ли репорт немедленного внимания супервайзеров:
// приоритет 1-2 либо жёсткость CRITICAL/HIGH. Ложные тревоги и не-экстренные
// репорты не критичны независимо от приоритета.
func (r *ReportSnapshot) IsCritical() bool {
	switch r.EffectiveType() {
	case "false_alarm", "non_emergency":
		return false
	}
	if r.Priority >= 1 && r.Priority <= 2 {
		return true
	}
	switch strings.ToUpper(r.Severity) {
	case "CRITICAL", "HIGH":
		return true
	}
	return false
}

// ReporterIdentity возвращает идентификатор репортера для уведомлений:
// предпочитаем аутентифицированный user_id, откатываемся на легаси reporter_uid.
// Пустая строка означает, что репортера уведомить некому.
func (r *ReportSnapshot) ReporterIdentity() string {
	if r.UserID != nil {
		return r.UserID.String()
	}
	if r.ReporterUID != nil {
		return *r.ReporterUID
	}
	return ""
}

// ReportUpdate - частичное обновление репорта, зеркалирующее переход назначения
type ReportUpdate struct {
	LifecycleStatus string
	LastUpdate      time.Time
	Status          *string // "completed" только при resolved
}

// TransitionEvent - результат одного выполненного перехода статуса.
// Эфемерная запись: потребляется аудитом и фан-аутом, ядром не хранится.
type TransitionEvent struct {
	AssignmentID   uuid.UUID        `json:"assignment_id"`
	ReportID       uuid.UUID        `json:"report_id"`
	ResponderID    uuid.UUID        `json:"responder_id"`
	PreviousStatus AssignmentStatus `json:"previous_status"`
	NewStatus      AssignmentStatus `json:"new_status"`
	UpdatedAt      time.Time        `json:"updated_at"`
	Notes          *string          `json:"notes,omitempty"`

	// Денормализованный контекст репорта для содержимого уведомлений
	Report ReportSnapshot `json:"-"`
}
