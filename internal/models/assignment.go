package models

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentStatus - статус назначения респондера на репорт.
// Жизненный цикл строго линейный: assigned -> accepted -> enroute -> on_scene -> resolved.
type AssignmentStatus string

const (
	StatusAssigned AssignmentStatus = "assigned"
	StatusAccepted AssignmentStatus = "accepted"
	StatusEnroute  AssignmentStatus = "enroute"
	StatusOnScene  AssignmentStatus = "on_scene"
	StatusResolved AssignmentStatus = "resolved"
)

// nextStatus - таблица переходов. У каждого статуса ровно один легальный
// преемник, resolved терминален.
var nextStatus = map[AssignmentStatus]AssignmentStatus{
	StatusAssigned: StatusAccepted,
	StatusAccepted: StatusEnroute,
	StatusEnroute:  StatusOnScene,
	StatusOnScene:  StatusResolved,
}

// IsValid сообщает, является ли значение одним из пяти определённых статусов
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case StatusAssigned, StatusAccepted, StatusEnroute, StatusOnScene, StatusResolved:
		return true
	}
	return false
}

// IsTerminal сообщает, что из статуса нет исходящих переходов
func (s AssignmentStatus) IsTerminal() bool {
	_, ok := nextStatus[s]
	return !ok && s.IsValid()
}

// Successors возвращает множество легальных следующих статусов.
// Для терминального статуса возвращает пустой слайс.
func (s AssignmentStatus) Successors() []AssignmentStatus {
	if next, ok := nextStatus[s]; ok {
		return []AssignmentStatus{next}
	}
	return []AssignmentStatus{}
}

// CanTransitionTo проверяет легальность перехода s -> target
func (s AssignmentStatus) CanTransitionTo(target AssignmentStatus) bool {
	next, ok := nextStatus[s]
	return ok && next == target
}

// LifecycleStatus возвращает зеркальный lifecycle_status репорта для статуса
// назначения. Отображение 1:1, консультируется только исполнителем перехода.
func (s AssignmentStatus) LifecycleStatus() string {
	return string(s)
}

// Assignment - назначение: обязательство одного респондера по одному репорту
type Assignment struct {
	ID          uuid.UUID        `json:"id"`
	ReportID    uuid.UUID        `json:"report_id"`
	ResponderID uuid.UUID        `json:"responder_id"`
	Status      AssignmentStatus `json:"status"`
	AssignedAt  time.Time        `json:"assigned_at"`
	AcceptedAt  *time.Time       `json:"accepted_at,omitempty"`
	EnrouteAt   *time.Time       `json:"enroute_at,omitempty"`
	OnSceneAt   *time.Time       `json:"on_scene_at,omitempty"`
	ResolvedAt  *time.Time       `json:"resolved_at,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
	UpdatedAt   time.Time        `json:"updated_at"`

	// Снимок связанного репорта, подгружается одним запросом вместе с назначением
	Report *ReportSnapshot `json:"report,omitempty"`
}

// AssignmentUpdate - частичное обновление назначения при переходе статуса.
// Поле метки времени, соответствующее целевому статусу, выставляется
// исполнителем перехода и больше никогда не очищается.
type AssignmentUpdate struct {
	Status     AssignmentStatus
	UpdatedAt  time.Time
	AcceptedAt *time.Time
	EnrouteAt  *time.Time
	OnSceneAt  *time.Time
	ResolvedAt *time.Time
	Notes      *string
}
