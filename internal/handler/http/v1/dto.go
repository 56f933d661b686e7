package v1

import (
	"time"
)

// UpdateAssignmentStatusRequest DTO для обновления статуса назначения
// @Description DTO для обновления статуса назначения
type UpdateAssignmentStatusRequest struct {
	AssignmentID string  `json:"assignmentId" validate:"required,uuid"`
	Status       string  `json:"status" validate:"required,oneof=accepted enroute on_scene resolved"`
	ResponderID  string  `json:"responderId" validate:"required,uuid"`
	Notes        *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// AssignmentStatusResponse DTO для ответа с результатом перехода статуса
// @Description DTO для ответа с результатом перехода статуса
type AssignmentStatusResponse struct {
	AssignmentID   string    `json:"assignment_id"`
	ReportID       string    `json:"report_id"`
	ResponderID    string    `json:"responder_id"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	Notes          *string   `json:"notes,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AssistNotifyRequest DTO для запроса помощи респондером
// @Description DTO для запроса помощи респондером
type AssistNotifyRequest struct {
	Kind         string  `json:"kind" validate:"required,oneof=assistance backup"`
	ResponderID  string  `json:"responderId" validate:"required,uuid"`
	AssignmentID *string `json:"assignmentId,omitempty" validate:"omitempty,uuid"`
	ReportID     *string `json:"reportId,omitempty" validate:"omitempty,uuid"`
}

// AssistNotifyResponse DTO для ответа на запрос помощи
// @Description DTO для ответа на запрос помощи
type AssistNotifyResponse struct {
	NotifiedCount int `json:"notified_count"`
}

// CriticalReportNotifyRequest DTO для рассылки по критическому репорту
// @Description DTO для рассылки по критическому репорту
type CriticalReportNotifyRequest struct {
	ReportID string `json:"reportId" validate:"required,uuid"`
}

// SetAppVersionRequest DTO для публикации версии приложения
// @Description DTO для публикации версии приложения
type SetAppVersionRequest struct {
	Version  string `json:"version" validate:"required,max=32"`
	Platform string `json:"platform,omitempty" validate:"omitempty,oneof=android ios"`
}

// AppVersionResponse DTO для ответа с записью версии приложения
// @Description DTO для ответа с записью версии приложения
type AppVersionResponse struct {
	Platform      string    `json:"platform"`
	MinVersion    string    `json:"min_version"`
	LatestVersion string    `json:"latest_version"`
	DownloadURL   *string   `json:"download_url,omitempty"`
	ReleaseNotes  *string   `json:"release_notes,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// WeatherAlertRequest DTO для прогона генерации погодных предупреждений.
// Все поля опциональны: по умолчанию используются координаты кампуса.
// @Description DTO для прогона генерации погодных предупреждений
type WeatherAlertRequest struct {
	Latitude  float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	City      string  `json:"city,omitempty" validate:"omitempty,max=255"`
}

// DeleteUserRequest DTO для удаления пользователя
// @Description DTO для удаления пользователя
type DeleteUserRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
}

// UserProfileResponse DTO для профиля пользователя в справочнике
// @Description DTO для профиля пользователя в справочнике
type UserProfileResponse struct {
	UserID        string    `json:"user_id"`
	Role          string    `json:"role"`
	Name          string    `json:"name"`
	UserType      string    `json:"user_type"`
	StudentNumber *string   `json:"student_number,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// SuccessResponse - общий конверт успешного ответа
// @Description Общий конверт успешного ответа
type SuccessResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse - общий конверт ответа с ошибкой
// @Description Общий конверт ответа с ошибкой
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
