package models

import (
	"time"

	"github.com/google/uuid"
)

// Responder - профиль респондера
type Responder struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Role   string    `json:"role"`
}

// UserProfile - профиль пользователя приложения
type UserProfile struct {
	UserID        uuid.UUID `json:"user_id"`
	Role          string    `json:"role"`
	Name          string    `json:"name"`
	UserType      string    `json:"user_type"`
	StudentNumber *string   `json:"student_number,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}
