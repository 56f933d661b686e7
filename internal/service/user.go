package service

//go:generate mockgen -source=user.go -destination=mock_user_test.go -package=service -exclude_interfaces=UserService

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

// UserRepository определяет контракт для работы с бд пользователей и респондеров
type UserRepository interface {
	GetResponderByID(ctx context.Context, id uuid.UUID) (*models.Responder, error)
	ListSuperUserIDs(ctx context.Context) ([]string, error)
	ListProfiles(ctx context.Context) ([]*models.UserProfile, error)

	// Каскад удаления пользователя. Каждый шаг самостоятелен: сервис решает,
	// какие сбои терпимы.
	DeleteReportsByUser(ctx context.Context, userID uuid.UUID) error
	DeleteNotificationsByUser(ctx context.Context, userID uuid.UUID) error
	DeleteSubscriptionsByUser(ctx context.Context, userID uuid.UUID) error
	DeleteAuditByUser(ctx context.Context, userID uuid.UUID) error
	ListResponderIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	DeleteAssignmentsByResponder(ctx context.Context, responderID uuid.UUID) error
	DeleteResponderByUser(ctx context.Context, userID uuid.UUID) error
	DeleteReporterByUser(ctx context.Context, userID uuid.UUID) error
	DeleteProfileByUser(ctx context.Context, userID uuid.UUID) error
}

// UserService определяет контракт управления справочником пользователей
type UserService interface {
	ListUsers(ctx context.Context) ([]*models.UserProfile, error)
	// DeleteUser удаляет пользователя и все его данные. Отсутствующие строки
	// на промежуточных шагах терпимы, сбой удаления профиля - нет.
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	repo   UserRepository
	logger *logrus.Logger
}

func NewUserService(repo UserRepository, logger *logrus.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

// ListUsers возвращает список профилей пользователей
func (s *userService) ListUsers(ctx context.Context) ([]*models.UserProfile, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "ListUsers",
	})

	profiles, err := s.repo.ListProfiles(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list user profiles")
		return nil, fmt.Errorf("service: could not list user profiles: %w", err)
	}

	log.WithField("count", len(profiles)).Info("User profiles listed")
	return profiles, nil
}

// DeleteUser выполняет каскад удаления: данные пользователя, назначения его
// респондерских профилей, сами профили респондера/репортера и профиль
// пользователя. Порядок уважает внешние ключи.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "DeleteUser",
		"user_id": userID,
	})

	id, err := uuid.Parse(userID)
	if err != nil {
		return &ValidationError{Reason: "userId must be a valid UUID"}
	}

	log.Info("Deleting user and owned data")

	// Шаги best-effort: отсутствующие строки или отдельные сбои не прерывают каскад
	steps := []struct {
		name string
		run  func(context.Context, uuid.UUID) error
	}{
		{"reports", s.repo.DeleteReportsByUser},
		{"notifications", s.repo.DeleteNotificationsByUser},
		{"subscriptions", s.repo.DeleteSubscriptionsByUser},
		{"audit_log", s.repo.DeleteAuditByUser},
	}
	for _, step := range steps {
		if err := step.run(ctx, id); err != nil {
			log.WithField("step", step.name).WithError(err).Warn("Cascade step failed, continuing")
		}
	}

	// Назначения удаляются до респондера, чтобы не осталось висячих ссылок
	responderIDs, err := s.repo.ListResponderIDsByUser(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to list responder profiles, continuing")
	}
	for _, responderID := range responderIDs {
		if err := s.repo.DeleteAssignmentsByResponder(ctx, responderID); err != nil {
			log.WithField("responder_id", responderID).WithError(err).Warn("Failed to delete assignments, continuing")
		}
	}
	if err := s.repo.DeleteResponderByUser(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete responder profile, continuing")
	}
	if err := s.repo.DeleteReporterByUser(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete reporter profile, continuing")
	}

	// Профиль - авторитетная запись: её сбой фатален для запроса
	if err := s.repo.DeleteProfileByUser(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete user profile")
		return fmt.Errorf("service: could not delete user profile: %w", err)
	}

	log.Info("User deleted")
	return nil
}
