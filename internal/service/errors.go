package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shenikar/emergency_response_system/internal/models"
)

// Сентинельные ошибки слоя хранения
var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrResponderNotFound  = errors.New("responder not found")
	ErrReportNotFound     = errors.New("report not found")
	ErrAppVersionNotFound = errors.New("app version not found")

	// ErrAssignmentConflict - оптимистическая проверка не прошла: назначение
	// было изменено конкурентно между снимком и записью
	ErrAssignmentConflict = errors.New("assignment was modified concurrently")
)

// ValidationError - некорректный запрос, вина клиента
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// InvalidStateError - текущий статус назначения не входит в определённое
// множество. Это порча существующих данных, а не ошибка пользователя.
type InvalidStateError struct {
	Status string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid current status: %s", e.Status)
}

// IllegalTransitionError - запрошенный переход не входит в таблицу переходов.
// Сообщение называет оба статуса и легальных преемников.
type IllegalTransitionError struct {
	From    models.AssignmentStatus
	To      models.AssignmentStatus
	Allowed []models.AssignmentStatus
}

func (e *IllegalTransitionError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		allowed[i] = string(s)
	}
	return fmt.Sprintf("invalid status transition from %s to %s. Allowed transitions: %s",
		e.From, e.To, strings.Join(allowed, ", "))
}

// AuthorizationError - актор не владеет назначением
type AuthorizationError struct {
	AssignmentID string
}

func (e *AuthorizationError) Error() string {
	return "responder is not authorized to update this assignment"
}

// StoreError - инфраструктурный сбой при записи в хранилище
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// TransactionError - сбой обновления репорта после подтверждённой записи
// назначения. RollbackErr ненулевой в известном принятом пробеле, когда
// компенсирующий откат сам не удался.
type TransactionError struct {
	Err         error
	RollbackErr error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("failed to update report: %v", e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}
