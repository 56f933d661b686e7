package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/emergency_response_system/internal/config"
	"github.com/shenikar/emergency_response_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	assignmentService service.AssignmentService
	assistService     service.AssistService
	userService       service.UserService
	appVersionService service.AppVersionService
	weatherService    service.WeatherService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(
	assignmentService service.AssignmentService,
	assistService service.AssistService,
	userService service.UserService,
	appVersionService service.AppVersionService,
	weatherService service.WeatherService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		assignmentService: assignmentService,
		assistService:     assistService,
		userService:       userService,
		appVersionService: appVersionService,
		weatherService:    weatherService,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// writeServiceError транслирует ошибки сервисного слоя в HTTP-статусы:
// ошибки клиента - 400, чужое назначение - 403, отсутствующие сущности - 404,
// конкурентный конфликт - 409, всё инфраструктурное - 500 без деталей.
func (h *Handler) writeServiceError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	var transitionErr *service.IllegalTransitionError
	var authErr *service.AuthorizationError
	var stateErr *service.InvalidStateError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &transitionErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: err.Error()})
	case errors.As(err, &authErr):
		c.JSON(http.StatusForbidden, ErrorResponse{Success: false, Error: err.Error()})
	case errors.As(err, &stateErr):
		// Повреждённый статус в бд - проблема данных, не клиента
		c.JSON(http.StatusInternalServerError, ErrorResponse{Success: false, Error: "internal server error"})
	case errors.Is(err, service.ErrAssignmentNotFound),
		errors.Is(err, service.ErrResponderNotFound),
		errors.Is(err, service.ErrReportNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Success: false, Error: err.Error()})
	case errors.Is(err, service.ErrAssignmentConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Success: false, Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Success: false, Error: "internal server error"})
	}
}

// @Summary Update assignment status
// @Description Advance an assignment one step through its lifecycle (accepted, enroute, on_scene, resolved) and mirror the change onto the linked report. Requires API key.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body UpdateAssignmentStatusRequest true "Status update request"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid request body, validation error or illegal transition"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Responder does not own the assignment"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 409 {object} ErrorResponse "Assignment was modified concurrently"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /assignments/status [post]
func (h *Handler) updateAssignmentStatus(c *gin.Context) {
	var input UpdateAssignmentStatusRequest
	log := h.logger.WithField("method", "updateAssignmentStatus")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: err.Error()})
		return
	}

	event, message, err := h.assignmentService.UpdateStatus(c.Request.Context(), DTOToStatusUpdateRequest(input))
	if err != nil {
		log.WithError(err).Warn("Failed to update assignment status")
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    EventToStatusResponse(event),
		Message: message,
	})
}

// @Summary Notify that a responder needs assistance
// @Description Notify all active super users that a responder needs assistance or backup. Requires API key.
// @Tags Notifications
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AssistNotifyRequest true "Assistance request"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Responder not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /notify/assistance [post]
func (h *Handler) notifyAssistance(c *gin.Context) {
	var input AssistNotifyRequest
	log := h.logger.WithField("method", "notifyAssistance")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: err.Error()})
		return
	}

	notified, err := h.assistService.NotifyAssistance(c.Request.Context(), service.AssistRequest{
		Kind:         input.Kind,
		ResponderID:  input.ResponderID,
		AssignmentID: input.AssignmentID,
		ReportID:     input.ReportID,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to notify assistance")
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    AssistNotifyResponse{NotifiedCount: notified},
	})
}

// @Summary Notify super users about a critical report
// @Description Send in-app and push notifications to all super users when a report is critical (priority 1-2 or CRITICAL/HIGH severity). Non-critical and dismissed reports are skipped without error. Requires API key.
// @Tags Notifications
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CriticalReportNotifyRequest true "Critical report notification request"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Report not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /notify/critical-report [post]
func (h *Handler) notifyCriticalReport(c *gin.Context) {
	var input CriticalReportNotifyRequest
	log := h.logger.WithField("method", "notifyCriticalReport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: err.Error()})
		return
	}

	result, err := h.assistService.NotifyCriticalReport(c.Request.Context(), input.ReportID)
	if err != nil {
		log.WithError(err).Warn("Failed to notify critical report")
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: result})
}

// @Summary Get app version gate
// @Description Get the minimum and latest allowed app version for a platform. Returns a force-update gate when the version record is unavailable.
// @Tags AppVersion
// @Accept json
// @Produce json
// @Param platform query string false "Platform (android or ios)" default(android)
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid platform"
// @Router /app-version [get]
func (h *Handler) getAppVersion(c *gin.Context) {
	log := h.logger.WithField("method", "getAppVersion")

	gate, err := h.appVersionService.GetVersionGate(c.Request.Context(), c.Query("platform"))
	if err != nil {
		log.WithError(err).Warn("Failed to resolve version gate")
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: gate})
}

// @Summary Publish a new app version
// @Description Set the latest allowed app version for a platform. Requires the version update secret.
// @Tags AppVersion
// @Accept json
// @Produce json
// @Param X-App-Version-Secret header string true "Version update secret"
// @Param request body SetAppVersionRequest true "Version to publish"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Missing or invalid secret"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /app-version [post]
func (h *Handler) setAppVersion(c *gin.Context) {
	log := h.logger.WithField("method", "setAppVersion")

	// Отдельный секрет вместо API-ключа: версию публикует CI-пайплайн
	if h.cfg.AppVersionSecret == "" || c.GetHeader("X-App-Version-Secret") != h.cfg.AppVersionSecret {
		log.Warn("Invalid app version update secret")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Success: false, Error: "invalid or missing update secret"})
		return
	}

	var input SetAppVersionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: err.Error()})
		return
	}

	updated, err := h.appVersionService.SetVersion(c.Request.Context(), input.Platform, input.Version)
	if err != nil {
		log.WithError(err).Warn("Failed to set app version")
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    ModelToAppVersionResponse(updated),
		Message: "App version updated",
	})
}

// @Summary Run weather alert generation
// @Description Fetch current weather for the given coordinates (campus by default), derive threshold alerts and notify active users about new ones. Requires API key.
// @Tags Weather
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body WeatherAlertRequest false "Coordinates override"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /weather/alerts [post]
func (h *Handler) generateWeatherAlerts(c *gin.Context) {
	var input WeatherAlertRequest
	log := h.logger.WithField("method", "generateWeatherAlerts")

	// Тело опционально: пустое означает координаты по умолчанию
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: "invalid request body"})
			return
		}
		if err := h.validate.Struct(input); err != nil {
			log.WithError(err).Warn("Validation failed")
			c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: err.Error()})
			return
		}
	}

	result, err := h.weatherService.GenerateAlerts(c.Request.Context(), input.Latitude, input.Longitude, input.City)
	if err != nil {
		log.WithError(err).Error("Failed to generate weather alerts")
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: result})
}

// @Summary List user profiles
// @Description Get the directory of all user profiles. Requires API key.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users [get]
func (h *Handler) listUsers(c *gin.Context) {
	log := h.logger.WithField("method", "listUsers")

	profiles, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list users")
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: ModelsToUserProfileResponses(profiles)})
}

// @Summary Delete a user
// @Description Delete a user and cascade over all owned data (reports, notifications, subscriptions, responder assignments, profiles). Requires API key.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body DeleteUserRequest true "User to delete"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/delete [post]
func (h *Handler) deleteUser(c *gin.Context) {
	var input DeleteUserRequest
	log := h.logger.WithField("method", "deleteUser")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: err.Error()})
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), input.UserID); err != nil {
		log.WithError(err).Error("Failed to delete user")
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "User deleted"})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
