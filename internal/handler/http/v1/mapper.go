package v1

import (
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/service"
)

// EventToStatusResponse преобразует событие перехода в DTO для ответа
func EventToStatusResponse(event *models.TransitionEvent) *AssignmentStatusResponse {
	return &AssignmentStatusResponse{
		AssignmentID:   event.AssignmentID.String(),
		ReportID:       event.ReportID.String(),
		ResponderID:    event.ResponderID.String(),
		PreviousStatus: string(event.PreviousStatus),
		NewStatus:      string(event.NewStatus),
		Notes:          event.Notes,
		UpdatedAt:      event.UpdatedAt,
	}
}

// DTOToStatusUpdateRequest преобразует DTO в запрос сервисного слоя
func DTOToStatusUpdateRequest(dto UpdateAssignmentStatusRequest) service.StatusUpdateRequest {
	return service.StatusUpdateRequest{
		AssignmentID: dto.AssignmentID,
		Status:       dto.Status,
		ResponderID:  dto.ResponderID,
		Notes:        dto.Notes,
	}
}

// ModelToAppVersionResponse преобразует доменную модель в DTO для ответа
func ModelToAppVersionResponse(model *models.AppVersion) *AppVersionResponse {
	return &AppVersionResponse{
		Platform:      model.Platform,
		MinVersion:    model.MinVersion,
		LatestVersion: model.LatestVersion,
		DownloadURL:   model.DownloadURL,
		ReleaseNotes:  model.ReleaseNotes,
		UpdatedAt:     model.UpdatedAt,
	}
}

// ModelsToUserProfileResponses преобразует слайс профилей в слайс DTO
func ModelsToUserProfileResponses(profiles []*models.UserProfile) []*UserProfileResponse {
	responses := make([]*UserProfileResponse, len(profiles))
	for i, profile := range profiles {
		responses[i] = &UserProfileResponse{
			UserID:        profile.UserID.String(),
			Role:          profile.Role,
			Name:          profile.Name,
			UserType:      profile.UserType,
			StudentNumber: profile.StudentNumber,
			IsActive:      profile.IsActive,
			CreatedAt:     profile.CreatedAt,
		}
	}
	return responses
}
