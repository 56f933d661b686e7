package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1. Health-check и версионный
// гейт открыты: клиент обязан узнать про принудительное обновление до любой
// аутентификации. Публикация версии защищена собственным секретом.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/system/health", h.healthCheck)
	api.GET("/app-version", h.getAppVersion)
	api.POST("/app-version", h.setAppVersion)

	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		protected.POST("/assignments/status", h.updateAssignmentStatus)
		protected.POST("/notify/assistance", h.notifyAssistance)
		protected.POST("/notify/critical-report", h.notifyCriticalReport)
		protected.POST("/weather/alerts", h.generateWeatherAlerts)

		users := protected.Group("/users")
		{
			users.GET("", h.listUsers)
			users.POST("/delete", h.deleteUser)
		}
	}
}
