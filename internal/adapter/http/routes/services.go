package routes

import (
	"isp_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathServices = "/services"

func addServiceRoutes(rg *gin.RouterGroup, serviceHandler *handlers.ScheduledServiceHandler) {
	services := rg.Group(PathServices)
	{
		services.POST("", serviceHandler.ScheduleService)
		services.GET("", serviceHandler.ListServices)
		services.GET("/report", serviceHandler.VisitsReport)
		services.GET("/:id", serviceHandler.GetService)
		services.PATCH("/:id/reschedule", serviceHandler.RescheduleService)
		services.PATCH("/:id/start", serviceHandler.StartVisit)
		services.PATCH("/:id/complete", serviceHandler.CompleteVisit)
		services.PATCH("/:id/cancel", serviceHandler.CancelService)
	}
}
