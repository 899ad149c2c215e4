package routes

import (
	"isp_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProspects = "/prospects"
	PathClients   = "/clients"
)

func addProspectRoutes(rg *gin.RouterGroup, prospectHandler *handlers.ProspectHandler, finalizeHandler *handlers.FinalizeHandler) {
	prospects := rg.Group(PathProspects)
	{
		prospects.POST("", prospectHandler.CreateProspect)
		prospects.GET("", prospectHandler.ListProspects)
		prospects.GET("/:id", prospectHandler.GetProspect)
		prospects.DELETE("/:id", prospectHandler.DeleteProspect)
		prospects.PATCH("/:id/cancel", prospectHandler.CancelProspect)
		prospects.PATCH("/:id/reactivate", prospectHandler.ReactivateProspect)
		prospects.GET("/:id/history", prospectHandler.ProspectHistory)
		prospects.POST("/:id/finalize", finalizeHandler.FinalizeProspect)
	}
}

func addClientRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PATCH("/:id/cancel", clientHandler.CancelClient)
		clients.GET("/:id/billing", clientHandler.GetBilling)
		clients.POST("/:id/charges", clientHandler.AddCharge)
		clients.GET("/:id/charges", clientHandler.ListCharges)
		clients.GET("/:id/payments", clientHandler.ListPayments)
	}
}
