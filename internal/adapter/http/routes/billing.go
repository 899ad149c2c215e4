package routes

import (
	"isp_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBilling      = "/billing"
	PathCharges      = "/charges"
	PathPayments     = "/payments"
	PathServicePlans = "/service-plans"
)

func addBillingRoutes(
	rg *gin.RouterGroup,
	finalizeHandler *handlers.FinalizeHandler,
	chargeHandler *handlers.ChargeHandler,
	paymentHandler *handlers.PaymentHandler,
	planHandler *handlers.ServicePlanHandler,
) {
	rg.Group(PathBilling).POST("/preview", finalizeHandler.PreviewProration)

	charges := rg.Group(PathCharges)
	{
		charges.POST("/generate-monthly", chargeHandler.GenerateMonthlyCharges)
		charges.POST("/:charge_id/pay", paymentHandler.PayCharge)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.RecordPayment)
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/:id", paymentHandler.GetPayment)
	}

	plans := rg.Group(PathServicePlans)
	{
		plans.POST("", planHandler.CreateServicePlan)
		plans.GET("", planHandler.ListServicePlans)
		plans.GET("/:id", planHandler.GetServicePlan)
	}
}
