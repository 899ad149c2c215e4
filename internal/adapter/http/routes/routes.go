package routes

import (
	"strconv"

	_ "isp_backoffice/docs" // swag generated
	request "isp_backoffice/internal/adapter/http/dto/request"
	"isp_backoffice/internal/adapter/http/handlers"
	"isp_backoffice/internal/adapter/persistence/repository"
	"isp_backoffice/internal/infrastructure/config"
	"isp_backoffice/internal/infrastructure/database"
	"isp_backoffice/internal/infrastructure/logger"
	"isp_backoffice/internal/infrastructure/metrics"
	"isp_backoffice/internal/infrastructure/payments"
	"isp_backoffice/internal/usecase"
	"isp_backoffice/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Prospects    *handlers.ProspectHandler
	Finalize     *handlers.FinalizeHandler
	Clients      *handlers.ClientHandler
	Charges      *handlers.ChargeHandler
	Payments     *handlers.PaymentHandler
	ServicePlans *handlers.ServicePlanHandler
	Services     *handlers.ScheduledServiceHandler
}

// Run will start the server
func Run(cfg *config.Config) {
	router, err := NewRouter(BuildHandlers(cfg))
	if err != nil {
		logger.L.Fatalf("Failed to build the router: %v", err)
	}

	logger.L.Infof("[http] listening port=%d", cfg.Port)
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		logger.L.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the gin engine with middlewares, docs, metrics and the /v1 routes.
func NewRouter(h Handlers) (*gin.Engine, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, errors.New("unexpected binding validator engine")
	}
	if err := request.RegisterValidators(v); err != nil {
		return nil, errors.Wrap(err, "register validators")
	}

	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", metrics.Handler())

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProspectRoutes(v1, h.Prospects, h.Finalize)
	addClientRoutes(v1, h.Clients)
	addBillingRoutes(v1, h.Finalize, h.Charges, h.Payments, h.ServicePlans)
	addServiceRoutes(v1, h.Services)
	return router, nil
}

// BuildHandlers wires repositories, use cases and handlers from the configuration.
func BuildHandlers(cfg *config.Config) Handlers {
	ddb := database.ConnectDynamoDB(cfg.AWS)

	prospectRepo := repository.NewProspectDynamoRepository(ddb, cfg.Tables.Prospects)
	changeRepo := repository.NewProspectChangeDynamoRepository(ddb, cfg.Tables.ProspectChanges)
	clientRepo := repository.NewClientDynamoRepository(ddb, cfg.Tables.Clients)
	billingRepo := repository.NewClientBillingDynamoRepository(ddb, cfg.Tables.ClientBilling)
	equipmentRepo := repository.NewEquipmentDynamoRepository(ddb, cfg.Tables.Equipment)
	chargeRepo := repository.NewChargeDynamoRepository(ddb, cfg.Tables.Charges)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb, cfg.Tables.Payments)
	planRepo := repository.NewServicePlanDynamoRepository(ddb, cfg.Tables.ServicePlans)
	serviceRepo := repository.NewScheduledServiceDynamoRepository(ddb, cfg.Tables.ScheduledServices)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago)
	if err != nil {
		logger.L.Warnf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	billingCfg := cfg.Billing
	planUseCase := usecase.NewServicePlanUseCase(planRepo, billingCfg.PlanCacheTTL)
	prospectUseCase := usecase.NewProspectUseCase(prospectRepo, changeRepo)
	finalizeUseCase := usecase.NewFinalizeUseCase(prospectRepo, changeRepo, clientRepo, billingRepo, equipmentRepo, chargeRepo, planUseCase)
	clientUseCase := usecase.NewClientUseCase(clientRepo, billingRepo, chargeRepo, billingCfg.BalanceRetries)
	chargeUseCase := usecase.NewChargeUseCase(clientRepo, billingRepo, chargeRepo, billingCfg.DefaultBillingDay, billingCfg.ChargeWorkers, billingCfg.BalanceRetries)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, chargeRepo, clientRepo, billingRepo, paymentGateway, cfg.MercadoPago, billingCfg.BalanceRetries)
	serviceUseCase := usecase.NewScheduledServiceUseCase(serviceRepo, clientRepo, prospectRepo, chargeRepo, billingRepo, billingCfg.BalanceRetries)

	return Handlers{
		Prospects:    handlers.NewProspectHandler(prospectUseCase),
		Finalize:     handlers.NewFinalizeHandler(finalizeUseCase),
		Clients:      handlers.NewClientHandler(clientUseCase, paymentUseCase),
		Charges:      handlers.NewChargeHandler(chargeUseCase),
		Payments:     handlers.NewPaymentHandler(paymentUseCase),
		ServicePlans: handlers.NewServicePlanHandler(planUseCase),
		Services:     handlers.NewScheduledServiceHandler(serviceUseCase),
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.L.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
