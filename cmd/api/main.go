package main

import (
	_ "isp_backoffice/docs"
	"isp_backoffice/internal/adapter/http/routes"
	"isp_backoffice/internal/infrastructure/config"
	"isp_backoffice/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           ISP Back-office API
// @version         1.0
// @description     Prospects, client finalization with proration, charges and payments, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description Id of the staff member acting on the request.

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.L.Fatalf("failed to load configuration: %v", err)
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		logger.L.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logger.L.Sync() }()

	routes.Run(cfg)
}
