package main

import (
	stdlog "log"

	_ "installer_crm/docs"
	"installer_crm/internal/adapter/http/routes"
	"installer_crm/internal/config"
	"installer_crm/internal/platform/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Installer CRM API
// @version         1.0
// @description     Constructions, offers, clients and calendar with local-first persistence backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("invalid configuration: %v", err)
	}

	log, err := logger.New(cfg.Server.LogMode)
	if err != nil {
		stdlog.Fatalf("failed to build logger: %v", err)
	}
	defer log.Sync()

	if err := routes.Run(cfg, log); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}
