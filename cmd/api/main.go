package main

import (
	"context"
	"os"
	"os/signal"
	_ "rental_console/docs"
	"rental_console/internal/adapter/http/routes"
	"rental_console/internal/config"
	"rental_console/internal/infrastructure/logging"
	"syscall"
	_ "time/tzdata"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Rental Console API
// @version         1.0
// @description     Console backend for laptop and PC rentals, fronting the rental API.
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
// @description Type "Bearer" followed by a space and the session token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("info").WithError(err).Fatal("[main] invalid configuration")
	}
	logger := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, logger); err != nil {
		logger.WithError(err).Fatal("[main] failed to startup the application")
	}
}
