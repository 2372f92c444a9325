package main

import (
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/drawdesk/drawdesk/internal/pkg/config"
	"github.com/drawdesk/drawdesk/internal/pkg/logger"
	"github.com/drawdesk/drawdesk/internal/pkg/server"
	"github.com/drawdesk/drawdesk/services/stub"
)

func main() {
	configPath := flag.String("config", "config/stub.env", "path to env config file")
	flag.Parse()

	configs := config.InitConfig(*configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting stub admin backend",
		logger.String("app", configs.App.Name),
		logger.String("environment", configs.App.Environment))

	if configs.JWT.Secret == "" {
		zapLogger.Fatal("JWT_SECRET must be set")
	}

	store, err := stub.NewStore(configs.Stub.AdminEmail, configs.Stub.AdminPassword, configs.Stub.OTPCode)
	if err != nil {
		zapLogger.Fatal("Failed to seed store", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())

	handler := stub.NewHandler(store, configs)
	handler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
