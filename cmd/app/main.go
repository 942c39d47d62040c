package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"ordertrack/cmd"
	_ "ordertrack/docs"
	httpadapter "ordertrack/internal/adapters/in/http"
	"ordertrack/internal/adapters/in/ws"
	"ordertrack/internal/adapters/out/broadcast"
	"ordertrack/internal/adapters/out/postgres/orderrepo"
	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/generated/servers"
	"ordertrack/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	ensureDatabaseExists(configs)
	gormDB := connectDatabase(configs)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	hub := broadcast.NewHub(logger)

	app := cmd.NewCompositionRoot(configs, gormDB, hub)

	demoOrderID := ensureDemoOrder(&app, configs)

	if configs.ProgressionEnabled {
		jobManager := jobs.NewJobManager(
			app.CreateAdvanceOrderStatusCommandHandler(),
			demoOrderID,
			configs.ProgressionIntervalSeconds,
			logger,
		)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, hub, logger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                   goDotEnvVariable("HTTP_PORT"),
		DBHost:                     goDotEnvVariable("DB_HOST"),
		DBPort:                     goDotEnvVariable("DB_PORT"),
		DBUser:                     goDotEnvVariable("DB_USER"),
		DBPassword:                 goDotEnvVariable("DB_PASSWORD"),
		DBName:                     goDotEnvVariable("DB_NAME"),
		DBSslMode:                  goDotEnvVariable("DB_SSLMODE"),
		DemoCustomerName:           goDotEnvVariable("DEMO_CUSTOMER_NAME"),
		ProgressionEnabled:         goDotEnvBool("PROGRESSION_ENABLED"),
		ProgressionIntervalSeconds: goDotEnvInt("PROGRESSION_INTERVAL_SECONDS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvBool(key string) bool {
	value, err := strconv.ParseBool(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Invalid boolean value for %s", key)
	}
	return value
}

func goDotEnvInt(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Invalid integer value for %s", key)
	}
	return value
}

// ensureDatabaseExists creates the application database when it is missing,
// so a fresh environment comes up without manual provisioning.
func ensureDatabaseExists(configs cmd.Config) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).
		Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check database existence: %v", err)
	}

	if !exists {
		if _, err = db.Exec(fmt.Sprintf("CREATE DATABASE %q", configs.DBName)); err != nil {
			log.Fatalf("Failed to create database %s: %v", configs.DBName, err)
		}
	}
}

func connectDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// ensureDemoOrder resolves the stable demo order used by the progression
// job and the live tracking demo.
func ensureDemoOrder(app *cmd.CompositionRoot, configs cmd.Config) kernel.UUID {
	ensureCmd, err := commands.NewEnsureDemoOrderCommand(configs.DemoCustomerName)
	if err != nil {
		log.Fatalf("Invalid demo customer name: %v", err)
	}

	handler := app.CreateEnsureDemoOrderCommandHandler()
	demoOrderID, err := handler.Handle(context.Background(), ensureCmd)
	if err != nil {
		log.Fatalf("Failed to ensure demo order: %v", err)
	}

	return demoOrderID
}

func startWebServer(app *cmd.CompositionRoot, hub *broadcast.Hub, logger *slog.Logger, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/openapi.json", func(c echo.Context) error {
		swagger, err := servers.GetSwagger()
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to load API spec")
		}
		return c.JSON(http.StatusOK, swagger)
	})

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateAdvanceOrderStatusCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderTrackingQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	wsHandler := ws.NewHandler(hub, app.CreateGetOrderTrackingQueryHandler(), logger)
	e.GET("/ws/orders/:orderId/tracking", wsHandler.Subscribe)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
