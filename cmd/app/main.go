package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"strconv"
	"time"

	"grocery/cmd"
	adapterhttp "grocery/internal/adapters/in/http"
	"grocery/internal/core/application/usecases/commands"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultQuoteMaxAge = 15 * time.Minute

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	// The snapshot stores start empty. Load them before taking traffic so
	// the first request does not race the refresh job.
	refreshHandler := app.CreateRefreshSnapshotsCommandHandler()
	if err := refreshHandler.Handle(context.Background(), commands.NewRefreshSnapshotsCommand()); err != nil {
		log.Fatalf("Initial snapshot refresh failed: %v", err)
	}

	jobManager := app.CreateJobManager(configs)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		QuoteMaxAge: quoteMaxAgeFromEnv(),
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

func quoteMaxAgeFromEnv() time.Duration {
	raw := goDotEnvVariable("QUOTE_MAX_AGE_MINUTES")
	if raw == "" {
		return defaultQuoteMaxAge
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		log.Fatalf("Invalid QUOTE_MAX_AGE_MINUTES: %q", raw)
	}
	return time.Duration(minutes) * time.Minute
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := adapterhttp.NewServer(
		app.CreateRouteOrderCommandHandler(),
		app.CreateConfirmQuoteCommandHandler(),
		app.CreateReleaseQuoteCommandHandler(),
		app.CreateAssignVendorCategoryCommandHandler(),
		app.CreateUpsertAllocationRuleCommandHandler(),
		app.CreateApplyWeatherEventCommandHandler(),
		app.CreateRestockInventoryCommandHandler(),
		app.CreateResolveLocationQueryHandler(),
		app.CreateGetQuoteQueryHandler(),
		app.CreateGetZoneWeatherQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
