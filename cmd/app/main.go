package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"ordering/cmd"
	orderinghttp "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/bookingfeed"
	ordpostgres "ordering/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openPrimaryDB(configs)
	if err := ordpostgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	feed := openBookingFeed(configs)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		feed,
	)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		ReservationsDBDSN: goDotEnvVariable("RESERVATIONS_DB_DSN"),
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

func openPrimaryDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func openBookingFeed(configs cmd.Config) *bookingfeed.GormBookingFeed {
	reservationsDB, err := gorm.Open(postgres.Open(configs.ReservationsDBDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to reservations database: %v", err)
	}

	feed, err := bookingfeed.NewGormBookingFeed(reservationsDB)
	if err != nil {
		log.Fatalf("Error creating booking feed: %v", err)
	}
	return feed
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := orderinghttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateCloseOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateAddOrderLineCommandHandler(),
		app.CreateUpdateOrderLineCommandHandler(),
		app.CreateRemoveOrderLineCommandHandler(),
		app.CreateAssignLineSupplierCommandHandler(),
		app.CreateReleaseShipmentBatchCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetShipmentBatchesQueryHandler(),
		app.CreateGetOrderActivityQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
