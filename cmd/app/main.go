package main

import (
	"fmt"
	"log/slog"
	"os"

	"barbari/cmd"
	httpadapter "barbari/internal/adapters/in/http"
	"barbari/internal/adapters/out/notifier"
	"barbari/internal/adapters/out/postgres/discountrepo"
	"barbari/internal/adapters/out/postgres/driverrepo"
	"barbari/internal/adapters/out/postgres/orderrepo"
	"barbari/internal/adapters/out/postgres/pricingrepo"
	"barbari/internal/adapters/out/postgres/ratingrepo"
	"barbari/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(app.CreateJobDiscountRepository(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&driverrepo.DriverDTO{},
		&pricingrepo.ConfigurationDTO{},
		&discountrepo.CodeDTO{},
		&ratingrepo.OrderRatingDTO{},
		&notifier.NotificationDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:        app.CreateCreateOrderCommandHandler(),
		SetOrderStatus:     app.CreateSetOrderStatusCommandHandler(),
		AssignDriver:       app.CreateAssignDriverCommandHandler(),
		CancelOrder:        app.CreateCancelOrderCommandHandler(),
		RateOrder:          app.CreateRateOrderCommandHandler(),
		CreateDriver:       app.CreateCreateDriverCommandHandler(),
		CreatePricingCfg:   app.CreateCreatePricingConfigurationCommandHandler(),
		ActivatePricingCfg: app.CreateActivatePricingConfigurationCommandHandler(),
		CreateDiscountCode: app.CreateCreateDiscountCodeCommandHandler(),
		CalculatePrice:     app.CreateCalculatePriceQueryHandler(),
		ValidateDiscount:   app.CreateValidateDiscountQueryHandler(),
		GetActiveConfig:    app.CreateGetActivePricingConfigQueryHandler(),
		GetOrder:           app.CreateGetOrderQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
