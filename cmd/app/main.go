package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"supplychain/cmd"
	httpin "supplychain/internal/adapters/in/http"
	"supplychain/internal/adapters/out/postgres/employeerepo"
	"supplychain/internal/adapters/out/postgres/orderrepo"
	"supplychain/internal/adapters/out/postgres/productrepo"
	"supplychain/internal/adapters/out/postgres/shipmentrepo"
	"supplychain/internal/adapters/out/postgres/syncrepo"
	"supplychain/internal/adapters/out/postgres/truckrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
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
		OdooBaseURL: goDotEnvVariable("ODOO_BASE_URL"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&shipmentrepo.ShipmentDTO{},
		&employeerepo.EmployeeDTO{},
		&truckrepo.TruckDTO{},
		&syncrepo.SyncCredentialDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateProductCommandHandler(),
		app.CreatePlaceOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateCreateShipmentCommandHandler(),
		app.CreateDeliverShipmentCommandHandler(),
		app.CreateHireEmployeeCommandHandler(),
		app.CreateDismissEmployeeCommandHandler(),
		app.CreateRegisterTruckCommandHandler(),
		app.CreateGetProductsQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
