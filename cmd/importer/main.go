package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gocarina/gocsv"

	"autologic-fitment-api/internal/config"
	"autologic-fitment-api/internal/database"
	"autologic-fitment-api/internal/model"
	"autologic-fitment-api/internal/repository"
	"autologic-fitment-api/internal/service"
)

func main() {
	// Parse command line flags
	var (
		// Database flags
		dbHost     = flag.String("db-host", getEnv("DB_HOST", "localhost"), "Database host")
		dbPort     = flag.Int("db-port", getEnvInt("DB_PORT", 5432), "Database port")
		dbName     = flag.String("db-name", getEnv("DB_NAME", "autologic"), "Database name")
		dbUser     = flag.String("db-user", getEnv("DB_USER", "autologic"), "Database user")
		dbPassword = flag.String("db-password", getEnv("DB_PASSWORD", ""), "Database password")
		dbSSLMode  = flag.String("db-sslmode", getEnv("DB_SSLMODE", "disable"), "Database SSL mode")

		// Input files
		vehiclesFile = flag.String("vehicles", "", "CSV file with vehicles to import")
		productsFile = flag.String("products", "", "CSV file with products to import")
		compatFile   = flag.String("compatibility", "", "CSV file with product/vehicle pairs to import")

		dryRun   = flag.Bool("dry-run", false, "Parse and validate input without writing to the database")
		logLevel = flag.String("log-level", getEnv("LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	)

	flag.Parse()

	if *vehiclesFile == "" && *productsFile == "" && *compatFile == "" {
		fmt.Fprintln(os.Stderr, "Error: nothing to import (use -vehicles, -products and/or -compatibility)")
		flag.Usage()
		os.Exit(1)
	}

	if *dbPassword == "" {
		fmt.Fprintln(os.Stderr, "Error: database password is required (use -db-password or DB_PASSWORD env)")
		os.Exit(1)
	}

	logger := setupLogger(*logLevel)

	logger.Info("iniciando importador",
		"db_host", *dbHost,
		"db_name", *dbName,
		"vehicles", *vehiclesFile,
		"products", *productsFile,
		"compatibility", *compatFile,
		"dry_run", *dryRun,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("senal recibida, cancelando importacion", "signal", sig)
		cancel()
	}()

	dbPool, err := database.NewPostgresPool(ctx, config.DatabaseConfig{
		Host:     *dbHost,
		Port:     *dbPort,
		Name:     *dbName,
		User:     *dbUser,
		Password: *dbPassword,
		SSLMode:  *dbSSLMode,
		MaxConns: 10,
		MinConns: 2,
	})
	if err != nil {
		logger.Error("fallo la conexion a la base de datos", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.RunMigrations(ctx, dbPool); err != nil {
		logger.Error("fallo la migracion del esquema", "error", err)
		os.Exit(1)
	}

	vehicleRepo := repository.NewVehicleRepo(dbPool)
	productRepo := repository.NewProductRepo(dbPool)
	compatRepo := repository.NewCompatibilityRepo(dbPool)
	vehicleSvc := service.NewVehicleService(vehicleRepo)
	fitmentSvc := service.NewFitmentService(compatRepo, productRepo, vehicleRepo, logger)

	exitCode := 0

	if *vehiclesFile != "" {
		vehicles, err := readCSV[model.Vehicle](*vehiclesFile)
		if err != nil {
			logger.Error("no se pudo leer el archivo de vehiculos", "file", *vehiclesFile, "error", err)
			os.Exit(1)
		}
		ok, failed := importVehicles(ctx, vehicleSvc, vehicles, *dryRun, logger)
		logger.Info("importacion de vehiculos terminada", "success", ok, "errors", failed)
		if failed > 0 {
			exitCode = 1
		}
	}

	if *productsFile != "" {
		products, err := readCSV[model.Product](*productsFile)
		if err != nil {
			logger.Error("no se pudo leer el archivo de productos", "file", *productsFile, "error", err)
			os.Exit(1)
		}
		ok, failed := importProducts(ctx, productRepo, products, *dryRun, logger)
		logger.Info("importacion de productos terminada", "success", ok, "errors", failed)
		if failed > 0 {
			exitCode = 1
		}
	}

	if *compatFile != "" {
		rows, err := readCSV[model.Compatibility](*compatFile)
		if err != nil {
			logger.Error("no se pudo leer el archivo de compatibilidad", "file", *compatFile, "error", err)
			os.Exit(1)
		}
		result := importCompatibility(ctx, fitmentSvc, rows, *dryRun, logger)
		logger.Info("importacion de compatibilidad terminada", "success", result.Success, "errors", result.Errors)
		if result.Errors > 0 {
			exitCode = 1
		}
	}

	if ctx.Err() != nil {
		logger.Info("importacion cancelada")
		os.Exit(1)
	}

	os.Exit(exitCode)
}

// readCSV decodes a headered CSV file into a slice of T using the csv struct
// tags on the model types.
func readCSV[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []T
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("decodificando %s: %w", path, err)
	}
	return rows, nil
}

func importVehicles(ctx context.Context, svc *service.VehicleService, vehicles []model.Vehicle, dryRun bool, logger *slog.Logger) (ok, failed int) {
	for i := range vehicles {
		if ctx.Err() != nil {
			return ok, failed
		}
		if dryRun {
			ok++
			continue
		}
		if err := svc.Create(ctx, &vehicles[i]); err != nil {
			failed++
			logger.Warn("vehiculo rechazado", "row", i+1, "make", vehicles[i].Make, "model", vehicles[i].Model, "error", err)
			continue
		}
		ok++
		logger.Debug("vehiculo importado", "id", vehicles[i].ID, "make", vehicles[i].Make, "model", vehicles[i].Model, "year", vehicles[i].Year)
	}
	return ok, failed
}

func importProducts(ctx context.Context, repo *repository.ProductRepo, products []model.Product, dryRun bool, logger *slog.Logger) (ok, failed int) {
	for i := range products {
		if ctx.Err() != nil {
			return ok, failed
		}
		if dryRun {
			ok++
			continue
		}
		if err := repo.Create(ctx, &products[i]); err != nil {
			failed++
			logger.Warn("producto rechazado", "row", i+1, "sku", products[i].SKU, "error", err)
			continue
		}
		ok++
		logger.Debug("producto importado", "id", products[i].ID, "sku", products[i].SKU)
	}
	return ok, failed
}

func importCompatibility(ctx context.Context, svc *service.FitmentService, rows []model.Compatibility, dryRun bool, logger *slog.Logger) model.BatchResult {
	if dryRun {
		return model.BatchResult{Success: len(rows)}
	}
	var result model.BatchResult
	for i := range rows {
		if ctx.Err() != nil {
			return result
		}
		if err := svc.Create(ctx, &rows[i]); err != nil {
			result.Errors++
			logger.Warn("par de compatibilidad rechazado", "row", i+1, "product_id", rows[i].ProductID, "vehicle_id", rows[i].VehicleID, "error", err)
			continue
		}
		result.Success++
	}
	return result
}

// setupLogger creates a structured logger with the specified level
func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var intValue int
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}
