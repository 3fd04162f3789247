package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	handler "github.com/zdziszkee/swift-registry/internal/api/handlers"
	"github.com/zdziszkee/swift-registry/internal/api/router"
	config "github.com/zdziszkee/swift-registry/internal/configurations"
	"github.com/zdziszkee/swift-registry/internal/database"
	importer "github.com/zdziszkee/swift-registry/internal/importers"
	repository "github.com/zdziszkee/swift-registry/internal/repositories"
	service "github.com/zdziszkee/swift-registry/internal/services"
)

func main() {
	// Optional .env for local development.
	_ = godotenv.Load()

	var configPath string
	var loadFile string

	rootCmd := &cobra.Command{
		Use:   "swiftregistry",
		Short: "SWIFT/BIC code registry service",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, loadFile)
		},
	}
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to configuration file")
	rootCmd.Flags().StringVar(&loadFile, "load", "", "Path to SWIFT codes data file to load")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(configPath, loadFile string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override config with command line flags if provided
	if loadFile != "" {
		cfg.Data.SwiftCodesFile = loadFile
		cfg.Data.AutoLoad = true
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	countries := repository.NewSQLCountryRepository(db)
	banks := repository.NewSQLBankRepository(db)
	branches := repository.NewSQLBranchRepository(db)

	if cfg.Data.AutoLoad {
		if err := autoLoad(cfg, countries, banks, branches); err != nil {
			log.Printf("WARNING: failed to load SWIFT codes: %v", err)
		}
	}

	swiftService := service.NewSwiftService(countries, banks, branches)
	swiftHandler := handler.NewSwiftHandler(swiftService)
	app := router.SetupRoutes(swiftHandler)

	// Start server in a goroutine so we can handle graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		log.Printf("Starting server on %s", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("Server exiting")
	return nil
}

// autoLoad runs the one-shot bulk import before the listener starts:
// the configured file if set, otherwise the first tabular file found
// in the data directory.
func autoLoad(cfg *config.Config, countries repository.CountryRepository, banks repository.BankRepository, branches repository.BranchRepository) error {
	dataFile := cfg.Data.SwiftCodesFile
	if dataFile == "" {
		found, err := importer.FindDataFile(cfg.Data.SwiftCodesDir)
		if err != nil {
			return err
		}
		dataFile = found
	}

	log.Printf("Loading SWIFT codes from %s", dataFile)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	swiftImporter := importer.NewSwiftImporter(countries, banks, branches)
	summary, err := swiftImporter.ImportFile(ctx, dataFile)
	if err != nil {
		return err
	}

	log.Printf("Successfully loaded %d countries, %d banks, %d branches", summary.Countries, summary.Banks, summary.Branches)
	return nil
}
