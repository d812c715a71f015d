package main

import (
	"context"
	"log"
	"os"

	"github.com/kiptoo/carebill/internal/application/service"
	"github.com/kiptoo/carebill/internal/config"
	"github.com/kiptoo/carebill/internal/infrastructure/repository"
	"github.com/kiptoo/carebill/internal/infrastructure/store"
	"github.com/kiptoo/carebill/pkg/invoice"
	"github.com/kiptoo/carebill/pkg/logging"
	"github.com/kiptoo/carebill/pkg/sequence"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := logging.New(cfg.App.LogLevel, cfg.App.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Open the table store
	st, err := store.New(cfg.Storage.DataDir)
	if err != nil {
		logger.Fatal("Failed to open data directory", zap.Error(err))
	}

	// Seed default data
	if cfg.Storage.Seed {
		if err := store.Seed(st, logger); err != nil {
			logger.Warn("Failed to seed sample data", zap.Error(err))
		}
	}

	// Initialize repositories
	billRepo, err := repository.NewBillRepository(st)
	if err != nil {
		logger.Fatal("Failed to load bills table", zap.Error(err))
	}
	stockRepo, err := repository.NewStockRepository(st)
	if err != nil {
		logger.Fatal("Failed to load pharmacy table", zap.Error(err))
	}
	prescRepo, err := repository.NewPrescriptionRepository(st)
	if err != nil {
		logger.Fatal("Failed to load prescriptions table", zap.Error(err))
	}
	patientRepo, err := repository.NewPatientRepository(st)
	if err != nil {
		logger.Fatal("Failed to load patients table", zap.Error(err))
	}
	doctorRepo, err := repository.NewDoctorRepository(st)
	if err != nil {
		logger.Fatal("Failed to load doctors table", zap.Error(err))
	}
	apptRepo, err := repository.NewAppointmentRepository(st)
	if err != nil {
		logger.Fatal("Failed to load appointments table", zap.Error(err))
	}
	labRepo, err := repository.NewLabReportRepository(st)
	if err != nil {
		logger.Fatal("Failed to load lab reports table", zap.Error(err))
	}

	// Select the invoice renderer once at startup
	renderer, err := invoice.NewRendererFromConfig(cfg.Invoice.Renderer)
	if err != nil {
		logger.Fatal("Failed to initialize invoice renderer", zap.Error(err))
	}

	header := invoice.Header{
		HospitalName: cfg.Hospital.Name,
		Address:      cfg.Hospital.Address,
		Phone:        cfg.Hospital.Phone,
	}
	invoiceService, err := service.NewInvoiceService(
		renderer, cfg.Storage.ArtifactDir, header, cfg.Invoice.Currency, logger)
	if err != nil {
		logger.Fatal("Failed to initialize invoice service", zap.Error(err))
	}

	// Initialize services
	alloc := sequence.NewAllocator()
	billingService := service.NewBillingService(billRepo, invoiceService, alloc, logger)
	pharmacyService := service.NewPharmacyService(stockRepo, prescRepo, logger)
	registryService := service.NewRegistryService(
		patientRepo, doctorRepo, apptRepo, prescRepo, labRepo, alloc, logger)
	analyticsService := service.NewAnalyticsService(patientRepo, apptRepo, billRepo, logger)
	backupService := service.NewBackupService(cfg.Storage.DataDir, cfg.Storage.ArtifactDir, logger)

	// "shms backup <dest.zip>" packages the tables and invoices and exits.
	if len(os.Args) > 2 && os.Args[1] == "backup" {
		if err := backupService.ExportPackage(os.Args[2]); err != nil {
			logger.Fatal("Failed to export backup package", zap.Error(err))
		}
		return
	}

	ctx := context.Background()
	patients, err := registryService.Patients(ctx)
	if err != nil {
		logger.Fatal("Failed to read patient registry", zap.Error(err))
	}
	bills, err := billingService.Bills(ctx)
	if err != nil {
		logger.Fatal("Failed to read bill ledger", zap.Error(err))
	}
	stock, err := pharmacyService.Items(ctx)
	if err != nil {
		logger.Fatal("Failed to read stock ledger", zap.Error(err))
	}
	income, err := analyticsService.IncomeByMonth(ctx)
	if err != nil {
		logger.Fatal("Failed to summarize income", zap.Error(err))
	}

	logger.Info("carebill core ready",
		zap.String("env", cfg.App.Env),
		zap.String("data_dir", cfg.Storage.DataDir),
		zap.String("renderer", renderer.Ext()),
		zap.Int("patients", len(patients)),
		zap.Int("bills", len(bills)),
		zap.Int("stock_items", len(stock)),
		zap.Int("income_months", len(income)),
	)
}
