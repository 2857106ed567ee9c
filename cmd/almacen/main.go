package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/almacen/internal/application/ledger"
	"github.com/jhoicas/almacen/internal/application/report"
	"github.com/jhoicas/almacen/internal/application/usecase"
	infrapdf "github.com/jhoicas/almacen/internal/infrastructure/pdf"
	"github.com/jhoicas/almacen/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen/internal/interfaces/console"
	"github.com/jhoicas/almacen/pkg/config"
	"github.com/jhoicas/almacen/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	// El log sale por stderr: stdout queda reservado para los menús.
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("inicialización del esquema")
	}

	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	stakeholderUC := usecase.NewStakeholderUseCase(supplierRepo, customerRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	stockUC := ledger.NewStockLedgerUseCase(txRunner, batchRepo)
	reportUC := report.NewStockReportUseCase(
		stockUC, productRepo, supplierRepo, infrapdf.NewMarotoReportGenerator(),
	)

	// Semilla: garantiza acceso al sistema aunque la base esté recién creada.
	if err := userUC.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("semilla del usuario administrador")
	}

	ui := console.New(
		productUC, stakeholderUC, userUC, stockUC, reportUC,
		console.NewPrompter(os.Stdin, os.Stdout), os.Stdout,
		log, cfg.Report.OutputDir,
	)

	if err := ui.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("consola finalizada con error")
		os.Exit(1)
	}

	fmt.Println("Hasta luego.")
	log.Info().Msg("aplicación finalizada")
}
