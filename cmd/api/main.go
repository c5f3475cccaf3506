package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Cakawam/cookbook/internal/application/auth"
	appledger "github.com/Cakawam/cookbook/internal/application/ledger"
	"github.com/Cakawam/cookbook/internal/application/reporting"
	"github.com/Cakawam/cookbook/internal/application/usecase"
	infrapdf "github.com/Cakawam/cookbook/internal/infrastructure/pdf"
	"github.com/Cakawam/cookbook/internal/infrastructure/postgres"
	httpRouter "github.com/Cakawam/cookbook/internal/interfaces/http"
	"github.com/Cakawam/cookbook/pkg/config"
	"github.com/Cakawam/cookbook/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}

	// Repositorios de lectura sobre el pool; las escrituras del ledger
	// van por TxRunner con repos ligados a la transacción.
	txRunner := postgres.NewTxRunner(pool)
	repos := postgres.NewRepos(pool)
	reportingRepo := postgres.NewReportingRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)

	purchaseUC := appledger.NewRegisterPurchaseUseCase(txRunner, log)
	saleUC := appledger.NewRegisterSaleUseCase(txRunner, log)
	wasteUC := appledger.NewRegisterWasteUseCase(txRunner, log)
	productionUC := appledger.NewRegisterProductionUseCase(txRunner, log)
	adjustUC := appledger.NewAdjustStockUseCase(txRunner, log)

	productUC := usecase.NewProductUseCase(repos.Products, repos.Adjustments)
	supplierUC := usecase.NewSupplierUseCase(repos.Suppliers)
	recipeUC := usecase.NewRecipeUseCase(repos.Recipes, txRunner, log)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, log)

	costingUC := reporting.NewRecipeCostUseCase(repos.Recipes, repos.Purchases)
	reportsUC := reporting.NewReportsUseCase(reportingRepo, repos.Purchases, repos.Wastes, repos.Sales)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	authUC := auth.NewAuthUseCase(cfg.Auth, cfg.JWT)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		PurchaseUC:   purchaseUC,
		SaleUC:       saleUC,
		WasteUC:      wasteUC,
		ProductionUC: productionUC,
		AdjustUC:     adjustUC,
		ProductUC:    productUC,
		SupplierUC:   supplierUC,
		RecipeUC:     recipeUC,
		ExpenseUC:    expenseUC,
		CostingUC:    costingUC,
		ReportsUC:    reportsUC,
		PDF:          pdfGenerator,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
