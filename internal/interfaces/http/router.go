package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Cakawam/cookbook/internal/application/auth"
	"github.com/Cakawam/cookbook/internal/application/ledger"
	"github.com/Cakawam/cookbook/internal/application/reporting"
	"github.com/Cakawam/cookbook/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	PurchaseUC   *ledger.RegisterPurchaseUseCase
	SaleUC       *ledger.RegisterSaleUseCase
	WasteUC      *ledger.RegisterWasteUseCase
	ProductionUC *ledger.RegisterProductionUseCase
	AdjustUC     *ledger.AdjustStockUseCase
	ProductUC    *usecase.ProductUseCase
	SupplierUC   *usecase.SupplierUseCase
	RecipeUC     *usecase.RecipeUseCase
	ExpenseUC    *usecase.ExpenseUseCase
	CostingUC    *reporting.RecipeCostUseCase
	ReportsUC    *reporting.ReportsUseCase
	PDF          reporting.PDFGenerator
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Ledger: compras, ventas, mermas, producciones, ajustes
	ledgerHandler := NewLedgerHandler(deps.PurchaseUC, deps.SaleUC, deps.WasteUC, deps.ProductionUC, deps.AdjustUC)
	protected.Post("/purchases", ledgerHandler.RegisterPurchase)
	protected.Post("/sales", ledgerHandler.RegisterSale)
	protected.Post("/wastes", ledgerHandler.RegisterWaste)
	protected.Post("/productions", ledgerHandler.RegisterProduction)
	protected.Post("/adjustments", ledgerHandler.AdjustStock)

	// Productos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id/reorder-level", productHandler.SetReorderLevel)
	products.Get("/:id/history", productHandler.History)

	// Proveedores
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Upsert)

	// Recetas
	recipes := protected.Group("/recipes")
	recipeHandler := NewRecipeHandler(deps.RecipeUC)
	recipes.Post("/", recipeHandler.Create)
	recipes.Get("/", recipeHandler.List)
	recipes.Get("/:id", recipeHandler.GetByID)
	recipes.Put("/:id", recipeHandler.Update)
	recipes.Delete("/:id", recipeHandler.Delete)
	recipes.Post("/:id/lines", recipeHandler.AddLine)

	// Gastos
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)

	// Reportes
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.CostingUC, deps.ReportsUC, deps.PDF)
	reports.Get("/recipe-cost/:id", reportHandler.RecipeCost)
	reports.Get("/valuation", reportHandler.Valuation)
	reports.Get("/reorder", reportHandler.Reorder)
	reports.Get("/reorder.csv", reportHandler.ReorderCSV)
	reports.Get("/reorder.pdf", reportHandler.ReorderPDF)
	reports.Get("/sales-summary", reportHandler.SalesSummary)
	reports.Get("/expiring-batches", reportHandler.ExpiringBatches)
	reports.Get("/purchases", reportHandler.RecentPurchases)
	reports.Get("/wastes", reportHandler.RecentWaste)
	reports.Get("/sales", reportHandler.SalesByDate)
}
