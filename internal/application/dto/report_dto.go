package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// LoginResponse token de sesión.
type LoginResponse struct {
	Token string `json:"token"`
}

// RecipeCostResponse costeo de una receta.
type RecipeCostResponse struct {
	RecipeID  string                   `json:"recipe_id"`
	Name      string                   `json:"name"`
	Yield     decimal.Decimal          `json:"yield"`
	YieldUnit string                   `json:"yield_unit,omitempty"`
	Total     decimal.Decimal          `json:"total"`
	PerUnit   decimal.Decimal          `json:"per_unit"`
	Lines     []RecipeCostLineResponse `json:"lines"`
}

// RecipeCostLineResponse costo de una línea.
type RecipeCostLineResponse struct {
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	BaseQuantity     decimal.Decimal `json:"base_quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Cost             decimal.Decimal `json:"cost"`
	PriceFromAverage bool            `json:"price_from_average,omitempty"`
}

// ValuationResponse valorización total del inventario.
type ValuationResponse struct {
	Total decimal.Decimal `json:"total"`
}

// ReorderItemResponse candidato a reposición.
type ReorderItemResponse struct {
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"current_quantity"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	Suggested    decimal.Decimal `json:"suggested_purchase_quantity"`
	BaseUnit     string          `json:"base_unit"`
}

// SalesSummaryResponse ingresos y COGS de la ventana consultada.
type SalesSummaryResponse struct {
	From    time.Time       `json:"from"`
	To      time.Time       `json:"to"`
	Revenue decimal.Decimal `json:"revenue"`
	COGS    decimal.Decimal `json:"cogs"`
}

// ExpiringBatchResponse lote próximo a vencer.
type ExpiringBatchResponse struct {
	BatchID     string          `json:"batch_id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Remaining   decimal.Decimal `json:"remaining"`
	ExpiresAt   time.Time       `json:"expires_at"`
	Label       string          `json:"label,omitempty"`
}
