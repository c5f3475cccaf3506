package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Cakawam/cookbook/internal/domain/entity"
)

// ProductResponse producto con su estado agregado actual.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	BaseUnit      string          `json:"base_unit"`
	Quantity      decimal.Decimal `json:"quantity"`
	LastUnitPrice decimal.Decimal `json:"last_unit_price"`
	ReorderLevel  decimal.Decimal `json:"reorder_level"`
}

// ToProductResponse mapea la entidad.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		BaseUnit:      p.BaseUnit,
		Quantity:      p.Quantity,
		LastUnitPrice: p.LastUnitPrice,
		ReorderLevel:  p.ReorderLevel,
	}
}

// ReorderLevelRequest body para PUT /api/products/:id/reorder-level.
type ReorderLevelRequest struct {
	Level decimal.Decimal `json:"level"`
}

// SupplierResponse proveedor registrado.
type SupplierResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

// SupplierRequest body para POST /api/suppliers.
type SupplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

// RecipeRequest body para POST/PUT /api/recipes.
type RecipeRequest struct {
	Name      string          `json:"name"`
	Yield     decimal.Decimal `json:"yield"`
	YieldUnit string          `json:"yield_unit,omitempty"`
}

// RecipeLineRequest body para POST /api/recipes/:id/lines.
type RecipeLineRequest struct {
	ProductName string `json:"product_name"`
	Quantity    string `json:"quantity"`
	Unit        string `json:"unit"`
}

// RecipeResponse receta con sus líneas.
type RecipeResponse struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Yield     decimal.Decimal      `json:"yield"`
	YieldUnit string               `json:"yield_unit,omitempty"`
	Lines     []RecipeLineResponse `json:"lines,omitempty"`
}

// RecipeLineResponse línea de receta enriquecida con el ingrediente.
type RecipeLineResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	BaseQuantity decimal.Decimal `json:"base_quantity"`
	BaseUnit     string          `json:"base_unit,omitempty"`
}

// ExpenseRequest body para POST /api/expenses.
type ExpenseRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date,omitempty"`
}

// ExpenseResponse gasto registrado.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// AdjustmentHistoryResponse fila de auditoría de stock.
type AdjustmentHistoryResponse struct {
	ID        string          `json:"id"`
	Date      time.Time       `json:"date"`
	BeforeQty decimal.Decimal `json:"before_qty"`
	AfterQty  decimal.Decimal `json:"after_qty"`
	Reason    string          `json:"reason"`
}
