package dto

import "github.com/shopspring/decimal"

// PurchaseRequest body para POST /api/purchases. Cantidad y fechas van como
// texto crudo: la normalización (unidad base, fecha canónica) es del dominio.
type PurchaseRequest struct {
	ProductName     string          `json:"product_name"`
	Quantity        string          `json:"quantity"`
	Unit            string          `json:"unit"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Date            string          `json:"date,omitempty"`
	Lot             string          `json:"lot,omitempty"`
	Expiry          string          `json:"expiry,omitempty"`
	SupplierName    string          `json:"supplier_name,omitempty"`
	SupplierContact string          `json:"supplier_contact,omitempty"`
}

// SaleRequest body para POST /api/sales.
type SaleRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  string          `json:"quantity"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Date      string          `json:"date,omitempty"`
	Location  string          `json:"location,omitempty"`
}

// WasteRequest body para POST /api/wastes.
type WasteRequest struct {
	ProductID string `json:"product_id"`
	Quantity  string `json:"quantity"`
	Unit      string `json:"unit"`
	Reason    string `json:"reason"`
	Date      string `json:"date,omitempty"`
}

// ProductionRequest body para POST /api/productions. Quantity está en la
// unidad de rendimiento de la receta.
type ProductionRequest struct {
	RecipeID string `json:"recipe_id"`
	Quantity string `json:"quantity"`
	Date     string `json:"date,omitempty"`
}

// AdjustmentRequest body para POST /api/adjustments: fija el stock de un
// producto a una cantidad objetivo en unidad base, con motivo obligatorio.
type AdjustmentRequest struct {
	ProductID   string `json:"product_id"`
	NewQuantity string `json:"new_quantity"`
	Reason      string `json:"reason"`
}
