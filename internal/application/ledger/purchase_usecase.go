package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Cakawam/cookbook/internal/domain"
	"github.com/Cakawam/cookbook/internal/domain/entity"
	"github.com/Cakawam/cookbook/pkg/dates"
	"github.com/Cakawam/cookbook/pkg/logger"
	"github.com/Cakawam/cookbook/pkg/units"
)

// Decimales del precio unitario base (redondeo mitad hacia arriba).
const unitPriceScale = 4

// PurchaseInput entrada cruda de una compra: cantidad textual en unidad
// arbitraria y fechas en formato de pantalla o canónico.
type PurchaseInput struct {
	ProductName     string
	Quantity        string
	Unit            string
	TotalPrice      decimal.Decimal
	Date            string
	Lot             string
	Expiry          string
	SupplierName    string
	SupplierContact string
}

// RegisterPurchaseUseCase registra compras de forma transaccional: normaliza
// unidad y fecha, aprovisiona producto/proveedor por nombre, crea la compra y
// su lote, y recalcula el agregado como suma de lotes. Solo suma, nunca
// consume.
type RegisterPurchaseUseCase struct {
	tx  TxRunner
	log *logger.Logger
}

// NewRegisterPurchaseUseCase construye el caso de uso.
func NewRegisterPurchaseUseCase(tx TxRunner, log *logger.Logger) *RegisterPurchaseUseCase {
	return &RegisterPurchaseUseCase{tx: tx, log: log}
}

// RegisterPurchase ejecuta la compra completa en una transacción y devuelve el
// id de la compra creada.
func (uc *RegisterPurchaseUseCase) RegisterPurchase(ctx context.Context, in PurchaseInput) (string, error) {
	name := strings.TrimSpace(in.ProductName)
	if name == "" {
		return "", domain.ErrInvalidInput
	}
	qty, err := units.ParseQuantity(in.Quantity)
	if err != nil {
		return "", err
	}
	if !qty.IsPositive() || in.TotalPrice.IsNegative() {
		return "", domain.ErrInvalidInput
	}

	conv := units.ToBase(qty, in.Unit)
	if !conv.Converted {
		uc.log.Warn().Str("unidad", in.Unit).Str("producto", name).
			Msg("unidad no reconocida, se acumula sin convertir")
	}
	date, fellBack := dates.ParseTime(in.Date)
	if fellBack && strings.TrimSpace(in.Date) != "" {
		uc.log.Warn().Str("entrada", in.Date).Msg("fecha de compra no interpretable, se usa hoy")
	}
	var expiry *time.Time
	if strings.TrimSpace(in.Expiry) != "" {
		t, fb := dates.ParseTime(in.Expiry)
		if fb {
			uc.log.Warn().Str("entrada", in.Expiry).Msg("vencimiento no interpretable, se usa hoy")
		}
		expiry = &t
	}

	unitPrice := decimal.Zero
	if conv.Quantity.IsPositive() {
		unitPrice = in.TotalPrice.Div(conv.Quantity).Round(unitPriceScale)
	}

	purchaseID := uuid.New().String()
	err = uc.tx.Run(ctx, func(r Repos) error {
		product, err := r.Products.UpsertByName(ctx, name, conv.Unit)
		if err != nil {
			return err
		}
		var supplierID *string
		if s := strings.TrimSpace(in.SupplierName); s != "" {
			supplier, err := r.Suppliers.UpsertByName(ctx, s, in.SupplierContact)
			if err != nil {
				return err
			}
			supplierID = &supplier.ID
		}
		if err := r.Purchases.Create(ctx, &entity.Purchase{
			ID:            purchaseID,
			ProductID:     product.ID,
			SupplierID:    supplierID,
			Quantity:      qty,
			Unit:          in.Unit,
			BaseQuantity:  conv.Quantity,
			TotalPrice:    in.TotalPrice,
			UnitPriceBase: unitPrice,
			Date:          date,
			Lot:           in.Lot,
			ExpiresAt:     expiry,
		}); err != nil {
			return err
		}
		if err := r.Batches.Create(ctx, &entity.Batch{
			ID:         uuid.New().String(),
			ProductID:  product.ID,
			Remaining:  conv.Quantity,
			ReceivedAt: &date,
			ExpiresAt:  expiry,
			Label:      in.Lot,
		}); err != nil {
			return err
		}
		total, err := r.Batches.SumRemaining(ctx, product.ID)
		if err != nil {
			return err
		}
		return r.Products.UpdateQuantityAndPrice(ctx, product.ID, total, unitPrice)
	})
	if err != nil {
		return "", err
	}
	return purchaseID, nil
}
