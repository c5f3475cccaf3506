package ledger

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Cakawam/cookbook/internal/domain"
	"github.com/Cakawam/cookbook/internal/domain/entity"
	"github.com/Cakawam/cookbook/pkg/dates"
	"github.com/Cakawam/cookbook/pkg/logger"
	"github.com/Cakawam/cookbook/pkg/units"
)

// Motivo de auditoría para consumos por venta.
const reasonSale = "venta"

// SaleInput entrada cruda de una venta.
type SaleInput struct {
	ProductID string
	Quantity  string
	Unit      string
	UnitPrice decimal.Decimal
	Date      string
	Location  string
}

// RegisterSaleUseCase registra ventas: verifica disponibilidad, consume los
// lotes del producto en orden FEFO y persiste la venta, todo en una
// transacción.
type RegisterSaleUseCase struct {
	tx  TxRunner
	log *logger.Logger
}

// NewRegisterSaleUseCase construye el caso de uso.
func NewRegisterSaleUseCase(tx TxRunner, log *logger.Logger) *RegisterSaleUseCase {
	return &RegisterSaleUseCase{tx: tx, log: log}
}

// RegisterSale ejecuta la venta y devuelve su id.
func (uc *RegisterSaleUseCase) RegisterSale(ctx context.Context, in SaleInput) (string, error) {
	qty, err := units.ParseQuantity(in.Quantity)
	if err != nil {
		return "", err
	}
	if !qty.IsPositive() || in.UnitPrice.IsNegative() {
		return "", domain.ErrInvalidInput
	}
	conv := units.ToBase(qty, in.Unit)
	if !conv.Converted {
		uc.log.Warn().Str("unidad", in.Unit).Msg("unidad no reconocida en venta, se consume sin convertir")
	}
	date, fellBack := dates.ParseTime(in.Date)
	if fellBack && strings.TrimSpace(in.Date) != "" {
		uc.log.Warn().Str("entrada", in.Date).Msg("fecha de venta no interpretable, se usa hoy")
	}

	saleID := uuid.New().String()
	err = uc.tx.Run(ctx, func(r Repos) error {
		product, err := r.Products.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Quantity.LessThan(conv.Quantity.Sub(StockEpsilon)) {
			return insufficient(product.Name, conv.Quantity, product.Quantity)
		}
		if err := DepleteFromBatches(ctx, r, product.ID, conv.Quantity, reasonSale); err != nil {
			return err
		}
		return r.Sales.Create(ctx, &entity.Sale{
			ID:           saleID,
			ProductID:    product.ID,
			Quantity:     qty,
			Unit:         in.Unit,
			BaseQuantity: conv.Quantity,
			UnitPrice:    in.UnitPrice,
			Date:         date,
			Location:     in.Location,
		})
	})
	if err != nil {
		return "", err
	}
	return saleID, nil
}
