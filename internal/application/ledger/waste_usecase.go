package ledger

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Cakawam/cookbook/internal/domain"
	"github.com/Cakawam/cookbook/internal/domain/entity"
	"github.com/Cakawam/cookbook/pkg/dates"
	"github.com/Cakawam/cookbook/pkg/logger"
	"github.com/Cakawam/cookbook/pkg/units"
)

// Prefijo de auditoría para consumos por merma.
const reasonWastePrefix = "waste:"

// WasteInput entrada cruda de una merma.
type WasteInput struct {
	ProductID string
	Quantity  string
	Unit      string
	Reason    string
	Date      string
}

// RegisterWasteUseCase registra mermas: prohibido si la cantidad excede el
// stock disponible del producto; consume lotes FEFO y persiste el registro.
type RegisterWasteUseCase struct {
	tx  TxRunner
	log *logger.Logger
}

// NewRegisterWasteUseCase construye el caso de uso.
func NewRegisterWasteUseCase(tx TxRunner, log *logger.Logger) *RegisterWasteUseCase {
	return &RegisterWasteUseCase{tx: tx, log: log}
}

// RegisterWaste ejecuta la merma y devuelve su id.
func (uc *RegisterWasteUseCase) RegisterWaste(ctx context.Context, in WasteInput) (string, error) {
	qty, err := units.ParseQuantity(in.Quantity)
	if err != nil {
		return "", err
	}
	if !qty.IsPositive() {
		return "", domain.ErrInvalidInput
	}
	conv := units.ToBase(qty, in.Unit)
	if !conv.Converted {
		uc.log.Warn().Str("unidad", in.Unit).Msg("unidad no reconocida en merma, se consume sin convertir")
	}
	date, fellBack := dates.ParseTime(in.Date)
	if fellBack && strings.TrimSpace(in.Date) != "" {
		uc.log.Warn().Str("entrada", in.Date).Msg("fecha de merma no interpretable, se usa hoy")
	}

	wasteID := uuid.New().String()
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
		if err := DepleteFromBatches(ctx, r, product.ID, conv.Quantity, reasonWastePrefix+in.Reason); err != nil {
			return err
		}
		return r.Wastes.Create(ctx, &entity.Waste{
			ID:           wasteID,
			ProductID:    product.ID,
			Quantity:     qty,
			Unit:         in.Unit,
			BaseQuantity: conv.Quantity,
			Reason:       in.Reason,
			Date:         date,
		})
	})
	if err != nil {
		return "", err
	}
	return wasteID, nil
}
