package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Cakawam/cookbook/internal/application/dto"
	"github.com/Cakawam/cookbook/internal/application/ledger"
)

// LedgerHandler expone los orquestadores transaccionales del ledger: compras,
// ventas, mermas, producciones y ajustes manuales.
type LedgerHandler struct {
	purchases   *ledger.RegisterPurchaseUseCase
	sales       *ledger.RegisterSaleUseCase
	wastes      *ledger.RegisterWasteUseCase
	productions *ledger.RegisterProductionUseCase
	adjustments *ledger.AdjustStockUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(
	purchases *ledger.RegisterPurchaseUseCase,
	sales *ledger.RegisterSaleUseCase,
	wastes *ledger.RegisterWasteUseCase,
	productions *ledger.RegisterProductionUseCase,
	adjustments *ledger.AdjustStockUseCase,
) *LedgerHandler {
	return &LedgerHandler{
		purchases:   purchases,
		sales:       sales,
		wastes:      wastes,
		productions: productions,
		adjustments: adjustments,
	}
}

// RegisterPurchase registra una compra.
func (h *LedgerHandler) RegisterPurchase(c *fiber.Ctx) error {
	var in dto.PurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.purchases.RegisterPurchase(c.Context(), ledger.PurchaseInput{
		ProductName:     in.ProductName,
		Quantity:        in.Quantity,
		Unit:            in.Unit,
		TotalPrice:      in.TotalPrice,
		Date:            in.Date,
		Lot:             in.Lot,
		Expiry:          in.Expiry,
		SupplierName:    in.SupplierName,
		SupplierContact: in.SupplierContact,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id})
}

// RegisterSale registra una venta.
func (h *LedgerHandler) RegisterSale(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.sales.RegisterSale(c.Context(), ledger.SaleInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Unit:      in.Unit,
		UnitPrice: in.UnitPrice,
		Date:      in.Date,
		Location:  in.Location,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id})
}

// RegisterWaste registra una merma.
func (h *LedgerHandler) RegisterWaste(c *fiber.Ctx) error {
	var in dto.WasteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.wastes.RegisterWaste(c.Context(), ledger.WasteInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Unit:      in.Unit,
		Reason:    in.Reason,
		Date:      in.Date,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id})
}

// RegisterProduction ejecuta una receta.
func (h *LedgerHandler) RegisterProduction(c *fiber.Ctx) error {
	var in dto.ProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.productions.RegisterProduction(c.Context(), ledger.ProductionInput{
		RecipeID: in.RecipeID,
		Quantity: in.Quantity,
		Date:     in.Date,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id})
}

// AdjustStock fija el stock de un producto a una cantidad objetivo.
func (h *LedgerHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	err := h.adjustments.AdjustStock(c.Context(), ledger.AdjustmentInput{
		ProductID:   in.ProductID,
		NewQuantity: in.NewQuantity,
		Reason:      in.Reason,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "stock ajustado"})
}
