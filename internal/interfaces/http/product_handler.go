package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Cakawam/cookbook/internal/application/dto"
	"github.com/Cakawam/cookbook/internal/application/usecase"
)

// ProductHandler consultas del catálogo de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List productos, con filtro ?name= opcional.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.uc.List(c.Context(), c.Query("name"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ToProductResponse(p))
	}
	return c.JSON(out)
}

// GetByID devuelve un producto.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	p, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToProductResponse(p))
}

// SetReorderLevel fija el umbral de reposición; cero lo desactiva.
func (h *ProductHandler) SetReorderLevel(c *fiber.Ctx) error {
	var in dto.ReorderLevelRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.SetReorderLevel(c.Context(), c.Params("id"), in.Level); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "umbral actualizado"})
}

// History filas de auditoría del producto (?limit=).
func (h *ProductHandler) History(c *fiber.Ctx) error {
	history, err := h.uc.History(c.Context(), c.Params("id"), c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.AdjustmentHistoryResponse, 0, len(history))
	for _, a := range history {
		out = append(out, dto.AdjustmentHistoryResponse{
			ID:        a.ID,
			Date:      a.Date,
			BeforeQty: a.BeforeQty,
			AfterQty:  a.AfterQty,
			Reason:    a.Reason,
		})
	}
	return c.JSON(out)
}
