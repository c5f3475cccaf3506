package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Cakawam/cookbook/internal/application/dto"
	"github.com/Cakawam/cookbook/internal/application/usecase"
)

// SupplierHandler catálogo de proveedores.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// List proveedores registrados.
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	suppliers, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, dto.SupplierResponse{ID: s.ID, Name: s.Name, Contact: s.Contact})
	}
	return c.JSON(out)
}

// Upsert resuelve o crea un proveedor por nombre.
func (h *SupplierHandler) Upsert(c *fiber.Ctx) error {
	var in dto.SupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	s, err := h.uc.Upsert(c.Context(), in.Name, in.Contact)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SupplierResponse{ID: s.ID, Name: s.Name, Contact: s.Contact})
}

// ExpenseHandler gastos sueltos.
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Create registra un gasto.
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.ExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	e, err := h.uc.Create(c.Context(), in.Description, in.Date, in.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ExpenseResponse{
		ID: e.ID, Date: e.Date, Description: e.Description, Amount: e.Amount,
	})
}

// List gastos recientes (?limit=).
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	expenses, err := h.uc.List(c.Context(), c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, dto.ExpenseResponse{
			ID: e.ID, Date: e.Date, Description: e.Description, Amount: e.Amount,
		})
	}
	return c.JSON(out)
}
