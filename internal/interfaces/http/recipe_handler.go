package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Cakawam/cookbook/internal/application/dto"
	"github.com/Cakawam/cookbook/internal/application/usecase"
	"github.com/Cakawam/cookbook/internal/domain/entity"
	"github.com/Cakawam/cookbook/internal/domain/repository"
)

// RecipeHandler catálogo de recetas y sus líneas.
type RecipeHandler struct {
	uc *usecase.RecipeUseCase
}

// NewRecipeHandler construye el handler.
func NewRecipeHandler(uc *usecase.RecipeUseCase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

func toRecipeResponse(rec *entity.Recipe, lines []*repository.RecipeLineDetail) dto.RecipeResponse {
	out := dto.RecipeResponse{
		ID:        rec.ID,
		Name:      rec.Name,
		Yield:     rec.Yield,
		YieldUnit: rec.YieldUnit,
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, dto.RecipeLineResponse{
			ID:           l.ID,
			ProductID:    l.ProductID,
			ProductName:  l.ProductName,
			Quantity:     l.Quantity,
			Unit:         l.Unit,
			BaseQuantity: l.BaseQuantity,
			BaseUnit:     l.ProductBaseUnit,
		})
	}
	return out
}

// Create registra una receta.
func (h *RecipeHandler) Create(c *fiber.Ctx) error {
	var in dto.RecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	rec, err := h.uc.Create(c.Context(), in.Name, in.Yield, in.YieldUnit)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toRecipeResponse(rec, nil))
}

// Update corrige nombre o rendimiento.
func (h *RecipeHandler) Update(c *fiber.Ctx) error {
	var in dto.RecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Update(c.Context(), c.Params("id"), in.Name, in.Yield); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "receta actualizada"})
}

// Delete elimina la receta y sus líneas.
func (h *RecipeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "receta eliminada"})
}

// GetByID devuelve la receta con sus líneas.
func (h *RecipeHandler) GetByID(c *fiber.Ctx) error {
	rec, lines, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toRecipeResponse(rec, lines))
}

// List todas las recetas (sin líneas).
func (h *RecipeHandler) List(c *fiber.Ctx) error {
	recipes, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.RecipeResponse, 0, len(recipes))
	for _, rec := range recipes {
		out = append(out, toRecipeResponse(rec, nil))
	}
	return c.JSON(out)
}

// AddLine agrega un ingrediente a la receta.
func (h *RecipeHandler) AddLine(c *fiber.Ctx) error {
	var in dto.RecipeLineRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	line, err := h.uc.AddLine(c.Context(), c.Params("id"), usecase.RecipeLineInput{
		ProductName: in.ProductName,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RecipeLineResponse{
		ID:           line.ID,
		ProductID:    line.ProductID,
		ProductName:  in.ProductName,
		Quantity:     line.Quantity,
		Unit:         line.Unit,
		BaseQuantity: line.BaseQuantity,
	})
}
