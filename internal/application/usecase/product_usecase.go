package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Cakawam/cookbook/internal/domain"
	"github.com/Cakawam/cookbook/internal/domain/entity"
	"github.com/Cakawam/cookbook/internal/domain/repository"
)

// ProductUseCase consultas y administración del catálogo de productos.
// El alta de productos es implícita: ocurre por nombre durante compras,
// líneas de receta y producciones.
type ProductUseCase struct {
	products    repository.ProductRepository
	adjustments repository.AdjustmentRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, adjustments repository.AdjustmentRepository) *ProductUseCase {
	return &ProductUseCase{products: products, adjustments: adjustments}
}

// List productos, opcionalmente filtrados por subcadena del nombre.
func (uc *ProductUseCase) List(ctx context.Context, nameFilter string) ([]*entity.Product, error) {
	return uc.products.List(ctx, nameFilter)
}

// Get devuelve un producto por id.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*entity.Product, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// SetReorderLevel fija el umbral de reposición; cero lo desactiva.
func (uc *ProductUseCase) SetReorderLevel(ctx context.Context, id string, level decimal.Decimal) error {
	if level.IsNegative() {
		return domain.ErrInvalidInput
	}
	return uc.products.SetReorderLevel(ctx, id, level)
}

// History filas de auditoría del producto, más recientes primero.
func (uc *ProductUseCase) History(ctx context.Context, id string, limit int) ([]*entity.StockAdjustment, error) {
	if _, err := uc.Get(ctx, id); err != nil {
		return nil, err
	}
	return uc.adjustments.ListByProduct(ctx, id, limit)
}
