package usecase

import (
	"context"
	"strings"

	"github.com/Cakawam/cookbook/internal/domain"
	"github.com/Cakawam/cookbook/internal/domain/entity"
	"github.com/Cakawam/cookbook/internal/domain/repository"
)

// SupplierUseCase catálogo de proveedores. El alta también puede ocurrir
// implícitamente al registrar una compra con proveedor nombrado.
type SupplierUseCase struct {
	suppliers repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(suppliers repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers}
}

// List proveedores registrados.
func (uc *SupplierUseCase) List(ctx context.Context) ([]*entity.Supplier, error) {
	return uc.suppliers.List(ctx)
}

// Upsert resuelve o crea un proveedor por nombre.
func (uc *SupplierUseCase) Upsert(ctx context.Context, name, contact string) (*entity.Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.suppliers.UpsertByName(ctx, name, strings.TrimSpace(contact))
}
