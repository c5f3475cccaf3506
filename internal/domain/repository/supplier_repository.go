package repository

import (
	"context"

	"github.com/Cakawam/cookbook/internal/domain/entity"
)

// SupplierRepository puerto de persistencia para proveedores.
// UpsertByName es la operación canónica: resuelve por nombre (clave natural,
// única en la tabla) y devuelve el registro con su id subrogado estable.
type SupplierRepository interface {
	UpsertByName(ctx context.Context, name, contact string) (*entity.Supplier, error)
	List(ctx context.Context) ([]*entity.Supplier, error)
}
