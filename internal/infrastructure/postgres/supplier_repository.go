package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Cakawam/cookbook/internal/domain/entity"
	"github.com/Cakawam/cookbook/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// UpsertByName resuelve o crea el proveedor por su nombre (clave natural).
// El contacto solo se escribe en el alta; un upsert posterior no lo pisa.
func (r *SupplierRepo) UpsertByName(ctx context.Context, name, contact string) (*entity.Supplier, error) {
	query := `
		INSERT INTO suppliers (id, name, contact)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, contact, created_at`
	var s entity.Supplier
	err := r.q.QueryRow(ctx, query, uuid.New().String(), name, contact).Scan(
		&s.ID, &s.Name, &s.Contact, &s.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert supplier: %w", err)
	}
	return &s, nil
}

// List devuelve todos los proveedores, ordenados por nombre.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, contact, created_at FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var out []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Contact, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
