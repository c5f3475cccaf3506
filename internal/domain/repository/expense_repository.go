package repository

import (
	"context"

	"github.com/Cakawam/cookbook/internal/domain/entity"
)

// ExpenseRepository puerto de persistencia para gastos sueltos.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	List(ctx context.Context, limit int) ([]*entity.Expense, error)
}
