package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Cakawam/cookbook/internal/domain"
	"github.com/Cakawam/cookbook/internal/domain/entity"
	"github.com/Cakawam/cookbook/internal/domain/repository"
	"github.com/Cakawam/cookbook/pkg/dates"
	"github.com/Cakawam/cookbook/pkg/logger"
)

// ExpenseUseCase gastos sueltos: registro y listado, sin efecto sobre stock.
type ExpenseUseCase struct {
	expenses repository.ExpenseRepository
	log      *logger.Logger
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(expenses repository.ExpenseRepository, log *logger.Logger) *ExpenseUseCase {
	return &ExpenseUseCase{expenses: expenses, log: log}
}

// Create registra un gasto. La fecha sigue la misma política permisiva del
// resto del sistema: no interpretable cae a hoy.
func (uc *ExpenseUseCase) Create(ctx context.Context, description, date string, amount decimal.Decimal) (*entity.Expense, error) {
	description = strings.TrimSpace(description)
	if description == "" || amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	day, fellBack := dates.ParseTime(date)
	if fellBack && strings.TrimSpace(date) != "" {
		uc.log.Warn().Str("entrada", date).Msg("fecha de gasto no interpretable, se usa hoy")
	}
	e := &entity.Expense{
		ID:          uuid.New().String(),
		Date:        day,
		Description: description,
		Amount:      amount,
	}
	if err := uc.expenses.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// List gastos más recientes primero.
func (uc *ExpenseUseCase) List(ctx context.Context, limit int) ([]*entity.Expense, error) {
	return uc.expenses.List(ctx, limit)
}
