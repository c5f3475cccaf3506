package entity

import "github.com/shopspring/decimal"

// Recipe receta con rendimiento declarado. YieldUnit es solo etiqueta de
// presentación, no se convierte dimensionalmente.
type Recipe struct {
	ID        string
	Name      string
	Yield     decimal.Decimal
	YieldUnit string
}

// RecipeLine ingrediente de una receta. BaseQuantity escala linealmente con el
// factor de producción.
type RecipeLine struct {
	ID           string
	RecipeID     string
	ProductID    string
	Quantity     decimal.Decimal // en la unidad original
	Unit         string
	BaseQuantity decimal.Decimal // en unidad base
}
