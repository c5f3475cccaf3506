package reporting

import (
	"encoding/csv"
	"io"
)

// WriteReorderCSV serializa las sugerencias de reposición como CSV con
// cabecera fija. Las cantidades van en notación decimal plana.
func WriteReorderCSV(w io.Writer, items []ReorderSuggestion) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"product_id", "name", "current_quantity", "reorder_level",
		"suggested_purchase_quantity", "base_unit",
	}); err != nil {
		return err
	}
	for _, it := range items {
		if err := cw.Write([]string{
			it.ProductID,
			it.Name,
			it.Quantity.String(),
			it.ReorderLevel.String(),
			it.Suggested.String(),
			it.BaseUnit,
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
