package http

import (
	"bytes"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Cakawam/cookbook/internal/application/dto"
	"github.com/Cakawam/cookbook/internal/application/reporting"
	"github.com/Cakawam/cookbook/pkg/dates"
)

// ReportHandler reportes de solo lectura: costeo, valorización, reposición,
// ventanas de ventas y mermas, vencimientos.
type ReportHandler struct {
	costing *reporting.RecipeCostUseCase
	reports *reporting.ReportsUseCase
	pdf     reporting.PDFGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(costing *reporting.RecipeCostUseCase, reports *reporting.ReportsUseCase, pdf reporting.PDFGenerator) *ReportHandler {
	return &ReportHandler{costing: costing, reports: reports, pdf: pdf}
}

// RecipeCost costeo de una receta.
func (h *ReportHandler) RecipeCost(c *fiber.Ctx) error {
	cost, err := h.costing.CostRecipe(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out := dto.RecipeCostResponse{
		RecipeID:  cost.RecipeID,
		Name:      cost.Name,
		Yield:     cost.Yield,
		YieldUnit: cost.YieldUnit,
		Total:     cost.Total,
		PerUnit:   cost.PerUnit,
	}
	for _, l := range cost.Lines {
		out.Lines = append(out.Lines, dto.RecipeCostLineResponse{
			ProductID:        l.ProductID,
			ProductName:      l.ProductName,
			BaseQuantity:     l.BaseQuantity,
			UnitPrice:        l.UnitPrice,
			Cost:             l.Cost,
			PriceFromAverage: l.PriceFromAverage,
		})
	}
	return c.JSON(out)
}

// Valuation valorización total del inventario.
func (h *ReportHandler) Valuation(c *fiber.Ctx) error {
	total, err := h.reports.StockValuation(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ValuationResponse{Total: total})
}

func (h *ReportHandler) reorderItems(c *fiber.Ctx) ([]dto.ReorderItemResponse, []reporting.ReorderSuggestion, error) {
	items, err := h.reports.ReorderSuggestions(c.Context())
	if err != nil {
		return nil, nil, err
	}
	out := make([]dto.ReorderItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ReorderItemResponse{
			ProductID:    it.ProductID,
			Name:         it.Name,
			Quantity:     it.Quantity,
			ReorderLevel: it.ReorderLevel,
			Suggested:    it.Suggested,
			BaseUnit:     it.BaseUnit,
		})
	}
	return out, items, nil
}

// Reorder sugerencias de reposición en JSON.
func (h *ReportHandler) Reorder(c *fiber.Ctx) error {
	out, _, err := h.reorderItems(c)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ReorderCSV sugerencias de reposición como descarga CSV.
func (h *ReportHandler) ReorderCSV(c *fiber.Ctx) error {
	_, items, err := h.reorderItems(c)
	if err != nil {
		return respondError(c, err)
	}
	var buf bytes.Buffer
	if err := reporting.WriteReorderCSV(&buf, items); err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reorden.csv"`)
	return c.Send(buf.Bytes())
}

// ReorderPDF sugerencias de reposición como descarga PDF.
func (h *ReportHandler) ReorderPDF(c *fiber.Ctx) error {
	_, items, err := h.reorderItems(c)
	if err != nil {
		return respondError(c, err)
	}
	doc, err := h.pdf.ReorderReport(items)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reorden.pdf"`)
	return c.Send(doc)
}

// SalesSummary ingresos y COGS de la ventana ?from=&to= (últimos 30 días por defecto).
func (h *ReportHandler) SalesSummary(c *fiber.Ctx) error {
	var from, to time.Time
	if s := c.Query("from"); s != "" {
		from, _ = dates.ParseTime(s)
	}
	if s := c.Query("to"); s != "" {
		to, _ = dates.ParseTime(s)
	}
	if to.IsZero() {
		to = dates.TodayTime()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}
	sum, err := h.reports.SalesWindow(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SalesSummaryResponse{From: from, To: to, Revenue: sum.Revenue, COGS: sum.COGS})
}

// ExpiringBatches lotes que vencen dentro de ?days= (7 por defecto).
func (h *ReportHandler) ExpiringBatches(c *fiber.Ctx) error {
	batches, err := h.reports.ExpiringBatches(c.Context(), c.QueryInt("days"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ExpiringBatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, dto.ExpiringBatchResponse{
			BatchID:     b.BatchID,
			ProductID:   b.ProductID,
			ProductName: b.ProductName,
			Remaining:   b.Remaining,
			ExpiresAt:   b.ExpiresAt,
			Label:       b.Label,
		})
	}
	return c.JSON(out)
}

// RecentPurchases compras de los últimos ?months= meses (3 por defecto).
func (h *ReportHandler) RecentPurchases(c *fiber.Ctx) error {
	purchases, err := h.reports.RecentPurchases(c.Context(), c.QueryInt("months"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(purchases)
}

// RecentWaste mermas de los últimos ?days= días (30 por defecto).
func (h *ReportHandler) RecentWaste(c *fiber.Ctx) error {
	wastes, err := h.reports.RecentWaste(c.Context(), c.QueryInt("days"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wastes)
}

// SalesByDate ventas de un día (?date=, hoy por defecto).
func (h *ReportHandler) SalesByDate(c *fiber.Ctx) error {
	sales, err := h.reports.SalesByDate(c.Context(), c.Query("date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sales)
}
