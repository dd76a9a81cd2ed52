package handler

import (
	"go-components-inventory/internal/report"
	"go-components-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// ExportInventory streams the inventory report as CSV.
// Query params: category
func (h *ReportHandler) ExportInventory(c *fiber.Ctx) error {
	return h.export(c, "inventory-report.csv", h.service.InventoryCSV)
}

// ExportSales streams the sales report as CSV.
// Query params: start_date, end_date, customer
func (h *ReportHandler) ExportSales(c *fiber.Ctx) error {
	return h.export(c, "sales-report.csv", h.service.SalesCSV)
}

// ExportPurchases streams the purchases report as CSV.
// Query params: start_date, end_date, supplier
func (h *ReportHandler) ExportPurchases(c *fiber.Ctx) error {
	return h.export(c, "purchases-report.csv", h.service.PurchasesCSV)
}

func (h *ReportHandler) export(c *fiber.Ctx, filename string, build func(report.Filter) ([]byte, error)) error {
	f, err := parseReportFilter(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	data, err := build(f)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build report"})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
