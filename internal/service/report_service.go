package service

import (
	"go-components-inventory/internal/report"
	"go-components-inventory/internal/repository"
)

type ReportService interface {
	InventoryCSV(f report.Filter) ([]byte, error)
	SalesCSV(f report.Filter) ([]byte, error)
	PurchasesCSV(f report.Filter) ([]byte, error)
}

type reportService struct {
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
	saleRepo     repository.SaleRepository
}

func NewReportService(pRepo repository.ProductRepository, purRepo repository.PurchaseRepository, sRepo repository.SaleRepository) ReportService {
	return &reportService{
		productRepo:  pRepo,
		purchaseRepo: purRepo,
		saleRepo:     sRepo,
	}
}

func (s *reportService) InventoryCSV(f report.Filter) ([]byte, error) {
	products, err := s.productRepo.FindAll("", "")
	if err != nil {
		return nil, err
	}
	rows := report.InventoryRows(report.FilterProducts(products, f))
	return report.EncodeCSV(report.InventoryCSVHeader, rows)
}

func (s *reportService) SalesCSV(f report.Filter) ([]byte, error) {
	sales, err := s.saleRepo.FindAll()
	if err != nil {
		return nil, err
	}
	rows := report.SalesRows(report.FilterSales(sales, f))
	return report.EncodeCSV(report.SalesCSVHeader, rows)
}

func (s *reportService) PurchasesCSV(f report.Filter) ([]byte, error) {
	purchases, err := s.purchaseRepo.FindAll()
	if err != nil {
		return nil, err
	}
	rows := report.PurchaseRows(report.FilterPurchases(purchases, f))
	return report.EncodeCSV(report.PurchasesCSVHeader, rows)
}
