package service

import (
	"time"

	"go-components-inventory/internal/model"
	"go-components-inventory/internal/report"
	"go-components-inventory/internal/repository"
)

// DashboardStats is the overview rendered on the dashboard. Monetary values
// are in minor currency units.
type DashboardStats struct {
	TotalProducts    int             `json:"total_products"`
	TotalStock       int             `json:"total_stock"`
	TotalSales       int64           `json:"total_sales"`
	TotalPurchases   int64           `json:"total_purchases"`
	MonthlySales     int64           `json:"monthly_sales"`
	MonthlyPurchases int64           `json:"monthly_purchases"`
	LowStockItems    []model.Product `json:"low_stock_items"`
}

type DashboardService interface {
	GetDashboardStats() (*DashboardStats, error)
}

type dashboardService struct {
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
	saleRepo     repository.SaleRepository
	now          func() time.Time
}

func NewDashboardService(pRepo repository.ProductRepository, purRepo repository.PurchaseRepository, sRepo repository.SaleRepository) DashboardService {
	return &dashboardService{
		productRepo:  pRepo,
		purchaseRepo: purRepo,
		saleRepo:     sRepo,
		now:          time.Now,
	}
}

// GetDashboardStats recomputes every metric from the current collections;
// nothing is cached between calls.
func (s *dashboardService) GetDashboardStats() (*DashboardStats, error) {
	products, err := s.productRepo.FindAll("", "")
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.FindAll()
	if err != nil {
		return nil, err
	}
	purchases, err := s.purchaseRepo.FindAll()
	if err != nil {
		return nil, err
	}

	now := s.now()
	return &DashboardStats{
		TotalProducts:    len(products),
		TotalStock:       report.TotalStock(products),
		TotalSales:       report.TotalSales(sales),
		TotalPurchases:   report.TotalPurchases(purchases),
		MonthlySales:     report.MonthlySalesTotal(sales, now.Month(), now.Year()),
		MonthlyPurchases: report.MonthlyPurchasesTotal(purchases, now.Month(), now.Year()),
		LowStockItems:    report.LowStockItems(products),
	}, nil
}
