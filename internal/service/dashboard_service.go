package service

import (
	"time"

	"go-pos-kasir/internal/repository"
)

// DashboardStats untuk overview stats
type DashboardStats struct {
	TotalProducts   int64 `json:"total_products"`
	LowStockCount   int64 `json:"low_stock_count"`
	TotalValuation  int64 `json:"total_valuation"`
	OutstandingDebt int64 `json:"outstanding_debt"`
}

type DashboardService interface {
	GetStats() (*DashboardStats, error)
	GetStockMovement(startDate, endDate time.Time) ([]repository.StockMovementData, error)
}

type dashboardService struct {
	productRepo repository.ProductRepository
	debtRepo    repository.DebtRepository
	ledgerRepo  repository.LedgerRepository
}

func NewDashboardService(productRepo repository.ProductRepository, debtRepo repository.DebtRepository, ledgerRepo repository.LedgerRepository) DashboardService {
	return &dashboardService{
		productRepo: productRepo,
		debtRepo:    debtRepo,
		ledgerRepo:  ledgerRepo,
	}
}

func (s *dashboardService) GetStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalProducts, err = s.productRepo.CountAll(); err != nil {
		return nil, err
	}
	if stats.LowStockCount, err = s.productRepo.CountLowStock(); err != nil {
		return nil, err
	}
	if stats.TotalValuation, err = s.productRepo.StockValuation(); err != nil {
		return nil, err
	}
	if stats.OutstandingDebt, err = s.debtRepo.TotalOutstanding(); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *dashboardService) GetStockMovement(startDate, endDate time.Time) ([]repository.StockMovementData, error) {
	return s.ledgerRepo.GetStockMovement(startDate, endDate)
}
