package service

import (
	"sort"
	"time"

	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/repository"
	"go-pos-kasir/pkg/apperr"

	"github.com/google/uuid"
)

type ProfitSummary struct {
	TotalSales     int64 `json:"total_sales"`
	TotalCOGS      int64 `json:"total_cogs"`
	GrossProfit    int64 `json:"gross_profit"`
	TotalPurchases int64 `json:"total_purchases"`
	OtherIncome    int64 `json:"other_income"`
	OtherExpense   int64 `json:"other_expense"`
	NetProfit      int64 `json:"net_profit"`
}

type DailyProfit struct {
	Date         string `json:"date"` // yyyy-mm-dd
	Sales        int64  `json:"sales"`
	COGS         int64  `json:"cogs"`
	GrossProfit  int64  `json:"gross_profit"`
	Transactions int    `json:"transactions"`
}

type ProductProfit struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Revenue   int64     `json:"revenue"`
	COGS      int64     `json:"cogs"`
	Profit    int64     `json:"profit"`
}

type ProfitReport struct {
	Summary   ProfitSummary   `json:"summary"`
	Daily     []DailyProfit   `json:"daily"`
	ByProduct []ProductProfit `json:"by_product"`
}

type CustomerSummary struct {
	CustomerID        uuid.UUID `json:"customer_id"`
	Code              string    `json:"code"`
	Name              string    `json:"name"`
	TotalTransactions int       `json:"total_transactions"`
	TotalQuantity     int       `json:"total_quantity"`
	TotalValue        int64     `json:"total_value"`
}

// ReportService is pure read-side aggregation; it never writes. Rows whose
// related product or customer no longer resolves are skipped, not errored.
type ReportService interface {
	ProfitReport(from, to *time.Time) (*ProfitReport, error)
	CustomerSummary() ([]CustomerSummary, error)
	StockLedger(productID *uuid.UUID) ([]model.StockLedgerEntry, error)
}

type reportService struct {
	saleRepo     repository.SaleRepository
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	cashRepo     repository.CashRepository
	ledgerRepo   repository.LedgerRepository
}

func NewReportService(
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	cashRepo repository.CashRepository,
	ledgerRepo repository.LedgerRepository,
) ReportService {
	return &reportService{
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		cashRepo:     cashRepo,
		ledgerRepo:   ledgerRepo,
	}
}

// reportRange widens nil bounds and extends the upper bound to end-of-day,
// so a date-only "to" filter keeps that whole day inclusive.
func reportRange(from, to *time.Time) (time.Time, time.Time) {
	start := time.Time{}
	if from != nil {
		f := *from
		start = time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, f.Location())
	}
	end := time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
	if to != nil {
		t := *to
		end = time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
	}
	return start, end
}

func (s *reportService) ProfitReport(from, to *time.Time) (*ProfitReport, error) {
	start, end := reportRange(from, to)

	sales, err := s.saleRepo.FindBetween(start, end)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, err, "load sales")
	}
	purchases, err := s.purchaseRepo.FindBetween(start, end)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, err, "load purchases")
	}
	cashEntries, err := s.cashRepo.FindBetween(start, end)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, err, "load cash entries")
	}
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, err, "load products")
	}
	productByID := make(map[uuid.UUID]*model.Product, len(products))
	for i := range products {
		productByID[products[i].ID] = &products[i]
	}

	// lineCost resolves the unit cost of a sold line: snapshot first, then
	// the product's current purchase price for rows written before cost
	// snapshotting. ok=false when neither resolves.
	lineCost := func(line *model.SaleLine) (int64, bool) {
		if line.CostPrice > 0 {
			return line.CostPrice, true
		}
		if product, ok := productByID[line.ProductID]; ok {
			return product.PurchasePrice, true
		}
		return 0, false
	}

	report := &ProfitReport{}
	dailyByDate := make(map[string]*DailyProfit)
	profitByProduct := make(map[uuid.UUID]*ProductProfit)

	for i := range sales {
		sale := &sales[i]
		report.Summary.TotalSales += sale.Total

		date := sale.Date.Format("2006-01-02")
		day, ok := dailyByDate[date]
		if !ok {
			day = &DailyProfit{Date: date}
			dailyByDate[date] = day
		}
		day.Sales += sale.Total
		day.Transactions++

		for j := range sale.Lines {
			line := &sale.Lines[j]
			cost, ok := lineCost(line)
			if !ok {
				continue // produk sudah dihapus, lewati
			}
			cogs := cost * int64(line.Quantity)
			report.Summary.TotalCOGS += cogs
			day.COGS += cogs

			product, known := productByID[line.ProductID]
			if !known {
				continue
			}
			row, ok := profitByProduct[line.ProductID]
			if !ok {
				row = &ProductProfit{ProductID: line.ProductID, Name: product.Name}
				profitByProduct[line.ProductID] = row
			}
			row.Quantity += line.Quantity
			row.Revenue += line.Subtotal
			row.COGS += cogs
			row.Profit = row.Revenue - row.COGS
		}
		day.GrossProfit = day.Sales - day.COGS
	}

	for i := range purchases {
		report.Summary.TotalPurchases += purchases[i].GrandTotal
	}
	for i := range cashEntries {
		entry := &cashEntries[i]
		switch {
		case entry.Direction == model.CashIn && entry.Category != model.CashCategorySale:
			report.Summary.OtherIncome += entry.Amount
		case entry.Direction == model.CashOut:
			report.Summary.OtherExpense += entry.Amount
		}
	}

	report.Summary.GrossProfit = report.Summary.TotalSales - report.Summary.TotalCOGS
	report.Summary.NetProfit = report.Summary.GrossProfit + report.Summary.OtherIncome - report.Summary.OtherExpense

	report.Daily = make([]DailyProfit, 0, len(dailyByDate))
	for _, day := range dailyByDate {
		report.Daily = append(report.Daily, *day)
	}
	sort.Slice(report.Daily, func(i, j int) bool {
		return report.Daily[i].Date > report.Daily[j].Date
	})

	report.ByProduct = make([]ProductProfit, 0, len(profitByProduct))
	for _, row := range profitByProduct {
		report.ByProduct = append(report.ByProduct, *row)
	}
	sort.Slice(report.ByProduct, func(i, j int) bool {
		return report.ByProduct[i].Profit > report.ByProduct[j].Profit
	})

	return report, nil
}

// CustomerSummary aggregates sales per registered customer. Walk-in sales
// (no customer reference) are excluded.
func (s *reportService) CustomerSummary() ([]CustomerSummary, error) {
	sales, err := s.saleRepo.FindAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, err, "load sales")
	}
	customers, err := s.customerRepo.FindAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, err, "load customers")
	}
	customerByID := make(map[uuid.UUID]*model.Customer, len(customers))
	for i := range customers {
		customerByID[customers[i].ID] = &customers[i]
	}

	summaryByID := make(map[uuid.UUID]*CustomerSummary)
	for i := range sales {
		sale := &sales[i]
		if sale.CustomerID == nil {
			continue
		}
		customer, ok := customerByID[*sale.CustomerID]
		if !ok {
			continue
		}
		row, ok := summaryByID[customer.ID]
		if !ok {
			row = &CustomerSummary{CustomerID: customer.ID, Code: customer.Code, Name: customer.Name}
			summaryByID[customer.ID] = row
		}
		row.TotalTransactions++
		row.TotalValue += sale.Total
		for j := range sale.Lines {
			row.TotalQuantity += sale.Lines[j].Quantity
		}
	}

	result := make([]CustomerSummary, 0, len(summaryByID))
	for _, row := range summaryByID {
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TotalValue > result[j].TotalValue
	})
	return result, nil
}

func (s *reportService) StockLedger(productID *uuid.UUID) ([]model.StockLedgerEntry, error) {
	entries, err := s.ledgerRepo.FindAll(productID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, err, "load stock ledger")
	}
	return entries, nil
}
