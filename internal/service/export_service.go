package service

import (
	"fmt"

	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/repository"
	"go-pos-kasir/pkg/apperr"

	"github.com/xuri/excelize/v2"
)

// BackupData is the full JSON snapshot of every collection, shaped for the
// restore endpoint of a future sync tool.
type BackupData struct {
	Products      []model.Product          `json:"products"`
	Customers     []model.Customer         `json:"customers"`
	Suppliers     []model.Supplier         `json:"suppliers"`
	Sales         []model.Sale             `json:"sales"`
	Purchases     []model.Purchase         `json:"purchases"`
	Debts         []model.Debt             `json:"debts"`
	CashEntries   []model.CashEntry        `json:"cash_entries"`
	LedgerEntries []model.StockLedgerEntry `json:"ledger_entries"`
}

type ExportService interface {
	BackupJSON() (*BackupData, error)
	BackupExcel() (*excelize.File, error)
}

type exportService struct {
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	supplierRepo repository.SupplierRepository
	saleRepo     repository.SaleRepository
	purchaseRepo repository.PurchaseRepository
	debtRepo     repository.DebtRepository
	cashRepo     repository.CashRepository
	ledgerRepo   repository.LedgerRepository
	reports      ReportService
}

func NewExportService(
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	supplierRepo repository.SupplierRepository,
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
	debtRepo repository.DebtRepository,
	cashRepo repository.CashRepository,
	ledgerRepo repository.LedgerRepository,
	reports ReportService,
) ExportService {
	return &exportService{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		debtRepo:     debtRepo,
		cashRepo:     cashRepo,
		ledgerRepo:   ledgerRepo,
		reports:      reports,
	}
}

func (s *exportService) BackupJSON() (*BackupData, error) {
	backup := &BackupData{}
	var err error

	if backup.Products, err = s.productRepo.FindAll(); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, err, "load products")
	}
	if backup.Customers, err = s.customerRepo.FindAll(); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, err, "load customers")
	}
	if backup.Suppliers, err = s.supplierRepo.FindAll(); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, err, "load suppliers")
	}
	if backup.Sales, err = s.saleRepo.FindAll(); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, err, "load sales")
	}
	if backup.Purchases, err = s.purchaseRepo.FindAll(); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, err, "load purchases")
	}
	if backup.Debts, err = s.debtRepo.FindAll(); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, err, "load debts")
	}
	if backup.CashEntries, err = s.cashRepo.FindAll(); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, err, "load cash entries")
	}
	if backup.LedgerEntries, err = s.ledgerRepo.FindAll(nil); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, err, "load stock ledger")
	}

	return backup, nil
}

// BackupExcel builds the multi-sheet workbook the shop owner downloads:
// catalog, sales journal, receivables, and the per-customer summary.
func (s *exportService) BackupExcel() (*excelize.File, error) {
	f := excelize.NewFile()

	if err := s.writeProductSheet(f); err != nil {
		return nil, err
	}
	if err := s.writeSaleSheet(f); err != nil {
		return nil, err
	}
	if err := s.writeDebtSheet(f); err != nil {
		return nil, err
	}
	if err := s.writeCustomerSheet(f); err != nil {
		return nil, err
	}

	// Sheet1 bawaan excelize tidak dipakai
	f.DeleteSheet("Sheet1")
	return f, nil
}

func (s *exportService) writeProductSheet(f *excelize.File) error {
	const sheet = "Produk"
	if _, err := f.NewSheet(sheet); err != nil {
		return apperr.Wrap(apperr.KindPersistence, err, "create sheet")
	}

	products, err := s.productRepo.FindAll()
	if err != nil {
		return apperr.Wrap(apperr.KindPersistence, err, "load products")
	}

	headers := []string{"Barcode", "Nama", "Harga Beli", "Harga Jual", "Stok", "Stok Minimum", "Kategori"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, p := range products {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.Barcode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.PurchasePrice)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.SalePrice)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), p.Stock)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), p.MinStock)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), p.Category)
	}
	return nil
}

func (s *exportService) writeSaleSheet(f *excelize.File) error {
	const sheet = "Transaksi"
	if _, err := f.NewSheet(sheet); err != nil {
		return apperr.Wrap(apperr.KindPersistence, err, "create sheet")
	}

	sales, err := s.saleRepo.FindAll()
	if err != nil {
		return apperr.Wrap(apperr.KindPersistence, err, "load sales")
	}

	headers := []string{"No. Nota", "Tanggal", "Pelanggan", "Subtotal", "Diskon", "Pajak", "Total", "Metode", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, sale := range sales {
		row := i + 2
		customerName := ""
		if sale.Customer != nil {
			customerName = sale.Customer.Name
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), sale.Number)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), sale.Date.Format("2006-01-02 15:04"))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), customerName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), sale.Subtotal)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), sale.Discount)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), sale.Tax)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), sale.Total)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), string(sale.PaymentMethod))
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), string(sale.Status))
	}
	return nil
}

func (s *exportService) writeDebtSheet(f *excelize.File) error {
	const sheet = "Hutang"
	if _, err := f.NewSheet(sheet); err != nil {
		return apperr.Wrap(apperr.KindPersistence, err, "create sheet")
	}

	debts, err := s.debtRepo.FindAll()
	if err != nil {
		return apperr.Wrap(apperr.KindPersistence, err, "load debts")
	}

	headers := []string{"Pelanggan", "No. Nota", "Total Hutang", "Sisa Hutang", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, debt := range debts {
		row := i + 2
		customerName := ""
		if debt.Customer != nil {
			customerName = debt.Customer.Name
		}
		number := ""
		if debt.Sale != nil {
			number = debt.Sale.Number
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), customerName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), number)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), debt.Total)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), debt.Remaining)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), string(debt.Status))
	}
	return nil
}

func (s *exportService) writeCustomerSheet(f *excelize.File) error {
	const sheet = "Pembelian per Pelanggan"
	if _, err := f.NewSheet(sheet); err != nil {
		return apperr.Wrap(apperr.KindPersistence, err, "create sheet")
	}

	summaries, err := s.reports.CustomerSummary()
	if err != nil {
		return err
	}

	headers := []string{"No. Pelanggan", "Nama", "Total Transaksi", "Total Qty", "Total Nilai"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, row := range summaries {
		r := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", r), row.Code)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", r), row.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", r), row.TotalTransactions)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", r), row.TotalQuantity)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", r), row.TotalValue)
	}
	return nil
}
