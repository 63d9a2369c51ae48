package repository

import (
	"go-pos-kasir/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByBarcode(barcode string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) error
	AdjustStock(tx *gorm.DB, id uuid.UUID, delta int) error
	CountAll() (int64, error)
	CountLowStock() (int64, error)
	StockValuation() (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Supplier").Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Supplier").First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) FindByBarcode(barcode string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "barcode = ?", barcode).Error
	return &product, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

// AdjustStock menerima *gorm.DB (tx) agar berjalan dalam transaksi pemanggil.
// Update memakai ekspresi delta atomik, bukan read-modify-write.
func (r *productRepo) AdjustStock(tx *gorm.DB, id uuid.UUID, delta int) error {
	res := tx.Model(&model.Product{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepo) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Count(&count).Error
	return count, err
}

func (r *productRepo) CountLowStock() (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("stock <= min_stock").Count(&count).Error
	return count, err
}

// StockValuation is SUM(stock * sale_price) over the whole catalog.
func (r *productRepo) StockValuation() (int64, error) {
	var total int64
	err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(stock * sale_price), 0)").
		Scan(&total).Error
	return total, err
}
