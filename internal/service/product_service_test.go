package service

import (
	"testing"

	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/repository"
	"go-pos-kasir/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCreateRejectsDuplicateBarcode(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(repository.NewProductRepo(db), nil)

	first := &model.Product{Barcode: "899001", Name: "Kopi Sachet", PurchasePrice: 8000, SalePrice: 10000}
	require.NoError(t, svc.Create(first))

	second := &model.Product{Barcode: "899001", Name: "Kopi Lain", PurchasePrice: 8000, SalePrice: 10000}
	err := svc.Create(second)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestProductUpdateDoesNotTouchStock(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(repository.NewProductRepo(db), nil)
	product := seedProduct(t, db, "Teh Botol", 3000, 5000, 12)

	updated, err := svc.Update(product.ID, &model.Product{
		Barcode:   product.Barcode,
		Name:      "Teh Botol Sosro",
		SalePrice: 5500,
		Stock:     999, // harus diabaikan
	})
	require.NoError(t, err)

	assert.Equal(t, "Teh Botol Sosro", updated.Name)
	assert.Equal(t, int64(5500), updated.SalePrice)
	assert.Equal(t, 12, updated.Stock)
}

func TestProductGetByBarcode(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(repository.NewProductRepo(db), nil)
	product := seedProduct(t, db, "Mie Instan", 2500, 3000, 40)

	found, err := svc.GetByBarcode(product.Barcode)
	require.NoError(t, err)
	assert.Equal(t, product.ID, found.ID)

	_, err = svc.GetByBarcode("tidak-ada")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestProductDeleteUnknown(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(repository.NewProductRepo(db), nil)

	err := svc.Delete(uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
