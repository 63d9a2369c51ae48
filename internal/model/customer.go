package model

// Customer adalah pelanggan terdaftar. Penjualan tunai boleh tanpa pelanggan
// (walk-in), penjualan hutang wajib punya pelanggan.
type Customer struct {
	BaseModel
	Code    string `gorm:"type:varchar(30);uniqueIndex;not null" json:"code"`
	Name    string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Address string `json:"address"`
	Phone   string `gorm:"type:varchar(30)" json:"phone"`
	Email   string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
}

// Supplier memasok stok lewat pembelian.
type Supplier struct {
	BaseModel
	Code    string `gorm:"type:varchar(30);uniqueIndex;not null" json:"code"`
	Name    string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Address string `json:"address"`
	Phone   string `gorm:"type:varchar(30)" json:"phone"`
	Email   string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
}
