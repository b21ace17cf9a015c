package model

import "time"

// Product represents the product master data
type Product struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	CategoryID  uint      `json:"category_id" gorm:"index;not null"`
	Image       string    `json:"image" gorm:"type:varchar(255)"`
	HSN         string    `json:"hsn" gorm:"type:varchar(20);not null;column:hsn"`
	IGST        float64   `json:"igst" gorm:"default:0"`
	CGST        float64   `json:"cgst" gorm:"default:0"`
	SGST        float64   `json:"sgst" gorm:"default:0"`
	UsageUnitID uint      `json:"usage_unit_id" gorm:"not null"`
	Inventory   int       `json:"inventory" gorm:"default:0"`
	Status      int       `json:"status" gorm:"default:1"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SplitGST returns the CGST and SGST components for a given IGST rate.
// Each is half of IGST in this domain's tax rule.
func SplitGST(igst float64) (cgst, sgst float64) {
	return igst / 2, igst / 2
}

// ProductCategory is static reference data for product classification
type ProductCategory struct {
	ID     uint   `json:"id" gorm:"primarykey"`
	Name   string `json:"name" gorm:"type:varchar(100);not null;unique"`
	Status int    `json:"status" gorm:"default:1"`
}

// UsageUnit is static reference data for product measurement units
type UsageUnit struct {
	ID     uint   `json:"id" gorm:"primarykey"`
	Name   string `json:"name" gorm:"type:varchar(50);not null;unique"`
	Status int    `json:"status" gorm:"default:1"`
}

// TableName keeps the historical table name
func (UsageUnit) TableName() string {
	return "product_usage_unit"
}
