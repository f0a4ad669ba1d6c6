package models

import "time"

// Stock status values as they appear on the wire.
const (
	StockInStock    = "In Stock"
	StockLowStock   = "Low Stock"
	StockOutOfStock = "Out of Stock"
)

// Product represents a produce item in the marketplace catalog.
type Product struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ProductName  string    `json:"productName" validate:"required,min=2,max=100"`
	Category     string    `json:"category" validate:"required,max=100"`
	PricePerUnit float64   `json:"pricePerUnit" validate:"gte=0"`
	Unit         string    `json:"unit" validate:"required,max=20"`
	MinOrderQty  int       `json:"minOrderQty" validate:"gte=0"`
	StockStatus  string    `json:"stockStatus" validate:"omitempty,oneof='In Stock' 'Low Stock' 'Out of Stock'"`
	ImageURL     string    `json:"imageUrl,omitempty" validate:"omitempty,max=500"`
	Tags         []string  `json:"tags,omitempty" gorm:"serializer:json"`
	Description  string    `json:"description,omitempty" validate:"omitempty,max=500"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// ProductPatch is a partial update: only non-nil fields overwrite the stored
// values, everything else retains its prior value.
type ProductPatch struct {
	ProductName  *string   `json:"productName" validate:"omitempty,min=2,max=100"`
	Category     *string   `json:"category" validate:"omitempty,max=100"`
	PricePerUnit *float64  `json:"pricePerUnit" validate:"omitempty,gte=0"`
	Unit         *string   `json:"unit" validate:"omitempty,max=20"`
	MinOrderQty  *int      `json:"minOrderQty" validate:"omitempty,gte=0"`
	StockStatus  *string   `json:"stockStatus" validate:"omitempty,oneof='In Stock' 'Low Stock' 'Out of Stock'"`
	ImageURL     *string   `json:"imageUrl" validate:"omitempty,max=500"`
	Tags         *[]string `json:"tags"`
	Description  *string   `json:"description" validate:"omitempty,max=500"`
}

// Apply merges the patch into p, overwriting only the supplied fields.
func (patch ProductPatch) Apply(p *Product) {
	if patch.ProductName != nil {
		p.ProductName = *patch.ProductName
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.PricePerUnit != nil {
		p.PricePerUnit = *patch.PricePerUnit
	}
	if patch.Unit != nil {
		p.Unit = *patch.Unit
	}
	if patch.MinOrderQty != nil {
		p.MinOrderQty = *patch.MinOrderQty
	}
	if patch.StockStatus != nil {
		p.StockStatus = *patch.StockStatus
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Tags != nil {
		p.Tags = *patch.Tags
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
}
