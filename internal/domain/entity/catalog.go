package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NeckType is a catalog entry for a neck/collar shape. The pricing engine
// reads it through the catalog lookup; names carry free-text annotations
// that the lookup normalizes away.
type NeckType struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Name            string           `gorm:"size:255;uniqueIndex;not null" json:"name"`
	PriceAdjustment decimal.Decimal  `gorm:"type:decimal(10,2)" json:"price_adjustment"`
	AdditionalCost  *decimal.Decimal `gorm:"type:decimal(10,2)" json:"additional_cost,omitempty"`
	ForceSlope      bool             `gorm:"not null;default:false" json:"force_slope"`
	IsActive        bool             `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time        `json:"created_at"`
}

func (n *NeckType) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the NeckType model
func (NeckType) TableName() string {
	return "neck_types"
}

// FabricType is a catalog entry for a fabric.
type FabricType struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name            string          `gorm:"size:255;uniqueIndex;not null" json:"name"`
	PriceAdjustment decimal.Decimal `gorm:"type:decimal(10,2)" json:"price_adjustment"`
	CostPerYard     decimal.Decimal `gorm:"type:decimal(10,2)" json:"cost_per_yard"`
	SupplierID      *uuid.UUID      `gorm:"type:uuid" json:"supplier_id,omitempty"`
	IsActive        bool            `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`

	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"-"`
}

func (f *FabricType) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FabricType model
func (FabricType) TableName() string {
	return "fabric_types"
}

// SleeveType is a catalog entry for a sleeve style.
type SleeveType struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name            string          `gorm:"size:255;uniqueIndex;not null" json:"name"`
	PriceAdjustment decimal.Decimal `gorm:"type:decimal(10,2)" json:"price_adjustment"`
	AdditionalCost  decimal.Decimal `gorm:"type:decimal(10,2)" json:"additional_cost"`
	IsActive        bool            `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
}

func (s *SleeveType) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SleeveType model
func (SleeveType) TableName() string {
	return "sleeve_types"
}

// Supplier is a fabric supplier.
type Supplier struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	ContactPerson string    `gorm:"size:255" json:"contact_person,omitempty"`
	Phone         string    `gorm:"size:50" json:"phone,omitempty"`
	LineID        string    `gorm:"size:100" json:"line_id,omitempty"`
	Address       string    `gorm:"type:text" json:"address,omitempty"`
	TaxID         string    `gorm:"size:50" json:"tax_id,omitempty"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`

	Fabrics []FabricType `gorm:"foreignKey:SupplierID" json:"-"`
}

func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}
