package entity

import (
	"time"

	"github.com/chatchaiw/apparel-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is one production order: header, financial totals, and its line
// items. GrandTotal and VATAmount are derived together by the pricing
// engine and are never mutated independently.
type Order struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderNo  string    `gorm:"size:100;unique;not null" json:"order_no"`
	PublicID uuid.UUID `gorm:"type:uuid;uniqueIndex;column:order_uuid" json:"order_uuid"`

	CustomerID  *uuid.UUID `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	CreatedByID *uuid.UUID `gorm:"type:uuid" json:"created_by_id,omitempty"`

	Status       enum.OrderStatus  `gorm:"size:50;default:draft" json:"status"`
	DeadlineDate *time.Time        `gorm:"type:date" json:"deadline_date,omitempty"`
	UrgencyLevel enum.UrgencyLevel `gorm:"size:20;default:normal" json:"urgency_level"`
	GraphicCode  string            `gorm:"size:100" json:"graphic_code,omitempty"`

	// Financials
	IsVATIncluded     bool            `json:"is_vat_included"`
	ItemsSubtotal     decimal.Decimal `gorm:"type:decimal(10,2)" json:"items_subtotal"`
	AddOnOptionsTotal decimal.Decimal `gorm:"type:decimal(10,2)" json:"add_on_options_total"`
	SizingSurcharge   decimal.Decimal `gorm:"type:decimal(10,2)" json:"sizing_surcharge"`
	ShippingCost      decimal.Decimal `gorm:"type:decimal(10,2)" json:"shipping_cost"`
	AddOnCost         decimal.Decimal `gorm:"type:decimal(10,2)" json:"add_on_cost"`
	DiscountAmount    decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount_amount"`
	DesignFee         decimal.Decimal `gorm:"type:decimal(10,2)" json:"design_fee"`
	VATAmount         decimal.Decimal `gorm:"type:decimal(10,2)" json:"vat_amount"`
	GrandTotal        decimal.Decimal `gorm:"type:decimal(10,2)" json:"grand_total"`
	Deposit1          decimal.Decimal `gorm:"type:decimal(10,2);column:deposit_1" json:"deposit_1"`
	Deposit2          decimal.Decimal `gorm:"type:decimal(10,2);column:deposit_2" json:"deposit_2"`
	BalanceAmount     decimal.Decimal `gorm:"type:decimal(10,2)" json:"balance_amount"`
	TotalCost         decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_cost"`
	EstimatedProfit   decimal.Decimal `gorm:"type:decimal(10,2)" json:"estimated_profit"`

	// Payment slips per installment, uploaded through the public page.
	SlipBookingURL string `gorm:"size:255" json:"slip_booking_url,omitempty"`
	SlipDepositURL string `gorm:"size:255" json:"slip_deposit_url,omitempty"`
	SlipBalanceURL string `gorm:"size:255" json:"slip_balance_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BeforeCreate generates the primary and public UUIDs
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.PublicID == uuid.Nil {
		o.PublicID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one garment line. TotalPrice is the committed value for
// the line; the reconciliation engine preserves it for unchanged lines.
type OrderItem struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`

	ProductName  string `gorm:"size:255" json:"product_name"`
	ProductClass string `gorm:"size:50;default:shirt" json:"product_class"`
	FabricType   string `gorm:"size:255" json:"fabric_type"`
	NeckType     string `gorm:"size:255" json:"neck_type"`
	SleeveType   string `gorm:"size:255" json:"sleeve_type"`

	QuantityMatrix map[string]int `gorm:"serializer:json;not null" json:"quantity_matrix"`
	TotalQty       int            `gorm:"default:0" json:"total_qty"`

	SelectedAddOns []string `gorm:"serializer:json" json:"selected_add_ons,omitempty"`
	IsOversize     bool     `gorm:"not null;default:false" json:"is_oversize"`

	PricePerUnit        decimal.Decimal `gorm:"type:decimal(10,2)" json:"price_per_unit"`
	ItemAddonTotal      decimal.Decimal `gorm:"type:decimal(10,2)" json:"item_addon_total"`
	ItemSizingSurcharge decimal.Decimal `gorm:"type:decimal(10,2)" json:"item_sizing_surcharge"`
	TotalPrice          decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_price"`
	CostPerUnit         decimal.Decimal `gorm:"type:decimal(10,2)" json:"cost_per_unit"`
	TotalCost           decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_cost"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
