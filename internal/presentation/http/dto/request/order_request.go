package request

import "github.com/shopspring/decimal"

// OrderItemRequest represents one requested garment line
type OrderItemRequest struct {
	ProductName    string           `json:"product_name" binding:"required"`
	ProductClass   string           `json:"product_class"`
	FabricType     string           `json:"fabric_type"`
	NeckType       string           `json:"neck_type"`
	SleeveType     string           `json:"sleeve_type"`
	QuantityMatrix map[string]int   `json:"quantity_matrix" binding:"required"`
	SelectedAddOns []string         `json:"selected_add_ons"`
	IsOversize     bool             `json:"is_oversize"`
	CostPerUnit    decimal.Decimal  `json:"cost_per_unit"`
	PricePerUnit   *decimal.Decimal `json:"price_per_unit"`
}

// CustomerRequest is the customer contact block on an order submission
type CustomerRequest struct {
	Name           string `json:"name"`
	CustomerCode   string `json:"customer_code"`
	Phone          string `json:"phone"`
	ContactChannel string `json:"contact_channel"`
	Address        string `json:"address"`
}

// CreateOrderRequest represents an order submission. A nil is_vat_included
// falls back to the configured default.
type CreateOrderRequest struct {
	Customer       CustomerRequest    `json:"customer"`
	Items          []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	ShippingCost   decimal.Decimal    `json:"shipping_cost"`
	AddOnCost      decimal.Decimal    `json:"add_on_cost"`
	DiscountAmount decimal.Decimal    `json:"discount_amount"`
	DesignFee      decimal.Decimal    `json:"design_fee"`
	IsVATIncluded  *bool              `json:"is_vat_included"`
	Deposit1       decimal.Decimal    `json:"deposit_1"`
	Deposit2       decimal.Decimal    `json:"deposit_2"`
	DeadlineDate   *string            `json:"deadline_date"`
	UrgencyLevel   string             `json:"urgency_level"`
	GraphicCode    string             `json:"graphic_code"`
	Status         string             `json:"status"`
}

// UpdateOrderStatusRequest moves an order to a new status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
