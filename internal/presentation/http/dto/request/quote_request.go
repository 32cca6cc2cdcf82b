package request

import "github.com/shopspring/decimal"

// QuoteRequest prices an order without saving it. A nil shipping cost asks
// the server to estimate it from the quantity bands.
type QuoteRequest struct {
	Items          []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	ShippingCost   *decimal.Decimal   `json:"shipping_cost"`
	AddOnCost      decimal.Decimal    `json:"add_on_cost"`
	DiscountAmount decimal.Decimal    `json:"discount_amount"`
	DesignFee      decimal.Decimal    `json:"design_fee"`
	IsVATIncluded  *bool              `json:"is_vat_included"`
	Deposit1       decimal.Decimal    `json:"deposit_1"`
	Deposit2       decimal.Decimal    `json:"deposit_2"`
}
