package response

import (
	"github.com/chatchaiw/apparel-api/internal/application/service"
	"github.com/chatchaiw/apparel-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PublicOrderItem is the customer-visible slice of one garment line
type PublicOrderItem struct {
	ProductName    string          `json:"product_name"`
	FabricType     string          `json:"fabric_type"`
	NeckType       string          `json:"neck_type"`
	SleeveType     string          `json:"sleeve_type"`
	QuantityMatrix map[string]int  `json:"quantity_matrix"`
	TotalQty       int             `json:"total_qty"`
	TotalPrice     decimal.Decimal `json:"total_price"`
}

// PublicOrderResponse is the customer-facing order page payload. Cost and
// profit figures never appear here.
type PublicOrderResponse struct {
	OrderNo        string            `json:"order_no"`
	Status         string            `json:"status"`
	CustomerName   string            `json:"customer_name,omitempty"`
	DeadlineDate   string            `json:"deadline_date,omitempty"`
	Items          []PublicOrderItem `json:"items"`
	ShippingCost   decimal.Decimal   `json:"shipping_cost"`
	DiscountAmount decimal.Decimal   `json:"discount_amount"`
	VATAmount      decimal.Decimal   `json:"vat_amount"`
	GrandTotal     decimal.Decimal   `json:"grand_total"`
	Deposit1       decimal.Decimal   `json:"deposit_1"`
	Deposit2       decimal.Decimal   `json:"deposit_2"`
	BalanceAmount  decimal.Decimal   `json:"balance_amount"`
	DueInstallment string            `json:"due_installment,omitempty"`
	AmountDue      decimal.Decimal   `json:"amount_due"`
	SlipBookingURL string            `json:"slip_booking_url,omitempty"`
	SlipDepositURL string            `json:"slip_deposit_url,omitempty"`
	SlipBalanceURL string            `json:"slip_balance_url,omitempty"`
}

// NewPublicOrderResponse builds the public payload from an order view
func NewPublicOrderResponse(view *service.PublicOrderView) *PublicOrderResponse {
	order := view.Order

	out := &PublicOrderResponse{
		OrderNo:        order.OrderNo,
		Status:         string(order.Status),
		Items:          make([]PublicOrderItem, 0, len(order.Items)),
		ShippingCost:   order.ShippingCost,
		DiscountAmount: order.DiscountAmount,
		VATAmount:      order.VATAmount,
		GrandTotal:     order.GrandTotal,
		Deposit1:       order.Deposit1,
		Deposit2:       order.Deposit2,
		BalanceAmount:  order.BalanceAmount,
		DueInstallment: string(view.DueInstallment),
		AmountDue:      view.AmountDue,
		SlipBookingURL: order.SlipBookingURL,
		SlipDepositURL: order.SlipDepositURL,
		SlipBalanceURL: order.SlipBalanceURL,
	}

	if order.Customer != nil {
		out.CustomerName = order.Customer.Name
	}
	if order.DeadlineDate != nil {
		out.DeadlineDate = order.DeadlineDate.Format("2006-01-02")
	}

	for _, item := range order.Items {
		out.Items = append(out.Items, publicItem(item))
	}

	return out
}

func publicItem(item entity.OrderItem) PublicOrderItem {
	return PublicOrderItem{
		ProductName:    item.ProductName,
		FabricType:     item.FabricType,
		NeckType:       item.NeckType,
		SleeveType:     item.SleeveType,
		QuantityMatrix: item.QuantityMatrix,
		TotalQty:       item.TotalQty,
		TotalPrice:     item.TotalPrice,
	}
}
