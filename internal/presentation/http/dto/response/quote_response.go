package response

import (
	"github.com/chatchaiw/apparel-api/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

// QuoteLine is one priced garment line in a quote
type QuoteLine struct {
	ProductName     string          `json:"product_name"`
	ProductClass    string          `json:"product_class"`
	FabricType      string          `json:"fabric_type"`
	NeckType        string          `json:"neck_type"`
	SleeveType      string          `json:"sleeve_type"`
	QuantityMatrix  map[string]int  `json:"quantity_matrix"`
	TotalQty        int             `json:"total_qty"`
	SelectedAddOns  []string        `json:"selected_add_ons"`
	IsOversize      bool            `json:"is_oversize"`
	PricePerUnit    decimal.Decimal `json:"price_per_unit"`
	AddOnUnitPrice  decimal.Decimal `json:"add_on_unit_price"`
	ItemAddonTotal  decimal.Decimal `json:"item_addon_total"`
	SizingSurcharge decimal.Decimal `json:"item_sizing_surcharge"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	TotalCost       decimal.Decimal `json:"total_cost"`
}

// QuoteTotals mirrors the order-level financial figures
type QuoteTotals struct {
	TotalQty        int             `json:"total_qty"`
	ItemsSubtotal   decimal.Decimal `json:"items_subtotal"`
	AddOnTotal      decimal.Decimal `json:"add_on_options_total"`
	SizingSurcharge decimal.Decimal `json:"sizing_surcharge"`
	ShippingCost    decimal.Decimal `json:"shipping_cost"`
	AddOnCost       decimal.Decimal `json:"add_on_cost"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	PreVATTotal     decimal.Decimal `json:"pre_vat_total"`
	VATAmount       decimal.Decimal `json:"vat_amount"`
	GrandTotal      decimal.Decimal `json:"grand_total"`
	Deposit1        decimal.Decimal `json:"deposit_1"`
	Deposit2        decimal.Decimal `json:"deposit_2"`
	BalanceAmount   decimal.Decimal `json:"balance_amount"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	EstimatedProfit decimal.Decimal `json:"estimated_profit"`
}

// QuoteResponse is the full computed order before anything is saved
type QuoteResponse struct {
	Lines             []QuoteLine `json:"lines"`
	Totals            QuoteTotals `json:"totals"`
	ShippingEstimated bool        `json:"shipping_estimated"`
}

// NewQuoteResponse converts the pricing engine's result into the API shape
func NewQuoteResponse(lines []*pricing.ComputedLine, totals pricing.Totals, shippingEstimated bool) *QuoteResponse {
	out := &QuoteResponse{
		Lines:             make([]QuoteLine, 0, len(lines)),
		ShippingEstimated: shippingEstimated,
		Totals: QuoteTotals{
			TotalQty:        totals.TotalQty,
			ItemsSubtotal:   totals.ItemsSubtotal,
			AddOnTotal:      totals.AddOnTotal,
			SizingSurcharge: totals.SizingSurcharge,
			ShippingCost:    totals.ShippingCost,
			AddOnCost:       totals.ManualAddOnCost,
			DiscountAmount:  totals.DiscountAmount,
			PreVATTotal:     totals.PreVATTotal,
			VATAmount:       totals.VATAmount,
			GrandTotal:      totals.GrandTotal,
			Deposit1:        totals.Deposit1,
			Deposit2:        totals.Deposit2,
			BalanceAmount:   totals.BalanceAmount,
			TotalCost:       totals.TotalCost,
			EstimatedProfit: totals.EstimatedProfit,
		},
	}

	for _, line := range lines {
		addOns := make([]string, 0, len(line.AddOns))
		for _, a := range line.AddOns {
			addOns = append(addOns, string(a))
		}
		out.Lines = append(out.Lines, QuoteLine{
			ProductName:     line.ProductName,
			ProductClass:    string(line.ProductClass),
			FabricType:      line.FabricType,
			NeckType:        line.CategoryName,
			SleeveType:      line.SleeveType,
			QuantityMatrix:  line.QuantityBySize,
			TotalQty:        line.TotalQty,
			SelectedAddOns:  addOns,
			IsOversize:      line.IsOversize,
			PricePerUnit:    line.UnitPrice,
			AddOnUnitPrice:  line.AddOnUnitPrice,
			ItemAddonTotal:  line.AddOnTotal,
			SizingSurcharge: line.SizingSurcharge,
			TotalPrice:      line.TotalPrice,
			TotalCost:       line.TotalCost,
		})
	}

	return out
}
