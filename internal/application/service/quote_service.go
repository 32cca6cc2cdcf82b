package service

import (
	"context"

	"github.com/chatchaiw/apparel-api/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

// QuoteService prices an order without persisting anything, for the
// front-of-house calculator screen.
type QuoteService struct {
	catalog   pricing.Lookup
	priceBook *pricing.PriceBook
}

// NewQuoteService creates a new quote service
func NewQuoteService(catalog pricing.Lookup, priceBook *pricing.PriceBook) *QuoteService {
	return &QuoteService{catalog: catalog, priceBook: priceBook}
}

// QuoteInput represents the quote calculation input
type QuoteInput struct {
	Items          []OrderLineInput
	ShippingCost   *decimal.Decimal
	AddOnCost      decimal.Decimal
	DiscountAmount decimal.Decimal
	DesignFee      decimal.Decimal
	VATIncluded    bool
	Deposit1       decimal.Decimal
	Deposit2       decimal.Decimal
}

// QuoteResult is the full computed order before anything is saved
type QuoteResult struct {
	Lines  []*pricing.ComputedLine
	Totals pricing.Totals

	// ShippingEstimated is true when the shipping figure was derived from
	// the quantity bands rather than supplied by the caller.
	ShippingEstimated bool
}

// Calculate prices every line and aggregates the totals. When the caller
// leaves shipping unset it is estimated from the total garment count.
func (s *QuoteService) Calculate(ctx context.Context, input *QuoteInput) (*QuoteResult, error) {
	lines := make([]*pricing.ComputedLine, 0, len(input.Items))
	totalQty := 0
	for _, item := range input.Items {
		def, err := s.catalog.ResolveCategory(ctx, item.NeckType)
		if err != nil {
			return nil, err
		}

		requested := make([]pricing.AddOn, 0, len(item.SelectedAddOns))
		for _, a := range item.SelectedAddOns {
			requested = append(requested, pricing.AddOn(a))
		}

		line, err := s.priceBook.CalculateLine(pricing.LineRequest{
			ProductName:     item.ProductName,
			ProductClass:    parseProductClass(item.ProductClass),
			FabricType:      item.FabricType,
			CategoryName:    item.NeckType,
			SleeveType:      item.SleeveType,
			QuantityBySize:  item.QuantityBySize,
			RequestedAddOns: requested,
			IsOversize:      item.IsOversize,
			UnitCost:        item.UnitCost,
		}, def)
		if err != nil {
			return nil, toAppError(err)
		}

		if item.UnitPrice != nil && item.UnitPrice.IsPositive() && line.TotalQty > 0 {
			qty := decimal.NewFromInt(int64(line.TotalQty))
			line.UnitPrice = *item.UnitPrice
			line.TotalPrice = line.UnitPrice.Mul(qty).
				Add(line.AddOnTotal).
				Add(line.SizingSurcharge)
		}

		lines = append(lines, line)
		totalQty += line.TotalQty
	}

	shipping := decimal.Zero
	estimated := false
	if input.ShippingCost != nil {
		shipping = *input.ShippingCost
	} else {
		shipping = pricing.EstimateShipping(totalQty)
		estimated = true
	}

	totals := s.priceBook.Aggregate(pricing.TotalsInput{
		Lines:           lines,
		ShippingCost:    shipping,
		ManualAddOnCost: input.AddOnCost,
		DiscountAmount:  input.DiscountAmount,
		DesignFee:       input.DesignFee,
		VATIncluded:     input.VATIncluded,
		Deposit1:        input.Deposit1,
		Deposit2:        input.Deposit2,
	})

	return &QuoteResult{
		Lines:             lines,
		Totals:            totals,
		ShippingEstimated: estimated,
	}, nil
}
