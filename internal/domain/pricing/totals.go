package pricing

import (
	"github.com/shopspring/decimal"
)

var (
	seven      = decimal.NewFromInt(7)
	oneOhSeven = decimal.NewFromInt(107)
	two        = decimal.NewFromInt(2)
)

// TotalsInput carries the order-level figures around the computed lines.
// Deposit1/Deposit2 are the caller's explicit installments; zero means
// "derive it for me".
type TotalsInput struct {
	Lines          []*ComputedLine
	ShippingCost   decimal.Decimal
	ManualAddOnCost decimal.Decimal
	DiscountAmount decimal.Decimal
	DesignFee      decimal.Decimal
	VATIncluded    bool
	Deposit1       decimal.Decimal
	Deposit2       decimal.Decimal
}

// Totals is the order-level financial result.
type Totals struct {
	TotalQty        int
	ItemsSubtotal   decimal.Decimal
	AddOnTotal      decimal.Decimal
	SizingSurcharge decimal.Decimal
	ShippingCost    decimal.Decimal
	ManualAddOnCost decimal.Decimal
	DiscountAmount  decimal.Decimal
	PreVATTotal     decimal.Decimal
	VATAmount       decimal.Decimal
	GrandTotal      decimal.Decimal
	Deposit1        decimal.Decimal
	Deposit2        decimal.Decimal
	BalanceAmount   decimal.Decimal
	TotalCost       decimal.Decimal
	EstimatedProfit decimal.Decimal
}

// Aggregate combines computed lines into order totals: VAT (inclusive or
// exclusive of the figure), deposit installments, and the profit estimate.
//
// GrandTotal and VATAmount are always derived together from PreVATTotal;
// they are never set independently.
func (pb *PriceBook) Aggregate(in TotalsInput) Totals {
	t := Totals{
		ShippingCost:    in.ShippingCost,
		ManualAddOnCost: in.ManualAddOnCost,
		DiscountAmount:  in.DiscountAmount,
		ItemsSubtotal:   decimal.Zero,
		AddOnTotal:      decimal.Zero,
		SizingSurcharge: decimal.Zero,
		TotalCost:       decimal.Zero,
	}

	for _, line := range in.Lines {
		t.TotalQty += line.TotalQty
		t.ItemsSubtotal = t.ItemsSubtotal.Add(line.TotalPrice)
		t.AddOnTotal = t.AddOnTotal.Add(line.AddOnTotal)
		t.SizingSurcharge = t.SizingSurcharge.Add(line.SizingSurcharge)
		t.TotalCost = t.TotalCost.Add(line.TotalCost)
	}

	// A manual add-on figure equal to the computed per-item add-on sum is
	// the caller echoing our own number back; charging it again would
	// double the add-ons.
	if !t.ManualAddOnCost.IsZero() && t.ManualAddOnCost.Equal(t.AddOnTotal) {
		t.ManualAddOnCost = decimal.Zero
	}

	t.PreVATTotal = t.ItemsSubtotal.
		Add(t.ManualAddOnCost).
		Add(t.ShippingCost).
		Sub(t.DiscountAmount)

	if in.VATIncluded {
		t.VATAmount = t.PreVATTotal.Mul(seven).Div(oneOhSeven).Round(2)
		t.GrandTotal = t.PreVATTotal
	} else {
		t.VATAmount = t.PreVATTotal.Mul(pb.VATRate).Round(2)
		t.GrandTotal = t.PreVATTotal.Add(t.VATAmount)
	}

	t.Deposit1, t.Deposit2 = allocateDeposits(t.GrandTotal, in.Deposit1, in.Deposit2, in.DesignFee)
	t.BalanceAmount = t.GrandTotal.Sub(t.Deposit1).Sub(t.Deposit2)

	t.EstimatedProfit = t.GrandTotal.Sub(t.VATAmount).Sub(t.TotalCost)

	return t
}

// allocateDeposits splits the grand total into two installments. With no
// explicit installments the first is half the total rounded up to a whole
// baht and the second is the residual after the design fee; a single
// explicit installment has its counterpart backfilled the same way.
func allocateDeposits(grandTotal, dep1, dep2, designFee decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	residual := func(other decimal.Decimal) decimal.Decimal {
		r := grandTotal.Sub(other).Sub(designFee)
		if r.IsNegative() {
			return decimal.Zero
		}
		return r
	}

	switch {
	case dep1.IsZero() && dep2.IsZero():
		dep1 = grandTotal.Div(two).Ceil()
		return dep1, residual(dep1)
	case dep2.IsZero():
		return dep1, residual(dep1)
	case dep1.IsZero():
		return residual(dep2), dep2
	}
	return dep1, dep2
}
