package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeLine(t *testing.T, qty int, unitCost string) *ComputedLine {
	t.Helper()
	pb := DefaultPriceBook()
	line, err := pb.CalculateLine(LineRequest{
		ProductClass:   ProductClassShirt,
		CategoryName:   "คอกลม",
		QuantityBySize: map[string]int{"M": qty},
		UnitCost:       strDec(unitCost),
	}, nil)
	require.NoError(t, err)
	return line
}

func TestAggregateVATExclusive(t *testing.T) {
	pb := DefaultPriceBook()

	// 20 round necks at 240 = 4800, plus 200 shipping.
	totals := pb.Aggregate(TotalsInput{
		Lines:        []*ComputedLine{makeLine(t, 20, "0")},
		ShippingCost: intDec(200),
	})

	assert.True(t, totals.PreVATTotal.Equal(intDec(5000)))
	assert.True(t, totals.VATAmount.Equal(intDec(350)), "got %s", totals.VATAmount)
	assert.True(t, totals.GrandTotal.Equal(intDec(5350)))
}

func TestAggregateVATInclusiveRoundTrip(t *testing.T) {
	pb := DefaultPriceBook()

	totals := pb.Aggregate(TotalsInput{
		Lines:       []*ComputedLine{makeLine(t, 20, "0")},
		VATIncluded: true,
	})

	// The figure already contains VAT: the grand total is unchanged and
	// the VAT is extracted as 7/107.
	assert.True(t, totals.GrandTotal.Equal(intDec(4800)))
	assert.True(t, totals.VATAmount.Equal(strDec("314.02")), "got %s", totals.VATAmount)

	// Re-deriving the net from grand total and VAT recovers it within
	// rounding tolerance.
	net := totals.GrandTotal.Sub(totals.VATAmount)
	recovered := net.Mul(strDec("1.07"))
	diff := recovered.Sub(totals.PreVATTotal).Abs()
	assert.True(t, diff.LessThanOrEqual(strDec("0.05")), "diff %s", diff)
}

func TestAggregateDiscountAndManualAddOn(t *testing.T) {
	pb := DefaultPriceBook()

	totals := pb.Aggregate(TotalsInput{
		Lines:           []*ComputedLine{makeLine(t, 20, "0")},
		ManualAddOnCost: intDec(500),
		DiscountAmount:  intDec(300),
		VATIncluded:     true,
	})

	assert.True(t, totals.PreVATTotal.Equal(intDec(5000)), "4800+500-300, got %s", totals.PreVATTotal)
}

func TestAggregateManualAddOnDuplicateGuard(t *testing.T) {
	pb := DefaultPriceBook()

	line, err := pb.CalculateLine(LineRequest{
		ProductClass:    ProductClassShirt,
		CategoryName:    "คอกลม",
		QuantityBySize:  map[string]int{"M": 20},
		RequestedAddOns: []AddOn{AddOnPocket},
	}, nil)
	require.NoError(t, err)
	require.True(t, line.AddOnTotal.Equal(intDec(400)))

	// The caller echoed the computed add-on total back as a manual cost;
	// it must not be charged twice.
	totals := pb.Aggregate(TotalsInput{
		Lines:           []*ComputedLine{line},
		ManualAddOnCost: intDec(400),
		VATIncluded:     true,
	})

	assert.True(t, totals.ManualAddOnCost.IsZero())
	assert.True(t, totals.PreVATTotal.Equal(intDec(5200)), "got %s", totals.PreVATTotal)
}

func TestAggregateDepositDefaults(t *testing.T) {
	pb := DefaultPriceBook()

	grand := intDec(1000)

	t.Run("no explicit deposits", func(t *testing.T) {
		d1, d2 := allocateDeposits(grand, decimal.Zero, decimal.Zero, decimal.Zero)
		assert.True(t, d1.Equal(intDec(500)))
		assert.True(t, d2.Equal(intDec(500)))
	})

	t.Run("design fee reduces second installment", func(t *testing.T) {
		d1, d2 := allocateDeposits(grand, decimal.Zero, decimal.Zero, intDec(100))
		assert.True(t, d1.Equal(intDec(500)))
		assert.True(t, d2.Equal(intDec(400)))
	})

	t.Run("odd grand total rounds first installment up", func(t *testing.T) {
		d1, d2 := allocateDeposits(intDec(1001), decimal.Zero, decimal.Zero, decimal.Zero)
		assert.True(t, d1.Equal(intDec(501)))
		assert.True(t, d2.Equal(intDec(500)))
	})

	t.Run("explicit first installment backfills second", func(t *testing.T) {
		d1, d2 := allocateDeposits(grand, intDec(700), decimal.Zero, decimal.Zero)
		assert.True(t, d1.Equal(intDec(700)))
		assert.True(t, d2.Equal(intDec(300)))
	})

	t.Run("explicit second installment backfills first", func(t *testing.T) {
		d1, d2 := allocateDeposits(grand, decimal.Zero, intDec(250), decimal.Zero)
		assert.True(t, d1.Equal(intDec(750)))
		assert.True(t, d2.Equal(intDec(250)))
	})

	t.Run("residual never goes negative", func(t *testing.T) {
		d1, d2 := allocateDeposits(grand, intDec(1200), decimal.Zero, decimal.Zero)
		assert.True(t, d1.Equal(intDec(1200)))
		assert.True(t, d2.IsZero())
	})

	_ = pb
}

func TestAggregateProfitEstimate(t *testing.T) {
	pb := DefaultPriceBook()

	totals := pb.Aggregate(TotalsInput{
		Lines:       []*ComputedLine{makeLine(t, 20, "100")},
		VATIncluded: true,
	})

	// Revenue net of VAT minus total cost.
	wantNet := totals.GrandTotal.Sub(totals.VATAmount)
	assert.True(t, totals.TotalCost.Equal(intDec(2000)))
	assert.True(t, totals.EstimatedProfit.Equal(wantNet.Sub(intDec(2000))))
}

func TestAggregateBalance(t *testing.T) {
	pb := DefaultPriceBook()

	totals := pb.Aggregate(TotalsInput{
		Lines:       []*ComputedLine{makeLine(t, 20, "0")},
		VATIncluded: true,
		Deposit1:    intDec(2000),
		Deposit2:    intDec(1000),
	})

	assert.True(t, totals.BalanceAmount.Equal(intDec(1800)), "4800-3000, got %s", totals.BalanceAmount)
}
