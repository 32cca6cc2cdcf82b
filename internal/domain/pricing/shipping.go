package pricing

import "github.com/shopspring/decimal"

// EstimateShipping returns the quoted shipping cost for a total garment
// count. Orders under ten pieces are picked up, not shipped. Above one
// hundred pieces every extra piece adds a flat 50.
func EstimateShipping(totalQty int) decimal.Decimal {
	switch {
	case totalQty < 10:
		return decimal.Zero
	case totalQty <= 15:
		return decimal.NewFromInt(60)
	case totalQty <= 20:
		return decimal.NewFromInt(80)
	case totalQty <= 30:
		return decimal.NewFromInt(100)
	case totalQty <= 40:
		return decimal.NewFromInt(120)
	case totalQty <= 50:
		return decimal.NewFromInt(180)
	case totalQty <= 70:
		return decimal.NewFromInt(200)
	case totalQty <= 100:
		return decimal.NewFromInt(230)
	}
	extra := decimal.NewFromInt(int64(totalQty - 100)).Mul(decimal.NewFromInt(50))
	return decimal.NewFromInt(230).Add(extra)
}
