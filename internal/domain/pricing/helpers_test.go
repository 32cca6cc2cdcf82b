package pricing

import "github.com/shopspring/decimal"

func intDec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func strDec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}
