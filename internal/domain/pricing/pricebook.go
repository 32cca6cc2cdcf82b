package pricing

import (
	"github.com/shopspring/decimal"
)

// ProductClass identifies which pricing scheme applies to a line.
type ProductClass string

const (
	ProductClassShirt      ProductClass = "shirt"
	ProductClassShorts     ProductClass = "shorts"
	ProductClassTrackPants ProductClass = "track_pants"
)

// NeckClass is the two-way split that picks the tier table.
type NeckClass string

const (
	NeckClassRoundV NeckClass = "round_v"
	NeckClassCollar NeckClass = "collar_others"
)

// AddOn identifies an optional (or forced) per-unit extra.
type AddOn string

const (
	AddOnLongSleeve    AddOn = "longSleeve"
	AddOnPocket        AddOn = "pocket"
	AddOnNumberName    AddOn = "numberName"
	AddOnSlopeShoulder AddOn = "slopeShoulder"
	AddOnCollarTongue  AddOn = "collarTongue"
	AddOnShortSleeve   AddOn = "shortSleeveAlt"
	AddOnOversizeSlope AddOn = "oversizeSlopeShoulder"
)

// Band maps an inclusive quantity range to a unit price.
type Band struct {
	MinQty int
	MaxQty int
	Price  decimal.Decimal
}

// PriceBook holds every pricing constant the engine uses. It is injected
// into the calculators so a repricing is a data change, not a code change.
type PriceBook struct {
	RoundVNeck   []Band
	CollarOthers []Band

	// Flat unit prices for the non-shirt classes; these bypass quantity
	// banding entirely.
	ShortsUnitPrice     decimal.Decimal
	TrackPantsUnitPrice decimal.Decimal

	AddOnPrices map[AddOn]decimal.Decimal

	// Per-unit premium for large sizes (2XL+ on oversize cuts, 4XL+ otherwise).
	SizingSurcharge decimal.Decimal

	VATRate decimal.Decimal
}

func band(min, max int, price int64) Band {
	return Band{MinQty: min, MaxQty: max, Price: decimal.NewFromInt(price)}
}

// DefaultPriceBook returns the shop's standard 2026 price list.
func DefaultPriceBook() *PriceBook {
	return &PriceBook{
		RoundVNeck: []Band{
			band(10, 30, 240),
			band(31, 50, 220),
			band(51, 100, 190),
			band(101, 300, 180),
			band(301, 99999, 170),
		},
		CollarOthers: []Band{
			band(10, 30, 300),
			band(31, 50, 260),
			band(51, 100, 240),
			band(101, 300, 220),
			band(301, 99999, 200),
		},
		ShortsUnitPrice:     decimal.NewFromInt(210),
		TrackPantsUnitPrice: decimal.NewFromInt(280),
		AddOnPrices: map[AddOn]decimal.Decimal{
			AddOnLongSleeve:    decimal.NewFromInt(40),
			AddOnPocket:        decimal.NewFromInt(20),
			AddOnNumberName:    decimal.NewFromInt(20),
			AddOnSlopeShoulder: decimal.NewFromInt(40),
			AddOnCollarTongue:  decimal.NewFromInt(10),
			AddOnShortSleeve:   decimal.NewFromInt(20),
			AddOnOversizeSlope: decimal.NewFromInt(60),
		},
		SizingSurcharge: decimal.NewFromInt(100),
		VATRate:         decimal.NewFromFloat(0.07),
	}
}
