package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// collarMarker disqualifies a name from the round/V class no matter what
// other tokens it carries.
const collarMarker = "ปก"

// roundVMarkers are the neck-shape tokens priced from the round/V table.
var roundVMarkers = []string{"คอกลม", "คอวี", "คอวีตัด", "คอวีชน", "คอวีไขว้"}

// ClassifyNeck splits a raw category name into the two tier classes.
func ClassifyNeck(categoryName string) NeckClass {
	if strings.Contains(categoryName, collarMarker) {
		return NeckClassCollar
	}
	for _, marker := range roundVMarkers {
		if strings.Contains(categoryName, marker) {
			return NeckClassRoundV
		}
	}
	return NeckClassCollar
}

func (pb *PriceBook) bandsFor(class NeckClass) []Band {
	if class == NeckClassRoundV {
		return pb.RoundVNeck
	}
	return pb.CollarOthers
}

// UnitPrice resolves the tier-based unit price for a line before add-ons.
// Quantities under 10 are charged at the first band of the class; the
// non-shirt classes carry flat prices and ignore quantity.
func (pb *PriceBook) UnitPrice(class ProductClass, categoryName string, qty int) decimal.Decimal {
	switch class {
	case ProductClassShorts:
		return pb.ShortsUnitPrice
	case ProductClassTrackPants:
		return pb.TrackPantsUnitPrice
	}

	bands := pb.bandsFor(ClassifyNeck(categoryName))
	if len(bands) == 0 {
		return decimal.Zero
	}
	if qty < bands[0].MinQty {
		return bands[0].Price
	}
	for _, b := range bands {
		if qty >= b.MinQty && qty <= b.MaxQty {
			return b.Price
		}
	}
	// No band matched; the final band is open-ended so this only happens
	// with a misconfigured book. Charge the first band rather than zero.
	return bands[0].Price
}
