package pricing

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	tongueMarker      = "มีลิ้น"
	forcedSlopeMarker = "(บังคับไหล่สโลป"
)

// ResolveAddOns produces the authoritative add-on set for a line: the
// caller's selection plus anything the category or the oversize cut forces.
// Rules run in a fixed order and re-adding an add-on is a no-op:
//
//  1. a "มีลิ้น" category forces the collar tongue,
//  2. a forced-slope annotation or the catalog force flag adds the slope
//     shoulder,
//  3. an oversize cut swaps any plain slope for the oversize slope, whose
//     price already covers the slope work.
//
// The slope-shoulder unit price is taken from the catalog entry's
// additional cost when present, so a category can carry its own surcharge
// without a price-book change.
//
// The returned slice is sorted; the total is the per-unit sum.
func (pb *PriceBook) ResolveAddOns(categoryName string, requested []AddOn, isOversize bool, def *CategoryDef) ([]AddOn, decimal.Decimal) {
	selected := make(map[AddOn]bool, len(requested)+3)
	for _, a := range requested {
		selected[a] = true
	}

	if strings.Contains(categoryName, tongueMarker) {
		selected[AddOnCollarTongue] = true
	}
	if strings.Contains(categoryName, forcedSlopeMarker) || (def != nil && def.ForceSlope) {
		selected[AddOnSlopeShoulder] = true
	}
	if isOversize {
		delete(selected, AddOnSlopeShoulder)
		selected[AddOnOversizeSlope] = true
	}

	slopePrice := pb.AddOnPrices[AddOnSlopeShoulder]
	if def != nil && def.AdditionalCost != nil {
		slopePrice = *def.AdditionalCost
	}

	final := make([]AddOn, 0, len(selected))
	unitTotal := decimal.Zero
	for a := range selected {
		final = append(final, a)
		if a == AddOnSlopeShoulder {
			unitTotal = unitTotal.Add(slopePrice)
			continue
		}
		unitTotal = unitTotal.Add(pb.AddOnPrices[a])
	}
	sort.Slice(final, func(i, j int) bool { return final[i] < final[j] })

	return final, unitTotal
}
