package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// oversizeAllowedCategories are the only neck shapes cut oversize.
var oversizeAllowedCategories = []string{"คอกลม", "คอวี", "คอวีตัด", "คอวีปก"}

// oversizeSurchargePrefixes / regularSurchargePrefixes pick which size
// labels carry the large-size premium, keyed off the oversize flag.
var (
	oversizeSurchargePrefixes = []string{"2XL", "3XL", "4XL", "5XL"}
	regularSurchargePrefixes  = []string{"4XL", "5XL"}
)

// LineRequest is one requested garment line before pricing.
type LineRequest struct {
	ProductName     string
	ProductClass    ProductClass
	FabricType      string
	CategoryName    string
	SleeveType      string
	QuantityBySize  map[string]int
	RequestedAddOns []AddOn
	IsOversize      bool
	UnitCost        decimal.Decimal
}

// ComputedLine is a priced line. TotalPrice is the authoritative persisted
// value until the line is recomputed.
type ComputedLine struct {
	LineRequest

	TotalQty        int
	UnitPrice       decimal.Decimal
	AddOns          []AddOn
	AddOnUnitPrice  decimal.Decimal
	AddOnTotal      decimal.Decimal
	SizingSurcharge decimal.Decimal
	TotalPrice      decimal.Decimal
	TotalCost       decimal.Decimal
}

// OversizeCategoryError rejects an oversize flag on a category that has no
// oversize pattern. It fails the whole order, not just the line.
type OversizeCategoryError struct {
	Category string
	Allowed  []string
}

func (e *OversizeCategoryError) Error() string {
	return fmt.Sprintf("ทรง Oversize ใช้ได้เฉพาะ %s เท่านั้น (ได้รับ %q)",
		strings.Join(e.Allowed, ", "), e.Category)
}

func validateQuantities(qtyBySize map[string]int) error {
	for size, n := range qtyBySize {
		if n < 0 {
			return fmt.Errorf("quantity for size %q is negative", size)
		}
	}
	return nil
}

func oversizeAllowed(categoryName string) bool {
	for _, allowed := range oversizeAllowedCategories {
		if strings.Contains(categoryName, allowed) {
			return true
		}
	}
	return false
}

// CalculateLine prices one line: tier unit price, resolved add-ons, sizing
// surcharge, and line totals. def may be nil (catalog miss); the engine
// then runs entirely on the price book's defaults. A zero-quantity line
// comes back priced at zero rather than as an error.
func (pb *PriceBook) CalculateLine(req LineRequest, def *CategoryDef) (*ComputedLine, error) {
	if err := validateQuantities(req.QuantityBySize); err != nil {
		return nil, err
	}
	if req.IsOversize && !oversizeAllowed(req.CategoryName) {
		return nil, &OversizeCategoryError{
			Category: req.CategoryName,
			Allowed:  oversizeAllowedCategories,
		}
	}

	line := &ComputedLine{LineRequest: req}
	for _, n := range req.QuantityBySize {
		line.TotalQty += n
	}
	if line.TotalQty == 0 {
		line.UnitPrice = decimal.Zero
		line.AddOnUnitPrice = decimal.Zero
		line.AddOnTotal = decimal.Zero
		line.SizingSurcharge = decimal.Zero
		line.TotalPrice = decimal.Zero
		line.TotalCost = decimal.Zero
		return line, nil
	}

	qty := decimal.NewFromInt(int64(line.TotalQty))

	line.UnitPrice = pb.UnitPrice(req.ProductClass, req.CategoryName, line.TotalQty)
	line.AddOns, line.AddOnUnitPrice = pb.ResolveAddOns(req.CategoryName, req.RequestedAddOns, req.IsOversize, def)
	line.AddOnTotal = line.AddOnUnitPrice.Mul(qty)
	line.SizingSurcharge = pb.sizingSurcharge(req.QuantityBySize, req.IsOversize)

	line.TotalPrice = line.UnitPrice.Mul(qty).
		Add(line.AddOnTotal).
		Add(line.SizingSurcharge)
	line.TotalCost = req.UnitCost.Mul(qty)

	return line, nil
}

// sizingSurcharge sums the large-size premium over the affected units.
func (pb *PriceBook) sizingSurcharge(qtyBySize map[string]int, isOversize bool) decimal.Decimal {
	prefixes := regularSurchargePrefixes
	if isOversize {
		prefixes = oversizeSurchargePrefixes
	}

	affected := 0
	for size, n := range qtyBySize {
		for _, p := range prefixes {
			if strings.HasPrefix(size, p) {
				affected += n
				break
			}
		}
	}
	if affected == 0 {
		return decimal.Zero
	}
	return pb.SizingSurcharge.Mul(decimal.NewFromInt(int64(affected)))
}
