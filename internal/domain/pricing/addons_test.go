package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResolveAddOnsForcedTongueAndSlope(t *testing.T) {
	pb := DefaultPriceBook()

	name := "คอปกคางหมู (มีลิ้น) (บังคับไหล่สโลป+40 บาท/ตัว)"
	addOns, unitTotal := pb.ResolveAddOns(name, nil, false, nil)

	assert.ElementsMatch(t, []AddOn{AddOnCollarTongue, AddOnSlopeShoulder}, addOns)
	assert.True(t, unitTotal.Equal(intDec(50)), "40 slope + 10 tongue, got %s", unitTotal)
}

func TestResolveAddOnsCatalogForceFlag(t *testing.T) {
	pb := DefaultPriceBook()

	def := &CategoryDef{Name: "คอหยดน้ำ", ForceSlope: true}
	addOns, unitTotal := pb.ResolveAddOns("คอหยดน้ำ", nil, false, def)

	assert.Equal(t, []AddOn{AddOnSlopeShoulder}, addOns)
	assert.True(t, unitTotal.Equal(intDec(40)))
}

func TestResolveAddOnsSlopePriceOverride(t *testing.T) {
	pb := DefaultPriceBook()

	override := decimal.NewFromInt(55)
	def := &CategoryDef{Name: "คอปกคางหมู", ForceSlope: true, AdditionalCost: &override}
	_, unitTotal := pb.ResolveAddOns("คอปกคางหมู", nil, false, def)

	assert.True(t, unitTotal.Equal(intDec(55)))
}

func TestResolveAddOnsOversizeDisplacesPlainSlope(t *testing.T) {
	pb := DefaultPriceBook()

	// Requested slope plus oversize: only the oversize slope survives,
	// so the slope work is never billed twice.
	addOns, unitTotal := pb.ResolveAddOns("คอกลม", []AddOn{AddOnSlopeShoulder}, true, nil)

	assert.Equal(t, []AddOn{AddOnOversizeSlope}, addOns)
	assert.True(t, unitTotal.Equal(intDec(60)))

	// Same when the slope comes from a force flag rather than the caller.
	def := &CategoryDef{Name: "คอกลม", ForceSlope: true}
	addOns, unitTotal = pb.ResolveAddOns("คอกลม", nil, true, def)
	assert.Equal(t, []AddOn{AddOnOversizeSlope}, addOns)
	assert.True(t, unitTotal.Equal(intDec(60)))
}

func TestResolveAddOnsIdempotentSelection(t *testing.T) {
	pb := DefaultPriceBook()

	// The caller already picked the tongue the category forces; it is
	// counted once.
	addOns, unitTotal := pb.ResolveAddOns("คอปกเชิ้ต มีลิ้น", []AddOn{AddOnCollarTongue, AddOnPocket}, false, nil)

	assert.ElementsMatch(t, []AddOn{AddOnCollarTongue, AddOnPocket}, addOns)
	assert.True(t, unitTotal.Equal(intDec(30)))
}

func TestResolveAddOnsPlainSelection(t *testing.T) {
	pb := DefaultPriceBook()

	addOns, unitTotal := pb.ResolveAddOns("คอกลม", []AddOn{AddOnLongSleeve, AddOnNumberName}, false, nil)

	assert.ElementsMatch(t, []AddOn{AddOnLongSleeve, AddOnNumberName}, addOns)
	assert.True(t, unitTotal.Equal(intDec(60)))
}
