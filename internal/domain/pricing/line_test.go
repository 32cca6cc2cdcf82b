package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateLineForcedAddOnExample(t *testing.T) {
	pb := DefaultPriceBook()

	line, err := pb.CalculateLine(LineRequest{
		ProductClass:   ProductClassShirt,
		CategoryName:   "คอปกคางหมู (มีลิ้น) (บังคับไหล่สโลป+40 บาท/ตัว)",
		QuantityBySize: map[string]int{"M": 10, "L": 10},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 20, line.TotalQty)
	assert.True(t, line.UnitPrice.Equal(intDec(300)))
	assert.ElementsMatch(t, []AddOn{AddOnCollarTongue, AddOnSlopeShoulder}, line.AddOns)
	assert.True(t, line.AddOnUnitPrice.Equal(intDec(50)))
	assert.True(t, line.AddOnTotal.Equal(intDec(1000)))
	assert.True(t, line.TotalPrice.Equal(intDec(7000)), "got %s", line.TotalPrice)
}

func TestCalculateLineZeroQuantity(t *testing.T) {
	pb := DefaultPriceBook()

	line, err := pb.CalculateLine(LineRequest{
		ProductClass:   ProductClassShirt,
		CategoryName:   "คอกลม",
		QuantityBySize: map[string]int{"M": 0},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, line.TotalQty)
	assert.True(t, line.TotalPrice.IsZero())
	assert.True(t, line.TotalCost.IsZero())
}

func TestCalculateLineNegativeQuantityRejected(t *testing.T) {
	pb := DefaultPriceBook()

	_, err := pb.CalculateLine(LineRequest{
		ProductClass:   ProductClassShirt,
		CategoryName:   "คอกลม",
		QuantityBySize: map[string]int{"M": -3},
	}, nil)
	assert.Error(t, err)
}

func TestCalculateLineOversizeValidation(t *testing.T) {
	pb := DefaultPriceBook()

	t.Run("collared category rejected", func(t *testing.T) {
		_, err := pb.CalculateLine(LineRequest{
			ProductClass:   ProductClassShirt,
			CategoryName:   "คอเต่า",
			QuantityBySize: map[string]int{"M": 10},
			IsOversize:     true,
		}, nil)
		require.Error(t, err)

		var ovErr *OversizeCategoryError
		require.ErrorAs(t, err, &ovErr)
		assert.Equal(t, "คอเต่า", ovErr.Category)
		assert.Contains(t, ovErr.Error(), "คอกลม")
	})

	t.Run("round neck accepted and slope forced", func(t *testing.T) {
		line, err := pb.CalculateLine(LineRequest{
			ProductClass:   ProductClassShirt,
			CategoryName:   "คอกลม",
			QuantityBySize: map[string]int{"M": 10},
			IsOversize:     true,
		}, nil)
		require.NoError(t, err)
		assert.Contains(t, line.AddOns, AddOnOversizeSlope)
	})
}

func TestCalculateLineSizingSurcharge(t *testing.T) {
	pb := DefaultPriceBook()

	t.Run("regular cut charges 4XL and up", func(t *testing.T) {
		line, err := pb.CalculateLine(LineRequest{
			ProductClass:   ProductClassShirt,
			CategoryName:   "คอกลม",
			QuantityBySize: map[string]int{"M": 5, "2XL": 3, "4XL": 2, "5XL": 1},
		}, nil)
		require.NoError(t, err)
		// Only the 4XL and 5XL units carry the premium.
		assert.True(t, line.SizingSurcharge.Equal(intDec(300)), "got %s", line.SizingSurcharge)
	})

	t.Run("oversize cut charges from 2XL", func(t *testing.T) {
		line, err := pb.CalculateLine(LineRequest{
			ProductClass:   ProductClassShirt,
			CategoryName:   "คอกลม",
			QuantityBySize: map[string]int{"M": 5, "2XL": 3, "3XL": 2},
			IsOversize:     true,
		}, nil)
		require.NoError(t, err)
		assert.True(t, line.SizingSurcharge.Equal(intDec(500)), "got %s", line.SizingSurcharge)
	})
}

func TestCalculateLineCost(t *testing.T) {
	pb := DefaultPriceBook()

	line, err := pb.CalculateLine(LineRequest{
		ProductClass:   ProductClassShirt,
		CategoryName:   "คอกลม",
		QuantityBySize: map[string]int{"M": 20},
		UnitCost:       strDec("95.50"),
	}, nil)
	require.NoError(t, err)

	assert.True(t, line.TotalCost.Equal(strDec("1910")), "got %s", line.TotalCost)
}
