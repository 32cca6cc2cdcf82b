package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyNeck(t *testing.T) {
	assert.Equal(t, NeckClassRoundV, ClassifyNeck("คอกลม"))
	assert.Equal(t, NeckClassRoundV, ClassifyNeck("คอวีตัด"))
	assert.Equal(t, NeckClassRoundV, ClassifyNeck("คอวีไขว้"))

	// The collar marker vetoes round/V even when a V token is present.
	assert.Equal(t, NeckClassCollar, ClassifyNeck("คอวีปก"))
	assert.Equal(t, NeckClassCollar, ClassifyNeck("คอปกคางหมู (มีลิ้น)"))
	assert.Equal(t, NeckClassCollar, ClassifyNeck("คอหยดน้ำ"))
}

func TestUnitPriceBands(t *testing.T) {
	pb := DefaultPriceBook()

	tests := []struct {
		name     string
		category string
		qty      int
		want     int64
	}{
		{"round first band low edge", "คอกลม", 10, 240},
		{"round first band high edge", "คอกลม", 30, 240},
		{"round second band low edge", "คอกลม", 31, 220},
		{"round second band high edge", "คอกลม", 50, 220},
		{"round third band", "คอกลม", 51, 190},
		{"round fourth band", "คอกลม", 300, 180},
		{"round open band", "คอกลม", 301, 170},
		{"round huge qty", "คอกลม", 5000, 170},
		{"collar first band", "คอปกคางหมู", 20, 300},
		{"collar boundary 30", "คอปกคางหมู", 30, 300},
		{"collar boundary 31", "คอปกคางหมู", 31, 260},
		{"collar 100", "คอปกคางหมู", 100, 240},
		{"collar 101", "คอปกคางหมู", 101, 220},
		{"collar open band", "คอปกคางหมู", 999, 200},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pb.UnitPrice(ProductClassShirt, tc.category, tc.qty)
			assert.True(t, got.Equal(intDec(tc.want)), "got %s want %d", got, tc.want)
		})
	}
}

func TestUnitPriceBelowMinimumUsesFirstBand(t *testing.T) {
	pb := DefaultPriceBook()

	for _, qty := range []int{1, 5, 9} {
		assert.True(t, pb.UnitPrice(ProductClassShirt, "คอกลม", qty).Equal(intDec(240)))
		assert.True(t, pb.UnitPrice(ProductClassShirt, "คอปกเชิ้ต", qty).Equal(intDec(300)))
	}
}

func TestUnitPriceFlatClasses(t *testing.T) {
	pb := DefaultPriceBook()

	// Pants classes ignore quantity banding entirely.
	for _, qty := range []int{1, 10, 500} {
		assert.True(t, pb.UnitPrice(ProductClassShorts, "", qty).Equal(intDec(210)))
		assert.True(t, pb.UnitPrice(ProductClassTrackPants, "", qty).Equal(intDec(280)))
	}
}
