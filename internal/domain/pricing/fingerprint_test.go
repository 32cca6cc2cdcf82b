package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintStableAcrossOrdering(t *testing.T) {
	a := LineIdentity{
		ProductName:    "เสื้อทีมวิ่ง",
		FabricType:     "Micro Smooth",
		CategoryName:   "คอกลม",
		SleeveType:     "แขนสั้น",
		QuantityBySize: map[string]int{"M": 10, "L": 5, "XL": 2},
		AddOns:         []AddOn{AddOnPocket, AddOnLongSleeve},
	}
	b := LineIdentity{
		ProductName:    "เสื้อทีมวิ่ง",
		FabricType:     "Micro Smooth",
		CategoryName:   "คอกลม",
		SleeveType:     "แขนสั้น",
		QuantityBySize: map[string]int{"XL": 2, "L": 5, "M": 10},
		AddOns:         []AddOn{AddOnLongSleeve, AddOnPocket},
	}

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintIgnoresZeroCountSizes(t *testing.T) {
	a := LineIdentity{CategoryName: "คอกลม", QuantityBySize: map[string]int{"M": 10}}
	b := LineIdentity{CategoryName: "คอกลม", QuantityBySize: map[string]int{"M": 10, "S": 0}}

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintNormalizesCategoryName(t *testing.T) {
	a := LineIdentity{CategoryName: "คอหยดน้ำ", QuantityBySize: map[string]int{"M": 1}}
	b := LineIdentity{CategoryName: "คอหยดนํ้า (บังคับไหล่สโลป)", QuantityBySize: map[string]int{"M": 1}}

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintDistinguishesContent(t *testing.T) {
	base := LineIdentity{
		CategoryName:   "คอกลม",
		QuantityBySize: map[string]int{"M": 10},
	}

	changedQty := base
	changedQty.QuantityBySize = map[string]int{"M": 11}
	assert.NotEqual(t, base.Fingerprint(), changedQty.Fingerprint())

	changedAddOns := base
	changedAddOns.AddOns = []AddOn{AddOnPocket}
	assert.NotEqual(t, base.Fingerprint(), changedAddOns.Fingerprint())

	oversize := base
	oversize.IsOversize = true
	assert.NotEqual(t, base.Fingerprint(), oversize.Fingerprint())
}
