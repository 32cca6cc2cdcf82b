package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"คอกลม", "คอกลม"},
		{"คอหยดนํ้า", "คอหยดน้ำ"},
		{"คอปกคางหมู (มีลิ้น)", "คอปกคางหมู"},
		{"คอปกคางหมู (มีลิ้น) (บังคับไหล่สโลป+40 บาท/ตัว)", "คอปกคางหมู"},
		{"  คอวี   ตัด  ", "คอวี ตัด"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizeName(tc.in))
	}
}

func TestMatchCategory(t *testing.T) {
	defs := []CategoryDef{
		{Name: "คอกลม"},
		{Name: "คอวี"},
		{Name: "คอวีตัด"},
		{Name: "คอปกคางหมู (มีลิ้น)"},
		{Name: "คอหยดน้ำ"},
	}

	t.Run("exact normalized match", func(t *testing.T) {
		got := MatchCategory(defs, "คอปกคางหมู (บังคับไหล่สโลป+40 บาท/ตัว)")
		assert.NotNil(t, got)
		assert.Equal(t, "คอปกคางหมู (มีลิ้น)", got.Name)
	})

	t.Run("alternate diacritic encoding still matches", func(t *testing.T) {
		got := MatchCategory(defs, "คอหยดนํ้า")
		assert.NotNil(t, got)
		assert.Equal(t, "คอหยดน้ำ", got.Name)
	})

	t.Run("longest contained candidate wins", func(t *testing.T) {
		// Both คอวี and คอวีตัด are contained; the longer one is more specific.
		got := MatchCategory(defs, "คอวีตัด ทรงพิเศษ")
		assert.NotNil(t, got)
		assert.Equal(t, "คอวีตัด", got.Name)
	})

	t.Run("fallback to candidate containing the request", func(t *testing.T) {
		got := MatchCategory(defs, "คางหมู")
		assert.NotNil(t, got)
		assert.Equal(t, "คอปกคางหมู (มีลิ้น)", got.Name)
	})

	t.Run("miss returns nil", func(t *testing.T) {
		assert.Nil(t, MatchCategory(defs, "คอเต่า"))
		assert.Nil(t, MatchCategory(defs, ""))
	})
}
