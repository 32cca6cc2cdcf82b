package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateShipping(t *testing.T) {
	tests := []struct {
		qty  int
		want int64
	}{
		{0, 0},
		{9, 0},
		{10, 60},
		{15, 60},
		{16, 80},
		{20, 80},
		{30, 100},
		{40, 120},
		{50, 180},
		{70, 200},
		{100, 230},
		{101, 280},
		{150, 2730},
	}
	for _, tc := range tests {
		got := EstimateShipping(tc.qty)
		assert.True(t, got.Equal(intDec(tc.want)), "qty %d: got %s want %d", tc.qty, got, tc.want)
	}
}
