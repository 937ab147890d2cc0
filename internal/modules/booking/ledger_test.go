package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeEarnings(t *testing.T) {
	cases := []struct {
		name      string
		basePrice float64
		pct       float64
		earnings  float64
		fee       float64
	}{
		{"standard split", 500, 15, 425, 75},
		{"zero commission", 500, 0, 500, 0},
		{"full commission", 500, 100, 0, 500},
		{"rounds to cents", 333, 15, 283.05, 49.95},
		{"zero price", 0, 15, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			earnings, fee := ComputeEarnings(tc.basePrice, tc.pct)
			assert.InDelta(t, tc.earnings, earnings, 1e-9)
			assert.InDelta(t, tc.fee, fee, 1e-9)
			assert.InDelta(t, tc.basePrice, earnings+fee, 1e-9)
		})
	}
}
