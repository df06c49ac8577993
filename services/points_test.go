package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForPoints(t *testing.T) {
	tests := []struct {
		total int64
		want  int
	}{
		{0, 1},
		{1, 1},
		{199, 1},
		{200, 2},
		{399, 2},
		{400, 3},
		{2850, 15},
		// Negative totals use true floor semantics, not truncation.
		{-1, 0},
		{-200, 0},
		{-201, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForPoints(tt.total), "total=%d", tt.total)
	}
}

// The level formula is a pure function of the total: applying and reverting
// the same delta always lands back on the starting level.
func TestLevelRoundTrip(t *testing.T) {
	for _, total := range []int64{0, 150, 200, 1234, 99999} {
		for _, delta := range []int64{1, 200, 777} {
			before := LevelForPoints(total)
			after := LevelForPoints(total + delta - delta)
			assert.Equal(t, before, after)
		}
	}
}
