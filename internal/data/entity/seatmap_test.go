package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSeatLayoutDeterministic(t *testing.T) {
	first := BuildSeatLayout(40, BusLayout2x2)
	second := BuildSeatLayout(40, BusLayout2x2)
	assert.Equal(t, first, second)
}

func TestBuildSeatLayout2x2(t *testing.T) {
	seats := BuildSeatLayout(40, BusLayout2x2)
	require.Len(t, seats, 40)

	assert.Equal(t, "A1", seats[0].Number)
	assert.Equal(t, 1, seats[0].Row)
	assert.Equal(t, 1, seats[0].Column)

	assert.Equal(t, "A4", seats[3].Number)
	assert.Equal(t, "B1", seats[4].Number)
	assert.Equal(t, 2, seats[4].Row)

	// 40 seats at 4 per row is 10 full rows, J is the 10th letter.
	assert.Equal(t, "J4", seats[39].Number)
}

func TestBuildSeatLayoutShortLastRow(t *testing.T) {
	seats := BuildSeatLayout(10, BusLayout2x2)
	require.Len(t, seats, 10)

	last := seats[9]
	assert.Equal(t, "C2", last.Number)
	assert.Equal(t, 3, last.Row)
	assert.Equal(t, 2, last.Column)
}

func TestBuildSeatLayoutPerRowWidths(t *testing.T) {
	tests := []struct {
		layout BusLayout
		perRow int
	}{
		{BusLayout2x1, 3},
		{BusLayout2x2, 4},
		{BusLayout2x3, 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.layout), func(t *testing.T) {
			seats := BuildSeatLayout(2*tt.perRow, tt.layout)
			require.Len(t, seats, 2*tt.perRow)
			assert.Equal(t, 1, seats[tt.perRow-1].Row)
			assert.Equal(t, 2, seats[tt.perRow].Row)
		})
	}
}

func TestBuildSeatLayoutEmpty(t *testing.T) {
	assert.Nil(t, BuildSeatLayout(0, BusLayout2x2))
	assert.Nil(t, BuildSeatLayout(-1, BusLayout2x2))
}

func TestRowLabelPastZ(t *testing.T) {
	// 27 rows of 3 seats needs a two-letter label for the last row.
	seats := BuildSeatLayout(27*3, BusLayout2x1)
	assert.Equal(t, "AA1", seats[26*3].Number)
}

func TestLayoutContains(t *testing.T) {
	assert.True(t, LayoutContains(40, BusLayout2x2, "A1"))
	assert.True(t, LayoutContains(40, BusLayout2x2, "J4"))
	assert.False(t, LayoutContains(40, BusLayout2x2, "K1"))
	assert.False(t, LayoutContains(40, BusLayout2x2, "A5"))
	assert.False(t, LayoutContains(40, BusLayout2x2, ""))
}
