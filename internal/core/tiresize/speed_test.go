package tiresize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeedIndex_Order(t *testing.T) {
	order := []SpeedIndex{"L", "M", "N", "P", "Q", "R", "S", "T", "U", "H", "V", "W", "Y", "Z"}
	for i := 1; i < len(order); i++ {
		assert.Less(t, order[i-1].Rank(), order[i].Rank(), "%s < %s", order[i-1], order[i])
	}
	assert.Less(t, SpeedIndex("A8").Rank(), SpeedIndex("B").Rank())
	assert.Zero(t, SpeedIndex("").Rank())
	assert.Zero(t, SpeedIndex("I").Rank())
}

func TestSpeedIndex_AtLeast(t *testing.T) {
	assert.True(t, SpeedIndex("V").AtLeast("H"))
	assert.True(t, SpeedIndex("H").AtLeast("H"))
	assert.False(t, SpeedIndex("T").AtLeast("H"))
	assert.True(t, SpeedIndex("T").AtLeast(""))
	assert.True(t, SpeedIndex("").AtLeast(""))
	assert.False(t, SpeedIndex("").AtLeast("T"))
	assert.False(t, SpeedIndex("X").AtLeast("T"))
}

func TestParseSpeedIndex(t *testing.T) {
	si, ok := ParseSpeedIndex(" v ")
	require.True(t, ok)
	assert.Equal(t, SpeedIndex("V"), si)
	assert.True(t, si.Known())

	_, ok = ParseSpeedIndex("O")
	assert.False(t, ok)
}

func TestSpeedIndex_MaxSpeed(t *testing.T) {
	kmh, ok := SpeedIndex("H").MaxSpeedKmh()
	require.True(t, ok)
	assert.Equal(t, 210, kmh)

	_, ok = SpeedIndex("").MaxSpeedKmh()
	assert.False(t, ok)
}

func TestSpeedRatings_Table(t *testing.T) {
	tbl := SpeedRatings()
	require.Len(t, tbl, 30)
	assert.Equal(t, SpeedIndex("A1"), tbl[0].Symbol)
	assert.Equal(t, SpeedIndex("Z"), tbl[len(tbl)-1].Symbol)
	for i, r := range tbl {
		assert.Equal(t, i+1, r.Rank)
		assert.Positive(t, r.MaxSpeedKmh)
	}
}
