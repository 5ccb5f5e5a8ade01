package tiresize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiameterOf_Reference(t *testing.T) {
	// 205 x 55% x 2 = 225.5, 16 x 25.4 = 406.4
	assert.InDelta(t, 631.9, DiameterOf(New(205, 55, 16)), 1e-9)
	assert.InDelta(t, 621.4, DiameterOf(New(215, 50, 16)), 1e-9)
	assert.InDelta(t, 800.0, DiameterOf(New(201, 60, 22)), 1e-9)
}

func TestDiameterOf_IgnoresIndexes(t *testing.T) {
	plain := New(205, 55, 16)
	rated := plain.WithLoadIndex(91).WithSpeedIndex("V")
	assert.Equal(t, DiameterOf(plain), DiameterOf(rated))
}

func TestDiameterOf_MonotonicInEachDimension(t *testing.T) {
	for w := MinWidth; w < MaxWidth; w++ {
		for p := MinProfile; p <= MaxProfile; p += 10 {
			for d := MinDiameter; d <= MaxDiameter; d += 4 {
				require.Less(t, DiameterOf(New(w, p, d)), DiameterOf(New(w+1, p, d)), "width %d/%d R%d", w, p, d)
			}
		}
	}
	for p := MinProfile; p < MaxProfile; p++ {
		require.Less(t, DiameterOf(New(205, p, 16)), DiameterOf(New(205, p+1, 16)), "profile %d", p)
	}
	for d := MinDiameter; d < MaxDiameter; d++ {
		require.Less(t, DiameterOf(New(205, 55, d)), DiameterOf(New(205, 55, d+1)), "rim %d", d)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		in     Size
		valid  bool
		nerrs  int
		substr []string
	}{
		{name: "reference", in: New(205, 55, 16), valid: true},
		{name: "lower bounds", in: New(MinWidth, MinProfile, MinDiameter), valid: true},
		{name: "upper bounds", in: New(MaxWidth, MaxProfile, MaxDiameter), valid: true},
		{name: "narrow", in: New(124, 55, 16), nerrs: 1, substr: []string{"width"}},
		{name: "tall profile", in: New(205, 90, 16), nerrs: 1, substr: []string{"profile"}},
		{name: "big rim", in: New(205, 55, 25), nerrs: 1, substr: []string{"rim diameter"}},
		{name: "all wrong", in: New(0, 0, 0), nerrs: 3, substr: []string{"width", "profile", "rim diameter"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := Validate(c.in)
			assert.Equal(t, c.valid, v.IsValid)
			require.Len(t, v.Errors, c.nerrs)
			for i, s := range c.substr {
				assert.Contains(t, v.Errors[i], s)
			}
		})
	}
}

func TestValidate_ValidHasEmptyNonNilErrors(t *testing.T) {
	v := Validate(New(205, 55, 16))
	assert.True(t, v.IsValid)
	assert.NotNil(t, v.Errors)
	assert.Empty(t, v.Errors)
}

func TestIsManufacturedWidth(t *testing.T) {
	for _, w := range []int{125, 135, 185, 205, 215, 355, 201, 187} {
		assert.True(t, IsManufacturedWidth(w), "width %d", w)
	}
	for _, w := range []int{130, 200, 210, 350} {
		assert.False(t, IsManufacturedWidth(w), "width %d", w)
	}
}

func TestGeometry(t *testing.T) {
	s := New(205, 55, 16)
	assert.InDelta(t, 112.75, SidewallMm(s), 1e-9)
	assert.InDelta(t, 1985.17, CircumferenceMm(s), 0.01)
	assert.InDelta(t, 503.73, RevsPerKm(s), 0.01)
	assert.Zero(t, RevsPerKm(Size{}))
}

func TestSize_Equal(t *testing.T) {
	a := New(205, 55, 16).WithLoadIndex(91)
	b := New(205, 55, 16).WithLoadIndex(91)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(New(205, 55, 16)))
	assert.False(t, a.Equal(b.WithSpeedIndex("H")))
	assert.False(t, a.Equal(New(205, 55, 16).WithLoadIndex(94)))
}

func TestLoadCapacityKg(t *testing.T) {
	kg, ok := LoadCapacityKg(91)
	require.True(t, ok)
	assert.Equal(t, 615, kg)

	kg, ok = LoadCapacityKg(MinLoadIndex)
	require.True(t, ok)
	assert.Equal(t, 250, kg)

	kg, ok = LoadCapacityKg(MaxLoadIndex)
	require.True(t, ok)
	assert.Equal(t, 1700, kg)

	_, ok = LoadCapacityKg(59)
	assert.False(t, ok)
	_, ok = LoadCapacityKg(127)
	assert.False(t, ok)
}
