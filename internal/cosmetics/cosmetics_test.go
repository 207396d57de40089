package cosmetics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/petoverse-api/internal/catalog"
	"github.com/KirkDiggler/petoverse-api/internal/cosmetics"
	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
)

func TestSetColors(t *testing.T) {
	base := catalog.DefaultCosmetics()

	c := cosmetics.SetPrimaryColor(base, "purple")
	assert.Equal(t, "purple", c.PrimaryColor)
	assert.Equal(t, "orange", base.PrimaryColor, "input must not change")

	c = cosmetics.SetSecondaryColor(c, "info")
	assert.Equal(t, "info", c.SecondaryColor)

	c = cosmetics.SetPrimaryColor(c, "#ff00ff")
	assert.Equal(t, "purple", c.PrimaryColor, "unknown palette ignored")
}

func TestSetSizeClamps(t *testing.T) {
	testCases := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "below range", in: 0.1, want: 0.5},
		{name: "far below", in: -10, want: 0.5},
		{name: "above range", in: 2.7, want: 1.5},
		{name: "lower bound", in: 0.5, want: 0.5},
		{name: "upper bound", in: 1.5, want: 1.5},
		{name: "snaps down", in: 1.04, want: 1.0},
		{name: "snaps up", in: 1.26, want: 1.3},
		{name: "nan", in: math.NaN(), want: 1.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := cosmetics.SetSize(catalog.DefaultCosmetics(), tc.in)
			assert.InDelta(t, tc.want, c.Size, 1e-9)
		})
	}
}

func TestToggleAccessoryIsInvolution(t *testing.T) {
	starts := [][]string{
		{},
		{"crown"},
		{"glasses", "bow"},
		{"crown", "glasses", "bow", "necklace"},
	}

	for _, start := range starts {
		for _, acc := range catalog.Accessories() {
			base := petoverse.CosmeticConfig{PrimaryColor: "orange", SecondaryColor: "orange-light", Size: 1, Accessories: start}
			twice := cosmetics.ToggleAccessory(cosmetics.ToggleAccessory(base, acc.ID), acc.ID)
			assert.ElementsMatch(t, start, twice.Accessories, "toggle %s on %v", acc.ID, start)
		}
	}
}

func TestToggleAccessoryOrderAndUnknown(t *testing.T) {
	c := catalog.DefaultCosmetics()
	c = cosmetics.ToggleAccessory(c, "bow")
	c = cosmetics.ToggleAccessory(c, "crown")
	assert.Equal(t, []string{"bow", "crown"}, c.Accessories)

	c2 := cosmetics.ToggleAccessory(c, "jetpack")
	assert.Equal(t, c.Accessories, c2.Accessories)

	c3 := cosmetics.ToggleAccessory(c, "bow")
	assert.Equal(t, []string{"crown"}, c3.Accessories)
	assert.Equal(t, []string{"bow", "crown"}, c.Accessories, "input must not change")
}

func TestSanitize(t *testing.T) {
	in := petoverse.CosmeticConfig{
		PrimaryColor:   "neon",
		SecondaryColor: "red",
		Size:           9,
		Accessories:    []string{"crown", "cape", "crown", "bow"},
	}

	out := cosmetics.Sanitize(in)
	assert.Equal(t, "orange", out.PrimaryColor)
	assert.Equal(t, "red", out.SecondaryColor)
	assert.Equal(t, 1.5, out.Size)
	assert.Equal(t, []string{"crown", "bow"}, out.Accessories)

	zero := cosmetics.Sanitize(petoverse.CosmeticConfig{})
	def := catalog.DefaultCosmetics()
	assert.Equal(t, def.PrimaryColor, zero.PrimaryColor)
	assert.Equal(t, def.SecondaryColor, zero.SecondaryColor)
	assert.Empty(t, zero.Accessories)
	assert.Equal(t, petoverse.MinSize, zero.Size)
}

func TestSanitizeClampsTinySizes(t *testing.T) {
	for _, size := range []float64{0, 0.01, 0.04, -3} {
		out := cosmetics.Sanitize(petoverse.CosmeticConfig{Size: size})
		assert.Equal(t, petoverse.MinSize, out.Size, "size %v", size)
	}
}
