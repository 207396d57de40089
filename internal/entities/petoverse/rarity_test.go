package petoverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
)

func TestRarityOrdering(t *testing.T) {
	ordered := []petoverse.Rarity{
		petoverse.RarityCommon,
		petoverse.RarityUncommon,
		petoverse.RarityRare,
		petoverse.RarityEpic,
		petoverse.RarityLegendary,
		petoverse.RarityMythic,
	}

	for i := 1; i < len(ordered); i++ {
		assert.True(t, ordered[i-1].Less(ordered[i]), "%s < %s", ordered[i-1], ordered[i])
	}
	assert.Equal(t, 0, petoverse.Rarity("shiny").Rank())
}

func TestRarityDisplay(t *testing.T) {
	assert.Equal(t, "Rare", petoverse.RarityRare.Display())
	assert.Equal(t, "Legendary", petoverse.RarityLegendary.Display())
	assert.Equal(t, "", petoverse.Rarity("").Display())
}

func TestCosmeticConfigClone(t *testing.T) {
	orig := petoverse.CosmeticConfig{Accessories: []string{"crown"}}
	clone := orig.Clone()
	clone.Accessories[0] = "bow"

	assert.Equal(t, "crown", orig.Accessories[0])
	assert.True(t, orig.HasAccessory("crown"))
	assert.False(t, orig.HasAccessory("bow"))
}
