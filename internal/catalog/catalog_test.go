package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/petoverse-api/internal/catalog"
	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
)

func TestArchetypeLookup(t *testing.T) {
	a, ok := catalog.Archetype("fire-dragon")
	require.True(t, ok)
	assert.Equal(t, "Fire Dragon", a.Name)
	assert.Equal(t, petoverse.RarityRare, a.Rarity)
	assert.Equal(t, int32(95), a.BaseStats.Health)

	_, ok = catalog.Archetype("unicorn")
	assert.False(t, ok)
}

func TestArchetypeOrDefault(t *testing.T) {
	assert.Equal(t, "crystal-fox", catalog.ArchetypeOrDefault("crystal-fox").ID)
	assert.Equal(t, catalog.DefaultArchetypeID, catalog.ArchetypeOrDefault("").ID)
	assert.Equal(t, catalog.DefaultArchetypeID, catalog.ArchetypeOrDefault("nope").ID)
}

func TestListsReturnCopies(t *testing.T) {
	list := catalog.Archetypes()
	require.Len(t, list, 4)
	list[0].Name = "Mutated"

	a, _ := catalog.Archetype(list[0].ID)
	assert.Equal(t, "Cosmic Cat", a.Name)

	rewards := catalog.Rewards()
	rewards[0].Claimed = true
	r, _ := catalog.Reward("1")
	assert.False(t, r.Claimed)
}

func TestRewardsTable(t *testing.T) {
	rewards := catalog.Rewards()
	require.Len(t, rewards, 5)

	claimed := 0
	for _, r := range rewards {
		if r.Claimed {
			claimed++
			assert.Equal(t, "3", r.ID)
		}
	}
	assert.Equal(t, 1, claimed)

	assert.Equal(t, "1", catalog.RewardOrDefault("99").ID)
	assert.Equal(t, petoverse.RarityMythic, catalog.RewardOrDefault("5").Rarity)
}

func TestOtherTables(t *testing.T) {
	assert.Len(t, catalog.Palettes(), 6)
	assert.Len(t, catalog.Accessories(), 4)
	assert.Len(t, catalog.Toys(), 4)
	assert.Len(t, catalog.Nodes(), 5)

	assert.Equal(t, "orange", catalog.PaletteOrDefault("teal").ID)
	assert.Equal(t, "ball", catalog.ToyOrDefault("kite").ID)
	assert.Equal(t, "Cosmic Playground", catalog.NodeOrDefault("").Name)

	_, ok := catalog.Accessory("crown")
	assert.True(t, ok)
	_, ok = catalog.Accessory("cape")
	assert.False(t, ok)
}

func TestDefaultCosmetics(t *testing.T) {
	c := catalog.DefaultCosmetics()
	assert.Equal(t, "orange", c.PrimaryColor)
	assert.Equal(t, "orange-light", c.SecondaryColor)
	assert.Equal(t, 1.0, c.Size)
	assert.Empty(t, c.Accessories)
	assert.NotNil(t, c.Accessories)
}

func TestLearningLog(t *testing.T) {
	log := catalog.LearningLog("2024-01-15")
	require.Len(t, log, 3)
	for _, e := range log {
		assert.Equal(t, "2024-01-15", e.Date)
	}
}
