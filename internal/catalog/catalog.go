// Package catalog holds the static, read-only Petoverse tables: archetypes,
// palettes, accessories, rewards, toys and galaxy nodes.
//
// Lookups come in two flavours. X(id) reports whether the id exists, and
// XOrDefault(id) falls back to the table's default entry instead of failing.
// List functions return copies so callers can never mutate the tables.
package catalog

import (
	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
)

// Default ids used when a lookup misses
const (
	DefaultArchetypeID      = "cosmic-cat"
	DefaultPrimaryColorID   = "orange"
	DefaultSecondaryColorID = "orange-light"
)

var archetypes = []petoverse.PetArchetype{
	{
		ID:          "cosmic-cat",
		Name:        "Cosmic Cat",
		Emoji:       "🐱",
		Description: "Playful and curious, loves to explore",
		Rarity:      petoverse.RarityCommon,
		BaseStats:   petoverse.BaseStats{Health: 85, Energy: 90, Intelligence: 75},
	},
	{
		ID:          "fire-dragon",
		Name:        "Fire Dragon",
		Emoji:       "🐲",
		Description: "Powerful and loyal, breathes cosmic fire",
		Rarity:      petoverse.RarityRare,
		BaseStats:   petoverse.BaseStats{Health: 95, Energy: 80, Intelligence: 85},
	},
	{
		ID:          "crystal-fox",
		Name:        "Crystal Fox",
		Emoji:       "🦊",
		Description: "Elegant and wise, channels crystal energy",
		Rarity:      petoverse.RarityEpic,
		BaseStats:   petoverse.BaseStats{Health: 80, Energy: 85, Intelligence: 95},
	},
	{
		ID:          "shadow-wolf",
		Name:        "Shadow Wolf",
		Emoji:       "🐺",
		Description: "Mysterious and strong, master of shadows",
		Rarity:      petoverse.RarityLegendary,
		BaseStats:   petoverse.BaseStats{Health: 90, Energy: 88, Intelligence: 80},
	},
}

var palettes = []petoverse.Palette{
	{ID: "orange", Name: "Orange"},
	{ID: "orange-light", Name: "Light Orange"},
	{ID: "success", Name: "Green"},
	{ID: "info", Name: "Blue"},
	{ID: "purple", Name: "Purple"},
	{ID: "red", Name: "Red"},
}

var accessories = []petoverse.Accessory{
	{ID: "crown", Name: "Crown", Emoji: "👑"},
	{ID: "glasses", Name: "Glasses", Emoji: "🕶️"},
	{ID: "bow", Name: "Bow", Emoji: "🎀"},
	{ID: "necklace", Name: "Necklace", Emoji: "📿"},
}

var rewards = []petoverse.Reward{
	{
		ID:          "1",
		Type:        petoverse.RewardXP,
		Title:       "Daily XP Boost",
		Description: "500 XP points for your pet",
		Value:       500,
		Rarity:      petoverse.RarityCommon,
	},
	{
		ID:          "2",
		Type:        petoverse.RewardGems,
		Title:       "Cosmic Gems",
		Description: "Rare gems from distant galaxies",
		Value:       50,
		Rarity:      petoverse.RarityRare,
	},
	{
		ID:          "3",
		Type:        petoverse.RewardAccessory,
		Title:       "Stellar Crown",
		Description: "Legendary crown accessory",
		Value:       1,
		Rarity:      petoverse.RarityLegendary,
		Claimed:     true,
	},
	{
		ID:          "4",
		Type:        petoverse.RewardEnergy,
		Title:       "Energy Crystals",
		Description: "Restore your pet's energy",
		Value:       100,
		Rarity:      petoverse.RarityUncommon,
	},
	{
		ID:          "5",
		Type:        petoverse.RewardSpecial,
		Title:       "Mystery Box",
		Description: "Contains unknown treasures",
		Value:       1,
		Rarity:      petoverse.RarityMythic,
	},
}

var toys = []petoverse.Toy{
	{ID: "ball", Name: "Cosmic Ball", Emoji: "⚽"},
	{ID: "star", Name: "Star Wand", Emoji: "⭐"},
	{ID: "crystal", Name: "Energy Crystal", Emoji: "💎"},
	{ID: "music", Name: "Music Box", Emoji: "🎵"},
}

var nodes = []petoverse.GalaxyNode{
	{ID: "1", Name: "Cosmic Playground", Type: petoverse.NodePlayground, X: 0.3, Y: 0.25, Pets: 12, Distance: "0.5 ly"},
	{ID: "2", Name: "Stellar Academy", Type: petoverse.NodeTraining, X: 0.7, Y: 0.2, Pets: 8, Distance: "1.2 ly"},
	{ID: "3", Name: "Nebula Gardens", Type: petoverse.NodeSocial, X: 0.2, Y: 0.45, Pets: 25, Distance: "2.1 ly"},
	{ID: "4", Name: "Quantum Arena", Type: petoverse.NodeBattle, X: 0.8, Y: 0.5, Pets: 15, Distance: "3.7 ly"},
	{ID: "5", Name: "Crystal Caves", Type: petoverse.NodeTreasure, X: 0.5, Y: 0.65, Pets: 6, Distance: "5.2 ly"},
}

// find is the shared linear lookup; every table has fewer than ten rows
func find[T any](items []T, id string, idOf func(T) string) (T, bool) {
	for _, it := range items {
		if idOf(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Archetypes returns every selectable archetype in display order
func Archetypes() []petoverse.PetArchetype {
	return append([]petoverse.PetArchetype(nil), archetypes...)
}

// Archetype looks up an archetype by id
func Archetype(id string) (petoverse.PetArchetype, bool) {
	return find(archetypes, id, func(a petoverse.PetArchetype) string { return a.ID })
}

// ArchetypeOrDefault looks up an archetype, falling back to the cosmic cat
func ArchetypeOrDefault(id string) petoverse.PetArchetype {
	if a, ok := Archetype(id); ok {
		return a
	}
	a, _ := Archetype(DefaultArchetypeID)
	return a
}

// Palettes returns every colour palette
func Palettes() []petoverse.Palette {
	return append([]petoverse.Palette(nil), palettes...)
}

// Palette looks up a palette by id
func Palette(id string) (petoverse.Palette, bool) {
	return find(palettes, id, func(p petoverse.Palette) string { return p.ID })
}

// PaletteOrDefault falls back to the default primary palette
func PaletteOrDefault(id string) petoverse.Palette {
	if p, ok := Palette(id); ok {
		return p
	}
	p, _ := Palette(DefaultPrimaryColorID)
	return p
}

// Accessories returns every wearable accessory
func Accessories() []petoverse.Accessory {
	return append([]petoverse.Accessory(nil), accessories...)
}

// Accessory looks up an accessory by id
func Accessory(id string) (petoverse.Accessory, bool) {
	return find(accessories, id, func(a petoverse.Accessory) string { return a.ID })
}

// Rewards returns the reward table with its initial claimed flags
func Rewards() []petoverse.Reward {
	return append([]petoverse.Reward(nil), rewards...)
}

// Reward looks up a reward by id
func Reward(id string) (petoverse.Reward, bool) {
	return find(rewards, id, func(r petoverse.Reward) string { return r.ID })
}

// RewardOrDefault falls back to the first reward
func RewardOrDefault(id string) petoverse.Reward {
	if r, ok := Reward(id); ok {
		return r
	}
	return rewards[0]
}

// Toys returns every playground toy
func Toys() []petoverse.Toy {
	return append([]petoverse.Toy(nil), toys...)
}

// Toy looks up a toy by id
func Toy(id string) (petoverse.Toy, bool) {
	return find(toys, id, func(t petoverse.Toy) string { return t.ID })
}

// ToyOrDefault falls back to the first toy
func ToyOrDefault(id string) petoverse.Toy {
	if t, ok := Toy(id); ok {
		return t
	}
	return toys[0]
}

// Nodes returns every galaxy node
func Nodes() []petoverse.GalaxyNode {
	return append([]petoverse.GalaxyNode(nil), nodes...)
}

// Node looks up a galaxy node by id
func Node(id string) (petoverse.GalaxyNode, bool) {
	return find(nodes, id, func(n petoverse.GalaxyNode) string { return n.ID })
}

// NodeOrDefault falls back to the first node
func NodeOrDefault(id string) petoverse.GalaxyNode {
	if n, ok := Node(id); ok {
		return n
	}
	return nodes[0]
}

// DefaultCosmetics is the configuration a new draft starts with
func DefaultCosmetics() petoverse.CosmeticConfig {
	return petoverse.CosmeticConfig{
		PrimaryColor:   DefaultPrimaryColorID,
		SecondaryColor: DefaultSecondaryColorID,
		Size:           petoverse.DefaultSize,
		Accessories:    []string{},
	}
}
