package petoverse

import "strings"

// Rarity is an ordinal classification used for display only
type Rarity string

// Rarity tiers, lowest first. Mythic only appears on rewards.
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
)

var rarityRank = map[Rarity]int{
	RarityCommon:    1,
	RarityUncommon:  2,
	RarityRare:      3,
	RarityEpic:      4,
	RarityLegendary: 5,
	RarityMythic:    6,
}

// Rank orders rarities; unknown values rank 0
func (r Rarity) Rank() int {
	return rarityRank[r]
}

// Less reports whether r is a lower tier than other
func (r Rarity) Less(other Rarity) bool {
	return r.Rank() < other.Rank()
}

// Display returns the title-cased label, "Rare" for RarityRare
func (r Rarity) Display() string {
	if r == "" {
		return ""
	}
	s := string(r)
	return strings.ToUpper(s[:1]) + s[1:]
}
