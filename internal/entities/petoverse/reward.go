package petoverse

// RewardType categorises rewards
type RewardType string

// Reward types
const (
	RewardXP        RewardType = "xp"
	RewardGems      RewardType = "gems"
	RewardAccessory RewardType = "accessory"
	RewardEnergy    RewardType = "energy"
	RewardSpecial   RewardType = "special"
)

// Reward is a claimable reward. Claimed is per session.
type Reward struct {
	ID          string     `json:"id"`
	Type        RewardType `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Value       int32      `json:"value"`
	Rarity      Rarity     `json:"rarity"`
	Claimed     bool       `json:"claimed"`
}
