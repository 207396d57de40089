package petoverse

// Creation wizard steps
const (
	StepSelectType = 1
	StepName       = 2
	StepConfirm    = 3
	TotalSteps     = 3
)

// MaxNameLength is the longest pet name accepted, in characters
const MaxNameLength = 20

// DraftPet is the in-progress pet assembled across the creation wizard
type DraftPet struct {
	ArchetypeID string         `json:"archetype_id,omitempty"`
	Name        string         `json:"name,omitempty"`
	Cosmetics   CosmeticConfig `json:"cosmetics"`
}

// CreationDraft is a player's stored wizard session
type CreationDraft struct {
	ID        string   `json:"id"`
	PlayerID  string   `json:"player_id"`
	Step      int      `json:"step"`
	Pet       DraftPet `json:"pet"`
	CreatedAt int64    `json:"created_at"`
	UpdatedAt int64    `json:"updated_at"`
	ExpiresAt int64    `json:"expires_at,omitempty"`
}
