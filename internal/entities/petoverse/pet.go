package petoverse

// PetStats tracks a saved pet's growth
type PetStats struct {
	Level         int32 `json:"level"`
	Experience    int32 `json:"experience"`
	MaxExperience int32 `json:"max_experience"`
	Intelligence  int32 `json:"intelligence"`
	Creativity    int32 `json:"creativity"`
	Loyalty       int32 `json:"loyalty"`
	Energy        int32 `json:"energy"`
	Happiness     int32 `json:"happiness"`
}

// MaxStat caps every percentage stat
const MaxStat = 100

// Pet is a finalized pet owned by a player
type Pet struct {
	ID           string         `json:"id"`
	PlayerID     string         `json:"player_id"`
	Name         string         `json:"name"`
	ArchetypeID  string         `json:"archetype_id"`
	Cosmetics    CosmeticConfig `json:"cosmetics"`
	Stats        PetStats       `json:"stats"`
	Traits       []string       `json:"traits"`
	Commands     []string       `json:"commands"`
	TrainedWords []string       `json:"trained_words"`
	CreatedAt    int64          `json:"created_at"`
}

// LearningEntry is one line of a pet's learning log
type LearningEntry struct {
	Date     string `json:"date"`
	Activity string `json:"activity"`
	Progress string `json:"progress"`
}
