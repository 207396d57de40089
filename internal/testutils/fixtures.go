package testutils

import (
	"time"

	"github.com/KirkDiggler/petoverse-api/internal/catalog"
	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
)

// Draft progress stages for testing
const (
	StageTypeSelected = "type_selected"
	StageNamed        = "named"

	// TestPetName is the default pet name for test fixtures
	TestPetName = "Blaze"
)

// CreateTestPet creates a saved pet with sensible defaults
func CreateTestPet(id, playerID string) *petoverse.Pet {
	return &petoverse.Pet{
		ID:          id,
		PlayerID:    playerID,
		Name:        TestPetName,
		ArchetypeID: "fire-dragon",
		Cosmetics:   catalog.DefaultCosmetics(),
		Stats: petoverse.PetStats{
			Level:         1,
			MaxExperience: 100,
			Intelligence:  85,
			Creativity:    30,
			Loyalty:       40,
			Energy:        80,
			Happiness:     85,
		},
		Traits:       catalog.DefaultTraits(),
		Commands:     catalog.DefaultCommands(),
		TrainedWords: []string{},
		CreatedAt:    time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC).Unix(),
	}
}

// CreateTestDraft creates a stored creation draft at step 1
func CreateTestDraft(id, playerID string) *petoverse.CreationDraft {
	now := time.Now()
	return &petoverse.CreationDraft{
		ID:        id,
		PlayerID:  playerID,
		Step:      petoverse.StepSelectType,
		Pet:       petoverse.DraftPet{Cosmetics: catalog.DefaultCosmetics()},
		CreatedAt: now.Unix(),
		UpdatedAt: now.Unix(),
		ExpiresAt: now.Add(24 * time.Hour).Unix(),
	}
}

// CreateTestDraftAtStage creates a draft that has passed the given stage
func CreateTestDraftAtStage(id, playerID, stage string) *petoverse.CreationDraft {
	d := CreateTestDraft(id, playerID)

	switch stage {
	case StageTypeSelected:
		d.Pet.ArchetypeID = "fire-dragon"
		d.Step = petoverse.StepName
	case StageNamed:
		d.Pet.ArchetypeID = "fire-dragon"
		d.Pet.Name = TestPetName
		d.Step = petoverse.StepConfirm
	}

	return d
}
