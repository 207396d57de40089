package creation

import "github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"

// ListArchetypesInput defines the request for listing archetypes
type ListArchetypesInput struct{}

// ListArchetypesOutput defines the response for listing archetypes
type ListArchetypesOutput struct {
	Archetypes []petoverse.PetArchetype
}

// CreateDraftInput defines the request for starting the creation wizard
type CreateDraftInput struct {
	PlayerID string
}

// CreateDraftOutput defines the response for starting the creation wizard
type CreateDraftOutput struct {
	Draft *petoverse.CreationDraft
}

// GetDraftInput defines the request for getting a draft
type GetDraftInput struct {
	PlayerID string
	DraftID  string
}

// GetDraftOutput defines the response for getting a draft
type GetDraftOutput struct {
	Draft *petoverse.CreationDraft
}

// GetPlayerDraftInput defines the request for resuming a player's live draft
type GetPlayerDraftInput struct {
	PlayerID string
}

// GetPlayerDraftOutput defines the response for resuming a player's live
// draft. Found is false when the player has nothing in progress.
type GetPlayerDraftOutput struct {
	Draft *petoverse.CreationDraft
	Found bool
}

// DeleteDraftInput defines the request for abandoning a draft
type DeleteDraftInput struct {
	PlayerID string
	DraftID  string
}

// DeleteDraftOutput defines the response for abandoning a draft
type DeleteDraftOutput struct{}

// SelectArchetypeInput defines the request for choosing a pet type
type SelectArchetypeInput struct {
	PlayerID    string
	DraftID     string
	ArchetypeID string
}

// SelectArchetypeOutput defines the response for choosing a pet type
type SelectArchetypeOutput struct {
	Draft *petoverse.CreationDraft
}

// UpdateNameInput defines the request for naming the pet
type UpdateNameInput struct {
	PlayerID string
	DraftID  string
	Name     string
}

// UpdateNameOutput defines the response for naming the pet
type UpdateNameOutput struct {
	Draft *petoverse.CreationDraft
}

// AdvanceStepInput defines the request for moving the wizard forward
type AdvanceStepInput struct {
	PlayerID string
	DraftID  string
}

// AdvanceStepOutput defines the response for moving the wizard forward.
// On completion the stored draft is gone and TransferToken carries it on to
// styling.
type AdvanceStepOutput struct {
	Draft         *petoverse.CreationDraft
	Advanced      bool
	Completed     bool
	TransferToken string
	NextScreen    string
}

// RetreatStepInput defines the request for moving the wizard back
type RetreatStepInput struct {
	PlayerID string
	DraftID  string
}

// RetreatStepOutput defines the response for moving the wizard back
type RetreatStepOutput struct {
	Draft  *petoverse.CreationDraft
	Exited bool
}

// GetSummaryInput defines the request for the confirmation view
type GetSummaryInput struct {
	PlayerID string
	DraftID  string
}

// Summary is what the confirmation step shows
type Summary struct {
	Name          string
	ArchetypeID   string
	ArchetypeName string
	Emoji         string
	Rarity        string
	Description   string
	BaseStats     petoverse.BaseStats
}

// GetSummaryOutput defines the response for the confirmation view
type GetSummaryOutput struct {
	Summary  Summary
	Progress float64
}
