// Package draft accumulates a pet's creation choices. A draft is a value:
// every mutation returns a new DraftPet and leaves the argument alone.
package draft

import (
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/petoverse-api/internal/catalog"
	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
)

// New returns an empty draft with default cosmetics and no archetype
func New() petoverse.DraftPet {
	return petoverse.DraftPet{Cosmetics: catalog.DefaultCosmetics()}
}

// SelectArchetype replaces the selected archetype. Ids missing from the
// catalog are ignored.
func SelectArchetype(d petoverse.DraftPet, archetypeID string) petoverse.DraftPet {
	out := clone(d)
	if _, ok := catalog.Archetype(archetypeID); ok {
		out.ArchetypeID = archetypeID
	}
	return out
}

// SetName stores name truncated to MaxNameLength characters
func SetName(d petoverse.DraftPet, name string) petoverse.DraftPet {
	out := clone(d)
	out.Name = truncate(name, petoverse.MaxNameLength)
	return out
}

// SetCosmetics replaces the cosmetic configuration
func SetCosmetics(d petoverse.DraftPet, c petoverse.CosmeticConfig) petoverse.DraftPet {
	out := clone(d)
	out.Cosmetics = c.Clone()
	return out
}

// IsComplete reports whether the draft satisfies the gate of a wizard step.
// Step 1 needs an archetype, step 2 a non-blank name. The confirmation step
// is complete once both earlier gates hold.
func IsComplete(d petoverse.DraftPet, step int) bool {
	switch step {
	case petoverse.StepSelectType:
		return d.ArchetypeID != ""
	case petoverse.StepName:
		return HasName(d)
	case petoverse.StepConfirm:
		return d.ArchetypeID != "" && HasName(d)
	default:
		return false
	}
}

// HasName reports whether the trimmed name is non-empty
func HasName(d petoverse.DraftPet) bool {
	return strings.TrimSpace(d.Name) != ""
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}

func clone(d petoverse.DraftPet) petoverse.DraftPet {
	out := d
	out.Cosmetics = d.Cosmetics.Clone()
	return out
}
