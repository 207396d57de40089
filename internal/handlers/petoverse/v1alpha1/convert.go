package v1alpha1

import (
	apiv1alpha1 "github.com/KirkDiggler/petoverse-api/internal/api/petoverse/v1alpha1"
	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
)

func convertArchetypeToAPI(a petoverse.PetArchetype) apiv1alpha1.Archetype {
	return apiv1alpha1.Archetype{
		ID:           a.ID,
		Name:         a.Name,
		Emoji:        a.Emoji,
		Description:  a.Description,
		Rarity:       a.Rarity.Display(),
		Health:       a.BaseStats.Health,
		Energy:       a.BaseStats.Energy,
		Intelligence: a.BaseStats.Intelligence,
	}
}

func convertCosmeticsToAPI(c petoverse.CosmeticConfig) apiv1alpha1.Cosmetics {
	accessories := c.Accessories
	if accessories == nil {
		accessories = []string{}
	}
	return apiv1alpha1.Cosmetics{
		PrimaryColor:   c.PrimaryColor,
		SecondaryColor: c.SecondaryColor,
		Size:           c.Size,
		Accessories:    accessories,
	}
}

func convertDraftToAPI(d *petoverse.CreationDraft) apiv1alpha1.Draft {
	if d == nil {
		return apiv1alpha1.Draft{}
	}
	return apiv1alpha1.Draft{
		ID:          d.ID,
		PlayerID:    d.PlayerID,
		Step:        int32(d.Step),
		TotalSteps:  petoverse.TotalSteps,
		ArchetypeID: d.Pet.ArchetypeID,
		Name:        d.Pet.Name,
		Cosmetics:   convertCosmeticsToAPI(d.Pet.Cosmetics),
		ExpiresAt:   d.ExpiresAt,
	}
}

func convertPetToAPI(p *petoverse.Pet) apiv1alpha1.Pet {
	if p == nil {
		return apiv1alpha1.Pet{}
	}
	return apiv1alpha1.Pet{
		ID:          p.ID,
		PlayerID:    p.PlayerID,
		Name:        p.Name,
		ArchetypeID: p.ArchetypeID,
		Cosmetics:   convertCosmeticsToAPI(p.Cosmetics),
		Stats: apiv1alpha1.PetStats{
			Level:         p.Stats.Level,
			Experience:    p.Stats.Experience,
			MaxExperience: p.Stats.MaxExperience,
			Intelligence:  p.Stats.Intelligence,
			Creativity:    p.Stats.Creativity,
			Loyalty:       p.Stats.Loyalty,
			Energy:        p.Stats.Energy,
			Happiness:     p.Stats.Happiness,
		},
		Traits:       p.Traits,
		Commands:     p.Commands,
		TrainedWords: p.TrainedWords,
		CreatedAt:    p.CreatedAt,
	}
}

func convertLearningLogToAPI(entries []petoverse.LearningEntry) []apiv1alpha1.LearningEntry {
	out := make([]apiv1alpha1.LearningEntry, len(entries))
	for i, e := range entries {
		out[i] = apiv1alpha1.LearningEntry{Date: e.Date, Activity: e.Activity, Progress: e.Progress}
	}
	return out
}

func convertRewardToAPI(r petoverse.Reward) apiv1alpha1.Reward {
	return apiv1alpha1.Reward{
		ID:          r.ID,
		Type:        string(r.Type),
		Title:       r.Title,
		Description: r.Description,
		Value:       r.Value,
		Rarity:      r.Rarity.Display(),
		Claimed:     r.Claimed,
	}
}

func convertMessageToAPI(m petoverse.ChatMessage) apiv1alpha1.ChatMessage {
	return apiv1alpha1.ChatMessage{ID: m.ID, Type: string(m.Type), Text: m.Text, SentAt: m.SentAt}
}

func convertMessagesToAPI(msgs []petoverse.ChatMessage) []apiv1alpha1.ChatMessage {
	out := make([]apiv1alpha1.ChatMessage, len(msgs))
	for i, m := range msgs {
		out[i] = convertMessageToAPI(m)
	}
	return out
}

func convertNodeToAPI(n petoverse.GalaxyNode) apiv1alpha1.GalaxyNode {
	return apiv1alpha1.GalaxyNode{
		ID:       n.ID,
		Name:     n.Name,
		Type:     string(n.Type),
		X:        n.X,
		Y:        n.Y,
		Pets:     n.Pets,
		Distance: n.Distance,
	}
}

func convertSessionToAPI(s *petoverse.Session) apiv1alpha1.Session {
	if s == nil {
		return apiv1alpha1.Session{}
	}
	return apiv1alpha1.Session{ID: s.ID, Email: s.Email, CreatedAt: s.CreatedAt, ExpiresAt: s.ExpiresAt}
}
