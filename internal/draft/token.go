package draft

import (
	"encoding/base64"
	"encoding/json"

	"github.com/KirkDiggler/petoverse-api/internal/catalog"
	"github.com/KirkDiggler/petoverse-api/internal/cosmetics"
	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
)

// Encode serialises a draft into a transfer token: base64url of its JSON form.
// Tokens carry the draft between screens without any shared store.
func Encode(d petoverse.DraftPet) string {
	data, err := json.Marshal(d)
	if err != nil {
		// DraftPet holds only strings, a float and a slice
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(data)
}

// Decode reads a transfer token. It never fails: an empty or malformed token
// yields the default draft, an unknown archetype becomes the default
// archetype, and cosmetics are sanitised. A token without a size gets the
// default size; an explicit size is clamped like any other.
func Decode(token string) petoverse.DraftPet {
	d := petoverse.DraftPet{Cosmetics: petoverse.CosmeticConfig{Size: petoverse.DefaultSize}}

	if token != "" {
		data, err := base64.RawURLEncoding.DecodeString(token)
		if err == nil {
			d = decodeJSON(data, d)
		}
	}

	d.ArchetypeID = catalog.ArchetypeOrDefault(d.ArchetypeID).ID
	d.Name = truncate(d.Name, petoverse.MaxNameLength)
	d.Cosmetics = cosmetics.Sanitize(d.Cosmetics)
	return d
}

// sizePresence tells an omitted or null size apart from an explicit zero.
type sizePresence struct {
	Cosmetics struct {
		Size *float64 `json:"size"`
	} `json:"cosmetics"`
}

func decodeJSON(data []byte, fallback petoverse.DraftPet) petoverse.DraftPet {
	var d petoverse.DraftPet
	if err := json.Unmarshal(data, &d); err != nil {
		return fallback
	}
	var presence sizePresence
	if err := json.Unmarshal(data, &presence); err != nil || presence.Cosmetics.Size == nil {
		d.Cosmetics.Size = petoverse.DefaultSize
	}
	return d
}
