package draft_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/petoverse-api/internal/catalog"
	"github.com/KirkDiggler/petoverse-api/internal/draft"
	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
)

func TestTokenRoundTrip(t *testing.T) {
	d := petoverse.DraftPet{
		ArchetypeID: "fire-dragon",
		Name:        "Blaze",
		Cosmetics: petoverse.CosmeticConfig{
			PrimaryColor:   "red",
			SecondaryColor: "purple",
			Size:           1.2,
			Accessories:    []string{"glasses", "crown"},
		},
	}

	token := draft.Encode(d)
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")

	assert.Equal(t, d, draft.Decode(token))
}

func TestDecodeDefaults(t *testing.T) {
	want := petoverse.DraftPet{
		ArchetypeID: catalog.DefaultArchetypeID,
		Cosmetics:   catalog.DefaultCosmetics(),
	}

	for name, token := range map[string]string{
		"empty":       "",
		"not base64":  "%%%not-a-token%%%",
		"not json":    "aGVsbG8gd29ybGQ",
		"json array":  "WzEsMiwzXQ",
		"wrong types": draftTokenFromJSON(`{"archetype_id":42}`),
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, draft.Decode(token))
		})
	}
}

func TestDecodeSanitises(t *testing.T) {
	token := draftTokenFromJSON(`{"archetype_id":"unicorn","name":"An extremely long pet name indeed","cosmetics":{"primary_color":"info","secondary_color":"glitter","size":0.01,"accessories":["crown","cape"]}}`)

	d := draft.Decode(token)
	assert.Equal(t, "cosmic-cat", d.ArchetypeID)
	assert.Equal(t, "An extremely long pe", d.Name)
	assert.Equal(t, "info", d.Cosmetics.PrimaryColor)
	assert.Equal(t, "orange-light", d.Cosmetics.SecondaryColor)
	assert.Equal(t, 0.5, d.Cosmetics.Size)
	assert.Equal(t, []string{"crown"}, d.Cosmetics.Accessories)
}

func TestDecodeSize(t *testing.T) {
	testCases := []struct {
		name string
		json string
		want float64
	}{
		{name: "explicit zero", json: `{"cosmetics":{"size":0}}`, want: petoverse.MinSize},
		{name: "below minimum", json: `{"cosmetics":{"size":0.03}}`, want: petoverse.MinSize},
		{name: "absent", json: `{"cosmetics":{"primary_color":"red"}}`, want: petoverse.DefaultSize},
		{name: "null", json: `{"cosmetics":{"size":null}}`, want: petoverse.DefaultSize},
		{name: "no cosmetics", json: `{"name":"Nova"}`, want: petoverse.DefaultSize},
		{name: "in range", json: `{"cosmetics":{"size":1.3}}`, want: 1.3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := draft.Decode(draftTokenFromJSON(tc.json))
			assert.Equal(t, tc.want, d.Cosmetics.Size)
		})
	}
}

func draftTokenFromJSON(s string) string {
	return base64URL([]byte(s))
}
