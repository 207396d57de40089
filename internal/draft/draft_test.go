package draft_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/petoverse-api/internal/draft"
	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
)

func TestSelectArchetype(t *testing.T) {
	d := draft.New()
	assert.False(t, draft.IsComplete(d, petoverse.StepSelectType))

	d = draft.SelectArchetype(d, "crystal-fox")
	assert.Equal(t, "crystal-fox", d.ArchetypeID)
	assert.True(t, draft.IsComplete(d, petoverse.StepSelectType))

	d = draft.SelectArchetype(d, "shadow-wolf")
	assert.Equal(t, "shadow-wolf", d.ArchetypeID, "selection replaces, exactly one archetype")

	d = draft.SelectArchetype(d, "griffin")
	assert.Equal(t, "shadow-wolf", d.ArchetypeID, "unknown ids ignored")
}

func TestSetNameTruncates(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want int
	}{
		{name: "short", in: "Blaze", want: 5},
		{name: "exactly twenty", in: strings.Repeat("a", 20), want: 20},
		{name: "too long", in: strings.Repeat("b", 35), want: 20},
		{name: "multibyte", in: strings.Repeat("🐲", 25), want: 20},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := draft.SetName(draft.New(), tc.in)
			assert.Equal(t, tc.want, utf8.RuneCountInString(d.Name))
			assert.True(t, strings.HasPrefix(tc.in, d.Name))
		})
	}
}

func TestIsCompleteNameStep(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want bool
	}{
		{name: "empty", in: "", want: false},
		{name: "spaces", in: "    ", want: false},
		{name: "tabs and newlines", in: "\t\n", want: false},
		{name: "padded", in: "  Nova ", want: true},
		{name: "single char", in: "X", want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := draft.SetName(draft.New(), tc.in)
			assert.Equal(t, tc.want, draft.IsComplete(d, petoverse.StepName))
		})
	}
}

func TestIsCompleteConfirmAndUnknownStep(t *testing.T) {
	d := draft.SetName(draft.SelectArchetype(draft.New(), "fire-dragon"), "Blaze")
	assert.True(t, draft.IsComplete(d, petoverse.StepConfirm))
	assert.False(t, draft.IsComplete(d, 0))
	assert.False(t, draft.IsComplete(d, 4))

	assert.False(t, draft.IsComplete(draft.SetName(draft.New(), "Blaze"), petoverse.StepConfirm))
}

func TestMutationsDoNotAlias(t *testing.T) {
	orig := draft.New()
	orig.Cosmetics.Accessories = []string{"crown"}

	next := draft.SetName(orig, "Nova")
	next.Cosmetics.Accessories[0] = "bow"

	assert.Equal(t, "", orig.Name)
	assert.Equal(t, "crown", orig.Cosmetics.Accessories[0])
}
