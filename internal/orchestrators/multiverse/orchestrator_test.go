package multiverse_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/petoverse-api/internal/orchestrators/multiverse"
	"github.com/KirkDiggler/petoverse-api/internal/testutils"
)

func TestListNodes(t *testing.T) {
	svc, err := multiverse.NewOrchestrator(&multiverse.Config{})
	require.NoError(t, err)

	out, err := svc.ListNodes(context.Background(), &multiverse.ListNodesInput{})
	require.NoError(t, err)
	assert.Len(t, out.Nodes, 5)
	assert.Equal(t, "Cosmic Playground", out.Nodes[0].Name)
}

func TestGetNode(t *testing.T) {
	svc, err := multiverse.NewOrchestrator(&multiverse.Config{})
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("known", func(t *testing.T) {
		out, err := svc.GetNode(ctx, &multiverse.GetNodeInput{NodeID: "5"})
		require.NoError(t, err)
		assert.True(t, out.Found)
		assert.Equal(t, "Crystal Caves", out.Node.Name)
	})

	t.Run("unknown falls back to the first node", func(t *testing.T) {
		out, err := svc.GetNode(ctx, &multiverse.GetNodeInput{NodeID: "42"})
		require.NoError(t, err)
		assert.False(t, out.Found)
		assert.Equal(t, "1", out.Node.ID)
	})
}

func TestStarField(t *testing.T) {
	ctx := context.Background()

	t.Run("maps rolls onto the unit square", func(t *testing.T) {
		svc, err := multiverse.NewOrchestrator(&multiverse.Config{
			DiceRoller: testutils.NewFixedRoller(1, 1000, 300),
		})
		require.NoError(t, err)

		out, err := svc.StarField(ctx, &multiverse.StarFieldInput{Count: 1})
		require.NoError(t, err)
		require.Len(t, out.Stars, 1)
		assert.InDelta(t, 0.0, out.Stars[0].X, 1e-9)
		assert.InDelta(t, 0.999, out.Stars[0].Y, 1e-9)
		assert.InDelta(t, 3.99, out.Stars[0].Size, 1e-9)
	})

	t.Run("count defaults and caps", func(t *testing.T) {
		svc, err := multiverse.NewOrchestrator(&multiverse.Config{DiceRoller: dice.DefaultRoller})
		require.NoError(t, err)

		def, err := svc.StarField(ctx, &multiverse.StarFieldInput{})
		require.NoError(t, err)
		assert.Len(t, def.Stars, multiverse.DefaultStarCount)

		capped, err := svc.StarField(ctx, &multiverse.StarFieldInput{Count: 10_000})
		require.NoError(t, err)
		assert.Len(t, capped.Stars, multiverse.MaxStarCount)

		for _, star := range capped.Stars {
			assert.GreaterOrEqual(t, star.X, 0.0)
			assert.Less(t, star.X, 1.0)
			assert.GreaterOrEqual(t, star.Size, 1.0)
			assert.Less(t, star.Size, 4.0)
		}
	})
}
