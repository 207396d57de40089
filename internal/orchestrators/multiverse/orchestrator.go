// Package multiverse serves the galaxy map: its nodes and a random star field
package multiverse

//go:generate mockgen -destination=mock/mock_service.go -package=multiversemock github.com/KirkDiggler/petoverse-api/internal/orchestrators/multiverse Service

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/petoverse-api/internal/catalog"
	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
)

// Star field bounds
const (
	DefaultStarCount = 30
	MaxStarCount     = 200

	// positions are drawn in thousandths, sizes in hundredths above 1
	positionDie = 1000
	sizeDie     = 300
)

// ListNodesInput defines the request for listing galaxy nodes
type ListNodesInput struct{}

// ListNodesOutput defines the response for listing galaxy nodes
type ListNodesOutput struct {
	Nodes []petoverse.GalaxyNode
}

// GetNodeInput defines the request for a single node
type GetNodeInput struct {
	NodeID string
}

// GetNodeOutput defines the response for a single node. Found is false when
// the id missed and Node is the first node instead.
type GetNodeOutput struct {
	Node  petoverse.GalaxyNode
	Found bool
}

// StarFieldInput defines the request for a star field
type StarFieldInput struct {
	Count int
}

// StarFieldOutput defines the response for a star field
type StarFieldOutput struct {
	Stars []petoverse.Star
}

// Service defines the interface for the galaxy map
type Service interface {
	ListNodes(ctx context.Context, input *ListNodesInput) (*ListNodesOutput, error)
	GetNode(ctx context.Context, input *GetNodeInput) (*GetNodeOutput, error)
	StarField(ctx context.Context, input *StarFieldInput) (*StarFieldOutput, error)
}

// Config holds the dependencies for the multiverse orchestrator
type Config struct {
	DiceRoller dice.Roller
}

type orchestrator struct {
	roller dice.Roller
}

// NewOrchestrator creates a new multiverse orchestrator. A nil roller uses
// the default one.
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	roller := cfg.DiceRoller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &orchestrator{roller: roller}, nil
}

func (o *orchestrator) ListNodes(_ context.Context, _ *ListNodesInput) (*ListNodesOutput, error) {
	return &ListNodesOutput{Nodes: catalog.Nodes()}, nil
}

func (o *orchestrator) GetNode(_ context.Context, input *GetNodeInput) (*GetNodeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if node, ok := catalog.Node(input.NodeID); ok {
		return &GetNodeOutput{Node: node, Found: true}, nil
	}
	return &GetNodeOutput{Node: catalog.NodeOrDefault(input.NodeID)}, nil
}

func (o *orchestrator) StarField(_ context.Context, input *StarFieldInput) (*StarFieldOutput, error) {
	count := DefaultStarCount
	if input != nil && input.Count > 0 {
		count = min(input.Count, MaxStarCount)
	}

	stars := make([]petoverse.Star, count)
	for i := range stars {
		star, err := o.star()
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll star field")
		}
		stars[i] = star
	}

	return &StarFieldOutput{Stars: stars}, nil
}

// star places one star at relative x, y in [0,1) with a size in [1,4)
func (o *orchestrator) star() (petoverse.Star, error) {
	pos, err := o.roller.RollN(2, positionDie)
	if err != nil {
		return petoverse.Star{}, err
	}
	size, err := o.roller.Roll(sizeDie)
	if err != nil {
		return petoverse.Star{}, err
	}

	return petoverse.Star{
		X:    float64(pos[0]-1) / positionDie,
		Y:    float64(pos[1]-1) / positionDie,
		Size: 1 + float64(size-1)/100,
	}, nil
}
