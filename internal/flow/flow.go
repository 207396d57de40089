// Package flow gates movement through the three-step creation wizard:
// select type, name, confirm. Steps are never skipped.
package flow

import (
	"github.com/KirkDiggler/petoverse-api/internal/draft"
	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
)

// Controller tracks the current wizard step. The zero value is normalised
// to step 1 on first use.
type Controller struct {
	Step int
}

// Outcome describes what an Advance call did
type Outcome struct {
	// Advanced is true when the step moved forward
	Advanced bool
	// Completed is true on the terminal advance from the confirm step.
	// Draft then carries the finished draft by value.
	Completed bool
	Draft     petoverse.DraftPet
}

// New returns a controller positioned at the first step
func New() Controller {
	return Controller{Step: petoverse.StepSelectType}
}

// At returns a controller positioned at step, clamped into range
func At(step int) Controller {
	return Controller{Step: step}.normalized()
}

// Advance moves forward when the current step's gate holds for d. It is a
// no-op otherwise.
func (c Controller) Advance(d petoverse.DraftPet) (Controller, Outcome) {
	c = c.normalized()
	if !draft.IsComplete(d, c.Step) {
		return c, Outcome{}
	}

	if c.Step == petoverse.TotalSteps {
		return c, Outcome{Completed: true, Draft: d}
	}

	return Controller{Step: c.Step + 1}, Outcome{Advanced: true}
}

// Retreat steps back one. At the first step it stays put and reports that
// the caller should leave the wizard.
func (c Controller) Retreat() (Controller, bool) {
	c = c.normalized()
	if c.Step <= petoverse.StepSelectType {
		return c, true
	}
	return Controller{Step: c.Step - 1}, false
}

// Progress reports the current step as a fraction of the total
func (c Controller) Progress() float64 {
	return float64(c.normalized().Step) / float64(petoverse.TotalSteps)
}

// IsFirst reports whether the wizard is at its first step
func (c Controller) IsFirst() bool {
	return c.normalized().Step == petoverse.StepSelectType
}

// IsLast reports whether the wizard is at the confirm step
func (c Controller) IsLast() bool {
	return c.normalized().Step == petoverse.TotalSteps
}

func (c Controller) normalized() Controller {
	switch {
	case c.Step < petoverse.StepSelectType:
		c.Step = petoverse.StepSelectType
	case c.Step > petoverse.TotalSteps:
		c.Step = petoverse.TotalSteps
	}
	return c
}
