package testutils

import (
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// FixedRoller is a dice.Roller that replays Values in order, cycling when it
// runs out. Each value is clamped into [1, size].
type FixedRoller struct {
	Values []int

	mu  sync.Mutex
	pos int
}

// NewFixedRoller creates a roller that returns values in order
func NewFixedRoller(values ...int) *FixedRoller {
	return &FixedRoller{Values: values}
}

// Roll returns the next value
func (r *FixedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := 1
	if len(r.Values) > 0 {
		v = r.Values[r.pos%len(r.Values)]
		r.pos++
	}
	if v < 1 {
		v = 1
	}
	if v > size {
		v = size
	}
	return v, nil
}

// RollN returns the next count values
func (r *FixedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

var _ dice.Roller = (*FixedRoller)(nil)
