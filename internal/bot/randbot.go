package bot

import (
	"fmt"

	"github.com/lox/sevenstud/internal/game"
	"github.com/lox/sevenstud/internal/randutil"
)

// RandBot picks uniformly among the allowed actions, driven by a seeded
// source so simulation runs replay exactly.
type RandBot struct {
	rng *randutil.Source
}

// NewRandBot creates a RandBot seeded from the given string
func NewRandBot(seed string) *RandBot {
	return &RandBot{rng: randutil.NewString(seed)}
}

// Act returns a uniformly random allowed action
func (b *RandBot) Act(obs game.Observation) (game.EventType, error) {
	if len(obs.Allowed) == 0 {
		return "", fmt.Errorf("no allowed actions for seat %d", obs.Seat)
	}
	return obs.Allowed[b.rng.Intn(len(obs.Allowed))], nil
}
