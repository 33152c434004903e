package bot

import "github.com/lox/sevenstud/internal/game"

// CallBot is a passive seat: it checks when it can, calls when it must,
// and posts the bring-in when it owes one. It never folds, so deal outcomes
// are fully determined by the shuffle, which makes it a useful simulation
// baseline.
type CallBot struct{}

// NewCallBot creates a CallBot
func NewCallBot() *CallBot {
	return &CallBot{}
}

// Act picks the most passive allowed action
func (b *CallBot) Act(obs game.Observation) (game.EventType, error) {
	return pick(obs.Allowed, game.EventCheck, game.EventCall, game.EventBringIn, game.EventFold)
}
