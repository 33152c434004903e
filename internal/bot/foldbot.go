package bot

import "github.com/lox/sevenstud/internal/game"

// FoldBot gives up at the first opportunity: it folds whenever folding is
// legal, checks or brings in when it cannot fold. Useful for exercising the
// fold-to-one settlement path.
type FoldBot struct{}

// NewFoldBot creates a FoldBot
func NewFoldBot() *FoldBot {
	return &FoldBot{}
}

// Act folds if allowed, otherwise takes the cheapest action
func (b *FoldBot) Act(obs game.Observation) (game.EventType, error) {
	return pick(obs.Allowed, game.EventFold, game.EventCheck, game.EventBringIn, game.EventCall)
}
