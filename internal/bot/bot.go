// Package bot provides automated seats for the deal engine. Bots only see
// the fairness-masked Observation and only choose among the allowed
// actions; they carry no game-integrity responsibility, the engine
// re-validates whatever they return.
package bot

import (
	"fmt"

	"github.com/lox/sevenstud/internal/game"
)

// pick returns the first preferred action present in allowed
func pick(allowed []game.EventType, prefs ...game.EventType) (game.EventType, error) {
	for _, p := range prefs {
		for _, a := range allowed {
			if a == p {
				return a, nil
			}
		}
	}
	return "", fmt.Errorf("no preferred action among %v", allowed)
}
