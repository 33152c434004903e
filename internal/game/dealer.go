package game

import (
	"fmt"

	"github.com/lox/sevenstud/poker"
)

// Dealing consumes cards from the front of the remaining deck, one card per
// seat per pass, and never returns a card to the deck. The functions are
// pure: they return the updated deck and hands and leave their inputs alone.
//
// Deck underflow is a configuration error (a table too big for 52 cards),
// not a game condition: the orchestrator rejects tables of more than seven
// seats before dealing, so underflow here panics.

// DealThird deals two down cards and one up card to each active seat
func DealThird(deck []poker.Card, seats []int, hands []Hand) ([]poker.Card, []Hand) {
	deck, hands = dealRound(deck, seats, hands, false)
	deck, hands = dealRound(deck, seats, hands, false)
	return dealRound(deck, seats, hands, true)
}

// DealUp deals one up card to each active seat (fourth through sixth street)
func DealUp(deck []poker.Card, seats []int, hands []Hand) ([]poker.Card, []Hand) {
	return dealRound(deck, seats, hands, true)
}

// DealSeventh deals the final down card to each active seat
func DealSeventh(deck []poker.Card, seats []int, hands []Hand) ([]poker.Card, []Hand) {
	return dealRound(deck, seats, hands, false)
}

func dealRound(deck []poker.Card, seats []int, hands []Hand, faceUp bool) ([]poker.Card, []Hand) {
	if len(deck) < len(seats) {
		panic(fmt.Sprintf("deck underflow: %d cards left for %d seats", len(deck), len(seats)))
	}

	outHands := make([]Hand, len(hands))
	for i, h := range hands {
		outHands[i] = h.clone()
	}

	for _, seat := range seats {
		card := deck[0]
		deck = deck[1:]
		if faceUp {
			outHands[seat].Up = append(outHands[seat].Up, card)
		} else {
			outHands[seat].Down = append(outHands[seat].Down, card)
		}
	}

	outDeck := append([]poker.Card{}, deck...)
	return outDeck, outHands
}
