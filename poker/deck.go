package poker

import "github.com/lox/sevenstud/internal/randutil"

// NewDeck returns the 52 distinct cards in canonical order (clubs through
// spades, deuce through ace).
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			deck = append(deck, NewCard(rank, suit))
		}
	}
	return deck
}

// Shuffle returns a new slice holding deck's cards in seed-determined order.
// The same seed always produces the same order; the input is not mutated.
func Shuffle(deck []Card, seed string) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)

	rng := randutil.NewString(seed)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
