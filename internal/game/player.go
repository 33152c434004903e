package game

import "github.com/lox/sevenstud/poker"

// PlayerKind distinguishes humans from automated seats
type PlayerKind string

const (
	Human     PlayerKind = "human"
	Automated PlayerKind = "automated"
)

// PlayerState is a seat's chip and participation state within one deal.
// Stack + CommittedTotal is conserved across the whole deal: money only
// moves stack -> committed -> pot.
type PlayerState struct {
	Seat            int        `json:"seat"`
	Kind            PlayerKind `json:"kind"`
	Active          bool       `json:"active"`
	Stack           int        `json:"stack"`
	CommittedTotal  int        `json:"committedTotal"`
	CommittedStreet int        `json:"committedThisStreet"`
}

// Hand is a seat's cards, split by visibility. Cards are appended only,
// never removed, within a deal.
type Hand struct {
	Down []poker.Card `json:"down"`
	Up   []poker.Card `json:"up"`
}

// Known returns all cards of the hand, down cards first
func (h Hand) Known() []poker.Card {
	known := make([]poker.Card, 0, len(h.Down)+len(h.Up))
	known = append(known, h.Down...)
	known = append(known, h.Up...)
	return known
}

func (h Hand) clone() Hand {
	out := Hand{}
	if h.Down != nil {
		out.Down = append([]poker.Card{}, h.Down...)
	}
	if h.Up != nil {
		out.Up = append([]poker.Card{}, h.Up...)
	}
	return out
}
