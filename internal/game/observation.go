package game

import "github.com/lox/sevenstud/poker"

// Observation is the fairness-masked view handed to an automated seat: its
// own down cards, everyone's up cards, and the public counters. Opponents'
// down cards are never included. The shape is flat and serializable so it
// can cross to out-of-process automation.
type Observation struct {
	Seat            int            `json:"seat"`
	PlayerID        string         `json:"playerId"`
	Variant         Variant        `json:"variant"`
	Street          Street         `json:"street"`
	Down            []poker.Card   `json:"down"`
	UpBySeat        [][]poker.Card `json:"upBySeat"`
	ActiveBySeat    []bool         `json:"activeBySeat"`
	Stacks          []int          `json:"stacks"`
	CommittedStreet []int          `json:"committedThisStreet"`
	Pot             int            `json:"pot"`
	CurrentBet      int            `json:"currentBet"`
	RaiseCount      int            `json:"raiseCount"`
	ToCall          int            `json:"toCall"`
	Allowed         []EventType    `json:"allowed"`
}

// Observe builds seat's observation of the deal
func Observe(s *DealState, seat int) Observation {
	obs := Observation{
		Seat:            seat,
		PlayerID:        s.SeatOrder[seat],
		Variant:         s.Variant,
		Street:          s.Street,
		Down:            append([]poker.Card{}, s.Hands[seat].Down...),
		UpBySeat:        make([][]poker.Card, s.PlayerCount),
		ActiveBySeat:    make([]bool, s.PlayerCount),
		Stacks:          make([]int, s.PlayerCount),
		CommittedStreet: make([]int, s.PlayerCount),
		Pot:             s.Pot,
		CurrentBet:      s.CurrentBet,
		RaiseCount:      s.RaiseCount,
		Allowed:         AllowedActions(s),
	}
	for i, p := range s.Players {
		obs.UpBySeat[i] = append([]poker.Card{}, s.Hands[i].Up...)
		obs.ActiveBySeat[i] = p.Active
		obs.Stacks[i] = p.Stack
		obs.CommittedStreet[i] = p.CommittedStreet
	}
	if toCall := s.CurrentBet - s.Players[seat].CommittedStreet; toCall > 0 {
		obs.ToCall = toCall
	}
	return obs
}

// Agent is an automation collaborator: shown an observation, it returns
// exactly one of the allowed actions. The engine does not trust the choice;
// callers re-validate before applying.
type Agent interface {
	Act(obs Observation) (EventType, error)
}
