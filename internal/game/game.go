package game

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/sevenstud/internal/dealid"
	"github.com/lox/sevenstud/poker"
)

// HistoryLimit caps the deal summaries kept on a GameState; the oldest are
// trimmed beyond it. Anything longer-lived belongs to an external archive.
const HistoryLimit = 200

// MaxSeats is the largest table a 52-card deck can serve for a full
// seven-card hand; bigger tables are rejected at deal start.
const MaxSeats = 7

// DealSummary is the immutable settlement record of a finished deal. Hands
// are the final dealt cards, kept so displays and archives can show the
// showdown without the discarded deal state.
type DealSummary struct {
	DealID      string         `json:"dealId"`
	Variant     Variant        `json:"variant"`
	StartedAt   time.Time      `json:"startedAt"`
	EndedAt     time.Time      `json:"endedAt"`
	SeatOrder   []string       `json:"seatOrder"`
	Hands       []Hand         `json:"hands"`
	WinnersHigh []int          `json:"winnersHigh"`
	WinnersLow  []int          `json:"winnersLow,omitempty"`
	Pot         int            `json:"pot"`
	DeltaStacks map[string]int `json:"deltaStacks"`
	PotShare    map[string]int `json:"potShare"`
}

// GameState owns the running score and the live deal. Like DealState it is
// value-oriented: orchestrator methods return a new state rather than
// mutating the input.
type GameState struct {
	Players     []string       `json:"players"`
	Scores      map[string]int `json:"scores"`
	Stakes      Stakes         `json:"stakes"`
	Rotation    []Variant      `json:"rotation"`
	DealIndex   int            `json:"dealIndex"`
	CurrentDeal *DealState     `json:"currentDeal,omitempty"`
	History     []DealSummary  `json:"dealHistory"`
	Finished    bool           `json:"gameFinished"`
}

// clone copies the game shell; the current deal is shared because it is
// itself never mutated in place.
func (g *GameState) clone() *GameState {
	out := *g
	out.Players = append([]string{}, g.Players...)
	out.Scores = make(map[string]int, len(g.Scores))
	for id, score := range g.Scores {
		out.Scores[id] = score
	}
	out.Rotation = append([]Variant{}, g.Rotation...)
	out.History = append([]DealSummary{}, g.History...)
	return &out
}

// DealParams configures one deal: the seat order (external identities),
// seat kinds and starting stacks by seat, and the shuffle seed.
type DealParams struct {
	Seed      string       `json:"seed"`
	SeatOrder []string     `json:"seatOrder"`
	Kinds     []PlayerKind `json:"kinds"`
	Stacks    []int        `json:"stacks"`
}

// Orchestrator starts and settles deals. The clock is injected so event
// timestamps are controllable in tests.
type Orchestrator struct {
	clock  quartz.Clock
	ids    *dealid.Generator
	logger *log.Logger
}

// NewOrchestrator creates an orchestrator. A nil clock uses the real one; a
// nil logger discards.
func NewOrchestrator(clock quartz.Clock, logger *log.Logger) *Orchestrator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Orchestrator{
		clock:  clock,
		ids:    dealid.NewGenerator(nil),
		logger: logger,
	}
}

// StartNewDeal resolves the deal's variant from the rotation rule, builds a
// fresh DealState, posts the antes, and deals third street. Everything after
// deck setup flows through ordinary events. It returns a new game state; on
// error the input is unchanged.
func (o *Orchestrator) StartNewDeal(g *GameState, p DealParams) (*GameState, error) {
	if g.CurrentDeal != nil {
		return nil, fmt.Errorf("a deal is already in progress")
	}
	if len(p.SeatOrder) < 2 || len(p.SeatOrder) > MaxSeats {
		return nil, fmt.Errorf("table must seat 2 to %d players, got %d", MaxSeats, len(p.SeatOrder))
	}
	if len(p.Kinds) != len(p.SeatOrder) || len(p.Stacks) != len(p.SeatOrder) {
		return nil, fmt.Errorf("kinds and stacks must match the seat order")
	}
	if len(g.Rotation) == 0 {
		return nil, fmt.Errorf("game has no variant rotation")
	}

	variant := g.Rotation[g.DealIndex%len(g.Rotation)]
	now := o.clock.Now()

	deal := &DealState{
		DealID:       o.ids.Generate(),
		Variant:      variant,
		PlayerCount:  len(p.SeatOrder),
		Players:      make([]PlayerState, len(p.SeatOrder)),
		SeatOrder:    append([]string{}, p.SeatOrder...),
		Stakes:       g.Stakes,
		Street:       Third,
		BringInSeat:  NoSeat,
		CurrentActor: NoSeat,
		Deck:         poker.Shuffle(poker.NewDeck(), p.Seed),
		Seed:         p.Seed,
		Hands:        make([]Hand, len(p.SeatOrder)),
		StartedAt:    now,
	}
	for seat := range p.SeatOrder {
		deal.Players[seat] = PlayerState{
			Seat:   seat,
			Kind:   p.Kinds[seat],
			Active: true,
			Stack:  p.Stacks[seat],
		}
	}

	for seat := range p.SeatOrder {
		ev := o.Stamp(Event{
			Type:   EventPostAnte,
			Seat:   seat,
			Street: Third,
			Amount: g.Stakes.Ante,
		})
		var err error
		deal, err = ApplyEvent(deal, ev)
		if err != nil {
			return nil, fmt.Errorf("posting ante for seat %d: %w", seat, err)
		}
	}

	deal = deal.Clone()
	deal.Deck, deal.Hands = DealThird(deal.Deck, deal.ActiveSeats(), deal.Hands)
	deal.BringInSeat = findBringIn(deal)
	deal.CurrentActor = deal.BringInSeat
	deal.PendingResponses = deal.ActiveCount()

	o.logger.Debug("deal started",
		"deal", deal.DealID, "variant", variant, "seats", deal.PlayerCount, "bringIn", deal.BringInSeat)

	out := g.clone()
	out.CurrentDeal = deal
	return out, nil
}

// FinishDeal settles a finished deal: a lone surviving seat takes the whole
// pot without evaluation, otherwise the showdown is resolved and the pot
// distributed. The summary is prepended to the capped history, scores are
// updated, and the live deal is dropped.
func (o *Orchestrator) FinishDeal(g *GameState) (*GameState, error) {
	deal := g.CurrentDeal
	if deal == nil {
		return nil, fmt.Errorf("no deal in progress")
	}
	if !deal.Finished {
		return nil, fmt.Errorf("deal %s is not finished", deal.DealID)
	}

	var result ShowdownResult
	if seats := deal.ActiveSeats(); len(seats) == 1 {
		result = ShowdownResult{WinnersHigh: seats}
	} else {
		known := make(map[int][]poker.Card, len(seats))
		for _, seat := range seats {
			known[seat] = deal.Hands[seat].Known()
		}
		result = ResolveShowdown(deal.Variant, known)
	}

	potShare := DistributePot(deal.Variant, deal.Pot, result.WinnersHigh, result.WinnersLow, deal.SeatOrder)
	deltas := CalcDeltaStacks(deal, potShare)

	hands := make([]Hand, len(deal.Hands))
	for i, h := range deal.Hands {
		hands[i] = h.clone()
	}

	summary := DealSummary{
		DealID:      deal.DealID,
		Variant:     deal.Variant,
		StartedAt:   deal.StartedAt,
		EndedAt:     o.clock.Now(),
		SeatOrder:   append([]string{}, deal.SeatOrder...),
		Hands:       hands,
		WinnersHigh: result.WinnersHigh,
		WinnersLow:  result.WinnersLow,
		Pot:         deal.Pot,
		DeltaStacks: deltas,
		PotShare:    potShare,
	}

	out := g.clone()
	for id, delta := range deltas {
		out.Scores[id] += delta
	}
	out.History = append([]DealSummary{summary}, out.History...)
	if len(out.History) > HistoryLimit {
		out.History = out.History[:HistoryLimit]
	}
	out.CurrentDeal = nil
	out.DealIndex++

	o.logger.Debug("deal finished",
		"deal", summary.DealID, "pot", summary.Pot, "winnersHigh", summary.WinnersHigh, "winnersLow", summary.WinnersLow)

	return out, nil
}

// Stamp assigns an ID and timestamp to an event before it is applied
func (o *Orchestrator) Stamp(ev Event) Event {
	ev.ID = o.ids.Generate()
	ev.Timestamp = o.clock.Now()
	return ev
}
