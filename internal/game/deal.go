package game

import (
	"fmt"
	"time"

	"github.com/lox/sevenstud/poker"
)

// Stakes holds the fixed-limit bet sizes for a deal
type Stakes struct {
	Ante     int `json:"ante"`
	BringIn  int `json:"bringIn"`
	SmallBet int `json:"smallBet"`
	BigBet   int `json:"bigBet"`
}

// DealState is the aggregate for one deal. It is treated as immutable:
// ApplyEvent clones it and returns the clone, so holders of an old state
// never see a transition in progress. All fields are plain data and
// serializable.
type DealState struct {
	DealID           string         `json:"dealId"`
	Variant          Variant        `json:"variant"`
	PlayerCount      int            `json:"playerCount"`
	Players          []PlayerState  `json:"players"`
	SeatOrder        []string       `json:"seatOrder"`
	Stakes           Stakes         `json:"stakes"`
	Street           Street         `json:"street"`
	BringInSeat      int            `json:"bringInSeat"`
	CurrentActor     int            `json:"currentActor"`
	Pot              int            `json:"pot"`
	CurrentBet       int            `json:"currentBet"`
	RaiseCount       int            `json:"raiseCount"`
	PendingResponses int            `json:"pendingResponses"`
	ChecksThisStreet int            `json:"checksThisStreet"`
	StreetActions    []ActionRecord `json:"actionsThisStreet"`
	Finished         bool           `json:"dealFinished"`
	Deck             []poker.Card   `json:"remainingDeck"`
	Seed             string         `json:"rngSeed"`
	Hands            []Hand         `json:"hands"`
	StartedAt        time.Time      `json:"startedAt"`
}

// Clone returns a deep copy sharing nothing mutable with the receiver
func (s *DealState) Clone() *DealState {
	out := *s
	out.Players = append([]PlayerState{}, s.Players...)
	out.SeatOrder = append([]string{}, s.SeatOrder...)
	out.Deck = append([]poker.Card{}, s.Deck...)
	if s.StreetActions != nil {
		out.StreetActions = append([]ActionRecord{}, s.StreetActions...)
	}
	out.Hands = make([]Hand, len(s.Hands))
	for i, h := range s.Hands {
		out.Hands[i] = h.clone()
	}
	return &out
}

// ActiveCount returns the number of seats still in the deal
func (s *DealState) ActiveCount() int {
	n := 0
	for _, p := range s.Players {
		if p.Active {
			n++
		}
	}
	return n
}

// ActiveSeats returns the seat indexes still in the deal, ascending
func (s *DealState) ActiveSeats() []int {
	seats := make([]int, 0, len(s.Players))
	for _, p := range s.Players {
		if p.Active {
			seats = append(seats, p.Seat)
		}
	}
	return seats
}

// StreetBet returns the fixed bet size for the current street: the small
// bet through fourth street, the big bet from fifth street on.
func (s *DealState) StreetBet() int {
	if s.Street <= Fourth {
		return s.Stakes.SmallBet
	}
	return s.Stakes.BigBet
}

// TargetAmount returns the street-total commitment an action of the given
// kind must carry in its event. Zero for actions without an amount.
func TargetAmount(s *DealState, kind EventType) int {
	switch kind {
	case EventPostAnte:
		return s.Stakes.Ante
	case EventBringIn:
		return s.Stakes.BringIn
	case EventComplete:
		return s.Stakes.SmallBet
	case EventBet:
		return s.StreetBet()
	case EventRaise:
		return s.CurrentBet + s.StreetBet()
	case EventCall:
		return s.CurrentBet
	default:
		return 0
	}
}

// ApplyEvent applies one event to the deal, returning the resulting state.
// The input state is never mutated. Illegal actions, events from the wrong
// seat, and unknown event types are rejected with the input state unchanged.
func ApplyEvent(s *DealState, ev Event) (*DealState, error) {
	if s.Finished {
		return nil, fmt.Errorf("applying %s: %w", ev.Type, ErrDealFinished)
	}

	next := s.Clone()

	switch ev.Type {
	case EventPostAnte:
		if ev.Seat < 0 || ev.Seat >= next.PlayerCount {
			return nil, fmt.Errorf("ante for seat %d: %w", ev.Seat, ErrInvalidSeat)
		}
		if next.Street != Third || next.CurrentBet > 0 {
			return nil, fmt.Errorf("ante after betting opened: %w", ErrIllegalAction)
		}
		p := &next.Players[ev.Seat]
		amount := min(p.Stack, ev.Amount)
		p.Stack -= amount
		p.CommittedTotal += amount
		next.Pot += amount

	case EventBringIn, EventComplete, EventBet, EventRaise:
		if err := validateAction(s, ev); err != nil {
			return nil, err
		}
		p := &next.Players[ev.Seat]
		commit(next, p, ev.Amount)
		next.CurrentBet = ev.Amount
		if ev.Type == EventRaise || ev.Type == EventComplete {
			next.RaiseCount++
		}
		next.PendingResponses = next.ActiveCount() - 1

	case EventCall:
		if err := validateAction(s, ev); err != nil {
			return nil, err
		}
		p := &next.Players[ev.Seat]
		commit(next, p, next.CurrentBet)
		next.PendingResponses--

	case EventCheck:
		if err := validateAction(s, ev); err != nil {
			return nil, err
		}
		next.ChecksThisStreet++
		next.PendingResponses--

	case EventFold:
		if err := validateAction(s, ev); err != nil {
			return nil, err
		}
		next.Players[ev.Seat].Active = false
		next.PendingResponses--
		if next.ActiveCount() <= 1 {
			next.Finished = true
		}

	case EventStreetAdvance:
		if err := next.advanceStreet(); err != nil {
			return nil, err
		}
		return next, nil

	case EventDealEnd:
		next.Finished = true
		return next, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}

	if ev.Seat != NoSeat {
		next.StreetActions = append(next.StreetActions, ActionRecord{
			Seat:   ev.Seat,
			Type:   ev.Type,
			Amount: ev.Amount,
		})
	}

	if !next.Finished {
		if actor, ok := NextActor(next); ok {
			next.CurrentActor = actor
		} else {
			next.CurrentActor = NoSeat
		}
	}

	return next, nil
}

// validateAction rejects actions from the wrong seat, actions outside the
// allowed set, and amounts that disagree with the table stakes.
func validateAction(s *DealState, ev Event) error {
	if ev.Seat != s.CurrentActor {
		return fmt.Errorf("%s from seat %d (actor is %d): %w", ev.Type, ev.Seat, s.CurrentActor, ErrNotCurrentActor)
	}
	allowed := false
	for _, kind := range AllowedActions(s) {
		if kind == ev.Type {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%s on %s street: %w", ev.Type, s.Street, ErrIllegalAction)
	}
	if want := TargetAmount(s, ev.Type); ev.Amount != want {
		return fmt.Errorf("%s amount %d, want %d: %w", ev.Type, ev.Amount, want, ErrWrongAmount)
	}
	return nil
}

// commit moves chips so the player's street commitment reaches amount,
// capped by their stack. A short stack commits what it has; the deal has no
// side pots, the shortfall simply stays uncollected.
func commit(s *DealState, p *PlayerState, amount int) {
	delta := min(amount-p.CommittedStreet, p.Stack)
	if delta <= 0 {
		return
	}
	p.Stack -= delta
	p.CommittedStreet += delta
	p.CommittedTotal += delta
	s.Pot += delta
}

// advanceStreet moves to the next street: deals its cards, resets the
// betting counters, and seats the first actor per the variant's policy.
func (s *DealState) advanceStreet() error {
	seats := s.ActiveSeats()

	switch s.Street {
	case Third, Fourth, Fifth:
		s.Street++
		s.Deck, s.Hands = DealUp(s.Deck, seats, s.Hands)
	case Sixth:
		s.Street = Seventh
		s.Deck, s.Hands = DealSeventh(s.Deck, seats, s.Hands)
	default:
		return fmt.Errorf("cannot advance past %s street", s.Street)
	}

	s.CurrentBet = 0
	s.RaiseCount = 0
	s.ChecksThisStreet = 0
	s.StreetActions = nil
	for i := range s.Players {
		s.Players[i].CommittedStreet = 0
	}
	s.PendingResponses = s.ActiveCount()
	s.CurrentActor = firstToAct(s)
	return nil
}

// firstToAct picks the opening seat for a post-third street: the best
// exposed board opens, which in Razz means the best (lowest) low board.
// Ties go to the lowest seat index.
func firstToAct(s *DealState) int {
	seats := s.ActiveSeats()
	if len(seats) == 0 {
		return NoSeat
	}

	best := seats[0]
	for _, seat := range seats[1:] {
		if s.Variant == VariantRazz {
			a := exposedLow(s.Hands[seat].Up)
			b := exposedLow(s.Hands[best].Up)
			if poker.CompareLow(a, b) > 0 {
				best = seat
			}
		} else {
			a := poker.EvaluateExposed(s.Hands[seat].Up)
			b := poker.EvaluateExposed(s.Hands[best].Up)
			if poker.CompareHigh(a, b) > 0 {
				best = seat
			}
		}
	}
	return best
}

// exposedLow reads an exposed board as a low hand: all card values,
// ace counting 1, sorted descending.
func exposedLow(cards []poker.Card) poker.LowRank {
	values := make(poker.LowRank, 0, len(cards))
	for _, c := range cards {
		values = append(values, c.Rank.LowValue())
	}
	for i := 1; i < len(values); i++ {
		for j := i; j > 0 && values[j] > values[j-1]; j-- {
			values[j], values[j-1] = values[j-1], values[j]
		}
	}
	return values
}

// findBringIn returns the seat owing the bring-in: the lowest exposed
// third-street card, except in Razz where the highest card owes it. Suits
// break ties, clubs low through spades high.
func findBringIn(s *DealState) int {
	owes := NoSeat
	for _, seat := range s.ActiveSeats() {
		if len(s.Hands[seat].Up) == 0 {
			continue
		}
		if owes == NoSeat {
			owes = seat
			continue
		}
		card, held := s.Hands[seat].Up[0], s.Hands[owes].Up[0]
		if s.Variant == VariantRazz {
			if cardAboveRazz(card, held) {
				owes = seat
			}
		} else if cardBelow(card, held) {
			owes = seat
		}
	}
	return owes
}

// cardAboveRazz orders cards for the Razz bring-in: aces count low, so a
// king is the highest card. Suits break ties as everywhere else.
func cardAboveRazz(a, b poker.Card) bool {
	av, bv := a.Rank.LowValue(), b.Rank.LowValue()
	if av != bv {
		return av > bv
	}
	return a.Suit > b.Suit
}

func cardBelow(a, b poker.Card) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return a.Suit < b.Suit
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
