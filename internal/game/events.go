package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// EventType tags the closed set of events a deal can receive. Unknown types
// are a hard error in ApplyEvent, never silently ignored.
type EventType string

const (
	EventPostAnte      EventType = "post_ante"
	EventBringIn       EventType = "bring_in"
	EventComplete      EventType = "complete"
	EventBet           EventType = "bet"
	EventRaise         EventType = "raise"
	EventCall          EventType = "call"
	EventCheck         EventType = "check"
	EventFold          EventType = "fold"
	EventStreetAdvance EventType = "street_advance"
	EventDealEnd       EventType = "deal_end"
)

// String returns the wire name of the event type
func (t EventType) String() string { return string(t) }

// NoSeat marks events not attributable to a seat (StreetAdvance, DealEnd)
const NoSeat = -1

// Event is the only way a DealState changes. It is a flat, serializable
// record; the seat is null on the wire for system events.
type Event struct {
	ID        string
	Type      EventType
	Seat      int
	Street    Street
	Timestamp time.Time
	Amount    int
}

// wireEvent is the JSON shape: {id, type, seat|null, street, timestamp, amount?}
type wireEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Seat      *int      `json:"seat"`
	Street    Street    `json:"street"`
	Timestamp time.Time `json:"timestamp"`
	Amount    int       `json:"amount,omitempty"`
}

// MarshalJSON renders the seat as null for system events
func (e Event) MarshalJSON() ([]byte, error) {
	w := wireEvent{
		ID:        e.ID,
		Type:      e.Type,
		Street:    e.Street,
		Timestamp: e.Timestamp,
		Amount:    e.Amount,
	}
	if e.Seat != NoSeat {
		seat := e.Seat
		w.Seat = &seat
	}
	return json.Marshal(w)
}

// UnmarshalJSON accepts the wire shape, mapping a null seat back to NoSeat
func (e *Event) UnmarshalJSON(data []byte) error {
	var w wireEvent
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	e.ID = w.ID
	e.Type = w.Type
	e.Street = w.Street
	e.Timestamp = w.Timestamp
	e.Amount = w.Amount
	e.Seat = NoSeat
	if w.Seat != nil {
		e.Seat = *w.Seat
	}
	return nil
}

// ActionRecord is the compact per-street log entry kept in StreetActions.
// The log is replaced wholesale on every street advance.
type ActionRecord struct {
	Seat   int       `json:"seat"`
	Type   EventType `json:"type"`
	Amount int       `json:"amount,omitempty"`
}

// Engine error taxonomy. Programmer/config errors (bad seat, oversized
// table) fail fast at deal start; everything below rejects a single
// transition without corrupting chip totals.
var (
	ErrUnknownEvent    = errors.New("unknown event type")
	ErrDealFinished    = errors.New("deal is finished")
	ErrNotCurrentActor = errors.New("seat is not the current actor")
	ErrIllegalAction   = errors.New("action is not in the allowed set")
	ErrWrongAmount     = errors.New("event amount does not match the table stakes")
	ErrInvalidSeat     = errors.New("invalid seat index")
)

func errUnknownStreet(name string) error {
	return fmt.Errorf("unknown street %q", name)
}
