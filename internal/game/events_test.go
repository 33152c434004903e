package game

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestEventJSONSeatNullForSystemEvents(t *testing.T) {
	t.Parallel()
	ev := Event{
		ID:        "ev-1",
		Type:      EventStreetAdvance,
		Seat:      NoSeat,
		Street:    Fourth,
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	data, err := json.Marshal(ev)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"seat":null`) {
		t.Errorf("system event should carry a null seat: %s", data)
	}

	var decoded Event
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Seat != NoSeat {
		t.Errorf("null seat decoded to %d, want NoSeat", decoded.Seat)
	}
}

func TestEventJSONRoundTrip(t *testing.T) {
	t.Parallel()
	ev := Event{
		ID:        "ev-2",
		Type:      EventRaise,
		Seat:      3,
		Street:    Fifth,
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Amount:    160,
	}
	data, err := json.Marshal(ev)
	if err != nil {
		t.Fatal(err)
	}
	var decoded Event
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded != ev {
		t.Errorf("round trip changed event: %+v vs %+v", decoded, ev)
	}
}

func TestStreetTextMarshalling(t *testing.T) {
	t.Parallel()
	for street := Third; street <= Seventh; street++ {
		text, err := street.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var decoded Street
		if err := decoded.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if decoded != street {
			t.Errorf("street %v round-tripped to %v", street, decoded)
		}
	}

	var s Street
	if err := s.UnmarshalText([]byte("8th")); err == nil {
		t.Error("expected error for unknown street name")
	}
}
