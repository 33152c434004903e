package game

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/lox/sevenstud/poker"
)

func TestObserveMasksOpponentDownCards(t *testing.T) {
	t.Parallel()
	deal := testDeal(t, VariantHigh,
		[2]string{"2h3h", "2s"},
		[2]string{"KcQc", "Kd"},
	)

	obs := Observe(deal, 0)
	if len(obs.Down) != 2 {
		t.Errorf("seat 0 sees %d own down cards, want 2", len(obs.Down))
	}
	if obs.Down[0] != poker.NewCard(poker.Two, poker.Hearts) {
		t.Errorf("seat 0 down cards = %v", obs.Down)
	}

	// Only up cards are visible for other seats.
	if len(obs.UpBySeat[1]) != 1 || obs.UpBySeat[1][0] != poker.NewCard(poker.King, poker.Diamonds) {
		t.Errorf("seat 1 board = %v", obs.UpBySeat[1])
	}

	data, err := json.Marshal(obs)
	if err != nil {
		t.Fatal(err)
	}
	// Seat 1's hole cards must not appear anywhere in the serialized view.
	for _, hole := range []string{"Kc", "Qc"} {
		if strings.Contains(string(data), `"`+hole+`"`) {
			t.Errorf("opponent hole card %s leaked into observation: %s", hole, data)
		}
	}
}

func TestObserveToCall(t *testing.T) {
	t.Parallel()
	deal := testDeal(t, VariantHigh,
		[2]string{"2h3h", "2s"},
		[2]string{"KcQc", "Kd"},
	)
	deal = mustApply(t, deal, Event{Type: EventBringIn, Seat: 0, Street: Third, Amount: 20})

	obs := Observe(deal, 1)
	if obs.ToCall != 20 {
		t.Errorf("to call = %d, want 20", obs.ToCall)
	}
	if obs.CurrentBet != 20 || obs.Pot != 40 {
		t.Errorf("counters = bet %d pot %d, want 20/40", obs.CurrentBet, obs.Pot)
	}

	// The bring-in seat owes nothing more against its own bet.
	obs = Observe(deal, 0)
	if obs.ToCall != 0 {
		t.Errorf("bring-in seat to call = %d, want 0", obs.ToCall)
	}
}

func TestObserveAllowedMatchesActor(t *testing.T) {
	t.Parallel()
	deal := testDeal(t, VariantHigh,
		[2]string{"2h3h", "2s"},
		[2]string{"KcQc", "Kd"},
	)
	obs := Observe(deal, deal.CurrentActor)
	if len(obs.Allowed) == 0 {
		t.Error("current actor should see allowed actions")
	}
}
