package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/coder/quartz"
)

type fixedAgent struct {
	kind EventType
}

func (a fixedAgent) Act(Observation) (EventType, error) {
	return a.kind, nil
}

func TestRunDealNoDealInProgress(t *testing.T) {
	t.Parallel()
	orch := NewOrchestrator(quartz.NewMock(t), nil)
	if _, err := orch.RunDeal(testGame("alice", "bob"), nil); err == nil {
		t.Error("expected error with no deal in progress")
	}
}

func TestRunDealMissingAgent(t *testing.T) {
	t.Parallel()
	players := []string{"alice", "bob"}
	orch := NewOrchestrator(quartz.NewMock(t), nil)

	g, err := orch.StartNewDeal(testGame(players...), testParams("missing-agent", players))
	if err != nil {
		t.Fatal(err)
	}

	_, err = orch.RunDeal(g, map[int]Agent{})
	if err == nil || !strings.Contains(err.Error(), "no agent for seat") {
		t.Errorf("expected missing-agent error, got %v", err)
	}
}

func TestRunDealRejectsDisallowedChoice(t *testing.T) {
	t.Parallel()
	players := []string{"alice", "bob"}
	orch := NewOrchestrator(quartz.NewMock(t), nil)

	g, err := orch.StartNewDeal(testGame(players...), testParams("rogue-agent", players))
	if err != nil {
		t.Fatal(err)
	}

	// Checking is never legal on third street.
	agents := map[int]Agent{
		0: fixedAgent{kind: EventCheck},
		1: fixedAgent{kind: EventCheck},
	}
	_, err = orch.RunDeal(g, agents)
	if !errors.Is(err, ErrIllegalAction) {
		t.Errorf("expected ErrIllegalAction, got %v", err)
	}
}

func TestRunDealFoldOutSettles(t *testing.T) {
	t.Parallel()
	players := []string{"alice", "bob"}
	orch := NewOrchestrator(quartz.NewMock(t), nil)

	g, err := orch.StartNewDeal(testGame(players...), testParams("everyone-folds", players))
	if err != nil {
		t.Fatal(err)
	}
	bringIn := g.CurrentDeal.BringInSeat

	// The bring-in seat must post; the other folds immediately.
	agents := map[int]Agent{
		bringIn:     passiveAgent{},
		1 - bringIn: fixedAgent{kind: EventFold},
	}
	g, err = orch.RunDeal(g, agents)
	if err != nil {
		t.Fatal(err)
	}

	summary := g.History[0]
	if len(summary.WinnersHigh) != 1 || summary.WinnersHigh[0] != bringIn {
		t.Errorf("winners = %v, want the bring-in seat %d", summary.WinnersHigh, bringIn)
	}
	// The survivor wins the opponent's ante.
	if summary.DeltaStacks[players[bringIn]] != testStakes.Ante {
		t.Errorf("winner delta = %d, want %d", summary.DeltaStacks[players[bringIn]], testStakes.Ante)
	}
}
