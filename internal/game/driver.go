package game

import "fmt"

// RunDeal pumps a live deal to completion: each turn the current actor's
// agent is shown its observation and must return one of the allowed
// actions, which is re-validated and applied; between turns the street-end
// condition is checked and the resulting system events applied. The deal is
// then settled with FinishDeal.
//
// Every seat in the deal must have an agent. Human play drives the same
// loop manually instead of calling RunDeal.
func (o *Orchestrator) RunDeal(g *GameState, agents map[int]Agent) (*GameState, error) {
	deal := g.CurrentDeal
	if deal == nil {
		return nil, fmt.Errorf("no deal in progress")
	}

	for !deal.Finished {
		if deal.CurrentActor == NoSeat {
			ev, ok := CheckStreetEnd(deal)
			if !ok {
				return nil, fmt.Errorf("deal %s stalled on %s street with no actor", deal.DealID, deal.Street)
			}
			var err error
			deal, err = ApplyEvent(deal, o.Stamp(ev))
			if err != nil {
				return nil, err
			}
			continue
		}

		seat := deal.CurrentActor
		agent, ok := agents[seat]
		if !ok {
			return nil, fmt.Errorf("no agent for seat %d", seat)
		}

		obs := Observe(deal, seat)
		kind, err := agent.Act(obs)
		if err != nil {
			return nil, fmt.Errorf("agent for seat %d: %w", seat, err)
		}
		if !contains(obs.Allowed, kind) {
			return nil, fmt.Errorf("agent for seat %d chose %s: %w", seat, kind, ErrIllegalAction)
		}

		ev := o.Stamp(Event{
			Type:   kind,
			Seat:   seat,
			Street: deal.Street,
			Amount: TargetAmount(deal, kind),
		})
		deal, err = ApplyEvent(deal, ev)
		if err != nil {
			return nil, err
		}

		o.logger.Debug("action applied",
			"deal", deal.DealID, "street", ev.Street, "seat", seat, "action", kind, "pot", deal.Pot)
	}

	out := g.clone()
	out.CurrentDeal = deal
	return o.FinishDeal(out)
}

func contains(kinds []EventType, kind EventType) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
