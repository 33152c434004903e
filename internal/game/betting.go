package game

// RaiseCap is the maximum number of raises per street. A completion counts
// as the first raise.
const RaiseCap = 3

// AllowedActions returns the legal action set for the current actor. It is
// the single source of truth for UI and automation; ApplyEvent re-checks it
// defensively.
func AllowedActions(s *DealState) []EventType {
	if s.Finished || s.CurrentActor == NoSeat {
		return nil
	}

	if s.Street == Third {
		switch {
		case s.CurrentBet == 0:
			return []EventType{EventBringIn, EventComplete}
		case s.CurrentBet == s.Stakes.BringIn:
			// Bring-in posted but nobody has completed yet. Completing is
			// only open to a seat with nothing committed this street.
			actions := []EventType{EventCall, EventFold}
			if s.Players[s.CurrentActor].CommittedStreet == 0 {
				actions = append(actions, EventComplete)
			}
			return actions
		default:
			actions := []EventType{EventCall, EventFold}
			if s.RaiseCount < RaiseCap {
				actions = append(actions, EventRaise)
			}
			return actions
		}
	}

	if s.CurrentBet == 0 {
		return []EventType{EventCheck, EventBet}
	}
	actions := []EventType{EventCall, EventFold}
	if s.RaiseCount < RaiseCap {
		actions = append(actions, EventRaise)
	}
	return actions
}

// NextActor scans clockwise from the current actor for the next active
// seat. It returns false once nobody owes a response (the street is over).
func NextActor(s *DealState) (int, bool) {
	if s.PendingResponses <= 0 {
		return NoSeat, false
	}
	for i := 1; i <= s.PlayerCount; i++ {
		seat := (s.CurrentActor + i + s.PlayerCount) % s.PlayerCount
		if s.Players[seat].Active {
			return seat, true
		}
	}
	return NoSeat, false
}

// CheckStreetEnd reports whether the street's action is fully resolved,
// returning the system event to apply: a DealEnd when at most one seat
// remains or seventh street is resolved, a StreetAdvance for any earlier
// street. The event carries no ID or timestamp; the caller stamps it.
func CheckStreetEnd(s *DealState) (Event, bool) {
	if s.Finished {
		return Event{}, false
	}

	if s.ActiveCount() <= 1 {
		return Event{Type: EventDealEnd, Seat: NoSeat, Street: s.Street}, true
	}

	resolved := (s.CurrentBet > 0 && s.PendingResponses == 0) ||
		(s.CurrentBet == 0 && s.ChecksThisStreet == s.ActiveCount())
	if !resolved {
		return Event{}, false
	}

	if s.Street == Seventh {
		return Event{Type: EventDealEnd, Seat: NoSeat, Street: s.Street}, true
	}
	return Event{Type: EventStreetAdvance, Seat: NoSeat, Street: s.Street}, true
}
