// Package game implements one playable deal of seven-card stud in three
// variants: high, Razz (ace-to-five lowball), and eight-or-better hi/lo
// split.
//
// The engine is a synchronous, event-driven state machine. A DealState is an
// immutable aggregate: the only way it changes is ApplyEvent, which returns a
// new state and never mutates the one it was given. Callers holding an old
// state never observe a half-applied transition.
//
// The flow for one deal:
//
//	orch := NewOrchestrator(quartz.NewReal(), logger)
//	g, _ = orch.StartNewDeal(g, params)   // antes posted, third street dealt
//	for !g.CurrentDeal.Finished {
//	    // AllowedActions -> agent picks one -> ApplyEvent
//	    // CheckStreetEnd -> StreetAdvance / DealEnd events
//	}
//	g, _ = orch.FinishDeal(g)             // showdown, pot split, scores
//
// Betting follows fixed-limit stud rules: a bring-in opens third street, a
// completion raises it to the small bet, raises are capped at three per
// street, and the bet size doubles from fifth street on.
package game
