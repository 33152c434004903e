package game

import (
	"sort"

	"github.com/lox/sevenstud/poker"
)

// ShowdownResult names the winning seats per side of the pot. In Razz the
// single winner list travels in WinnersHigh even though the ranking is a low
// ranking; downstream plumbing (pot split, summaries) is uniform across
// variants and this naming is part of the interface contract.
type ShowdownResult struct {
	WinnersHigh []int `json:"winnersHigh"`
	WinnersLow  []int `json:"winnersLow,omitempty"`
}

// ResolveShowdown ranks each seat's known cards under the variant's ruleset
// and returns every seat tied for the best score. Ties are exact equality of
// class and kickers, producing chopped pots.
func ResolveShowdown(variant Variant, known map[int][]poker.Card) ShowdownResult {
	seats := make([]int, 0, len(known))
	for seat := range known {
		seats = append(seats, seat)
	}
	sort.Ints(seats)

	switch variant {
	case VariantRazz:
		return ShowdownResult{WinnersHigh: lowWinners(seats, known)}
	case VariantHiLo8:
		return ShowdownResult{
			WinnersHigh: highWinners(seats, known),
			WinnersLow:  eightLowWinners(seats, known),
		}
	default:
		return ShowdownResult{WinnersHigh: highWinners(seats, known)}
	}
}

func highWinners(seats []int, known map[int][]poker.Card) []int {
	var winners []int
	var best poker.HighRank
	for _, seat := range seats {
		rank := poker.EvaluateHigh(known[seat])
		if len(winners) == 0 {
			winners, best = []int{seat}, rank
			continue
		}
		switch poker.CompareHigh(rank, best) {
		case 1:
			winners, best = []int{seat}, rank
		case 0:
			winners = append(winners, seat)
		}
	}
	return winners
}

func lowWinners(seats []int, known map[int][]poker.Card) []int {
	var winners []int
	var best poker.LowRank
	for _, seat := range seats {
		rank := poker.EvaluateRazz(known[seat])
		if len(winners) == 0 {
			winners, best = []int{seat}, rank
			continue
		}
		switch poker.CompareLow(rank, best) {
		case 1:
			winners, best = []int{seat}, rank
		case 0:
			winners = append(winners, seat)
		}
	}
	return winners
}

// eightLowWinners returns the qualifying low winners, or nil when no seat
// holds five distinct ranks of eight or lower and the high side scoops.
func eightLowWinners(seats []int, known map[int][]poker.Card) []int {
	var winners []int
	var best poker.LowRank
	for _, seat := range seats {
		rank, ok := poker.EvaluateEightLow(known[seat])
		if !ok {
			continue
		}
		if len(winners) == 0 {
			winners, best = []int{seat}, rank
			continue
		}
		switch poker.CompareLow(rank, best) {
		case 1:
			winners, best = []int{seat}, rank
		case 0:
			winners = append(winners, seat)
		}
	}
	return winners
}
