package game

import "sort"

// DistributePot splits the pot among the winner lists, exact to the chip:
// an even floor split with the remainder handed out one chip at a time by
// ascending seat index. A qualifying low in hi/lo splits the pot in half
// first, with the odd chip going to the high side. The returned shares are
// keyed by external player identity and always sum to pot.
func DistributePot(variant Variant, pot int, winnersHigh, winnersLow []int, seatOrder []string) map[string]int {
	shares := make(map[string]int)

	if variant == VariantHiLo8 && len(winnersLow) > 0 {
		lowPot := pot / 2
		hiPot := pot - lowPot
		splitEven(hiPot, winnersHigh, seatOrder, shares)
		splitEven(lowPot, winnersLow, seatOrder, shares)
		return shares
	}

	splitEven(pot, winnersHigh, seatOrder, shares)
	return shares
}

func splitEven(amount int, winners []int, seatOrder []string, shares map[string]int) {
	if len(winners) == 0 || amount <= 0 {
		return
	}

	seats := append([]int{}, winners...)
	sort.Ints(seats)

	share := amount / len(seats)
	remainder := amount % len(seats)
	for i, seat := range seats {
		s := share
		if i < remainder {
			s++
		}
		shares[seatOrder[seat]] += s
	}
}

// CalcDeltaStacks returns each external player's net chip movement for the
// deal: pot share minus everything they committed.
func CalcDeltaStacks(s *DealState, potShare map[string]int) map[string]int {
	deltas := make(map[string]int, len(s.Players))
	for _, p := range s.Players {
		id := s.SeatOrder[p.Seat]
		deltas[id] = potShare[id] - p.CommittedTotal
	}
	return deltas
}
