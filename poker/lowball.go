package poker

import "sort"

// LowRank is an ace-to-five low hand: five rank values sorted descending,
// aces counting 1. Smaller compares better; straights and flushes carry no
// penalty. A nil LowRank means no hand could be formed.
type LowRank []int

// CompareLow returns 1 if a is the better (lower) hand, -1 if b is, 0 on an
// exact tie.
func CompareLow(a, b LowRank) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// EvaluateRazz returns the best ace-to-five low hand from 5 to 7 cards.
// Distinct ranks are always preferred: a pair forces the next-best distinct
// rank into the hand, weakening it.
func EvaluateRazz(cards []Card) LowRank {
	if len(cards) < 5 {
		return nil
	}

	distinct, extras := lowValues(cards)

	picked := distinct
	if len(picked) > 5 {
		picked = picked[:5]
	}
	// Fewer than five distinct ranks forces paired cards into the hand.
	for i := 0; len(picked) < 5; i++ {
		picked = append(picked, extras[i])
	}

	out := make(LowRank, len(picked))
	copy(out, picked)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// EvaluateEightLow returns the qualifying eight-or-better low hand, or
// (nil, false) when no five distinct ranks of eight or lower exist.
func EvaluateEightLow(cards []Card) (LowRank, bool) {
	distinct, _ := lowValues(cards)

	qualifying := make([]int, 0, 5)
	for _, v := range distinct {
		if v <= 8 {
			qualifying = append(qualifying, v)
		}
	}
	if len(qualifying) < 5 {
		return nil, false
	}

	// qualifying is ascending; keep the five lowest.
	out := make(LowRank, 5)
	copy(out, qualifying[:5])
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out, true
}

// lowValues splits the cards' ace-low values into distinct ranks (ascending)
// and leftover duplicate copies (ascending).
func lowValues(cards []Card) (distinct, extras []int) {
	seen := make(map[int]int, len(cards))
	for _, c := range cards {
		seen[c.Rank.LowValue()]++
	}
	for v, n := range seen {
		distinct = append(distinct, v)
		for i := 1; i < n; i++ {
			extras = append(extras, v)
		}
	}
	sort.Ints(distinct)
	sort.Ints(extras)
	return distinct, extras
}
