package poker

import "sort"

// HandClass enumerates the categories of high poker hands ordered from
// weakest to strongest.
type HandClass uint8

const (
	HighCard HandClass = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable class description
func (c HandClass) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HighRank is the strength of a high hand: a class plus an ordered
// (descending) kicker list for tie-breaks within the class. Two HighRanks
// compare equal exactly when class and kickers are identical, which is what
// makes chopped pots possible.
type HighRank struct {
	Class   HandClass `json:"class"`
	Kickers []int     `json:"kickers"`
}

// CompareHigh returns 1 if a beats b, -1 if b beats a, 0 on an exact tie.
func CompareHigh(a, b HighRank) int {
	if a.Class != b.Class {
		if a.Class > b.Class {
			return 1
		}
		return -1
	}
	for i := 0; i < len(a.Kickers) && i < len(b.Kickers); i++ {
		if a.Kickers[i] != b.Kickers[i] {
			if a.Kickers[i] > b.Kickers[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// EvaluateHigh returns the best 5-card high hand rank from 5 to 7 cards.
func EvaluateHigh(cards []Card) HighRank {
	counts := rankCounts(cards)

	// A 7-card hand holds at most one suit with 5+ cards.
	if flushCards := flushSuitCards(cards); flushCards != nil {
		if high := straightHigh(ranksPresent(flushCards)); high > 0 {
			return HighRank{Class: StraightFlush, Kickers: []int{high}}
		}
		tops := topRanks(ranksPresent(flushCards), 5)
		return HighRank{Class: Flush, Kickers: tops}
	}

	quads := ranksWithCount(counts, 4)
	if len(quads) > 0 {
		quad := quads[0]
		kicker := bestKicker(counts, []int{quad})
		return HighRank{Class: FourOfAKind, Kickers: []int{quad, kicker}}
	}

	trips := ranksWithCount(counts, 3)
	pairs := ranksWithCount(counts, 2)
	if len(trips) > 0 {
		trip := trips[0]
		// A second set fills in as the pair of a full house.
		pairCandidates := append([]int{}, pairs...)
		if len(trips) > 1 {
			pairCandidates = append(pairCandidates, trips[1])
		}
		if len(pairCandidates) > 0 {
			sort.Sort(sort.Reverse(sort.IntSlice(pairCandidates)))
			return HighRank{Class: FullHouse, Kickers: []int{trip, pairCandidates[0]}}
		}
	}

	if high := straightHigh(ranksPresent(cards)); high > 0 {
		return HighRank{Class: Straight, Kickers: []int{high}}
	}

	if len(trips) > 0 {
		trip := trips[0]
		kickers := bestKickers(counts, []int{trip}, 2)
		return HighRank{Class: ThreeOfAKind, Kickers: append([]int{trip}, kickers...)}
	}

	if len(pairs) >= 2 {
		high, low := pairs[0], pairs[1]
		kicker := bestKicker(counts, []int{high, low})
		return HighRank{Class: TwoPair, Kickers: []int{high, low, kicker}}
	}

	if len(pairs) == 1 {
		pair := pairs[0]
		kickers := bestKickers(counts, []int{pair}, 3)
		return HighRank{Class: Pair, Kickers: append([]int{pair}, kickers...)}
	}

	return HighRank{Class: HighCard, Kickers: bestKickers(counts, nil, 5)}
}

// EvaluateExposed ranks a partial exposed board (1-4 up cards) for
// first-to-act ordering. Straights and flushes are not read on boards of
// fewer than five cards; only multiples and high cards count.
func EvaluateExposed(cards []Card) HighRank {
	counts := rankCounts(cards)

	if quads := ranksWithCount(counts, 4); len(quads) > 0 {
		return HighRank{Class: FourOfAKind, Kickers: quads[:1]}
	}
	if trips := ranksWithCount(counts, 3); len(trips) > 0 {
		kickers := bestKickers(counts, []int{trips[0]}, 1)
		return HighRank{Class: ThreeOfAKind, Kickers: append([]int{trips[0]}, kickers...)}
	}
	pairs := ranksWithCount(counts, 2)
	if len(pairs) >= 2 {
		return HighRank{Class: TwoPair, Kickers: []int{pairs[0], pairs[1]}}
	}
	if len(pairs) == 1 {
		kickers := bestKickers(counts, []int{pairs[0]}, 2)
		return HighRank{Class: Pair, Kickers: append([]int{pairs[0]}, kickers...)}
	}
	return HighRank{Class: HighCard, Kickers: bestKickers(counts, nil, len(cards))}
}

// rankCounts tallies how many of each rank value (2-14) appear.
func rankCounts(cards []Card) map[int]int {
	counts := make(map[int]int, len(cards))
	for _, c := range cards {
		counts[int(c.Rank)]++
	}
	return counts
}

// ranksWithCount returns rank values appearing exactly n times, descending.
func ranksWithCount(counts map[int]int, n int) []int {
	var ranks []int
	for r, c := range counts {
		if c == n {
			ranks = append(ranks, r)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
	return ranks
}

// ranksPresent returns the distinct rank values among cards.
func ranksPresent(cards []Card) map[int]bool {
	present := make(map[int]bool, len(cards))
	for _, c := range cards {
		present[int(c.Rank)] = true
	}
	return present
}

// flushSuitCards returns the cards of a suit holding 5+ cards, or nil.
func flushSuitCards(cards []Card) []Card {
	var bySuit [4][]Card
	for _, c := range cards {
		bySuit[c.Suit] = append(bySuit[c.Suit], c)
	}
	for _, suited := range bySuit {
		if len(suited) >= 5 {
			return suited
		}
	}
	return nil
}

// straightHigh returns the high rank value of the best straight among the
// present ranks, 0 if none. The wheel (A-2-3-4-5) reads as a 5-high straight.
func straightHigh(present map[int]bool) int {
	for high := int(Ace); high >= int(Six); high-- {
		run := true
		for r := high - 4; r <= high; r++ {
			if !present[r] {
				run = false
				break
			}
		}
		if run {
			return high
		}
	}
	if present[int(Ace)] && present[2] && present[3] && present[4] && present[5] {
		return 5
	}
	return 0
}

// topRanks returns the n highest distinct rank values present, descending.
func topRanks(present map[int]bool, n int) []int {
	var ranks []int
	for r := range present {
		ranks = append(ranks, r)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
	if len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks
}

// bestKicker returns the highest rank value not in used.
func bestKicker(counts map[int]int, used []int) int {
	kickers := bestKickers(counts, used, 1)
	if len(kickers) == 0 {
		return 0
	}
	return kickers[0]
}

// bestKickers returns the n highest rank values not in used, descending.
func bestKickers(counts map[int]int, used []int, n int) []int {
	excluded := make(map[int]bool, len(used))
	for _, r := range used {
		excluded[r] = true
	}
	var ranks []int
	for r := range counts {
		if !excluded[r] {
			ranks = append(ranks, r)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
	if len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks
}
