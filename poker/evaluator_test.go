package poker

import "testing"

func TestEvaluateHighClasses(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		cards   string
		class   HandClass
		kickers []int
	}{
		{"straight flush", "5h6h7h8h9h2cKd", StraightFlush, []int{9}},
		{"steel wheel", "Ah2h3h4h5hKcQd", StraightFlush, []int{5}},
		{"four of a kind", "9c9d9h9sKd2c3h", FourOfAKind, []int{9, 13}},
		{"full house", "KcKdKh7s7d2c3h", FullHouse, []int{13, 7}},
		{"two trips read as full house", "KcKdKh7s7d7h2c", FullHouse, []int{13, 7}},
		{"flush", "Ac9c7c5c2cKdQh", Flush, []int{14, 9, 7, 5, 2}},
		{"broadway straight", "TcJdQhKsAc2d3h", Straight, []int{14}},
		{"wheel straight", "Ac2d3h4s5cKdQh", Straight, []int{5}},
		{"three of a kind", "8c8d8hAcKd2s3h", ThreeOfAKind, []int{8, 14, 13}},
		{"two pair", "JcJdTsTh4c2d7h", TwoPair, []int{11, 10, 7}},
		{"pair", "QcQd9h7s5c2d3h", Pair, []int{12, 9, 7, 5}},
		{"high card", "AcJd9h7s5c3d2h", HighCard, []int{14, 11, 9, 7, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateHigh(MustParseCards(tt.cards))
			if got.Class != tt.class {
				t.Fatalf("class = %v, want %v", got.Class, tt.class)
			}
			if len(got.Kickers) != len(tt.kickers) {
				t.Fatalf("kickers = %v, want %v", got.Kickers, tt.kickers)
			}
			for i := range tt.kickers {
				if got.Kickers[i] != tt.kickers[i] {
					t.Fatalf("kickers = %v, want %v", got.Kickers, tt.kickers)
				}
			}
		})
	}
}

func TestEvaluateHighFiveCards(t *testing.T) {
	t.Parallel()
	got := EvaluateHigh(MustParseCards("Ah2h3h4h5h"))
	if got.Class != StraightFlush || got.Kickers[0] != 5 {
		t.Errorf("steel wheel on exactly 5 cards = %v", got)
	}
}

func TestCompareHigh(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"flush beats straight", "Ac9c7c5c2c", "TcJdQhKsAc", 1},
		{"higher pair wins", "QcQd9h7s5c", "JcJd9h7s5c", 1},
		{"kicker breaks pair tie", "QcQdAh7s5c", "QhQsKh7d5d", 1},
		{"exact tie chops", "QcQd9h7s5c", "QhQs9d7d5d", 0},
		{"broadway beats wheel", "TcJdQhKsAc", "Ad2d3h4s5s", 1},
		{"weaker loses", "2c3d5h7s9c", "AcJd9h7s5c", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := EvaluateHigh(MustParseCards(tt.a))
			b := EvaluateHigh(MustParseCards(tt.b))
			if got := CompareHigh(a, b); got != tt.want {
				t.Errorf("CompareHigh = %d, want %d", got, tt.want)
			}
			if got := CompareHigh(b, a); got != -tt.want {
				t.Errorf("CompareHigh reversed = %d, want %d", got, -tt.want)
			}
		})
	}
}

func TestEvaluateExposed(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
		class HandClass
	}{
		{"single card", "Kd", HighCard},
		{"open pair", "8c8d", Pair},
		{"trips on board", "8c8d8h", ThreeOfAKind},
		{"two pair on four cards", "8c8dJhJs", TwoPair},
		{"four to a flush is still high card", "2h5h9hKh", HighCard},
		{"four to a straight is still high card", "5c6d7h8s", HighCard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateExposed(MustParseCards(tt.cards))
			if got.Class != tt.class {
				t.Errorf("class = %v, want %v", got.Class, tt.class)
			}
		})
	}
}

func TestEvaluateExposedOrdering(t *testing.T) {
	t.Parallel()
	// An open pair opens the betting over any unpaired board.
	pair := EvaluateExposed(MustParseCards("2c2d"))
	aceHigh := EvaluateExposed(MustParseCards("AcKd"))
	if CompareHigh(pair, aceHigh) != 1 {
		t.Error("open pair should outrank ace high board")
	}

	// Equal classes fall to the kickers.
	kingHigh := EvaluateExposed(MustParseCards("Kc4d"))
	queenHigh := EvaluateExposed(MustParseCards("Qc4h"))
	if CompareHigh(kingHigh, queenHigh) != 1 {
		t.Error("king high board should outrank queen high board")
	}
}

func TestHandClassString(t *testing.T) {
	t.Parallel()
	if StraightFlush.String() != "Straight Flush" {
		t.Errorf("unexpected name %q", StraightFlush.String())
	}
	if HighCard.String() != "High Card" {
		t.Errorf("unexpected name %q", HighCard.String())
	}
}
