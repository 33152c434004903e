package poker

import (
	"encoding/json"
	"testing"
)

func TestCardString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		card Card
		want string
	}{
		{NewCard(Ace, Spades), "As"},
		{NewCard(Two, Clubs), "2c"},
		{NewCard(Ten, Diamonds), "Td"},
		{NewCard(Queen, Hearts), "Qh"},
		{NewCard(Nine, Clubs), "9c"},
	}
	for _, tt := range tests {
		if got := tt.card.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		{"ace of spades", "As", NewCard(Ace, Spades), false},
		{"lowercase accepted", "kd", NewCard(King, Diamonds), false},
		{"ten with T notation", "Tc", NewCard(Ten, Clubs), false},
		{"number card", "7h", NewCard(Seven, Hearts), false},
		{"invalid rank", "Xs", Card{}, true},
		{"invalid suit", "Ax", Card{}, true},
		{"too short", "A", Card{}, true},
		{"too long", "Asd", Card{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCard(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseCard(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCardRoundTrip(t *testing.T) {
	t.Parallel()
	for _, card := range NewDeck() {
		parsed, err := ParseCard(card.String())
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", card.String(), err)
		}
		if parsed != card {
			t.Errorf("round trip of %v gave %v", card, parsed)
		}
	}
}

func TestMustParseCards(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("AsKd7c")
	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}
	if cards[0] != NewCard(Ace, Spades) || cards[1] != NewCard(King, Diamonds) || cards[2] != NewCard(Seven, Clubs) {
		t.Errorf("unexpected cards %v", cards)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic on odd-length input")
		}
	}()
	MustParseCards("AsK")
}

func TestRankLowValue(t *testing.T) {
	t.Parallel()
	if got := Ace.LowValue(); got != 1 {
		t.Errorf("Ace.LowValue() = %d, want 1", got)
	}
	if got := King.LowValue(); got != 13 {
		t.Errorf("King.LowValue() = %d, want 13", got)
	}
	if got := Two.LowValue(); got != 2 {
		t.Errorf("Two.LowValue() = %d, want 2", got)
	}
}

func TestCardJSON(t *testing.T) {
	t.Parallel()
	data, err := json.Marshal(NewCard(Ace, Spades))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"As"` {
		t.Errorf("marshalled to %s, want \"As\"", data)
	}

	var card Card
	if err := json.Unmarshal([]byte(`"7d"`), &card); err != nil {
		t.Fatal(err)
	}
	if card != NewCard(Seven, Diamonds) {
		t.Errorf("unmarshalled to %v", card)
	}

	if err := json.Unmarshal([]byte(`"zz"`), &card); err == nil {
		t.Error("expected error for invalid card code")
	}
}

func TestSuitOrdering(t *testing.T) {
	t.Parallel()
	// Bring-in tie-breaks depend on this exact ordering.
	if !(Clubs < Diamonds && Diamonds < Hearts && Hearts < Spades) {
		t.Error("suit ordering must be clubs < diamonds < hearts < spades")
	}
}
