package game

// Variant selects the ruleset for a deal
type Variant string

const (
	VariantHigh  Variant = "high"
	VariantRazz  Variant = "razz"
	VariantHiLo8 Variant = "hilo8"
)

// Valid reports whether v is a known variant
func (v Variant) Valid() bool {
	return v == VariantHigh || v == VariantRazz || v == VariantHiLo8
}

// Street represents a betting round, named for the number of cards each
// player holds
type Street int

const (
	Third Street = iota + 3
	Fourth
	Fifth
	Sixth
	Seventh
)

func (s Street) String() string {
	switch s {
	case Third:
		return "3rd"
	case Fourth:
		return "4th"
	case Fifth:
		return "5th"
	case Sixth:
		return "6th"
	case Seventh:
		return "7th"
	default:
		return "unknown"
	}
}

// MarshalText encodes the street as its display name
func (s Street) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a street display name
func (s *Street) UnmarshalText(text []byte) error {
	for st := Third; st <= Seventh; st++ {
		if st.String() == string(text) {
			*s = st
			return nil
		}
	}
	return errUnknownStreet(string(text))
}
