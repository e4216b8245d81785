package core

// Side is one of the two players. The zero value is White, which moves first.
type Side byte

const (
	White Side = iota
	Black
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

func (s Side) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "-"
	}
}

// Short returns the single-letter form used in API responses ("w" or "b").
func (s Side) Short() string {
	switch s {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		return "-"
	}
}
