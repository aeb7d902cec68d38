package game

import "fmt"

// Stone is the content of a board point and doubles as a player side.
type Stone uint8

const (
	Empty Stone = iota
	Black
	White
)

func (s Stone) Opponent() Stone {
	switch s {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (s Stone) String() string {
	switch s {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

// ParseStone maps a role string to a playing side.
func ParseStone(role string) (Stone, error) {
	switch role {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	}
	return Empty, fmt.Errorf("invalid role: %q", role)
}
