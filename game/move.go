package game

import "fmt"

// Move is a board point by index, row-major from the lower-left corner.
// The stone color is not part of the move: a move always places a stone
// for the side to move.
type Move int

// NoMove signals that the player has no legal placement and forfeits.
const NoMove Move = -1

func (m Move) Valid() bool {
	return m >= 0 && m < NumPoints
}

// columns skip 'I' following Go coordinate convention
const columns = "ABCDEFGHJ"

func (m Move) String() string {
	if !m.Valid() {
		return "pass"
	}
	col := int(m) % BoardSize
	row := int(m) / BoardSize
	return fmt.Sprintf("%c%d", columns[col], row+1)
}

// Points returns every board point as a candidate move.
func Points() []Move {
	moves := make([]Move, NumPoints)
	for i := range moves {
		moves[i] = Move(i)
	}
	return moves
}
