package game

import "strings"

// Board dimensions for 9x9 NoGo.
const (
	BoardSize = 9
	NumPoints = BoardSize * BoardSize
)

// Board is a NoGo position: a 9x9 grid plus the side to move. NoGo
// forbids captures and suicide, so stones are only ever added and every
// group on the board keeps at least one liberty. The side to move with
// no legal placement loses.
type Board struct {
	grid [NumPoints]Stone
	turn Stone
}

// NewBoard returns an empty board with black to move.
func NewBoard() *Board {
	return &Board{turn: Black}
}

func (b *Board) Player() Stone {
	return b.turn
}

// At returns the stone at a point.
func (b *Board) At(m Move) Stone {
	if !m.Valid() {
		return Empty
	}
	return b.grid[m]
}

// Apply places a stone for the side to move and passes the turn. It
// reports whether the placement was legal; an illegal placement leaves
// the board untouched.
func (b *Board) Apply(m Move) bool {
	if !b.Legal(m) {
		return false
	}
	b.grid[m] = b.turn
	b.turn = b.turn.Opponent()
	return true
}

// Legal reports whether the side to move may place at m: the point must
// be empty, the placement must not capture any opponent group, and it
// must not be suicide.
func (b *Board) Legal(m Move) bool {
	if !m.Valid() || b.grid[m] != Empty {
		return false
	}

	grid := b.grid
	grid[m] = b.turn

	opponent := b.turn.Opponent()
	for _, n := range neighbors(m) {
		if grid[n] == opponent && !hasLiberty(&grid, n) {
			return false // would capture
		}
	}
	return hasLiberty(&grid, m) // suicide otherwise
}

// LegalMoves returns every legal placement for the side to move. An
// empty result means the position is terminal and the side to move
// loses.
func (b *Board) LegalMoves() []Move {
	var moves []Move
	for m := Move(0); m < NumPoints; m++ {
		if b.Legal(m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// Clone returns an independent copy of the position.
func (b *Board) Clone() State {
	clone := *b
	return &clone
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := BoardSize - 1; row >= 0; row-- {
		for col := 0; col < BoardSize; col++ {
			switch b.grid[row*BoardSize+col] {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
			if col < BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func neighbors(m Move) []Move {
	var ns []Move
	col := int(m) % BoardSize
	if col > 0 {
		ns = append(ns, m-1)
	}
	if col < BoardSize-1 {
		ns = append(ns, m+1)
	}
	if m >= BoardSize {
		ns = append(ns, m-BoardSize)
	}
	if m < NumPoints-BoardSize {
		ns = append(ns, m+BoardSize)
	}
	return ns
}

// hasLiberty reports whether the group containing start has at least
// one adjacent empty point.
func hasLiberty(grid *[NumPoints]Stone, start Move) bool {
	color := grid[start]
	var visited [NumPoints]bool
	stack := []Move{start}
	visited[start] = true

	for len(stack) > 0 {
		m := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range neighbors(m) {
			switch grid[n] {
			case Empty:
				return true
			case color:
				if !visited[n] {
					visited[n] = true
					stack = append(stack, n)
				}
			}
		}
	}
	return false
}
