package game

// State is the contract the searcher plays against. Apply mutates the
// state in place and reports legality; callers probe speculative moves
// on a Clone, never on the original.
type State interface {
	// Player returns the side to move.
	Player() Stone
	// Apply places a stone for the side to move. It reports whether the
	// move was legal; an illegal move leaves the state untouched.
	Apply(Move) bool
	// Clone returns an independent deep copy.
	Clone() State
}
