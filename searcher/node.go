package searcher

import "nogo/game"

// node is one search-tree vertex. A node owns its children; the parent
// reference is only walked upward during backpropagation and never used
// for ownership. The whole tree is dropped when the decision that built
// it returns.
type node struct {
	parent   *node
	children []*node
	mover    game.Stone // side that made the move leading here
	move     game.Move  // game.NoMove for the root
	visits   int
	wins     int
}

func newRoot(agent game.Stone) *node {
	// The root stands for "the opponent just moved, it is our turn".
	return &node{mover: agent.Opponent(), move: game.NoMove}
}

func (n *node) unvisited() bool {
	return n.visits == 0
}

func (n *node) addChild(move game.Move) *node {
	child := &node{
		parent: n,
		mover:  n.mover.Opponent(),
		move:   move,
	}
	n.children = append(n.children, child)
	return child
}

// backpropagate walks from leaf to the root, crediting one visit and
// the rollout outcome to every node on the path. It reports failure on
// a nil leaf instead of faulting: that means the caller mismanaged the
// select/expand contract.
func backpropagate(leaf *node, outcome int) bool {
	if leaf == nil {
		return false
	}
	for n := leaf; n != nil; n = n.parent {
		n.visits++
		n.wins += outcome
	}
	return true
}
