package searcher

import (
	"math"
	"time"

	"nogo/experiments/metrics"
	"nogo/game"

	"golang.org/x/exp/rand"
)

const DefaultSimulations = 1000

type Option func(m *MCTS)

// WithSimulations sets the per-decision simulation budget.
func WithSimulations(simulations int) Option {
	return func(m *MCTS) {
		if simulations > 0 {
			m.simulations = simulations
		}
	}
}

// WithSeed makes the search reproducible: the seeded source drives both
// expansion order and rollout moves.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithExploration overrides the search-loop exploration constant.
func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

// WithCollector attaches a metrics collector to each decision.
func WithCollector(collector metrics.Collector) Option {
	return func(m *MCTS) {
		if collector != nil {
			m.collector = collector
		}
	}
}

// MCTS decides moves for one fixed side by Monte-Carlo tree search:
// a fresh tree per decision, a fixed budget of select/expand/rollout/
// backpropagate iterations, then the root child with the best win rate.
type MCTS struct {
	player      game.Stone
	moves       []game.Move // shared candidate set, shuffled in place per use
	simulations int
	exploration float64
	rng         *rand.Rand
	collector   metrics.Collector
	lastMetric  metrics.SearchMetric
}

func New(player game.Stone, options ...Option) *MCTS {
	m := &MCTS{
		player:      player,
		moves:       game.Points(),
		simulations: DefaultSimulations,
		exploration: Exploration,
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		collector:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove runs one full decision from state and returns the move to
// play, or game.NoMove when the side to move has no legal placement.
// The caller's state is never mutated: every simulation works on its
// own clone.
func (m *MCTS) FindMove(state game.State) game.Move {
	root := m.search(state)

	best := m.bestChild(state.Clone(), root, root, Exploitation)
	if best == nil {
		return game.NoMove
	}
	return best.move
}

// search grows a fresh tree from state by running the configured number
// of simulations and returns its root.
func (m *MCTS) search(state game.State) *node {
	m.collector.Start()
	root := newRoot(m.player)

	for i := 0; i < m.simulations; i++ {
		board := state.Clone()

		leaf := m.selectLeaf(board, root)
		if leaf.unvisited() {
			m.expand(board, leaf)
			// Obtain the rollout position. During descent the leaf's
			// move was already played, so this is a legality no-op; it
			// also covers the root's NoMove sentinel.
			board.Apply(leaf.move)
		}
		outcome := m.rollout(board)
		backpropagate(leaf, outcome)

		m.collector.AddSimulation()
	}

	m.lastMetric = m.collector.Complete()
	return root
}

// LastMetric returns the metrics of the most recent FindMove call.
func (m *MCTS) LastMetric() metrics.SearchMetric {
	return m.lastMetric
}

// selectLeaf descends from the root while the current node has
// children, advancing the working board by each chosen child's move,
// and returns the first childless node.
func (m *MCTS) selectLeaf(state game.State, root *node) *node {
	n := root
	for len(n.children) > 0 {
		n = m.bestChild(state, n, root, m.exploration)
	}
	return n
}

// bestChild picks the child maximizing the UCT score and plays its move
// on the working board. The visit total in the exploration term is the
// overall root's, not the immediate parent's. Ties keep the first child
// encountered, so enumeration order is part of the contract. Returns
// nil on a childless node; callers treat that as a terminal signal.
func (m *MCTS) bestChild(state game.State, n, root *node, c float64) *node {
	if len(n.children) == 0 {
		return nil
	}

	lnN := 0.0
	if root.visits > 0 {
		lnN = math.Log(float64(root.visits))
	}

	var best *node
	maxScore := math.Inf(-1)
	for _, child := range n.children {
		score := uctScore(child.wins, child.visits, c, lnN)
		if score > maxScore {
			maxScore = score
			best = child
		}
	}

	state.Apply(best.move)
	return best
}

// expand materializes every legal child of leaf in one step, probing
// each candidate against a throwaway copy of the snapshot. It runs at
// most once per leaf and reports whether the position is terminal (no
// legal child: in NoGo the side to move loses).
func (m *MCTS) expand(state game.State, leaf *node) bool {
	if len(leaf.children) > 0 { // already expanded
		return false
	}
	for _, move := range m.shuffled() {
		probe := state.Clone()
		if probe.Apply(move) {
			leaf.addChild(move)
		}
	}
	return len(leaf.children) == 0
}

// rollout plays uniformly-random legal moves to a terminal position.
// The outcome is anchored to the searcher's own side: 0 when the agent
// is the side left without a move (it loses), 1 otherwise. The value is
// propagated unflipped through every tree level.
func (m *MCTS) rollout(state game.State) int {
	for {
		played := false
		for _, move := range m.shuffled() {
			if state.Apply(move) {
				m.collector.AddRolloutMove()
				played = true
				break
			}
		}
		if !played {
			break
		}
	}

	if state.Player() == m.player {
		return 0
	}
	return 1
}

// shuffled reorders the shared candidate set in place and returns it.
func (m *MCTS) shuffled() []game.Move {
	m.rng.Shuffle(len(m.moves), func(i, j int) {
		m.moves[i], m.moves[j] = m.moves[j], m.moves[i]
	})
	return m.moves
}
