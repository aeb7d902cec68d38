package agent

import (
	"nogo/experiments/metrics"
	"nogo/game"
	"nogo/searcher"
)

// MCTSPlayer wraps the Monte-Carlo tree searcher as an agent. The "T"
// option sets the simulation budget (default 1000), "seed" fixes the
// random source for reproducible decisions.
type MCTSPlayer struct {
	base
	search *searcher.MCTS
}

func NewMCTSPlayer(options Options) (*MCTSPlayer, error) {
	b, err := newBase("mcts", options)
	if err != nil {
		return nil, err
	}

	searchOptions := []searcher.Option{
		searcher.WithSimulations(options.Int("T", searcher.DefaultSimulations)),
		searcher.WithCollector(metrics.NewCollector()),
	}
	if options.Has("seed") {
		searchOptions = append(searchOptions, searcher.WithSeed(options.Uint64("seed", 0)))
	}

	return &MCTSPlayer{
		base:   b,
		search: searcher.New(b.role, searchOptions...),
	}, nil
}

func (p *MCTSPlayer) TakeAction(b *game.Board) game.Move {
	return p.search.FindMove(b)
}

// LastSearch exposes the metrics of the most recent decision; the
// engine picks these up for move records.
func (p *MCTSPlayer) LastSearch() metrics.SearchMetric {
	return p.search.LastMetric()
}
