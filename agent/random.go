package agent

import (
	"time"

	"nogo/game"

	"golang.org/x/exp/rand"
)

// RandomPlayer is the trivial baseline: shuffle all board points and
// play the first legal one.
type RandomPlayer struct {
	base
	moves []game.Move
	rng   *rand.Rand
}

func NewRandomPlayer(options Options) (*RandomPlayer, error) {
	b, err := newBase("random", options)
	if err != nil {
		return nil, err
	}

	seed := options.Uint64("seed", uint64(time.Now().UnixNano()))
	return &RandomPlayer{
		base:  b,
		moves: game.Points(),
		rng:   rand.New(rand.NewSource(seed)),
	}, nil
}

func (p *RandomPlayer) TakeAction(b *game.Board) game.Move {
	p.rng.Shuffle(len(p.moves), func(i, j int) {
		p.moves[i], p.moves[j] = p.moves[j], p.moves[i]
	})
	for _, move := range p.moves {
		if b.Legal(move) {
			return move
		}
	}
	return game.NoMove
}
