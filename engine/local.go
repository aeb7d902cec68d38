// Package engine runs episodes between two agents on a shared board.
package engine

import (
	"fmt"
	"time"

	"nogo/agent"
	"nogo/experiments/metrics"
	"nogo/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MaxMoves bounds an episode; a NoGo game cannot outlast the board, and
// the extra turn lets the losing side report it has no move.
const MaxMoves = game.NumPoints + 1

// Result summarizes one finished episode.
type Result struct {
	ID       string
	Winner   game.Stone
	Moves    int
	Duration time.Duration
}

// SearchReporter is implemented by agents that expose per-decision
// search metrics; the engine records them when available.
type SearchReporter interface {
	LastSearch() metrics.SearchMetric
}

// Engine drives one local game between a black and a white agent.
type Engine struct {
	Board *game.Board
	Black agent.Agent
	White agent.Agent
}

func Local(black, white agent.Agent) (*Engine, error) {
	if black.Role() != game.Black {
		return nil, fmt.Errorf("black agent %q has role %s", black.Name(), black.Role())
	}
	if white.Role() != game.White {
		return nil, fmt.Errorf("white agent %q has role %s", white.Name(), white.Role())
	}
	return &Engine{
		Board: game.NewBoard(),
		Black: black,
		White: white,
	}, nil
}

// Run plays the episode to completion: agents alternate from black, and
// the first side to produce no legal move loses. It returns the result
// together with one record per move played.
func (e *Engine) Run() (Result, []metrics.MoveRecord) {
	id := uuid.NewString()
	start := time.Now()

	e.Black.OpenEpisode(id)
	e.White.OpenEpisode(id)

	log.Info().Str("game", id).Msgf("%s (black) vs %s (white) starting", e.Black.Name(), e.White.Name())

	var records []metrics.MoveRecord
	var winner game.Stone
	step := 0
	for ; step < MaxMoves; step++ {
		side := e.Board.Player()
		current := e.agent(side)

		move := current.TakeAction(e.Board)
		if move == game.NoMove {
			winner = side.Opponent()
			break
		}
		if !e.Board.Apply(move) {
			log.Warn().Str("game", id).Msgf("agent %s played illegal move %s", current.Name(), move)
			winner = side.Opponent()
			break
		}

		record := metrics.MoveRecord{
			Game: id,
			Step: step + 1,
			Side: side.String(),
			Move: move.String(),
		}
		if reporter, ok := current.(SearchReporter); ok {
			record.SearchMetric = reporter.LastSearch()
		}
		records = append(records, record)
	}

	e.Black.CloseEpisode(id)
	e.White.CloseEpisode(id)

	result := Result{
		ID:       id,
		Winner:   winner,
		Moves:    step,
		Duration: time.Since(start),
	}
	log.Info().Str("game", id).Msgf("%s wins after %d moves in %s", winner, result.Moves, result.Duration)
	return result, records
}

func (e *Engine) agent(side game.Stone) agent.Agent {
	if side == game.Black {
		return e.Black
	}
	return e.White
}
