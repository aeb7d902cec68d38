package engine

import (
	"testing"

	"nogo/agent"
	"nogo/game"

	"github.com/stretchr/testify/require"
)

func TestLocal(t *testing.T) {
	t.Run("rejecting mismatched roles", func(t *testing.T) {
		black, err := agent.New("role=white")
		require.NoError(t, err)
		white, err := agent.New("role=white")
		require.NoError(t, err)

		_, err = Local(black, white)

		require.Error(t, err, "Black seat requires a black-role agent")
	})
}

func TestRun(t *testing.T) {
	t.Run("playing random agents to completion", func(t *testing.T) {
		black, err := agent.New("role=black seed=21")
		require.NoError(t, err)
		white, err := agent.New("role=white seed=22")
		require.NoError(t, err)
		e, err := Local(black, white)
		require.NoError(t, err)

		result, records := e.Run()

		require.Contains(t, []game.Stone{game.Black, game.White}, result.Winner,
			"A finished game has a winner")
		require.Positive(t, result.Moves, "Someone must have moved")
		require.LessOrEqual(t, result.Moves, game.NumPoints)
		require.Len(t, records, result.Moves, "One record per played move")
		for i, record := range records {
			require.Equal(t, result.ID, record.Game)
			require.Equal(t, i+1, record.Step, "Steps should be sequential")
		}
		require.Empty(t, e.Board.LegalMoves(), "Loser should have been out of moves")
		require.Equal(t, result.Winner, e.Board.Player().Opponent(),
			"The side left to move is the loser")
	})

	t.Run("recording mcts search metrics", func(t *testing.T) {
		black, err := agent.New("name=mcts role=black T=20 seed=3")
		require.NoError(t, err)
		white, err := agent.New("role=white seed=4")
		require.NoError(t, err)
		e, err := Local(black, white)
		require.NoError(t, err)

		result, records := e.Run()

		require.Contains(t, []game.Stone{game.Black, game.White}, result.Winner)
		for _, record := range records {
			if record.Side == game.Black.String() {
				require.Equal(t, 20, record.Simulations, "MCTS moves should carry search metrics")
			} else {
				require.Zero(t, record.Simulations, "Baseline moves have no search metrics")
			}
		}
	})
}
