package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUCTScore(t *testing.T) {
	t.Run("unvisited node scores infinity", func(t *testing.T) {
		got := uctScore(0, 0, Exploration, math.Log(100))

		require.True(t, math.IsInf(got, 1), "Unvisited node should beat any visited one")
	})

	t.Run("computing the score", func(t *testing.T) {
		lnN := math.Log(100)
		got := uctScore(5, 10, Exploration, lnN)

		expected := 5.0/10 + Exploration*math.Sqrt(lnN/10)
		require.InDelta(t, expected, got, 0.0001, "Should compute w/n + c*sqrt(ln(N)/n)")
	})

	t.Run("exploitation term grows with win rate", func(t *testing.T) {
		lnN := math.Log(100)

		require.Greater(t, uctScore(8, 10, Exploration, lnN), uctScore(5, 10, Exploration, lnN),
			"More wins over the same visits should score higher")
	})

	t.Run("exploration term shrinks with visits", func(t *testing.T) {
		lnN := math.Log(100)

		require.Greater(t, uctScore(0, 10, Exploration, lnN), uctScore(0, 20, Exploration, lnN),
			"More visits should reduce the exploration bonus")
	})

	t.Run("near-zero constant reduces to win rate", func(t *testing.T) {
		got := uctScore(3, 4, Exploitation, math.Log(1000))

		require.InDelta(t, 0.75, got, 1e-9, "Decision-time score should be the empirical win rate")
	})
}
