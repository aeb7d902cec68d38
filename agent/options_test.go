package agent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	t.Run("splitting key=value pairs", func(t *testing.T) {
		got := ParseOptions("name=mcts role=black T=2000 seed=7")

		require.Equal(t, "mcts", got.String("name", ""))
		require.Equal(t, "black", got.String("role", ""))
		require.Equal(t, 2000, got.Int("T", 0))
		require.Equal(t, uint64(7), got.Uint64("seed", 0))
	})

	t.Run("tolerating extra whitespace", func(t *testing.T) {
		got := ParseOptions("  role=white   T=5 ")

		require.Equal(t, "white", got.String("role", ""))
		require.Equal(t, 5, got.Int("T", 0))
	})

	t.Run("falling back on missing keys", func(t *testing.T) {
		got := ParseOptions("role=black")

		require.Equal(t, "random", got.String("name", "random"))
		require.Equal(t, 1000, got.Int("T", 1000))
		require.False(t, got.Has("seed"))
	})

	t.Run("falling back on malformed numbers", func(t *testing.T) {
		got := ParseOptions("T=lots")

		require.Equal(t, 1000, got.Int("T", 1000))
	})
}
