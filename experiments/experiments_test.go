package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("loading a valid config", func(t *testing.T) {
		path := writeConfig(t, `
name: strength
games: 3
matchups:
  - black: name=mcts role=black T=100
    white: name=random role=white
  - black: name=random role=black
    white: name=mcts role=white T=100
`)

		got, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "strength", got.Name)
		require.Equal(t, 3, got.Games)
		require.Len(t, got.Matchups, 2)
		require.Equal(t, "name=mcts role=black T=100", got.Matchups[0].Black)
		require.Equal(t, "name=random role=white", got.Matchups[0].White)
	})

	t.Run("defaulting the game count", func(t *testing.T) {
		path := writeConfig(t, `
name: sanity
matchups:
  - black: name=random role=black
    white: name=random role=white
`)

		got, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 1, got.Games)
	})

	t.Run("rejecting a config without a name", func(t *testing.T) {
		path := writeConfig(t, `
matchups:
  - black: name=random role=black
    white: name=random role=white
`)

		_, err := Load(path)

		require.Error(t, err)
	})

	t.Run("rejecting a config without matchups", func(t *testing.T) {
		path := writeConfig(t, "name: empty\n")

		_, err := Load(path)

		require.Error(t, err)
	})

	t.Run("rejecting a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

		require.Error(t, err)
	})
}
