// Package agent hosts the players of the episode framework: a
// uniformly-random baseline and the MCTS player. Agents are configured
// by key=value option strings and act once per turn through TakeAction.
package agent

import (
	"fmt"

	"nogo/game"
)

type Agent interface {
	Name() string
	Role() game.Stone
	// TakeAction returns the move to play from the current position, or
	// game.NoMove when the agent has no legal move (it forfeits).
	TakeAction(b *game.Board) game.Move
	// OpenEpisode and CloseEpisode bracket one game.
	OpenEpisode(flag string)
	CloseEpisode(flag string)
}

// base carries the identity shared by all agents. Lifecycle hooks are
// no-ops unless an agent overrides them.
type base struct {
	name string
	role game.Stone
}

// newBase validates the common options; a missing or unrecognized role
// is a fatal configuration error.
func newBase(fallback string, options Options) (base, error) {
	role, err := game.ParseStone(options.String("role", ""))
	if err != nil {
		return base{}, err
	}
	return base{
		name: options.String("name", fallback),
		role: role,
	}, nil
}

func (b base) Name() string { return b.name }

func (b base) Role() game.Stone { return b.role }

func (b base) OpenEpisode(flag string) {}

func (b base) CloseEpisode(flag string) {}

// New builds an agent from an option string; the "name" key selects the
// kind, defaulting to the random baseline.
func New(args string) (Agent, error) {
	options := ParseOptions(args)
	switch name := options.String("name", "random"); name {
	case "random":
		return NewRandomPlayer(options)
	case "mcts":
		return NewMCTSPlayer(options)
	default:
		return nil, fmt.Errorf("unknown agent name: %q", name)
	}
}
