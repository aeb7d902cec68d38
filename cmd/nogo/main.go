package main

import (
	"fmt"

	"nogo/agent"
	"nogo/engine"
	"nogo/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	blackArgs  string
	whiteArgs  string
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "nogo",
	Short: "NoGo agents driven by Monte-Carlo tree search",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if debug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one game between two configured agents",
	RunE: func(cmd *cobra.Command, args []string) error {
		black, err := agent.New(blackArgs)
		if err != nil {
			return fmt.Errorf("failed to create black agent: %w", err)
		}
		white, err := agent.New(whiteArgs)
		if err != nil {
			return fmt.Errorf("failed to create white agent: %w", err)
		}

		e, err := engine.Local(black, white)
		if err != nil {
			return err
		}
		result, _ := e.Run()

		fmt.Printf("winner: %s (%d moves in %s)\n", result.Winner, result.Moves, result.Duration)
		return nil
	},
}

var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Run the matchups from a YAML experiment config",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := experiments.Load(configPath)
		if err != nil {
			return err
		}
		return experiments.Run(config)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	playCmd.Flags().StringVar(&blackArgs, "black", "name=mcts role=black", "black agent options")
	playCmd.Flags().StringVar(&whiteArgs, "white", "name=random role=white", "white agent options")

	experimentCmd.Flags().StringVar(&configPath, "config", "experiment.yaml", "experiment config file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(experimentCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
