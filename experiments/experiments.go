// Package experiments runs matchups between configured agents and
// stores game and move records for later analysis.
package experiments

import (
	"fmt"
	"os"
	"time"

	"nogo/agent"
	"nogo/engine"
	"nogo/experiments/metrics"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Matchup pairs two agent option strings; the roles must be assigned
// within the strings themselves.
type Matchup struct {
	Black string `yaml:"black"`
	White string `yaml:"white"`
}

type Config struct {
	Name     string    `yaml:"name"`
	Games    int       `yaml:"games"`
	Matchups []Matchup `yaml:"matchups"`
}

// Load reads an experiment config from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read experiment config: %w", err)
	}

	config := &Config{}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse experiment config: %w", err)
	}

	if config.Name == "" {
		return nil, fmt.Errorf("experiment config is missing a name")
	}
	if config.Games <= 0 {
		config.Games = 1
	}
	if len(config.Matchups) == 0 {
		return nil, fmt.Errorf("experiment config has no matchups")
	}
	return config, nil
}

// Run plays every matchup for the configured number of games and writes
// the records as CSV. Agents are constructed fresh per game so no state
// leaks between episodes.
func Run(config *Config) error {
	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	log.Info().Msgf("starting %s experiment...", config.Name)

	for mi, matchup := range config.Matchups {
		log.Info().Msgf("starting matchup %d of %d between black=%q and white=%q...",
			mi+1, len(config.Matchups), matchup.Black, matchup.White)

		for i := 0; i < config.Games; i++ {
			log.Info().Msgf("starting matchup %d of %d game %d of %d...",
				mi+1, len(config.Matchups), i+1, config.Games)

			start := time.Now()
			result, records, err := runGame(matchup)
			if err != nil {
				return err
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:        result.ID,
				Black:     matchup.Black,
				White:     matchup.White,
				Winner:    result.Winner.String(),
				Moves:     result.Moves,
				StartTime: start,
				Duration:  result.Duration,
			})
			moveRecords = append(moveRecords, records...)
		}
	}

	writer, err := metrics.NewWriter(config.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}

	log.Info().Msgf("finished %s experiment: %d games", config.Name, len(gameRecords))
	return nil
}

func runGame(matchup Matchup) (engine.Result, []metrics.MoveRecord, error) {
	black, err := agent.New(matchup.Black)
	if err != nil {
		return engine.Result{}, nil, fmt.Errorf("failed to create black agent: %w", err)
	}
	white, err := agent.New(matchup.White)
	if err != nil {
		return engine.Result{}, nil, fmt.Errorf("failed to create white agent: %w", err)
	}

	e, err := engine.Local(black, white)
	if err != nil {
		return engine.Result{}, nil, err
	}
	result, records := e.Run()
	return result, records, nil
}
