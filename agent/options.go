package agent

import (
	"strconv"
	"strings"
)

// Options holds an agent's parsed key=value configuration, e.g.
// "name=mcts role=black T=2000 seed=7".
type Options map[string]string

// ParseOptions splits a whitespace-separated option string into a map.
// A token without '=' becomes a key with an empty value.
func ParseOptions(args string) Options {
	options := Options{}
	for _, pair := range strings.Fields(args) {
		key, value, _ := strings.Cut(pair, "=")
		options[key] = value
	}
	return options
}

func (o Options) Has(key string) bool {
	_, ok := o[key]
	return ok
}

func (o Options) String(key, fallback string) string {
	if value, ok := o[key]; ok && value != "" {
		return value
	}
	return fallback
}

func (o Options) Int(key string, fallback int) int {
	value, ok := o[key]
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func (o Options) Uint64(key string, fallback uint64) uint64 {
	value, ok := o[key]
	if !ok {
		return fallback
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
