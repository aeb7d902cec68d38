package searcher

import "math"

// Exploration constants for the two operating points of the same
// selection formula: balanced explore/exploit during the search loop,
// and near-pure exploitation by empirical win rate when committing to
// the final move.
const (
	Exploration  = math.Sqrt2
	Exploitation = 1e-12
)

// uctScore computes w/n + c*sqrt(ln(N)/n), where lnN is the log of the
// overall root's visit total. An unvisited node scores +Inf so that it
// is always preferred over any visited sibling; this also keeps the
// final near-zero-c selection from dividing by zero.
func uctScore(wins, visits int, c, lnN float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	n := float64(visits)
	return float64(wins)/n + c*math.Sqrt(lnN/n)
}
