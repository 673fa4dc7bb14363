package runner

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned by ParseStrategy for an unrecognized name.
var ErrUnknownStrategy = errors.New("runner: unknown strategy")

// Strategy selects a search algorithm and, for UCS, its cost model.
type Strategy int

const (
	BFS       Strategy = iota // breadth-first
	IDS                       // iterative-deepening depth-first
	UCS                       // uniform-cost, unit edge costs
	UCSLetter                 // uniform-cost, letter-frequency edge costs
	AStar                     // A* with the Hamming heuristic
)

var strategyNames = [...]string{
	BFS:       "bfs",
	IDS:       "ids",
	UCS:       "ucs",
	UCSLetter: "ucs-letter",
	AStar:     "astar",
}

// AllStrategies returns every strategy in declaration order.
func AllStrategies() []Strategy {
	return []Strategy{BFS, IDS, UCS, UCSLetter, AStar}
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// ParseStrategy maps a case-insensitive name ("bfs", "ids", "ucs",
// "ucs-letter", "astar") to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, v := range strategyNames {
		if v == n {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// ParseStrategies parses a list of names. The single name "all" expands to
// AllStrategies.
func ParseStrategies(names []string) ([]Strategy, error) {
	if len(names) == 1 && strings.EqualFold(strings.TrimSpace(names[0]), "all") {
		return AllStrategies(), nil
	}
	out := make([]Strategy, 0, len(names))
	for _, n := range names {
		s, err := ParseStrategy(n)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// MarshalText encodes the strategy by name.
func (s Strategy) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText parses a strategy name.
func (s *Strategy) UnmarshalText(b []byte) error {
	v, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v

	return nil
}
