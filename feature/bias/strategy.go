package bias

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStrategy is returned for a strategy name that is not supported.
	ErrUnknownStrategy = errors.New("unknown strategy")
	// ErrClusterPoolExhausted is returned when a player runs out of clusters
	// before their major quota is covered.
	ErrClusterPoolExhausted = errors.New("cluster pool exhausted")
	// ErrCandidatesExhausted is returned when entangled reservation runs out of
	// locations before the combined quota is covered.
	ErrCandidatesExhausted = errors.New("reservation candidates exhausted")
)

// Strategy is the biasing algorithm selected for a generation.
type Strategy string

const (
	StrategyVanilla   Strategy = "vanilla_bias"
	StrategyMajor     Strategy = "major_bias"
	StrategyDungeon   Strategy = "dungeon_bias"
	StrategyCluster   Strategy = "cluster_bias"
	StrategyEntangled Strategy = "entangled"
)

// Strategies lists every supported strategy.
var Strategies = []Strategy{StrategyVanilla, StrategyMajor, StrategyDungeon, StrategyCluster, StrategyEntangled}

// ParseStrategy validates a strategy name.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
}

// Mode is the resolved variant a Config was built for.
type Mode int

const (
	// ModeUnrestricted leaves every candidate list untouched.
	ModeUnrestricted Mode = iota
	ModeVanilla
	ModeMajor
	ModeDungeon
	ModeCluster
	ModeEntangled
)

var modeNames = map[Mode]string{
	ModeUnrestricted: "unrestricted",
	ModeVanilla:      "vanilla",
	ModeMajor:        "major",
	ModeDungeon:      "dungeon",
	ModeCluster:      "cluster",
	ModeEntangled:    "entangled",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Resolve maps a strategy and player count to the variant that will be built.
// Entangled needs at least two players and degrades to ModeUnrestricted.
func Resolve(s Strategy, players int) (Mode, error) {
	switch s {
	case StrategyVanilla:
		return ModeVanilla, nil
	case StrategyMajor:
		return ModeMajor, nil
	case StrategyDungeon:
		return ModeDungeon, nil
	case StrategyCluster:
		return ModeCluster, nil
	case StrategyEntangled:
		if players > 1 {
			return ModeEntangled, nil
		}
		return ModeUnrestricted, nil
	}
	return ModeUnrestricted, fmt.Errorf("%q: %w", s, ErrUnknownStrategy)
}

// biased reports whether the mode classifies major items.
func (m Mode) biased() bool {
	switch m {
	case ModeMajor, ModeDungeon, ModeCluster, ModeEntangled:
		return true
	}
	return false
}
