// Package bot provides decision policies for seats at a draw poker table.
package bot

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/game"
)

// Strategy names accepted by New.
const (
	Conservative = "conservative"
	Aggressive   = "aggressive"
	Smart        = "smart"
	Calling      = "calling"
	Folding      = "folding"
	Random       = "random"
)

var strategies = map[string]func(rng *rand.Rand, logger *log.Logger) game.DecisionProvider{
	Conservative: func(_ *rand.Rand, l *log.Logger) game.DecisionProvider { return NewConservativeBot(l) },
	Aggressive:   func(r *rand.Rand, l *log.Logger) game.DecisionProvider { return NewAggressiveBot(r, l) },
	Smart:        func(r *rand.Rand, l *log.Logger) game.DecisionProvider { return NewSmartBot(r, l) },
	Calling:      func(_ *rand.Rand, l *log.Logger) game.DecisionProvider { return NewCallBot(l) },
	Folding:      func(_ *rand.Rand, l *log.Logger) game.DecisionProvider { return NewFoldBot(l) },
	Random:       func(r *rand.Rand, l *log.Logger) game.DecisionProvider { return NewRandBot(r, l) },
}

// New creates the policy registered under name. Policies that need
// randomness draw it from rng, which must not be nil for them.
func New(name string, rng *rand.Rand, logger *log.Logger) (game.DecisionProvider, error) {
	ctor, ok := strategies[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
	return ctor(rng, orDiscard(logger).WithPrefix(strings.ToLower(name))), nil
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}

// Names returns the registered strategy names, sorted.
func Names() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsStrategy reports whether name is a registered strategy.
func IsStrategy(name string) bool {
	_, ok := strategies[strings.ToLower(name)]
	return ok
}
