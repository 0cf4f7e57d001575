// Package config loads table configuration from HCL files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/drawpoker/internal/bot"
	"github.com/lox/drawpoker/internal/game"
)

// Human is the seat strategy for an interactive player.
const Human = "human"

// Config represents a complete table configuration
type Config struct {
	Table   *TableSettings   `hcl:"table,block"`
	Seats   []SeatConfig     `hcl:"seat,block"`
	Log     *LogSettings     `hcl:"log,block"`
	History *HistorySettings `hcl:"history,block"`
}

// TableSettings contains table-wide settings
type TableSettings struct {
	SmallBlind      int    `hcl:"small_blind,optional"`
	StartingStack   int    `hcl:"starting_stack,optional"`
	Rounds          int    `hcl:"rounds,optional"`
	Seed            int64  `hcl:"seed,optional"`
	DecisionTimeout string `hcl:"decision_timeout,optional"`
}

// SeatConfig defines one participant
type SeatConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy"`
	Stack    int    `hcl:"stack,optional"`
}

// LogSettings controls logging
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// HistorySettings controls round history recording. An empty File
// disables it.
type HistorySettings struct {
	File         string `hcl:"file,optional"`
	IncludeHands bool   `hcl:"include_hands,optional"`
	FlushRounds  int    `hcl:"flush_rounds,optional"`
}

const (
	defaultSmallBlind      = 5
	defaultStartingStack   = 500
	defaultRounds          = 100
	defaultDecisionTimeout = "30s"
	defaultLogLevel        = "info"
)

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{
		Seats: []SeatConfig{
			{Name: "Cautious", Strategy: bot.Conservative},
			{Name: "Maniac", Strategy: bot.Aggressive},
			{Name: "Shark", Strategy: bot.Smart},
			{Name: "Station", Strategy: bot.Calling},
		},
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes and validates HCL source. filename is only used in
// diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Table == nil {
		c.Table = &TableSettings{}
	}
	if c.Table.SmallBlind == 0 {
		c.Table.SmallBlind = defaultSmallBlind
	}
	if c.Table.StartingStack == 0 {
		c.Table.StartingStack = defaultStartingStack
	}
	if c.Table.Rounds == 0 {
		c.Table.Rounds = defaultRounds
	}
	if c.Table.DecisionTimeout == "" {
		c.Table.DecisionTimeout = defaultDecisionTimeout
	}

	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}

	if c.History == nil {
		c.History = &HistorySettings{}
	}

	for i := range c.Seats {
		if c.Seats[i].Stack == 0 {
			c.Seats[i].Stack = c.Table.StartingStack
		}
		c.Seats[i].Strategy = strings.ToLower(c.Seats[i].Strategy)
	}
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if c.Table.SmallBlind < 0 {
		return fmt.Errorf("small_blind must be positive, got %d", c.Table.SmallBlind)
	}
	if c.Table.StartingStack < 0 {
		return fmt.Errorf("starting_stack must be positive, got %d", c.Table.StartingStack)
	}
	if c.Table.Rounds < 0 {
		return fmt.Errorf("rounds must be positive, got %d", c.Table.Rounds)
	}
	if d, err := time.ParseDuration(c.Table.DecisionTimeout); err != nil || d <= 0 {
		return fmt.Errorf("invalid decision_timeout %q", c.Table.DecisionTimeout)
	}
	if c.History.FlushRounds < 0 {
		return fmt.Errorf("flush_rounds must be positive, got %d", c.History.FlushRounds)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}

	if len(c.Seats) < 2 {
		return fmt.Errorf("at least 2 seats required, got %d", len(c.Seats))
	}
	if len(c.Seats) > game.MaxSeats {
		return fmt.Errorf("at most %d seats allowed, got %d", game.MaxSeats, len(c.Seats))
	}

	names := make(map[string]bool)
	humans := 0
	for _, s := range c.Seats {
		if names[s.Name] {
			return fmt.Errorf("duplicate seat name %q", s.Name)
		}
		names[s.Name] = true

		if s.Stack < 0 {
			return fmt.Errorf("seat %q: stack must be positive, got %d", s.Name, s.Stack)
		}
		switch {
		case s.Strategy == Human:
			humans++
		case !bot.IsStrategy(s.Strategy):
			return fmt.Errorf("seat %q: unknown strategy %q (want human or one of %s)",
				s.Name, s.Strategy, strings.Join(bot.Names(), ", "))
		}
	}
	if humans > 1 {
		return fmt.Errorf("at most one human seat allowed, got %d", humans)
	}
	return nil
}

// DecisionTimeout returns the parsed per-decision deadline
func (c *Config) DecisionTimeout() time.Duration {
	d, err := time.ParseDuration(c.Table.DecisionTimeout)
	if err != nil {
		return 0
	}
	return d
}

// LogLevel returns the parsed log level, defaulting to info
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// HasHuman reports whether any seat is played interactively
func (c *Config) HasHuman() bool {
	for _, s := range c.Seats {
		if s.Strategy == Human {
			return true
		}
	}
	return false
}
