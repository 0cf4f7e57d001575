// Package simulator plays many independent bot-only tables in parallel
// and aggregates per-participant statistics.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/drawpoker/internal/bot"
	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/internal/statistics"
)

// Participant is a named seat and the strategy that plays it
type Participant struct {
	Name     string
	Strategy string
}

// Config holds configuration for running simulations
type Config struct {
	Participants  []Participant
	Tables        int
	Rounds        int // per table
	SmallBlind    int
	StartingStack int
	Seed          int64
	Concurrency   int // tables played at once; 0 means GOMAXPROCS
	Logger        *log.Logger
	Clock         quartz.Clock
}

// Report is the outcome of a simulation
type Report struct {
	Tables       int
	RoundsPlayed int
	TablesBusted int // tables that stopped early with one stack left
	Showdowns    int
	Elapsed      time.Duration
	Participants []string // seating order
	Stats        map[string]*statistics.Statistics
}

// Simulator runs draw poker simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Concurrency <= 0 {
		config.Concurrency = runtime.GOMAXPROCS(0)
	}
	if config.SmallBlind <= 0 {
		config.SmallBlind = 1
	}
	return &Simulator{config: config}
}

// tableResult is one table's contribution to the report
type tableResult struct {
	rounds    int
	showdowns int
	busted    bool
	stats     map[string]*statistics.Statistics
}

// Run plays every table and merges the results. It stops early, returning
// ctx's error, if ctx is cancelled.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	cfg := s.config
	if len(cfg.Participants) < 2 {
		return nil, fmt.Errorf("simulation needs at least 2 participants, got %d", len(cfg.Participants))
	}
	if len(cfg.Participants) > game.MaxSeats {
		return nil, fmt.Errorf("simulation supports at most %d participants, got %d", game.MaxSeats, len(cfg.Participants))
	}
	for _, p := range cfg.Participants {
		if !bot.IsStrategy(p.Strategy) {
			return nil, fmt.Errorf("participant %q: unknown strategy %q", p.Name, p.Strategy)
		}
	}

	start := cfg.Clock.Now()
	results := make([]tableResult, cfg.Tables)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for table := range cfg.Tables {
		g.Go(func() error {
			res, err := s.playTable(ctx, table)
			if err != nil {
				return fmt.Errorf("table %d: %w", table, err)
			}
			results[table] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		Tables: cfg.Tables,
		Stats:  make(map[string]*statistics.Statistics),
	}
	for _, p := range cfg.Participants {
		report.Participants = append(report.Participants, p.Name)
		report.Stats[p.Name] = &statistics.Statistics{}
	}
	for _, res := range results {
		report.RoundsPlayed += res.rounds
		report.Showdowns += res.showdowns
		if res.busted {
			report.TablesBusted++
		}
		for name, st := range res.stats {
			report.Stats[name].Merge(st)
		}
	}
	report.Elapsed = cfg.Clock.Now().Sub(start)

	for name, st := range report.Stats {
		if st.Rounds == 0 {
			continue
		}
		if err := st.Validate(); err != nil {
			return nil, fmt.Errorf("statistics for %s: %w", name, err)
		}
	}

	cfg.Logger.Info("simulation complete",
		"tables", report.Tables,
		"rounds", report.RoundsPlayed,
		"busted", report.TablesBusted,
		"elapsed", report.Elapsed)
	return report, nil
}

// playTable runs one table to completion. Seating rotates with the table
// number so no participant keeps the same position across tables.
func (s *Simulator) playTable(ctx context.Context, table int) (tableResult, error) {
	cfg := s.config
	seed := randutil.Derive(cfg.Seed, table)
	rng := randutil.New(seed)
	logger := cfg.Logger.With("table", table)

	g := game.NewGame(rng, logger, game.WithSmallBlind(cfg.SmallBlind), game.WithClock(cfg.Clock))

	n := len(cfg.Participants)
	names := make([]string, n)
	for i := range n {
		p := cfg.Participants[(i+table)%n]
		provider, err := bot.New(p.Strategy, rng, logger)
		if err != nil {
			return tableResult{}, err
		}
		if _, err := g.AddParticipant(p.Name, cfg.StartingStack, provider); err != nil {
			return tableResult{}, err
		}
		names[i] = p.Name
	}

	res := tableResult{stats: make(map[string]*statistics.Statistics, n)}
	for _, name := range names {
		res.stats[name] = &statistics.Statistics{}
	}

	bigBlind := 2 * cfg.SmallBlind
	for round := 0; round < cfg.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return tableResult{}, err
		}

		result, err := g.RunRound()
		if errors.Is(err, game.ErrNotEnoughPlayers) {
			res.busted = true
			logger.Debug("table finished early", "rounds", round)
			break
		}
		if err != nil {
			return tableResult{}, err
		}

		res.rounds++
		if result.Showdown {
			res.showdowns++
		}
		for i, name := range names {
			outcome, ok := outcomeFor(result, i, n, bigBlind, seed)
			if ok {
				res.stats[name].Add(outcome)
			}
		}
	}
	return res, nil
}

// outcomeFor converts seat's share of a round into a statistics record.
// Seats that sat the round out report false.
func outcomeFor(result *game.RoundResult, seat, seats, bigBlind int, seed int64) (statistics.RoundOutcome, bool) {
	if !result.DealtIn[seat] {
		return statistics.RoundOutcome{}, false
	}

	folded := false
	for _, a := range result.Actions {
		if a.Seat == seat && a.Action == game.Fold {
			folded = true
		}
	}

	showdown := false
	for _, r := range result.Revealed {
		if r.Seat == seat {
			showdown = true
		}
	}

	return statistics.RoundOutcome{
		NetBB:          float64(result.Net[seat]) / float64(bigBlind),
		Seed:           seed,
		Position:       (seat - result.Dealer + seats) % seats,
		WentToShowdown: showdown,
		Folded:         folded,
		FinalPotSize:   result.Pot,
		BigBlind:       bigBlind,
	}, true
}
