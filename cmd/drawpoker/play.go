package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/drawpoker/internal/bot"
	"github.com/lox/drawpoker/internal/config"
	"github.com/lox/drawpoker/internal/display"
	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/internal/history"
	"github.com/lox/drawpoker/internal/randutil"
)

type PlayCmd struct {
	Config    string `short:"c" default:"drawpoker.hcl" type:"path" help:"Table configuration file (defaults apply when missing)"`
	Rounds    int    `short:"n" help:"Rounds to play; overrides the config file"`
	Seed      int64  `help:"Random seed; overrides the config file, 0 uses the clock"`
	ShowHands bool   `help:"Show every dealt hand, not just your own"`
	Reasoning bool   `help:"Show the reasoning behind each decision"`
	History   string `type:"path" help:"Record rounds to this file; overrides the config file"`
}

func (c *PlayCmd) Run(globals *Globals) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	level, err := globals.resolveLevel(cfg.LogLevel())
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return c.play(ctx, cfg, logger, os.Stdin, os.Stdout, globals.NoColor)
}

func (c *PlayCmd) play(ctx context.Context, cfg *config.Config, logger *log.Logger, in io.Reader, out io.Writer, noColor bool) error {
	seed := c.Seed
	if seed == 0 {
		seed = cfg.Table.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rounds := cfg.Table.Rounds
	if c.Rounds > 0 {
		rounds = c.Rounds
	}

	clock := quartz.NewReal()
	bus := game.NewEventBus()
	table := game.NewGame(randutil.New(seed), logger,
		game.WithSmallBlind(cfg.Table.SmallBlind),
		game.WithEventBus(bus),
		game.WithClock(clock),
	)

	var perspective string
	for i, seat := range cfg.Seats {
		var provider game.DecisionProvider
		if seat.Strategy == config.Human {
			provider = bot.NewHumanPlayer(in, out, logger)
			perspective = seat.Name
		} else {
			b, err := bot.New(seat.Strategy, randutil.New(randutil.Derive(seed, i+1)), logger)
			if err != nil {
				return err
			}
			provider = bot.WithTimeout(b, cfg.DecisionTimeout(), clock, logger)
		}
		if _, err := table.AddParticipant(seat.Name, seat.Stack, provider); err != nil {
			return fmt.Errorf("seat %q: %w", seat.Name, err)
		}
	}

	printer := display.NewPrinter(out, display.FormattingOptions{
		ShowReasonings: c.Reasoning,
		ShowHoleCards:  c.ShowHands || perspective == "",
		Perspective:    perspective,
		NoColor:        noColor,
	})
	bus.Subscribe(printer)
	defer bus.Unsubscribe(printer)

	historyFile := cfg.History.File
	if c.History != "" {
		historyFile = c.History
	}
	if historyFile != "" {
		recorder, err := history.NewRecorder(history.Config{
			Path:         historyFile,
			Table:        fmt.Sprintf("seed-%d", seed),
			IncludeHands: cfg.History.IncludeHands,
			FlushRounds:  cfg.History.FlushRounds,
		}, logger)
		if err != nil {
			return err
		}
		bus.Subscribe(recorder)
		defer func() {
			if err := recorder.Close(); err != nil {
				logger.Error("Failed to write round history", "path", historyFile, "error", err)
			}
		}()
	}

	fmt.Fprintln(out, printer.Title(" ♠ ♥ Five Card Draw ♦ ♣ "))
	fmt.Fprintln(out)
	logger.Info("Starting table", "seats", len(cfg.Seats), "rounds", rounds, "seed", seed)

	starting := make([]int, len(cfg.Seats))
	for i, s := range table.Seats() {
		starting[i] = s.Stack
	}

	played := 0
	for played < rounds {
		if ctx.Err() != nil {
			logger.Info("Interrupted", "rounds", played)
			break
		}
		if _, err := table.RunRound(); err != nil {
			if errors.Is(err, game.ErrNotEnoughPlayers) {
				fmt.Fprintln(out, "Only one player has chips left.")
				break
			}
			return err
		}
		played++
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Final stacks after %d rounds:\n", played)
	for i, s := range table.Seats() {
		fmt.Fprintf(out, "  %-12s %6d (%+d)\n", s.Name, s.Stack, s.Stack-starting[i])
	}
	return nil
}
