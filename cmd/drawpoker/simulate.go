package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/display"
	"github.com/lox/drawpoker/internal/simulator"
)

type SimulateCmd struct {
	Bots        []string `short:"b" default:"conservative,aggressive,smart,calling" help:"Strategies to seat, one per participant"`
	Tables      int      `short:"t" default:"100" help:"Number of tables"`
	Rounds      int      `short:"n" default:"200" help:"Rounds per table"`
	SmallBlind  int      `default:"1" help:"Small blind"`
	Stack       int      `default:"200" help:"Starting stack"`
	Seed        int64    `help:"Random seed (0 uses the clock)"`
	Concurrency int      `short:"j" help:"Tables played at once (0 uses GOMAXPROCS)"`
}

func (c *SimulateCmd) Run(globals *Globals) error {
	level, err := globals.resolveLevel(log.WarnLevel)
	if err != nil {
		return err
	}
	logger, _, err := newLogger(level, "")
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := simulator.New(simulator.Config{
		Participants:  participants(c.Bots),
		Tables:        c.Tables,
		Rounds:        c.Rounds,
		SmallBlind:    c.SmallBlind,
		StartingStack: c.Stack,
		Seed:          seed,
		Concurrency:   c.Concurrency,
		Logger:        logger,
	})
	report, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	printer := display.NewPrinter(os.Stdout, display.FormattingOptions{NoColor: globals.NoColor})
	printer.PrintReport(os.Stdout, report)
	fmt.Printf("\nSeed: %d\n", seed)
	return nil
}

// participants names each strategy, numbering repeats so names stay unique
func participants(strategies []string) []simulator.Participant {
	seen := make(map[string]int)
	out := make([]simulator.Participant, 0, len(strategies))
	for _, s := range strategies {
		seen[s]++
		name := s
		if seen[s] > 1 {
			name = fmt.Sprintf("%s-%d", s, seen[s])
		}
		out = append(out, simulator.Participant{Name: name, Strategy: s})
	}
	return out
}
