package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/drawpoker/internal/display"
	"github.com/lox/drawpoker/poker"
)

type EvalCmd struct {
	Hands []string `arg:"" help:"Hands to evaluate, e.g. \"As Ks Qs Js Ts\""`
}

func (c *EvalCmd) Run(globals *Globals) error {
	return c.eval(os.Stdout, globals.NoColor)
}

func (c *EvalCmd) eval(w io.Writer, noColor bool) error {
	printer := display.NewPrinter(w, display.FormattingOptions{NoColor: noColor})

	hands := make([]poker.Hand, len(c.Hands))
	for i, s := range c.Hands {
		h, err := poker.ParseHand(s)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		hands[i] = h
		fmt.Fprintf(w, "%d. %s  %s (%s)\n", i+1, printer.Hand(h), h.Value(), h.Describe())
	}
	if len(hands) < 2 {
		return nil
	}

	best := []int{0}
	for i := 1; i < len(hands); i++ {
		switch cmp := hands[i].Compare(hands[best[0]]); {
		case cmp > 0:
			best = []int{i}
		case cmp == 0:
			best = append(best, i)
		}
	}

	labels := make([]string, len(best))
	for i, b := range best {
		labels[i] = fmt.Sprint(b + 1)
	}
	if len(best) == 1 {
		fmt.Fprintf(w, "Hand %s wins with %s\n", labels[0], hands[best[0]].Rank())
	} else {
		fmt.Fprintf(w, "Hands %s tie with %s\n", strings.Join(labels, ", "), hands[best[0]].Rank())
	}
	return nil
}
