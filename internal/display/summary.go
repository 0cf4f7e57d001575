package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/drawpoker/internal/simulator"
)

// PrintReport writes a per-participant summary of a simulation
func (p *Printer) PrintReport(w io.Writer, report *simulator.Report) {
	fmt.Fprintln(w, p.Title(" Simulation results "))
	fmt.Fprintf(w, "Tables: %d, rounds: %d, showdowns: %d, busted tables: %d\n",
		report.Tables, report.RoundsPlayed, report.Showdowns, report.TablesBusted)
	if report.Elapsed > 0 && report.RoundsPlayed > 0 {
		perSec := float64(report.RoundsPlayed) / report.Elapsed.Seconds()
		fmt.Fprintln(w, p.styles.info.Render(fmt.Sprintf("Elapsed %s (%.0f rounds/sec)", report.Elapsed.Round(1e6), perSec)))
	}
	fmt.Fprintln(w)

	width := len("Participant")
	for _, name := range report.Participants {
		width = max(width, len(name))
	}

	fmt.Fprintf(w, "%-*s %8s %10s %10s %21s %8s\n", width, "Participant", "Rounds", "BB/round", "BB/100", "95% CI", "Win%")
	fmt.Fprintln(w, strings.Repeat("-", width+70))
	for _, name := range report.Participants {
		stats := report.Stats[name]
		if stats == nil || stats.Rounds == 0 {
			fmt.Fprintf(w, "%-*s %8d\n", width, name, 0)
			continue
		}
		low, high := stats.ConfidenceInterval95()
		line := fmt.Sprintf("%-*s %8d %10.3f %10.1f %21s %7.1f%%", width, name, stats.Rounds,
			stats.Mean(), stats.Mean()*100, fmt.Sprintf("[%.3f, %.3f]", low, high), stats.WinRate()*100)
		switch {
		case low > 0:
			line = p.styles.winner.Render(line)
		case high < 0:
			line = p.styles.red.Render(line)
		}
		fmt.Fprintln(w, line)
	}
}
