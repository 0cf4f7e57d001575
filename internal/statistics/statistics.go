// Package statistics accumulates per-participant results over many rounds.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// MaxPositions bounds the table positions tracked, counted clockwise from
// the dealer (0 = dealer).
const MaxPositions = 10

// bigPotBB is the pot size, in big blinds, counted as a big pot.
const bigPotBB = 50

// RoundOutcome is one participant's result from a single round
type RoundOutcome struct {
	NetBB          float64 // chips won or lost, in big blinds
	Seed           int64   // table seed, for replay
	Position       int     // seats clockwise from the dealer
	WentToShowdown bool    // the participant reached showdown
	Folded         bool
	FinalPotSize   int // chips awarded
	BigBlind       int
}

// PositionStats tracks results for one table position
type PositionStats struct {
	Rounds int
	SumBB  float64
	SumBB2 float64
}

// Statistics tracks a participant's results across rounds
type Statistics struct {
	Rounds int
	SumBB  float64
	SumBB2 float64   // sum of squares for variance
	Values []float64 // every result, for median and percentiles

	ShowdownWins    int
	NonShowdownWins int     // pots won because everyone else folded
	ShowdownBB      float64 // wins and losses at showdown
	NonShowdownBB   float64 // wins and losses without showdown
	AllBB           float64
	Folds           int

	PositionResults [MaxPositions]PositionStats

	MaxPotChips int
	MaxPotBB    float64
	BigPots     int
	BigPotsBB   float64
}

// Mean returns the mean result in big blinds per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumBB / float64(s.Rounds)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates one round's outcome
func (s *Statistics) Add(result RoundOutcome) {
	netBB := result.NetBB
	s.Rounds++
	s.SumBB += netBB
	s.SumBB2 += netBB * netBB
	s.Values = append(s.Values, netBB)

	if netBB > 0 {
		if result.WentToShowdown {
			s.ShowdownWins++
		} else {
			s.NonShowdownWins++
		}
	}
	if result.WentToShowdown {
		s.ShowdownBB += netBB
	} else {
		s.NonShowdownBB += netBB
	}
	s.AllBB += netBB
	if result.Folded {
		s.Folds++
	}

	if pos := result.Position; pos >= 0 && pos < MaxPositions {
		s.PositionResults[pos].Rounds++
		s.PositionResults[pos].SumBB += netBB
		s.PositionResults[pos].SumBB2 += netBB * netBB
	}

	potBB := 0.0
	if result.BigBlind > 0 {
		potBB = float64(result.FinalPotSize) / float64(result.BigBlind)
	}
	if result.FinalPotSize > s.MaxPotChips {
		s.MaxPotChips = result.FinalPotSize
		s.MaxPotBB = potBB
	}
	if potBB >= bigPotBB {
		s.BigPots++
		s.BigPotsBB += netBB
	}
}

// Merge folds another participant's statistics into s
func (s *Statistics) Merge(o *Statistics) {
	s.Rounds += o.Rounds
	s.SumBB += o.SumBB
	s.SumBB2 += o.SumBB2
	s.Values = append(s.Values, o.Values...)
	s.ShowdownWins += o.ShowdownWins
	s.NonShowdownWins += o.NonShowdownWins
	s.ShowdownBB += o.ShowdownBB
	s.NonShowdownBB += o.NonShowdownBB
	s.AllBB += o.AllBB
	s.Folds += o.Folds
	for i := range s.PositionResults {
		s.PositionResults[i].Rounds += o.PositionResults[i].Rounds
		s.PositionResults[i].SumBB += o.PositionResults[i].SumBB
		s.PositionResults[i].SumBB2 += o.PositionResults[i].SumBB2
	}
	if o.MaxPotChips > s.MaxPotChips {
		s.MaxPotChips = o.MaxPotChips
		s.MaxPotBB = o.MaxPotBB
	}
	s.BigPots += o.BigPots
	s.BigPotsBB += o.BigPotsBB
}

// Median returns the median result
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at percentile p (0.0 to 1.0), interpolating
// between neighbouring results
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// PositionMean returns the mean result at a table position
func (s *Statistics) PositionMean(position int) float64 {
	if position < 0 || position >= MaxPositions {
		return 0
	}
	ps := s.PositionResults[position]
	if ps.Rounds == 0 {
		return 0
	}
	return ps.SumBB / float64(ps.Rounds)
}

// WinRate returns the fraction of rounds with a positive result
func (s *Statistics) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.ShowdownWins+s.NonShowdownWins) / float64(s.Rounds)
}

// IsLedgerBalanced checks that showdown and non-showdown results add up
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllBB-s.ShowdownBB-s.NonShowdownBB) <= 1e-6
}

// Validate performs consistency checks on the accumulated data
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: AllBB=%.6f, ShowdownBB=%.6f, NonShowdownBB=%.6f",
			s.AllBB, s.ShowdownBB, s.NonShowdownBB)
	}
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}
	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values array length (%d) does not match rounds count (%d)", len(s.Values), s.Rounds)
	}
	if wins := s.ShowdownWins + s.NonShowdownWins; wins > s.Rounds {
		return fmt.Errorf("total wins (%d) exceeds total rounds (%d)", wins, s.Rounds)
	}

	positioned := 0
	for _, ps := range s.PositionResults {
		positioned += ps.Rounds
	}
	if positioned != s.Rounds {
		return fmt.Errorf("position rounds total (%d) does not match total rounds (%d)", positioned, s.Rounds)
	}
	return nil
}
