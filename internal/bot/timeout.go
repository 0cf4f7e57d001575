package bot

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/poker"
)

// TimeoutProvider bounds how long another provider may think. When the
// deadline passes it checks if nothing is owed and folds otherwise; the
// late decision is discarded.
type TimeoutProvider struct {
	inner   game.DecisionProvider
	timeout time.Duration
	clock   quartz.Clock
	logger  *log.Logger
}

// WithTimeout wraps inner with a decision deadline measured on clock.
func WithTimeout(inner game.DecisionProvider, timeout time.Duration, clock quartz.Clock, logger *log.Logger) *TimeoutProvider {
	return &TimeoutProvider{inner: inner, timeout: timeout, clock: clock, logger: logger}
}

func (p *TimeoutProvider) Decide(hand poker.Hand, pot, toCall int) game.Decision {
	expired := make(chan struct{})
	timer := p.clock.AfterFunc(p.timeout, func() {
		close(expired)
	})
	defer timer.Stop()

	decided := make(chan game.Decision, 1)
	go func() {
		decided <- p.inner.Decide(hand, pot, toCall)
	}()

	select {
	case d := <-decided:
		return d
	case <-expired:
		p.logger.Warn("decision timeout", "timeout", p.timeout, "to_call", toCall)
		return game.CheckOrFold(toCall, "decision timed out")
	}
}
