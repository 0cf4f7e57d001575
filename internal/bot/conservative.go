package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/poker"
)

// ConservativeBot only puts chips in with made hands. Two pair or better
// calls anything, one pair calls, everything else checks or folds.
type ConservativeBot struct {
	logger *log.Logger
}

// NewConservativeBot creates a new ConservativeBot instance
func NewConservativeBot(logger *log.Logger) *ConservativeBot {
	return &ConservativeBot{logger: orDiscard(logger)}
}

func (b *ConservativeBot) Decide(hand poker.Hand, pot, toCall int) game.Decision {
	var d game.Decision
	rank := hand.Rank()
	switch {
	case rank >= poker.TwoPair:
		d = game.CheckOrCall(toCall, "conservative: strong hand "+rank.String())
	case rank == poker.OnePair:
		d = game.CheckOrCall(toCall, "conservative: one pair")
	default:
		d = game.CheckOrFold(toCall, "conservative: nothing")
	}
	b.logger.Debug("decided", "hand", hand, "rank", rank, "pot", pot, "to_call", toCall, "action", d.Action)
	return d
}
