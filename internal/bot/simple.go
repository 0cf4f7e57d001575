package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/poker"
)

// CallBot checks or calls every time
type CallBot struct {
	logger *log.Logger
}

// NewCallBot creates a new CallBot instance
func NewCallBot(logger *log.Logger) *CallBot {
	return &CallBot{logger: orDiscard(logger)}
}

func (c *CallBot) Decide(_ poker.Hand, _, toCall int) game.Decision {
	d := game.CheckOrCall(toCall, "call-bot")
	c.logger.Debug("decided", "to_call", toCall, "action", d.Action)
	return d
}

// FoldBot checks when it can and folds otherwise
type FoldBot struct {
	logger *log.Logger
}

// NewFoldBot creates a new FoldBot instance
func NewFoldBot(logger *log.Logger) *FoldBot {
	return &FoldBot{logger: orDiscard(logger)}
}

func (f *FoldBot) Decide(_ poker.Hand, _, toCall int) game.Decision {
	d := game.CheckOrFold(toCall, "fold-bot")
	f.logger.Debug("decided", "to_call", toCall, "action", d.Action)
	return d
}

// RandBot makes uniformly random legal decisions
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: orDiscard(logger)}
}

func (r *RandBot) Decide(_ poker.Hand, pot, toCall int) game.Decision {
	legal := []game.Action{game.Fold, game.Call, game.Raise, game.AllIn}
	if toCall == 0 {
		legal = []game.Action{game.Check, game.Bet, game.AllIn}
	}

	action := legal[r.rng.IntN(len(legal))]
	d := game.Decision{Action: action, Reasoning: "rand-bot random action"}
	if action == game.Bet || action == game.Raise {
		d.Amount = 1 + r.rng.IntN(max(pot, 1))
	}
	r.logger.Debug("decided", "pot", pot, "to_call", toCall, "action", d.Action, "amount", d.Amount)
	return d
}
