package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/poker"
)

// AggressiveBot raises any pair and bluffs half of its weak hands.
type AggressiveBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewAggressiveBot creates a new AggressiveBot instance
func NewAggressiveBot(rng *rand.Rand, logger *log.Logger) *AggressiveBot {
	return &AggressiveBot{rng: rng, logger: orDiscard(logger)}
}

func (b *AggressiveBot) Decide(hand poker.Hand, pot, toCall int) game.Decision {
	d := b.decide(hand, pot, toCall)
	b.logger.Debug("decided", "hand", hand, "pot", pot, "to_call", toCall, "action", d.Action, "amount", d.Amount)
	return d
}

func (b *AggressiveBot) decide(hand poker.Hand, pot, toCall int) game.Decision {
	if hand.Rank() >= poker.OnePair {
		raise := pot / 2
		if raise < toCall {
			raise = toCall * 2
		}
		return game.Decision{Action: game.Raise, Amount: raise, Reasoning: "aggressive: raising " + hand.Rank().String()}
	}

	if b.rng.IntN(2) == 1 {
		return game.Decision{Action: game.Bet, Amount: pot / 4, Reasoning: "aggressive: bluff"}
	}

	return game.CheckOrFold(toCall, "aggressive: giving up")
}
