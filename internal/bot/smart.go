package bot

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/poker"
)

// handStrength is a rough chance of holding the best hand, by category.
var handStrength = [...]float64{
	poker.TopCard:       0.20,
	poker.OnePair:       0.40,
	poker.TwoPair:       0.60,
	poker.ThreeOfKind:   0.75,
	poker.Straight:      0.85,
	poker.Flush:         0.90,
	poker.FullHouse:     0.95,
	poker.FourOfKind:    0.98,
	poker.StraightFlush: 0.99,
	poker.RoyalFlush:    1.00,
}

const (
	smartRaiseThreshold = 0.3  // of the pot
	smartNoise          = 0.1  // noise is uniform in [-smartNoise, smartNoise)
	smartBluffRate      = 0.15 // bluff-raise rate with better than even strength
)

// SmartBot weighs the pot against the price of calling using a fixed
// strength table, with a little noise so it is harder to read.
type SmartBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewSmartBot creates a new SmartBot instance
func NewSmartBot(rng *rand.Rand, logger *log.Logger) *SmartBot {
	return &SmartBot{rng: rng, logger: orDiscard(logger)}
}

// Strength returns the table strength for a hand category.
func Strength(rank poker.HandRank) float64 {
	if int(rank) < len(handStrength) {
		return handStrength[rank]
	}
	return 0
}

// ExpectedValue is s*pot - (1-s)*toCall for strength s.
func ExpectedValue(strength float64, pot, toCall int) float64 {
	return strength*float64(pot) - (1-strength)*float64(toCall)
}

func (b *SmartBot) Decide(hand poker.Hand, pot, toCall int) game.Decision {
	s := Strength(hand.Rank())
	ev := ExpectedValue(s, pot, toCall)
	noise := (b.rng.Float64()*2 - 1) * smartNoise

	b.logger.Debug("evaluating", "hand", hand, "strength", s, "ev", ev, "noise", noise)

	switch {
	case ev > float64(pot)*smartRaiseThreshold+noise:
		raise := int(float64(pot) * (0.5 + s*0.5))
		return game.Decision{Action: game.Raise, Amount: raise, Reasoning: fmt.Sprintf("smart: ev %.1f, raising", ev)}
	case ev > noise*10:
		return game.CheckOrCall(toCall, fmt.Sprintf("smart: ev %.1f, continuing", ev))
	case toCall == 0:
		return game.Decision{Action: game.Check, Reasoning: "smart: free check"}
	case s > 0.5 && b.rng.Float64() < smartBluffRate:
		return game.Decision{Action: game.Raise, Amount: toCall * 2, Reasoning: "smart: bluff raise"}
	default:
		return game.Decision{Action: game.Fold, Reasoning: fmt.Sprintf("smart: ev %.1f, folding", ev)}
	}
}
