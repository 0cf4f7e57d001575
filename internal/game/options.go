package game

import (
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/drawpoker/poker"
)

// Option configures a Game during creation.
type Option func(*gameConfig)

type gameConfig struct {
	smallBlind int
	dealer     int
	bus        EventBus
	clock      quartz.Clock
	deck       CardSource
	newID      func() string
}

func defaultConfig() gameConfig {
	return gameConfig{
		smallBlind: 1,
		clock:      quartz.NewReal(),
		newID:      newRoundID,
	}
}

// newRoundID returns a time-ordered UUIDv7 so round ids sort by start time.
func newRoundID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// WithSmallBlind sets the small blind. The big blind is always twice it.
// Default is 1.
func WithSmallBlind(amount int) Option {
	return func(c *gameConfig) { c.smallBlind = amount }
}

// WithDealer sets the seat holding the button for the first round. Seats
// past the end wrap around; NewGame panics on a negative seat.
func WithDealer(seat int) Option {
	return func(c *gameConfig) { c.dealer = seat }
}

// WithEventBus publishes round events to bus.
func WithEventBus(bus EventBus) Option {
	return func(c *gameConfig) { c.bus = bus }
}

// WithClock sets the clock used to timestamp events.
func WithClock(clock quartz.Clock) Option {
	return func(c *gameConfig) { c.clock = clock }
}

// CardSource supplies hands to a Game. *poker.Deck is the standard
// implementation; tests substitute stacked sources to fix the cards.
type CardSource interface {
	Reset()
	Shuffle()
	DealHand() (poker.Hand, error)
}

// WithDeck deals from deck instead of a deck built from the game's rng.
func WithDeck(deck CardSource) Option {
	return func(c *gameConfig) { c.deck = deck }
}

// WithRoundIDs replaces the uuid generator used for round ids.
func WithRoundIDs(next func() string) Option {
	return func(c *gameConfig) { c.newID = next }
}
