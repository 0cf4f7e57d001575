package bot

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/poker"
)

var quiet = log.NewWithOptions(io.Discard, log.Options{})

func TestConservativeBot(t *testing.T) {
	t.Parallel()
	b := NewConservativeBot(quiet)
	tests := []struct {
		name   string
		hand   string
		toCall int
		want   game.Action
	}{
		{"two pair calls", "KhKdQsQc2h", 20, game.Call},
		{"two pair checks when free", "KhKdQsQc2h", 0, game.Check},
		{"full house calls", "3s3h3dKsKh", 50, game.Call},
		{"one pair calls", "AsAhKdQs9h", 5, game.Call},
		{"one pair checks", "AsAhKdQs9h", 0, game.Check},
		{"nothing folds to a bet", "AsKhQd9s7c", 5, game.Fold},
		{"nothing checks when free", "AsKhQd9s7c", 0, game.Check},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := b.Decide(poker.MustParseHand(tt.hand), 10, tt.toCall)
			assert.Equal(t, tt.want, d.Action)
		})
	}
}

func TestAggressiveBotRaisesPairs(t *testing.T) {
	t.Parallel()
	b := NewAggressiveBot(randutil.New(1), quiet)
	pair := poker.MustParseHand("AsAhKdQs9h")

	d := b.Decide(pair, 10, 2)
	assert.Equal(t, game.Raise, d.Action)
	assert.Equal(t, 5, d.Amount)

	d = b.Decide(pair, 4, 4)
	assert.Equal(t, game.Raise, d.Action)
	assert.Equal(t, 8, d.Amount, "half the pot is below the call, so double the call")
}

func TestAggressiveBotBluffsWeakHands(t *testing.T) {
	t.Parallel()
	b := NewAggressiveBot(randutil.New(2), quiet)
	junk := poker.MustParseHand("AsKhQd9s7c")

	counts := map[game.Action]int{}
	for range 1000 {
		d := b.Decide(junk, 40, 5)
		counts[d.Action]++
		if d.Action == game.Bet {
			assert.Equal(t, 10, d.Amount)
		}
	}
	assert.Len(t, counts, 2)
	assert.InDelta(t, 500, counts[game.Bet], 100)
	assert.InDelta(t, 500, counts[game.Fold], 100)
}

func TestSmartBot(t *testing.T) {
	t.Parallel()
	b := NewSmartBot(randutil.New(3), quiet)

	t.Run("monster raises", func(t *testing.T) {
		d := b.Decide(poker.MustParseHand("AsKsQsJsTs"), 100, 10)
		assert.Equal(t, game.Raise, d.Action)
		assert.Equal(t, 100, d.Amount)
	})

	t.Run("junk folds to a big bet", func(t *testing.T) {
		for range 50 {
			d := b.Decide(poker.MustParseHand("AsKhQd9s7c"), 10, 50)
			assert.Equal(t, game.Fold, d.Action)
		}
	})

	t.Run("junk checks when free", func(t *testing.T) {
		for range 50 {
			d := b.Decide(poker.MustParseHand("AsKhQd9s7c"), 10, 0)
			assert.Equal(t, game.Check, d.Action)
		}
	})

	t.Run("decent hand sometimes bluff raises", func(t *testing.T) {
		raises := 0
		for range 1000 {
			d := b.Decide(poker.MustParseHand("KhKdQsQc2h"), 100, 200)
			switch d.Action {
			case game.Raise:
				raises++
				assert.Equal(t, 400, d.Amount)
			default:
				assert.Equal(t, game.Fold, d.Action)
			}
		}
		assert.InDelta(t, 150, raises, 60)
	})
}

func TestExpectedValue(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, 2.0, ExpectedValue(Strength(poker.TopCard), 10, 0), 1e-9)
	assert.InDelta(t, -20.0, ExpectedValue(Strength(poker.TwoPair), 100, 200), 1e-9)
	assert.InDelta(t, 1.0, Strength(poker.RoyalFlush), 1e-9)
	assert.Zero(t, Strength(poker.HandRank(42)))
}

func TestRandBotOnlyPicksLegalActions(t *testing.T) {
	t.Parallel()
	b := NewRandBot(randutil.New(4), quiet)
	hand := poker.MustParseHand("AsKhQd9s7c")
	for range 500 {
		d := b.Decide(hand, 20, 0)
		assert.NotContains(t, []game.Action{game.Fold, game.Call, game.Raise}, d.Action)
		d = b.Decide(hand, 20, 5)
		assert.NotContains(t, []game.Action{game.Check, game.Bet}, d.Action)
		if d.Action == game.Raise {
			assert.Positive(t, d.Amount)
		}
	}
}

func TestSimpleBots(t *testing.T) {
	t.Parallel()
	hand := poker.MustParseHand("AsKhQd9s7c")
	assert.Equal(t, game.Call, NewCallBot(quiet).Decide(hand, 10, 5).Action)
	assert.Equal(t, game.Check, NewCallBot(quiet).Decide(hand, 10, 0).Action)
	assert.Equal(t, game.Fold, NewFoldBot(quiet).Decide(hand, 10, 5).Action)
	assert.Equal(t, game.Check, NewFoldBot(quiet).Decide(hand, 10, 0).Action)
}

func TestBotsLogDecisions(t *testing.T) {
	t.Parallel()
	hand := poker.MustParseHand("KhKd9s4c2h")
	for _, name := range []string{Conservative, Aggressive, Calling, Folding, Random} {
		var buf bytes.Buffer
		logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
		p, err := New(name, randutil.New(9), logger)
		require.NoError(t, err)

		d := p.Decide(hand, 10, 2)
		assert.Contains(t, buf.String(), "decided", name)
		assert.Contains(t, buf.String(), d.Action.String(), name)
	}
}

func TestBotsAcceptNilLogger(t *testing.T) {
	t.Parallel()
	hand := poker.MustParseHand("KhKd9s4c2h")
	assert.NotPanics(t, func() {
		NewConservativeBot(nil).Decide(hand, 10, 2)
		NewAggressiveBot(randutil.New(1), nil).Decide(hand, 10, 2)
		NewCallBot(nil).Decide(hand, 10, 2)
		NewFoldBot(nil).Decide(hand, 10, 2)
		NewRandBot(randutil.New(1), nil).Decide(hand, 10, 2)
	})
}

func TestRegistry(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"aggressive", "calling", "conservative", "folding", "random", "smart"}, Names())

	for _, name := range Names() {
		p, err := New(name, randutil.New(5), nil)
		require.NoError(t, err)
		require.NotNil(t, p)
	}

	p, err := New("SMART", randutil.New(5), quiet)
	require.NoError(t, err)
	assert.IsType(t, &SmartBot{}, p)
	assert.True(t, IsStrategy("Calling"))

	_, err = New("telepathic", nil, quiet)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conservative")
}

func TestBotsPlayManyRoundsWithoutLeakingChips(t *testing.T) {
	t.Parallel()
	rng := randutil.New(6)
	g := game.NewGame(rng, quiet, game.WithSmallBlind(5))
	for _, name := range Names() {
		p, err := New(name, rng, quiet)
		require.NoError(t, err)
		_, err = g.AddParticipant(name, 500, p)
		require.NoError(t, err)
	}

	total := g.TotalChips()
	for range 500 {
		_, err := g.RunRound()
		if errors.Is(err, game.ErrNotEnoughPlayers) {
			break
		}
		require.NoError(t, err)
		require.Equal(t, total, g.TotalChips())
	}
}
