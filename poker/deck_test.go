package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/drawpoker/internal/randutil"
)

func TestNewDeckHasEveryCard(t *testing.T) {
	t.Parallel()
	d := NewDeck(randutil.New(1))
	assert.Equal(t, DeckSize, d.Remaining())

	cards, err := d.Deal(DeckSize)
	require.NoError(t, err)

	seen := make(map[Card]bool)
	for _, c := range cards {
		require.True(t, c.Valid())
		seen[c] = true
	}
	assert.Len(t, seen, DeckSize)
	assert.Equal(t, 0, d.Remaining())
}

func TestDealNeverRepeats(t *testing.T) {
	t.Parallel()
	d := NewDeck(randutil.New(42))
	d.Shuffle()

	a, err := d.DealHand()
	require.NoError(t, err)
	b, err := d.DealHand()
	require.NoError(t, err)

	seen := make(map[Card]bool)
	for _, c := range append(a.Cards(), b.Cards()...) {
		seen[c] = true
	}
	assert.Len(t, seen, 10)
	assert.Equal(t, DeckSize-10, d.Remaining())
}

func TestDealExhausted(t *testing.T) {
	t.Parallel()
	d := NewDeck(randutil.New(3))

	_, err := d.Deal(50)
	require.NoError(t, err)

	_, err = d.Deal(3)
	require.ErrorIs(t, err, ErrDeckExhausted)
	assert.Equal(t, 2, d.Remaining(), "failed deal must not consume cards")

	_, err = d.DealHand()
	require.ErrorIs(t, err, ErrDeckExhausted)

	_, err = d.Deal(-1)
	require.Error(t, err)
}

func TestShuffleIsDeterministicPerSeed(t *testing.T) {
	t.Parallel()
	deal := func(seed int64) []Card {
		d := NewDeck(randutil.New(seed))
		d.Shuffle()
		cards, err := d.Deal(DeckSize)
		require.NoError(t, err)
		return cards
	}

	assert.Equal(t, deal(99), deal(99))
	assert.NotEqual(t, deal(99), deal(100))
}

func TestShuffleOnlyTouchesUndealtCards(t *testing.T) {
	t.Parallel()
	d := NewDeck(randutil.New(5))
	dealt, err := d.Deal(10)
	require.NoError(t, err)

	d.Shuffle()
	rest, err := d.Deal(d.Remaining())
	require.NoError(t, err)

	for _, c := range rest {
		assert.NotContains(t, dealt, c)
	}
	assert.Len(t, rest, DeckSize-10)
}

func TestResetRestoresDeck(t *testing.T) {
	t.Parallel()
	d := NewDeck(randutil.New(8))
	d.Shuffle()
	_, err := d.Deal(20)
	require.NoError(t, err)

	d.Reset()
	assert.Equal(t, DeckSize, d.Remaining())
	first, err := d.Deal(1)
	require.NoError(t, err)
	assert.Equal(t, NewCard(Two, Clubs), first[0])
}

func TestNewDeckRequiresRNG(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { NewDeck(nil) })
}
