package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/drawpoker/poker"
)

func TestSeatCommit(t *testing.T) {
	t.Parallel()
	s := &Seat{Index: 0, Name: "Alice", Stack: 50}

	require.NoError(t, s.Commit(20))
	assert.Equal(t, 30, s.Stack)
	assert.Equal(t, 20, s.Committed)
	assert.Equal(t, 20, s.TotalCommitted)

	err := s.Commit(31)
	require.ErrorIs(t, err, ErrInsufficientChips)
	assert.Equal(t, 30, s.Stack, "a failed commit leaves the seat untouched")
	assert.Equal(t, 20, s.Committed)

	require.Error(t, s.Commit(-1))

	require.NoError(t, s.Commit(30))
	assert.True(t, s.IsAllIn())
	assert.False(t, s.CanAct())
}

func TestSeatHandSlot(t *testing.T) {
	t.Parallel()
	s := &Seat{Index: 2, Name: "Bob", Stack: 10}

	_, err := s.Hand()
	require.ErrorIs(t, err, ErrNoActiveHand)

	h := poker.MustParseHand("AsKsQsJsTs")
	s.slot = Dealt(h)
	got, err := s.Hand()
	require.NoError(t, err)
	assert.Equal(t, h, got)

	s.Fold()
	assert.True(t, s.Folded)
	assert.False(t, s.InHand())
	_, err = s.Hand()
	require.ErrorIs(t, err, ErrNoActiveHand)

	_, ok := NoHand().Hand()
	assert.False(t, ok)
}

func TestSeatResetForRound(t *testing.T) {
	t.Parallel()
	s := &Seat{Stack: 0, Committed: 5, Folded: true, slot: Dealt(poker.MustParseHand("AsKsQsJsTs"))}
	s.resetForRound()
	assert.True(t, s.SittingOut)
	assert.False(t, s.InHand())
	assert.Equal(t, 0, s.Committed)

	s.Award(40)
	s.resetForRound()
	assert.False(t, s.SittingOut)
	assert.True(t, s.CanAct())
	assert.False(t, s.Slot().IsDealt())
}

func TestActionStrings(t *testing.T) {
	t.Parallel()
	for _, a := range []Action{Fold, Check, Call, Bet, Raise, AllIn} {
		parsed, ok := ParseAction(a.String())
		require.True(t, ok)
		assert.Equal(t, a, parsed)
	}
	assert.Equal(t, "unknown", Action(99).String())
	assert.Equal(t, "showdown", Showdown.String())
}
