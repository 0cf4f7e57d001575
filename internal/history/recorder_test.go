package history

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/poker"
)

var (
	aliceHand = poker.MustParseHand("As Ks Qs Js 9d")
	carolHand = poker.MustParseHand("8c 8d 4h 3s 2c")
)

// headsUp publishes a round between Alice and Carol with Bob sitting out.
func headsUp(r *Recorder, id string) {
	r.OnEvent(game.RoundStartedEvent{
		RoundID:    id,
		Dealer:     2,
		SmallBlind: 1,
		BigBlind:   2,
		Seats: []game.SeatSummary{
			{Index: 0, Name: "Alice", Stack: 50},
			{Index: 1, Name: "Bob", SittingOut: true},
			{Index: 2, Name: "Carol", Stack: 80},
		},
	})
	r.OnEvent(game.BlindPostedEvent{RoundID: id, Seat: 0, Name: "Alice", Amount: 1})
	r.OnEvent(game.BlindPostedEvent{RoundID: id, Seat: 2, Name: "Carol", Amount: 2, Big: true})
	r.OnEvent(game.CardsDealtEvent{RoundID: id, Seat: 0, Name: "Alice", Hand: aliceHand})
	r.OnEvent(game.CardsDealtEvent{RoundID: id, Seat: 2, Name: "Carol", Hand: carolHand})
	r.OnEvent(game.ActionTakenEvent{RoundID: id, ActionRecord: game.ActionRecord{
		Seat: 0, Name: "Alice", Action: game.Raise, Amount: 5, ToCall: 1, PotAfter: 8,
	}})
	r.OnEvent(game.ActionTakenEvent{RoundID: id, ActionRecord: game.ActionRecord{
		Seat: 2, Name: "Carol", Action: game.Call, Amount: 4, ToCall: 4, PotAfter: 12,
	}})
	r.OnEvent(game.RoundEndedEvent{
		RoundID:  id,
		Pot:      12,
		Showdown: true,
		Revealed: []game.RevealedHand{
			{Seat: 0, Name: "Alice", Hand: aliceHand, Value: aliceHand.Value()},
			{Seat: 2, Name: "Carol", Hand: carolHand, Value: carolHand.Value()},
		},
		Winners: []game.Payout{{Seat: 2, Name: "Carol", Amount: 12, Hand: carolHand, Value: carolHand.Value()}},
		Stacks:  []int{44, 0, 86},
	})
}

func readSessions(t *testing.T, path string) map[string]Round {
	t.Helper()
	var sections map[string]Round
	_, err := toml.DecodeFile(path, &sections)
	require.NoError(t, err)
	return sections
}

func TestRecorderWritesRound(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "session.phhs")
	r, err := NewRecorder(Config{Path: path, Table: "main", FlushRounds: 1}, nil)
	require.NoError(t, err)

	headsUp(r, "r1")

	sections := readSessions(t, path)
	require.Len(t, sections, 1)
	round := sections["1"]

	assert.Equal(t, Variant, round.Variant)
	assert.Equal(t, "main", round.Table)
	assert.Equal(t, "r1", round.RoundID)
	assert.Equal(t, 3, round.SeatCount)
	assert.Equal(t, []int{1, 3}, round.Seats)
	assert.Equal(t, []string{"Alice", "Carol"}, round.Players)
	assert.Equal(t, []int{1, 2}, round.BlindsOrStraddles)
	assert.Equal(t, 2, round.MinBet)
	assert.Equal(t, []int{50, 80}, round.StartingStacks)
	assert.Equal(t, []int{44, 86}, round.FinishingStacks)
	assert.Equal(t, []int{0, 12}, round.Winnings)
	assert.Nil(t, round.UncalledReturned)
	assert.Equal(t, []string{
		"d dh p1 ??????????",
		"d dh p2 ??????????",
		"p1 cbr 6",
		"p2 cc",
		"p1 sm AsKsQsJs9d",
		"p2 sm 8d8c4h3s2c",
	}, round.Actions)
}

func TestRecorderRecordsUncalledReturn(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "session.phhs")
	r, err := NewRecorder(Config{Path: path, FlushRounds: 1}, nil)
	require.NoError(t, err)

	r.OnEvent(game.RoundStartedEvent{
		RoundID:    "r1",
		Dealer:     2,
		SmallBlind: 1,
		BigBlind:   2,
		Seats: []game.SeatSummary{
			{Index: 0, Name: "Alice", Stack: 50},
			{Index: 1, Name: "Bob", SittingOut: true},
			{Index: 2, Name: "Carol", Stack: 80},
		},
	})
	r.OnEvent(game.BlindPostedEvent{RoundID: "r1", Seat: 0, Name: "Alice", Amount: 1})
	r.OnEvent(game.BlindPostedEvent{RoundID: "r1", Seat: 2, Name: "Carol", Amount: 2, Big: true})
	r.OnEvent(game.ActionTakenEvent{RoundID: "r1", ActionRecord: game.ActionRecord{
		Seat: 0, Name: "Alice", Action: game.Raise, Amount: 10, ToCall: 1, PotAfter: 13,
	}})
	r.OnEvent(game.ActionTakenEvent{RoundID: "r1", ActionRecord: game.ActionRecord{
		Seat: 2, Name: "Carol", Action: game.Fold, ToCall: 9, PotAfter: 13,
	}})
	r.OnEvent(game.RoundEndedEvent{
		RoundID:    "r1",
		Pot:        4,
		Winners:    []game.Payout{{Seat: 0, Name: "Alice", Amount: 4}},
		Stacks:     []int{52, 0, 78},
		Refunded:   9,
		RefundSeat: 0,
	})

	round := readSessions(t, path)["1"]
	assert.Equal(t, []int{9, 0}, round.UncalledReturned)
	assert.Equal(t, []int{4, 0}, round.Winnings)
	assert.Equal(t, []int{52, 78}, round.FinishingStacks)
	assert.Equal(t, []string{"p1 cbr 11", "p2 f"}, round.Actions)
}

func TestRecorderIncludesHands(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "session.phhs")
	r, err := NewRecorder(Config{Path: path, IncludeHands: true, FlushRounds: 1}, nil)
	require.NoError(t, err)

	headsUp(r, "r1")

	round := readSessions(t, path)["1"]
	assert.Equal(t, "d dh p1 AsKsQsJs9d", round.Actions[0])
	assert.Equal(t, "d dh p2 8d8c4h3s2c", round.Actions[1])
}

func TestRecorderBuffersUntilFlush(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "session.phhs")
	r, err := NewRecorder(Config{Path: path, FlushRounds: 3}, nil)
	require.NoError(t, err)

	headsUp(r, "r1")
	headsUp(r, "r2")
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "file written before threshold")

	require.NoError(t, r.Close())
	sections := readSessions(t, path)
	require.Len(t, sections, 2)
	assert.Equal(t, "r1", sections["1"].RoundID)
	assert.Equal(t, "r2", sections["2"].RoundID)
	assert.Equal(t, 2, r.Rounds())
}

func TestRecorderDisablesAfterRepeatedFailures(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	target := filepath.Join(dir, "taken")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "child"), nil, 0o644))

	r, err := NewRecorder(Config{Path: target, FlushRounds: 10}, nil)
	require.NoError(t, err)
	headsUp(r, "r1")

	for range maxFlushFailures {
		assert.Error(t, r.Flush())
	}
	assert.True(t, r.Disabled())
	assert.NoError(t, r.Flush())
}

func TestRecorderRequiresPath(t *testing.T) {
	t.Parallel()
	_, err := NewRecorder(Config{}, nil)
	assert.Error(t, err)
}

func TestRecorderFollowsGame(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "session.phhs")
	r, err := NewRecorder(Config{Path: path, FlushRounds: 5}, nil)
	require.NoError(t, err)

	bus := game.NewEventBus()
	bus.Subscribe(r)
	g := game.NewGame(randutil.New(11), nil, game.WithEventBus(bus))
	caller := game.DecisionFunc(func(_ poker.Hand, _, toCall int) game.Decision {
		return game.CheckOrCall(toCall, "")
	})
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		_, err := g.AddParticipant(name, 100, caller)
		require.NoError(t, err)
	}

	for range 4 {
		_, err := g.RunRound()
		require.NoError(t, err)
	}
	require.NoError(t, r.Close())

	sections := readSessions(t, path)
	require.Len(t, sections, 4)
	for key, round := range sections {
		require.Len(t, round.Players, 3, key)
		assert.Equal(t, 300, sum(round.StartingStacks), key)
		assert.Equal(t, 300, sum(round.FinishingStacks), key)
		assert.Equal(t, 6, sum(round.Winnings), key)
		assert.Equal(t, []int{1, 2, 0}, round.BlindsOrStraddles, key)

		var deals, shows int
		for _, a := range round.Actions {
			switch {
			case strings.HasPrefix(a, "d dh "):
				deals++
			case strings.Contains(a, " sm "):
				shows++
			}
		}
		assert.Equal(t, 3, deals, key)
		assert.Equal(t, 3, shows, key)
	}
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

func TestFormatAction(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		record game.ActionRecord
		total  int
		want   string
	}{
		{"fold", game.ActionRecord{Action: game.Fold}, 1, "p1 f"},
		{"check", game.ActionRecord{Action: game.Check}, 2, "p1 cc"},
		{"call", game.ActionRecord{Action: game.Call, Amount: 2, ToCall: 2}, 2, "p1 cc"},
		{"bet", game.ActionRecord{Action: game.Bet, Amount: 4}, 6, "p1 cbr 6"},
		{"raise", game.ActionRecord{Action: game.Raise, Amount: 8, ToCall: 2}, 10, "p1 cbr 10"},
		{"all-in raise", game.ActionRecord{Action: game.AllIn, Amount: 20, ToCall: 2}, 22, "p1 cbr 22"},
		{"all-in call", game.ActionRecord{Action: game.AllIn, Amount: 3, ToCall: 5}, 4, "p1 cc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAction(0, tt.record, tt.total), tt.name)
	}
}

func TestFormatCardsHidesZeroHand(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "??????????", FormatCards(poker.Hand{}))
	assert.Equal(t, "AsKsQsJs9d", FormatCards(aliceHand))
}
