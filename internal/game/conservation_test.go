package game

import (
	"errors"
	"io"
	rand "math/rand/v2"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/poker"
)

// chaoticProvider picks any action with any amount, legal or not.
func chaoticProvider(rng *rand.Rand) DecisionFunc {
	return func(_ poker.Hand, pot, toCall int) Decision {
		switch rng.IntN(7) {
		case 0:
			return Decision{Action: Fold}
		case 1:
			return Decision{Action: Check}
		case 2, 3:
			return Decision{Action: Call}
		case 4:
			return Decision{Action: Bet, Amount: rng.IntN(pot + 1)}
		case 5:
			return Decision{Action: Raise, Amount: rng.IntN(40) - 5}
		default:
			return Decision{Action: AllIn}
		}
	}
}

func TestChipConservationUnderRandomPlay(t *testing.T) {
	t.Parallel()
	for _, seed := range []int64{1, 2, 3, 4, 5} {
		rng := randutil.New(seed)
		g := NewGame(rng, log.New(io.Discard), WithSmallBlind(2))
		for _, name := range []string{"A", "B", "C", "D", "E"} {
			_, err := g.AddParticipant(name, 100, chaoticProvider(rng))
			require.NoError(t, err)
		}

		for round := range 300 {
			result, err := g.RunRound()
			if errors.Is(err, ErrNotEnoughPlayers) {
				break
			}
			require.NoError(t, err, "seed %d round %d", seed, round)
			require.Equal(t, 500, g.TotalChips())

			paid, net := 0, 0
			for _, w := range result.Winners {
				paid += w.Amount
			}
			for i, s := range g.Seats() {
				require.GreaterOrEqual(t, s.Stack, 0)
				require.Equal(t, 0, s.Committed)
				net += result.Net[i]
			}
			require.Equal(t, result.Pot, paid)
			require.Equal(t, 0, net)
		}
	}
}
