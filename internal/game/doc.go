// Package game runs single-street five-card draw poker rounds.
//
// The main type is Game, which owns a deck, a ring of seats and the
// dealer button. Each call to RunRound plays one complete round:
//
//	NotStarted -> BlindsPosted -> Dealt -> Betting -> Showdown -> Settled
//
// Seats are driven through the DecisionProvider interface, so policies,
// scripted test players and interactive humans are interchangeable.
//
// # Basic Usage
//
//	rng := randutil.New(42)
//	g := game.NewGame(rng, logger, game.WithSmallBlind(5))
//	g.AddParticipant("Alice", 500, aliceProvider)
//	g.AddParticipant("Bob", 500, bobProvider)
//	result, err := g.RunRound()
//
// # Deterministic Testing
//
// All randomness comes from the *rand.Rand passed to NewGame, and event
// timestamps come from a quartz.Clock (WithClock), so rounds replay
// exactly under a fixed seed and a mock clock. WithDeck accepts a
// pre-arranged deck for fixed-card scenarios.
//
// # Chip Accounting
//
// The pot always equals the sum of the chips seats have committed this
// round, and the table's total chips never change across a round. Both
// are checked as the round runs; a violation aborts the round with
// ErrChipConservation.
package game
