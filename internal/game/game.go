package game

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/drawpoker/poker"
)

// MaxSeats is the most seats a single deck can deal a full hand to.
const MaxSeats = poker.DeckSize / poker.HandSize

// Game runs successive betting rounds for a fixed ring of seats. A Game is
// not safe for concurrent use; run independent tables on separate Games.
type Game struct {
	logger     *log.Logger
	deck       CardSource
	bus        EventBus
	clock      quartz.Clock
	newID      func() string
	smallBlind int

	seats     []*Seat
	providers []DecisionProvider
	dealer    int

	round      Round
	firstToAct int
	actions    []ActionRecord
	running    bool
}

// NewGame creates an empty table. The rng is required so that every
// shuffle is reproducible from a seed.
func NewGame(rng *rand.Rand, logger *log.Logger, opts ...Option) *Game {
	if rng == nil {
		panic("game: rng is required")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.smallBlind <= 0 {
		panic(fmt.Sprintf("game: small blind must be positive, got %d", cfg.smallBlind))
	}
	if cfg.dealer < 0 {
		panic(fmt.Sprintf("game: dealer must not be negative, got %d", cfg.dealer))
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	deck := cfg.deck
	if deck == nil {
		deck = poker.NewDeck(rng)
	}

	return &Game{
		logger:     logger.WithPrefix("game"),
		deck:       deck,
		bus:        cfg.bus,
		clock:      cfg.clock,
		newID:      cfg.newID,
		smallBlind: cfg.smallBlind,
		dealer:     cfg.dealer,
	}
}

// AddParticipant seats a new player with the given stack, returning the
// seat index. Seats are filled in table order.
func (g *Game) AddParticipant(name string, stack int, provider DecisionProvider) (int, error) {
	if g.running {
		return -1, ErrRoundInProgress
	}
	if provider == nil {
		return -1, ErrNilProvider
	}
	if stack < 0 {
		return -1, fmt.Errorf("%w: %d", ErrInvalidStack, stack)
	}
	if len(g.seats) >= MaxSeats {
		return -1, fmt.Errorf("%w: %d seats", ErrTableFull, MaxSeats)
	}

	idx := len(g.seats)
	if name == "" {
		name = fmt.Sprintf("Seat %d", idx+1)
	}
	g.seats = append(g.seats, &Seat{Index: idx, Name: name, Stack: stack})
	g.providers = append(g.providers, provider)
	g.logger.Debug("participant added", "seat", idx, "name", name, "stack", stack)
	return idx, nil
}

// Seats returns a snapshot of every seat.
func (g *Game) Seats() []Seat {
	out := make([]Seat, len(g.seats))
	for i, s := range g.seats {
		out[i] = *s
	}
	return out
}

// Round returns a snapshot of the current round state.
func (g *Game) Round() Round {
	return g.round
}

// Dealer returns the seat holding the button for the next round.
func (g *Game) Dealer() int {
	return g.dealer
}

// SmallBlind returns the small blind. The big blind is twice it.
func (g *Game) SmallBlind() int {
	return g.smallBlind
}

// TotalChips returns every chip at the table, in stacks or committed.
func (g *Game) TotalChips() int {
	total := 0
	for _, s := range g.seats {
		total += s.Stack + s.Committed
	}
	return total
}

// PlayableSeats returns how many seats have chips to play a round with.
func (g *Game) PlayableSeats() int {
	n := 0
	for _, s := range g.seats {
		if s.Stack > 0 {
			n++
		}
	}
	return n
}

// RunRound plays one complete round: blinds, deal, a single betting
// round, showdown and settlement. The dealer button moves one seat on
// afterwards. A round that fails part way returns every committed chip to
// its seat and leaves the button where it was.
func (g *Game) RunRound() (*RoundResult, error) {
	if g.running {
		return nil, ErrRoundInProgress
	}
	if n := g.PlayableSeats(); n < 2 {
		return nil, fmt.Errorf("%w: %d of %d seats have chips", ErrNotEnoughPlayers, n, len(g.seats))
	}
	g.running = true
	defer func() { g.running = false }()

	startStacks := make([]int, len(g.seats))
	for i, s := range g.seats {
		startStacks[i] = s.Stack
	}
	chipsBefore := g.TotalChips()

	g.startRound()
	if err := g.postBlinds(); err != nil {
		return nil, g.abandon(err)
	}
	if err := g.deal(); err != nil {
		return nil, g.abandon(err)
	}
	if err := g.runBetting(); err != nil {
		return nil, g.abandon(err)
	}

	refundSeat, refunded := g.refundUncalled()
	if err := g.checkPot(); err != nil {
		return nil, g.abandon(err)
	}

	g.round.State = Showdown
	winners, revealed, err := g.resolve()
	if err != nil {
		return nil, g.abandon(err)
	}
	pot := g.round.Pot
	g.settle(winners)

	if after := g.TotalChips(); after != chipsBefore {
		return nil, fmt.Errorf("%w: %d chips before round %s, %d after", ErrChipConservation, chipsBefore, g.round.ID, after)
	}

	result := &RoundResult{
		ID:       g.round.ID,
		Dealer:   g.round.Dealer,
		Pot:      pot,
		Showdown: revealed != nil,
		Winners:  winners,
		Revealed: revealed,
		Actions:  append([]ActionRecord(nil), g.actions...),
		Refunded: refunded,
		DealtIn:  make([]bool, len(g.seats)),
		Stacks:   make([]int, len(g.seats)),
		Net:      make([]int, len(g.seats)),
	}
	for i, s := range g.seats {
		result.DealtIn[i] = !s.SittingOut
		result.Stacks[i] = s.Stack
		result.Net[i] = s.Stack - startStacks[i]
	}

	g.publish(RoundEndedEvent{
		RoundID:    g.round.ID,
		Pot:        pot,
		Showdown:   result.Showdown,
		Winners:    winners,
		Revealed:   revealed,
		Stacks:     append([]int(nil), result.Stacks...),
		Refunded:   refunded,
		RefundSeat: refundSeat,
		timestamp:  g.clock.Now(),
	})
	g.logger.Info("round complete",
		"round", g.round.ID,
		"pot", pot,
		"showdown", result.Showdown,
		"winners", len(winners),
		"actions", len(g.actions))

	g.dealer = (g.dealer + 1) % len(g.seats)
	return result, nil
}

// abandon undoes a round that failed after chips went in: every seat
// takes back what it committed and the pot is emptied.
func (g *Game) abandon(cause error) error {
	for _, s := range g.seats {
		s.refund(s.Committed)
		s.slot = NoHand()
	}
	g.round.Pot = 0
	g.round.CurrentBet = 0
	g.round.State = NotStarted
	g.logger.Warn("round abandoned", "round", g.round.ID, "err", cause)
	return cause
}

func (g *Game) startRound() {
	g.dealer %= len(g.seats)
	g.deck.Reset()
	g.deck.Shuffle()
	for _, s := range g.seats {
		s.resetForRound()
	}
	g.actions = g.actions[:0]
	g.round = Round{
		ID:         g.newID(),
		State:      NotStarted,
		Dealer:     g.dealer,
		SmallBlind: g.smallBlind,
		BigBlind:   2 * g.smallBlind,
	}

	summaries := make([]SeatSummary, len(g.seats))
	for i, s := range g.seats {
		summaries[i] = SeatSummary{Index: i, Name: s.Name, Stack: s.Stack, SittingOut: s.SittingOut}
	}
	g.publish(RoundStartedEvent{
		RoundID:    g.round.ID,
		Dealer:     g.dealer,
		SmallBlind: g.round.SmallBlind,
		BigBlind:   g.round.BigBlind,
		Seats:      summaries,
		timestamp:  g.clock.Now(),
	})
	g.logger.Debug("round started", "round", g.round.ID, "dealer", g.dealer)
}

// nextInPlay returns the first seat after from, clockwise, that was dealt
// into this round.
func (g *Game) nextInPlay(from int) int {
	n := len(g.seats)
	for i := 1; i <= n; i++ {
		idx := (from + i) % n
		if !g.seats[idx].SittingOut {
			return idx
		}
	}
	return -1
}

func (g *Game) postBlinds() error {
	sb := g.nextInPlay(g.dealer)
	bb := g.nextInPlay(sb)

	if err := g.postBlind(g.seats[sb], g.round.SmallBlind, false); err != nil {
		return err
	}
	if err := g.postBlind(g.seats[bb], g.round.BigBlind, true); err != nil {
		return err
	}

	g.round.CurrentBet = max(g.seats[sb].Committed, g.seats[bb].Committed)
	g.round.State = BlindsPosted
	g.firstToAct = g.nextInPlay(bb)
	return nil
}

// postBlind takes a forced bet. A seat that cannot cover the blind posts
// its whole stack and is all-in for the rest of the round.
func (g *Game) postBlind(seat *Seat, blind int, big bool) error {
	amount := min(blind, seat.Stack)
	if err := seat.Commit(amount); err != nil {
		return fmt.Errorf("posting blind: %w", err)
	}
	g.round.Pot += amount

	if amount < blind {
		g.logger.Debug("short blind", "seat", seat.Index, "blind", blind, "posted", amount)
	}
	g.publish(BlindPostedEvent{
		RoundID:   g.round.ID,
		Seat:      seat.Index,
		Name:      seat.Name,
		Amount:    amount,
		Big:       big,
		AllIn:     seat.Stack == 0,
		timestamp: g.clock.Now(),
	})
	return nil
}

func (g *Game) deal() error {
	n := len(g.seats)
	for i := 1; i <= n; i++ {
		seat := g.seats[(g.dealer+i)%n]
		if seat.SittingOut {
			continue
		}
		hand, err := g.deck.DealHand()
		if err != nil {
			return fmt.Errorf("dealing seat %d: %w", seat.Index, err)
		}
		seat.slot = Dealt(hand)
		g.publish(CardsDealtEvent{
			RoundID:   g.round.ID,
			Seat:      seat.Index,
			Name:      seat.Name,
			Hand:      hand,
			timestamp: g.clock.Now(),
		})
	}
	g.round.State = Dealt
	return nil
}

func (g *Game) publish(event GameEvent) {
	if g.bus != nil {
		g.bus.Publish(event)
	}
}

// checkPot verifies the pot equals the chips committed this round.
func (g *Game) checkPot() error {
	committed := 0
	for _, s := range g.seats {
		committed += s.Committed
	}
	if committed != g.round.Pot {
		return fmt.Errorf("%w: pot %d, committed %d", ErrChipConservation, g.round.Pot, committed)
	}
	return nil
}
