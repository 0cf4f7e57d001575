// Package history records completed rounds to a PHH-style session file.
package history

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/fileutil"
	"github.com/lox/drawpoker/internal/game"
)

const (
	defaultFlushRounds = 10
	maxFlushFailures   = 3
)

// Config configures a Recorder
type Config struct {
	Path         string // session file, rewritten atomically on each flush
	Table        string
	IncludeHands bool // record every dealt hand instead of "??"
	FlushRounds  int  // completed rounds buffered between flushes
}

// Recorder is a game.EventSubscriber that turns a stream of round events
// into history sections and periodically writes them to disk.
type Recorder struct {
	cfg    Config
	logger *log.Logger

	mu       sync.Mutex
	current  *roundState
	encoded  bytes.Buffer
	sections int
	pending  int
	failures int
	disabled bool
}

type roundState struct {
	round     *Round
	position  []int // seat index to player position, -1 when not dealt in
	committed []int // chips committed per seat this round
}

func (s *roundState) player(seat int) int {
	if seat < 0 || seat >= len(s.position) {
		return -1
	}
	return s.position[seat]
}

// NewRecorder creates a recorder writing to cfg.Path
func NewRecorder(cfg Config, logger *log.Logger) (*Recorder, error) {
	if cfg.Path == "" {
		return nil, errors.New("history: Path is required")
	}
	if cfg.FlushRounds <= 0 {
		cfg.FlushRounds = defaultFlushRounds
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{cfg: cfg, logger: logger.WithPrefix("history")}, nil
}

// OnEvent implements game.EventSubscriber
func (r *Recorder) OnEvent(event game.GameEvent) {
	r.mu.Lock()
	if r.disabled {
		r.mu.Unlock()
		return
	}

	flush := false
	switch e := event.(type) {
	case game.RoundStartedEvent:
		r.onRoundStarted(e)
	case game.BlindPostedEvent:
		r.onBlindPosted(e)
	case game.CardsDealtEvent:
		r.onCardsDealt(e)
	case game.ActionTakenEvent:
		r.onActionTaken(e)
	case game.RoundEndedEvent:
		flush = r.onRoundEnded(e)
	}
	r.mu.Unlock()

	if flush {
		if err := r.Flush(); err != nil {
			r.logger.Error("flush failed", "path", r.cfg.Path, "error", err)
		}
	}
}

func (r *Recorder) onRoundStarted(e game.RoundStartedEvent) {
	n := len(e.Seats)
	state := &roundState{
		position:  make([]int, n),
		committed: make([]int, n),
	}
	round := &Round{
		Variant:   Variant,
		Table:     r.cfg.Table,
		SeatCount: n,
		MinBet:    e.BigBlind,
		RoundID:   e.RoundID,
		Timestamp: e.Timestamp(),
	}

	for i := range state.position {
		state.position[i] = -1
	}
	// Positions run clockwise from the seat after the dealer.
	for i := 1; i <= n; i++ {
		s := e.Seats[(e.Dealer+i)%n]
		if s.SittingOut {
			continue
		}
		state.position[s.Index] = len(round.Players)
		round.Seats = append(round.Seats, s.Index+1)
		round.Players = append(round.Players, s.Name)
		round.StartingStacks = append(round.StartingStacks, s.Stack)
	}

	players := len(round.Players)
	round.Antes = make([]int, players)
	round.BlindsOrStraddles = make([]int, players)
	round.FinishingStacks = make([]int, players)
	round.Winnings = make([]int, players)
	state.round = round
	r.current = state
}

func (r *Recorder) onBlindPosted(e game.BlindPostedEvent) {
	if r.current == nil {
		return
	}
	if p := r.current.player(e.Seat); p >= 0 {
		r.current.round.BlindsOrStraddles[p] = e.Amount
		r.current.committed[e.Seat] += e.Amount
	}
}

func (r *Recorder) onCardsDealt(e game.CardsDealtEvent) {
	if r.current == nil {
		return
	}
	p := r.current.player(e.Seat)
	if p < 0 {
		return
	}
	cards := hiddenHand
	if r.cfg.IncludeHands {
		cards = FormatCards(e.Hand)
	}
	r.current.round.Actions = append(r.current.round.Actions, fmt.Sprintf("d dh p%d %s", p+1, cards))
}

func (r *Recorder) onActionTaken(e game.ActionTakenEvent) {
	if r.current == nil {
		return
	}
	p := r.current.player(e.Seat)
	if p < 0 {
		return
	}
	r.current.committed[e.Seat] += e.Amount
	action := FormatAction(p, e.ActionRecord, r.current.committed[e.Seat])
	r.current.round.Actions = append(r.current.round.Actions, action)
}

// onRoundEnded completes the current round and reports whether enough
// rounds are buffered to flush.
func (r *Recorder) onRoundEnded(e game.RoundEndedEvent) bool {
	state := r.current
	if state == nil {
		return false
	}
	r.current = nil
	round := state.round

	for _, h := range e.Revealed {
		if p := state.player(h.Seat); p >= 0 {
			round.Actions = append(round.Actions, fmt.Sprintf("p%d sm %s", p+1, FormatCards(h.Hand)))
		}
	}
	if e.Refunded > 0 {
		if p := state.player(e.RefundSeat); p >= 0 {
			round.UncalledReturned = make([]int, len(round.Players))
			round.UncalledReturned[p] = e.Refunded
		}
	}
	for _, w := range e.Winners {
		if p := state.player(w.Seat); p >= 0 {
			round.Winnings[p] += w.Amount
		}
	}
	for seat, stack := range e.Stacks {
		if p := state.player(seat); p >= 0 {
			round.FinishingStacks[p] = stack
		}
	}
	round.populateTimeFields()

	section := r.sections + 1
	if err := writeSection(&r.encoded, section, round); err != nil {
		r.logger.Error("encode failed", "round", round.RoundID, "error", err)
		return false
	}
	r.sections = section
	r.pending++
	return r.pending >= r.cfg.FlushRounds
}

// Flush writes every recorded round to disk. After repeated failures the
// recorder disables itself and drops further rounds.
func (r *Recorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.disabled || r.pending == 0 {
		return nil
	}

	err := fileutil.WriteFileAtomic(r.cfg.Path, r.encoded.Bytes(), 0o644)
	if err != nil {
		r.failures++
		if r.failures >= maxFlushFailures {
			r.disabled = true
			r.logger.Error("recording disabled after repeated failures",
				"path", r.cfg.Path, "dropped_rounds", r.pending)
		}
		return err
	}
	r.failures = 0
	r.pending = 0
	r.logger.Debug("flushed", "path", r.cfg.Path, "rounds", r.sections)
	return nil
}

// Close flushes any buffered rounds
func (r *Recorder) Close() error {
	return r.Flush()
}

// Rounds returns the number of rounds recorded
func (r *Recorder) Rounds() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sections
}

// Disabled reports whether recording stopped after flush failures
func (r *Recorder) Disabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.disabled
}

func writeSection(w io.Writer, section int, round *Round) error {
	if section > 1 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "[%d]\n", section); err != nil {
		return err
	}
	return Encode(w, round)
}
