package game

import (
	"fmt"

	"github.com/lox/drawpoker/poker"
)

// HandSlot holds either a dealt hand or nothing.
type HandSlot struct {
	hand  poker.Hand
	dealt bool
}

// Dealt returns a slot holding h.
func Dealt(h poker.Hand) HandSlot {
	return HandSlot{hand: h, dealt: true}
}

// NoHand returns an empty slot.
func NoHand() HandSlot {
	return HandSlot{}
}

// Hand returns the held hand and whether there is one.
func (s HandSlot) Hand() (poker.Hand, bool) {
	return s.hand, s.dealt
}

// IsDealt reports whether the slot holds a hand.
func (s HandSlot) IsDealt() bool {
	return s.dealt
}

// Seat is a participant's place at the table. Stacks persist across
// rounds; Committed, Folded and the hand slot reset each round.
type Seat struct {
	Index          int
	Name           string
	Stack          int
	Committed      int // chips put in the pot this round
	TotalCommitted int // chips put in across all rounds
	Folded         bool
	SittingOut     bool // no chips at round start
	slot           HandSlot
}

// Hand returns the seat's cards, or ErrNoActiveHand if it has folded or
// was never dealt in.
func (s *Seat) Hand() (poker.Hand, error) {
	h, ok := s.slot.Hand()
	if !ok {
		return poker.Hand{}, fmt.Errorf("%w: seat %d (%s)", ErrNoActiveHand, s.Index, s.Name)
	}
	return h, nil
}

// Slot returns the seat's hand slot.
func (s *Seat) Slot() HandSlot {
	return s.slot
}

// Commit moves amount chips from the stack into this round's commitment.
// It never commits part of an amount: if the stack is short the seat is
// left untouched and ErrInsufficientChips is returned.
func (s *Seat) Commit(amount int) error {
	if amount < 0 {
		return fmt.Errorf("seat %d: negative commit %d", s.Index, amount)
	}
	if amount > s.Stack {
		return fmt.Errorf("%w: seat %d has %d, needs %d", ErrInsufficientChips, s.Index, s.Stack, amount)
	}
	s.Stack -= amount
	s.Committed += amount
	s.TotalCommitted += amount
	return nil
}

// Fold gives up the seat's hand for the rest of the round.
func (s *Seat) Fold() {
	s.Folded = true
	s.slot = NoHand()
}

// Award adds chips won from the pot.
func (s *Seat) Award(amount int) {
	s.Stack += amount
}

// InHand reports whether the seat still contests the pot.
func (s *Seat) InHand() bool {
	return !s.SittingOut && !s.Folded
}

// CanAct reports whether the seat can still be asked for a decision.
func (s *Seat) CanAct() bool {
	return s.InHand() && s.Stack > 0
}

// IsAllIn reports whether the seat is in the hand with no chips behind.
func (s *Seat) IsAllIn() bool {
	return s.InHand() && s.Stack == 0
}

func (s *Seat) resetForRound() {
	s.Committed = 0
	s.Folded = false
	s.slot = NoHand()
	s.SittingOut = s.Stack == 0
	if s.SittingOut {
		s.Folded = true
	}
}

// refund returns chips from this round's commitment to the stack.
func (s *Seat) refund(amount int) {
	s.Committed -= amount
	s.TotalCommitted -= amount
	s.Stack += amount
}
