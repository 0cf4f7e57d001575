package game

import "errors"

var (
	// ErrInsufficientChips is returned when a seat commits more than its stack.
	ErrInsufficientChips = errors.New("insufficient chips")

	// ErrNoActiveHand is returned when a folded or undealt seat's hand is read.
	ErrNoActiveHand = errors.New("no active hand")

	ErrNotEnoughPlayers = errors.New("not enough players with chips")
	ErrRoundInProgress  = errors.New("round in progress")
	ErrTableFull        = errors.New("table full")
	ErrInvalidStack     = errors.New("invalid stack")
	ErrNilProvider      = errors.New("decision provider is nil")

	// ErrChipConservation means chips were created or destroyed. It always
	// indicates an engine bug.
	ErrChipConservation = errors.New("chip conservation violated")
)
