package poker

import "errors"

var (
	// ErrInvalidCard is returned when a card string cannot be parsed.
	ErrInvalidCard = errors.New("invalid card")

	// ErrInvalidHandSize is returned when a hand is built from the wrong
	// number of cards.
	ErrInvalidHandSize = errors.New("invalid hand size")

	// ErrDuplicateCard is returned when a hand contains the same card twice.
	ErrDuplicateCard = errors.New("duplicate card in hand")

	// ErrDeckExhausted is returned when more cards are requested than remain.
	ErrDeckExhausted = errors.New("deck exhausted")
)

// IsConstructionError reports whether err came from building a malformed
// card or hand.
func IsConstructionError(err error) bool {
	return errors.Is(err, ErrInvalidHandSize) ||
		errors.Is(err, ErrDuplicateCard) ||
		errors.Is(err, ErrInvalidCard)
}
