package poker

import (
	"fmt"
	"slices"
	"strings"
)

// HandSize is the fixed number of cards in a hand.
const HandSize = 5

// Hand is an immutable set of HandSize distinct cards, kept sorted by
// descending rank. Cards of equal rank are ordered by descending suit so
// the same card set always has the same layout.
type Hand struct {
	cards [HandSize]Card
}

// NewHand builds a hand from exactly HandSize distinct cards.
func NewHand(cards ...Card) (Hand, error) {
	if len(cards) != HandSize {
		return Hand{}, fmt.Errorf("%w: got %d cards, want %d", ErrInvalidHandSize, len(cards), HandSize)
	}

	var h Hand
	for i, c := range cards {
		if !c.Valid() {
			return Hand{}, fmt.Errorf("%w: %v", ErrInvalidCard, c)
		}
		for _, prev := range cards[:i] {
			if prev == c {
				return Hand{}, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
			}
		}
		h.cards[i] = c
	}

	slices.SortFunc(h.cards[:], func(a, b Card) int {
		if a.Rank != b.Rank {
			return int(b.Rank) - int(a.Rank)
		}
		return int(b.Suit) - int(a.Suit)
	})
	return h, nil
}

// ParseHand parses a hand such as "AsKsQsJsTs".
func ParseHand(s string) (Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Hand{}, err
	}
	return NewHand(cards...)
}

// MustParseHand is ParseHand for fixtures. It panics on bad input.
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Cards returns a copy of the cards, highest rank first.
func (h Hand) Cards() []Card {
	out := make([]Card, HandSize)
	copy(out, h.cards[:])
	return out
}

// Card returns the i-th card in descending order.
func (h Hand) Card(i int) Card {
	return h.cards[i]
}

// IsZero reports whether h is the zero value rather than a constructed hand.
func (h Hand) IsZero() bool {
	return h == Hand{}
}

// Contains reports whether the hand holds c.
func (h Hand) Contains(c Card) bool {
	return slices.Contains(h.cards[:], c)
}

// String returns the cards separated by spaces, e.g. "A♠ K♠ Q♠ J♠ T♠".
func (h Hand) String() string {
	parts := make([]string, HandSize)
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Rank classifies the hand.
func (h Hand) Rank() HandRank {
	return Evaluate(h)
}

// Value returns the full comparable value of the hand.
func (h Hand) Value() HandValue {
	return ValueOf(h)
}

// Compare returns 1 if h beats o, -1 if o beats h and 0 on a tie.
func (h Hand) Compare(o Hand) int {
	return ValueOf(h).Compare(ValueOf(o))
}
