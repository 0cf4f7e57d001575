package poker

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const suitCount = 4

// String returns the symbol for the suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Letter returns the single-letter form used by ParseCard
func (s Suit) Letter() byte {
	if s < suitCount {
		return "cdhs"[s]
	}
	return '?'
}

// IsRed returns true for Hearts and Diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Aces are high (14).
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// wheelAce is the value an Ace takes when it plays low in A-2-3-4-5.
const wheelAce Rank = 1

const rankChars = "23456789TJQKA"

// String returns the single character form of the rank
func (r Rank) String() string {
	if r >= Two && r <= Ace {
		return string(rankChars[r-Two])
	}
	if r == wheelAce {
		return "A"
	}
	return "?"
}

// Valid reports whether r is one of the thirteen standard ranks
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Card is an immutable playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the display form of the card (e.g. "A♠")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Code returns the two character parse form of the card (e.g. "As")
func (c Card) Code() string {
	return c.Rank.String() + string(c.Suit.Letter())
}

// Valid reports whether the card has a standard rank and suit
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit < suitCount
}

// Compare orders cards by rank only. Suits never break ties.
func (c Card) Compare(o Card) int {
	switch {
	case c.Rank > o.Rank:
		return 1
	case c.Rank < o.Rank:
		return -1
	default:
		return 0
	}
}

// Less reports whether c ranks strictly below o
func (c Card) Less(o Card) bool {
	return c.Rank < o.Rank
}

// ParseCard parses a card such as "As", "td" or "9H"
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	idx := strings.IndexByte(rankChars, toUpper(s[0]))
	if idx < 0 {
		return Card{}, fmt.Errorf("%w: bad rank in %q", ErrInvalidCard, s)
	}

	var suit Suit
	switch s[1] {
	case 'c', 'C':
		suit = Clubs
	case 'd', 'D':
		suit = Diamonds
	case 'h', 'H':
		suit = Hearts
	case 's', 'S':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("%w: bad suit in %q", ErrInvalidCard, s)
	}

	return Card{Rank: Two + Rank(idx), Suit: suit}, nil
}

// ParseCards parses a run of two character cards, e.g. "AsKsQsJsTs".
// Whitespace and commas between cards are ignored.
func ParseCards(s string) ([]Card, error) {
	clean := strings.Map(func(r rune) rune {
		if r == ' ' || r == ',' || r == '\t' {
			return -1
		}
		return r
	}, s)

	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length input %q", ErrInvalidCard, s)
	}

	cards := make([]Card, 0, len(clean)/2)
	for i := 0; i < len(clean); i += 2 {
		c, err := ParseCard(clean[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is ParseCards for fixtures. It panics on bad input.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
