package poker

import (
	"fmt"
	rand "math/rand/v2"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// Deck is a standard 52-card deck with a deal cursor. Cards before the
// cursor have been dealt; nothing is dealt twice between resets.
type Deck struct {
	cards [DeckSize]Card
	next  int
	rng   *rand.Rand // injected so shuffles are reproducible
}

// NewDeck creates an unshuffled deck drawing randomness from rng.
// It panics if rng is nil.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("poker: NewDeck requires a non-nil rng")
	}
	d := &Deck{rng: rng}
	d.Reset()
	return d
}

// Reset returns all 52 cards to the deck in standard order.
func (d *Deck) Reset() {
	i := 0
	for suit := range Suit(suitCount) {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = Card{Rank: rank, Suit: suit}
			i++
		}
	}
	d.next = 0
}

// Shuffle permutes the undealt cards using Fisher-Yates.
func (d *Deck) Shuffle() {
	undealt := d.cards[d.next:]
	for i := len(undealt) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		undealt[i], undealt[j] = undealt[j], undealt[i]
	}
}

// Deal removes the next n cards from the deck.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("poker: cannot deal %d cards", n)
	}
	if n > d.Remaining() {
		return nil, fmt.Errorf("%w: requested %d, %d remaining", ErrDeckExhausted, n, d.Remaining())
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// DealHand deals HandSize cards as a Hand.
func (d *Deck) DealHand() (Hand, error) {
	cards, err := d.Deal(HandSize)
	if err != nil {
		return Hand{}, err
	}
	return NewHand(cards...)
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return DeckSize - d.next
}
