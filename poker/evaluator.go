package poker

import (
	"slices"

	ph "github.com/paulhankin/poker"
)

// rankGroup is a rank and how many cards of it the hand holds.
type rankGroup struct {
	rank  Rank
	count int
}

// analysis holds the facts classification needs, computed once per hand.
type analysis struct {
	flush    bool
	straight bool
	wheel    bool
	groups   []rankGroup // by count desc, then rank desc
}

func analyze(h Hand) analysis {
	var a analysis

	a.flush = true
	for _, c := range h.cards[1:] {
		if c.Suit != h.cards[0].Suit {
			a.flush = false
			break
		}
	}

	var counts [Ace + 1]int
	for _, c := range h.cards {
		counts[c.Rank]++
	}
	for r := Ace; r >= Two; r-- {
		if counts[r] > 0 {
			a.groups = append(a.groups, rankGroup{rank: r, count: counts[r]})
		}
	}
	slices.SortStableFunc(a.groups, func(x, y rankGroup) int {
		return y.count - x.count
	})

	if len(a.groups) == HandSize {
		c := h.cards
		switch {
		case c[0].Rank-c[4].Rank == 4:
			a.straight = true
		case c[0].Rank == Ace && c[1].Rank == Five && c[4].Rank == Two:
			a.straight = true
			a.wheel = true
		}
	}
	return a
}

// Evaluate classifies a hand. Categories are tested strongest first and the
// first match wins.
func Evaluate(h Hand) HandRank {
	return classify(analyze(h), h)
}

func classify(a analysis, h Hand) HandRank {
	switch {
	case a.straight && a.flush && !a.wheel && h.cards[0].Rank == Ace:
		return RoyalFlush
	case a.straight && a.flush:
		return StraightFlush
	case a.groups[0].count >= 4:
		return FourOfKind
	case a.groups[0].count == 3 && a.groups[1].count == 2:
		return FullHouse
	case a.flush:
		return Flush
	case a.straight:
		return Straight
	case a.groups[0].count == 3:
		return ThreeOfKind
	case a.groups[0].count == 2 && a.groups[1].count == 2:
		return TwoPair
	case a.groups[0].count == 2:
		return OnePair
	default:
		return TopCard
	}
}

// ValueOf returns the category and tiebreak key of a hand.
//
// Straights key on their five ranks in descending order, except the wheel
// (A-5-4-3-2) which keys as 5-4-3-2-1 so it sorts below every other
// straight. Grouped hands key on the groups by size then rank: pairs and
// trips first, kickers last.
func ValueOf(h Hand) HandValue {
	a := analyze(h)
	v := HandValue{Rank: classify(a, h)}

	switch v.Rank {
	case RoyalFlush, StraightFlush, Straight:
		if a.wheel {
			v.Tiebreakers = []Rank{Five, Four, Three, Two, wheelAce}
			break
		}
		v.Tiebreakers = descendingRanks(h)
	case Flush, TopCard:
		v.Tiebreakers = descendingRanks(h)
	default:
		v.Tiebreakers = make([]Rank, len(a.groups))
		for i, g := range a.groups {
			v.Tiebreakers[i] = g.rank
		}
	}
	return v
}

func descendingRanks(h Hand) []Rank {
	out := make([]Rank, HandSize)
	for i, c := range h.cards {
		out[i] = c.Rank
	}
	return out
}

// Describe returns a human readable description of the hand, such as
// "king-high flush". It falls back to the category name when the
// reference library cannot describe the cards.
func (h Hand) Describe() string {
	return describeWith(h, ph.Describe)
}

func describeWith(h Hand, describe func([]ph.Card) (string, error)) string {
	desc, err := describe(toReference(h))
	if err != nil || desc == "" {
		return h.Rank().String()
	}
	return desc
}

var referenceSuits = [suitCount]ph.Suit{
	Clubs:    ph.Club,
	Diamonds: ph.Diamond,
	Hearts:   ph.Heart,
	Spades:   ph.Spade,
}

// toReference converts a hand to github.com/paulhankin/poker cards, which
// number ranks 1 (Ace) to 13 (King).
func toReference(h Hand) []ph.Card {
	out := make([]ph.Card, 0, HandSize)
	for _, c := range h.cards {
		r := ph.Rank(c.Rank)
		if c.Rank == Ace {
			r = ph.Rank(1)
		}
		pc, err := ph.MakeCard(referenceSuits[c.Suit], r)
		if err != nil {
			continue
		}
		out = append(out, pc)
	}
	return out
}
