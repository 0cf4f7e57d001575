package poker

import (
	"fmt"
	"strings"
)

// HandRank is the category of a five-card hand, ordered weakest to strongest.
type HandRank uint8

const (
	TopCard HandRank = iota
	OnePair
	TwoPair
	ThreeOfKind
	Straight
	Flush
	FullHouse
	FourOfKind
	StraightFlush
	RoyalFlush
)

var handRankNames = [...]string{
	TopCard:       "High Card",
	OnePair:       "One Pair",
	TwoPair:       "Two Pair",
	ThreeOfKind:   "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfKind:    "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

func (r HandRank) String() string {
	if int(r) < len(handRankNames) {
		return handRankNames[r]
	}
	return fmt.Sprintf("HandRank(%d)", r)
}

// HandValue is the comparable value of a hand: its category followed by
// up to five ranks that break ties within the category, most significant
// first.
type HandValue struct {
	Rank        HandRank
	Tiebreakers []Rank
}

// Compare orders values by category, then tiebreakers lexicographically.
// It returns 1 if v beats o, -1 if o beats v and 0 on a tie.
func (v HandValue) Compare(o HandValue) int {
	if v.Rank != o.Rank {
		if v.Rank > o.Rank {
			return 1
		}
		return -1
	}
	n := min(len(v.Tiebreakers), len(o.Tiebreakers))
	for i := range n {
		switch {
		case v.Tiebreakers[i] > o.Tiebreakers[i]:
			return 1
		case v.Tiebreakers[i] < o.Tiebreakers[i]:
			return -1
		}
	}
	switch {
	case len(v.Tiebreakers) > len(o.Tiebreakers):
		return 1
	case len(v.Tiebreakers) < len(o.Tiebreakers):
		return -1
	}
	return 0
}

// Beats reports whether v is strictly stronger than o.
func (v HandValue) Beats(o HandValue) bool {
	return v.Compare(o) > 0
}

func (v HandValue) String() string {
	parts := make([]string, len(v.Tiebreakers))
	for i, r := range v.Tiebreakers {
		parts[i] = r.String()
	}
	return fmt.Sprintf("%s [%s]", v.Rank, strings.Join(parts, " "))
}
