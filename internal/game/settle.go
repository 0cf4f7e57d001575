package game

import (
	"fmt"

	"github.com/lox/drawpoker/poker"
)

// refundUncalled returns the part of the largest commitment that no other
// seat matched. It returns the seat refunded and the number of chips, or
// -1 and 0 when every commitment was matched.
func (g *Game) refundUncalled() (seat, amount int) {
	var top *Seat
	second := 0
	for _, s := range g.seats {
		switch {
		case top == nil || s.Committed > top.Committed:
			if top != nil {
				second = top.Committed
			}
			top = s
		case s.Committed > second:
			second = s.Committed
		}
	}
	if top == nil || top.Committed <= second {
		return -1, 0
	}

	excess := top.Committed - second
	top.refund(excess)
	g.round.Pot -= excess
	g.round.CurrentBet = second
	g.logger.Debug("uncalled chips returned", "seat", top.Index, "amount", excess)
	return top.Index, excess
}

// resolve picks the winners of the pot and their shares. revealed is nil
// when the pot is won without a showdown.
func (g *Game) resolve() (winners []Payout, revealed []RevealedHand, err error) {
	n := len(g.seats)

	var contenders []*Seat
	for i := 1; i <= n; i++ {
		s := g.seats[(g.dealer+i)%n]
		if s.InHand() {
			contenders = append(contenders, s)
		}
	}

	if len(contenders) == 1 {
		s := contenders[0]
		return []Payout{{Seat: s.Index, Name: s.Name, Amount: g.round.Pot}}, nil, nil
	}

	var best poker.HandValue
	var tied []RevealedHand
	for _, s := range contenders {
		hand, err := s.Hand()
		if err != nil {
			return nil, nil, fmt.Errorf("showdown: %w", err)
		}
		rh := RevealedHand{Seat: s.Index, Name: s.Name, Hand: hand, Value: hand.Value()}
		revealed = append(revealed, rh)

		switch cmp := rh.Value.Compare(best); {
		case len(tied) == 0 || cmp > 0:
			best = rh.Value
			tied = []RevealedHand{rh}
		case cmp == 0:
			tied = append(tied, rh)
		}
	}

	// Contenders were collected left of the dealer first, so the odd chips
	// go to the tied winners closest to the dealer's left.
	share := g.round.Pot / len(tied)
	odd := g.round.Pot % len(tied)
	for i, rh := range tied {
		amount := share
		if i < odd {
			amount++
		}
		winners = append(winners, Payout{
			Seat:   rh.Seat,
			Name:   rh.Name,
			Amount: amount,
			Hand:   rh.Hand,
			Value:  rh.Value,
		})
	}
	return winners, revealed, nil
}

// settle moves the pot into the winners' stacks and clears the round's
// commitments.
func (g *Game) settle(winners []Payout) {
	for _, p := range winners {
		g.seats[p.Seat].Award(p.Amount)
	}
	for _, s := range g.seats {
		s.Committed = 0
	}
	g.round.Pot = 0
	g.round.State = Settled
}
