package game

// runBetting drives the single betting round. Seats act in table order
// from the first seat after the big blind; folded and all-in seats are
// skipped. The round closes when every seat that can still act has
// matched the bet since the last raise, when one contender remains, or
// when nobody is left who could change the outcome.
func (g *Game) runBetting() error {
	g.round.State = Betting
	g.round.SinceRaise = 0

	actor := g.firstToAct
	for !g.bettingClosed() {
		seat := g.seats[actor]
		if seat.CanAct() {
			if err := g.act(seat); err != nil {
				return err
			}
		}
		actor = (actor + 1) % len(g.seats)
	}
	return nil
}

func (g *Game) bettingClosed() bool {
	contenders, actors := 0, 0
	var last *Seat
	for _, s := range g.seats {
		if s.InHand() {
			contenders++
		}
		if s.CanAct() {
			actors++
			last = s
		}
	}

	switch {
	case contenders <= 1:
		return true
	case actors == 0:
		return true
	case actors == 1 && last.Committed >= g.round.CurrentBet:
		return true
	default:
		return g.round.SinceRaise >= actors
	}
}

// act asks the seat's provider for a decision and applies it.
func (g *Game) act(seat *Seat) error {
	toCall := g.round.CurrentBet - seat.Committed
	hand, err := seat.Hand()
	if err != nil {
		return err
	}

	decision := g.providers[seat.Index].Decide(hand, g.round.Pot, toCall)
	action, amount := g.normalize(seat, decision, toCall)

	level := g.round.CurrentBet
	if action == Fold {
		seat.Fold()
	} else {
		if err := seat.Commit(amount); err != nil {
			return err
		}
		g.round.Pot += amount
	}

	raised := seat.Committed > level
	if raised {
		g.round.CurrentBet = seat.Committed
	}

	// Folded and all-in seats leave the set of seats being counted, so
	// only actions by seats that can act again advance the counter.
	switch {
	case raised && seat.Stack > 0:
		g.round.SinceRaise = 1
	case raised:
		g.round.SinceRaise = 0
	case action == Fold || seat.Stack == 0:
	default:
		g.round.SinceRaise++
	}

	record := ActionRecord{
		Seat:      seat.Index,
		Name:      seat.Name,
		Action:    action,
		Amount:    amount,
		ToCall:    toCall,
		PotAfter:  g.round.Pot,
		Reasoning: decision.Reasoning,
	}
	g.actions = append(g.actions, record)

	g.logger.Debug("action",
		"seat", seat.Index,
		"name", seat.Name,
		"action", action,
		"amount", amount,
		"to_call", toCall,
		"pot", g.round.Pot,
		"reasoning", decision.Reasoning)

	g.publish(ActionTakenEvent{
		RoundID:      g.round.ID,
		ActionRecord: record,
		timestamp:    g.clock.Now(),
	})
	return g.checkPot()
}

// normalize turns a decision into the action the engine applies and the
// chips it commits. Illegal checks fold, oversized bets are clamped to the
// stack and non-positive raises become calls.
func (g *Game) normalize(seat *Seat, d Decision, toCall int) (Action, int) {
	stack := seat.Stack

	switch d.Action {
	case Fold:
		return Fold, 0

	case Check:
		if toCall > 0 {
			g.logger.Warn("illegal check, folding", "seat", seat.Index, "name", seat.Name, "to_call", toCall)
			return Fold, 0
		}
		return Check, 0

	case Call:
		switch {
		case toCall == 0:
			return Check, 0
		case toCall >= stack:
			return AllIn, stack
		}
		return Call, toCall

	case Bet, Raise:
		if d.Amount <= 0 {
			g.logger.Debug("non-positive raise treated as call", "seat", seat.Index, "amount", d.Amount)
			return g.normalize(seat, Decision{Action: Call}, toCall)
		}
		total := toCall + d.Amount
		if total >= stack {
			if total > stack {
				g.logger.Warn("bet exceeds stack, going all-in", "seat", seat.Index, "name", seat.Name, "wanted", total, "stack", stack)
			}
			return AllIn, stack
		}
		return d.Action, total

	case AllIn:
		return AllIn, stack

	default:
		g.logger.Warn("unknown action", "seat", seat.Index, "action", int(d.Action))
		if toCall > 0 {
			return Fold, 0
		}
		return Check, 0
	}
}
