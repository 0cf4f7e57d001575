package game

import "github.com/lox/drawpoker/poker"

// Action is a betting decision.
type Action int

const (
	Fold Action = iota
	Check
	Call
	Bet
	Raise
	AllIn
)

var actionNames = [...]string{"fold", "check", "call", "bet", "raise", "allin"}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction converts a name produced by Action.String back to an Action.
func ParseAction(s string) (Action, bool) {
	for i, name := range actionNames {
		if name == s {
			return Action(i), true
		}
	}
	return Fold, false
}

// Decision is a provider's answer to a betting prompt.
//
// Amount is only read for Bet and Raise, where it is the increase on top of
// the chips needed to call. AllIn always commits the whole stack.
type Decision struct {
	Action    Action
	Amount    int
	Reasoning string
}

// DecisionProvider chooses actions for a seat. hand is the seat's own
// cards, pot the chips in the middle and toCall what the seat must add to
// match the current bet.
type DecisionProvider interface {
	Decide(hand poker.Hand, pot, toCall int) Decision
}

// DecisionFunc adapts a function to DecisionProvider.
type DecisionFunc func(hand poker.Hand, pot, toCall int) Decision

func (f DecisionFunc) Decide(hand poker.Hand, pot, toCall int) Decision {
	return f(hand, pot, toCall)
}

// CheckOrFold checks when nothing is owed and folds otherwise.
func CheckOrFold(toCall int, reasoning string) Decision {
	if toCall == 0 {
		return Decision{Action: Check, Reasoning: reasoning}
	}
	return Decision{Action: Fold, Reasoning: reasoning}
}

// CheckOrCall checks when nothing is owed and calls otherwise.
func CheckOrCall(toCall int, reasoning string) Decision {
	if toCall == 0 {
		return Decision{Action: Check, Reasoning: reasoning}
	}
	return Decision{Action: Call, Reasoning: reasoning}
}
