package game

import "github.com/lox/drawpoker/poker"

// RoundState is the phase of a round
type RoundState int

const (
	NotStarted RoundState = iota
	BlindsPosted
	Dealt
	Betting
	Showdown
	Settled
)

func (s RoundState) String() string {
	return [...]string{"not-started", "blinds-posted", "dealt", "betting", "showdown", "settled"}[s]
}

// Round is the table-wide state of the round in progress
type Round struct {
	ID         string
	State      RoundState
	Pot        int
	CurrentBet int // highest commitment any seat has made this round
	Dealer     int
	SmallBlind int
	BigBlind   int

	// SinceRaise counts matching actions by seats that can still act,
	// since the last bet or raise. Betting ends once it reaches the
	// number of such seats.
	SinceRaise int
}

// ActionRecord is an applied action. Action is what the engine actually
// applied, which may differ from the decision (an illegal check becomes a
// fold, an oversized call becomes all-in).
type ActionRecord struct {
	Seat      int
	Name      string
	Action    Action
	Amount    int // chips committed by this action
	ToCall    int
	PotAfter  int
	Reasoning string
}

// Payout is a share of the pot awarded to one seat
type Payout struct {
	Seat   int
	Name   string
	Amount int
	Hand   poker.Hand      // zero when the round ended without showdown
	Value  poker.HandValue // zero when the round ended without showdown
}

// RoundResult summarises a completed round
type RoundResult struct {
	ID       string
	Dealer   int
	Pot      int
	Showdown bool
	Winners  []Payout
	Revealed []RevealedHand
	Actions  []ActionRecord
	Refunded int   // uncalled chips returned before the pot was awarded
	DealtIn  []bool // per seat, false for seats sitting out
	Stacks   []int  // per seat, after settlement
	Net      []int  // per seat stack change over the round
}

// Winner returns the payout for seat, if it won anything.
func (r *RoundResult) Winner(seat int) (Payout, bool) {
	for _, p := range r.Winners {
		if p.Seat == seat {
			return p, true
		}
	}
	return Payout{}, false
}
