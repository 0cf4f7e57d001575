package history

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/poker"
)

// hiddenHand stands in for cards that are not recorded.
var hiddenHand = strings.Repeat("??", poker.HandSize)

// Encode writes the round to w in TOML.
func Encode(w io.Writer, round *Round) error {
	if round == nil {
		return fmt.Errorf("history: round is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(round)
}

// FormatCards returns the compact card notation used in actions, e.g.
// "AsKsQsJsTs".
func FormatCards(h poker.Hand) string {
	if h.IsZero() {
		return hiddenHand
	}
	var b strings.Builder
	for _, c := range h.Cards() {
		b.WriteString(c.Code())
	}
	return b.String()
}

// FormatAction converts an applied action to PHH notation. player is the
// zero based position and total the seat's chips committed this round
// including the action. An all-in that does not exceed the amount owed is
// written as a call.
func FormatAction(player int, record game.ActionRecord, total int) string {
	p := fmt.Sprintf("p%d", player+1)
	switch record.Action {
	case game.Fold:
		return p + " f"
	case game.Check, game.Call:
		return p + " cc"
	case game.AllIn:
		if record.Amount <= record.ToCall {
			return p + " cc"
		}
		return fmt.Sprintf("%s cbr %d", p, total)
	case game.Bet, game.Raise:
		return fmt.Sprintf("%s cbr %d", p, total)
	default:
		return fmt.Sprintf("# %s %s %d", p, record.Action, total)
	}
}
