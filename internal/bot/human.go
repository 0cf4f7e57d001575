package bot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/poker"
)

var errBadCommand = errors.New("unrecognised command")

// HumanPlayer reads decisions line by line, e.g. from a terminal.
type HumanPlayer struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *log.Logger
}

// NewHumanPlayer creates a player that prompts on out and reads from in.
func NewHumanPlayer(in io.Reader, out io.Writer, logger *log.Logger) *HumanPlayer {
	return &HumanPlayer{in: bufio.NewScanner(in), out: out, logger: logger}
}

func (h *HumanPlayer) Decide(hand poker.Hand, pot, toCall int) game.Decision {
	fmt.Fprintf(h.out, "\nYour hand: %s (%s)\n", hand, hand.Describe())
	fmt.Fprintf(h.out, "Pot: %d  To call: %d\n", pot, toCall)

	for {
		if toCall == 0 {
			fmt.Fprint(h.out, "[x] check  [b N] bet  [a] all-in  [f] fold > ")
		} else {
			fmt.Fprint(h.out, "[c] call  [r N] raise  [a] all-in  [f] fold > ")
		}

		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				h.logger.Error("reading input", "error", err)
			}
			return game.Decision{Action: game.Fold, Reasoning: "input closed"}
		}

		d, err := ParseCommand(h.in.Text())
		if err != nil {
			fmt.Fprintf(h.out, "%v\n", err)
			continue
		}
		if d.Action == game.Check && toCall > 0 {
			fmt.Fprintf(h.out, "cannot check, %d to call\n", toCall)
			continue
		}
		return d
	}
}

// ParseCommand parses a single input line: f(old), x/check, c(all),
// b(et) N, r(aise) N or a(llin).
func ParseCommand(line string) (game.Decision, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return game.Decision{}, errBadCommand
	}

	var action game.Action
	switch fields[0] {
	case "f", "fold":
		action = game.Fold
	case "x", "k", "check":
		action = game.Check
	case "c", "call":
		action = game.Call
	case "b", "bet":
		action = game.Bet
	case "r", "raise":
		action = game.Raise
	case "a", "allin", "all-in":
		action = game.AllIn
	default:
		return game.Decision{}, fmt.Errorf("%w: %q", errBadCommand, fields[0])
	}

	d := game.Decision{Action: action, Reasoning: "human"}
	if action != game.Bet && action != game.Raise {
		return d, nil
	}
	if len(fields) < 2 {
		return game.Decision{}, fmt.Errorf("%s needs an amount", action)
	}
	amount, err := strconv.Atoi(fields[1])
	if err != nil || amount <= 0 {
		return game.Decision{}, fmt.Errorf("invalid amount %q", fields[1])
	}
	d.Amount = amount
	return d, nil
}
