// Package display renders game events as styled lines of text.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/poker"
)

// FormattingOptions controls what the printer reveals and how
type FormattingOptions struct {
	ShowReasonings bool   // include decision reasoning after actions
	ShowHoleCards  bool   // show every dealt hand, not just Perspective's
	Perspective    string // participant whose dealt hand is shown
	NoColor        bool
}

type styles struct {
	header  lipgloss.Style
	action  lipgloss.Style
	winner  lipgloss.Style
	info    lipgloss.Style
	red     lipgloss.Style
	black   lipgloss.Style
	warning lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		action:  r.NewStyle().Foreground(lipgloss.Color("#FFD700")),
		winner:  r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		info:    r.NewStyle().Foreground(lipgloss.Color("#626262")),
		red:     r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		black:   r.NewStyle().Bold(true),
		warning: r.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
	}
}

// Printer is an event subscriber that writes one or more lines per event
type Printer struct {
	w      io.Writer
	opts   FormattingOptions
	styles styles
}

// NewPrinter creates a printer writing to w
func NewPrinter(w io.Writer, opts FormattingOptions) *Printer {
	renderer := lipgloss.NewRenderer(w)
	if opts.NoColor {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return &Printer{w: w, opts: opts, styles: newStyles(renderer)}
}

// OnEvent implements game.EventSubscriber
func (p *Printer) OnEvent(event game.GameEvent) {
	if out := p.Format(event); out != "" {
		fmt.Fprintln(p.w, out)
	}
}

// Format renders an event, returning "" for events this printer hides
func (p *Printer) Format(event game.GameEvent) string {
	switch e := event.(type) {
	case game.RoundStartedEvent:
		return p.formatRoundStarted(e)
	case game.BlindPostedEvent:
		kind := "small"
		if e.Big {
			kind = "big"
		}
		line := fmt.Sprintf("%s posts %s blind %d", e.Name, kind, e.Amount)
		if e.AllIn {
			line += p.styles.warning.Render(" (all-in)")
		}
		return line
	case game.CardsDealtEvent:
		if !p.opts.ShowHoleCards && e.Name != p.opts.Perspective {
			return ""
		}
		return fmt.Sprintf("%s is dealt %s", e.Name, p.Hand(e.Hand))
	case game.ActionTakenEvent:
		return p.formatAction(e.ActionRecord)
	case game.RoundEndedEvent:
		return p.formatRoundEnded(e)
	default:
		return ""
	}
}

func (p *Printer) formatRoundStarted(e game.RoundStartedEvent) string {
	dealer := fmt.Sprintf("seat %d", e.Dealer)
	var stacks []string
	for _, s := range e.Seats {
		if s.Index == e.Dealer {
			dealer = s.Name
		}
		if s.SittingOut {
			stacks = append(stacks, s.Name+" (out)")
			continue
		}
		stacks = append(stacks, fmt.Sprintf("%s %d", s.Name, s.Stack))
	}

	header := p.styles.header.Render(fmt.Sprintf(" Round %s ", e.RoundID))
	return fmt.Sprintf("%s dealer %s, blinds %d/%d\n%s",
		header, dealer, e.SmallBlind, e.BigBlind,
		p.styles.info.Render(strings.Join(stacks, ", ")))
}

func (p *Printer) formatAction(a game.ActionRecord) string {
	var line string
	switch a.Action {
	case game.Fold:
		line = a.Name + " folds"
	case game.Check:
		line = a.Name + " checks"
	case game.Call:
		line = fmt.Sprintf("%s calls %d", a.Name, a.Amount)
	case game.Bet:
		line = fmt.Sprintf("%s bets %d", a.Name, a.Amount)
	case game.Raise:
		line = fmt.Sprintf("%s raises %d", a.Name, a.Amount)
	case game.AllIn:
		line = fmt.Sprintf("%s is all-in for %d", a.Name, a.Amount)
	}
	if a.Amount > 0 {
		line += fmt.Sprintf(" (pot %d)", a.PotAfter)
	}
	line = p.styles.action.Render(line)
	if p.opts.ShowReasonings && a.Reasoning != "" {
		line += p.styles.info.Render(" [" + a.Reasoning + "]")
	}
	return line
}

func (p *Printer) formatRoundEnded(e game.RoundEndedEvent) string {
	var lines []string
	for _, r := range e.Revealed {
		lines = append(lines, fmt.Sprintf("%s shows %s (%s)", r.Name, p.Hand(r.Hand), r.Value.Rank))
	}
	for _, w := range e.Winners {
		if e.Showdown {
			lines = append(lines, p.styles.winner.Render(fmt.Sprintf("%s wins %d with %s", w.Name, w.Amount, w.Value.Rank)))
		} else {
			lines = append(lines, p.styles.winner.Render(fmt.Sprintf("%s wins %d uncontested", w.Name, w.Amount)))
		}
	}
	return strings.Join(lines, "\n")
}

// Card renders a card, colouring red suits
func (p *Printer) Card(c poker.Card) string {
	if c.Suit.IsRed() {
		return p.styles.red.Render(c.String())
	}
	return p.styles.black.Render(c.String())
}

// Hand renders a hand's cards separated by spaces
func (p *Printer) Hand(h poker.Hand) string {
	cards := h.Cards()
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = p.Card(c)
	}
	return strings.Join(parts, " ")
}

// Title renders a banner in the header style
func (p *Printer) Title(s string) string {
	return p.styles.header.Render(s)
}
