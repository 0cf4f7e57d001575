package game

import (
	"fmt"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/poker"
)

// prompt is one call to a provider, as seen by the provider.
type prompt struct {
	Hand   poker.Hand
	Pot    int
	ToCall int
}

// scriptedProvider replays fixed decisions, then checks or folds.
type scriptedProvider struct {
	decisions []Decision
	prompts   []prompt
}

func script(decisions ...Decision) *scriptedProvider {
	return &scriptedProvider{decisions: decisions}
}

func (p *scriptedProvider) Decide(hand poker.Hand, pot, toCall int) Decision {
	p.prompts = append(p.prompts, prompt{Hand: hand, Pot: pot, ToCall: toCall})
	i := len(p.prompts) - 1
	if i >= len(p.decisions) {
		return CheckOrFold(toCall, "script exhausted")
	}
	return p.decisions[i]
}

// callingProvider checks or calls every time.
var callingProvider = DecisionFunc(func(_ poker.Hand, _, toCall int) Decision {
	return CheckOrCall(toCall, "always call")
})

// stackedDeck deals fixed hands in order and never shuffles.
type stackedDeck struct {
	hands []poker.Hand
	next  int
}

func stacked(hands ...string) *stackedDeck {
	d := &stackedDeck{}
	for _, h := range hands {
		d.hands = append(d.hands, poker.MustParseHand(h))
	}
	return d
}

func (d *stackedDeck) Reset()   { d.next = 0 }
func (d *stackedDeck) Shuffle() {}

func (d *stackedDeck) DealHand() (poker.Hand, error) {
	if d.next >= len(d.hands) {
		return poker.Hand{}, poker.ErrDeckExhausted
	}
	h := d.hands[d.next]
	d.next++
	return h, nil
}

// eventRecorder captures every published event.
type eventRecorder struct {
	events []GameEvent
}

func (r *eventRecorder) OnEvent(event GameEvent) {
	r.events = append(r.events, event)
}

func (r *eventRecorder) types() []EventType {
	out := make([]EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.EventType()
	}
	return out
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("round-%d", n)
	}
}

// newTestGame builds a game with a quiet logger, fixed seed and
// predictable round ids. Options are applied after the defaults.
func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	base := []Option{WithRoundIDs(sequentialIDs())}
	return NewGame(randutil.New(42), logger, append(base, opts...)...)
}

func seat(t *testing.T, g *Game, name string, stack int, p DecisionProvider) int {
	t.Helper()
	idx, err := g.AddParticipant(name, stack, p)
	if err != nil {
		t.Fatalf("AddParticipant(%s): %v", name, err)
	}
	return idx
}

func actionsOf(r *RoundResult) []Action {
	out := make([]Action, len(r.Actions))
	for i, a := range r.Actions {
		out[i] = a.Action
	}
	return out
}
