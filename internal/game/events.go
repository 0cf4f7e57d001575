package game

import (
	"sync"
	"time"

	"github.com/lox/drawpoker/poker"
)

// EventType identifies a game event
type EventType string

const (
	EventTypeRoundStarted EventType = "round_started"
	EventTypeBlindPosted  EventType = "blind_posted"
	EventTypeCardsDealt   EventType = "cards_dealt"
	EventTypeActionTaken  EventType = "action_taken"
	EventTypeRoundEnded   EventType = "round_ended"
)

func (et EventType) String() string {
	return string(et)
}

// GameEvent represents anything that happens during a round
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartedEvent is published after the deck is shuffled and seats reset
type RoundStartedEvent struct {
	RoundID    string
	Dealer     int
	SmallBlind int
	BigBlind   int
	Seats      []SeatSummary
	timestamp  time.Time
}

func (e RoundStartedEvent) EventType() EventType { return EventTypeRoundStarted }
func (e RoundStartedEvent) Timestamp() time.Time { return e.timestamp }

// SeatSummary is a seat's public state at round start
type SeatSummary struct {
	Index      int
	Name       string
	Stack      int
	SittingOut bool
}

// BlindPostedEvent is published for each forced bet
type BlindPostedEvent struct {
	RoundID   string
	Seat      int
	Name      string
	Amount    int
	Big       bool
	AllIn     bool
	timestamp time.Time
}

func (e BlindPostedEvent) EventType() EventType { return EventTypeBlindPosted }
func (e BlindPostedEvent) Timestamp() time.Time { return e.timestamp }

// CardsDealtEvent carries one seat's private hand. Subscribers rendering
// for a particular player should filter on Seat.
type CardsDealtEvent struct {
	RoundID   string
	Seat      int
	Name      string
	Hand      poker.Hand
	timestamp time.Time
}

func (e CardsDealtEvent) EventType() EventType { return EventTypeCardsDealt }
func (e CardsDealtEvent) Timestamp() time.Time { return e.timestamp }

// ActionTakenEvent is published after an action has been applied
type ActionTakenEvent struct {
	RoundID string
	ActionRecord
	timestamp time.Time
}

func (e ActionTakenEvent) EventType() EventType { return EventTypeActionTaken }
func (e ActionTakenEvent) Timestamp() time.Time { return e.timestamp }

// RoundEndedEvent is published once the pot has been awarded
type RoundEndedEvent struct {
	RoundID    string
	Pot        int
	Showdown   bool
	Winners    []Payout
	Revealed   []RevealedHand
	Stacks     []int // every seat's stack after settlement
	Refunded   int   // uncalled chips returned before the pot was awarded
	RefundSeat int   // seat that took Refunded back, -1 when none
	timestamp  time.Time
}

func (e RoundEndedEvent) EventType() EventType { return EventTypeRoundEnded }
func (e RoundEndedEvent) Timestamp() time.Time { return e.timestamp }

// RevealedHand is a hand shown at showdown
type RevealedHand struct {
	Seat  int
	Name  string
	Hand  poker.Hand
	Value poker.HandValue
}

// EventSubscriber receives published events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a function to EventSubscriber
type EventSubscriberFunc func(event GameEvent)

func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a synchronous in-memory event bus. Subscribers are
// called in subscription order on the publishing goroutine.
type SimpleEventBus struct {
	mu          sync.RWMutex
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber. Subscribers must be comparable.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	bus.mu.RLock()
	subs := make([]EventSubscriber, len(bus.subscribers))
	copy(subs, bus.subscribers)
	bus.mu.RUnlock()

	for _, subscriber := range subs {
		subscriber.OnEvent(event)
	}
}
