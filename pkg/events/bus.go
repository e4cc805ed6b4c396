// Package events provides an in-memory event bus decoupling the application
// state from the views. Dispatch is synchronous: handlers for a topic run in
// subscription order, to completion, before Emit returns.
package events

import (
	"regexp"
	"sync"

	"go.uber.org/zap"
)

// Handler receives the topic it was dispatched for and the event payload
type Handler func(topic string, payload any)

type subscription struct {
	id      uint64
	pattern *regexp.Regexp // nil for exact-match subscriptions
	all     bool
	handler Handler
}

// Bus is a topic-keyed publish/subscribe registry. Subscriptions match a
// topic exactly, by regular expression, or catch every topic.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	exact  map[string][]*subscription
	fuzzy  []*subscription
	logger *zap.Logger
}

// NewBus creates an event bus
func NewBus(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{
		exact:  make(map[string][]*subscription),
		logger: logger,
	}
}

// On subscribes a handler to an exact topic
func (b *Bus) On(topic string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.exact[topic] = append(b.exact[topic], &subscription{id: b.nextID, handler: h})
}

// OnPattern subscribes a handler to every topic matching the expression
func (b *Bus) OnPattern(re *regexp.Regexp, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.fuzzy = append(b.fuzzy, &subscription{id: b.nextID, pattern: re, handler: h})
}

// OnAll subscribes a handler to every topic
func (b *Bus) OnAll(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.fuzzy = append(b.fuzzy, &subscription{id: b.nextID, all: true, handler: h})
}

// Off removes all subscriptions for an exact topic
func (b *Bus) Off(topic string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.exact, topic)
}

// Reset removes every subscription
func (b *Bus) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.exact = make(map[string][]*subscription)
	b.fuzzy = nil
}

// Emit dispatches an event to all matching handlers in subscription order.
// Handlers may emit further events; those are dispatched recursively before
// the outer Emit returns.
func (b *Bus) Emit(topic string, payload any) {
	b.mu.Lock()
	matched := make([]*subscription, 0, len(b.exact[topic])+len(b.fuzzy))
	matched = append(matched, b.exact[topic]...)
	for _, s := range b.fuzzy {
		if s.all || s.pattern.MatchString(topic) {
			matched = append(matched, s)
		}
	}
	b.mu.Unlock()

	// Subscription order across exact and pattern subscribers
	sortByID(matched)

	b.logger.Debug("emitting event",
		zap.String("topic", topic),
		zap.Int("handler_count", len(matched)),
	)

	for _, s := range matched {
		s.handler(topic, payload)
	}
}

func sortByID(subs []*subscription) {
	// Insertion sort; handler lists are tiny
	for i := 1; i < len(subs); i++ {
		for j := i; j > 0 && subs[j-1].id > subs[j].id; j-- {
			subs[j-1], subs[j] = subs[j], subs[j-1]
		}
	}
}
