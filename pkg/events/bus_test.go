package events

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitDispatchesInSubscriptionOrder(t *testing.T) {
	bus := NewBus(nil)

	var got []string
	bus.On("basket-open", func(_ string, _ any) {
		got = append(got, "first")
	})
	bus.OnPattern(regexp.MustCompile(`^basket-`), func(_ string, _ any) {
		got = append(got, "second")
	})
	bus.On("basket-open", func(_ string, _ any) {
		got = append(got, "third")
	})

	bus.Emit("basket-open", nil)

	assert.Equal(t, []string{"first", "second", "third"}, got)
}

func TestEmitDeliversPayloadAndTopic(t *testing.T) {
	bus := NewBus(nil)

	var gotTopic string
	var gotPayload any
	bus.On(TopicOrderReady, func(topic string, payload any) {
		gotTopic = topic
		gotPayload = payload
	})

	bus.Emit(TopicOrderReady, 42)

	assert.Equal(t, TopicOrderReady, gotTopic)
	assert.Equal(t, 42, gotPayload)
}

func TestPatternSubscriptionMatchesMultipleTopics(t *testing.T) {
	bus := NewBus(nil)

	var topics []string
	bus.OnPattern(regexp.MustCompile(`errors-changed$`), func(topic string, _ any) {
		topics = append(topics, topic)
	})

	bus.Emit(TopicOrderFormErrorsChanged, nil)
	bus.Emit(TopicContactsFormErrorsChanged, nil)
	bus.Emit(TopicOrderReady, nil)

	assert.Equal(t, []string{TopicOrderFormErrorsChanged, TopicContactsFormErrorsChanged}, topics)
}

func TestOnAllReceivesEveryTopic(t *testing.T) {
	bus := NewBus(nil)

	var count int
	bus.OnAll(func(_ string, _ any) {
		count++
	})

	bus.Emit("a", nil)
	bus.Emit("b", nil)
	bus.Emit("c", nil)

	assert.Equal(t, 3, count)
}

func TestHandlersMayEmitRecursively(t *testing.T) {
	bus := NewBus(nil)

	var got []string
	bus.On("outer", func(_ string, _ any) {
		got = append(got, "outer-start")
		bus.Emit("inner", nil)
		got = append(got, "outer-end")
	})
	bus.On("inner", func(_ string, _ any) {
		got = append(got, "inner")
	})

	bus.Emit("outer", nil)

	// The nested dispatch completes before the outer handler resumes
	require.Equal(t, []string{"outer-start", "inner", "outer-end"}, got)
}

func TestOffRemovesExactSubscriptions(t *testing.T) {
	bus := NewBus(nil)

	var count int
	bus.On("topic", func(_ string, _ any) { count++ })

	bus.Emit("topic", nil)
	bus.Off("topic")
	bus.Emit("topic", nil)

	assert.Equal(t, 1, count)
}

func TestResetRemovesEverySubscription(t *testing.T) {
	bus := NewBus(nil)

	var count int
	bus.On("topic", func(_ string, _ any) { count++ })
	bus.OnAll(func(_ string, _ any) { count++ })

	bus.Reset()
	bus.Emit("topic", nil)

	assert.Zero(t, count)
}
