package events

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestBusDeliversToMatchingTopic(t *testing.T) {
	bus := NewBus(logrus.New())

	actions, cancel := bus.Subscribe(TopicLastAction)
	defer cancel()

	bus.Publish(Event{Topic: TopicUserInfoUpdated, Message: "ignored"})
	bus.Publish(Event{Topic: TopicLastAction, Message: "delivered", Success: true})

	select {
	case event := <-actions:
		if event.Message != "delivered" || !event.Success {
			t.Errorf("got event %+v, want delivered/success", event)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}

	select {
	case event := <-actions:
		t.Errorf("unexpected second event %+v", event)
	default:
	}
}

func TestBusEmptySubscriptionReceivesAll(t *testing.T) {
	bus := NewBus(logrus.New())

	all, cancel := bus.Subscribe()
	defer cancel()

	bus.Publish(Event{Topic: TopicAssistantRestarted, Message: "restarted"})

	select {
	case event := <-all:
		if event.Topic != TopicAssistantRestarted {
			t.Errorf("topic = %q, want %q", event.Topic, TopicAssistantRestarted)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestBusCancelStopsDelivery(t *testing.T) {
	bus := NewBus(logrus.New())

	ch, cancel := bus.Subscribe(TopicLastAction)
	cancel()

	// Publish after cancel must not panic or block.
	bus.Publish(Event{Topic: TopicLastAction, Message: "late"})

	if _, ok := <-ch; ok {
		t.Error("cancelled subscription still delivered an event")
	}
}
