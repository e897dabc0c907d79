package events

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Topic string

const (
	// TopicUserInfoUpdated carries a readable message plus the labels of
	// the profile fields that changed; the payment view highlights them.
	TopicUserInfoUpdated Topic = "user_info_updated"

	// TopicLastAction is the user-facing feedback after every dispatch.
	TopicLastAction Topic = "last_action"

	TopicAssistantRestarted Topic = "assistant_restarted"
)

type Event struct {
	Topic   Topic     `json:"topic"`
	Message string    `json:"message"`
	Fields  []string  `json:"fields,omitempty"`
	Success bool      `json:"success"`
	At      time.Time `json:"at"`
}

type IBus interface {
	Publish(event Event)
	Subscribe(topics ...Topic) (<-chan Event, func())
}

type bus struct {
	log *logrus.Logger

	mu          sync.Mutex
	subscribers map[int]*subscription
	nextSubID   int
}

type subscription struct {
	topics map[Topic]bool
	ch     chan Event
}

func NewBus(log *logrus.Logger) IBus {
	return &bus{
		log:         log,
		subscribers: make(map[int]*subscription),
	}
}

// Publish never blocks; a subscriber that cannot keep up loses the event.
func (b *bus) Publish(event Event) {
	if event.At.IsZero() {
		event.At = time.Now()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, sub := range b.subscribers {
		if len(sub.topics) > 0 && !sub.topics[event.Topic] {
			continue
		}
		select {
		case sub.ch <- event:
		default:
			b.log.WithField("topic", event.Topic).Warn("Dropping event for slow subscriber")
		}
	}
}

// Subscribe with no topics receives everything.
func (b *bus) Subscribe(topics ...Topic) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	topicSet := make(map[Topic]bool, len(topics))
	for _, t := range topics {
		topicSet[t] = true
	}

	id := b.nextSubID
	b.nextSubID++
	sub := &subscription{
		topics: topicSet,
		ch:     make(chan Event, 32),
	}
	b.subscribers[id] = sub

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if s, ok := b.subscribers[id]; ok {
			delete(b.subscribers, id)
			close(s.ch)
		}
	}
	return sub.ch, cancel
}
