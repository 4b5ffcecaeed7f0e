// Package stream is the in-process fan-out for applied transaction
// updates. Every state-machine write is published here; SSE handlers
// subscribe and filter client-side.
package stream

import (
	"sync"

	"github.com/ricepay/tracker/internal/tracker/store"
)

const subscriberBufferSize = 64

type Stream struct {
	mu          sync.RWMutex
	subscribers map[int]chan *store.Data
	nextID      int
}

func New() *Stream {
	return &Stream{
		subscribers: make(map[int]chan *store.Data),
	}
}

// Publish fans the update out to all subscribers. A subscriber whose
// buffer is full misses the update rather than blocking the writer;
// consumers reconcile via the point-lookup endpoint.
func (s *Stream) Publish(data *store.Data) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ch := range s.subscribers {
		select {
		case ch <- data:
		default:
		}
	}
}

// Subscribe registers a listener. The returned cancel func must be
// called when the listener goes away; afterwards the channel is closed.
func (s *Stream) Subscribe() (<-chan *store.Data, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	ch := make(chan *store.Data, subscriberBufferSize)
	s.subscribers[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if sub, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(sub)
		}
	}

	return ch, cancel
}

func (s *Stream) SubscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers)
}
