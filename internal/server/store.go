package server

import (
	"sync"

	"github.com/muurk/btautolaunch/internal/automation"
	"github.com/muurk/btautolaunch/internal/logging"
)

// subscriberBuffer is how many snapshots a slow subscriber may fall behind
// before frames are dropped
const subscriberBuffer = 8

// Store holds the shared state of a preview server. Every reduction goes
// through Dispatch and is fanned out to subscribers in order.
type Store struct {
	mu          sync.Mutex
	state       automation.State
	subscribers map[*Subscription]struct{}
}

// Subscription receives a state snapshot after every reduction
type Subscription struct {
	C          <-chan automation.State
	ch         chan automation.State
	remoteAddr string
	dropped    int
}

// NewStore creates a store seeded with initial
func NewStore(initial automation.State) *Store {
	return &Store{
		state:       initial,
		subscribers: make(map[*Subscription]struct{}),
	}
}

// Snapshot returns the current state
func (s *Store) Snapshot() automation.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch reduces a into the state and notifies subscribers.
// It returns the new state.
func (s *Store) Dispatch(a automation.Action) automation.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = automation.Reduce(s.state, a)
	for sub := range s.subscribers {
		select {
		case sub.ch <- s.state:
		default:
			sub.dropped++
			logging.LogSubscriber(sub.remoteAddr, "frame_dropped", len(s.subscribers))
		}
	}
	return s.state
}

// Subscribe registers a subscriber. The current state is queued first so
// a new subscriber never waits for the next action.
func (s *Store) Subscribe(remoteAddr string) *Subscription {
	ch := make(chan automation.State, subscriberBuffer)
	sub := &Subscription{C: ch, ch: ch, remoteAddr: remoteAddr}

	s.mu.Lock()
	defer s.mu.Unlock()

	ch <- s.state
	s.subscribers[sub] = struct{}{}
	logging.LogSubscriber(remoteAddr, "subscribed", len(s.subscribers))
	return sub
}

// Unsubscribe removes sub and closes its channel. It is safe to call twice.
func (s *Store) Unsubscribe(sub *Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subscribers[sub]; !ok {
		return
	}
	delete(s.subscribers, sub)
	close(sub.ch)
	logging.LogSubscriber(sub.remoteAddr, "unsubscribed", len(s.subscribers))
}

// Subscribers returns the number of live subscriptions
func (s *Store) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscribers)
}

// Dropped returns how many snapshots were skipped because sub was full
func (s *Store) Dropped(sub *Subscription) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sub.dropped
}
