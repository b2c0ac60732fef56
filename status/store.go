// Package status publishes read-only snapshots of the running game over HTTP.
package status

import (
	"context"
	"encoding/json"
	"sync"

	"tictacpen/flow"
)

type subscriber struct {
	ch        chan []byte
	closeOnce sync.Once
}

func (s *subscriber) close() { s.closeOnce.Do(func() { close(s.ch) }) }

// Store holds the latest snapshot. Set is called from the UI goroutine,
// readers are HTTP handlers.
type Store struct {
	mu   sync.Mutex
	snap flow.Snapshot
	seq  uint64
	subs map[*subscriber]struct{}
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{subs: make(map[*subscriber]struct{})}
}

// Set replaces the snapshot and notifies subscribers. Slow subscribers only
// get the newest snapshot.
func (s *Store) Set(snap flow.Snapshot) {
	b, err := json.Marshal(snap)
	if err != nil {
		b = nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	s.seq++
	if b == nil {
		return
	}
	for sub := range s.subs {
		select {
		case sub.ch <- b:
		default:
			// drop the stale one
			select {
			case <-sub.ch:
			default:
			}
			select {
			case sub.ch <- b:
			default:
			}
		}
	}
}

// Get returns the latest snapshot and how many have been stored.
func (s *Store) Get() (flow.Snapshot, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap, s.seq
}

// Subscribe registers for JSON encoded snapshots until ctx is done or the
// returned func is called.
func (s *Store) Subscribe(ctx context.Context) (<-chan []byte, func()) {
	sub := &subscriber{ch: make(chan []byte, 1)}
	s.mu.Lock()
	s.subs[sub] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	unsub := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, sub)
			s.mu.Unlock()
			sub.close()
		})
	}
	go func() {
		<-ctx.Done()
		unsub()
	}()
	return sub.ch, unsub
}
