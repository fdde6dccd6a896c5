package auth

import (
	"sync"

	"github.com/diegorighi/yukam-front/internal/client/models"
)

// State holds the current identity, or nil when logged out.
//
// The held record is never mutated after it is stored; writers replace it
// wholesale. Readers get copies.
type State struct {
	mu      sync.RWMutex
	user    *models.IdentityRecord
	subs    map[int]chan *models.IdentityRecord
	nextSub int
}

func NewState() *State {
	return &State{subs: make(map[int]chan *models.IdentityRecord)}
}

// Current returns a copy of the held identity, or nil.
func (s *State) Current() *models.IdentityRecord {
	return s.snapshot().Clone()
}

// Subscribe returns a channel that always holds the most recent identity
// (nil after logout). The current value is delivered immediately.
// Intermediate values may be skipped by a slow reader. cancel closes the
// channel; calling it more than once is harmless.
func (s *State) Subscribe() (<-chan *models.IdentityRecord, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan *models.IdentityRecord, 1)
	ch <- s.user.Clone()
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// snapshot returns the held pointer itself. Callers must not modify it.
func (s *State) snapshot() *models.IdentityRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// set replaces the held identity with a copy of user and notifies
// subscribers without blocking.
func (s *State) set(user *models.IdentityRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user.Clone()
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- s.user.Clone()
	}
}
