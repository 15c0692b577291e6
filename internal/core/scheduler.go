package core

import (
	"sort"
	"time"
)

// Scheduler holds deferred actions keyed by K. At most one action is pending
// per key; scheduling under a pending key replaces it.
//
// Scheduler is not safe for concurrent use. It never fires on its own:
// callers run due actions with RunDue.
type Scheduler[K comparable] struct {
	pending map[K]deferred
	seq     uint64
}

type deferred struct {
	at  time.Time
	seq uint64
	fn  func()
}

// NewScheduler returns an empty scheduler.
func NewScheduler[K comparable]() *Scheduler[K] {
	return &Scheduler[K]{pending: make(map[K]deferred)}
}

// Schedule registers fn to run at or after at, replacing any action pending
// under key.
func (s *Scheduler[K]) Schedule(key K, at time.Time, fn func()) {
	s.seq++
	s.pending[key] = deferred{at: at, seq: s.seq, fn: fn}
}

// Cancel drops the action pending under key and reports whether one existed.
func (s *Scheduler[K]) Cancel(key K) bool {
	_, ok := s.pending[key]
	delete(s.pending, key)
	return ok
}

// Reset cancels every pending action.
func (s *Scheduler[K]) Reset() {
	clear(s.pending)
}

// Pending returns the deadline of the action under key.
func (s *Scheduler[K]) Pending(key K) (time.Time, bool) {
	d, ok := s.pending[key]
	return d.at, ok
}

// Len reports the number of pending actions.
func (s *Scheduler[K]) Len() int { return len(s.pending) }

// RunDue fires every action whose deadline is not after now, earliest first
// (ties in scheduling order), and returns how many ran. Actions scheduled by
// a firing action are left for a later call.
func (s *Scheduler[K]) RunDue(now time.Time) int {
	type due struct {
		key K
		d   deferred
	}
	var ready []due
	for k, d := range s.pending {
		if !d.at.After(now) {
			ready = append(ready, due{key: k, d: d})
		}
	}
	if len(ready) == 0 {
		return 0
	}
	sort.Slice(ready, func(i, j int) bool {
		if ready[i].d.at.Equal(ready[j].d.at) {
			return ready[i].d.seq < ready[j].d.seq
		}
		return ready[i].d.at.Before(ready[j].d.at)
	})
	ran := 0
	for _, r := range ready {
		cur, ok := s.pending[r.key]
		if !ok || cur.seq != r.d.seq {
			// cancelled or replaced by an earlier action in this batch
			continue
		}
		delete(s.pending, r.key)
		r.d.fn()
		ran++
	}
	return ran
}
