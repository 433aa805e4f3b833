package queries

import "sync/atomic"

// Tracker hands out generation tokens for list queries. A consumer stamps
// each request with Next() and drops any response whose token is Stale by
// the time it arrives, so a slow earlier query can never overwrite the
// results of a newer one.
type Tracker struct {
	last atomic.Uint64
}

func (t *Tracker) Next() uint64 {
	return t.last.Add(1)
}

func (t *Tracker) Stale(seq uint64) bool {
	return seq < t.last.Load()
}
