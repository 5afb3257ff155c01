package exchange

import (
	"sync"
	"time"
)

// NonceSource issues action nonces in milliseconds since the epoch.
type NonceSource interface {
	Next() uint64
}

// ClockNonce reads the wall clock. Two actions built in the same millisecond
// share a nonce; use MonotonicNonce when that matters.
type ClockNonce struct{}

func (ClockNonce) Next() uint64 {
	return uint64(time.Now().UnixMilli())
}

// MonotonicNonce returns strictly increasing nonces that track the wall clock.
type MonotonicNonce struct {
	mu   sync.Mutex
	last uint64
	now  func() time.Time
}

func NewMonotonicNonce() *MonotonicNonce {
	return &MonotonicNonce{now: time.Now}
}

func (m *MonotonicNonce) Next() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now
	if m.now != nil {
		now = m.now
	}
	next := uint64(now().UnixMilli())
	if next <= m.last {
		next = m.last + 1
	}
	m.last = next
	return next
}
