package loop

import (
	"sync"
	"time"
)

// Ticker delivers periodic ticks. It mirrors the subset of time.Ticker the
// scheduler needs so tests can drive it by hand.
type Ticker interface {
	C() <-chan time.Time
	Reset(d time.Duration)
	Stop()
}

// Clock is the scheduler's source of time.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// RealClock is backed by the time package.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

func (RealClock) NewTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r *realTicker) C() <-chan time.Time   { return r.t.C }
func (r *realTicker) Reset(d time.Duration) { r.t.Reset(d) }
func (r *realTicker) Stop()                 { r.t.Stop() }

// ManualClock is a Clock whose time only moves when Advance is called.
// Tickers fire like time.Ticker: at most one tick is buffered and extra
// ticks are dropped.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*manualTicker
}

// NewManualClock creates a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (m *ManualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *ManualClock) NewTicker(d time.Duration) Ticker {
	if d <= 0 {
		panic("loop: non-positive ticker period")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t := &manualTicker{
		clock:  m,
		c:      make(chan time.Time, 1),
		period: d,
		next:   m.now.Add(d),
	}
	m.tickers = append(m.tickers, t)
	return t
}

// Advance moves time forward by d and fires every ticker whose deadline has
// passed.
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.now = m.now.Add(d)
	for _, t := range m.tickers {
		if t.stopped {
			continue
		}
		for !t.next.After(m.now) {
			select {
			case t.c <- t.next:
			default:
			}
			t.next = t.next.Add(t.period)
		}
	}
}

// Period returns the period of the most recently created live ticker, or 0.
func (m *ManualClock) Period() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := len(m.tickers) - 1; i >= 0; i-- {
		if !m.tickers[i].stopped {
			return m.tickers[i].period
		}
	}
	return 0
}

type manualTicker struct {
	clock   *ManualClock
	c       chan time.Time
	period  time.Duration
	next    time.Time
	stopped bool
}

func (t *manualTicker) C() <-chan time.Time { return t.c }

func (t *manualTicker) Reset(d time.Duration) {
	if d <= 0 {
		panic("loop: non-positive ticker period")
	}

	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	t.period = d
	t.next = t.clock.now.Add(d)
	t.stopped = false

	// Like time.Ticker since Go 1.23, no stale tick survives a Reset.
	select {
	case <-t.c:
	default:
	}
}

func (t *manualTicker) Stop() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	t.stopped = true
}
