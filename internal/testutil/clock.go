package testutil

import (
	"sync"
	"time"
	"urlchecker/internal/providers"
)

// FakeClock is a manually advanced providers.Clock.
type FakeClock struct {
	mu      sync.Mutex
	now     time.Time
	waiters []*fakeTimer
}

type fakeTimer struct {
	clock   *FakeClock
	at      time.Time
	ch      chan time.Time
	fn      func()
	fired   bool
	stopped bool
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) After(d time.Duration) <-chan time.Time {
	t := c.add(d, nil)
	return t.ch
}

func (c *FakeClock) AfterFunc(d time.Duration, f func()) providers.Timer {
	return c.add(d, f)
}

func (c *FakeClock) add(d time.Duration, fn func()) *fakeTimer {
	c.mu.Lock()
	t := &fakeTimer{clock: c, at: c.now.Add(d), ch: make(chan time.Time, 1), fn: fn}
	if d > 0 {
		c.waiters = append(c.waiters, t)
		c.mu.Unlock()
		return t
	}
	t.fired = true
	now := c.now
	c.mu.Unlock()
	if fn != nil {
		go fn()
		return t
	}
	t.fire(now)
	return t
}

// Advance moves the clock forward and fires every timer that became due.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now
	var due []*fakeTimer
	pending := c.waiters[:0]
	for _, t := range c.waiters {
		switch {
		case t.stopped:
		case !t.at.After(now):
			t.fired = true
			due = append(due, t)
		default:
			pending = append(pending, t)
		}
	}
	c.waiters = pending
	c.mu.Unlock()

	for _, t := range due {
		t.fire(now)
	}
}

// Pending reports how many timers are waiting to fire.
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.waiters {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (t *fakeTimer) fire(now time.Time) {
	if t.fn != nil {
		t.fn()
		return
	}
	t.ch <- now
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}
