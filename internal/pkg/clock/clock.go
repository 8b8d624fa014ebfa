package clock

import (
	"sort"
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
	// AfterFunc schedules fn to run once d has elapsed. Stop cancels a
	// timer that has not fired yet; a stopped timer never runs fn.
	AfterFunc(d time.Duration, fn func()) Timer
}

type Timer interface {
	Stop() bool
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

func (c *RealClock) AfterFunc(d time.Duration, fn func()) Timer {
	return realTimer{t: time.AfterFunc(d, fn)}
}

type realTimer struct {
	t *time.Timer
}

func (rt realTimer) Stop() bool {
	return rt.t.Stop()
}

// MockClock fires scheduled funcs synchronously from Add/Set, in deadline
// order, on the caller's goroutine.
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
	timers      []*mockTimer
}

type mockTimer struct {
	clock    *MockClock
	deadline time.Time
	fn       func()
	stopped  bool
	fired    bool
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTime
}

func (c *MockClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	mt := &mockTimer{clock: c, deadline: c.currentTime.Add(d), fn: fn}
	c.timers = append(c.timers, mt)
	return mt
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	c.currentTime = t
	due := c.takeDueLocked()
	c.mu.Unlock()
	for _, mt := range due {
		mt.fn()
	}
}

func (c *MockClock) Add(d time.Duration) {
	c.Set(c.Now().Add(d))
}

func (c *MockClock) takeDueLocked() []*mockTimer {
	var due []*mockTimer
	remaining := c.timers[:0]
	for _, mt := range c.timers {
		if !mt.stopped && !mt.fired && !mt.deadline.After(c.currentTime) {
			mt.fired = true
			due = append(due, mt)
		} else if !mt.stopped && !mt.fired {
			remaining = append(remaining, mt)
		}
	}
	c.timers = remaining
	sort.SliceStable(due, func(i, j int) bool { return due[i].deadline.Before(due[j].deadline) })
	return due
}

func (mt *mockTimer) Stop() bool {
	mt.clock.mu.Lock()
	defer mt.clock.mu.Unlock()
	if mt.stopped || mt.fired {
		return false
	}
	mt.stopped = true
	return true
}
