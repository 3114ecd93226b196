package detection

import (
	"strings"
	"sync"
	"time"
)

// Clock abstracts timer creation so tests can drive time deterministically.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is the cancellable handle returned by Clock.AfterFunc.
type Timer interface {
	Stop() bool
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealClock returns a Clock backed by the runtime timers.
func RealClock() Clock {
	return realClock{}
}

// Debouncer rate-limits remote detection while the user types. It is a
// trailing-edge debounce: every accepted Schedule for a key resets that
// key's timer, and only the last text within the quiet window fires.
type Debouncer struct {
	Wait          time.Duration
	MinTextLength int
	Enabled       bool

	clock Clock
	fire  func(key, text string)

	mu     sync.Mutex
	timers map[string]Timer
}

// NewDebouncer builds a debouncer that invokes fire with the key and the
// text of the last accepted call once the quiet window elapses.
func NewDebouncer(wait time.Duration, minTextLength int, enabled bool, clock Clock, fire func(key, text string)) *Debouncer {
	if clock == nil {
		clock = RealClock()
	}
	return &Debouncer{
		Wait:          wait,
		MinTextLength: minTextLength,
		Enabled:       enabled,
		clock:         clock,
		fire:          fire,
		timers:        make(map[string]Timer),
	}
}

// ShouldTrigger is the gate applied before any timer is touched. Calls that
// fail the gate are dropped without clearing an armed timer from an earlier
// call that passed.
func (d *Debouncer) ShouldTrigger(text string) bool {
	if !d.Enabled {
		return false
	}
	if len(text) < d.MinTextLength {
		return false
	}
	return strings.TrimSpace(text) != ""
}

// Schedule arms (or re-arms) the timer for key with the given text. It
// reports whether the call passed the gate.
func (d *Debouncer) Schedule(key, text string) bool {
	if !d.ShouldTrigger(text) {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[key]; ok {
		t.Stop()
	}
	d.timers[key] = d.clock.AfterFunc(d.Wait, func() {
		d.mu.Lock()
		delete(d.timers, key)
		d.mu.Unlock()
		d.fire(key, text)
	})
	return true
}

// Cancel drops any pending timer for key. Used when a session ends before
// the quiet window elapses.
func (d *Debouncer) Cancel(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t, ok := d.timers[key]; ok {
		t.Stop()
		delete(d.timers, key)
	}
}
