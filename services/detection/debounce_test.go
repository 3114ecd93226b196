package detection

import (
	"sync"
	"testing"
	"time"
)

// fakeClock drives debounce timers deterministically from the test.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	deadline time.Duration
	f        func()
	stopped  bool
	fired    bool
}

func (t *fakeTimer) Stop() bool {
	t.stopped = true
	return !t.fired
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	timer := &fakeTimer{deadline: c.now + d, f: f}
	c.timers = append(c.timers, timer)
	return timer
}

// Advance moves time forward and fires every due, unstopped timer.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.deadline <= c.now {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()
	for _, t := range due {
		t.f()
	}
}

func newTestDebouncer(clock *fakeClock) (*Debouncer, *[]string) {
	var fired []string
	var mu sync.Mutex
	d := NewDebouncer(500*time.Millisecond, 5, true, clock, func(key, text string) {
		mu.Lock()
		defer mu.Unlock()
		fired = append(fired, text)
	})
	return d, &fired
}

func TestDebounceCoalescesToLastCall(t *testing.T) {
	clock := &fakeClock{}
	d, fired := newTestDebouncer(clock)

	for _, text := range []string{"water", "water le", "water leak", "water leak in bathroom"} {
		if !d.Schedule("session-1", text) {
			t.Fatalf("Schedule(%q) was gated out unexpectedly", text)
		}
		clock.Advance(100 * time.Millisecond)
	}
	if len(*fired) != 0 {
		t.Fatalf("fired too early: %v", *fired)
	}

	clock.Advance(500 * time.Millisecond)
	if len(*fired) != 1 {
		t.Fatalf("expected exactly 1 detection call, got %d", len(*fired))
	}
	if (*fired)[0] != "water leak in bathroom" {
		t.Fatalf("fired with %q, want text of the last call", (*fired)[0])
	}
}

func TestDebounceGateBoundary(t *testing.T) {
	clock := &fakeClock{}
	d, fired := newTestDebouncer(clock)

	// minTextLength is 5: four characters never trigger, five do.
	if d.Schedule("s", "abcd") {
		t.Fatal("text of length minTextLength-1 must not trigger")
	}
	if !d.Schedule("s", "abcde") {
		t.Fatal("text of length minTextLength must trigger")
	}

	clock.Advance(time.Second)
	if len(*fired) != 1 || (*fired)[0] != "abcde" {
		t.Fatalf("fired = %v, want exactly [abcde]", *fired)
	}
}

func TestDebounceGatedCallKeepsArmedTimer(t *testing.T) {
	clock := &fakeClock{}
	d, fired := newTestDebouncer(clock)

	if !d.Schedule("s", "toilet clogged") {
		t.Fatal("valid call was gated out")
	}
	// A gated-out call must not clear the in-flight timer.
	if d.Schedule("s", "  ") {
		t.Fatal("whitespace-only text must not trigger")
	}

	clock.Advance(500 * time.Millisecond)
	if len(*fired) != 1 || (*fired)[0] != "toilet clogged" {
		t.Fatalf("fired = %v, want the earlier accepted call to survive", *fired)
	}
}

func TestDebounceDisabled(t *testing.T) {
	clock := &fakeClock{}
	d, fired := newTestDebouncer(clock)
	d.Enabled = false

	if d.Schedule("s", "water leak in bathroom") {
		t.Fatal("disabled debouncer must not schedule")
	}
	clock.Advance(time.Second)
	if len(*fired) != 0 {
		t.Fatalf("fired = %v, want none", *fired)
	}
}

func TestDebounceCancel(t *testing.T) {
	clock := &fakeClock{}
	d, fired := newTestDebouncer(clock)

	d.Schedule("s", "broken elevator")
	d.Cancel("s")
	clock.Advance(time.Second)
	if len(*fired) != 0 {
		t.Fatalf("fired = %v after Cancel, want none", *fired)
	}
}

func TestDebounceKeysAreIndependent(t *testing.T) {
	clock := &fakeClock{}
	d, fired := newTestDebouncer(clock)

	d.Schedule("a", "leaking faucet")
	d.Schedule("b", "flickering light")
	clock.Advance(500 * time.Millisecond)

	if len(*fired) != 2 {
		t.Fatalf("expected both sessions to fire, got %v", *fired)
	}
}
