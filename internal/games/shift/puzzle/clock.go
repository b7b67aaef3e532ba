package puzzle

import "time"

// Clock is a virtual clock. Time moves only through Advance, which fires due
// timers in order, so the engine is deterministic under test and driven by
// the frame loop in play.
type Clock struct {
	now    time.Duration
	seq    uint64
	timers []*Timer
}

// NewClock creates a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the elapsed virtual time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// NewTimer creates a timer slot. A slot holds at most one pending callback;
// scheduling again replaces it.
func (c *Clock) NewTimer() *Timer {
	t := &Timer{clock: c}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward by d, firing every timer that comes due on the
// way. Timers fire in due order (ties in scheduling order) with the clock
// set to their due time, so callbacks may schedule further timers that also
// fire within this call.
func (c *Clock) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	end := c.now + d
	for {
		next := c.nextDue(end)
		if next == nil {
			break
		}
		c.now = next.due
		next.armed = false
		fn := next.fn
		next.fn = nil
		fn()
	}
	c.now = end
}

func (c *Clock) nextDue(end time.Duration) *Timer {
	var next *Timer
	for _, t := range c.timers {
		if !t.armed || t.due > end {
			continue
		}
		if next == nil || t.due < next.due || (t.due == next.due && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

// StopAll cancels every pending timer.
func (c *Clock) StopAll() {
	for _, t := range c.timers {
		t.Stop()
	}
}

// Timer is a cancellable one-shot slot on a Clock.
type Timer struct {
	clock *Clock
	due   time.Duration
	seq   uint64
	armed bool
	fn    func()
}

// Schedule arms the timer to call fn after the given delay, cancelling
// whatever was pending.
func (t *Timer) Schedule(after time.Duration, fn func()) {
	t.clock.seq++
	t.seq = t.clock.seq
	t.due = t.clock.now + max(after, 0)
	t.fn = fn
	t.armed = true
}

// Stop cancels the pending callback, if any.
func (t *Timer) Stop() {
	t.armed = false
	t.fn = nil
}

// Pending reports whether a callback is scheduled.
func (t *Timer) Pending() bool {
	return t.armed
}

// Remaining returns the time until the callback fires, or zero.
func (t *Timer) Remaining() time.Duration {
	if !t.armed {
		return 0
	}
	return t.due - t.clock.now
}

// Stopwatch accumulates time while running.
type Stopwatch struct {
	clock   *Clock
	running bool
	since   time.Duration
	acc     time.Duration
}

// NewStopwatch creates a stopped stopwatch at zero.
func NewStopwatch(c *Clock) *Stopwatch {
	return &Stopwatch{clock: c}
}

// Start resumes counting.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.running = true
	s.since = s.clock.now
}

// Stop pauses counting.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.acc += s.clock.now - s.since
	s.running = false
}

// Reset stops the stopwatch and zeroes it.
func (s *Stopwatch) Reset() {
	s.running = false
	s.acc = 0
}

// Elapsed returns the accumulated time.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.acc + s.clock.now - s.since
	}
	return s.acc
}

// Seconds returns the elapsed whole seconds.
func (s *Stopwatch) Seconds() int {
	return int(s.Elapsed() / time.Second)
}
