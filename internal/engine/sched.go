package engine

import (
	"sync"
	"time"
)

// Scheduler is how the engine defers work: Frame for per-frame coalescing of
// scroll recomputes, After for debounce and settle timers. Surfaces that own
// an event loop (the bubbletea demo does) provide an implementation that
// delivers callbacks on that loop; everything the engine schedules assumes
// single-threaded delivery.
type Scheduler interface {
	Frame(fn func()) (cancel func())
	After(d time.Duration, fn func()) (cancel func())
}

// TimerScheduler is a standalone Scheduler backed by the runtime timer wheel.
// Callbacks fire on timer goroutines; embedders that need callbacks on their
// own loop should supply their own Scheduler instead.
type TimerScheduler struct{}

func NewTimerScheduler() TimerScheduler { return TimerScheduler{} }

func (TimerScheduler) Frame(fn func()) func() {
	// Without a render loop there is no frame boundary; next-tick is the
	// closest equivalent.
	t := time.AfterFunc(time.Millisecond*16, fn)
	return func() { t.Stop() }
}

func (TimerScheduler) After(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// ManualScheduler queues callbacks until the owner pumps them, keeping tests
// and single-threaded surfaces deterministic. Flush runs pending frame
// callbacks; Advance moves virtual time and fires due timers.
type ManualScheduler struct {
	mu     sync.Mutex
	nextID int
	frames map[int]func()
	timers map[int]*manualTimer
}

type manualTimer struct {
	remaining time.Duration
	fn        func()
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{
		frames: map[int]func(){},
		timers: map[int]*manualTimer{},
	}
}

func (s *ManualScheduler) Frame(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.frames[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.frames, id)
	}
}

func (s *ManualScheduler) After(d time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.timers[id] = &manualTimer{remaining: d, fn: fn}
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.timers, id)
	}
}

// Flush runs every pending frame callback once; callbacks scheduled while
// flushing wait for the next Flush.
func (s *ManualScheduler) Flush() {
	s.mu.Lock()
	pending := s.frames
	s.frames = map[int]func(){}
	s.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
}

// Advance moves virtual time forward and fires timers that come due.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	var due []func()
	for id, t := range s.timers {
		t.remaining -= d
		if t.remaining <= 0 {
			due = append(due, t.fn)
			delete(s.timers, id)
		}
	}
	s.mu.Unlock()
	for _, fn := range due {
		fn()
	}
}

// Pending reports queued frame callbacks plus timers; used by tests.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames) + len(s.timers)
}
