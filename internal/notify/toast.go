package notify

import (
	"sync"
	"time"
)

// Icon distinguishes success and warning toasts.
type Icon string

const (
	IconCheck   Icon = "check"
	IconWarning Icon = "warning"
)

// DefaultDuration is how long a toast stays visible.
const DefaultDuration = 3 * time.Second

// Message is a snapshot of the toast.
type Message struct {
	Text string
	Icon Icon
	Open bool
}

// Scheduler runs fn after d and returns a stop function.
type Scheduler func(d time.Duration, fn func()) (stop func() bool)

func timerScheduler(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

// Toast is a single-slot transient notification. A new Show while a toast is
// visible replaces the text and restarts the timer; nothing is queued.
type Toast struct {
	duration time.Duration
	schedule Scheduler
	sink     func(Message)

	mu    sync.Mutex
	msg   Message
	gen   uint64
	stopF func() bool
}

// NewToast builds a toast hidden by default. sink, if non-nil, is called with
// every message as it is shown.
func NewToast(duration time.Duration, sink func(Message)) *Toast {
	return NewToastWithScheduler(duration, sink, timerScheduler)
}

// NewToastWithScheduler lets tests drive expiry by hand.
func NewToastWithScheduler(duration time.Duration, sink func(Message), schedule Scheduler) *Toast {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Toast{duration: duration, schedule: schedule, sink: sink}
}

// Success shows a check toast.
func (t *Toast) Success(text string) { t.Show(text, IconCheck) }

// Warning shows a warning toast.
func (t *Toast) Warning(text string) { t.Show(text, IconWarning) }

// Show makes text visible and (re)starts the expiry timer.
func (t *Toast) Show(text string, icon Icon) {
	t.mu.Lock()
	if t.stopF != nil {
		t.stopF()
	}
	t.gen++
	gen := t.gen
	t.msg = Message{Text: text, Icon: icon, Open: true}
	t.stopF = t.schedule(t.duration, func() { t.expire(gen) })
	msg := t.msg
	t.mu.Unlock()

	if t.sink != nil {
		t.sink(msg)
	}
}

// Dismiss hides the toast immediately.
func (t *Toast) Dismiss() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopF != nil {
		t.stopF()
		t.stopF = nil
	}
	t.gen++
	t.msg.Open = false
}

// Snapshot returns the current toast state.
func (t *Toast) Snapshot() Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.msg
}

func (t *Toast) expire(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	// a newer Show or Dismiss owns the slot
	if gen != t.gen {
		return
	}
	t.msg.Open = false
	t.stopF = nil
}
