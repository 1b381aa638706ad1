// Package notify keeps the short-lived toast messages shown in the portal
// footer.
package notify

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type Severity int

const (
	Success Severity = iota
	Info
	Error
)

func (s Severity) String() string {
	switch s {
	case Success:
		return "success"
	case Info:
		return "info"
	case Error:
		return "error"
	}
	return "unknown"
}

const (
	DefaultTTL   = 4 * time.Second
	DefaultLimit = 3
)

type Toast struct {
	ID       int
	Message  string
	Severity Severity
	Expires  time.Time
}

// DismissMsg is delivered by the tick scheduled for a toast.
type DismissMsg struct {
	ID int
}

// Queue is a bounded list of toasts. Pushing onto a full queue evicts the
// oldest toast; it never blocks.
type Queue struct {
	mu      sync.Mutex
	toasts  []Toast
	nextID  int
	limit   int
	ttl     time.Duration
	now     func() time.Time
	pending []tea.Cmd
	dropped int
}

func NewQueue(limit int, ttl time.Duration) *Queue {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Queue{limit: limit, ttl: ttl, now: time.Now}
}

// Notify satisfies portal.Notifier. The dismiss tick is held until the next
// call to Drain.
func (q *Queue) Notify(message string, severity Severity) {
	_, cmd := q.Push(message, severity)
	q.mu.Lock()
	q.pending = append(q.pending, cmd)
	if over := len(q.pending) - q.limit; over > 0 {
		// Active hides expired toasts without their tick.
		q.pending = append([]tea.Cmd(nil), q.pending[over:]...)
	}
	q.mu.Unlock()
}

// Push adds a toast and returns it together with the command that will
// dismiss it once its TTL elapses.
func (q *Queue) Push(message string, severity Severity) (Toast, tea.Cmd) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.nextID++
	toast := Toast{
		ID:       q.nextID,
		Message:  message,
		Severity: severity,
		Expires:  q.now().Add(q.ttl),
	}

	q.toasts = append(q.toasts, toast)
	if over := len(q.toasts) - q.limit; over > 0 {
		q.toasts = append([]Toast(nil), q.toasts[over:]...)
		q.dropped += over
	}

	id := toast.ID
	return toast, tea.Tick(q.ttl, func(time.Time) tea.Msg {
		return DismissMsg{ID: id}
	})
}

// Drain returns the dismiss ticks queued by Notify.
func (q *Queue) Drain() tea.Cmd {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil
	}
	cmds := q.pending
	q.pending = nil
	return tea.Batch(cmds...)
}

// Dismiss removes the toast with the given id. Unknown ids are ignored.
func (q *Queue) Dismiss(id int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, t := range q.toasts {
		if t.ID == id {
			q.toasts = append(q.toasts[:i:i], q.toasts[i+1:]...)
			return
		}
	}
}

// Active returns the toasts that have not expired, oldest first.
func (q *Queue) Active() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	now := q.now()
	out := make([]Toast, 0, len(q.toasts))
	for _, t := range q.toasts {
		if now.Before(t.Expires) {
			out = append(out, t)
		}
	}
	return out
}

// Dropped counts toasts evicted by overflow.
func (q *Queue) Dropped() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
