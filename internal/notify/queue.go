package notify

import (
	"fmt"
	"time"
)

// DefaultTTL is how long a toast stays on screen before auto-expiry.
const DefaultTTL = 5 * time.Second

// Severity classifies a toast message.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityError
)

// Notification is one transient user-facing message.
type Notification struct {
	ID        string
	Message   string
	Severity  Severity
	CreatedAt time.Time
}

// Queue holds live notifications in creation order. Every Post schedules an
// expiry keyed by the notification ID; expiry and manual dismissal both go
// through Dismiss, which is idempotent, so whichever fires second is a no-op.
//
// The queue is only touched from the TUI update loop and needs no locking.
type Queue struct {
	items  []Notification
	ttl    time.Duration
	nextID int
	now    func() time.Time
}

// NewQueue creates a queue with the given time-to-live per notification.
// A zero ttl means DefaultTTL.
func NewQueue(ttl time.Duration) *Queue {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Queue{ttl: ttl, now: time.Now}
}

// TTL returns the auto-expiry duration for scheduling.
func (q *Queue) TTL() time.Duration {
	return q.ttl
}

// Post appends a notification and returns it. The caller is responsible for
// scheduling expiry of the returned ID after TTL.
func (q *Queue) Post(message string, severity Severity) Notification {
	q.nextID++
	n := Notification{
		ID:        fmt.Sprintf("toast-%d", q.nextID),
		Message:   message,
		Severity:  severity,
		CreatedAt: q.now(),
	}
	q.items = append(q.items, n)
	return n
}

// Dismiss removes the notification with the given ID. Returns false when the
// ID is already gone, which makes a late expiry timer harmless.
func (q *Queue) Dismiss(id string) bool {
	for i, n := range q.items {
		if n.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

// DismissOldest removes the notification at the head of the queue, if any.
func (q *Queue) DismissOldest() bool {
	if len(q.items) == 0 {
		return false
	}
	q.items = q.items[1:]
	return true
}

// Items returns the live notifications in creation order.
func (q *Queue) Items() []Notification {
	return q.items
}

// Len returns the number of live notifications.
func (q *Queue) Len() int {
	return len(q.items)
}
