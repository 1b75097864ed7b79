package notify

import (
	"sync"
	"time"

	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/utils"
)

// DefaultTTL is how long a toast stays visible
const DefaultTTL = 3 * time.Second

// Toast is a short-lived user notification. Message is a translation key.
type Toast struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Queue holds the toasts waiting to be shown
type Queue struct {
	mu     sync.Mutex
	toasts []Toast
	now    func() time.Time
}

// NewQueue creates an empty queue on the wall clock
func NewQueue() *Queue {
	return &Queue{now: time.Now}
}

// Push queues a toast with the default lifetime
func (q *Queue) Push(kind, message string) Toast {
	return q.PushWithTTL(kind, message, DefaultTTL)
}

// PushWithTTL queues a toast that expires after ttl
func (q *Queue) PushWithTTL(kind, message string, ttl time.Duration) Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	t := Toast{
		ID:        utils.GenerateID(),
		Kind:      kind,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	q.toasts = append(q.toasts, t)
	utils.Debug("toast queued", map[string]any{"kind": kind, "message": message})
	return t
}

// Notify lets the queue stand in wherever a service expects a notifier
func (q *Queue) Notify(kind, messageKey string) {
	q.Push(kind, messageKey)
}

// Active drops expired toasts and returns the rest, oldest first
func (q *Queue) Active() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	kept := q.toasts[:0]
	for _, t := range q.toasts {
		if now.Before(t.ExpiresAt) {
			kept = append(kept, t)
		}
	}
	q.toasts = kept
	return append([]Toast{}, kept...)
}

// Dismiss removes one toast and reports whether it was queued
func (q *Queue) Dismiss(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, t := range q.toasts {
		if t.ID == id {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			return true
		}
	}
	return false
}
