package erp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"
)

// Notification levels.
const (
	LevelSuccess = "success"
	LevelInfo    = "info"
	LevelError   = "error"
)

// Notification is a short user-facing message about a completed action.
type Notification struct {
	Level       string    `json:"level"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Entity      string    `json:"entity,omitempty"`
	RecordID    string    `json:"record_id,omitempty"`
	At          time.Time `json:"at"`
}

type noopNotificationHook struct{}

func (noopNotificationHook) Notify(context.Context, Notification) error { return nil }

func normalizeNotificationHook(h NotificationHook) NotificationHook {
	if h == nil {
		return noopNotificationHook{}
	}
	return h
}

// BroadcastHook fans out notifications to in-process subscribers.
type BroadcastHook struct {
	mu   sync.RWMutex
	subs map[int]chan Notification
	next int
}

// NewBroadcastHook creates a broadcast hook.
func NewBroadcastHook() *BroadcastHook {
	return &BroadcastHook{
		subs: make(map[int]chan Notification),
	}
}

// Notify satisfies NotificationHook. Slow subscribers miss events instead of blocking the sender.
func (h *BroadcastHook) Notify(ctx context.Context, n Notification) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- n:
		default:
		}
	}
	return nil
}

// Subscribe returns a channel of notifications and a cancel func.
func (h *BroadcastHook) Subscribe() (<-chan Notification, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	ch := make(chan Notification, 8)
	h.subs[id] = ch
	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Subscribers reports the number of live subscriptions.
func (h *BroadcastHook) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// ServeSSE provides a Server-Sent Events endpoint for notifications.
func (h *BroadcastHook) ServeSSE(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	events, cancel := h.Subscribe()
	defer cancel()

	flusher, _ := w.(http.Flusher)
	if flusher != nil {
		flusher.Flush()
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case n, ok := <-events:
			if !ok {
				return
			}
			if err := writeSSEEvent(w, n); err != nil {
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
	}
}

// writeSSEEvent writes n as one "data:" frame.
func writeSSEEvent(w io.Writer, n Notification) error {
	if _, err := io.WriteString(w, "data: "); err != nil {
		return err
	}
	if err := json.NewEncoder(w).Encode(n); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func newNotification(level, title, description, entity, id string) Notification {
	return Notification{
		Level:       level,
		Title:       title,
		Description: description,
		Entity:      entity,
		RecordID:    id,
	}
}
