// Package notification delivers transient user notifications.
package notification

import (
	"context"
	"log/slog"
	"sync"

	"solarsavers/internal/domain/service"
)

// DefaultCapacity bounds how many undelivered notices are kept.
const DefaultCapacity = 32

// Toaster logs each notice and queues it until a front end drains it.
// When the queue is full the oldest notice is dropped.
type Toaster struct {
	mu       sync.Mutex
	logger   *slog.Logger
	notices  []service.Notice
	capacity int
}

var _ service.Notifier = (*Toaster)(nil)

// NewToaster creates a Toaster with DefaultCapacity.
func NewToaster(logger *slog.Logger) *Toaster {
	return &Toaster{logger: logger, capacity: DefaultCapacity}
}

func (t *Toaster) Success(message string) {
	t.push(service.NoticeSuccess, message)
}

func (t *Toaster) Info(message string) {
	t.push(service.NoticeInfo, message)
}

func (t *Toaster) Error(message string) {
	t.push(service.NoticeError, message)
}

// Drain returns the queued notices in arrival order and empties the queue.
func (t *Toaster) Drain() []service.Notice {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := t.notices
	t.notices = nil

	return out
}

func (t *Toaster) push(level service.NoticeLevel, message string) {
	logLevel := slog.LevelInfo
	if level == service.NoticeError {
		logLevel = slog.LevelWarn
	}
	t.logger.Log(context.Background(), logLevel, "Notice", slog.String("tone", string(level)), slog.String("message", message))

	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.notices) == t.capacity {
		t.notices = t.notices[1:]
	}
	t.notices = append(t.notices, service.Notice{Level: level, Message: message})
}
