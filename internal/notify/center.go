// Package notify is the process-wide toast surface. A Center is created
// once at start-up, any component may Push onto it, and exactly one
// subscriber drains it with Run.
package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

var ErrClosed = errors.New("notification center closed")

type Toast struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Center keeps the on-screen toasts in insertion order and queues each new
// toast for the subscriber.
type Center struct {
	mu     sync.Mutex
	toasts []Toast
	closed bool

	queue chan Toast
	done  chan struct{}
	ttl   time.Duration
	now   func() time.Time
	log   *zap.Logger
}

func NewCenter(config utils.NotifyConfig, log *zap.Logger) *Center {
	buffer := config.Buffer
	if buffer < 1 {
		buffer = 1
	}
	return &Center{
		queue: make(chan Toast, buffer),
		done:  make(chan struct{}),
		ttl:   config.TTL,
		now:   time.Now,
		log:   log.With(zap.String("component", "notify")),
	}
}

// Push records a toast. When the subscriber lags and the queue is full the
// toast is still shown on rendered pages but not streamed.
func (c *Center) Push(level Level, message string) (Toast, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return Toast{}, ErrClosed
	}

	now := c.now()
	toast := Toast{
		ID:        utils.GenerateUUIDString(),
		Level:     level,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}
	c.toasts = append(c.pruneLocked(now), toast)

	select {
	case c.queue <- toast:
	default:
		c.log.Warn("Toast queue full, not streamed", zap.String("message", message))
	}

	return toast, nil
}

func (c *Center) Success(message string) { c.push(LevelSuccess, message) }
func (c *Center) Error(message string)   { c.push(LevelError, message) }
func (c *Center) Info(message string)    { c.push(LevelInfo, message) }

func (c *Center) push(level Level, message string) {
	if _, err := c.Push(level, message); err != nil {
		c.log.Debug("Toast dropped", zap.String("message", message), zap.Error(err))
	}
}

// Active returns the toasts that have not been auto-dismissed yet.
func (c *Center) Active() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.toasts = c.pruneLocked(c.now())
	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

func (c *Center) pruneLocked(now time.Time) []Toast {
	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if now.Before(t.ExpiresAt) {
			kept = append(kept, t)
		}
	}
	return kept
}

// Run drains the queue into deliver until ctx is cancelled or Close is
// called. It must be started once.
func (c *Center) Run(ctx context.Context, deliver func(Toast)) {
	for {
		select {
		case toast := <-c.queue:
			deliver(toast)
		case <-ctx.Done():
			return
		case <-c.done:
			// flush what was queued before Close
			for {
				select {
				case toast := <-c.queue:
					deliver(toast)
				default:
					return
				}
			}
		}
	}
}

// Close ends the center's lifecycle; later pushes fail with ErrClosed.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.done)
}
