package conversation

import (
	"sync"

	"swayam-intelligence/internal/common/logger"
	"swayam-intelligence/internal/models"
)

// Listener receives plan-execution progress events.
type Listener func(models.ProgressEvent)

// Broadcaster fans progress events out to subscribers. A panicking listener
// is recovered and logged so it cannot take down plan execution or starve
// the other listeners.
type Broadcaster struct {
	mu        sync.RWMutex
	listeners map[int]Listener
	nextID    int
	logger    logger.Logger
}

func NewBroadcaster(log logger.Logger) *Broadcaster {
	return &Broadcaster{
		listeners: make(map[int]Listener),
		logger: log.With(map[string]interface{}{
			"component": "progress-broadcaster",
		}),
	}
}

// Subscribe registers a listener and returns an unsubscribe function.
func (b *Broadcaster) Subscribe(fn Listener) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.listeners, id)
		b.mu.Unlock()
	}
}

// Publish delivers the event to every subscriber synchronously.
func (b *Broadcaster) Publish(event models.ProgressEvent) {
	b.mu.RLock()
	listeners := make([]Listener, 0, len(b.listeners))
	for _, fn := range b.listeners {
		listeners = append(listeners, fn)
	}
	b.mu.RUnlock()

	for _, fn := range listeners {
		b.deliver(fn, event)
	}
}

func (b *Broadcaster) deliver(fn Listener, event models.ProgressEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("progress listener panicked", map[string]interface{}{
				"event": string(event.Type),
				"panic": r,
			})
		}
	}()
	fn(event)
}
