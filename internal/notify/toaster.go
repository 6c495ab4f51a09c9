package notify

import (
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/subfinder-client/internal/logger"
	"github.com/google/uuid"
)

const subscriberBuffer = 16

// Toaster is the concrete [Notifier]. Active notifications are kept in
// insertion order and dismissed automatically once their Timeout elapses.
type Toaster struct {
	mu          sync.Mutex
	active      []Notification
	timers      map[string]*time.Timer
	subscribers []chan Notification
	closed      bool

	now    func() time.Time
	logger *logger.Logger
}

// NewToaster creates an empty Toaster.
func NewToaster(log *logger.Logger) *Toaster {
	return &Toaster{
		timers: make(map[string]*time.Timer),
		now:    time.Now,
		logger: log.WithComponent("notify"),
	}
}

// Add implements [Notifier]. After Close the notification is still returned
// with an ID but is neither stored nor published.
func (t *Toaster) Add(n Notification) Notification {
	n.ID = uuid.NewString()
	n.CreatedAt = t.now()

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return n
	}

	t.active = append(t.active, n)
	if n.Timeout > 0 {
		id := n.ID
		t.timers[id] = time.AfterFunc(n.Timeout, func() { t.Remove(id) })
	}

	for _, sub := range t.subscribers {
		select {
		case sub <- n:
		default:
			t.logger.Debug().Str("id", n.ID).Msg("subscriber is full, notification dropped")
		}
	}

	t.logger.Info().
		Str("id", n.ID).
		Str("title", n.Title).
		Str("description", n.Description).
		Str("color", string(n.Color)).
		Dur("timeout", n.Timeout).
		Msg("notification added")

	return n
}

// Remove dismisses the notification with the given id. Unknown ids are
// ignored, so calling Remove twice is safe.
func (t *Toaster) Remove(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if timer, ok := t.timers[id]; ok {
		timer.Stop()
		delete(t.timers, id)
	}

	t.active = slices.DeleteFunc(t.active, func(n Notification) bool {
		return n.ID == id
	})
}

// Active returns a copy of the currently displayed notifications, oldest
// first.
func (t *Toaster) Active() []Notification {
	t.mu.Lock()
	defer t.mu.Unlock()

	return slices.Clone(t.active)
}

// Subscribe returns a channel receiving every notification added from now on.
// Delivery never blocks Add: when the channel is full the notification is
// dropped for that subscriber. The channel is closed by Close.
func (t *Toaster) Subscribe() <-chan Notification {
	t.mu.Lock()
	defer t.mu.Unlock()

	ch := make(chan Notification, subscriberBuffer)
	if t.closed {
		close(ch)
		return ch
	}

	t.subscribers = append(t.subscribers, ch)
	return ch
}

// Close stops pending dismiss timers and closes all subscriptions. It is safe
// to call more than once.
func (t *Toaster) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	t.closed = true

	for id, timer := range t.timers {
		timer.Stop()
		delete(t.timers, id)
	}
	for _, sub := range t.subscribers {
		close(sub)
	}
	t.subscribers = nil
}
