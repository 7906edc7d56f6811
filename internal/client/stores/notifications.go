package stores

import (
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/vetclinic/internal/client/models"
)

// Default display durations per severity.
const (
	SuccessDuration = 5 * time.Second
	ErrorDuration   = 7 * time.Second
	WarningDuration = 6 * time.Second
	InfoDuration    = 5 * time.Second
)

// Notifications is the registry of transient messages. Entries with a
// positive duration remove themselves when it elapses.
type Notifications struct {
	mu     sync.Mutex
	lastID int64
	timers map[int64]*time.Timer
	items  *Writable[[]models.Notification]
}

func NewNotifications() *Notifications {
	return &Notifications{
		timers: map[int64]*time.Timer{},
		items:  NewWritable([]models.Notification{}),
	}
}

// Add registers a notification and returns its id. Ids start at 1 and
// strictly increase.
func (n *Notifications) Add(message string, severity models.Severity, d time.Duration) int64 {
	n.mu.Lock()
	n.lastID++
	id := n.lastID
	n.mu.Unlock()

	// The entry must be listed before its timer can fire.
	entry := models.Notification{ID: id, Message: message, Severity: severity, Duration: d}
	n.items.Update(func(cur []models.Notification) []models.Notification {
		return append(slices.Clone(cur), entry)
	})

	if d > 0 {
		n.mu.Lock()
		n.timers[id] = time.AfterFunc(d, func() { n.expire(id) })
		n.mu.Unlock()
	}
	return id
}

func (n *Notifications) Success(message string) int64 {
	return n.Add(message, models.SeveritySuccess, SuccessDuration)
}

func (n *Notifications) Error(message string) int64 {
	return n.Add(message, models.SeverityError, ErrorDuration)
}

func (n *Notifications) Warning(message string) int64 {
	return n.Add(message, models.SeverityWarning, WarningDuration)
}

func (n *Notifications) Info(message string) int64 {
	return n.Add(message, models.SeverityInfo, InfoDuration)
}

// Remove drops the notification with id. Unknown ids are ignored.
func (n *Notifications) Remove(id int64) {
	n.mu.Lock()
	if t, ok := n.timers[id]; ok {
		t.Stop()
		delete(n.timers, id)
	}
	n.mu.Unlock()

	n.drop(id)
}

// Clear removes everything and cancels pending expiries.
func (n *Notifications) Clear() {
	n.mu.Lock()
	for id, t := range n.timers {
		t.Stop()
		delete(n.timers, id)
	}
	n.mu.Unlock()

	n.items.Set([]models.Notification{})
}

// List returns a snapshot of the active notifications, oldest first.
func (n *Notifications) List() []models.Notification {
	return slices.Clone(n.items.Get())
}

func (n *Notifications) Subscribe(fn func([]models.Notification)) (unsubscribe func()) {
	return n.items.Subscribe(fn)
}

// expire runs on the timer goroutine. A timer that fired after Remove or
// Clear finds no entry in timers and does nothing.
func (n *Notifications) expire(id int64) {
	n.mu.Lock()
	_, live := n.timers[id]
	delete(n.timers, id)
	n.mu.Unlock()

	if live {
		n.drop(id)
	}
}

func (n *Notifications) drop(id int64) {
	n.items.Update(func(cur []models.Notification) []models.Notification {
		idx := slices.IndexFunc(cur, func(x models.Notification) bool { return x.ID == id })
		if idx < 0 {
			return cur
		}
		return slices.Delete(slices.Clone(cur), idx, idx+1)
	})
}
