// Package notify records notification requests for the demo front end.
// Notifications are a pure side-effect log: they never touch listings,
// scores, or the store.
package notify

import (
	"fmt"
	"sync"

	domain "github.com/dealscout/dealscout/pkg/types"
)

// DefaultChannel is used when a notify request names no channel.
const DefaultChannel = "email"

// Recorder appends notifications to an in-memory log. The log is unbounded
// and process-local; recording always succeeds.
type Recorder struct {
	mu      sync.Mutex
	entries []domain.Notification
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record canonicalizes the VIN, fills in channel and message defaults, and
// appends the notification to the log. It returns the recorded entry.
func (r *Recorder) Record(vin, channel, message string) domain.Notification {
	key := domain.CanonicalVIN(vin)
	if channel == "" {
		channel = DefaultChannel
	}
	if message == "" {
		message = fmt.Sprintf("Notify for VIN %s", key)
	}

	n := domain.Notification{VIN: key, Channel: channel, Message: message}

	r.mu.Lock()
	r.entries = append(r.entries, n)
	r.mu.Unlock()

	return n
}

// Entries returns a copy of all recorded notifications in order.
func (r *Recorder) Entries() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Notification, len(r.entries))
	copy(out, r.entries)
	return out
}
