// Package events fans domain events out to in-process notifiers. The
// pricing engine has no persistence tier, so the bus is purely
// synchronous: emit, notify, done.
package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Event is one emitted domain event.
type Event struct {
	Topic      string
	Subject    string
	Payload    any
	OccurredAt time.Time
}

// Notifier reacts to emitted events (logging, metrics).
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// Bus dispatches events to all configured notifiers. Notifier failures
// are joined and reported, but never stop the fan-out.
type Bus struct {
	Now       func() time.Time
	Notifiers []Notifier
}

func (b *Bus) now() time.Time {
	if b != nil && b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

// Emit dispatches the event to all configured notifiers. Subject names
// the aggregate the event concerns (a product name, a cart id).
func (b *Bus) Emit(ctx context.Context, topic, subject string, payload any) error {
	if b == nil {
		return nil
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return errors.New("events: topic is required")
	}
	ev := Event{
		Topic:      topic,
		Subject:    subject,
		Payload:    payload,
		OccurredAt: b.now(),
	}
	var joined error
	for _, notifier := range b.Notifiers {
		if notifier == nil {
			continue
		}
		if err := notifier.Notify(ctx, ev); err != nil {
			joined = errors.Join(joined, fmt.Errorf("events: notifier: %w", err))
		}
	}
	return joined
}
