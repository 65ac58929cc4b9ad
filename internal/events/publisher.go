package events

import (
	"context"
	"sync"
	"time"

	"github.com/yourorg/stocksnap/internal/model"

	"github.com/google/uuid"
)

// Publisher publishes session events
type Publisher interface {
	Publish(ctx context.Context, event model.SessionEvent) error
	Close() error
}

// NewSessionEvent builds an event with a fresh ID and timestamp
func NewSessionEvent(eventType, sessionID, symbol string) model.SessionEvent {
	return model.SessionEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		SessionID: sessionID,
		Symbol:    symbol,
		Timestamp: time.Now().UTC(),
	}
}

// NopPublisher discards events
type NopPublisher struct{}

// Publish does nothing
func (NopPublisher) Publish(ctx context.Context, event model.SessionEvent) error { return nil }

// Close does nothing
func (NopPublisher) Close() error { return nil }

// RecordingPublisher keeps published events in memory
type RecordingPublisher struct {
	mu     sync.Mutex
	Events []model.SessionEvent
}

// Publish records the event
func (p *RecordingPublisher) Publish(ctx context.Context, event model.SessionEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, event)
	return nil
}

// Close does nothing
func (p *RecordingPublisher) Close() error { return nil }

// Types returns the recorded event types in order
func (p *RecordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, 0, len(p.Events))
	for _, e := range p.Events {
		types = append(types, e.Type)
	}
	return types
}
