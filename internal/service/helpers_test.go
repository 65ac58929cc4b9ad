package service

import (
	"context"
	"errors"
	"testing"

	"github.com/yourorg/stocksnap/internal/events"
	"github.com/yourorg/stocksnap/internal/repository"
	"github.com/yourorg/stocksnap/internal/storage"

	"go.uber.org/zap/zaptest"
)

const testKey = "stockanalyzer_user"

func newTestCatalog(t *testing.T) *repository.StaticCatalog {
	t.Helper()
	return repository.NewMockCatalog(zaptest.NewLogger(t))
}

func newTestSessionService(t *testing.T) (*SessionService, *storage.MemoryStore, *events.RecordingPublisher) {
	t.Helper()
	store := storage.NewMemoryStore()
	publisher := &events.RecordingPublisher{}
	svc := NewSessionService(store, testKey, newTestCatalog(t), publisher, zaptest.NewLogger(t))
	return svc, store, publisher
}

// failingStore fails every write after it is armed
type failingStore struct {
	*storage.MemoryStore
	fail bool
}

func (s *failingStore) Set(ctx context.Context, key, value string) error {
	if s.fail {
		return errors.New("disk full")
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func (s *failingStore) Remove(ctx context.Context, key string) error {
	if s.fail {
		return errors.New("disk full")
	}
	return s.MemoryStore.Remove(ctx, key)
}
