package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/yourorg/stocksnap/internal/events"
	"github.com/yourorg/stocksnap/internal/model"
	"github.com/yourorg/stocksnap/internal/repository"
	"github.com/yourorg/stocksnap/internal/storage"

	"go.uber.org/zap"
)

// SessionService owns the signed-in session and its favorites.
//
// Every mutation writes the full session record to the store before it is
// committed in memory, so the in-memory session always matches the stored
// one. Events are published after the lock is released. Favorite
// operations while signed out are no-ops.
type SessionService struct {
	mu        sync.RWMutex
	session   *model.Session
	store     storage.KVStore
	key       string
	catalog   repository.CatalogProvider
	publisher events.Publisher
	logger    *zap.Logger
}

// NewSessionService creates a new session service. Call Restore to load a
// previously stored session.
func NewSessionService(
	store storage.KVStore,
	key string,
	catalog repository.CatalogProvider,
	publisher events.Publisher,
	logger *zap.Logger,
) *SessionService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &SessionService{
		store:     store,
		key:       key,
		catalog:   catalog,
		publisher: publisher,
		logger:    logger,
	}
}

// Restore reads the stored session once. A missing or malformed record
// leaves the service signed out.
func (s *SessionService) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.store.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("failed to read stored session: %w", err)
	}
	if !ok {
		s.session = nil
		return nil
	}

	var session *model.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		s.logger.Warn("Ignoring malformed stored session", zap.String("key", s.key), zap.Error(err))
		s.session = nil
		return nil
	}
	// null and {} decode cleanly but carry no identity
	if session == nil || session.ID == "" {
		s.logger.Warn("Ignoring stored session without identity", zap.String("key", s.key))
		s.session = nil
		return nil
	}

	s.session = normalize(session)
	s.logger.Info("Restored session",
		zap.String("session_id", session.ID),
		zap.Int("favorites", len(s.session.Favorites)))
	return nil
}

// Login replaces the current session with the given identity
func (s *SessionService) Login(ctx context.Context, identity model.Identity) (*model.Session, error) {
	next := normalize(&model.Session{
		ID:            identity.ID,
		Email:         identity.Email,
		Name:          identity.Name,
		Favorites:     identity.Favorites,
		Subscriptions: identity.Subscriptions,
	})

	s.mu.Lock()
	err := s.commit(ctx, next)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in", zap.String("session_id", next.ID))
	s.publish(ctx, events.NewSessionEvent(model.EventLogin, next.ID, ""))
	return next.Clone(), nil
}

// Logout clears the session and removes the stored record. Logging out
// while signed out still removes any stored record.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	if err := s.store.Remove(ctx, s.key); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to remove stored session: %w", err)
	}
	prev := s.session
	s.session = nil
	s.mu.Unlock()

	if prev != nil {
		s.logger.Info("User logged out", zap.String("session_id", prev.ID))
		s.publish(ctx, events.NewSessionEvent(model.EventLogout, prev.ID, ""))
	}
	return nil
}

// ToggleFavorite removes symbol from the favorites if present, otherwise
// adds the catalog company with that symbol. Unknown symbols and a
// signed-out state are no-ops.
func (s *SessionService) ToggleFavorite(ctx context.Context, symbol string) error {
	event, err := s.toggle(ctx, symbol)
	if err != nil || event == nil {
		return err
	}
	s.publish(ctx, *event)
	return nil
}

func (s *SessionService) toggle(ctx context.Context, symbol string) (*model.SessionEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, nil
	}

	if s.session.HasFavorite(symbol) {
		return s.removeLocked(ctx, symbol)
	}

	company, err := repository.FindCompany(ctx, s.catalog, symbol)
	if err != nil {
		return nil, err
	}
	if company == nil {
		s.logger.Debug("Ignoring favorite for unknown symbol", zap.String("symbol", symbol))
		return nil, nil
	}

	next := s.session.Clone()
	next.Favorites = append(next.Favorites, *company)
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}

	event := events.NewSessionEvent(model.EventFavoriteAdded, next.ID, symbol)
	return &event, nil
}

// RemoveFavorite removes symbol from the favorites. It is a no-op when
// signed out or when symbol is not a favorite.
func (s *SessionService) RemoveFavorite(ctx context.Context, symbol string) error {
	s.mu.Lock()
	var (
		event *model.SessionEvent
		err   error
	)
	if s.session != nil {
		event, err = s.removeLocked(ctx, symbol)
	}
	s.mu.Unlock()

	if err != nil || event == nil {
		return err
	}
	s.publish(ctx, *event)
	return nil
}

// removeLocked must be called with s.mu held. It returns the event to
// publish once the lock is released, or nil when nothing was removed.
func (s *SessionService) removeLocked(ctx context.Context, symbol string) (*model.SessionEvent, error) {
	next := s.session.Clone()
	kept := next.Favorites[:0]
	for _, f := range next.Favorites {
		if f.Symbol != symbol {
			kept = append(kept, f)
		}
	}
	removed := len(kept) != len(next.Favorites)
	next.Favorites = kept

	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}

	if !removed {
		return nil, nil
	}
	event := events.NewSessionEvent(model.EventFavoriteRemoved, next.ID, symbol)
	return &event, nil
}

// IsFavorited reports whether symbol is a favorite of the current session
func (s *SessionService) IsFavorited(symbol string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return false
	}
	return s.session.HasFavorite(symbol)
}

// ListFavorites returns the favorites in stored order
func (s *SessionService) ListFavorites() []model.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return []model.Company{}
	}
	return append([]model.Company{}, s.session.Favorites...)
}

// Current returns a copy of the current session, or nil when signed out
func (s *SessionService) Current() *model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Clone()
}

// IsAuthenticated reports whether a session is active
func (s *SessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil
}

// StoredRecord returns the raw stored session record
func (s *SessionService) StoredRecord(ctx context.Context) (string, bool, error) {
	return s.store.Get(ctx, s.key)
}

// commit persists next and makes it the current session
func (s *SessionService) commit(ctx context.Context, next *model.Session) error {
	b, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.store.Set(ctx, s.key, string(b)); err != nil {
		s.logger.Error("Failed to persist session", zap.String("session_id", next.ID), zap.Error(err))
		return fmt.Errorf("failed to persist session: %w", err)
	}
	s.session = next
	return nil
}

// publish runs outside s.mu so a slow broker never stalls session reads
func (s *SessionService) publish(ctx context.Context, event model.SessionEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish session event",
			zap.String("type", event.Type),
			zap.String("session_id", event.SessionID),
			zap.Error(err))
	}
}

// normalize returns a copy with non-nil lists and favorites deduplicated
// by symbol, keeping the first occurrence
func normalize(session *model.Session) *model.Session {
	out := session.Clone()
	seen := make(map[string]bool, len(out.Favorites))
	favorites := make([]model.Company, 0, len(out.Favorites))
	for _, f := range out.Favorites {
		if seen[f.Symbol] {
			continue
		}
		seen[f.Symbol] = true
		favorites = append(favorites, f)
	}
	out.Favorites = favorites
	return out
}
