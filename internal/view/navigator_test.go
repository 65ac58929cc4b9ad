package view

import (
	"context"
	"testing"
	"time"

	"github.com/yourorg/stocksnap/internal/events"
	"github.com/yourorg/stocksnap/internal/model"
	"github.com/yourorg/stocksnap/internal/repository"
	"github.com/yourorg/stocksnap/internal/service"
	"github.com/yourorg/stocksnap/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestNavigator(t *testing.T, delay time.Duration) (*Navigator, *service.SessionService) {
	t.Helper()
	logger := zaptest.NewLogger(t)
	catalog := repository.NewMockCatalog(logger)
	search := service.NewSearchService(catalog, nil, logger)
	sessions := service.NewSessionService(storage.NewMemoryStore(), "stockanalyzer_user", catalog, events.NopPublisher{}, logger)
	return NewNavigator(search, sessions, delay, logger), sessions
}

func state(t *testing.T, n *Navigator) *model.ViewState {
	t.Helper()
	s, err := n.State(context.Background())
	require.NoError(t, err)
	return s
}

var jane = model.Identity{ID: "u1", Email: "jane@example.com", Name: "Jane"}

func TestInitialState(t *testing.T) {
	n, _ := newTestNavigator(t, 0)

	s := state(t, n)
	assert.Equal(t, model.ScreenHome, s.Screen)
	assert.Nil(t, s.SelectedCompany)
	assert.Empty(t, s.SearchResults)
	assert.False(t, s.Searching)
	assert.False(t, s.AuthPromptVisible)
	assert.False(t, s.Authenticated)
	assert.Len(t, s.Trending, 6)
	assert.Zero(t, s.FavoritesCount)
}

func TestSearchThenSelect(t *testing.T) {
	n, _ := newTestNavigator(t, 0)
	ctx := context.Background()

	require.NoError(t, n.Search(ctx, "goo"))
	s := state(t, n)
	assert.Equal(t, "goo", s.SearchQuery)
	require.Len(t, s.SearchResults, 1)
	assert.Equal(t, "GOOGL", s.SearchResults[0].Symbol)
	assert.False(t, s.Searching)

	ok, err := n.SelectCompany(ctx, "GOOGL")
	require.NoError(t, err)
	assert.True(t, ok)

	s = state(t, n)
	assert.Equal(t, model.ScreenDetail, s.Screen)
	require.NotNil(t, s.SelectedCompany)
	assert.Equal(t, "GOOGL", s.SelectedCompany.Symbol)
	assert.Empty(t, s.SearchQuery)
	assert.Empty(t, s.SearchResults)

	n.BackToHome()
	s = state(t, n)
	assert.Equal(t, model.ScreenHome, s.Screen)
	assert.Nil(t, s.SelectedCompany)
}

func TestSelectUnknownCompanyIsNoOp(t *testing.T) {
	n, _ := newTestNavigator(t, 0)

	ok, err := n.SelectCompany(context.Background(), "IBM")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, model.ScreenHome, state(t, n).Screen)
}

func TestSearchDelayShowsSearching(t *testing.T) {
	n, _ := newTestNavigator(t, 50*time.Millisecond)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- n.Search(ctx, "ms") }()

	assert.Eventually(t, func() bool { return state(t, n).Searching }, time.Second, time.Millisecond)
	require.NoError(t, <-done)

	s := state(t, n)
	assert.False(t, s.Searching)
	require.Len(t, s.SearchResults, 1)
	assert.Equal(t, "MSFT", s.SearchResults[0].Symbol)
}

func TestSearchCancelled(t *testing.T) {
	n, _ := newTestNavigator(t, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.Search(ctx, "aapl")
	assert.ErrorIs(t, err, context.Canceled)
	s := state(t, n)
	assert.False(t, s.Searching)
	assert.Empty(t, s.SearchResults)
}

func TestLatestSearchWins(t *testing.T) {
	n, _ := newTestNavigator(t, 0)
	ctx := context.Background()

	// Simulate a slow first search finishing after a newer one
	n.mu.Lock()
	n.searchGeneration++
	stale := n.searchGeneration
	n.mu.Unlock()

	require.NoError(t, n.Search(ctx, "tes"))
	n.finishSearch(stale, []model.Company{{Symbol: "STALE"}})

	s := state(t, n)
	require.Len(t, s.SearchResults, 1)
	assert.Equal(t, "TSLA", s.SearchResults[0].Symbol)
}

func TestAnonymousActionsPromptLogin(t *testing.T) {
	n, sessions := newTestNavigator(t, 0)
	ctx := context.Background()

	assert.False(t, n.ShowFavorites())
	s := state(t, n)
	assert.True(t, s.AuthPromptVisible)
	assert.Equal(t, model.ScreenHome, s.Screen)

	n.CloseAuthPrompt()
	require.NoError(t, n.FavoriteClick(ctx, "AAPL"))
	assert.True(t, state(t, n).AuthPromptVisible)
	assert.Empty(t, sessions.ListFavorites())

	// The dropped favorites request is not replayed after login
	_, err := n.Login(ctx, jane)
	require.NoError(t, err)
	s = state(t, n)
	assert.False(t, s.AuthPromptVisible)
	assert.True(t, s.Authenticated)
	assert.Equal(t, model.ScreenHome, s.Screen)
	assert.Empty(t, s.Favorites)
}

func TestFavoritesFlow(t *testing.T) {
	n, _ := newTestNavigator(t, 0)
	ctx := context.Background()

	_, err := n.Login(ctx, jane)
	require.NoError(t, err)

	_, err = n.SelectCompany(ctx, "AAPL")
	require.NoError(t, err)
	require.NoError(t, n.FavoriteClick(ctx, "AAPL"))

	s := state(t, n)
	assert.True(t, s.IsFavorited)
	assert.Equal(t, 1, s.FavoritesCount)

	assert.True(t, n.ShowFavorites())
	s = state(t, n)
	assert.Equal(t, model.ScreenFavorites, s.Screen)
	require.Len(t, s.Favorites, 1)

	require.NoError(t, n.RemoveFavorite(ctx, "AAPL"))
	assert.Zero(t, state(t, n).FavoritesCount)

	require.NoError(t, n.Logout(ctx))
	assert.False(t, state(t, n).Authenticated)
}
