package handler

import (
	"net/http"
	"testing"

	"github.com/yourorg/stocksnap/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewState(t *testing.T, env *testEnv, method, path string) model.ViewState {
	t.Helper()
	w := env.do(t, method, path, nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var state model.ViewState
	decode(t, w, &state)
	return state
}

func TestViewInitialState(t *testing.T) {
	env := newTestEnv(t)
	state := viewState(t, env, http.MethodGet, "/api/v1/view")

	assert.Equal(t, model.ScreenHome, state.Screen)
	assert.Nil(t, state.SelectedCompany)
	assert.False(t, state.Authenticated)
	assert.Len(t, state.Trending, 6)
	assert.Empty(t, state.SearchResults)
}

func TestViewSearchThenSelect(t *testing.T) {
	env := newTestEnv(t)

	state := viewState(t, env, http.MethodPost, "/api/v1/view/search?q=tes")
	assert.Equal(t, "tes", state.SearchQuery)
	assert.False(t, state.Searching)
	assert.Equal(t, []string{"TSLA"}, symbols(state.SearchResults))

	state = viewState(t, env, http.MethodPost, "/api/v1/view/select/tsla")
	assert.Equal(t, model.ScreenDetail, state.Screen)
	require.NotNil(t, state.SelectedCompany)
	assert.Equal(t, "TSLA", state.SelectedCompany.Symbol)
	assert.Empty(t, state.SearchQuery)
	assert.Empty(t, state.SearchResults)

	state = viewState(t, env, http.MethodPost, "/api/v1/view/home")
	assert.Equal(t, model.ScreenHome, state.Screen)
	assert.Nil(t, state.SelectedCompany)
}

func TestViewSelectUnknownSymbol(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/api/v1/view/select/XYZ", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	state := viewState(t, env, http.MethodGet, "/api/v1/view")
	assert.Equal(t, model.ScreenHome, state.Screen)
}

func TestViewPromptsForLoginWhenSignedOut(t *testing.T) {
	env := newTestEnv(t)

	state := viewState(t, env, http.MethodPost, "/api/v1/view/favorites")
	assert.Equal(t, model.ScreenHome, state.Screen)
	assert.True(t, state.AuthPromptVisible)

	state = viewState(t, env, http.MethodPost, "/api/v1/view/auth-prompt/close")
	assert.False(t, state.AuthPromptVisible)

	state = viewState(t, env, http.MethodPost, "/api/v1/view/favorite/AAPL")
	assert.True(t, state.AuthPromptVisible)
	assert.Zero(t, state.FavoritesCount)

	// a successful login hides the prompt
	env.login(t)
	state = viewState(t, env, http.MethodGet, "/api/v1/view")
	assert.False(t, state.AuthPromptVisible)
	assert.True(t, state.Authenticated)
}

func TestViewFavoriteFlow(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	viewState(t, env, http.MethodPost, "/api/v1/view/select/AAPL")
	state := viewState(t, env, http.MethodPost, "/api/v1/view/favorite/AAPL")
	assert.True(t, state.IsFavorited)
	assert.Equal(t, 1, state.FavoritesCount)

	state = viewState(t, env, http.MethodPost, "/api/v1/view/favorites")
	assert.Equal(t, model.ScreenFavorites, state.Screen)
	assert.Equal(t, []string{"AAPL"}, symbols(state.Favorites))

	state = viewState(t, env, http.MethodPost, "/api/v1/view/favorite/AAPL")
	assert.Zero(t, state.FavoritesCount)
}
