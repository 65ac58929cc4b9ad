package view

import (
	"context"
	"sync"
	"time"

	"github.com/yourorg/stocksnap/internal/model"
	"github.com/yourorg/stocksnap/internal/service"

	"go.uber.org/zap"
)

// Navigator holds the transient UI state: which screen is shown, the
// selected company, the pending search and the login prompt. Actions that
// need a session while signed out show the login prompt and are dropped.
type Navigator struct {
	search      *service.SearchService
	sessions    *service.SessionService
	searchDelay time.Duration
	logger      *zap.Logger

	mu                sync.Mutex
	screen            model.Screen
	selected          *model.Company
	searchQuery       string
	searchResults     []model.Company
	searching         bool
	searchGeneration  uint64
	authPromptVisible bool
}

// NewNavigator creates a navigator on the home screen
func NewNavigator(
	search *service.SearchService,
	sessions *service.SessionService,
	searchDelay time.Duration,
	logger *zap.Logger,
) *Navigator {
	return &Navigator{
		search:        search,
		sessions:      sessions,
		searchDelay:   searchDelay,
		logger:        logger,
		screen:        model.ScreenHome,
		searchResults: []model.Company{},
	}
}

// Search records the query, marks a search in flight, waits the configured
// delay and stores the results. Results of a search superseded by a newer
// call are discarded.
func (n *Navigator) Search(ctx context.Context, query string) error {
	n.mu.Lock()
	n.searchGeneration++
	gen := n.searchGeneration
	n.searchQuery = query
	n.searching = true
	n.mu.Unlock()

	if n.searchDelay > 0 {
		timer := time.NewTimer(n.searchDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			n.finishSearch(gen, nil)
			return ctx.Err()
		case <-timer.C:
		}
	}

	results, err := n.search.Search(ctx, query)
	if err != nil {
		n.finishSearch(gen, nil)
		return err
	}
	n.finishSearch(gen, results)
	return nil
}

func (n *Navigator) finishSearch(gen uint64, results []model.Company) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if gen != n.searchGeneration {
		return
	}
	n.searching = false
	if results != nil {
		n.searchResults = results
	}
}

// SelectCompany opens the detail screen for symbol and clears the pending
// search. It reports false and changes nothing for an unknown symbol.
func (n *Navigator) SelectCompany(ctx context.Context, symbol string) (bool, error) {
	company, err := n.search.Company(ctx, symbol)
	if err != nil {
		return false, err
	}
	if company == nil {
		return false, nil
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.selected = company
	n.screen = model.ScreenDetail
	n.searchQuery = ""
	n.searchResults = []model.Company{}
	// an in-flight search must not repopulate the cleared results
	n.searchGeneration++
	n.searching = false
	return true, nil
}

// BackToHome returns to the home screen and clears the selection
func (n *Navigator) BackToHome() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.screen = model.ScreenHome
	n.selected = nil
}

// ShowFavorites opens the favorites screen, or shows the login prompt when
// signed out. It reports whether the screen changed.
func (n *Navigator) ShowFavorites() bool {
	authenticated := n.sessions.IsAuthenticated()

	n.mu.Lock()
	defer n.mu.Unlock()
	if !authenticated {
		n.authPromptVisible = true
		return false
	}
	n.screen = model.ScreenFavorites
	return true
}

// FavoriteClick toggles symbol as a favorite, or shows the login prompt
// when signed out
func (n *Navigator) FavoriteClick(ctx context.Context, symbol string) error {
	if !n.sessions.IsAuthenticated() {
		n.RequestLogin()
		return nil
	}
	return n.sessions.ToggleFavorite(ctx, symbol)
}

// RemoveFavorite removes symbol from the favorites screen
func (n *Navigator) RemoveFavorite(ctx context.Context, symbol string) error {
	return n.sessions.RemoveFavorite(ctx, symbol)
}

// RequestLogin shows the login prompt
func (n *Navigator) RequestLogin() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.authPromptVisible = true
}

// CloseAuthPrompt hides the login prompt
func (n *Navigator) CloseAuthPrompt() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.authPromptVisible = false
}

// Login signs in and hides the login prompt
func (n *Navigator) Login(ctx context.Context, identity model.Identity) (*model.Session, error) {
	session, err := n.sessions.Login(ctx, identity)
	if err != nil {
		return nil, err
	}
	n.CloseAuthPrompt()
	return session, nil
}

// Logout signs out
func (n *Navigator) Logout(ctx context.Context) error {
	return n.sessions.Logout(ctx)
}

// State returns a snapshot of the view
func (n *Navigator) State(ctx context.Context) (*model.ViewState, error) {
	trending, err := n.search.Trending(ctx)
	if err != nil {
		return nil, err
	}
	favorites := n.sessions.ListFavorites()
	authenticated := n.sessions.IsAuthenticated()

	n.mu.Lock()
	defer n.mu.Unlock()

	state := &model.ViewState{
		Screen:            n.screen,
		SearchQuery:       n.searchQuery,
		SearchResults:     append([]model.Company{}, n.searchResults...),
		Searching:         n.searching,
		AuthPromptVisible: n.authPromptVisible,
		Authenticated:     authenticated,
		Trending:          trending,
		Favorites:         favorites,
		FavoritesCount:    len(favorites),
	}
	if n.selected != nil {
		selected := *n.selected
		state.SelectedCompany = &selected
		state.IsFavorited = n.sessions.IsFavorited(selected.Symbol)
	}
	return state, nil
}
