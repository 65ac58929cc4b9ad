package model

// Screen selects which view is displayed
type Screen string

const (
	ScreenHome      Screen = "home"
	ScreenDetail    Screen = "detail"
	ScreenFavorites Screen = "favorites"
)

// ViewState is a snapshot of the transient UI state
type ViewState struct {
	Screen            Screen    `json:"screen"`
	SelectedCompany   *Company  `json:"selectedCompany,omitempty"`
	SearchQuery       string    `json:"searchQuery"`
	SearchResults     []Company `json:"searchResults"`
	Searching         bool      `json:"searching"`
	AuthPromptVisible bool      `json:"authPromptVisible"`
	Authenticated     bool      `json:"authenticated"`
	Trending          []Company `json:"trending"`
	Favorites         []Company `json:"favorites"`
	FavoritesCount    int       `json:"favoritesCount"`
	IsFavorited       bool      `json:"isFavorited"`
}
