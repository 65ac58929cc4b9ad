package model

// Session represents the signed-in user and their favorites.
// The JSON shape is the stored record.
type Session struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Favorites     []Company `json:"favorites"`
	Subscriptions []string  `json:"subscriptions"`
}

// Identity represents the data supplied at login
type Identity struct {
	ID            string    `json:"id" binding:"required" validate:"required"`
	Email         string    `json:"email" binding:"required,email" validate:"required,email"`
	Name          string    `json:"name" binding:"required" validate:"required"`
	Favorites     []Company `json:"favorites,omitempty"`
	Subscriptions []string  `json:"subscriptions,omitempty"`
}

// HasFavorite reports whether symbol is among the session favorites
func (s *Session) HasFavorite(symbol string) bool {
	for _, f := range s.Favorites {
		if f.Symbol == symbol {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.Favorites = append([]Company(nil), s.Favorites...)
	c.Subscriptions = append([]string(nil), s.Subscriptions...)
	if c.Favorites == nil {
		c.Favorites = []Company{}
	}
	if c.Subscriptions == nil {
		c.Subscriptions = []string{}
	}
	return &c
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	Token     string   `json:"token"`
	ExpiresAt int64    `json:"expires_at"`
	Session   *Session `json:"session"`
}
