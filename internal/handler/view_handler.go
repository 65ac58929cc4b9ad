package handler

import (
	"errors"
	"net/http"

	"github.com/yourorg/stocksnap/internal/repository"
	"github.com/yourorg/stocksnap/internal/view"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrCompanyNotFound is returned for a symbol outside the catalog
var ErrCompanyNotFound = errors.New("company not found")

// ViewHandler exposes the navigator actions
type ViewHandler struct {
	navigator *view.Navigator
	logger    *zap.Logger
}

// NewViewHandler creates a new view handler
func NewViewHandler(navigator *view.Navigator, logger *zap.Logger) *ViewHandler {
	return &ViewHandler{
		navigator: navigator,
		logger:    logger,
	}
}

// GetState returns the navigator snapshot
// GET /api/v1/view
func (h *ViewHandler) GetState(c *gin.Context) {
	h.respondState(c, http.StatusOK)
}

// Search runs a debounced catalog search
// POST /api/v1/view/search?q=
func (h *ViewHandler) Search(c *gin.Context) {
	if err := h.navigator.Search(c.Request.Context(), c.Query("q")); err != nil {
		h.logger.Error("view search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search companies"})
		return
	}
	h.respondState(c, http.StatusOK)
}

// SelectCompany opens the detail screen
// POST /api/v1/view/select/:symbol
func (h *ViewHandler) SelectCompany(c *gin.Context) {
	symbol := repository.NormalizeSymbol(c.Param("symbol"))

	ok, err := h.navigator.SelectCompany(c.Request.Context(), symbol)
	if err != nil {
		h.logger.Error("failed to select company", zap.Error(err), zap.String("symbol", symbol))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to select company"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrCompanyNotFound.Error()})
		return
	}
	h.respondState(c, http.StatusOK)
}

// BackToHome returns to the home screen
// POST /api/v1/view/home
func (h *ViewHandler) BackToHome(c *gin.Context) {
	h.navigator.BackToHome()
	h.respondState(c, http.StatusOK)
}

// ShowFavorites opens the favorites screen or raises the login prompt
// POST /api/v1/view/favorites
func (h *ViewHandler) ShowFavorites(c *gin.Context) {
	h.navigator.ShowFavorites()
	h.respondState(c, http.StatusOK)
}

// FavoriteClick toggles a favorite or raises the login prompt
// POST /api/v1/view/favorite/:symbol
func (h *ViewHandler) FavoriteClick(c *gin.Context) {
	symbol := repository.NormalizeSymbol(c.Param("symbol"))

	if err := h.navigator.FavoriteClick(c.Request.Context(), symbol); err != nil {
		h.logger.Error("failed to toggle favorite", zap.Error(err), zap.String("symbol", symbol))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorites"})
		return
	}
	h.respondState(c, http.StatusOK)
}

// CloseAuthPrompt hides the login prompt
// POST /api/v1/view/auth-prompt/close
func (h *ViewHandler) CloseAuthPrompt(c *gin.Context) {
	h.navigator.CloseAuthPrompt()
	h.respondState(c, http.StatusOK)
}

func (h *ViewHandler) respondState(c *gin.Context, status int) {
	state, err := h.navigator.State(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to build view state", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get view"})
		return
	}
	c.JSON(status, state)
}
