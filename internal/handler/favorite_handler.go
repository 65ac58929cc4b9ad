package handler

import (
	"net/http"

	"github.com/yourorg/stocksnap/internal/repository"
	"github.com/yourorg/stocksnap/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FavoriteHandler handles favorites requests
type FavoriteHandler struct {
	sessionService *service.SessionService
	logger         *zap.Logger
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(sessionService *service.SessionService, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		sessionService: sessionService,
		logger:         logger,
	}
}

// ListFavorites returns the favorites of the current session
// GET /api/v1/favorites
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessionService.ListFavorites())
}

// IsFavorited reports whether a company is a favorite
// GET /api/v1/favorites/:symbol
func (h *FavoriteHandler) IsFavorited(c *gin.Context) {
	symbol := repository.NormalizeSymbol(c.Param("symbol"))
	c.JSON(http.StatusOK, gin.H{
		"symbol":    symbol,
		"favorited": h.sessionService.IsFavorited(symbol),
	})
}

// ToggleFavorite adds or removes a company from the favorites
// POST /api/v1/favorites/:symbol/toggle
func (h *FavoriteHandler) ToggleFavorite(c *gin.Context) {
	symbol := repository.NormalizeSymbol(c.Param("symbol"))

	if err := h.sessionService.ToggleFavorite(c.Request.Context(), symbol); err != nil {
		h.logger.Error("failed to toggle favorite", zap.Error(err), zap.String("symbol", symbol))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"symbol":    symbol,
		"favorited": h.sessionService.IsFavorited(symbol),
		"favorites": h.sessionService.ListFavorites(),
	})
}

// RemoveFavorite removes a company from the favorites
// DELETE /api/v1/favorites/:symbol
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	symbol := repository.NormalizeSymbol(c.Param("symbol"))

	if err := h.sessionService.RemoveFavorite(c.Request.Context(), symbol); err != nil {
		h.logger.Error("failed to remove favorite", zap.Error(err), zap.String("symbol", symbol))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorites"})
		return
	}

	c.JSON(http.StatusOK, h.sessionService.ListFavorites())
}
