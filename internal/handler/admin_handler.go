package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yourorg/stocksnap/internal/model"
	"github.com/yourorg/stocksnap/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler inspects and resets the stored session
type AdminHandler struct {
	sessionService *service.SessionService
	logger         *zap.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(sessionService *service.SessionService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		sessionService: sessionService,
		logger:         logger,
	}
}

// GetStoredSession returns the raw stored session record
// GET /api/v1/admin/session
func (h *AdminHandler) GetStoredSession(c *gin.Context) {
	raw, ok, err := h.sessionService.StoredRecord(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to read stored session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read stored session"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No stored session"})
		return
	}

	var session model.Session
	valid := json.Unmarshal([]byte(raw), &session) == nil

	c.JSON(http.StatusOK, gin.H{
		"raw":    raw,
		"valid":  valid,
		"active": h.sessionService.IsAuthenticated(),
	})
}

// ForceLogout clears the session and its stored record
// DELETE /api/v1/admin/session
func (h *AdminHandler) ForceLogout(c *gin.Context) {
	if err := h.sessionService.Logout(c.Request.Context()); err != nil {
		h.logger.Error("failed to force logout", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}
	h.logger.Info("Session cleared by admin", zap.String("client_ip", c.ClientIP()))
	c.JSON(http.StatusOK, gin.H{"message": "Session cleared"})
}
