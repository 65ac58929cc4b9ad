package handler

import (
	"net/http"

	"github.com/yourorg/stocksnap/internal/auth"
	"github.com/yourorg/stocksnap/internal/model"
	"github.com/yourorg/stocksnap/internal/service"
	"github.com/yourorg/stocksnap/internal/view"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler handles login, logout and session lookups
type SessionHandler struct {
	sessionService *service.SessionService
	navigator      *view.Navigator
	issuer         *auth.TokenIssuer
	logger         *zap.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(
	sessionService *service.SessionService,
	navigator *view.Navigator,
	issuer *auth.TokenIssuer,
	logger *zap.Logger,
) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		navigator:      navigator,
		issuer:         issuer,
		logger:         logger,
	}
}

// Login replaces the session with the posted identity
// POST /api/v1/session/login
func (h *SessionHandler) Login(c *gin.Context) {
	var identity model.Identity
	if err := c.ShouldBindJSON(&identity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.navigator.Login(c.Request.Context(), identity)
	if err != nil {
		h.logger.Error("failed to log in", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	token, expiresAt, err := h.issuer.Issue(session.ID)
	if err != nil {
		h.logger.Error("failed to issue token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, model.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		Session:   session,
	})
}

// Logout clears the session
// POST /api/v1/session/logout
func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.navigator.Logout(c.Request.Context()); err != nil {
		h.logger.Error("failed to log out", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetSession returns the current session
// GET /api/v1/session
func (h *SessionHandler) GetSession(c *gin.Context) {
	session := h.sessionService.Current()
	c.JSON(http.StatusOK, gin.H{
		"authenticated": session != nil,
		"session":       session,
	})
}
