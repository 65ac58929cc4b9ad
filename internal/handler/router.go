package handler

import (
	"net/http"

	"github.com/yourorg/stocksnap/internal/auth"
	"github.com/yourorg/stocksnap/internal/middleware"
	"github.com/yourorg/stocksnap/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers groups every route handler of the API
type Handlers struct {
	Company  *CompanyHandler
	Session  *SessionHandler
	Favorite *FavoriteHandler
	View     *ViewHandler
	Admin    *AdminHandler
}

// RouterConfig carries what the route guards need
type RouterConfig struct {
	Sessions     *service.SessionService
	Issuer       *auth.TokenIssuer
	AdminKeyHash string
}

// SetupRouter registers every route on a new gin engine
func SetupRouter(h Handlers, cfg RouterConfig, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger(logger))
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := router.Group("/api/v1")
	{
		companies := api.Group("/companies")
		{
			companies.GET("", h.Company.ListCompanies)
			companies.GET("/trending", h.Company.Trending)
			companies.GET("/search", h.Company.Search)
			companies.GET("/discover", h.Company.Discover)
			companies.GET("/:symbol", h.Company.GetOnePager)
			companies.POST("/:symbol/share", h.Company.Share)
		}

		api.GET("/share/status", h.Company.ShareStatus)

		session := api.Group("/session")
		{
			session.GET("", h.Session.GetSession)
			session.POST("/login", h.Session.Login)
			session.POST("/logout", h.Session.Logout)
		}

		favorites := api.Group("/favorites")
		{
			favorites.GET("", h.Favorite.ListFavorites)
			favorites.GET("/:symbol", h.Favorite.IsFavorited)

			protected := favorites.Group("")
			protected.Use(middleware.SessionAuth(cfg.Issuer, cfg.Sessions, logger))
			{
				protected.POST("/:symbol/toggle", h.Favorite.ToggleFavorite)
				protected.DELETE("/:symbol", h.Favorite.RemoveFavorite)
			}
		}

		v := api.Group("/view")
		{
			v.GET("", h.View.GetState)
			v.POST("/search", h.View.Search)
			v.POST("/select/:symbol", h.View.SelectCompany)
			v.POST("/home", h.View.BackToHome)
			v.POST("/favorites", h.View.ShowFavorites)
			v.POST("/favorite/:symbol", h.View.FavoriteClick)
			v.POST("/auth-prompt/close", h.View.CloseAuthPrompt)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AdminKey(cfg.AdminKeyHash, logger))
		{
			admin.GET("/session", h.Admin.GetStoredSession)
			admin.DELETE("/session", h.Admin.ForceLogout)
		}
	}

	return router
}
