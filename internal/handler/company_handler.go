package handler

import (
	"net/http"
	"strconv"

	"github.com/yourorg/stocksnap/internal/repository"
	"github.com/yourorg/stocksnap/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CompanyHandler handles catalog, search and one-pager requests
type CompanyHandler struct {
	searchService   *service.SearchService
	onePagerService *service.OnePagerService
	shareService    *service.ShareService
	discoverLimit   int
	logger          *zap.Logger
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(
	searchService *service.SearchService,
	onePagerService *service.OnePagerService,
	shareService *service.ShareService,
	discoverLimit int,
	logger *zap.Logger,
) *CompanyHandler {
	return &CompanyHandler{
		searchService:   searchService,
		onePagerService: onePagerService,
		shareService:    shareService,
		discoverLimit:   discoverLimit,
		logger:          logger,
	}
}

// ListCompanies returns the catalog
// GET /api/v1/companies
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.searchService.Companies(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list companies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list companies"})
		return
	}
	c.JSON(http.StatusOK, companies)
}

// Trending returns the trending companies
// GET /api/v1/companies/trending
func (h *CompanyHandler) Trending(c *gin.Context) {
	companies, err := h.searchService.Trending(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to get trending companies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get trending companies"})
		return
	}
	c.JSON(http.StatusOK, companies)
}

// Search filters the catalog by symbol or name
// GET /api/v1/companies/search?q=
func (h *CompanyHandler) Search(c *gin.Context) {
	results, err := h.searchService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.logger.Error("failed to search companies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search companies"})
		return
	}
	c.JSON(http.StatusOK, results)
}

// Discover runs a free-text search over company descriptions
// GET /api/v1/companies/discover?q=&limit=
func (h *CompanyHandler) Discover(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.discoverLimit)))
	if err != nil || limit < 1 {
		limit = h.discoverLimit
	} else if limit > h.discoverLimit {
		limit = h.discoverLimit
	}

	results, err := h.searchService.Discover(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		h.logger.Error("failed to discover companies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search companies"})
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetOnePager returns the one-pager of a company
// GET /api/v1/companies/:symbol
func (h *CompanyHandler) GetOnePager(c *gin.Context) {
	symbol := repository.NormalizeSymbol(c.Param("symbol"))

	page, err := h.onePagerService.Get(c.Request.Context(), symbol)
	if err != nil {
		h.logger.Error("failed to build one-pager", zap.Error(err), zap.String("symbol", symbol))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get company"})
		return
	}
	if page == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// Share shares the one-pager of a company
// POST /api/v1/companies/:symbol/share
func (h *CompanyHandler) Share(c *gin.Context) {
	symbol := repository.NormalizeSymbol(c.Param("symbol"))

	result, err := h.shareService.Share(c.Request.Context(), symbol)
	if err != nil {
		h.logger.Error("failed to share company", zap.Error(err), zap.String("symbol", symbol))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to share company"})
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ShareStatus returns the current share status
// GET /api/v1/share/status
func (h *CompanyHandler) ShareStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": h.shareService.Status()})
}
