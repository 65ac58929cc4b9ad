package service

import (
	"context"
	"strings"

	"github.com/yourorg/stocksnap/internal/model"
	"github.com/yourorg/stocksnap/internal/repository"
	"github.com/yourorg/stocksnap/internal/search"

	"go.uber.org/zap"
)

// SearchService handles catalog lookups and search
type SearchService struct {
	catalog  repository.CatalogProvider
	discover *search.DiscoverIndex
	logger   *zap.Logger
}

// NewSearchService creates a new search service. discover may be nil, in
// which case Discover returns no results.
func NewSearchService(catalog repository.CatalogProvider, discover *search.DiscoverIndex, logger *zap.Logger) *SearchService {
	return &SearchService{
		catalog:  catalog,
		discover: discover,
		logger:   logger,
	}
}

// Search returns the companies whose symbol or name contains query,
// case-insensitively, in catalog order. A blank query matches nothing.
func (s *SearchService) Search(ctx context.Context, query string) ([]model.Company, error) {
	results := []model.Company{}
	if strings.TrimSpace(query) == "" {
		return results, nil
	}

	companies, err := s.catalog.Companies(ctx)
	if err != nil {
		s.logger.Error("Failed to load catalog", zap.Error(err))
		return nil, err
	}

	q := strings.ToLower(query)
	for _, c := range companies {
		if strings.Contains(strings.ToLower(c.Symbol), q) ||
			strings.Contains(strings.ToLower(c.Name), q) {
			results = append(results, c)
		}
	}
	return results, nil
}

// Companies returns the whole catalog
func (s *SearchService) Companies(ctx context.Context) ([]model.Company, error) {
	return s.catalog.Companies(ctx)
}

// Company looks up a company by exact symbol, returning nil if absent
func (s *SearchService) Company(ctx context.Context, symbol string) (*model.Company, error) {
	return repository.FindCompany(ctx, s.catalog, symbol)
}

// Trending returns the trending companies in catalog order
func (s *SearchService) Trending(ctx context.Context) ([]model.Company, error) {
	companies, err := s.catalog.Companies(ctx)
	if err != nil {
		return nil, err
	}
	symbols, err := s.catalog.Trending(ctx)
	if err != nil {
		return nil, err
	}

	trending := make(map[string]bool, len(symbols))
	for _, sym := range symbols {
		trending[sym] = true
	}

	results := []model.Company{}
	for _, c := range companies {
		if trending[c.Symbol] {
			results = append(results, c)
		}
	}
	return results, nil
}

// Discover runs a ranked free-text search over company descriptions
func (s *SearchService) Discover(ctx context.Context, query string, limit int) ([]model.Company, error) {
	results := []model.Company{}
	if s.discover == nil {
		return results, nil
	}

	symbols, err := s.discover.Discover(query, limit)
	if err != nil {
		return nil, err
	}

	for _, sym := range symbols {
		c, err := s.Company(ctx, sym)
		if err != nil {
			return nil, err
		}
		if c != nil {
			results = append(results, *c)
		}
	}
	return results, nil
}
