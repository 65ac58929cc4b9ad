package repository

import (
	"context"
	"strings"

	"github.com/yourorg/stocksnap/internal/model"

	"go.uber.org/zap"
)

// CatalogProvider supplies the company catalog and its per-symbol tables.
// Missing per-symbol entries resolve to defined defaults, never to errors.
type CatalogProvider interface {
	Companies(ctx context.Context) ([]model.Company, error)
	Trending(ctx context.Context) ([]string, error)
	News(ctx context.Context, symbol string) ([]model.NewsItem, error)
	EarningsCall(ctx context.Context, symbol string) (model.EarningsCall, error)
	FinancialMetrics(ctx context.Context, symbol string) (model.FinancialMetrics, error)
	ChartData(ctx context.Context, symbol string) ([]model.ChartPoint, error)
	Competitors(ctx context.Context, symbol string) ([]model.Competitor, error)
}

// CatalogData holds the reference tables behind a StaticCatalog
type CatalogData struct {
	Companies        []model.Company
	Trending         []string
	News             map[string][]model.NewsItem
	EarningsCalls    map[string]model.EarningsCall
	FinancialMetrics map[string]model.FinancialMetrics
	ChartData        map[string][]model.ChartPoint
	Competitors      map[string][]model.Competitor
}

// StaticCatalog is an in-memory CatalogProvider
type StaticCatalog struct {
	data   CatalogData
	logger *zap.Logger
}

// NewStaticCatalog creates a catalog over the given tables
func NewStaticCatalog(data CatalogData, logger *zap.Logger) *StaticCatalog {
	return &StaticCatalog{
		data:   data,
		logger: logger,
	}
}

// NewMockCatalog creates a catalog over the built-in mock data
func NewMockCatalog(logger *zap.Logger) *StaticCatalog {
	return NewStaticCatalog(MockData(), logger)
}

// Companies returns the full catalog in catalog order
func (r *StaticCatalog) Companies(ctx context.Context) ([]model.Company, error) {
	return append([]model.Company{}, r.data.Companies...), nil
}

// Trending returns the trending symbols
func (r *StaticCatalog) Trending(ctx context.Context) ([]string, error) {
	return append([]string{}, r.data.Trending...), nil
}

// News returns the news for a symbol, or an empty list
func (r *StaticCatalog) News(ctx context.Context, symbol string) ([]model.NewsItem, error) {
	news, ok := r.data.News[symbol]
	if !ok {
		r.logger.Debug("No news for symbol", zap.String("symbol", symbol))
	}
	return append([]model.NewsItem{}, news...), nil
}

// EarningsCall returns the latest earnings call for a symbol, or an empty one
func (r *StaticCatalog) EarningsCall(ctx context.Context, symbol string) (model.EarningsCall, error) {
	call, ok := r.data.EarningsCalls[symbol]
	if !ok {
		return model.DefaultEarningsCall(), nil
	}
	call.KeyQuotes = append([]string{}, call.KeyQuotes...)
	call.AnalystHighlights = append([]string{}, call.AnalystHighlights...)
	return call, nil
}

// FinancialMetrics returns the metrics for a symbol, or the zeroed defaults
func (r *StaticCatalog) FinancialMetrics(ctx context.Context, symbol string) (model.FinancialMetrics, error) {
	m, ok := r.data.FinancialMetrics[symbol]
	if !ok {
		return model.DefaultFinancialMetrics(), nil
	}
	m.Revenue.Quarters = append([]model.QuarterRevenue{}, m.Revenue.Quarters...)
	m.Risks = append([]model.Risk{}, m.Risks...)
	m.Outlook.KeyDrivers = append([]string{}, m.Outlook.KeyDrivers...)
	return m, nil
}

// ChartData returns the price history for a symbol, or an empty list
func (r *StaticCatalog) ChartData(ctx context.Context, symbol string) ([]model.ChartPoint, error) {
	return append([]model.ChartPoint{}, r.data.ChartData[symbol]...), nil
}

// Competitors returns the competitor snapshots for a symbol, or an empty list
func (r *StaticCatalog) Competitors(ctx context.Context, symbol string) ([]model.Competitor, error) {
	return append([]model.Competitor{}, r.data.Competitors[symbol]...), nil
}

// FindCompany looks up a company by exact symbol. It returns nil, nil when
// the symbol is not in the catalog.
func FindCompany(ctx context.Context, catalog CatalogProvider, symbol string) (*model.Company, error) {
	companies, err := catalog.Companies(ctx)
	if err != nil {
		return nil, err
	}
	for i := range companies {
		if companies[i].Symbol == symbol {
			return &companies[i], nil
		}
	}
	return nil, nil
}

// NormalizeSymbol trims and upper-cases a symbol taken from user input
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
