package service

import (
	"context"

	"github.com/yourorg/stocksnap/internal/model"
	"github.com/yourorg/stocksnap/internal/repository"

	"go.uber.org/zap"
)

var onePagerSections = []model.Section{
	{ID: 1, Title: "Financial Overview"},
	{ID: 2, Title: "News Analysis"},
	{ID: 3, Title: "Real-Time News"},
	{ID: 4, Title: "Earnings Call"},
	{ID: 5, Title: "Competitive Analysis"},
	{ID: 6, Title: "Revenue Analysis"},
	{ID: 7, Title: "Profitability"},
	{ID: 8, Title: "Financial Health"},
	{ID: 9, Title: "Risk Assessment"},
	{ID: 10, Title: "Forward Outlook"},
}

const topRiskCount = 3

// OnePagerService composes the detail view of a company
type OnePagerService struct {
	catalog repository.CatalogProvider
	logger  *zap.Logger
}

// NewOnePagerService creates a new one-pager service
func NewOnePagerService(catalog repository.CatalogProvider, logger *zap.Logger) *OnePagerService {
	return &OnePagerService{
		catalog: catalog,
		logger:  logger,
	}
}

// Get builds the one-pager for symbol. It returns nil, nil when the symbol
// is not in the catalog; missing auxiliary data falls back to defaults.
func (s *OnePagerService) Get(ctx context.Context, symbol string) (*model.OnePager, error) {
	company, err := repository.FindCompany(ctx, s.catalog, symbol)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}

	news, err := s.catalog.News(ctx, symbol)
	if err != nil {
		return nil, err
	}
	earnings, err := s.catalog.EarningsCall(ctx, symbol)
	if err != nil {
		return nil, err
	}
	metrics, err := s.catalog.FinancialMetrics(ctx, symbol)
	if err != nil {
		return nil, err
	}
	points, err := s.catalog.ChartData(ctx, symbol)
	if err != nil {
		return nil, err
	}
	competitors, err := s.catalog.Competitors(ctx, symbol)
	if err != nil {
		return nil, err
	}

	topRisks := metrics.Risks
	if len(topRisks) > topRiskCount {
		topRisks = topRisks[:topRiskCount]
	}

	return &model.OnePager{
		Company:          *company,
		Sections:         append([]model.Section{}, onePagerSections...),
		News:             news,
		NewsBySentiment:  groupBySentiment(news),
		EarningsCall:     earnings,
		FinancialMetrics: metrics,
		TopRisks:         append([]model.Risk{}, topRisks...),
		Chart:            summarizeChart(points, company.Change),
		Competitors:      competitors,
	}, nil
}

func groupBySentiment(news []model.NewsItem) model.NewsBySentiment {
	grouped := model.NewsBySentiment{
		Positive: []model.NewsItem{},
		Negative: []model.NewsItem{},
		Neutral:  []model.NewsItem{},
	}
	for _, n := range news {
		switch n.Sentiment {
		case model.SentimentPositive:
			grouped.Positive = append(grouped.Positive, n)
		case model.SentimentNegative:
			grouped.Negative = append(grouped.Negative, n)
		case model.SentimentNeutral:
			grouped.Neutral = append(grouped.Neutral, n)
		}
	}
	return grouped
}

// summarizeChart computes the price bounds of the history. Direction
// follows the day's change, not the history.
func summarizeChart(points []model.ChartPoint, change float64) model.Chart {
	chart := model.Chart{
		Points:     points,
		IsPositive: change >= 0,
	}
	if len(points) == 0 {
		return chart
	}

	chart.MinPrice, chart.MaxPrice = points[0].Price, points[0].Price
	for _, p := range points[1:] {
		if p.Price < chart.MinPrice {
			chart.MinPrice = p.Price
		}
		if p.Price > chart.MaxPrice {
			chart.MaxPrice = p.Price
		}
	}
	chart.PriceRange = chart.MaxPrice - chart.MinPrice
	return chart
}
