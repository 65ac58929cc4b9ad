package model

// OnePager represents the full detail view of a company
type OnePager struct {
	Company          Company          `json:"company"`
	Sections         []Section        `json:"sections"`
	News             []NewsItem       `json:"news"`
	NewsBySentiment  NewsBySentiment  `json:"newsBySentiment"`
	EarningsCall     EarningsCall     `json:"earningsCall"`
	FinancialMetrics FinancialMetrics `json:"financialMetrics"`
	TopRisks         []Risk           `json:"topRisks"`
	Chart            Chart            `json:"chart"`
	Competitors      []Competitor     `json:"competitors"`
}

// Section is a navigable part of the one-pager
type Section struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// NewsBySentiment groups news items by sentiment
type NewsBySentiment struct {
	Positive []NewsItem `json:"positive"`
	Negative []NewsItem `json:"negative"`
	Neutral  []NewsItem `json:"neutral"`
}

// Chart holds the price history with its summary
type Chart struct {
	Points     []ChartPoint `json:"points"`
	MinPrice   float64      `json:"minPrice"`
	MaxPrice   float64      `json:"maxPrice"`
	PriceRange float64      `json:"priceRange"`
	IsPositive bool         `json:"isPositive"`
}
