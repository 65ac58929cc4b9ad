package model

// Company represents a listed company in the catalog
type Company struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	MarketCap     string  `json:"marketCap"`
	PERatio       float64 `json:"peRatio"`
	Revenue       string  `json:"revenue"`
	ProfitMargin  float64 `json:"profitMargin"`
	Sector        string  `json:"sector"`
	Industry      string  `json:"industry"`
	Description   string  `json:"description"`
	Logo          string  `json:"logo,omitempty"`
}

// Sentiment of a news item
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// NewsItem represents a single news headline about a company
type NewsItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Source      string    `json:"source"`
	PublishedAt string    `json:"publishedAt"`
	URL         string    `json:"url"`
	Sentiment   Sentiment `json:"sentiment"`
	Category    string    `json:"category"` // product, management, earnings, industry, market
	Impact      string    `json:"impact"`   // high, medium, low
}

// EarningsCall represents the summary of the latest earnings call
type EarningsCall struct {
	Date              string   `json:"date"`
	Quarter           string   `json:"quarter"`
	Year              int      `json:"year"`
	KeyQuotes         []string `json:"keyQuotes"`
	AnalystHighlights []string `json:"analystHighlights"`
	NextCallDate      string   `json:"nextCallDate,omitempty"`
}

// ChartPoint represents one price/volume sample of the price history
type ChartPoint struct {
	Date   string  `json:"date"`
	Price  float64 `json:"price"`
	Volume int64   `json:"volume"`
}

// Competitor represents a competitor snapshot
type Competitor struct {
	Name        string  `json:"name"`
	MarketShare float64 `json:"marketShare"`
	Trend       string  `json:"trend"` // up, down, stable
	PERatio     float64 `json:"peRatio"`
	Price       float64 `json:"price"`
}
