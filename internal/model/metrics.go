package model

// FinancialMetrics represents the financial analysis of a company
type FinancialMetrics struct {
	Revenue         RevenueMetrics       `json:"revenue"`
	Profitability   ProfitabilityMetrics `json:"profitability"`
	FinancialHealth FinancialHealth      `json:"financialHealth"`
	Risks           []Risk               `json:"risks"`
	Outlook         Outlook              `json:"outlook"`
}

// RevenueMetrics holds current revenue, growth and the quarterly breakdown
type RevenueMetrics struct {
	Current  float64          `json:"current"`
	Growth   float64          `json:"growth"`
	Quarters []QuarterRevenue `json:"quarters"`
}

// QuarterRevenue is the revenue for a single quarter
type QuarterRevenue struct {
	Quarter string  `json:"quarter"`
	Revenue float64 `json:"revenue"`
}

// ProfitabilityMetrics holds margins and their direction
type ProfitabilityMetrics struct {
	GrossMargin     float64 `json:"grossMargin"`
	OperatingMargin float64 `json:"operatingMargin"`
	NetMargin       float64 `json:"netMargin"`
	Trend           string  `json:"trend"` // improving, declining, stable
}

// FinancialHealth holds balance sheet indicators
type FinancialHealth struct {
	CashFlow     float64 `json:"cashFlow"`
	Debt         float64 `json:"debt"`
	DebtToEquity float64 `json:"debtToEquity"`
	CurrentRatio float64 `json:"currentRatio"`
	Rating       string  `json:"rating"` // strong, moderate, weak
}

// Risk represents a single risk factor
type Risk struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Severity    string `json:"severity"` // high, medium, low
}

// Outlook represents forward guidance
type Outlook struct {
	Guidance           string   `json:"guidance"`
	MarketExpectations string   `json:"marketExpectations"`
	KeyDrivers         []string `json:"keyDrivers"`
}

// DefaultFinancialMetrics returns the metrics used when a company has no data
func DefaultFinancialMetrics() FinancialMetrics {
	return FinancialMetrics{
		Revenue:         RevenueMetrics{Quarters: []QuarterRevenue{}},
		Profitability:   ProfitabilityMetrics{Trend: "stable"},
		FinancialHealth: FinancialHealth{Rating: "moderate"},
		Risks:           []Risk{},
		Outlook:         Outlook{KeyDrivers: []string{}},
	}
}

// DefaultEarningsCall returns the earnings call used when a company has no data
func DefaultEarningsCall() EarningsCall {
	return EarningsCall{
		KeyQuotes:         []string{},
		AnalystHighlights: []string{},
	}
}
