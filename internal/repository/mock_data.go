package repository

import "github.com/yourorg/stocksnap/internal/model"

// MockData returns the built-in reference tables
func MockData() CatalogData {
	return CatalogData{
		Companies:        mockCompanies(),
		Trending:         []string{"AAPL", "GOOGL", "MSFT", "NVDA", "TSLA", "AMZN"},
		News:             mockNews(),
		EarningsCalls:    mockEarningsCalls(),
		FinancialMetrics: mockFinancialMetrics(),
		ChartData:        mockChartData(),
		Competitors:      mockCompetitors(),
	}
}

func mockCompanies() []model.Company {
	return []model.Company{
		{
			Symbol:        "AAPL",
			Name:          "Apple Inc.",
			Price:         185.43,
			Change:        2.87,
			ChangePercent: 1.57,
			MarketCap:     "$2.89T",
			PERatio:       28.5,
			Revenue:       "$394.3B",
			ProfitMargin:  26.3,
			Sector:        "Technology",
			Industry:      "Consumer Electronics",
			Description:   "Apple Inc. designs, manufactures, and markets consumer electronics, computer software, and online services worldwide.",
		},
		{
			Symbol:        "GOOGL",
			Name:          "Alphabet Inc.",
			Price:         138.21,
			Change:        -1.23,
			ChangePercent: -0.88,
			MarketCap:     "$1.75T",
			PERatio:       24.2,
			Revenue:       "$307.4B",
			ProfitMargin:  23.1,
			Sector:        "Technology",
			Industry:      "Internet Content & Information",
			Description:   "Alphabet Inc. provides various products and platforms in the United States, Europe, the Middle East, Africa, the Asia-Pacific, Canada, and Latin America.",
		},
		{
			Symbol:        "MSFT",
			Name:          "Microsoft Corporation",
			Price:         378.85,
			Change:        5.42,
			ChangePercent: 1.45,
			MarketCap:     "$2.81T",
			PERatio:       32.1,
			Revenue:       "$227.6B",
			ProfitMargin:  36.7,
			Sector:        "Technology",
			Industry:      "Software",
			Description:   "Microsoft Corporation develops, licenses, and supports software, services, devices, and solutions worldwide.",
		},
		{
			Symbol:        "TSLA",
			Name:          "Tesla, Inc.",
			Price:         248.50,
			Change:        -8.75,
			ChangePercent: -3.40,
			MarketCap:     "$791.5B",
			PERatio:       45.3,
			Revenue:       "$96.8B",
			ProfitMargin:  19.3,
			Sector:        "Consumer Discretionary",
			Industry:      "Electric Vehicles",
			Description:   "Tesla, Inc. designs, develops, manufactures, leases, and sells electric vehicles, and energy generation and storage systems.",
		},
		{
			Symbol:        "AMZN",
			Name:          "Amazon.com, Inc.",
			Price:         155.89,
			Change:        3.21,
			ChangePercent: 2.10,
			MarketCap:     "$1.62T",
			PERatio:       42.8,
			Revenue:       "$574.8B",
			ProfitMargin:  8.4,
			Sector:        "Consumer Discretionary",
			Industry:      "E-commerce",
			Description:   "Amazon.com, Inc. engages in the retail sale of consumer products and subscriptions in North America and internationally.",
		},
		{
			Symbol:        "NVDA",
			Name:          "NVIDIA Corporation",
			Price:         722.48,
			Change:        15.23,
			ChangePercent: 2.15,
			MarketCap:     "$1.78T",
			PERatio:       65.4,
			Revenue:       "$79.8B",
			ProfitMargin:  32.8,
			Sector:        "Technology",
			Industry:      "Semiconductors",
			Description:   "NVIDIA Corporation operates as a computing company in the United States, Taiwan, China, and internationally.",
		},
	}
}

func mockNews() map[string][]model.NewsItem {
	return map[string][]model.NewsItem{
		"AAPL": {
			{
				ID:          "1",
				Title:       "Apple Reports Strong iPhone 15 Sales Despite Market Headwinds",
				Summary:     "Apple iPhone 15 series shows robust demand with improved camera features and titanium design driving premium sales.",
				Source:      "Reuters",
				PublishedAt: "2025-01-15T10:30:00Z",
				URL:         "#",
				Sentiment:   model.SentimentPositive,
				Category:    "product",
				Impact:      "high",
			},
			{
				ID:          "2",
				Title:       "Apple Faces Regulatory Pressure in EU Over App Store Policies",
				Summary:     "European Union regulators continue to scrutinize Apple App Store practices under the Digital Markets Act.",
				Source:      "Bloomberg",
				PublishedAt: "2025-01-14T14:20:00Z",
				URL:         "#",
				Sentiment:   model.SentimentNegative,
				Category:    "market",
				Impact:      "medium",
			},
			{
				ID:          "3",
				Title:       "Apple Vision Pro Production Ramp Up Signals Strong Enterprise Demand",
				Summary:     "Apple increases Vision Pro manufacturing capacity as enterprise adoption accelerates beyond initial consumer launch.",
				Source:      "Wall Street Journal",
				PublishedAt: "2025-01-13T09:15:00Z",
				URL:         "#",
				Sentiment:   model.SentimentPositive,
				Category:    "product",
				Impact:      "high",
			},
		},
		"GOOGL": {
			{
				ID:          "4",
				Title:       "Google Cloud Shows Accelerating Growth in Q4 Earnings",
				Summary:     "Google Cloud Platform revenue growth accelerates to 35% year-over-year, driven by AI and enterprise solutions.",
				Source:      "CNBC",
				PublishedAt: "2025-01-15T11:45:00Z",
				URL:         "#",
				Sentiment:   model.SentimentPositive,
				Category:    "earnings",
				Impact:      "high",
			},
			{
				ID:          "5",
				Title:       "DOJ Antitrust Case Against Google Search Monopoly Continues",
				Summary:     "Department of Justice pushes forward with landmark antitrust case challenging Google search dominance.",
				Source:      "New York Times",
				PublishedAt: "2025-01-14T16:30:00Z",
				URL:         "#",
				Sentiment:   model.SentimentNegative,
				Category:    "market",
				Impact:      "high",
			},
		},
	}
}

func mockEarningsCalls() map[string]model.EarningsCall {
	return map[string]model.EarningsCall{
		"AAPL": {
			Date:    "2025-01-10",
			Quarter: "Q1",
			Year:    2025,
			KeyQuotes: []string{
				"We're seeing unprecedented demand for our AI-powered features across all product lines",
				"Services revenue continues to be a key growth driver with 18% year-over-year growth",
				"Our supply chain optimization has improved margins significantly",
			},
			AnalystHighlights: []string{
				"Strong iPhone upgrade cycle expected to continue through 2025",
				"Vision Pro enterprise adoption exceeding expectations",
				"AI integration driving higher average selling prices",
			},
			NextCallDate: "2025-04-10",
		},
	}
}

func mockFinancialMetrics() map[string]model.FinancialMetrics {
	return map[string]model.FinancialMetrics{
		"AAPL": {
			Revenue: model.RevenueMetrics{
				Current: 394.3,
				Growth:  8.2,
				Quarters: []model.QuarterRevenue{
					{Quarter: "Q1 2024", Revenue: 119.6},
					{Quarter: "Q2 2024", Revenue: 90.8},
					{Quarter: "Q3 2024", Revenue: 81.8},
					{Quarter: "Q4 2024", Revenue: 94.9},
				},
			},
			Profitability: model.ProfitabilityMetrics{
				GrossMargin:     46.2,
				OperatingMargin: 30.1,
				NetMargin:       26.3,
				Trend:           "improving",
			},
			FinancialHealth: model.FinancialHealth{
				CashFlow:     99.5,
				Debt:         109.3,
				DebtToEquity: 1.8,
				CurrentRatio: 1.0,
				Rating:       "strong",
			},
			Risks: []model.Risk{
				{Category: "Market Risk", Description: "iPhone sales dependency on consumer spending patterns", Severity: "medium"},
				{Category: "Regulatory Risk", Description: "App Store policies under global regulatory scrutiny", Severity: "medium"},
				{Category: "Supply Chain Risk", Description: "China manufacturing concentration risk", Severity: "low"},
			},
			Outlook: model.Outlook{
				Guidance:           "Apple expects continued growth in Services and stable iPhone demand",
				MarketExpectations: "Analysts expect 5-7% revenue growth in FY2025",
				KeyDrivers:         []string{"AI features adoption", "Services expansion", "Vision Pro scaling"},
			},
		},
	}
}

func mockChartData() map[string][]model.ChartPoint {
	return map[string][]model.ChartPoint{
		"AAPL": {
			{Date: "2024-01-01", Price: 181.91, Volume: 58991100},
			{Date: "2024-02-01", Price: 188.85, Volume: 64795300},
			{Date: "2024-03-01", Price: 170.12, Volume: 59773200},
			{Date: "2024-04-01", Price: 169.12, Volume: 45015500},
			{Date: "2024-05-01", Price: 192.35, Volume: 79542600},
			{Date: "2024-06-01", Price: 196.89, Volume: 46262900},
			{Date: "2024-07-01", Price: 218.24, Volume: 37102200},
			{Date: "2024-08-01", Price: 225.77, Volume: 52906400},
			{Date: "2024-09-01", Price: 220.70, Volume: 35748300},
			{Date: "2024-10-01", Price: 225.37, Volume: 41407200},
			{Date: "2024-11-01", Price: 224.94, Volume: 36566200},
			{Date: "2024-12-01", Price: 239.30, Volume: 43014200},
			{Date: "2025-01-01", Price: 185.43, Volume: 52341100},
		},
	}
}

func mockCompetitors() map[string][]model.Competitor {
	return map[string][]model.Competitor{
		"AAPL": {
			{Name: "Samsung", MarketShare: 20.8, Trend: "down", PERatio: 12.4, Price: 68.45},
			{Name: "Xiaomi", MarketShare: 12.9, Trend: "up", PERatio: 18.7, Price: 14.23},
			{Name: "Google", MarketShare: 8.2, Trend: "stable", PERatio: 24.2, Price: 138.21},
			{Name: "OnePlus", MarketShare: 3.1, Trend: "up", PERatio: 15.3, Price: 42.18},
		},
	}
}
