package tools

import (
	"context"

	"github.com/meridianpress/concierge/internal/db"
)

type bookUsageParams struct {
	Title string `json:"title"`
	Year  string `json:"year"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=50"`
}

type journalUsageParams struct {
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	Year      string `json:"year"`
	Limit     int    `json:"limit" validate:"omitempty,min=1,max=50"`
}

type denialParams struct {
	Title string `json:"title"`
	Year  string `json:"year"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=50"`
}

type recentPurchasesParams struct {
	SortBy string `json:"sortBy" validate:"omitempty,oneof=year title"`
	Limit  int    `json:"limit" validate:"omitempty,min=1,max=50"`
}

type subscriptionHistoryParams struct {
	Journal string `json:"journal"`
	Limit   int    `json:"limit" validate:"omitempty,min=1,max=50"`
}

// NewSalesRegistry builds the tool set for the sales assistant: usage and
// denial analytics over the monthly reporting tables, purchase records and
// subscription history.
func NewSalesRegistry(analytics *db.AnalyticsStore) *Registry {
	return NewRegistry(
		&Tool{
			Name:        "analyzeBookUsage",
			Description: "Analyze book usage data to identify trends and popular books. ALWAYS extract year and limit from user queries. Examples: 'top 5 books in 2024' -> {limit: 5, year: '2024'}, 'most popular books in 2025' -> {year: '2025'}, 'best 3 books' -> {limit: 3}",
			InputSchema: objectSchema(map[string]any{
				"title": stringProp("Filter by book title (partial match)"),
				"year":  stringProp("Filter by year. Extract from '2023', '2024', '2025', 'this year', 'last year', etc. Use '2025' for 'this year', '2024' for 'last year'"),
				"limit": limitProp("Number of results to return. Extract from 'top 5', 'best 3', 'first 10', etc."),
			}),
			failure: map[string]any{
				"error":       "I couldn't retrieve the book usage data at the moment. Please note that our data covers the period from January 2023 to August 2025. Please try rephrasing your query or specify a different time period.",
				"data_period": "January 2023 - August 2025",
			},
			handler: func(ctx context.Context, args map[string]any) (any, error) {
				var p bookUsageParams
				if err := decodeArgs("analyzeBookUsage", args, &p); err != nil {
					return nil, err
				}
				rows, err := analytics.BookUsage(ctx, p.Title, p.Year, normalizeLimit(p.Limit))
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"books":          rows,
					"analysis_year":  analysisLabel(p.Year, "2023-2025"),
					"total_analyzed": len(rows),
				}, nil
			},
		},
		&Tool{
			Name:        "analyzeJournalUsage",
			Description: "Analyze journal usage data to identify popular journals and usage trends. Use this for journal performance analysis and subscription insights.",
			InputSchema: objectSchema(map[string]any{
				"title":     stringProp("Filter by journal title (partial match)"),
				"publisher": stringProp("Filter by publisher"),
				"year":      stringProp("Filter by year (2023, 2024, 2025) or leave empty for all years"),
				"limit":     limitProp("Number of results to return"),
			}),
			failure: map[string]any{
				"error":       "I couldn't retrieve the journal usage data at the moment. Our journal analytics cover the period from January 2023 to June 2025. Please try a different search or time period.",
				"data_period": "January 2023 - June 2025",
			},
			handler: func(ctx context.Context, args map[string]any) (any, error) {
				var p journalUsageParams
				if err := decodeArgs("analyzeJournalUsage", args, &p); err != nil {
					return nil, err
				}
				rows, err := analytics.JournalUsage(ctx, p.Title, p.Publisher, p.Year, normalizeLimit(p.Limit))
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"journals":       rows,
					"analysis_year":  analysisLabel(p.Year, "2023-2025"),
					"total_analyzed": len(rows),
				}, nil
			},
		},
		&Tool{
			Name:        "trackBookDenials",
			Description: "Track book access denials to identify high-demand books that users can't access. ALWAYS extract year from queries. Examples: 'denials in 2024' -> {year: '2024'}, 'highest denial rates this year' -> {year: '2025'}",
			InputSchema: objectSchema(map[string]any{
				"title": stringProp("Filter by book title (partial match)"),
				"year":  stringProp("Filter by year. Extract '2023', '2024', '2025' from user query. Use '2025' for 'this year'"),
				"limit": limitProp("Number of denial records to return. Extract from 'top 5', 'first 3', etc."),
			}),
			failure: map[string]any{
				"error":       "I couldn't access the book denial data right now. Our denial tracking covers access attempts from 2023 to 2025. Please try again or contact support if the issue persists.",
				"data_period": "2023 - 2025",
			},
			handler: func(ctx context.Context, args map[string]any) (any, error) {
				var p denialParams
				if err := decodeArgs("trackBookDenials", args, &p); err != nil {
					return nil, err
				}
				rows, err := analytics.BookDenials(ctx, p.Title, p.Year, normalizeLimit(p.Limit))
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"deniedBooks":    rows,
					"analysis_year":  analysisLabel(p.Year, "2023-2025"),
					"total_analyzed": len(rows),
				}, nil
			},
		},
		&Tool{
			Name:        "trackJournalDenials",
			Description: "Track journal access denials to identify high-demand journals without a current license. ALWAYS extract year from queries. Examples: 'journal denials in 2024' -> {year: '2024'}",
			InputSchema: objectSchema(map[string]any{
				"title": stringProp("Filter by journal title (partial match)"),
				"year":  stringProp("Filter by year. Extract '2023', '2024', '2025' from user query. Use '2025' for 'this year'"),
				"limit": limitProp("Number of denial records to return"),
			}),
			failure: map[string]any{
				"error":       "I couldn't access the journal denial data right now. Our denial tracking covers access attempts from 2023 to 2025. Please try again or contact support if the issue persists.",
				"data_period": "2023 - 2025",
			},
			handler: func(ctx context.Context, args map[string]any) (any, error) {
				var p denialParams
				if err := decodeArgs("trackJournalDenials", args, &p); err != nil {
					return nil, err
				}
				rows, err := analytics.JournalDenials(ctx, p.Title, p.Year, normalizeLimit(p.Limit))
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"deniedJournals": rows,
					"analysis_year":  analysisLabel(p.Year, "2023-2025"),
					"total_analyzed": len(rows),
				}, nil
			},
		},
		&Tool{
			Name:        "getRecentPurchases",
			Description: "Get recently purchased books to understand successful sales and buying patterns. Use this to identify what customers are actually purchasing.",
			InputSchema: objectSchema(map[string]any{
				"sortBy": map[string]any{"type": "string", "enum": []string{"year", "title"}, "default": "year", "description": "Sort by 'year' (newest first) or 'title' (alphabetical)"},
				"limit":  limitProp("Number of recent purchases to return"),
			}),
			failure: map[string]any{
				"error":          "I couldn't access the recent purchase data at the moment. Our purchase records include books from various years. Please try again or contact support if needed.",
				"data_available": "Purchase records from multiple years",
			},
			handler: func(ctx context.Context, args map[string]any) (any, error) {
				var p recentPurchasesParams
				if err := decodeArgs("getRecentPurchases", args, &p); err != nil {
					return nil, err
				}
				sortBy := p.SortBy
				if sortBy == "" {
					sortBy = "year"
				}
				rows, err := analytics.RecentPurchases(ctx, sortBy, normalizeLimit(p.Limit))
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"purchasedBooks": rows,
					"sortedBy":       sortBy,
					"total_analyzed": len(rows),
				}, nil
			},
		},
		&Tool{
			Name:        "getSubscriptionHistory",
			Description: "Get multi-year journal subscription history (2012-2024) to spot growth or churn per journal. Use this to support renewal and upsell conversations.",
			InputSchema: objectSchema(map[string]any{
				"journal": stringProp("Journal title or abbreviation (partial match)"),
				"limit":   limitProp("Number of journals to return"),
			}),
			failure: map[string]any{
				"error":          "I couldn't access the subscription history at the moment. Our records cover journal subscriptions from 2012 to 2024. Please try again or contact support if needed.",
				"data_available": "Journal subscription counts (2012-2024)",
			},
			handler: func(ctx context.Context, args map[string]any) (any, error) {
				var p subscriptionHistoryParams
				if err := decodeArgs("getSubscriptionHistory", args, &p); err != nil {
					return nil, err
				}
				rows, err := analytics.SubscriptionHistory(ctx, p.Journal, normalizeLimit(p.Limit))
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"subscriptionHistory": rows,
					"total_analyzed":      len(rows),
				}, nil
			},
		},
	)
}

func analysisLabel(year, span string) string {
	if year != "" {
		return year
	}
	return span
}
