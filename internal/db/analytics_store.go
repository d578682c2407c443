package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/meridianpress/concierge/internal/query"
)

// AnalyticsStore serves the sales-assistant queries over the wide pivot
// tables. Each method compiles one aggregate query from a whitelisted column
// calendar; every caller-supplied value is bound, never interpolated.
type AnalyticsStore struct {
	db *gorm.DB
}

// NewAnalyticsStore creates an analytics store.
func NewAnalyticsStore(store *Store) *AnalyticsStore {
	return &AnalyticsStore{db: store.DB}
}

// UsageRow is one ranked book in a usage report.
type UsageRow struct {
	Title          string `gorm:"column:title" json:"title"`
	Platform       string `gorm:"column:platform" json:"platform"`
	Publisher      string `gorm:"column:publisher" json:"publisher"`
	ISBN           string `gorm:"column:isbn" json:"isbn"`
	YOP            int    `gorm:"column:yop" json:"yop"`
	TotalRequests  int64  `gorm:"column:total_requests" json:"totalRequests"`
	UniqueRequests int64  `gorm:"column:unique_requests" json:"uniqueRequests"`
	AnalysisYear   string `gorm:"column:analysis_year" json:"analysisYear"`
}

// JournalUsageRow is one ranked journal in a usage report.
type JournalUsageRow struct {
	Title          string `gorm:"column:title" json:"title"`
	Publisher      string `gorm:"column:publisher" json:"publisher"`
	OnlineISSN     string `gorm:"column:online_issn" json:"onlineIssn"`
	PrintISSN      string `gorm:"column:print_issn" json:"printIssn"`
	TotalRequests  int64  `gorm:"column:total_requests" json:"totalRequests"`
	UniqueRequests int64  `gorm:"column:unique_requests" json:"uniqueRequests"`
	AnalysisYear   string `gorm:"column:analysis_year" json:"analysisYear"`
}

// DenialRow is one ranked book in an access-denial report.
type DenialRow struct {
	Title        string `gorm:"column:title" json:"title"`
	Publisher    string `gorm:"column:publisher" json:"publisher"`
	ISBN         string `gorm:"column:isbn" json:"isbn"`
	YOP          int    `gorm:"column:yop" json:"yop"`
	TotalDenials int64  `gorm:"column:total_denials" json:"totalDenials"`
	AnalysisYear string `gorm:"column:analysis_year" json:"analysisYear"`
}

// JournalDenialRow is one ranked journal in an access-denial report.
type JournalDenialRow struct {
	Title        string `gorm:"column:title" json:"title"`
	Publisher    string `gorm:"column:publisher" json:"publisher"`
	OnlineISSN   string `gorm:"column:online_issn" json:"onlineIssn"`
	PrintISSN    string `gorm:"column:print_issn" json:"printIssn"`
	TotalDenials int64  `gorm:"column:total_denials" json:"totalDenials"`
	AnalysisYear string `gorm:"column:analysis_year" json:"analysisYear"`
}

func (s *AnalyticsStore) aggregate(ctx context.Context, table string, idCols []string, metrics []query.Metric, tieBreak string, in query.AggregateInput, dest any) error {
	q, err := query.BuildAggregate(table, idCols, metrics, tieBreak, in)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Raw(q.SQL, q.Args...).Scan(dest).Error; err != nil {
		return fmt.Errorf("aggregate %s: %w", table, err)
	}
	return nil
}

// BookUsage ranks books by total item requests for the given year, or across
// the full covered period when year is empty.
func (s *AnalyticsStore) BookUsage(ctx context.Context, title, year string, limit int) ([]UsageRow, error) {
	in := query.AggregateInput{
		Year:    year,
		Filters: []query.TextFilter{{Columns: []string{"title"}, Value: title}},
		Limit:   limit,
	}
	metrics := []query.Metric{
		{Alias: "total_requests", Pivot: query.BookUsageTotal},
		{Alias: "unique_requests", Pivot: query.BookUsageUnique},
	}
	var rows []UsageRow
	err := s.aggregate(ctx, "book_usage",
		[]string{"title", "platform", "publisher", "isbn", "yop"},
		metrics, "title", in, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// JournalUsage ranks journals by total item requests.
func (s *AnalyticsStore) JournalUsage(ctx context.Context, title, publisher, year string, limit int) ([]JournalUsageRow, error) {
	in := query.AggregateInput{
		Year: year,
		Filters: []query.TextFilter{
			{Columns: []string{"title"}, Value: title},
			{Columns: []string{"publisher"}, Value: publisher},
		},
		Limit: limit,
	}
	metrics := []query.Metric{
		{Alias: "total_requests", Pivot: query.JournalUsageTotal},
		{Alias: "unique_requests", Pivot: query.JournalUsageUnique},
	}
	var rows []JournalUsageRow
	err := s.aggregate(ctx, "journal_usage",
		[]string{"title", "publisher", "online_issn", "print_issn"},
		metrics, "title", in, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// BookDenials ranks books by access denials across both denial reasons.
func (s *AnalyticsStore) BookDenials(ctx context.Context, title, year string, limit int) ([]DenialRow, error) {
	in := query.AggregateInput{
		Year:    year,
		Filters: []query.TextFilter{{Columns: []string{"title"}, Value: title}},
		Limit:   limit,
	}
	metrics := []query.Metric{{Alias: "total_denials", Pivot: query.BookDenialTotal}}
	var rows []DenialRow
	err := s.aggregate(ctx, "book_denials",
		[]string{"title", "publisher", "isbn", "yop"},
		metrics, "title", in, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// JournalDenials ranks journals by no-license access denials.
func (s *AnalyticsStore) JournalDenials(ctx context.Context, title, year string, limit int) ([]JournalDenialRow, error) {
	in := query.AggregateInput{
		Year:    year,
		Filters: []query.TextFilter{{Columns: []string{"title"}, Value: title}},
		Limit:   limit,
	}
	metrics := []query.Metric{{Alias: "total_denials", Pivot: query.JournalDenialTotal}}
	var rows []JournalDenialRow
	err := s.aggregate(ctx, "journal_denials",
		[]string{"title", "publisher", "online_issn", "print_issn"},
		metrics, "title", in, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// RecentPurchases lists purchased books, newest first by default or
// alphabetically when sortBy is "title".
func (s *AnalyticsStore) RecentPurchases(ctx context.Context, sortBy string, limit int) ([]*BookPurchase, error) {
	order := "year DESC, created_at DESC"
	if sortBy == "title" {
		order = "book_title ASC"
	}
	var purchases []*BookPurchase
	err := s.db.WithContext(ctx).Order(order).Limit(limit).Find(&purchases).Error
	if err != nil {
		return nil, fmt.Errorf("recent purchases: %w", err)
	}
	return purchases, nil
}

// SubscriptionHistory returns per-journal subscription counts for 2012-2024,
// optionally filtered by journal title or abbreviation.
func (s *AnalyticsStore) SubscriptionHistory(ctx context.Context, journal string, limit int) ([]*JournalSubscriptionHistory, error) {
	filters := []query.TextFilter{
		{Columns: []string{"journal_title", "journal_abbreviation"}, Value: journal},
	}
	q := s.db.WithContext(ctx)
	if clause, args := query.BuildConditions(filters); clause != "" {
		q = q.Where(clause, args...)
	}
	var history []*JournalSubscriptionHistory
	if err := q.Order("journal_title ASC").Limit(limit).Find(&history).Error; err != nil {
		return nil, fmt.Errorf("subscription history: %w", err)
	}
	return history, nil
}
