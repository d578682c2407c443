package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianpress/concierge/internal/query"
)

func seedBookUsage(t *testing.T, store *Store) {
	t.Helper()
	records := []*BookUsageRecord{
		// 2024 total 90, 2023 total 10.
		{Title: "Quantum Computing Primer", Platform: "MeridianOnline", Publisher: "Meridian Press", ISBN: "978-1-0001", YOP: 2022,
			Jan2023Total: 10, Jan2024Total: 50, Feb2024Total: 40, Jan2024Unique: 30},
		// 2024 total 60, 2023 total 200.
		{Title: "Applied Statistics", Platform: "MeridianOnline", Publisher: "Meridian Press", ISBN: "978-1-0002", YOP: 2021,
			Mar2023Total: 200, Mar2024Total: 60, Mar2024Unique: 25},
		// No 2024 activity at all; must be excluded from 2024 reports.
		{Title: "Medieval History", Platform: "MeridianOnline", Publisher: "Meridian Press", ISBN: "978-1-0003", YOP: 2019,
			Jun2023Total: 5},
	}
	require.NoError(t, store.DB.Create(&records).Error)
}

func TestBookUsageRanksBySingleYearSum(t *testing.T) {
	store := openTestStore(t)
	seedBookUsage(t, store)
	analytics := NewAnalyticsStore(store)

	rows, err := analytics.BookUsage(context.Background(), "", "2024", 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Quantum Computing Primer", rows[0].Title)
	assert.Equal(t, int64(90), rows[0].TotalRequests)
	assert.Equal(t, int64(30), rows[0].UniqueRequests)
	assert.Equal(t, "2024", rows[0].AnalysisYear)

	assert.Equal(t, "Applied Statistics", rows[1].Title)
	assert.Equal(t, int64(60), rows[1].TotalRequests)
}

func TestBookUsageAllYearsSpansCoveredPeriod(t *testing.T) {
	store := openTestStore(t)
	seedBookUsage(t, store)
	analytics := NewAnalyticsStore(store)

	rows, err := analytics.BookUsage(context.Background(), "", "", 10)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Applied Statistics", rows[0].Title)
	assert.Equal(t, int64(260), rows[0].TotalRequests)
	assert.Equal(t, "2023-2025", rows[0].AnalysisYear)
}

func TestBookUsageTitleFilter(t *testing.T) {
	store := openTestStore(t)
	seedBookUsage(t, store)
	analytics := NewAnalyticsStore(store)

	rows, err := analytics.BookUsage(context.Background(), "statistics", "2024", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Applied Statistics", rows[0].Title)
}

func TestBookUsageRejectsInvalidYear(t *testing.T) {
	store := openTestStore(t)
	seedBookUsage(t, store)
	analytics := NewAnalyticsStore(store)

	_, err := analytics.BookUsage(context.Background(), "", "2019", 10)
	var invalidYear *query.InvalidYearError
	require.ErrorAs(t, err, &invalidYear)
	assert.Equal(t, []string{"2023", "2024", "2025"}, invalidYear.Valid)
}

func TestBookUsageIsDeterministic(t *testing.T) {
	store := openTestStore(t)
	// Equal 2024 sums force the title tie-break.
	records := []*BookUsageRecord{
		{Title: "Zoology Atlas", ISBN: "978-2-0001", Jan2024Total: 30},
		{Title: "Astronomy Atlas", ISBN: "978-2-0002", Jan2024Total: 30},
	}
	require.NoError(t, store.DB.Create(&records).Error)
	analytics := NewAnalyticsStore(store)

	first, err := analytics.BookUsage(context.Background(), "", "2024", 10)
	require.NoError(t, err)
	second, err := analytics.BookUsage(context.Background(), "", "2024", 10)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "Astronomy Atlas", first[0].Title)
}

func TestJournalUsage(t *testing.T) {
	store := openTestStore(t)
	records := []*JournalUsageRecord{
		{Title: "Journal of Marine Biology", Publisher: "Meridian Press", OnlineISSN: "1234-5678",
			Jan2025Total: 70, Jun2025Total: 30, Jan2025Unique: 40},
		// July 2025 is outside the journal reporting window; a row with only
		// July activity must not appear in the 2025 report.
		{Title: "Journal of Late Reporting", Publisher: "Meridian Press", OnlineISSN: "1234-9999",
			Jul2025Total: 500},
	}
	require.NoError(t, store.DB.Create(&records).Error)
	analytics := NewAnalyticsStore(store)

	rows, err := analytics.JournalUsage(context.Background(), "", "", "2025", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Journal of Marine Biology", rows[0].Title)
	assert.Equal(t, int64(100), rows[0].TotalRequests)
	assert.Equal(t, int64(40), rows[0].UniqueRequests)

	rows, err = analytics.JournalUsage(context.Background(), "", "meridian", "2025", 10)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestBookDenialsSumsBothReasons(t *testing.T) {
	store := openTestStore(t)
	records := []*BookDenialRecord{
		{Title: "Restricted Handbook", Publisher: "Meridian Press", ISBN: "978-3-0001", YOP: 2020,
			Jan2024NoLicense: 12, Jan2024LimitExceeded: 3},
		{Title: "Open Handbook", Publisher: "Meridian Press", ISBN: "978-3-0002", YOP: 2020},
	}
	require.NoError(t, store.DB.Create(&records).Error)
	analytics := NewAnalyticsStore(store)

	rows, err := analytics.BookDenials(context.Background(), "", "2024", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Restricted Handbook", rows[0].Title)
	assert.Equal(t, int64(15), rows[0].TotalDenials)
}

func TestJournalDenials(t *testing.T) {
	store := openTestStore(t)
	records := []*JournalDenialRecord{
		{Title: "Journal of Rare Diseases", Publisher: "Meridian Press", OnlineISSN: "2222-0001",
			Mar2024NoLicense: 9, Apr2024NoLicense: 4},
	}
	require.NoError(t, store.DB.Create(&records).Error)
	analytics := NewAnalyticsStore(store)

	rows, err := analytics.JournalDenials(context.Background(), "rare", "2024", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(13), rows[0].TotalDenials)
	assert.Equal(t, "2024", rows[0].AnalysisYear)
}

func TestRecentPurchases(t *testing.T) {
	store := openTestStore(t)
	author := "Ivanova Daria"
	purchases := []*BookPurchase{
		{Bookcode: "P001", BookTitle: "Robotics Yearbook", Year: 2023},
		{Bookcode: "P002", BookTitle: "Annual Compendium", AuthorName: &author, Year: 2025},
	}
	require.NoError(t, store.DB.Create(&purchases).Error)
	analytics := NewAnalyticsStore(store)

	byYear, err := analytics.RecentPurchases(context.Background(), "", 10)
	require.NoError(t, err)
	require.Len(t, byYear, 2)
	assert.Equal(t, 2025, byYear[0].Year)

	byTitle, err := analytics.RecentPurchases(context.Background(), "title", 10)
	require.NoError(t, err)
	assert.Equal(t, "Annual Compendium", byTitle[0].BookTitle)
}

func TestSubscriptionHistory(t *testing.T) {
	store := openTestStore(t)
	history := []*JournalSubscriptionHistory{
		{JournalTitle: "Journal of Clinical Oncology", JournalAbbreviation: "JCO", Year2023: 38, Year2024: 41},
		{JournalTitle: "Nature Methods", JournalAbbreviation: "NM", Year2023: 12, Year2024: 12},
	}
	require.NoError(t, store.DB.Create(&history).Error)
	analytics := NewAnalyticsStore(store)

	got, err := analytics.SubscriptionHistory(context.Background(), "jco", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 41, got[0].Year2024)

	all, err := analytics.SubscriptionHistory(context.Background(), "", 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
