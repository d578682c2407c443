package query

import "fmt"

// Month-column calendars for the wide analytics tables. These are transcribed
// from the warehouse schema: not every month has a column in every year
// (reporting windows end mid-year, and some denial-reason columns were never
// collected for certain months). Keep the gaps; they are data, not omissions.

var months = []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

func monthColumns(year, suffix string, monthNames []string) []string {
	cols := make([]string, 0, len(monthNames))
	for _, m := range monthNames {
		cols = append(cols, fmt.Sprintf("%s_%s_%s", m, year, suffix))
	}
	return cols
}

// Book usage reporting covers January 2023 through August 2025.
var (
	BookUsageTotal = NewPivot(map[string][]string{
		"2023": monthColumns("2023", "total_item_requests", months),
		"2024": monthColumns("2024", "total_item_requests", months),
		"2025": monthColumns("2025", "total_item_requests", months[:8]),
	})
	BookUsageUnique = NewPivot(map[string][]string{
		"2023": monthColumns("2023", "unique_title_requests", months),
		"2024": monthColumns("2024", "unique_title_requests", months),
		"2025": monthColumns("2025", "unique_title_requests", months[:8]),
	})
)

// Journal usage reporting covers January 2023 through June 2025.
var (
	JournalUsageTotal = NewPivot(map[string][]string{
		"2023": monthColumns("2023", "total_item_requests", months),
		"2024": monthColumns("2024", "total_item_requests", months),
		"2025": monthColumns("2025", "total_item_requests", months[:6]),
	})
	JournalUsageUnique = NewPivot(map[string][]string{
		"2023": monthColumns("2023", "unique_item_requests", months),
		"2024": monthColumns("2024", "unique_item_requests", months),
		"2025": monthColumns("2025", "unique_item_requests", months[:6]),
	})
)

// BookDenialTotal sums both denial reasons. The limit_exceeded columns exist
// only for the months where that reason was actually reported.
var BookDenialTotal = NewPivot(map[string][]string{
	"2023": append(
		monthColumns("2023", "no_license", months),
		monthColumns("2023", "limit_exceeded", []string{"jan", "mar", "apr", "may", "aug", "sep"})...),
	"2024": append(
		monthColumns("2024", "no_license", months),
		monthColumns("2024", "limit_exceeded", []string{"jan", "mar", "apr", "may", "aug", "sep", "oct", "nov"})...),
	"2025": append(
		monthColumns("2025", "no_license", months[:8]),
		monthColumns("2025", "limit_exceeded", []string{"jan", "feb", "mar", "apr", "may", "aug"})...),
})

// JournalDenialTotal has no_license columns only, with gaps in every year.
var JournalDenialTotal = NewPivot(map[string][]string{
	"2023": monthColumns("2023", "no_license", []string{"feb", "mar", "apr", "may", "jun", "sep", "oct"}),
	"2024": monthColumns("2024", "no_license", []string{"mar", "apr", "may", "aug", "sep", "oct", "nov", "dec"}),
	"2025": monthColumns("2025", "no_license", []string{"jan", "feb", "mar", "apr", "jun", "jul", "aug"}),
})
