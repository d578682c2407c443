package query

import (
	"fmt"
	"sort"
	"strings"
)

// InvalidYearError reports a year outside the set a pivot table has columns
// for. The message names the valid set so it can be surfaced to the caller
// verbatim.
type InvalidYearError struct {
	Year  string
	Valid []string
}

func (e *InvalidYearError) Error() string {
	return fmt.Sprintf("invalid year %q: valid years are %s", e.Year, strings.Join(e.Valid, ", "))
}

// Pivot describes one derived metric over a wide table whose per-year column
// lists are fixed at compile time. The lists are irregular on purpose: they
// mirror which monthly columns actually exist in the source data for each
// (table, year) pair.
type Pivot struct {
	columns map[string][]string
	years   []string
}

// NewPivot builds a pivot from a year -> column-name map. Column names must
// come from the schema, never from caller input.
func NewPivot(columns map[string][]string) *Pivot {
	years := make([]string, 0, len(columns))
	for y := range columns {
		years = append(years, y)
	}
	sort.Strings(years)
	return &Pivot{columns: columns, years: years}
}

// Years returns the valid year set in ascending order.
func (p *Pivot) Years() []string {
	out := make([]string, len(p.years))
	copy(out, p.years)
	return out
}

// Columns returns the column list for a year, or nil when the year is not in
// the valid set.
func (p *Pivot) Columns(year string) []string {
	cols, ok := p.columns[year]
	if !ok {
		return nil
	}
	out := make([]string, len(cols))
	copy(out, cols)
	return out
}

// SumExpr returns the null-safe sum expression over the columns that exist
// for the given year. Absent or NULL cells contribute zero, so the sum is
// always well-defined.
func (p *Pivot) SumExpr(year string) (string, error) {
	cols, ok := p.columns[year]
	if !ok {
		return "", &InvalidYearError{Year: year, Valid: p.Years()}
	}
	return sumExpr(cols), nil
}

// AllYearsExpr returns the sum expression spanning every valid year's
// columns, in year order. Used when no year filter is supplied.
func (p *Pivot) AllYearsExpr() string {
	var cols []string
	for _, y := range p.years {
		cols = append(cols, p.columns[y]...)
	}
	return sumExpr(cols)
}

// SpanLabel describes the full period covered by the pivot, e.g. "2023-2025".
func (p *Pivot) SpanLabel() string {
	if len(p.years) == 0 {
		return ""
	}
	if len(p.years) == 1 {
		return p.years[0]
	}
	return p.years[0] + "-" + p.years[len(p.years)-1]
}

func sumExpr(cols []string) string {
	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		parts = append(parts, "COALESCE("+c+", 0)")
	}
	return "(" + strings.Join(parts, " + ") + ")"
}
