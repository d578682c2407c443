package query

import "strings"

// Metric is a named derived sum included in an aggregate query's SELECT list.
// The first metric passed to BuildAggregate ranks and filters the result set.
type Metric struct {
	Alias string
	Pivot *Pivot
}

// AggregateInput is the validated filter set for one wide-table query.
type AggregateInput struct {
	// Year restricts the sums to one reporting year. Empty means the full
	// covered period.
	Year string
	// Filters are optional substring filters on identifying columns.
	Filters []TextFilter
	// Limit caps the result count.
	Limit int
}

// AggregateQuery is an executable query: SQL text with `?` placeholders and
// the arguments to bind. Only whitelisted column names ever appear in the
// text; caller-supplied values travel exclusively through Args.
type AggregateQuery struct {
	SQL  string
	Args []any
}

// Label is the analysis-period label the query reports back ("2024" or the
// span, e.g. "2023-2025").
func (in AggregateInput) label(primary *Pivot) string {
	if in.Year != "" {
		return in.Year
	}
	return primary.SpanLabel()
}

// BuildAggregate assembles the single read query for a wide pivot table:
//
//	SELECT <idCols>, <sum> AS <alias>..., ? AS analysis_year
//	FROM <table> WHERE <sum> > 0 [AND filters] ORDER BY <sum> DESC, <tieBreak> ASC LIMIT ?
//
// The ranking sum is the first metric's expression for the requested year (or
// all years when the year is empty). Rows with a zero sum are excluded. An
// out-of-range year returns *InvalidYearError before any SQL is built.
func BuildAggregate(table string, idCols []string, metrics []Metric, tieBreak string, in AggregateInput) (AggregateQuery, error) {
	exprs := make([]string, len(metrics))
	for i, m := range metrics {
		if in.Year == "" {
			exprs[i] = m.Pivot.AllYearsExpr()
			continue
		}
		expr, err := m.Pivot.SumExpr(in.Year)
		if err != nil {
			return AggregateQuery{}, err
		}
		exprs[i] = expr
	}

	var b strings.Builder
	var args []any

	b.WriteString("SELECT ")
	b.WriteString(strings.Join(idCols, ", "))
	for i, m := range metrics {
		b.WriteString(", ")
		b.WriteString(exprs[i])
		b.WriteString(" AS ")
		b.WriteString(m.Alias)
	}
	b.WriteString(", ? AS analysis_year")
	args = append(args, in.label(metrics[0].Pivot))

	b.WriteString(" FROM ")
	b.WriteString(table)

	ranking := exprs[0]
	b.WriteString(" WHERE ")
	b.WriteString(ranking)
	b.WriteString(" > 0")
	if clause, filterArgs := BuildConditions(in.Filters); clause != "" {
		b.WriteString(" AND ")
		b.WriteString(clause)
		args = append(args, filterArgs...)
	}

	b.WriteString(" ORDER BY ")
	b.WriteString(ranking)
	b.WriteString(" DESC, ")
	b.WriteString(tieBreak)
	b.WriteString(" ASC LIMIT ?")
	args = append(args, in.Limit)

	return AggregateQuery{SQL: b.String(), Args: args}, nil
}
