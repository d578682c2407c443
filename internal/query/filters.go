// Package query builds the read queries issued by the chat tools: conjunctive
// substring filters over the narrow catalog tables, and derived column-sum
// aggregates over the wide monthly usage/denial tables.
package query

import (
	"strings"
)

// TextFilter binds a caller-supplied search value to one or more columns.
// When a filter targets multiple columns the per-column conditions are
// OR-combined; distinct filters are AND-combined by BuildConditions.
type TextFilter struct {
	Columns []string
	Value   string
}

// BuildConditions turns a set of text filters into a WHERE clause fragment and
// its bound arguments. Matching is case-insensitive substring containment.
// Filters with an empty value contribute no condition; with no effective
// filters the returned clause is empty (match all). Values are always bound as
// parameters, never interpolated into the SQL text.
func BuildConditions(filters []TextFilter) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	for _, f := range filters {
		if f.Value == "" || len(f.Columns) == 0 {
			continue
		}
		pattern := "%" + strings.ToLower(f.Value) + "%"
		parts := make([]string, 0, len(f.Columns))
		for _, col := range f.Columns {
			parts = append(parts, "LOWER("+col+") LIKE ?")
			args = append(args, pattern)
		}
		if len(parts) == 1 {
			clauses = append(clauses, parts[0])
		} else {
			clauses = append(clauses, "("+strings.Join(parts, " OR ")+")")
		}
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return strings.Join(clauses, " AND "), args
}
