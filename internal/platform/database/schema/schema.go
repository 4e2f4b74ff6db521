// Package schema is the registry of table and column names used by the
// PostgreSQL repositories. Queries reference these instead of literals so a
// rename in data/migrations is a one-line change here.
package schema

import (
	"fmt"
	"strings"
)

// List joins column names with an optional table alias ("v.id, v.name").
func List(alias string, columns ...string) string {
	if alias == "" {
		return strings.Join(columns, ", ")
	}

	qualified := make([]string, len(columns))
	for i, column := range columns {
		qualified[i] = alias + "." + column
	}
	return strings.Join(qualified, ", ")
}

// Placeholders returns "$from, $from+1, ..." for count bind parameters.
func Placeholders(from, count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(parts, ", ")
}

// Assignments returns "col1 = $from, col2 = $from+1, ..." for an UPDATE SET clause.
func Assignments(from int, columns ...string) string {
	parts := make([]string, len(columns))
	for i, column := range columns {
		parts[i] = fmt.Sprintf("%s = $%d", column, from+i)
	}
	return strings.Join(parts, ", ")
}
