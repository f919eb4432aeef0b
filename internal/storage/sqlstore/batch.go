package sqlstore

import "strings"

// Rows per multi-row INSERT. Keeps the bind variable count well below the
// SQLite and Postgres limits.
const batchSize = 500

// valuesClause builds "(?, ?), (?, ?)" for rows rows of cols columns.
func valuesClause(rows, cols int) string {
	var sb strings.Builder

	tuple := "(" + strings.TrimSuffix(strings.Repeat("?, ", cols), ", ") + ")"
	for i := 0; i < rows; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(tuple)
	}
	return sb.String()
}

// chunks splits n items into [start, end) ranges of at most size.
func chunks(n, size int) [][2]int {
	var out [][2]int
	for start := 0; start < n; start += size {
		out = append(out, [2]int{start, min(start+size, n)})
	}
	return out
}
