package domain

// DefaultColumns is the number of card columns on the hub page.
const DefaultColumns = 2

// Layout distributes entries over n columns: entry i lands in column
// i mod n, and each column keeps the entries' relative order.
// n < 1 is treated as a single column.
func Layout(entries []Entry, n int) [][]Entry {
	if n < 1 {
		n = 1
	}

	columns := make([][]Entry, n)
	for i, e := range entries {
		col := i % n
		columns[col] = append(columns[col], e)
	}
	return columns
}
