package engine

import "ecom-report/internal/schema"

// Frame is one cleaned CSV table ready for insertion. Columns follow the
// normalized header order of the input file; cells are nil for NULL.
type Frame struct {
	Spec     schema.Spec
	Columns  []string
	Kinds    []schema.Kind
	Rows     [][]interface{}
	Warnings int // conversion failures downgraded to NULL
}

func (f *Frame) RowCount() int {
	return len(f.Rows)
}

// TotalRows sums row counts across frames (progress bar sizing).
func TotalRows(frames []*Frame) int {
	total := 0
	for _, f := range frames {
		total += f.RowCount()
	}
	return total
}

// LoadResult is the per-table outcome reported after a load run.
type LoadResult struct {
	Table    string
	Rows     int // rows counted in the table after commit
	Warnings int
}
