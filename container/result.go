package container

// Result is the decoded output of one read operation: an ordered sequence
// of rows. A Result with zero rows is a present, valid result; a failed
// read yields no Result at all (nil).
type Result struct {
	rows []*Row
}

// NewResult wraps the given rows. The slice is not copied.
func NewResult(rows []*Row) *Result {
	return &Result{rows: rows}
}

// Len returns the number of rows.
func (r *Result) Len() int { return len(r.rows) }

// Row returns the i-th row.
func (r *Result) Row(i int) *Row { return r.rows[i] }

// Rows returns the rows in result order.
func (r *Result) Rows() []*Row {
	out := make([]*Row, len(r.rows))
	copy(out, r.rows)
	return out
}
