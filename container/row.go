package container

import (
	"fmt"
	"strings"
)

// Row is one decoded result row: an ordered mapping from column name to
// Value. Insertion order is the backend's column order. Rows are immutable
// once built; the builder below is the only mutation path.
//
// Duplicate column names are preserved positionally. Name lookup returns the
// first occurrence.
type Row struct {
	names  []string
	values []Value
	index  map[string]int
}

// RowBuilder accumulates columns for a Row under construction.
type RowBuilder struct {
	row Row
}

// NewRowBuilder returns a builder sized for n columns.
func NewRowBuilder(n int) *RowBuilder {
	return &RowBuilder{row: Row{
		names:  make([]string, 0, n),
		values: make([]Value, 0, n),
		index:  make(map[string]int, n),
	}}
}

// Add appends a column. Order of calls is the column order of the row.
func (b *RowBuilder) Add(name string, v Value) *RowBuilder {
	b.row.names = append(b.row.names, name)
	b.row.values = append(b.row.values, v)
	if _, dup := b.row.index[name]; !dup {
		b.row.index[name] = len(b.row.values) - 1
	}
	return b
}

// Build finalizes the row. The builder must not be reused afterwards.
func (b *RowBuilder) Build() *Row {
	return &b.row
}

// Len returns the number of columns.
func (r *Row) Len() int { return len(r.values) }

// Columns returns the column names in result order.
func (r *Row) Columns() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Value returns the i-th column value by position.
func (r *Row) Value(i int) Value { return r.values[i] }

// Name returns the i-th column name by position.
func (r *Row) Name(i int) string { return r.names[i] }

// Get returns the value for the named column and whether it exists. With
// duplicate names the first occurrence wins.
func (r *Row) Get(name string) (Value, bool) {
	i, ok := r.index[name]
	if !ok {
		return Value{}, false
	}
	return r.values[i], true
}

// String renders the row for debugging.
func (r *Row) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, n := range r.names {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%s", n, r.values[i].String())
	}
	sb.WriteByte('}')
	return sb.String()
}
