package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildRow() *Row {
	return NewRowBuilder(3).
		Add("name", StringValue("Alice")).
		Add("age", IntValue(25)).
		Add("active", BoolValue(true)).
		Build()
}

func TestRowPreservesColumnOrder(t *testing.T) {
	row := buildRow()
	assert.Equal(t, 3, row.Len())
	assert.Equal(t, []string{"name", "age", "active"}, row.Columns())
	assert.Equal(t, "name", row.Name(0))
	assert.Equal(t, String, row.Value(0).Type())
	assert.Equal(t, Int, row.Value(1).Type())
}

func TestRowLookupByName(t *testing.T) {
	row := buildRow()

	v, ok := row.Get("age")
	require.True(t, ok)
	age, err := v.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(25), age)

	_, ok = row.Get("missing")
	assert.False(t, ok)
}

func TestRowDuplicateNamesFirstWins(t *testing.T) {
	row := NewRowBuilder(2).
		Add("id", IntValue(1)).
		Add("id", IntValue(2)).
		Build()

	// Both columns survive positionally.
	assert.Equal(t, 2, row.Len())
	assert.Equal(t, []string{"id", "id"}, row.Columns())

	// Name lookup returns the first occurrence.
	v, ok := row.Get("id")
	require.True(t, ok)
	id, err := v.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	second, err := row.Value(1).Int()
	require.NoError(t, err)
	assert.Equal(t, int64(2), second)
}

func TestResultOrderingAndEmpty(t *testing.T) {
	empty := NewResult(nil)
	require.NotNil(t, empty)
	assert.Equal(t, 0, empty.Len())
	assert.Empty(t, empty.Rows())

	r1 := NewRowBuilder(1).Add("n", IntValue(1)).Build()
	r2 := NewRowBuilder(1).Add("n", IntValue(2)).Build()
	res := NewResult([]*Row{r1, r2})
	assert.Equal(t, 2, res.Len())
	assert.Same(t, r1, res.Row(0))
	assert.Same(t, r2, res.Row(1))
}
