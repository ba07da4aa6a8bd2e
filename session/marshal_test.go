package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kynelabs/dbsession/adapter"
	"github.com/kynelabs/dbsession/container"
)

func TestDecodeScalarValues(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want container.Type
	}{
		{"nil", nil, container.Null},
		{"bool", true, container.Bool},
		{"int64", int64(5), container.Int},
		{"int", 5, container.Int},
		{"int32", int32(5), container.Int},
		{"uint32", uint32(5), container.Int},
		{"uint64", uint64(5), container.Int},
		{"float64", 1.5, container.Float},
		{"float32", float32(1.5), container.Float},
		{"string", "x", container.String},
		{"bytes", []byte{1}, container.Bytes},
		{"time", time.Now(), container.String},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := decodeValue(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, v.Type())
		})
	}
}

func TestDecodeNullNeverBecomesPlaceholder(t *testing.T) {
	v, err := decodeValue(nil)
	require.NoError(t, err)
	require.True(t, v.IsNull())
	_, err = v.Text()
	assert.Error(t, err, "null must not read as an empty string")
	_, err = v.Int()
	assert.Error(t, err, "null must not read as zero")
}

func TestDecodeUint64Overflow(t *testing.T) {
	_, err := decodeValue(uint64(1) << 63)
	assert.Error(t, err)
}

func TestDecodeNestedArrayAndContainer(t *testing.T) {
	raw := []adapter.RawRow{{
		{Name: "tags", Value: []any{"gaming", "laptop"}},
		{Name: "specs", Value: adapter.RawRow{
			{Name: "ram", Value: int64(16)},
			{Name: "disks", Value: []any{[]any{"ssd", int64(1)}}},
		}},
	}}

	res, err := marshalRows(raw)
	require.NoError(t, err)
	require.Equal(t, 1, res.Len())
	row := res.Row(0)

	tagsVal, ok := row.Get("tags")
	require.True(t, ok)
	tags, err := tagsVal.Array()
	require.NoError(t, err)
	require.Len(t, tags, 2)
	first, err := tags[0].Text()
	require.NoError(t, err)
	assert.Equal(t, "gaming", first)

	specsVal, ok := row.Get("specs")
	require.True(t, ok)
	specs, err := specsVal.Container()
	require.NoError(t, err)
	ram, ok := specs.Get("ram")
	require.True(t, ok)
	n, err := ram.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(16), n)

	disksVal, ok := specs.Get("disks")
	require.True(t, ok)
	disks, err := disksVal.Array()
	require.NoError(t, err)
	require.Len(t, disks, 1)
	assert.Equal(t, container.Array, disks[0].Type())
}

func TestMarshalPreservesColumnOrderAndDuplicates(t *testing.T) {
	raw := []adapter.RawRow{{
		{Name: "id", Value: int64(1)},
		{Name: "name", Value: "a"},
		{Name: "id", Value: int64(2)},
	}}
	res, err := marshalRows(raw)
	require.NoError(t, err)
	row := res.Row(0)
	assert.Equal(t, []string{"id", "name", "id"}, row.Columns())

	v, ok := row.Get("id")
	require.True(t, ok)
	got, err := v.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(1), got, "name lookup returns the first occurrence")
}

func TestUnmappableDatumFailsSelectDistinctly(t *testing.T) {
	s, fa := newConnected(t)

	type opaque struct{ x int }
	fa.conn(0).queryFn = func(context.Context, string) ([]adapter.RawRow, error) {
		return []adapter.RawRow{{{Name: "c", Value: opaque{1}}}}, nil
	}

	assert.Nil(t, s.SelectQuery(context.Background(), "SELECT c FROM t"))
	assert.ErrorIs(t, s.LastError(), ErrDecoding)
}

func TestSelectMarshalsRows(t *testing.T) {
	s, fa := newConnected(t)

	fa.conn(0).queryFn = func(context.Context, string) ([]adapter.RawRow, error) {
		return []adapter.RawRow{
			{{Name: "name", Value: "Alice"}, {Name: "age", Value: int64(25)}},
			{{Name: "name", Value: "Charlie"}, {Name: "age", Value: nil}},
		}, nil
	}

	res := s.SelectQuery(context.Background(), "SELECT name, age FROM people")
	require.NotNil(t, res)
	require.Equal(t, 2, res.Len())

	name, ok := res.Row(0).Get("name")
	require.True(t, ok)
	got, err := name.Text()
	require.NoError(t, err)
	assert.Equal(t, "Alice", got)

	age, ok := res.Row(0).Get("age")
	require.True(t, ok)
	n, err := age.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(25), n)

	noAge, ok := res.Row(1).Get("age")
	require.True(t, ok)
	assert.True(t, noAge.IsNull())
}
