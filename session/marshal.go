package session

import (
	"fmt"
	"time"

	"github.com/kynelabs/dbsession/adapter"
	"github.com/kynelabs/dbsession/container"
)

// marshalRows decodes the adapter's raw rows into the typed container
// model, preserving the backend's column order. Decoding is total over the
// datum shapes the adapters produce; anything else is an error the caller
// surfaces as ErrDecoding.
func marshalRows(raw []adapter.RawRow) (*container.Result, error) {
	rows := make([]*container.Row, 0, len(raw))
	for i, rr := range raw {
		row, err := marshalRow(rr)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows = append(rows, row)
	}
	return container.NewResult(rows), nil
}

func marshalRow(rr adapter.RawRow) (*container.Row, error) {
	b := container.NewRowBuilder(len(rr))
	for _, f := range rr {
		v, err := decodeValue(f.Value)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", f.Name, err)
		}
		b.Add(f.Name, v)
	}
	return b.Build(), nil
}

func decodeValue(raw any) (container.Value, error) {
	switch v := raw.(type) {
	case nil:
		return container.NullValue(), nil
	case bool:
		return container.BoolValue(v), nil
	case int64:
		return container.IntValue(v), nil
	case int:
		return container.IntValue(int64(v)), nil
	case int32:
		return container.IntValue(int64(v)), nil
	case int16:
		return container.IntValue(int64(v)), nil
	case int8:
		return container.IntValue(int64(v)), nil
	case uint64:
		if v > 1<<63-1 {
			return container.Value{}, fmt.Errorf("unsigned value %d overflows int64", v)
		}
		return container.IntValue(int64(v)), nil
	case uint32:
		return container.IntValue(int64(v)), nil
	case float64:
		return container.FloatValue(v), nil
	case float32:
		return container.FloatValue(float64(v)), nil
	case string:
		return container.StringValue(v), nil
	case []byte:
		return container.BytesValue(v), nil
	case time.Time:
		// Timestamps carry no dedicated tag; they decode to their textual
		// form, matching backends that return them as text.
		return container.StringValue(v.Format(time.RFC3339Nano)), nil
	case []any:
		elems := make([]container.Value, 0, len(v))
		for i, e := range v {
			ev, err := decodeValue(e)
			if err != nil {
				return container.Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			elems = append(elems, ev)
		}
		return container.ArrayValue(elems), nil
	case adapter.RawRow:
		row, err := marshalRow(v)
		if err != nil {
			return container.Value{}, err
		}
		return container.ContainerValue(row), nil
	default:
		return container.Value{}, fmt.Errorf("unmappable datum of type %T", raw)
	}
}
