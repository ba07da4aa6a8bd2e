// Package container provides the typed value model for decoded query
// results: a Value tagged union, an ordered Row of named values, and a
// Result holding the rows of one read operation.
package container

import "fmt"

// Type identifies which variant a Value holds.
type Type int

const (
	// Null is the variant of a backend NULL. It is a legitimate terminal
	// state for any column, not an error.
	Null Type = iota
	// Bool holds a boolean.
	Bool
	// Int holds a 64-bit signed integer.
	Int
	// Float holds a double-precision float.
	Float
	// String holds UTF-8 text.
	String
	// Bytes holds raw binary data.
	Bytes
	// Container holds a nested Row, for composite columns.
	Container
	// Array holds an ordered sequence of Values.
	Array
)

// String returns the variant name.
func (t Type) String() string {
	switch t {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Bytes:
		return "bytes"
	case Container:
		return "container"
	case Array:
		return "array"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Value is a closed tagged union over the datum shapes a backend can return
// for one column. The tag fully determines which accessor is valid; a typed
// accessor invoked against a mismatched tag returns an error rather than a
// coerced value.
type Value struct {
	t Type
	b bool
	i int64
	f float64
	s string
	r []byte
	c *Row
	a []Value
}

// NullValue returns the Null variant.
func NullValue() Value { return Value{t: Null} }

// BoolValue wraps a boolean.
func BoolValue(v bool) Value { return Value{t: Bool, b: v} }

// IntValue wraps a 64-bit integer.
func IntValue(v int64) Value { return Value{t: Int, i: v} }

// FloatValue wraps a double-precision float.
func FloatValue(v float64) Value { return Value{t: Float, f: v} }

// StringValue wraps UTF-8 text.
func StringValue(v string) Value { return Value{t: String, s: v} }

// BytesValue wraps raw binary data. The slice is not copied.
func BytesValue(v []byte) Value { return Value{t: Bytes, r: v} }

// ContainerValue wraps a nested row.
func ContainerValue(r *Row) Value { return Value{t: Container, c: r} }

// ArrayValue wraps an ordered sequence of values. The slice is not copied.
func ArrayValue(vs []Value) Value { return Value{t: Array, a: vs} }

// Type returns the variant tag.
func (v Value) Type() Type { return v.t }

// IsNull reports whether the value holds the Null variant.
func (v Value) IsNull() bool { return v.t == Null }

func (v Value) mismatch(want Type) error {
	return fmt.Errorf("value is %s, not %s", v.t, want)
}

// Bool returns the boolean datum, or an error on a tag mismatch.
func (v Value) Bool() (bool, error) {
	if v.t != Bool {
		return false, v.mismatch(Bool)
	}
	return v.b, nil
}

// Int returns the integer datum, or an error on a tag mismatch.
func (v Value) Int() (int64, error) {
	if v.t != Int {
		return 0, v.mismatch(Int)
	}
	return v.i, nil
}

// Float returns the floating-point datum, or an error on a tag mismatch.
func (v Value) Float() (float64, error) {
	if v.t != Float {
		return 0, v.mismatch(Float)
	}
	return v.f, nil
}

// Text returns the string datum, or an error on a tag mismatch.
func (v Value) Text() (string, error) {
	if v.t != String {
		return "", v.mismatch(String)
	}
	return v.s, nil
}

// Bytes returns the binary datum, or an error on a tag mismatch.
func (v Value) Bytes() ([]byte, error) {
	if v.t != Bytes {
		return nil, v.mismatch(Bytes)
	}
	return v.r, nil
}

// Container returns the nested row, or an error on a tag mismatch.
func (v Value) Container() (*Row, error) {
	if v.t != Container {
		return nil, v.mismatch(Container)
	}
	return v.c, nil
}

// Array returns the element sequence, or an error on a tag mismatch.
func (v Value) Array() ([]Value, error) {
	if v.t != Array {
		return nil, v.mismatch(Array)
	}
	return v.a, nil
}

// String renders the value for debugging. It never fails; mismatches are
// impossible because it switches on the tag.
func (v Value) String() string {
	switch v.t {
	case Null:
		return "NULL"
	case Bool:
		return fmt.Sprintf("%t", v.b)
	case Int:
		return fmt.Sprintf("%d", v.i)
	case Float:
		return fmt.Sprintf("%g", v.f)
	case String:
		return v.s
	case Bytes:
		return fmt.Sprintf("0x%x", v.r)
	case Container:
		return v.c.String()
	case Array:
		return fmt.Sprintf("%v", v.a)
	default:
		return fmt.Sprintf("Value(%d)", int(v.t))
	}
}
