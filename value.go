package qs

import "slices"

type valueKind uint8

const (
	valueZero valueKind = iota
	valueScalar
	valueList
)

// Value is a mapping value: absent (the zero Value), a single [Scalar], or an
// ordered sequence of scalars. A key holds a scalar unless and until it
// repeats, at which point the value collapses into a sequence preserving
// encounter order.
type Value struct {
	list []Scalar
	one  Scalar
	kind valueKind
}

// One returns a Value holding a single scalar.
func One(s Scalar) Value { return Value{kind: valueScalar, one: s} }

// List returns a Value holding an ordered sequence of scalars.
func List(ss ...Scalar) Value {
	return Value{kind: valueList, list: slices.Clone(ss)}
}

// IsZero reports whether the value is absent.
// Absent values are skipped entirely when rendering.
func (v Value) IsZero() bool { return v.kind == valueZero }

// IsList reports whether the value is a sequence.
func (v Value) IsList() bool { return v.kind == valueList }

// Scalar returns the single scalar and true when the value holds one.
func (v Value) Scalar() (Scalar, bool) { return v.one, v.kind == valueScalar }

// Scalars returns the value as a flat sequence: nil when absent, a
// single-element slice for a scalar, the underlying sequence for a list.
func (v Value) Scalars() []Scalar {
	switch v.kind {
	case valueScalar:
		return []Scalar{v.one}
	case valueList:
		return v.list
	default:
		return nil
	}
}

// add applies the collapse policy for a repeated key: absent becomes a
// scalar, a scalar becomes a two-element sequence (old then new), a sequence
// appends.
func (v Value) add(s Scalar) Value {
	switch v.kind {
	case valueZero:
		return One(s)
	case valueScalar:
		return Value{kind: valueList, list: []Scalar{v.one, s}}
	default:
		return Value{kind: valueList, list: append(v.list, s)}
	}
}

// Clone returns a deep copy of the value.
func (v Value) Clone() Value {
	if v.kind == valueList {
		v.list = slices.Clone(v.list)
	}
	return v
}

// Equal compares values by shape and content: a single-element sequence is
// not equal to the same scalar.
func (v Value) Equal(val any) bool {
	var other Value
	switch o := val.(type) {
	case Value:
		other = o
	case *Value:
		if o == nil {
			return false
		}
		other = *o
	default:
		return false
	}

	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case valueScalar:
		return v.one.Equal(other.one)
	case valueList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
	}
	return true
}
