package qs

import (
	"strconv"

	"github.com/ghettovoice/qs/internal/constraints"
)

// ScalarKind enumerates the closed set of scalar variants.
type ScalarKind uint8

const (
	KindNull ScalarKind = iota
	KindString
	KindNumber
	KindBool
)

func (k ScalarKind) String() string {
	if k > KindBool {
		return "unknown"
	}
	return [...]string{"null", "string", "number", "bool"}[k]
}

// Scalar is a single query value: a string, a number, a boolean or null.
// The zero value is [Null].
type Scalar struct {
	str  string
	num  float64
	flag bool
	kind ScalarKind
}

// Null is the null scalar.
var Null = Scalar{}

// String returns a string scalar.
func String(s string) Scalar { return Scalar{kind: KindString, str: s} }

// Number returns a number scalar holding v.
func Number[T constraints.Real](v T) Scalar { return Scalar{kind: KindNumber, num: float64(v)} }

// Bool returns a boolean scalar.
func Bool(v bool) Scalar { return Scalar{kind: KindBool, flag: v} }

// Kind returns the scalar variant tag.
func (s Scalar) Kind() ScalarKind { return s.kind }

// IsNull reports whether the scalar is null.
func (s Scalar) IsNull() bool { return s.kind == KindNull }

// Str returns the underlying string and true when the scalar is a string.
func (s Scalar) Str() (string, bool) { return s.str, s.kind == KindString }

// Num returns the underlying number and true when the scalar is a number.
func (s Scalar) Num() (float64, bool) { return s.num, s.kind == KindNumber }

// Flag returns the underlying boolean and true when the scalar is a boolean.
func (s Scalar) Flag() (bool, bool) { return s.flag, s.kind == KindBool }

// Text returns the canonical text form of the scalar: strings as-is, numbers
// in shortest decimal form, booleans as "true"/"false", null as "null".
// Rendering always encodes this form.
func (s Scalar) Text() string {
	switch s.kind {
	case KindString:
		return s.str
	case KindNumber:
		return strconv.FormatFloat(s.num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(s.flag)
	default:
		return "null"
	}
}

// String implements fmt.Stringer returning the canonical text form.
func (s Scalar) String() string { return s.Text() }

// Equal compares scalars by kind and value.
func (s Scalar) Equal(val any) bool {
	var other Scalar
	switch v := val.(type) {
	case Scalar:
		other = v
	case *Scalar:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	if s.kind != other.kind {
		return false
	}
	switch s.kind {
	case KindString:
		return s.str == other.str
	case KindNumber:
		return s.num == other.num
	case KindBool:
		return s.flag == other.flag
	default:
		return true
	}
}
