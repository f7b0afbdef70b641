package qs

import (
	"iter"
	"slices"

	"braces.dev/errtrace"
)

// Values is an insertion-ordered mapping from string keys to query values.
// Keys are case-sensitive. Reads are safe on a nil *Values; writes require a
// mapping obtained from [NewValues], [Parse] or a non-nil literal use.
type Values struct {
	keys    []string
	entries map[string]Value
}

// NewValues returns an empty mapping.
func NewValues() *Values { return &Values{} }

// Len returns the number of keys in the mapping.
func (vals *Values) Len() int {
	if vals == nil {
		return 0
	}
	return len(vals.keys)
}

// Keys returns the keys in insertion order.
func (vals *Values) Keys() []string {
	if vals == nil {
		return nil
	}
	return slices.Clone(vals.keys)
}

// Has checks whether a given key is in the mapping.
func (vals *Values) Has(key string) bool {
	if vals == nil {
		return false
	}
	_, ok := vals.entries[key]
	return ok
}

// Get returns the value associated with the key.
func (vals *Values) Get(key string) (Value, bool) {
	if vals == nil {
		return Value{}, false
	}
	v, ok := vals.entries[key]
	return v, ok
}

// First returns the first scalar stored under the key.
func (vals *Values) First(key string) (Scalar, bool) {
	v, ok := vals.Get(key)
	if !ok {
		return Null, false
	}
	ss := v.Scalars()
	if len(ss) == 0 {
		return Null, false
	}
	return ss[0], true
}

// Last returns the last scalar stored under the key.
func (vals *Values) Last(key string) (Scalar, bool) {
	v, ok := vals.Get(key)
	if !ok {
		return Null, false
	}
	ss := v.Scalars()
	if len(ss) == 0 {
		return Null, false
	}
	return ss[len(ss)-1], true
}

// Set sets the key to a single scalar value. It replaces any existing value
// and keeps the key's position when the key is already present.
func (vals *Values) Set(key string, s Scalar) *Values { return vals.put(key, One(s)) }

// SetList sets the key to an ordered sequence value.
func (vals *Values) SetList(key string, ss ...Scalar) *Values { return vals.put(key, List(ss...)) }

// SetValue sets the key to an arbitrary value. Setting a zero Value marks the
// key as absent: it stays in the mapping but renders nothing.
func (vals *Values) SetValue(key string, v Value) *Values { return vals.put(key, v) }

func (vals *Values) put(key string, v Value) *Values {
	if vals.entries == nil {
		vals.entries = make(map[string]Value)
	}
	if _, ok := vals.entries[key]; !ok {
		vals.keys = append(vals.keys, key)
	}
	vals.entries[key] = v
	return vals
}

// Add appends one scalar occurrence of the key: the first occurrence is
// stored as a scalar, later occurrences collapse the value into a sequence
// preserving encounter order.
func (vals *Values) Add(key string, s Scalar) *Values {
	if vals.entries == nil {
		vals.entries = make(map[string]Value)
	}
	v, ok := vals.entries[key]
	if !ok {
		vals.keys = append(vals.keys, key)
	}
	vals.entries[key] = v.add(s)
	return vals
}

// Del deletes the key.
func (vals *Values) Del(key string) *Values {
	if vals == nil || vals.entries == nil {
		return vals
	}
	if _, ok := vals.entries[key]; ok {
		delete(vals.entries, key)
		vals.keys = slices.DeleteFunc(vals.keys, func(k string) bool { return k == key })
	}
	return vals
}

// Clear resets the mapping.
func (vals *Values) Clear() *Values {
	if vals == nil {
		return vals
	}
	vals.keys = vals.keys[:0]
	clear(vals.entries)
	return vals
}

// Clone returns a deep copy of the mapping.
func (vals *Values) Clone() *Values {
	if vals == nil {
		return nil
	}
	vals2 := &Values{keys: slices.Clone(vals.keys)}
	if vals.entries != nil {
		vals2.entries = make(map[string]Value, len(vals.entries))
		for k, v := range vals.entries {
			vals2.entries[k] = v.Clone()
		}
	}
	return vals2
}

// All iterates over key-value pairs in insertion order.
func (vals *Values) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if vals == nil {
			return
		}
		for _, k := range vals.keys {
			if !yield(k, vals.entries[k]) {
				return
			}
		}
	}
}

// Equal compares mappings as key sets: both must hold the same keys with
// equal values. Key order is ignored, sequence order is not. A nil mapping
// equals an empty one.
func (vals *Values) Equal(val any) bool {
	var other *Values
	switch v := val.(type) {
	case Values:
		other = &v
	case *Values:
		other = v
	default:
		return false
	}

	if vals == other {
		return true
	}
	if vals.Len() != other.Len() {
		return false
	}
	if vals == nil {
		return true
	}
	for _, k := range vals.keys {
		ov, ok := other.Get(k)
		if !ok || !vals.entries[k].Equal(ov) {
			return false
		}
	}
	return true
}

// MarshalText implements [encoding.TextMarshaler] using default separators.
func (vals *Values) MarshalText() ([]byte, error) {
	return []byte(vals.Render(nil)), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using default separators.
func (vals *Values) UnmarshalText(text []byte) error {
	vals2, err := Parse(text, nil)
	if err != nil {
		*vals = Values{}
		return errtrace.Wrap(err)
	}
	*vals = *vals2
	return nil
}
