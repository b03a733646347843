package types

import (
	"strconv"
	"strings"

	"github.com/napalu/argus/errs"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Value is a tagged union over the ValueKind set. Only the field matching
// kind carries meaning; accessors for any other variant return ErrWrongKind.
// Collection kinds own their container; Release drops it.
type Value struct {
	kind  ValueKind
	b     bool
	i     int64
	f     float64
	s     string
	items []Value
	pairs *orderedmap.OrderedMap[string, Value]
}

// NewFlag returns the presence marker of a Flag option
func NewFlag() Value { return Value{kind: Flag, b: true} }

// NewBool returns a Bool value
func NewBool(b bool) Value { return Value{kind: Bool, b: b} }

// NewString returns a String value
func NewString(s string) Value { return Value{kind: String, s: s} }

// NewInt returns an Int value
func NewInt(i int64) Value { return Value{kind: Int, i: i} }

// NewFloat returns a Float value
func NewFloat(f float64) Value { return Value{kind: Float, f: f} }

// Empty returns the zero value of kind k. Collection kinds get an empty, owned container.
func Empty(k ValueKind) Value {
	v := Value{kind: k}
	if k.IsMap() {
		v.pairs = orderedmap.New[string, Value]()
	}
	return v
}

// NewStrings returns a StringArray holding elems in order
func NewStrings(elems ...string) Value {
	v := Empty(StringArray)
	for _, e := range elems {
		v.items = append(v.items, NewString(e))
	}
	return v
}

// NewInts returns an IntArray holding elems in order
func NewInts(elems ...int64) Value {
	v := Empty(IntArray)
	for _, e := range elems {
		v.items = append(v.items, NewInt(e))
	}
	return v
}

// NewFloats returns a FloatArray holding elems in order
func NewFloats(elems ...float64) Value {
	v := Empty(FloatArray)
	for _, e := range elems {
		v.items = append(v.items, NewFloat(e))
	}
	return v
}

// NewMap returns a map value of kind k populated from pairs in order
func NewMap(k ValueKind, pairs ...KeyValue[string, Value]) (Value, error) {
	if !k.IsMap() {
		return Value{}, errs.ErrWrongKind.WithArgs(k, "map")
	}
	v := Empty(k)
	for _, p := range pairs {
		if err := v.Put(p.Key, p.Value); err != nil {
			return Value{}, err
		}
	}
	return v, nil
}

// Kind returns the variant tag
func (v Value) Kind() ValueKind { return v.kind }

// IsValid reports whether v carries a variant at all
func (v Value) IsValid() bool { return v.kind.Valid() }

// AsBool returns the boolean held by a Flag or Bool value
func (v Value) AsBool() (bool, error) {
	if v.kind != Bool && v.kind != Flag {
		return false, errs.ErrWrongKind.WithArgs(v.kind, Bool)
	}
	return v.b, nil
}

// AsString returns the string held by a String value
func (v Value) AsString() (string, error) {
	if v.kind != String {
		return "", errs.ErrWrongKind.WithArgs(v.kind, String)
	}
	return v.s, nil
}

// AsInt returns the integer held by an Int value
func (v Value) AsInt() (int64, error) {
	if v.kind != Int {
		return 0, errs.ErrWrongKind.WithArgs(v.kind, Int)
	}
	return v.i, nil
}

// AsFloat returns the number held by a Float or Int value
func (v Value) AsFloat() (float64, error) {
	switch v.kind {
	case Float:
		return v.f, nil
	case Int:
		return float64(v.i), nil
	default:
		return 0, errs.ErrWrongKind.WithArgs(v.kind, Float)
	}
}

// Len returns the element count of a collection, 1 for a scalar and 0 for an invalid value
func (v Value) Len() int {
	switch {
	case v.kind.IsArray():
		return len(v.items)
	case v.kind.IsMap():
		if v.pairs == nil {
			return 0
		}
		return v.pairs.Len()
	case v.kind.Valid():
		return 1
	default:
		return 0
	}
}

// Items returns a copy of the elements of an array value
func (v Value) Items() ([]Value, error) {
	if !v.kind.IsArray() {
		return nil, errs.ErrWrongKind.WithArgs(v.kind, "array")
	}
	out := make([]Value, len(v.items))
	copy(out, v.items)
	return out, nil
}

// Pairs returns the entries of a map value in insertion order
func (v Value) Pairs() ([]KeyValue[string, Value], error) {
	if !v.kind.IsMap() {
		return nil, errs.ErrWrongKind.WithArgs(v.kind, "map")
	}
	if v.pairs == nil {
		return nil, nil
	}
	out := make([]KeyValue[string, Value], 0, v.pairs.Len())
	for p := v.pairs.Oldest(); p != nil; p = p.Next() {
		out = append(out, KeyValue[string, Value]{Key: p.Key, Value: p.Value})
	}
	return out, nil
}

// Lookup returns the value stored under key in a map value
func (v Value) Lookup(key string) (Value, bool) {
	if !v.kind.IsMap() || v.pairs == nil {
		return Value{}, false
	}
	return v.pairs.Get(key)
}

// Elements returns the scalar members of a collection (array elements or map values),
// or v itself for a scalar. Used by per-element checks such as choices and range.
func (v Value) Elements() []Value {
	switch {
	case v.kind.IsArray():
		return v.items
	case v.kind.IsMap():
		out := make([]Value, 0, v.Len())
		if v.pairs != nil {
			for p := v.pairs.Oldest(); p != nil; p = p.Next() {
				out = append(out, p.Value)
			}
		}
		return out
	case v.kind.Valid():
		return []Value{v}
	default:
		return nil
	}
}

// Append adds elem to an array value
func (v *Value) Append(elem Value) error {
	if !v.kind.IsArray() {
		return errs.ErrWrongKind.WithArgs(v.kind, "array")
	}
	if elem.kind != v.kind.Element() {
		return errs.ErrWrongKind.WithArgs(elem.kind, v.kind.Element())
	}
	v.items = append(v.items, elem)
	return nil
}

// Put stores elem under key in a map value. An existing key keeps its position.
func (v *Value) Put(key string, elem Value) error {
	if !v.kind.IsMap() {
		return errs.ErrWrongKind.WithArgs(v.kind, "map")
	}
	if elem.kind != v.kind.Element() {
		return errs.ErrWrongKind.WithArgs(elem.kind, v.kind.Element())
	}
	if v.pairs == nil {
		v.pairs = orderedmap.New[string, Value]()
	}
	v.pairs.Set(key, elem)
	return nil
}

// Clone returns a deep copy of v owning its own container
func (v Value) Clone() Value {
	c := v
	if v.items != nil {
		c.items = make([]Value, len(v.items))
		copy(c.items, v.items)
	}
	if v.pairs != nil {
		c.pairs = orderedmap.New[string, Value](v.pairs.Len())
		for p := v.pairs.Oldest(); p != nil; p = p.Next() {
			c.pairs.Set(p.Key, p.Value)
		}
	}
	return c
}

// Release drops the container owned by a collection value. Scalars are unaffected.
func (v *Value) Release() {
	v.items = nil
	v.pairs = nil
}

// Equal reports whether v and o hold the same variant and contents, map order included
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch {
	case v.kind.IsArray():
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case v.kind.IsMap():
		a, _ := v.Pairs()
		b, _ := o.Pairs()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i].Key != b[i].Key || !a[i].Value.Equal(b[i].Value) {
				return false
			}
		}
		return true
	}
	switch v.kind {
	case Flag, Bool:
		return v.b == o.b
	case String:
		return v.s == o.s
	case Int:
		return v.i == o.i
	case Float:
		return v.f == o.f
	}
	return true
}

// String returns the canonical form of v. For scalars this form coerces back
// to an identical value.
func (v Value) String() string {
	switch v.kind {
	case Flag, Bool:
		return strconv.FormatBool(v.b)
	case String:
		return v.s
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
	switch {
	case v.kind.IsArray():
		parts := make([]string, len(v.items))
		for i, e := range v.items {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case v.kind.IsMap():
		pairs, _ := v.Pairs()
		parts := make([]string, len(pairs))
		for i, p := range pairs {
			parts[i] = p.Key + "=" + p.Value.String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return ""
}

// Interface returns v as a native Go value: bool, string, int64, float64, a slice of
// those for arrays, or an ordered map for map kinds.
func (v Value) Interface() any {
	switch v.kind {
	case Flag, Bool:
		return v.b
	case String:
		return v.s
	case Int:
		return v.i
	case Float:
		return v.f
	case StringArray:
		out := make([]string, len(v.items))
		for i, e := range v.items {
			out[i] = e.s
		}
		return out
	case IntArray:
		out := make([]int64, len(v.items))
		for i, e := range v.items {
			out[i] = e.i
		}
		return out
	case FloatArray:
		out := make([]float64, len(v.items))
		for i, e := range v.items {
			out[i] = e.f
		}
		return out
	}
	if v.kind.IsMap() {
		om := orderedmap.New[string, any](v.Len())
		if v.pairs != nil {
			for p := v.pairs.Oldest(); p != nil; p = p.Next() {
				om.Set(p.Key, p.Value.Interface())
			}
		}
		return om
	}
	return nil
}
