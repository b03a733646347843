package types

import (
	"strings"

	"github.com/napalu/argus/errs"
)

// ValueKind is the closed set of value shapes an option can hold
type ValueKind int

const (
	Invalid     ValueKind = iota // Invalid denotes an undeclared value kind
	Flag        ValueKind = 1    // Flag denotes a presence marker which takes no value token
	Bool        ValueKind = 2    // Bool denotes a boolean parsed from true/false/1/0/yes/no
	String      ValueKind = 3    // String denotes a verbatim string
	Int         ValueKind = 4    // Int denotes a base-10 signed 64-bit integer
	Float       ValueKind = 5    // Float denotes a 64-bit floating point number
	StringArray ValueKind = 6    // StringArray accumulates one string per occurrence
	IntArray    ValueKind = 7    // IntArray accumulates one integer per occurrence
	FloatArray  ValueKind = 8    // FloatArray accumulates one float per occurrence
	StringMap   ValueKind = 9    // StringMap accumulates key=value pairs with string values
	IntMap      ValueKind = 10   // IntMap accumulates key=value pairs with integer values
	FloatMap    ValueKind = 11   // FloatMap accumulates key=value pairs with float values
	BoolMap     ValueKind = 12   // BoolMap accumulates key=value pairs with boolean values
)

var kindNames = map[ValueKind]string{
	Flag:        "flag",
	Bool:        "bool",
	String:      "string",
	Int:         "int",
	Float:       "float",
	StringArray: "string-array",
	IntArray:    "int-array",
	FloatArray:  "float-array",
	StringMap:   "string-map",
	IntMap:      "int-map",
	FloatMap:    "float-map",
	BoolMap:     "bool-map",
}

// String returns the string representation of a ValueKind
func (k ValueKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// ParseValueKind maps a kind name as produced by ValueKind.String back to its ValueKind
func ParseValueKind(name string) (ValueKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return Invalid, errs.ErrUnknownValueKind.WithArgs(name)
}

// IsArray reports whether k accumulates an ordered sequence
func (k ValueKind) IsArray() bool {
	return k == StringArray || k == IntArray || k == FloatArray
}

// IsMap reports whether k accumulates an ordered key/value mapping
func (k ValueKind) IsMap() bool {
	return k >= StringMap && k <= BoolMap
}

// IsCollection reports whether k owns a dynamically sized container
func (k ValueKind) IsCollection() bool {
	return k.IsArray() || k.IsMap()
}

// IsNumeric reports whether the elements of k are numbers
func (k ValueKind) IsNumeric() bool {
	e := k.Element()
	return e == Int || e == Float
}

// Element returns the scalar kind held by a collection kind, or k itself for scalars
func (k ValueKind) Element() ValueKind {
	switch k {
	case StringArray, StringMap:
		return String
	case IntArray, IntMap:
		return Int
	case FloatArray, FloatMap:
		return Float
	case BoolMap:
		return Bool
	default:
		return k
	}
}

// Valid reports whether k is one of the declared kinds
func (k ValueKind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// KeyValue denotes Key Value pairs
type KeyValue[K, V any] struct {
	Key   K
	Value V
}
