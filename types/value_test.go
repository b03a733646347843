package types

import (
	"errors"
	"math"
	"testing"

	"github.com/napalu/argus/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueKind_Names(t *testing.T) {
	for k := Flag; k <= BoolMap; k++ {
		parsed, err := ParseValueKind(k.String())
		require.NoError(t, err, k.String())
		assert.Equal(t, k, parsed)
	}
	_, err := ParseValueKind("date")
	assert.True(t, errors.Is(err, errs.ErrUnknownValueKind))

	assert.True(t, IntArray.IsArray())
	assert.True(t, FloatMap.IsMap())
	assert.True(t, FloatMap.IsNumeric())
	assert.False(t, StringMap.IsNumeric())
	assert.Equal(t, Bool, BoolMap.Element())
	assert.Equal(t, Int, Int.Element())
	assert.False(t, Invalid.Valid())
}

func TestParse_Scalars(t *testing.T) {
	tests := []struct {
		kind ValueKind
		raw  string
		want Value
		err  *errs.Error
	}{
		{kind: Int, raw: "42", want: NewInt(42)},
		{kind: Int, raw: "-7", want: NewInt(-7)},
		{kind: Int, raw: "+3", want: NewInt(3)},
		{kind: Int, raw: "12abc", err: errs.ErrInvalidNumber},
		{kind: Int, raw: "", err: errs.ErrInvalidNumber},
		{kind: Int, raw: "1.0", err: errs.ErrInvalidNumber},
		{kind: Int, raw: "9223372036854775808", err: errs.ErrOutOfBounds},
		{kind: Float, raw: "1.5", want: NewFloat(1.5)},
		{kind: Float, raw: "-2e3", want: NewFloat(-2000)},
		{kind: Float, raw: "nan", err: errs.ErrNotANumber},
		{kind: Float, raw: "1e400", err: errs.ErrOutOfBounds},
		{kind: Float, raw: "1,5", err: errs.ErrInvalidNumber},
		{kind: Bool, raw: "Yes", want: NewBool(true)},
		{kind: Bool, raw: "0", want: NewBool(false)},
		{kind: Bool, raw: "FALSE", want: NewBool(false)},
		{kind: Bool, raw: "on", err: errs.ErrInvalidBool},
		{kind: String, raw: "", want: NewString("")},
		{kind: StringArray, raw: "x", want: NewString("x")},
		{kind: Invalid, raw: "x", err: errs.ErrUnknownValueKind},
	}

	for _, tt := range tests {
		got, err := Parse(tt.kind, tt.raw)
		if tt.err != nil {
			assert.True(t, errors.Is(err, tt.err), "%s %q: %v", tt.kind, tt.raw, err)
			continue
		}
		require.NoError(t, err, "%s %q", tt.kind, tt.raw)
		assert.True(t, tt.want.Equal(got), "%s %q: got %v", tt.kind, tt.raw, got)
	}
}

func TestParse_CanonicalRoundTrip(t *testing.T) {
	values := []Value{
		NewInt(0), NewInt(-1), NewInt(math.MaxInt64), NewInt(math.MinInt64),
		NewFloat(0.1), NewFloat(-3.25), NewFloat(1e300), NewFloat(math.SmallestNonzeroFloat64),
		NewFloat(math.Inf(1)),
		NewBool(true), NewBool(false),
		NewString("hello world"), NewString(""),
	}
	for _, v := range values {
		back, err := Parse(v.Kind(), v.String())
		require.NoError(t, err, v.String())
		assert.True(t, v.Equal(back), "%s did not survive a round trip", v)
	}
}

func TestParseEntry(t *testing.T) {
	key, v, err := ParseEntry(IntMap, "port=8080")
	require.NoError(t, err)
	assert.Equal(t, "port", key)
	assert.True(t, NewInt(8080).Equal(v))

	key, v, err = ParseEntry(StringMap, "url=http://host/?a=b")
	require.NoError(t, err)
	assert.Equal(t, "url", key)
	s, _ := v.AsString()
	assert.Equal(t, "http://host/?a=b", s)

	_, _, err = ParseEntry(StringMap, "novalue")
	assert.True(t, errors.Is(err, errs.ErrMissingSeparator))
	_, _, err = ParseEntry(StringMap, "=v")
	assert.True(t, errors.Is(err, errs.ErrEmptyKey))
	_, _, err = ParseEntry(BoolMap, "k=maybe")
	assert.True(t, errors.Is(err, errs.ErrInvalidBool))
}

func TestValue_Accessors(t *testing.T) {
	b, err := NewFlag().AsBool()
	assert.NoError(t, err)
	assert.True(t, b)

	f, err := NewInt(3).AsFloat()
	assert.NoError(t, err)
	assert.Equal(t, 3.0, f)

	_, err = NewFloat(3).AsInt()
	assert.True(t, errors.Is(err, errs.ErrWrongKind))
	_, err = NewString("x").AsBool()
	assert.True(t, errors.Is(err, errs.ErrWrongKind))
	_, err = NewInt(1).Items()
	assert.True(t, errors.Is(err, errs.ErrWrongKind))
	_, err = NewStrings("a").Pairs()
	assert.True(t, errors.Is(err, errs.ErrWrongKind))

	assert.False(t, Value{}.IsValid())
	assert.Equal(t, 0, Value{}.Len())
	assert.Equal(t, 1, NewString("x").Len())
	assert.Nil(t, Value{}.Interface())
}

func TestValue_Arrays(t *testing.T) {
	v := Empty(IntArray)
	require.NoError(t, v.Append(NewInt(1)))
	require.NoError(t, v.Append(NewInt(2)))
	assert.True(t, errors.Is(v.Append(NewString("3")), errs.ErrWrongKind))

	assert.Equal(t, 2, v.Len())
	assert.Equal(t, "[1, 2]", v.String())
	assert.Equal(t, []int64{1, 2}, v.Interface())
	assert.True(t, NewInts(1, 2).Equal(v))
	assert.False(t, NewInts(2, 1).Equal(v))

	s := NewString("x")
	assert.True(t, errors.Is(s.Append(NewString("y")), errs.ErrWrongKind))
}

func TestValue_Maps(t *testing.T) {
	v, err := NewMap(StringMap,
		KeyValue[string, Value]{Key: "b", Value: NewString("1")},
		KeyValue[string, Value]{Key: "a", Value: NewString("2")})
	require.NoError(t, err)

	require.NoError(t, v.Put("b", NewString("3")))
	assert.Equal(t, "{b=3, a=2}", v.String())
	got, ok := v.Lookup("a")
	assert.True(t, ok)
	assert.True(t, NewString("2").Equal(got))
	_, ok = v.Lookup("z")
	assert.False(t, ok)

	other, _ := NewMap(StringMap,
		KeyValue[string, Value]{Key: "a", Value: NewString("2")},
		KeyValue[string, Value]{Key: "b", Value: NewString("3")})
	assert.False(t, v.Equal(other), "map equality includes order")

	_, err = NewMap(StringArray)
	assert.True(t, errors.Is(err, errs.ErrWrongKind))
	assert.True(t, errors.Is(v.Put("c", NewInt(1)), errs.ErrWrongKind))
	assert.Len(t, v.Elements(), 2)
}

func TestValue_CloneAndRelease(t *testing.T) {
	arr := NewStrings("a", "b")
	c := arr.Clone()
	require.NoError(t, c.Append(NewString("c")))
	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, 3, c.Len())

	m, _ := NewMap(IntMap, KeyValue[string, Value]{Key: "k", Value: NewInt(1)})
	mc := m.Clone()
	require.NoError(t, mc.Put("k", NewInt(2)))
	got, _ := m.Lookup("k")
	assert.True(t, NewInt(1).Equal(got))

	c.Release()
	mc.Release()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, mc.Len())
	assert.Equal(t, IntMap, mc.Kind())
	assert.Equal(t, 2, arr.Len())
}

func TestFromNative(t *testing.T) {
	tests := []struct {
		kind ValueKind
		in   any
		want Value
	}{
		{Int, 3, NewInt(3)},
		{Int, int64(4), NewInt(4)},
		{Int, float64(5), NewInt(5)},
		{Int, "6", NewInt(6)},
		{Float, 2, NewFloat(2)},
		{Float, 0.5, NewFloat(0.5)},
		{Bool, true, NewBool(true)},
		{Bool, "no", NewBool(false)},
		{String, "x", NewString("x")},
		{StringArray, []any{"a", "b"}, NewStrings("a", "b")},
		{FloatArray, []any{1, 2.5}, NewFloats(1, 2.5)},
	}
	for _, tt := range tests {
		got, err := FromNative(tt.kind, tt.in)
		require.NoError(t, err, "%s %v", tt.kind, tt.in)
		assert.True(t, tt.want.Equal(got), "%s %v: got %v", tt.kind, tt.in, got)
	}

	m, err := FromNative(IntMap, map[string]any{"z": 1, "a": int64(2)})
	require.NoError(t, err)
	assert.Equal(t, "{a=2, z=1}", m.String())

	for _, bad := range []struct {
		kind ValueKind
		in   any
	}{
		{Int, 1.5},
		{Int, true},
		{String, 3},
		{StringArray, "a"},
		{IntMap, []any{1}},
		{IntArray, []any{"x"}},
	} {
		_, err := FromNative(bad.kind, bad.in)
		assert.Error(t, err, "%s %v", bad.kind, bad.in)
	}
}
