package types

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/napalu/argus/errs"
)

// Parse coerces a raw token into a scalar Value of kind k (or of k's element kind for
// collections). The whole string must be consumed.
func Parse(k ValueKind, raw string) (Value, error) {
	switch k.Element() {
	case Bool:
		b, err := ParseBool(raw)
		if err != nil {
			return Value{}, err
		}
		return NewBool(b), nil
	case String:
		return NewString(raw), nil
	case Int:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, numError(err)
		}
		return NewInt(i), nil
	case Float:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, numError(err)
		}
		if math.IsNaN(f) {
			return Value{}, errs.ErrNotANumber
		}
		return NewFloat(f), nil
	case Flag:
		return NewFlag(), nil
	default:
		return Value{}, errs.ErrUnknownValueKind.WithArgs(k)
	}
}

// ParseBool accepts true/false/1/0/yes/no in any letter case
func ParseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, errs.ErrInvalidBool
	}
}

// ParseEntry splits a map occurrence at the first '=' and coerces the value part
// to the element kind of k
func ParseEntry(k ValueKind, raw string) (string, Value, error) {
	key, val, found := strings.Cut(raw, "=")
	if !found {
		return "", Value{}, errs.ErrMissingSeparator
	}
	if key == "" {
		return "", Value{}, errs.ErrEmptyKey
	}
	v, err := Parse(k.Element(), val)
	if err != nil {
		return "", Value{}, err
	}
	return key, v, nil
}

// FromNative converts a decoded document value (as produced by yaml, toml or json
// decoders) into a Value of kind k
func FromNative(k ValueKind, in any) (Value, error) {
	switch {
	case k.IsArray():
		list, ok := in.([]any)
		if !ok {
			return Value{}, errs.ErrWrongKind.WithArgs(fmt.Sprintf("%T", in), k)
		}
		v := Empty(k)
		for _, e := range list {
			ev, err := FromNative(k.Element(), e)
			if err != nil {
				return Value{}, err
			}
			if err = v.Append(ev); err != nil {
				return Value{}, err
			}
		}
		return v, nil
	case k.IsMap():
		m, ok := in.(map[string]any)
		if !ok {
			return Value{}, errs.ErrWrongKind.WithArgs(fmt.Sprintf("%T", in), k)
		}
		v := Empty(k)
		for _, key := range sortedKeys(m) {
			ev, err := FromNative(k.Element(), m[key])
			if err != nil {
				return Value{}, err
			}
			if err = v.Put(key, ev); err != nil {
				return Value{}, err
			}
		}
		return v, nil
	}

	switch t := in.(type) {
	case string:
		return Parse(k, t)
	case bool:
		if k == Bool {
			return NewBool(t), nil
		}
	case int:
		return fromInt(k, int64(t))
	case int64:
		return fromInt(k, t)
	case uint64:
		if t <= math.MaxInt64 {
			return fromInt(k, int64(t))
		}
	case float64:
		if k == Float {
			return NewFloat(t), nil
		}
		if k == Int && t == math.Trunc(t) && math.Abs(t) < 1<<53 {
			return NewInt(int64(t)), nil
		}
	}
	return Value{}, errs.ErrWrongKind.WithArgs(fmt.Sprintf("%T", in), k)
}

func fromInt(k ValueKind, i int64) (Value, error) {
	switch k {
	case Int:
		return NewInt(i), nil
	case Float:
		return NewFloat(float64(i)), nil
	}
	return Value{}, errs.ErrWrongKind.WithArgs("int", k)
}

func numError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		if errors.Is(ne.Err, strconv.ErrRange) {
			return errs.ErrOutOfBounds
		}
		return errs.ErrInvalidNumber
	}
	return err
}

// sortedKeys gives decoded maps a deterministic insertion order since decoders
// do not preserve document order in map[string]any
func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
