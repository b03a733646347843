package validation

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/napalu/argus/errs"
	"github.com/napalu/argus/types"
	"golang.org/x/text/unicode/norm"
)

// Range validates numeric values are within [min, max] inclusive. For numeric
// collections every element (or map value) is checked.
func Range(min, max float64) *FuncValidator {
	desc := fmt.Sprintf("range [%s, %s]", formatBound(min), formatBound(max))
	return NewFuncValidator("range", desc, types.ValueKind.IsNumeric, func(v types.Value) error {
		for _, e := range v.Elements() {
			n, err := e.AsFloat()
			if err != nil {
				return errs.ErrNotNumeric.WithArgs(e.Kind())
			}
			if n < min || n > max {
				return errs.ErrValueBetween.WithArgs(e.String(), formatBound(min), formatBound(max))
			}
		}
		return nil
	})
}

// Length validates the character count of a string, or the element count of a
// collection, is within [min, max] inclusive. Strings are measured after NFC
// normalization so composed and decomposed forms agree.
func Length(min, max int) *FuncValidator {
	desc := fmt.Sprintf("length [%d, %d]", min, max)
	supports := func(k types.ValueKind) bool {
		return k == types.String || k.IsCollection()
	}
	return NewFuncValidator("length", desc, supports, func(v types.Value) error {
		n := v.Len()
		if v.Kind() == types.String {
			s, _ := v.AsString()
			n = CharCount(s)
		}
		if n < min || n > max {
			return errs.ErrLengthBetween.WithArgs(n, min, max)
		}
		return nil
	})
}

// Count validates the final cardinality of a collection option is within
// [min, max] inclusive
func Count(min, max int) *FuncValidator {
	desc := fmt.Sprintf("count [%d, %d]", min, max)
	return NewFuncValidator("count", desc, types.ValueKind.IsCollection, func(v types.Value) error {
		if !v.Kind().IsCollection() {
			return errs.ErrNotCollection.WithArgs(v.Kind())
		}
		n := v.Len()
		if n < min || n > max {
			return errs.ErrCountBetween.WithArgs(n, min, max)
		}
		return nil
	})
}

// CharCount returns the number of characters in s after NFC normalization
func CharCount(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
