package validation

import (
	"strconv"
	"strings"

	"github.com/napalu/argus/errs"
)

// Validator names accepted by ParseSpec
const (
	ValidatorRange  = "range"
	ValidatorLength = "length"
	ValidatorLen    = "len"
	ValidatorCount  = "count"
	ValidatorAll    = "all"
	ValidatorAny    = "any"
)

const maxSpecDepth = 8

// ParseSpecs converts validator specifications to validators.
// Specifications look like:
//   - "range(1,9)", "range(0.5,2.5)"
//   - "length(1,64)" or "len(1,64)"
//   - "count(1,3)"
//   - "all(range(1,100),range(10,20))", "any(...)"
func ParseSpecs(specs []string) ([]Validator, error) {
	var validators []Validator
	for _, spec := range specs {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		v, err := parseSpecWithDepth(spec, 0)
		if err != nil {
			return nil, errs.ErrInvalidValidatorSpec.WithArgs(spec).Wrap(err)
		}
		validators = append(validators, v)
	}
	return validators, nil
}

// ParseSpec converts a single validator specification to a validator
func ParseSpec(spec string) (Validator, error) {
	v, err := parseSpecWithDepth(strings.TrimSpace(spec), 0)
	if err != nil {
		return nil, errs.ErrInvalidValidatorSpec.WithArgs(spec).Wrap(err)
	}
	return v, nil
}

func parseSpecWithDepth(spec string, depth int) (Validator, error) {
	if depth > maxSpecDepth {
		return nil, errs.ErrInvalidValidatorSpec.WithArgs(spec)
	}
	open := strings.IndexByte(spec, '(')
	if open <= 0 || !strings.HasSuffix(spec, ")") {
		return nil, errs.ErrInvalidValidatorSpec.WithArgs(spec)
	}
	name := strings.ToLower(strings.TrimSpace(spec[:open]))
	args := parseParenthesesArgs(spec[open+1 : len(spec)-1])

	switch name {
	case ValidatorRange:
		lo, hi, err := floatPair(spec, args)
		if err != nil {
			return nil, err
		}
		return Range(lo, hi), nil
	case ValidatorLength, ValidatorLen:
		lo, hi, err := intPair(spec, args)
		if err != nil {
			return nil, err
		}
		return Length(lo, hi), nil
	case ValidatorCount:
		lo, hi, err := intPair(spec, args)
		if err != nil {
			return nil, err
		}
		return Count(lo, hi), nil
	case ValidatorAll, ValidatorAny:
		if len(args) == 0 {
			return nil, errs.ErrInvalidValidatorSpec.WithArgs(spec)
		}
		nested := make([]Validator, 0, len(args))
		for _, a := range args {
			v, err := parseSpecWithDepth(a, depth+1)
			if err != nil {
				return nil, err
			}
			nested = append(nested, v)
		}
		if name == ValidatorAll {
			return All(nested...), nil
		}
		return Any(nested...), nil
	}
	return nil, errs.ErrUnknownValidator.WithArgs(name)
}

// parseParenthesesArgs splits on commas at depth 0, preserving nested parentheses
func parseParenthesesArgs(input string) []string {
	var args []string
	var current strings.Builder
	depth := 0

	for i := 0; i < len(input); i++ {
		ch := input[i]
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(current.String()))
				current.Reset()
				continue
			}
		}
		current.WriteByte(ch)
	}
	if s := strings.TrimSpace(current.String()); s != "" || len(args) > 0 {
		args = append(args, s)
	}
	return args
}

func floatPair(spec string, args []string) (float64, float64, error) {
	if len(args) != 2 {
		return 0, 0, errs.ErrInvalidValidatorSpec.WithArgs(spec)
	}
	lo, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, errs.ErrInvalidValidatorSpec.WithArgs(spec).Wrap(err)
	}
	hi, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, errs.ErrInvalidValidatorSpec.WithArgs(spec).Wrap(err)
	}
	if lo > hi {
		return 0, 0, errs.ErrInvalidValidatorSpec.WithArgs(spec)
	}
	return lo, hi, nil
}

func intPair(spec string, args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, errs.ErrInvalidValidatorSpec.WithArgs(spec)
	}
	lo, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, errs.ErrInvalidValidatorSpec.WithArgs(spec).Wrap(err)
	}
	hi, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, errs.ErrInvalidValidatorSpec.WithArgs(spec).Wrap(err)
	}
	if lo < 0 || lo > hi {
		return 0, 0, errs.ErrInvalidValidatorSpec.WithArgs(spec)
	}
	return lo, hi, nil
}
