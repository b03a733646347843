package validation

import (
	"strings"

	"github.com/napalu/argus/errs"
	"github.com/napalu/argus/types"
)

// Validator checks a coerced option value. Validators run once per option on its
// final value, in declaration order, stopping at the first failure.
type Validator interface {
	// Validate returns an error describing why value is rejected
	Validate(value types.Value) error

	// Supports reports whether the validator is meaningful for values of kind
	Supports(kind types.ValueKind) bool

	// Name returns a short identifier such as "range" or "count"
	Name() string

	// Description returns a human-readable description of the constraint
	Description() string
}

// ValidatorMetadata provides common metadata fields for validators
type ValidatorMetadata struct {
	name        string
	description string
}

func (m ValidatorMetadata) Name() string {
	return m.name
}

func (m ValidatorMetadata) Description() string {
	return m.description
}

// FuncValidator wraps a validation function to implement the Validator interface
type FuncValidator struct {
	ValidatorMetadata
	supports func(types.ValueKind) bool
	fn       func(types.Value) error
}

func (f *FuncValidator) Validate(value types.Value) error {
	return f.fn(value)
}

func (f *FuncValidator) Supports(kind types.ValueKind) bool {
	if f.supports == nil {
		return true
	}
	return f.supports(kind)
}

// NewFuncValidator creates a Validator from a validation function. A nil supports
// function accepts every kind.
func NewFuncValidator(name, description string, supports func(types.ValueKind) bool, fn func(types.Value) error) *FuncValidator {
	return &FuncValidator{
		ValidatorMetadata: ValidatorMetadata{name: name, description: description},
		supports:          supports,
		fn:                fn,
	}
}

// Custom wraps caller-supplied validation logic
func Custom(name string, fn func(types.Value) error) *FuncValidator {
	if fn == nil {
		fn = func(types.Value) error { return nil }
	}
	return NewFuncValidator(name, name, nil, func(v types.Value) error {
		if err := fn(v); err != nil {
			return errs.ErrCustomValidation.WithArgs(name).Wrap(err)
		}
		return nil
	})
}

// All combines multiple validators - all must pass
func All(validators ...Validator) *FuncValidator {
	return NewFuncValidator("all", describe("all of", validators), supportedByAll(validators), func(v types.Value) error {
		for _, validator := range validators {
			if err := validator.Validate(v); err != nil {
				return err
			}
		}
		return nil
	})
}

// Any combines multiple validators - at least one must pass
func Any(validators ...Validator) *FuncValidator {
	return NewFuncValidator("any", describe("any of", validators), supportedByAll(validators), func(v types.Value) error {
		var failures []string
		for _, validator := range validators {
			err := validator.Validate(v)
			if err == nil {
				return nil
			}
			failures = append(failures, err.Error())
		}
		return errs.ErrValidationCombined.WithArgs(strings.Join(failures, "; "))
	})
}

func describe(prefix string, validators []Validator) string {
	parts := make([]string, len(validators))
	for i, v := range validators {
		parts[i] = v.Description()
	}
	return prefix + " (" + strings.Join(parts, ", ") + ")"
}

func supportedByAll(validators []Validator) func(types.ValueKind) bool {
	return func(kind types.ValueKind) bool {
		for _, v := range validators {
			if !v.Supports(kind) {
				return false
			}
		}
		return true
	}
}
