package validation

import (
	"regexp"

	"github.com/napalu/argus/errs"
)

// PreValidator checks a raw command-line token before it is coerced. A rejected
// token never reaches coercion.
type PreValidator interface {
	Validate(raw string) error
	Name() string
	Description() string
}

// RegexValidator is a PreValidator backed by a regular expression compiled once
// at construction. It is safe for concurrent use.
type RegexValidator struct {
	ValidatorMetadata
	re *regexp.Regexp
}

// Regex compiles pattern and returns a PreValidator rejecting tokens that do not
// match it. description is shown in diagnostics instead of the raw pattern when
// non-empty.
func Regex(pattern, description string) (*RegexValidator, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errs.ErrInvalidPattern.WithArgs(pattern).Wrap(err)
	}
	if description == "" {
		description = "pattern " + pattern
	}
	return &RegexValidator{
		ValidatorMetadata: ValidatorMetadata{name: "regex", description: description},
		re:                re,
	}, nil
}

// MustRegex is like Regex but panics if the pattern does not compile
func MustRegex(pattern, description string) *RegexValidator {
	v, err := Regex(pattern, description)
	if err != nil {
		panic(err)
	}
	return v
}

func (r *RegexValidator) Validate(raw string) error {
	if !r.re.MatchString(raw) {
		return errs.ErrPatternMismatch.WithArgs(raw, r.description)
	}
	return nil
}

// Pattern returns the source of the compiled expression
func (r *RegexValidator) Pattern() string {
	return r.re.String()
}

// FuncPreValidator wraps a string validation function to implement PreValidator
type FuncPreValidator struct {
	ValidatorMetadata
	fn func(string) error
}

func (f *FuncPreValidator) Validate(raw string) error {
	return f.fn(raw)
}

// PreFunc creates a PreValidator from a validation function
func PreFunc(name string, fn func(raw string) error) *FuncPreValidator {
	if fn == nil {
		fn = func(string) error { return nil }
	}
	return &FuncPreValidator{
		ValidatorMetadata: ValidatorMetadata{name: name, description: name},
		fn:                fn,
	}
}
