package schemafile

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/napalu/argus"
	"github.com/napalu/argus/errs"
	"github.com/napalu/argus/internal/parse"
)

// ExpectExit is the Case.Error value for argument lines ending in an exit option
const ExpectExit = "exit"

// Case pairs an argument line with the outcome the schema should produce. Error is
// empty for a successful parse, ExpectExit for an exit request, or the last
// segment of a diagnostic key (exclusive_group_violation, coercion, ...). Values
// lists the expected canonical value of options after a successful parse.
type Case struct {
	Name   string            `yaml:"name" toml:"name" json:"name"`
	Args   string            `yaml:"args" toml:"args" json:"args"`
	Error  string            `yaml:"error" toml:"error" json:"error"`
	Values map[string]string `yaml:"values" toml:"values" json:"values"`
}

// Argv splits Args using shell quoting rules
func (c Case) Argv() ([]string, error) {
	return parse.Split(c.Args)
}

// Label names the case in reports
func (c Case) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("%q", c.Args)
}

// Check parses the case with p and reports a mismatch with the expectation
func (c Case) Check(p *argus.Parser) error {
	argv, err := c.Argv()
	if err != nil {
		return fmt.Errorf("case %s: %w", c.Label(), err)
	}

	ctx, err := p.Parse(argv)
	if ctx != nil {
		defer func() { _ = ctx.Release() }()
	}

	switch {
	case c.Error == ExpectExit:
		if _, ok := argus.AsExit(err); !ok {
			return fmt.Errorf("case %s: expected an exit request, got %v", c.Label(), outcome(err))
		}
		return nil
	case c.Error != "":
		keys := diagnosticKeys(err)
		if !slices.ContainsFunc(keys, func(k string) bool { return strings.HasSuffix(k, "."+c.Error) }) {
			return fmt.Errorf("case %s: expected %s, got %v", c.Label(), c.Error, outcome(err))
		}
		return nil
	case err != nil:
		return fmt.Errorf("case %s: expected success: %w", c.Label(), err)
	}

	for _, name := range sortedNames(c.Values) {
		v, err := ctx.Get(name)
		if err != nil {
			return fmt.Errorf("case %s: %w", c.Label(), err)
		}
		if got := v.String(); got != c.Values[name] {
			return fmt.Errorf("case %s: option '%s' is %q, expected %q", c.Label(), name, got, c.Values[name])
		}
	}
	return nil
}

// CheckAll runs every case of the document against p and returns the mismatches
func (d *Document) CheckAll(p *argus.Parser) []error {
	var failures []error
	for _, c := range d.Cases {
		if err := c.Check(p); err != nil {
			failures = append(failures, err)
		}
	}
	return failures
}

func diagnosticKeys(err error) []string {
	var keys []string
	for _, d := range argus.Diagnostics(err) {
		var e *errs.Error
		if errors.As(d, &e) {
			keys = append(keys, e.Key())
		}
	}
	return keys
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	return err.Error()
}

func sortedNames(m map[string]string) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}
