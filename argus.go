// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package argus provides command-line option parsing and validation.
//
// A schema is declared as a tree of Option values:
//
//	Named options - matched by -s or --long, holding a Flag, Bool, String, Int or Float value,
//	or accumulating repeated occurrences into arrays and key=value maps
//	Positionals - matched by position, in declaration order
//	Groups - partitions of sibling options, optionally mutually exclusive
//	Subcommands - each carrying its own schema; every token after the subcommand name belongs to it
//
// NewParser compiles the schema once and rejects structural mistakes before any
// argument is parsed. Parse then matches an argument vector, coerces and validates
// values, falls back to environment variables and defaults, and checks requires,
// conflicts, exclusivity and required options. It returns either a fully populated
// Context or a *errs.ParseError holding every diagnostic found, never both.
package argus

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/napalu/argus/env"
	"github.com/napalu/argus/errs"
	"github.com/napalu/argus/internal/parse"
)

// NewParser applies configs and compiles the resulting schema. The caller should
// always test for error on return because Parser will be nil when the schema is
// invalid; such errors match errs.ErrSchema.
//
// Configuration example:
//
//	parser, err := NewParser(
//		WithProgram("archiver", "1.0.0", "compresses files"),
//		WithOptions(
//			HelpOption(),
//			NewArg(types.String, 'o', "output", WithHelp("output file"), SetRequired(true)),
//			NewGroup("compression", []*Option{
//				NewFlag('z', "gzip"),
//				NewFlag('j', "bzip2"),
//			}, SetExclusive(true)),
//			NewArg(types.Int, 'l', "level", WithRange(1, 9), WithRequiresOneOf("gzip", "bzip2")),
//			NewPositional("file", types.String)))
func NewParser(configs ...ConfigureParserFunc) (*Parser, error) {
	parser := &Parser{
		resolver:         &env.DefaultEnvResolver{},
		envNameConverter: DefaultEnvNameConverter,
	}

	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}
	if parser.logger == nil {
		parser.logger = log.New(io.Discard)
	}

	root, err := parser.compile()
	if err != nil {
		return nil, err
	}
	parser.root = root

	return parser, nil
}

// MustNewParser is like NewParser but panics if the schema does not compile
func MustNewParser(configs ...ConfigureParserFunc) *Parser {
	parser, err := NewParser(configs...)
	if err != nil {
		panic(err)
	}
	return parser
}

// Program returns the name, version and description the parser was configured with
func (p *Parser) Program() Program {
	return p.program
}

// Parse matches args (without the program name) against the schema. On success the
// returned Context owns every value; the caller should Release it when done. When a
// FlagExit option is matched Parse returns a nil Context and an *ExitError. Any other
// failure is a *errs.ParseError listing all diagnostics in the order they were found.
func (p *Parser) Parse(args []string) (*Context, error) {
	root := newContext(p, p.root, nil)
	m := newMatcher(p, root, parse.NewState(args))
	if exit := m.run(); exit != nil {
		p.logger.Debug("exit requested", "option", exit.Option, "path", exit.Path)
		_ = root.Release()
		return nil, exit
	}

	for c := root; c != nil; c = c.child {
		p.validateValues(c)
	}
	for c := root; c != nil; c = c.child {
		p.resolveEnvAndDefaults(c)
	}
	for c := root; c != nil; c = c.child {
		p.resolveConstraints(c)
	}

	if len(root.diagnostics) > 0 {
		err := &errs.ParseError{Diagnostics: root.diagnostics}
		_ = root.Release()
		return nil, err
	}

	return root, nil
}

// ParseString splits line using shell quoting rules and parses the result
func (p *Parser) ParseString(line string) (*Context, error) {
	args, err := parse.Split(line)
	if err != nil {
		return nil, &errs.ParseError{Diagnostics: []error{err}}
	}
	return p.Parse(args)
}

// ExitError is returned by Parse when an option flagged FlagExit (such as --help or
// --version) is matched. It is neither success nor a parse failure: the caller is
// expected to hand control to the help or version collaborator and stop.
type ExitError struct {
	// Option is the identity of the matched option
	Option string
	// Path is the active subcommand path when the option was matched
	Path []string
}

func (e *ExitError) Error() string {
	return errs.ErrExitRequested.WithArgs(e.Option).Error()
}

// Unwrap lets errors.Is(err, errs.ErrExitRequested) succeed
func (e *ExitError) Unwrap() error {
	return errs.ErrExitRequested.WithArgs(e.Option)
}

// AsExit reports whether err signals an exit request rather than a failure
func AsExit(err error) (*ExitError, bool) {
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit, true
	}
	return nil, false
}
