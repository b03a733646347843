package argus

import (
	"github.com/charmbracelet/log"
	"github.com/napalu/argus/env"
)

// WithProgram sets the name, version and description exposed to help and version collaborators
func WithProgram(name, version, description string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.program = Program{Name: name, Version: version, Description: description}
	}
}

// WithOptions appends options to the root schema in declaration order
func WithOptions(options ...*Option) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.options = append(parser.options, options...)
	}
}

// WithOption appends a single option to the root schema
func WithOption(option *Option) ConfigureParserFunc {
	return WithOptions(option)
}

// WithEnvResolver sets the environment used for env fallback. Defaults to the process environment.
func WithEnvResolver(resolver env.Resolver) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.resolver = resolver
	}
}

// WithAutoEnv derives an environment variable name for every long option which does
// not declare one: the prefix, the subcommand path and the long name joined and
// passed through the env name converter. With prefix "app", --dry-run of
// subcommand "add" reads APP_ADD_DRY_RUN.
func WithAutoEnv(prefix string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.autoEnv = true
		parser.envPrefix = prefix
	}
}

// WithEnvNameConverter sets the function used by WithAutoEnv to build variable names
func WithEnvNameConverter(converter NameConversionFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.envNameConverter = converter
	}
}

// WithLogger enables debug tracing of matching and resolution
func WithLogger(logger *log.Logger) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.logger = logger
	}
}
