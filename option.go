package argus

import (
	"github.com/napalu/argus/types"
)

// NewOption convenience initialization method to configure options. Configuration
// errors are kept on the option and reported when the schema is compiled.
func NewOption(configs ...ConfigureOptionFunc) *Option {
	option := &Option{}
	option.configErr = option.Set(configs...)

	return option
}

// NewFlag returns a presence-only option. short may be 0 when the option only has a long name.
func NewFlag(short rune, long string, configs ...ConfigureOptionFunc) *Option {
	return NewArg(types.Flag, short, long, configs...)
}

// NewArg returns a named option holding values of kind
//
// Usage example:
//
//	level := NewArg(types.Int, 'l', "level",
//	    WithHelp("compression level"),
//	    WithDefault(types.NewInt(6)),
//	    WithRange(1, 9))
func NewArg(kind types.ValueKind, short rune, long string, configs ...ConfigureOptionFunc) *Option {
	option := &Option{Kind: KindOption, ValueKind: kind, Short: short, Long: long}
	option.configErr = option.Set(configs...)

	return option
}

// NewPositional returns a positional option. Positionals are required unless
// configured with SetOptional(true).
func NewPositional(name string, kind types.ValueKind, configs ...ConfigureOptionFunc) *Option {
	option := &Option{Kind: KindPositional, ValueKind: kind, Name: name}
	option.configErr = option.Set(configs...)

	return option
}

// NewGroup returns a named partition of sibling options. Groups do not nest.
func NewGroup(name string, members []*Option, configs ...ConfigureOptionFunc) *Option {
	option := &Option{Kind: KindGroup, Name: name, Options: members}
	option.configErr = option.Set(configs...)

	return option
}

// NewSubcommand returns a subcommand carrying its own schema. Once its name is
// matched, every remaining token is parsed against options.
func NewSubcommand(name string, options []*Option, configs ...ConfigureOptionFunc) *Option {
	option := &Option{Kind: KindSubcommand, Name: name, Options: options}
	option.configErr = option.Set(configs...)

	return option
}

// HelpOption returns the conventional -h/--help option. Matching it ends parsing
// with an ExitError so a help collaborator can take over.
func HelpOption() *Option {
	return NewFlag('h', "help", WithHelp("Display this help message"), SetExit(true))
}

// VersionOption returns the conventional -V/--version option
func VersionOption() *Option {
	return NewFlag('V', "version", WithHelp("Display version information"), SetExit(true))
}

// Set configures the Option instance with the provided ConfigureOptionFunc(s),
// and returns the first error a configuration results in.
//
// Usage example:
//
//	opt := &Option{Kind: KindOption, Long: "input", ValueKind: types.String}
//	err := opt.Set(
//	    WithHelp("input file"),
//	    WithRegex(`\.txt$`, "a .txt file"),
//	    SetRequired(true),
//	)
//	if err != nil {
//	    // handle error
//	}
func (o *Option) Set(configs ...ConfigureOptionFunc) error {
	var err error
	for _, config := range configs {
		config(o, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

// Identity returns the name the option is referenced by in requires and conflicts
// lists and in Context lookups: the long name (or short letter) of a named option,
// and Name for every other kind.
func (o *Option) Identity() string {
	if o.Kind == KindOption {
		if o.Long != "" {
			return o.Long
		}
		if o.Short != 0 {
			return string(o.Short)
		}
	}
	return o.Name
}

// IsRequired reports whether the option must be set for a parse to succeed
func (o *Option) IsRequired() bool {
	if o.Kind == KindPositional {
		return !o.Flags.Has(FlagOptional)
	}
	return o.Kind == KindOption && o.Flags.Has(FlagRequired)
}

// TakesValue reports whether a value token follows the option on the command line
func (o *Option) TakesValue() bool {
	return o.ValueKind != types.Flag
}
