package argus

import (
	"github.com/napalu/argus/types"
	"github.com/napalu/argus/validation"
)

// WithHelp sets the text shown by help renderers
func WithHelp(help string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Help = help
	}
}

// WithShort sets the single-letter name matched by -x
func WithShort(short rune) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Short = short
	}
}

// WithLong sets the name matched by --name
func WithLong(long string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Long = long
	}
}

// WithName sets the identity of a positional, group or subcommand
func WithName(name string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Name = name
	}
}

// WithKind sets the option kind
func WithKind(kind Kind) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Kind = kind
	}
}

// WithValueKind sets the kind of value the option holds
func WithValueKind(kind types.ValueKind) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.ValueKind = kind
	}
}

// WithEnv names the environment variable consulted when the option is absent from the command line
func WithEnv(name string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Env = name
	}
}

// WithDefault sets the value installed when neither the command line nor the
// environment provides one. The default is checked when the schema is compiled.
func WithDefault(value types.Value) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		v := value.Clone()
		option.Default = &v
	}
}

// WithValidators appends validators to the option's chain. They run in order.
func WithValidators(validators ...validation.Validator) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Validators = append(option.Validators, validators...)
	}
}

// WithRange appends an inclusive numeric range validator
func WithRange(min, max float64) ConfigureOptionFunc {
	return WithValidators(validation.Range(min, max))
}

// WithLength appends an inclusive length validator
func WithLength(min, max int) ConfigureOptionFunc {
	return WithValidators(validation.Length(min, max))
}

// WithCount appends an inclusive element count validator for collection options
func WithCount(min, max int) ConfigureOptionFunc {
	return WithValidators(validation.Count(min, max))
}

// WithPreValidator sets the validator applied to raw tokens before coercion
func WithPreValidator(validator validation.PreValidator) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.PreValidator = validator
	}
}

// WithRegex compiles pattern into the option's pre-validator. hint is shown in
// diagnostics in place of the pattern when non-empty.
func WithRegex(pattern, hint string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		v, e := validation.Regex(pattern, hint)
		if e != nil {
			*err = e
			return
		}
		option.PreValidator = v
	}
}

// WithRequires lists options which must all be set whenever this option is set
func WithRequires(names ...string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Requires = append(option.Requires, names...)
	}
}

// WithRequiresOneOf lists options of which at least one must be set whenever this option is set
func WithRequiresOneOf(names ...string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.RequiresOneOf = append(option.RequiresOneOf, names...)
	}
}

// WithConflicts lists options which must not be set together with this option
func WithConflicts(names ...string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Conflicts = append(option.Conflicts, names...)
	}
}

// WithChoices restricts the option (or each element of a collection) to a closed set of values
func WithChoices(choices ...types.Value) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Choices = append(option.Choices, choices...)
	}
}

// WithStringChoices is WithChoices for string values
func WithStringChoices(choices ...string) ConfigureOptionFunc {
	values := make([]types.Value, len(choices))
	for i, c := range choices {
		values[i] = types.NewString(c)
	}
	return WithChoices(values...)
}

// WithIntChoices is WithChoices for integer values
func WithIntChoices(choices ...int64) ConfigureOptionFunc {
	values := make([]types.Value, len(choices))
	for i, c := range choices {
		values[i] = types.NewInt(c)
	}
	return WithChoices(values...)
}

// WithFloatChoices is WithChoices for float values
func WithFloatChoices(choices ...float64) ConfigureOptionFunc {
	values := make([]types.Value, len(choices))
	for i, c := range choices {
		values[i] = types.NewFloat(c)
	}
	return WithChoices(values...)
}

// WithSeparator makes a collection option split each occurrence on sep, so that
// --tag a,b is equivalent to --tag a --tag b
func WithSeparator(sep rune) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Separator = sep
	}
}

// WithMembers adds to the schema of a subcommand or the members of a group
func WithMembers(options ...*Option) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Options = append(option.Options, options...)
	}
}

// WithAction sets the function Context.Run executes when the subcommand is the deepest one matched
func WithAction(action Action) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Action = action
	}
}

// WithFlags adds behavior bits
func WithFlags(flags Flags) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Flags |= flags
	}
}

// SetRequired when true, the option must be set after env and default resolution
func SetRequired(required bool) ConfigureOptionFunc {
	return setFlag(FlagRequired, required)
}

// SetOptional when true, a positional may be omitted
func SetOptional(optional bool) ConfigureOptionFunc {
	return setFlag(FlagOptional, optional)
}

// SetExclusive when true, at most one member of a group may be set
func SetExclusive(exclusive bool) ConfigureOptionFunc {
	return setFlag(FlagExclusive, exclusive)
}

// SetExit when true, matching the flag ends parsing with an ExitError
func SetExit(exit bool) ConfigureOptionFunc {
	return setFlag(FlagExit, exit)
}

// SetHidden when true, the option is omitted from dumps
func SetHidden(hidden bool) ConfigureOptionFunc {
	return setFlag(FlagHidden, hidden)
}

func setFlag(flag Flags, on bool) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		if on {
			option.Flags |= flag
		} else {
			option.Flags &^= flag
		}
	}
}
