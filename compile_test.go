package argus

import (
	"errors"
	"testing"

	"github.com/napalu/argus/errs"
	"github.com/napalu/argus/types"
	"github.com/napalu/argus/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParser_SchemaErrors(t *testing.T) {
	tests := []struct {
		name    string
		options []*Option
		want    *errs.Error
	}{
		{
			name:    "named option without names",
			options: []*Option{NewArg(types.String, 0, "")},
			want:    errs.ErrMissingName,
		},
		{
			name:    "long name with equals sign",
			options: []*Option{NewFlag(0, "a=b")},
			want:    errs.ErrInvalidName,
		},
		{
			name:    "dash as short name",
			options: []*Option{NewFlag('-', "dash")},
			want:    errs.ErrInvalidName,
		},
		{
			name:    "duplicate long name",
			options: []*Option{NewFlag('a', "all"), NewArg(types.String, 'b', "all")},
			want:    errs.ErrDuplicateName,
		},
		{
			name:    "duplicate short name",
			options: []*Option{NewFlag('a', "all"), NewFlag('a', "any")},
			want:    errs.ErrDuplicateName,
		},
		{
			name:    "duplicate across group boundary",
			options: []*Option{NewFlag('a', "all"), NewGroup("g", []*Option{NewFlag('x', "all")})},
			want:    errs.ErrDuplicateName,
		},
		{
			name:    "duplicate group name",
			options: []*Option{NewGroup("g", []*Option{NewFlag('a', "a")}), NewGroup("g", []*Option{NewFlag('b', "b")})},
			want:    errs.ErrDuplicateName,
		},
		{
			name:    "unresolved requires",
			options: []*Option{NewFlag('a', "all", WithRequires("nothing"))},
			want:    errs.ErrUnresolvedReference,
		},
		{
			name:    "unresolved conflicts",
			options: []*Option{NewFlag('a', "all", WithConflicts("nothing"))},
			want:    errs.ErrUnresolvedReference,
		},
		{
			name:    "self reference",
			options: []*Option{NewFlag('a', "all", WithConflicts("all"))},
			want:    errs.ErrSelfReference,
		},
		{
			name: "reference into a subcommand scope",
			options: []*Option{
				NewFlag('a', "all", WithRequires("force")),
				NewSubcommand("add", []*Option{NewFlag('f', "force")}),
			},
			want: errs.ErrUnresolvedReference,
		},
		{
			name:    "nested group",
			options: []*Option{NewGroup("outer", []*Option{NewGroup("inner", []*Option{NewFlag('a', "a")})})},
			want:    errs.ErrInvalidGroup,
		},
		{
			name:    "subcommand in group",
			options: []*Option{NewGroup("g", []*Option{NewSubcommand("add", nil)})},
			want:    errs.ErrInvalidGroup,
		},
		{
			name:    "positional in exclusive group",
			options: []*Option{NewGroup("g", []*Option{NewPositional("file", types.String)}, SetExclusive(true))},
			want:    errs.ErrInvalidGroup,
		},
		{
			name: "positionals not contiguous",
			options: []*Option{
				NewPositional("a", types.String),
				NewFlag('v', "verbose"),
				NewPositional("b", types.String),
			},
			want: errs.ErrPositionalOrder,
		},
		{
			name: "required positional after optional",
			options: []*Option{
				NewPositional("a", types.String, SetOptional(true)),
				NewPositional("b", types.String),
			},
			want: errs.ErrPositionalOrder,
		},
		{
			name:    "collection positional",
			options: []*Option{NewPositional("files", types.StringArray)},
			want:    errs.ErrInvalidOption,
		},
		{
			name:    "subcommand collision",
			options: []*Option{NewSubcommand("add", nil), NewSubcommand("add", nil)},
			want:    errs.ErrSubcommandCollision,
		},
		{
			name:    "subcommand without name",
			options: []*Option{NewSubcommand("", nil)},
			want:    errs.ErrMissingName,
		},
		{
			name: "too many validators",
			options: []*Option{NewArg(types.Int, 'n', "num", WithValidators(
				validation.Range(0, 10), validation.Range(0, 9), validation.Range(0, 8),
				validation.Range(0, 7), validation.Range(0, 6)))},
			want: errs.ErrTooManyValidators,
		},
		{
			name:    "validator does not support kind",
			options: []*Option{NewArg(types.Int, 'n', "num", WithCount(1, 2))},
			want:    errs.ErrUnsupportedValidator,
		},
		{
			name:    "range on string",
			options: []*Option{NewArg(types.String, 's', "str", WithRange(1, 2))},
			want:    errs.ErrUnsupportedValidator,
		},
		{
			name:    "default out of range",
			options: []*Option{NewArg(types.Int, 'l', "level", WithDefault(types.NewInt(12)), WithRange(1, 9))},
			want:    errs.ErrInvalidDefault,
		},
		{
			name:    "default of wrong kind",
			options: []*Option{NewArg(types.Int, 'l', "level", WithDefault(types.NewString("six")))},
			want:    errs.ErrInvalidDefault,
		},
		{
			name:    "default outside choices",
			options: []*Option{NewArg(types.String, 'f', "format", WithStringChoices("json"), WithDefault(types.NewString("xml")))},
			want:    errs.ErrInvalidDefault,
		},
		{
			name:    "choice of wrong kind",
			options: []*Option{NewArg(types.Int, 'n', "num", WithStringChoices("one"))},
			want:    errs.ErrInvalidChoice,
		},
		{
			name:    "invalid regular expression",
			options: []*Option{NewArg(types.String, 'e', "email", WithRegex(`([`, "broken"))},
			want:    errs.ErrConfiguringOption,
		},
		{
			name:    "exit on valued option",
			options: []*Option{NewArg(types.String, 'h', "help", SetExit(true))},
			want:    errs.ErrInvalidOption,
		},
		{
			name:    "flag with default",
			options: []*Option{NewFlag('v', "verbose", WithDefault(types.NewFlag()))},
			want:    errs.ErrInvalidOption,
		},
		{
			name:    "separator on scalar",
			options: []*Option{NewArg(types.String, 's', "str", WithSeparator(','))},
			want:    errs.ErrInvalidOption,
		},
		{
			name:    "equals separator on map",
			options: []*Option{NewArg(types.StringMap, 'D', "define", WithSeparator('='))},
			want:    errs.ErrInvalidOption,
		},
		{
			name:    "action on plain option",
			options: []*Option{NewFlag('v', "verbose", WithAction(func(*Context) error { return nil }))},
			want:    errs.ErrInvalidOption,
		},
		{
			name:    "option without value kind",
			options: []*Option{NewOption(WithLong("raw"))},
			want:    errs.ErrInvalidOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParser(WithOptions(tt.options...))
			assert.Nil(t, p)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrSchema), err.Error())
			assert.True(t, errors.Is(err, tt.want), err.Error())
		})
	}
}

func TestNewParser_ValidSchemas(t *testing.T) {
	tests := []struct {
		name    string
		options []*Option
	}{
		{
			name:    "empty schema",
			options: nil,
		},
		{
			name: "subcommand option requires ancestor option",
			options: []*Option{
				NewFlag('v', "verbose"),
				NewSubcommand("add", []*Option{NewFlag('f', "force", WithRequires("verbose"))}),
			},
		},
		{
			name: "same names in sibling subcommands",
			options: []*Option{
				NewSubcommand("add", []*Option{NewFlag('f', "force")}),
				NewSubcommand("remove", []*Option{NewFlag('f', "force")}),
			},
		},
		{
			name: "positionals inside non-exclusive group",
			options: []*Option{
				NewGroup("files", []*Option{
					NewPositional("src", types.String),
					NewPositional("dst", types.String, SetOptional(true)),
				}),
			},
		},
		{
			name: "duplicate requires names collapse",
			options: []*Option{
				NewFlag('a', "all", WithRequires("any", "any")),
				NewFlag('b', "any"),
			},
		},
		{
			name: "four validators",
			options: []*Option{NewArg(types.IntArray, 'n', "num", WithValidators(
				validation.Range(0, 10), validation.Range(0, 9),
				validation.Count(0, 3), validation.Count(1, 2)))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParser(WithOptions(tt.options...))
			require.NoError(t, err)
			assert.NotNil(t, p)
		})
	}
}

func TestNewParser_SchemaIsCopied(t *testing.T) {
	level := NewArg(types.Int, 'l', "level", WithDefault(types.NewInt(3)))
	p := MustNewParser(WithProgram("tool", "0.1.0", ""), WithOptions(level))

	require.NoError(t, level.Set(WithLong("changed"), WithDefault(types.NewInt(99))))
	ctx, err := p.Parse([]string{"--level", "4"})
	require.NoError(t, err)
	got, _ := ctx.Int("level")
	assert.Equal(t, int64(4), got)
	assert.False(t, ctx.IsSet("changed"))
	assert.Equal(t, "tool", ctx.Program().Name)
	assert.Equal(t, "0.1.0", p.Program().Version)
}

func TestMustNewParser_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustNewParser(WithOptions(NewFlag('a', "all"), NewFlag('a', "all")))
	})
}

func TestOption_Identity(t *testing.T) {
	assert.Equal(t, "output", NewArg(types.String, 'o', "output").Identity())
	assert.Equal(t, "o", NewArg(types.String, 'o', "").Identity())
	assert.Equal(t, "file", NewPositional("file", types.String).Identity())
	assert.True(t, NewPositional("file", types.String).IsRequired())
	assert.False(t, NewPositional("file", types.String, SetOptional(true)).IsRequired())
	assert.False(t, NewFlag('v', "verbose").IsRequired())
	assert.False(t, NewFlag('v', "verbose").TakesValue())
	assert.True(t, HelpOption().Flags.Has(FlagExit))
}
