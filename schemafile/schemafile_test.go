package schemafile

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/napalu/argus"
	"github.com/napalu/argus/env"
	"github.com/napalu/argus/errs"
	"github.com/napalu/argus/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadParser(t *testing.T, name string, vars map[string]string) (*Document, *argus.Parser) {
	t.Helper()
	doc, err := Load(filepath.Join("testdata", name))
	require.NoError(t, err)
	p, err := doc.NewParser(argus.WithEnvResolver(env.NewMapResolver(vars)))
	require.NoError(t, err)
	return doc, p
}

func TestLoad_EmbeddedCases(t *testing.T) {
	for _, name := range []string{"archiver.yaml", "archiver.toml", "archiver.json"} {
		t.Run(name, func(t *testing.T) {
			doc, p := loadParser(t, name, nil)
			assert.Equal(t, "archiver", p.Program().Name)
			assert.NotEmpty(t, doc.Cases)
			assert.Empty(t, doc.CheckAll(p))
		})
	}
}

func TestLoad_YAMLSchema(t *testing.T) {
	doc, p := loadParser(t, "archiver.yaml", map[string]string{"ARCHIVER_LEVEL": "4"})
	assert.Equal(t, "compresses files", doc.Program.Description)

	ctx, err := p.Parse([]string{"-z", "-o", "out.tar", "src"})
	require.NoError(t, err)
	level, _ := ctx.Int("level")
	assert.Equal(t, int64(4), level)
	assert.Equal(t, argus.SourceEnv, ctx.Source("level"))

	_, err = p.Parse([]string{"-z", "-o", "dir/out.tar", "src"})
	assert.True(t, errors.Is(err, errs.ErrPatternMismatch))
	assert.Contains(t, err.Error(), "a file name without directories")

	_, err = p.Parse([]string{"-z", "-f", "rar", "src"})
	assert.True(t, errors.Is(err, errs.ErrChoiceViolation))

	ctx, err = p.Parse([]string{"-z", "verify", "-s", "a.tar"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrRequiredMissing), "the root positional is still required")
	assert.Nil(t, ctx)

	ctx, err = p.Parse([]string{"-z", "src", "verify", "-s", "a.tar"})
	require.NoError(t, err)
	assert.Equal(t, []string{"verify"}, ctx.Path())
	archive, _ := ctx.String("verify.archive")
	assert.Equal(t, "a.tar", archive)
}

func TestCase_Check(t *testing.T) {
	_, p := loadParser(t, "archiver.json", nil)

	assert.NoError(t, Case{Args: "-z src"}.Check(p))
	assert.NoError(t, Case{Args: "-h", Error: ExpectExit}.Check(p))
	assert.NoError(t, Case{Args: "-z -l abc src", Error: "coercion"}.Check(p))

	assert.Error(t, Case{Args: "-z", Error: ""}.Check(p))
	assert.Error(t, Case{Args: "-z src", Error: "coercion"}.Check(p))
	assert.Error(t, Case{Args: "-z src", Error: ExpectExit}.Check(p))
	assert.Error(t, Case{Args: "-z src", Values: map[string]string{"level": "7"}}.Check(p))
	assert.Error(t, Case{Args: "-z src", Values: map[string]string{"missing": "7"}}.Check(p))
	assert.Error(t, Case{Args: `-z "src`}.Check(p))

	c := Case{Name: "named", Args: "-z"}
	assert.Equal(t, "named", c.Label())
	assert.Equal(t, `"-z"`, Case{Args: "-z"}.Label())
}

func TestDecode(t *testing.T) {
	doc, err := Decode([]byte(`
options:
  - {long: tag, short: t, type: string-array, choices: [a, b], required: true}
  - {kind: positional, name: count, type: int, optional: true}
`), FormatYAML)
	require.NoError(t, err)
	options, err := doc.Build()
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, types.StringArray, options[0].ValueKind)
	assert.Equal(t, 't', options[0].Short)
	assert.True(t, options[0].Flags.Has(argus.FlagRequired))
	assert.Len(t, options[0].Choices, 2)
	assert.Equal(t, argus.KindPositional, options[1].Kind)
	assert.False(t, options[1].IsRequired())

	doc, err = Decode([]byte(`{"options": [{"long": "verbose"}]}`), FormatJSON)
	require.NoError(t, err)
	options, err = doc.Build()
	require.NoError(t, err)
	assert.Equal(t, types.Flag, options[0].ValueKind)

	_, err = Decode([]byte("x: ["), FormatYAML)
	assert.Error(t, err)
	_, err = Decode([]byte("{}"), Format("ini"))
	assert.True(t, errors.Is(err, errs.ErrUnsupportedSchemaFormat))
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name   string
		option Option
		want   *errs.Error
	}{
		{"unknown kind", Option{Kind: "section", Name: "x"}, errs.ErrInvalidOption},
		{"unknown type", Option{Long: "x", Type: "date"}, errs.ErrUnknownValueKind},
		{"long short name", Option{Long: "x", Short: "xy"}, errs.ErrInvalidName},
		{"default of wrong type", Option{Long: "x", Type: "int", Default: "six"}, errs.ErrInvalidDefault},
		{"choice of wrong type", Option{Long: "x", Type: "int", Choices: []any{true}}, errs.ErrInvalidChoice},
		{"bad validator spec", Option{Long: "x", Type: "int", Validators: []string{"between(1)"}}, errs.ErrUnknownValidator},
		{"long separator", Option{Long: "x", Type: "string-array", Separator: ",,"}, errs.ErrInvalidOption},
		{"bad member", Option{Kind: "group", Name: "g", Options: []Option{{Long: "y", Type: "nope"}}}, errs.ErrUnknownValueKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &Document{Options: []Option{tt.option}}
			_, err := doc.Build()
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrConfiguringOption))
			assert.True(t, errors.Is(err, tt.want), err.Error())
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)

	_, err = Load("schema.ini")
	assert.True(t, errors.Is(err, errs.ErrUnsupportedSchemaFormat))

	doc, err := Load(filepath.Join("testdata", "broken.yaml"))
	require.NoError(t, err)
	_, err = doc.NewParser()
	assert.True(t, errors.Is(err, errs.ErrSchema))
	assert.True(t, errors.Is(err, errs.ErrInvalidDefault))
}

func TestInferFormat(t *testing.T) {
	for path, want := range map[string]Format{
		"a.yaml": FormatYAML,
		"a.YML":  FormatYAML,
		"a.toml": FormatTOML,
		"a.json": FormatJSON,
	} {
		got, err := InferFormat(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
