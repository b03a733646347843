package argus

import (
	"bytes"
	"strings"
	"testing"

	"github.com/napalu/argus/env"
	"github.com/napalu/argus/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dumpContext(t *testing.T) *Context {
	t.Helper()
	p, err := NewParser(
		WithEnvResolver(env.NewMapResolver(map[string]string{"APP_NAME": "demo"})),
		WithOptions(
			NewFlag('v', "verbose"),
			NewArg(types.Int, 'l', "level", WithDefault(types.NewInt(6))),
			NewArg(types.StringArray, 't', "tag"),
			NewArg(types.StringMap, 'D', "define"),
			NewArg(types.String, 0, "name", WithEnv("APP_NAME")),
			NewArg(types.String, 0, "secret", SetHidden(true)),
			NewArg(types.String, 0, "comment"),
			NewSubcommand("add", []*Option{NewFlag('f', "force")}),
		))
	require.NoError(t, err)

	ctx, err := p.Parse([]string{"-v", "--tag", "a", "--tag", "b", "-D", "x=1", "--secret", "s", "add", "-f"})
	require.NoError(t, err)
	return ctx
}

func TestContext_DumpText(t *testing.T) {
	ctx := dumpContext(t)

	var buf bytes.Buffer
	require.NoError(t, ctx.Dump(&buf))
	assert.Equal(t, "verbose: true\n"+
		"level: 6\n"+
		"tag: [a b]\n"+
		"define: {x=1}\n"+
		"name: demo\n"+
		"add.force: true\n", buf.String())

	buf.Reset()
	require.NoError(t, ctx.Dump(&buf, WithSources(), WithUnset(), WithHidden()))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"verbose: true (source: cli)",
		"level: 6 (source: default)",
		"tag: [a b] (source: cli)",
		"define: {x=1} (source: cli)",
		"name: demo (source: env)",
		"secret: s (source: cli)",
		"comment: <unset> (source: unset)",
		"add.force: true (source: cli)",
	}, lines)
}

func TestContext_DumpJSON(t *testing.T) {
	ctx := dumpContext(t)

	var buf bytes.Buffer
	require.NoError(t, ctx.Dump(&buf, AsJSON()))
	assert.JSONEq(t, `{
		"verbose": true,
		"level": 6,
		"tag": ["a", "b"],
		"define": {"x": "1"},
		"name": "demo",
		"add.force": true
	}`, buf.String())
	out := buf.String()
	assert.Less(t, strings.Index(out, "verbose"), strings.Index(out, "level"))
	assert.Less(t, strings.Index(out, "name"), strings.Index(out, "add.force"))

	buf.Reset()
	require.NoError(t, ctx.Dump(&buf, AsJSON(), WithSources(), WithIndent("")))
	assert.NotContains(t, strings.TrimSpace(buf.String()), "\n")
	assert.JSONEq(t, `{
		"verbose": {"value": true, "source": "cli"},
		"level": {"value": 6, "source": "default"},
		"tag": {"value": ["a", "b"], "source": "cli"},
		"define": {"value": {"x": "1"}, "source": "cli"},
		"name": {"value": "demo", "source": "env"},
		"add.force": {"value": true, "source": "cli"}
	}`, buf.String())
}

func TestContext_DumpYAML(t *testing.T) {
	ctx := dumpContext(t)

	var buf bytes.Buffer
	require.NoError(t, ctx.Dump(&buf, AsYAML(), WithHidden()))
	assert.YAMLEq(t, `
verbose: true
level: 6
tag: [a, b]
define:
  x: "1"
name: demo
secret: s
add.force: true
`, buf.String())
}

func TestContext_Snapshot(t *testing.T) {
	ctx := dumpContext(t)

	settings, err := ctx.Snapshot()
	require.NoError(t, err)
	require.Len(t, settings, 8)

	byName := make(map[string]Setting, len(settings))
	for _, s := range settings {
		byName[s.Name] = s
	}
	assert.Equal(t, Setting{Name: "level", Kind: "int", Value: int64(6), Source: SourceDefault, Set: true}, byName["level"])
	assert.Equal(t, Setting{Name: "comment", Kind: "string", Source: SourceUnset}, byName["comment"])
	assert.True(t, byName["secret"].Hidden)
	assert.Equal(t, []string{"a", "b"}, byName["tag"].Value)
	assert.Equal(t, "add.force", settings[7].Name)

	// a snapshot is detached from the context
	require.NoError(t, ctx.Release())
	assert.Equal(t, []string{"a", "b"}, byName["tag"].Value)
	var buf bytes.Buffer
	assert.Error(t, ctx.Dump(&buf))
}
