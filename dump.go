package argus

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/napalu/argus/errs"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Setting is a read-only view of one option of a Context chain
type Setting struct {
	Name   string `json:"name" yaml:"name"`
	Kind   string `json:"kind" yaml:"kind"`
	Value  any    `json:"value,omitempty" yaml:"value,omitempty"`
	Source Source `json:"source" yaml:"source"`
	Set    bool   `json:"set" yaml:"set"`
	Hidden bool   `json:"-" yaml:"-"`
}

// Snapshot lists every option of the root and activated subcommands in declaration
// order, with values converted to native Go types
func (c *Context) Snapshot() ([]Setting, error) {
	r := c.rootContext()
	if r.released {
		return nil, errs.ErrReleased
	}
	var out []Setting
	for ctx := r; ctx != nil; ctx = ctx.child {
		for pair := ctx.entries.Oldest(); pair != nil; pair = pair.Next() {
			e := pair.Value
			s := Setting{
				Name:   e.opt.qualified,
				Kind:   e.opt.opt.ValueKind.String(),
				Source: SourceUnset,
				Set:    e.set,
				Hidden: e.opt.opt.Flags.Has(FlagHidden),
			}
			if e.set {
				s.Value = e.value.Interface()
				s.Source = e.source
			}
			out = append(out, s)
		}
	}
	return out, nil
}

// DumpOption configures dump behavior using the functional options pattern.
type DumpOption func(*dumpConfig)

type dumpConfig struct {
	withSources bool   // Include the source of each value
	withUnset   bool   // Include options which hold no value
	withHidden  bool   // Include options flagged FlagHidden
	asJSON      bool   // Output as JSON instead of text format
	asYAML      bool   // Output as YAML instead of text format
	indent      string // Indentation for JSON output (default: "  ")
}

// WithSources includes the source of each value in the output.
func WithSources() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.withSources = true
	}
}

// WithUnset includes options which hold no value.
func WithUnset() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.withUnset = true
	}
}

// WithHidden includes options flagged FlagHidden.
func WithHidden() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.withHidden = true
	}
}

// AsJSON outputs the context as JSON instead of text format.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.asJSON = true
	}
}

// AsYAML outputs the context as YAML instead of text format.
func AsYAML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.asYAML = true
	}
}

// WithIndent sets the indentation for JSON output.
// Default is two spaces ("  ").
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// Dump writes the values of the Context chain to w, one option per line as
// "name: value" by default
func (c *Context) Dump(w io.Writer, opts ...DumpOption) error {
	config := dumpConfig{
		indent: "  ",
	}
	for _, opt := range opts {
		opt(&config)
	}

	settings, err := c.Snapshot()
	if err != nil {
		return err
	}
	var selected []Setting
	for _, s := range settings {
		if (s.Set || config.withUnset) && (!s.Hidden || config.withHidden) {
			selected = append(selected, s)
		}
	}

	switch {
	case config.asJSON:
		return dumpAsJSON(w, selected, config)
	case config.asYAML:
		return dumpAsYAML(w, selected, config)
	}
	return dumpAsText(w, selected, config)
}

func dumpAsText(w io.Writer, settings []Setting, config dumpConfig) error {
	for _, s := range settings {
		line := fmt.Sprintf("%s: %s", s.Name, formatValue(s.Value))
		if config.withSources {
			line += fmt.Sprintf(" (source: %s)", s.Source)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write error: %w", err)
		}
	}
	return nil
}

func dumpAsJSON(w io.Writer, settings []Setting, config dumpConfig) error {
	var data []byte
	var err error
	if config.indent != "" {
		data, err = json.MarshalIndent(structure(settings, config), "", config.indent)
	} else {
		data, err = json.Marshal(structure(settings, config))
	}
	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

func dumpAsYAML(w io.Writer, settings []Setting, config dumpConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(structure(settings, config)); err != nil {
		return fmt.Errorf("yaml marshal error: %w", err)
	}
	return enc.Close()
}

// structure maps option names to values, or to {value, source} pairs when sources
// are requested, keeping declaration order
func structure(settings []Setting, config dumpConfig) *orderedmap.OrderedMap[string, any] {
	out := orderedmap.New[string, any](len(settings))
	for _, s := range settings {
		if !config.withSources {
			out.Set(s.Name, s.Value)
			continue
		}
		pair := orderedmap.New[string, any](2)
		pair.Set("value", s.Value)
		pair.Set("source", s.Source.String())
		out.Set(s.Name, pair)
	}
	return out
}

func formatValue(v any) string {
	if v == nil {
		return "<unset>"
	}
	if om, ok := v.(*orderedmap.OrderedMap[string, any]); ok {
		s := "{"
		for p := om.Oldest(); p != nil; p = p.Next() {
			if p != om.Oldest() {
				s += ", "
			}
			s += fmt.Sprintf("%s=%v", p.Key, p.Value)
		}
		return s + "}"
	}
	return fmt.Sprintf("%v", v)
}
