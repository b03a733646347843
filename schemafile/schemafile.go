// Package schemafile loads an argus schema from a YAML, TOML or JSON document.
//
// A document declares the program triple, an optional auto-env prefix, the option
// tree and, optionally, test cases pairing an argument line with its expected
// outcome:
//
//	program:
//	  name: archiver
//	  version: 1.0.0
//	options:
//	  - kind: group
//	    name: compression
//	    exclusive: true
//	    options:
//	      - {long: gzip, short: z}
//	      - {long: bzip2, short: j}
//	  - long: level
//	    short: l
//	    type: int
//	    default: 6
//	    validators: ["range(1,9)"]
//	    requires_one_of: [gzip, bzip2]
//	cases:
//	  - args: "-z -l 12"
//	    error: validator_failure
package schemafile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/napalu/argus"
	"github.com/napalu/argus/errs"
	"github.com/napalu/argus/types"
	"github.com/napalu/argus/validation"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names a document encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Document is the decoded form of a schema file
type Document struct {
	Program Program  `yaml:"program" toml:"program" json:"program"`
	AutoEnv string   `yaml:"auto_env" toml:"auto_env" json:"auto_env"`
	Options []Option `yaml:"options" toml:"options" json:"options"`
	Cases   []Case   `yaml:"cases" toml:"cases" json:"cases"`
}

// Program mirrors argus.Program
type Program struct {
	Name        string `yaml:"name" toml:"name" json:"name"`
	Version     string `yaml:"version" toml:"version" json:"version"`
	Description string `yaml:"description" toml:"description" json:"description"`
}

// Option declares one schema entry. Kind is one of option (the default),
// positional, group or subcommand; Type is a value kind name such as int,
// string-array or bool-map.
type Option struct {
	Kind               string   `yaml:"kind" toml:"kind" json:"kind"`
	Long               string   `yaml:"long" toml:"long" json:"long"`
	Short              string   `yaml:"short" toml:"short" json:"short"`
	Name               string   `yaml:"name" toml:"name" json:"name"`
	Type               string   `yaml:"type" toml:"type" json:"type"`
	Help               string   `yaml:"help" toml:"help" json:"help"`
	Env                string   `yaml:"env" toml:"env" json:"env"`
	Default            any      `yaml:"default" toml:"default" json:"default"`
	Validators         []string `yaml:"validators" toml:"validators" json:"validators"`
	Pattern            string   `yaml:"pattern" toml:"pattern" json:"pattern"`
	PatternDescription string   `yaml:"pattern_description" toml:"pattern_description" json:"pattern_description"`
	Requires           []string `yaml:"requires" toml:"requires" json:"requires"`
	RequiresOneOf      []string `yaml:"requires_one_of" toml:"requires_one_of" json:"requires_one_of"`
	Conflicts          []string `yaml:"conflicts" toml:"conflicts" json:"conflicts"`
	Choices            []any    `yaml:"choices" toml:"choices" json:"choices"`
	Separator          string   `yaml:"separator" toml:"separator" json:"separator"`
	Required           bool     `yaml:"required" toml:"required" json:"required"`
	Optional           bool     `yaml:"optional" toml:"optional" json:"optional"`
	Exclusive          bool     `yaml:"exclusive" toml:"exclusive" json:"exclusive"`
	Exit               bool     `yaml:"exit" toml:"exit" json:"exit"`
	Hidden             bool     `yaml:"hidden" toml:"hidden" json:"hidden"`
	Options            []Option `yaml:"options" toml:"options" json:"options"`
}

// InferFormat derives the document format from the file extension
func InferFormat(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errs.ErrUnsupportedSchemaFormat.WithArgs(ext)
	}
}

// Load reads and decodes the schema file at path
func Load(path string) (*Document, error) {
	format, err := InferFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file %s: %w", path, err)
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode parses data in the given format
func Decode(data []byte, format Format) (*Document, error) {
	doc := &Document{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("parse YAML schema: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("parse TOML schema: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("parse JSON schema: %w", err)
		}
	default:
		return nil, errs.ErrUnsupportedSchemaFormat.WithArgs(format)
	}
	return doc, nil
}

// Build converts the declared option tree into argus options
func (d *Document) Build() ([]*argus.Option, error) {
	return buildAll(d.Options)
}

// ParserConfigs returns the parser configuration the document describes
func (d *Document) ParserConfigs() ([]argus.ConfigureParserFunc, error) {
	options, err := d.Build()
	if err != nil {
		return nil, err
	}
	configs := []argus.ConfigureParserFunc{
		argus.WithProgram(d.Program.Name, d.Program.Version, d.Program.Description),
		argus.WithOptions(options...),
	}
	if d.AutoEnv != "" {
		configs = append(configs, argus.WithAutoEnv(d.AutoEnv))
	}
	return configs, nil
}

// NewParser compiles the document into a parser. extra configs are applied after
// the document's own, so they can override the env resolver or logger.
func (d *Document) NewParser(extra ...argus.ConfigureParserFunc) (*argus.Parser, error) {
	configs, err := d.ParserConfigs()
	if err != nil {
		return nil, err
	}
	return argus.NewParser(append(configs, extra...)...)
}

func buildAll(declared []Option) ([]*argus.Option, error) {
	out := make([]*argus.Option, 0, len(declared))
	for _, o := range declared {
		opt, err := o.build()
		if err != nil {
			return nil, errs.ErrConfiguringOption.WithArgs(o.identity()).Wrap(err)
		}
		out = append(out, opt)
	}
	return out, nil
}

func (o Option) identity() string {
	switch {
	case o.Long != "":
		return o.Long
	case o.Name != "":
		return o.Name
	}
	return o.Short
}

func (o Option) build() (*argus.Option, error) {
	switch o.Kind {
	case "group":
		members, err := buildAll(o.Options)
		if err != nil {
			return nil, err
		}
		return argus.NewGroup(o.Name, members, argus.SetExclusive(o.Exclusive)), nil
	case "subcommand":
		members, err := buildAll(o.Options)
		if err != nil {
			return nil, err
		}
		return argus.NewSubcommand(o.Name, members, argus.WithHelp(o.Help)), nil
	case "positional":
		kind, err := o.valueKind(types.String)
		if err != nil {
			return nil, err
		}
		configs, err := o.configs(kind)
		if err != nil {
			return nil, err
		}
		return argus.NewPositional(o.Name, kind, configs...), nil
	case "", "option":
		kind, err := o.valueKind(types.Flag)
		if err != nil {
			return nil, err
		}
		short, err := o.shortName()
		if err != nil {
			return nil, err
		}
		configs, err := o.configs(kind)
		if err != nil {
			return nil, err
		}
		return argus.NewArg(kind, short, o.Long, configs...), nil
	}
	return nil, errs.ErrInvalidOption.WithArgs(o.identity(), "unknown kind '"+o.Kind+"'")
}

func (o Option) valueKind(fallback types.ValueKind) (types.ValueKind, error) {
	if o.Type == "" {
		return fallback, nil
	}
	return types.ParseValueKind(o.Type)
}

func (o Option) shortName() (rune, error) {
	if o.Short == "" {
		return 0, nil
	}
	if utf8.RuneCountInString(o.Short) != 1 {
		return 0, errs.ErrInvalidName.WithArgs(o.Short, "short")
	}
	r, _ := utf8.DecodeRuneInString(o.Short)
	return r, nil
}

func (o Option) configs(kind types.ValueKind) ([]argus.ConfigureOptionFunc, error) {
	configs := []argus.ConfigureOptionFunc{
		argus.WithHelp(o.Help),
		argus.SetRequired(o.Required),
		argus.SetOptional(o.Optional),
		argus.SetExit(o.Exit),
		argus.SetHidden(o.Hidden),
	}
	if o.Env != "" {
		configs = append(configs, argus.WithEnv(o.Env))
	}
	if o.Default != nil {
		v, err := types.FromNative(kind, o.Default)
		if err != nil {
			return nil, errs.ErrInvalidDefault.WithArgs(o.identity(), fmt.Sprint(o.Default)).Wrap(err)
		}
		configs = append(configs, argus.WithDefault(v))
	}
	if len(o.Validators) > 0 {
		validators, err := validation.ParseSpecs(o.Validators)
		if err != nil {
			return nil, err
		}
		configs = append(configs, argus.WithValidators(validators...))
	}
	if o.Pattern != "" {
		configs = append(configs, argus.WithRegex(o.Pattern, o.PatternDescription))
	}
	if len(o.Choices) > 0 {
		choices := make([]types.Value, 0, len(o.Choices))
		for _, c := range o.Choices {
			v, err := types.FromNative(kind.Element(), c)
			if err != nil {
				return nil, errs.ErrInvalidChoice.WithArgs(o.identity(), fmt.Sprint(c), kind.Element()).Wrap(err)
			}
			choices = append(choices, v)
		}
		configs = append(configs, argus.WithChoices(choices...))
	}
	if o.Separator != "" {
		if utf8.RuneCountInString(o.Separator) != 1 {
			return nil, errs.ErrInvalidOption.WithArgs(o.identity(), "separator must be a single character")
		}
		r, _ := utf8.DecodeRuneInString(o.Separator)
		configs = append(configs, argus.WithSeparator(r))
	}
	configs = append(configs,
		argus.WithRequires(o.Requires...),
		argus.WithRequiresOneOf(o.RequiresOneOf...),
		argus.WithConflicts(o.Conflicts...))

	return configs, nil
}
