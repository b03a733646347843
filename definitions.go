package argus

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/iancoleman/strcase"
	"github.com/napalu/argus/env"
	"github.com/napalu/argus/types"
	"github.com/napalu/argus/validation"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// MaxValidators is the number of validators a single option may declare
const MaxValidators = 4

// Kind distinguishes the four kinds of schema entries
type Kind int

const (
	KindOption     Kind = iota // KindOption is a named option matched by -s or --long
	KindPositional             // KindPositional is matched by position
	KindGroup                  // KindGroup partitions sibling options; it holds no value
	KindSubcommand             // KindSubcommand carries its own nested schema
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case KindOption:
		return "option"
	case KindPositional:
		return "positional"
	case KindGroup:
		return "group"
	case KindSubcommand:
		return "subcommand"
	default:
		return "unknown"
	}
}

// Flags is a bit-set of option behaviors
type Flags uint32

const (
	FlagRequired  Flags = 1 << iota // FlagRequired - the option must be set after env and default resolution
	FlagOptional                    // FlagOptional - a positional which may be omitted
	FlagExclusive                   // FlagExclusive - at most one member of the group may be set
	FlagExit                        // FlagExit - matching the option ends parsing with an ExitError
	FlagHidden                      // FlagHidden - the option is omitted from dumps and help
)

// Has reports whether all bits of f are set
func (fl Flags) Has(f Flags) bool {
	return fl&f == f
}

// Source records where the value of an option came from
type Source int

const (
	SourceUnset   Source = iota // SourceUnset - the option holds no value
	SourceCli                   // SourceCli - the value was given on the command line
	SourceEnv                   // SourceEnv - the value was read from an environment variable
	SourceDefault               // SourceDefault - the declared default was installed
)

// String returns the string representation of a Source
func (s Source) String() string {
	switch s {
	case SourceCli:
		return "cli"
	case SourceEnv:
		return "env"
	case SourceDefault:
		return "default"
	default:
		return "unset"
	}
}

// MarshalText lets Source render by name in JSON and YAML output
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Program holds the name, version and description triple shown by help and version
// collaborators
type Program struct {
	Name        string
	Version     string
	Description string
}

// Action is executed by Context.Run for the deepest activated subcommand
type Action func(ctx *Context) error

// ConfigureParserFunc is used when defining Parser options
type ConfigureParserFunc func(parser *Parser, err *error)

// ConfigureOptionFunc is used when defining Option attributes
type ConfigureOptionFunc func(option *Option, err *error)

// NameConversionFunc converts an option path to another naming convention
type NameConversionFunc func(string) string

// Built-in conversion strategies
var (
	// ToScreamingSnake converts a string to screaming snake case "MY_OPTION_NAME"
	ToScreamingSnake = func(s string) string {
		return strcase.ToScreamingSnake(s)
	}

	// ToLowerCase converts a string to lower case "myoptionname"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}

	DefaultEnvNameConverter = ToScreamingSnake
)

// Option is one schema entry. Options are plain data: a Parser compiles them once
// and never modifies them.
type Option struct {
	Kind          Kind
	Short         rune
	Long          string
	Name          string
	ValueKind     types.ValueKind
	Help          string
	Env           string
	Default       *types.Value
	Validators    []validation.Validator
	PreValidator  validation.PreValidator
	Requires      []string
	RequiresOneOf []string
	Conflicts     []string
	Flags         Flags
	Choices       []types.Value
	Options       []*Option
	Separator     rune
	Action        Action
	configErr     error
}

// Parser holds a compiled, immutable schema. A Parser may be shared by concurrent
// calls to Parse.
type Parser struct {
	program          Program
	options          []*Option
	resolver         env.Resolver
	autoEnv          bool
	envPrefix        string
	envNameConverter NameConversionFunc
	logger           *log.Logger
	root             *scope
}

// scope is the compiled form of one schema level: the root or a subcommand
type scope struct {
	name        string
	path        []string
	parent      *scope
	owner       *compiledOption
	options     []*compiledOption
	positionals []*compiledOption
	groups      []*compiledGroup
	long        *orderedmap.OrderedMap[string, *compiledOption]
	short       map[rune]*compiledOption
	names       *orderedmap.OrderedMap[string, *compiledOption]
	subcommands *orderedmap.OrderedMap[string, *compiledOption]
}

// compiledOption is an Option bound to its scope with all references resolved
type compiledOption struct {
	id            uuid.UUID
	opt           Option
	name          string
	qualified     string
	env           string
	scope         *scope
	group         *compiledGroup
	requires      []*compiledOption
	requiresOneOf []*compiledOption
	conflicts     []*compiledOption
	sub           *scope
}

type compiledGroup struct {
	name      string
	exclusive bool
	members   []*compiledOption
}
