package argus

import (
	"strings"

	"github.com/google/uuid"
	"github.com/napalu/argus/errs"
	"github.com/napalu/argus/types"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// entry is the per-option state of one parse
type entry struct {
	opt    *compiledOption
	value  types.Value
	set    bool
	failed bool
	source Source
}

// Context is the outcome of a successful parse: one Context for the root schema
// and one for each activated subcommand, linked from parent to child. Values are
// owned by the Context and returned as copies. Release tears the whole chain down.
type Context struct {
	parser         *Parser
	scope          *scope
	parent         *Context
	child          *Context
	entries        *orderedmap.OrderedMap[uuid.UUID, *entry]
	nextPositional int
	diagnostics    []error
	released       bool
}

func newContext(p *Parser, s *scope, parent *Context) *Context {
	c := &Context{
		parser:  p,
		scope:   s,
		parent:  parent,
		entries: orderedmap.New[uuid.UUID, *entry](len(s.options)),
	}
	for _, o := range s.options {
		c.entries.Set(o.id, &entry{opt: o})
	}
	return c
}

// entry returns the state of c, which must belong to this Context's scope or an ancestor's
func (c *Context) entry(o *compiledOption) *entry {
	for ctx := c; ctx != nil; ctx = ctx.parent {
		if ctx.scope == o.scope {
			e, _ := ctx.entries.Get(o.id)
			return e
		}
	}
	return nil
}

func (c *Context) rootContext() *Context {
	r := c
	for r.parent != nil {
		r = r.parent
	}
	return r
}

func (c *Context) addError(err error) {
	r := c.rootContext()
	r.diagnostics = append(r.diagnostics, err)
}

func (c *Context) isReleased() bool {
	return c.rootContext().released
}

// Name returns the subcommand this Context belongs to, or "" for the root
func (c *Context) Name() string {
	return c.scope.name
}

// Program returns the program triple of the parser which produced the Context
func (c *Context) Program() Program {
	return c.parser.program
}

// Path returns the names of the activated subcommands, outermost first. It is empty
// when no subcommand was matched.
func (c *Context) Path() []string {
	var path []string
	for ctx := c.rootContext().child; ctx != nil; ctx = ctx.child {
		path = append(path, ctx.scope.name)
	}
	return path
}

// Subcommand returns the Context of the subcommand activated directly below this one, or nil
func (c *Context) Subcommand() *Context {
	return c.child
}

// Active returns the Context of the deepest activated subcommand, or the root when none was matched
func (c *Context) Active() *Context {
	ctx := c.rootContext()
	for ctx.child != nil {
		ctx = ctx.child
	}
	return ctx
}

// Run executes the Action of the deepest activated subcommand with that subcommand's Context
func (c *Context) Run() error {
	if c.isReleased() {
		return errs.ErrReleased
	}
	active := c.Active()
	if active.scope.owner == nil || active.scope.owner.opt.Action == nil {
		return errs.ErrNoAction.WithArgs(strings.Join(active.Path(), " "))
	}
	return active.scope.owner.opt.Action(active)
}

// find resolves name to an entry. Dotted names address options of activated
// subcommands (add.force); plain names are looked up in this Context and then in
// its ancestors.
func (c *Context) find(name string) (*entry, error) {
	if c.isReleased() {
		return nil, errs.ErrReleased
	}

	ctx := c
	parts := strings.Split(name, ".")
	for _, sub := range parts[:len(parts)-1] {
		if ctx.child != nil && ctx.child.scope.name == sub {
			ctx = ctx.child
			continue
		}
		if _, declared := ctx.scope.subcommands.Get(sub); declared {
			return nil, errs.ErrOptionNotSet.WithArgs(name)
		}
		return nil, errs.ErrOptionNotFound.WithArgs(name)
	}

	leaf := parts[len(parts)-1]
	for ; ctx != nil; ctx = ctx.parent {
		if o, ok := ctx.scope.names.Get(leaf); ok {
			e, _ := ctx.entries.Get(o.id)
			return e, nil
		}
		if len(parts) > 1 {
			break
		}
	}

	return nil, errs.ErrOptionNotFound.WithArgs(name)
}

// Get returns a copy of the value of the named option
func (c *Context) Get(name string) (types.Value, error) {
	e, err := c.find(name)
	if err != nil {
		return types.Value{}, err
	}
	if !e.set {
		return types.Value{}, errs.ErrOptionNotSet.WithArgs(name)
	}
	return e.value.Clone(), nil
}

// IsSet reports whether the named option received a value from the command line,
// the environment or its default
func (c *Context) IsSet(name string) bool {
	e, err := c.find(name)
	return err == nil && e.set
}

// Source reports where the value of the named option came from
func (c *Context) Source(name string) Source {
	e, err := c.find(name)
	if err != nil || !e.set {
		return SourceUnset
	}
	return e.source
}

// Bool returns the value of a Flag or Bool option. An unset Flag reads as false.
func (c *Context) Bool(name string) (bool, error) {
	e, err := c.find(name)
	if err != nil {
		return false, err
	}
	if !e.set {
		if e.opt.opt.ValueKind == types.Flag {
			return false, nil
		}
		return false, errs.ErrOptionNotSet.WithArgs(name)
	}
	return e.value.AsBool()
}

// String returns the value of a String option
func (c *Context) String(name string) (string, error) {
	v, err := c.Get(name)
	if err != nil {
		return "", err
	}
	return v.AsString()
}

// Int returns the value of an Int option
func (c *Context) Int(name string) (int64, error) {
	v, err := c.Get(name)
	if err != nil {
		return 0, err
	}
	return v.AsInt()
}

// Float returns the value of a Float option
func (c *Context) Float(name string) (float64, error) {
	v, err := c.Get(name)
	if err != nil {
		return 0, err
	}
	return v.AsFloat()
}

// Strings returns the elements of a StringArray option
func (c *Context) Strings(name string) ([]string, error) {
	return ArrayOf[string](c, name)
}

// Ints returns the elements of an IntArray option
func (c *Context) Ints(name string) ([]int64, error) {
	return ArrayOf[int64](c, name)
}

// Floats returns the elements of a FloatArray option
func (c *Context) Floats(name string) ([]float64, error) {
	return ArrayOf[float64](c, name)
}

// Scalar is the set of Go types an option element converts to
type Scalar interface {
	bool | string | int64 | float64
}

// ArrayOf returns the elements of an array option as a new slice
func ArrayOf[T Scalar](c *Context, name string) ([]T, error) {
	v, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	out, ok := v.Interface().([]T)
	if !ok {
		var zero T
		return nil, errs.ErrWrongKind.WithArgs(v.Kind(), kindOfScalar(zero))
	}
	return out, nil
}

// MapOf returns the entries of a map option as a new ordered map, keys in first
// occurrence order
func MapOf[T Scalar](c *Context, name string) (*orderedmap.OrderedMap[string, T], error) {
	v, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	var zero T
	pairs, err := v.Pairs()
	if err != nil {
		return nil, errs.ErrWrongKind.WithArgs(v.Kind(), "map of "+kindOfScalar(zero).String())
	}
	out := orderedmap.New[string, T](len(pairs))
	for _, p := range pairs {
		t, ok := p.Value.Interface().(T)
		if !ok {
			return nil, errs.ErrWrongKind.WithArgs(v.Kind(), "map of "+kindOfScalar(zero).String())
		}
		out.Set(p.Key, t)
	}
	return out, nil
}

func kindOfScalar(v any) types.ValueKind {
	switch v.(type) {
	case bool:
		return types.Bool
	case string:
		return types.String
	case int64:
		return types.Int
	case float64:
		return types.Float
	}
	return types.Invalid
}

// Release frees every value owned by the Context chain and makes it inert. It may
// be called on any Context of the chain, exactly once; a second call returns
// errs.ErrReleased.
func (c *Context) Release() error {
	r := c.rootContext()
	if r.released {
		return errs.ErrReleased
	}
	for ctx := r; ctx != nil; ctx = ctx.child {
		for pair := ctx.entries.Oldest(); pair != nil; pair = pair.Next() {
			pair.Value.value.Release()
		}
	}
	r.released = true

	return nil
}
