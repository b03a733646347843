package argus

import (
	"slices"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/napalu/argus/errs"
	"github.com/napalu/argus/types"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// compile turns the declared options into an immutable scope tree. Names are
// registered for every scope first so that references can then be resolved
// against ancestor scopes.
func (p *Parser) compile() (*scope, error) {
	root := newScope("", nil, nil)
	if err := p.compileScope(root, p.options); err != nil {
		return nil, errs.ErrSchema.Wrap(err)
	}
	if err := p.resolveReferences(root); err != nil {
		return nil, errs.ErrSchema.Wrap(err)
	}
	if err := p.checkDefaults(root); err != nil {
		return nil, errs.ErrSchema.Wrap(err)
	}

	return root, nil
}

func newScope(name string, parent *scope, owner *compiledOption) *scope {
	s := &scope{
		name:        name,
		parent:      parent,
		owner:       owner,
		long:        orderedmap.New[string, *compiledOption](),
		short:       make(map[rune]*compiledOption),
		names:       orderedmap.New[string, *compiledOption](),
		subcommands: orderedmap.New[string, *compiledOption](),
	}
	if parent != nil {
		s.path = append(slices.Clone(parent.path), name)
	}
	return s
}

// positionalRun enforces that positionals are declared contiguously, required ones first
type positionalRun struct {
	seen        bool
	ended       bool
	sawOptional bool
}

func (r *positionalRun) interrupt() {
	if r.seen {
		r.ended = true
	}
}

func (r *positionalRun) add(o *Option) error {
	if r.ended {
		return errs.ErrPositionalOrder.WithArgs(o.Name, "positionals must be declared contiguously")
	}
	if o.IsRequired() && r.sawOptional {
		return errs.ErrPositionalOrder.WithArgs(o.Name, "a required positional cannot follow an optional one")
	}
	r.seen = true
	if !o.IsRequired() {
		r.sawOptional = true
	}
	return nil
}

func (p *Parser) compileScope(s *scope, declared []*Option) error {
	run := &positionalRun{}
	for _, o := range declared {
		if o == nil {
			continue
		}
		if o.configErr != nil {
			return errs.ErrConfiguringOption.WithArgs(o.Identity()).Wrap(o.configErr)
		}

		var err error
		switch o.Kind {
		case KindGroup:
			err = p.compileGroup(s, o, run)
		case KindSubcommand:
			run.interrupt()
			err = p.compileSubcommand(s, o)
		case KindOption, KindPositional:
			_, err = p.compileOption(s, o, nil, run)
		default:
			err = errs.ErrInvalidOption.WithArgs(o.Identity(), "unknown kind")
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (p *Parser) compileGroup(s *scope, o *Option, run *positionalRun) error {
	if o.Name == "" {
		return errs.ErrMissingName.WithArgs(KindGroup)
	}
	for _, g := range s.groups {
		if g.name == o.Name {
			return errs.ErrDuplicateName.WithArgs(o.Name, o.Name, g.name)
		}
	}

	g := &compiledGroup{name: o.Name, exclusive: o.Flags.Has(FlagExclusive)}
	for _, m := range o.Options {
		if m == nil {
			continue
		}
		if m.configErr != nil {
			return errs.ErrConfiguringOption.WithArgs(m.Identity()).Wrap(m.configErr)
		}
		switch m.Kind {
		case KindGroup:
			return errs.ErrInvalidGroup.WithArgs(g.name, "groups cannot be nested")
		case KindSubcommand:
			return errs.ErrInvalidGroup.WithArgs(g.name, "subcommand '"+m.Name+"' cannot be a group member")
		case KindPositional:
			if g.exclusive {
				return errs.ErrInvalidGroup.WithArgs(g.name, "an exclusive group may only contain named options")
			}
		}
		c, err := p.compileOption(s, m, g, run)
		if err != nil {
			return err
		}
		g.members = append(g.members, c)
	}
	s.groups = append(s.groups, g)

	return nil
}

func (p *Parser) compileSubcommand(s *scope, o *Option) error {
	if o.Name == "" {
		return errs.ErrMissingName.WithArgs(KindSubcommand)
	}
	if !validName(o.Name) {
		return errs.ErrInvalidName.WithArgs(o.Name, KindSubcommand)
	}
	if _, dup := s.subcommands.Get(o.Name); dup {
		return errs.ErrSubcommandCollision.WithArgs(qualify(s.path, o.Name))
	}

	c := &compiledOption{
		id:        uuid.New(),
		opt:       cloneOption(o),
		name:      o.Name,
		qualified: qualify(s.path, o.Name),
		scope:     s,
	}
	c.sub = newScope(o.Name, s, c)
	s.subcommands.Set(o.Name, c)

	return p.compileScope(c.sub, o.Options)
}

func (p *Parser) compileOption(s *scope, o *Option, g *compiledGroup, run *positionalRun) (*compiledOption, error) {
	name := o.Identity()
	switch o.Kind {
	case KindOption:
		if o.Short == 0 && o.Long == "" {
			return nil, errs.ErrMissingName.WithArgs(KindOption)
		}
		if o.Short != 0 && !validShort(o.Short) {
			return nil, errs.ErrInvalidName.WithArgs(string(o.Short), "short")
		}
		if o.Long != "" && !validName(o.Long) {
			return nil, errs.ErrInvalidName.WithArgs(o.Long, "long")
		}
		run.interrupt()
	case KindPositional:
		if name == "" {
			return nil, errs.ErrMissingName.WithArgs(KindPositional)
		}
		if !validName(name) {
			return nil, errs.ErrInvalidName.WithArgs(name, KindPositional)
		}
		if o.ValueKind == types.Flag || o.ValueKind.IsCollection() {
			return nil, errs.ErrInvalidOption.WithArgs(name, "a positional holds a single scalar value")
		}
		if err := run.add(o); err != nil {
			return nil, err
		}
	}

	if prev, dup := s.names.Get(name); dup {
		return nil, errs.ErrDuplicateName.WithArgs(name, name, prev.name)
	}
	c := &compiledOption{
		id:        uuid.New(),
		opt:       cloneOption(o),
		name:      name,
		qualified: qualify(s.path, name),
		scope:     s,
		group:     g,
	}
	if o.Long != "" {
		if prev, dup := s.long.Get(o.Long); dup {
			return nil, errs.ErrDuplicateName.WithArgs("--"+o.Long, name, prev.name)
		}
		s.long.Set(o.Long, c)
	}
	if o.Short != 0 {
		if prev, dup := s.short[o.Short]; dup {
			return nil, errs.ErrDuplicateName.WithArgs("-"+string(o.Short), name, prev.name)
		}
		s.short[o.Short] = c
	}
	if err := checkValueRules(c); err != nil {
		return nil, err
	}

	c.env = p.envName(c)
	s.names.Set(name, c)
	s.options = append(s.options, c)
	if o.Kind == KindPositional {
		s.positionals = append(s.positionals, c)
	}

	return c, nil
}

// checkValueRules verifies the value-related attributes of an option are
// consistent with its value kind
func checkValueRules(c *compiledOption) error {
	o := &c.opt
	k := o.ValueKind
	switch {
	case !k.Valid():
		return errs.ErrInvalidOption.WithArgs(c.name, "no value kind declared")
	case o.Flags.Has(FlagExit) && k != types.Flag:
		return errs.ErrInvalidOption.WithArgs(c.name, "only flags can request exit")
	case o.Action != nil:
		return errs.ErrInvalidOption.WithArgs(c.name, "only subcommands take an action")
	case len(o.Options) > 0:
		return errs.ErrInvalidOption.WithArgs(c.name, "only groups and subcommands contain options")
	case o.Separator != 0 && !k.IsCollection():
		return errs.ErrInvalidOption.WithArgs(c.name, "a separator only applies to array and map options")
	case o.Separator == '=' && k.IsMap():
		return errs.ErrInvalidOption.WithArgs(c.name, "'=' separates map keys from values")
	case k == types.Flag && (o.PreValidator != nil || len(o.Choices) > 0 || o.Default != nil):
		return errs.ErrInvalidOption.WithArgs(c.name, "a flag takes no pre-validator, choices or default")
	case len(o.Validators) > MaxValidators:
		return errs.ErrTooManyValidators.WithArgs(c.name, len(o.Validators), MaxValidators)
	}

	for _, v := range o.Validators {
		if v == nil {
			return errs.ErrInvalidOption.WithArgs(c.name, "nil validator")
		}
		if !v.Supports(k) {
			return errs.ErrUnsupportedValidator.WithArgs(c.name, v.Name(), k)
		}
	}
	for _, choice := range o.Choices {
		if choice.Kind() != k.Element() {
			return errs.ErrInvalidChoice.WithArgs(c.name, choice.String(), k.Element())
		}
	}
	if o.Default != nil && o.Default.Kind() != k {
		return errs.ErrInvalidDefault.WithArgs(c.name, o.Default.String()).
			Wrap(errs.ErrWrongKind.WithArgs(o.Default.Kind(), k))
	}

	return nil
}

// resolveReferences binds requires and conflicts names to options of the same or
// an ancestor scope
func (p *Parser) resolveReferences(s *scope) error {
	for _, c := range s.options {
		var err error
		if c.requires, err = s.resolveAll(c, "requires", c.opt.Requires); err != nil {
			return err
		}
		if c.requiresOneOf, err = s.resolveAll(c, "requires-one-of", c.opt.RequiresOneOf); err != nil {
			return err
		}
		if c.conflicts, err = s.resolveAll(c, "conflicts", c.opt.Conflicts); err != nil {
			return err
		}
	}
	for pair := s.subcommands.Oldest(); pair != nil; pair = pair.Next() {
		if err := p.resolveReferences(pair.Value.sub); err != nil {
			return err
		}
	}

	return nil
}

func (s *scope) resolveAll(c *compiledOption, relation string, names []string) ([]*compiledOption, error) {
	var out []*compiledOption
	for _, name := range names {
		target, ok := s.lookup(name)
		if !ok {
			return nil, errs.ErrUnresolvedReference.WithArgs(c.qualified, relation, name)
		}
		if target == c {
			return nil, errs.ErrSelfReference.WithArgs(c.qualified, relation)
		}
		if !slices.Contains(out, target) {
			out = append(out, target)
		}
	}
	return out, nil
}

// lookup finds an option by identity in s or the nearest ancestor declaring it
func (s *scope) lookup(name string) (*compiledOption, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if c, ok := sc.names.Get(name); ok {
			return c, true
		}
	}
	return nil, false
}

// checkDefaults runs declared defaults through choices and the validator chain once,
// so they never need validating at parse time
func (p *Parser) checkDefaults(s *scope) error {
	for _, c := range s.options {
		d := c.opt.Default
		if d == nil {
			continue
		}
		if err := c.checkChoices(*d); err != nil {
			return errs.ErrInvalidDefault.WithArgs(c.qualified, d.String()).Wrap(err)
		}
		for _, v := range c.opt.Validators {
			if err := v.Validate(*d); err != nil {
				return errs.ErrInvalidDefault.WithArgs(c.qualified, d.String()).Wrap(err)
			}
		}
	}
	for pair := s.subcommands.Oldest(); pair != nil; pair = pair.Next() {
		if err := p.checkDefaults(pair.Value.sub); err != nil {
			return err
		}
	}

	return nil
}

func (p *Parser) envName(c *compiledOption) string {
	if c.opt.Env != "" {
		return c.opt.Env
	}
	if !p.autoEnv || c.opt.Kind != KindOption || c.opt.Long == "" {
		return ""
	}
	var parts []string
	if p.envPrefix != "" {
		parts = append(parts, p.envPrefix)
	}
	parts = append(parts, c.scope.path...)
	parts = append(parts, c.opt.Long)

	return p.envNameConverter(strings.Join(parts, "_"))
}

func cloneOption(o *Option) Option {
	cp := *o
	cp.Validators = slices.Clone(o.Validators)
	cp.Requires = slices.Clone(o.Requires)
	cp.RequiresOneOf = slices.Clone(o.RequiresOneOf)
	cp.Conflicts = slices.Clone(o.Conflicts)
	cp.Choices = slices.Clone(o.Choices)
	if o.Default != nil {
		d := o.Default.Clone()
		cp.Default = &d
	}
	if o.Kind == KindSubcommand || o.Kind == KindGroup {
		cp.Options = nil
	}
	cp.configErr = nil

	return cp
}

func qualify(path []string, name string) string {
	if len(path) == 0 {
		return name
	}
	return strings.Join(path, ".") + "." + name
}

func validShort(r rune) bool {
	return r != '-' && r != '=' && unicode.IsPrint(r) && !unicode.IsSpace(r)
}

// validName accepts long option, positional and subcommand names. Dots are
// reserved for qualified lookups.
func validName(name string) bool {
	return name != "" && !strings.HasPrefix(name, "-") && !strings.ContainsAny(name, "=. \t\n")
}
