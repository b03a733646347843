package argus

import (
	"strings"

	"github.com/google/uuid"
	"github.com/napalu/argus/errs"
)

// resolveConstraints checks required options, requires and conflicts relations and
// exclusive groups for one activated scope. Values from the environment and from
// defaults count as set. Only options the user supplied (command line or
// environment) trigger their own requires and conflicts rules.
func (p *Parser) resolveConstraints(ctx *Context) {
	reported := make(map[[2]uuid.UUID]bool)

	for pair := ctx.entries.Oldest(); pair != nil; pair = pair.Next() {
		e := pair.Value
		c := e.opt
		if !e.set {
			if c.opt.IsRequired() {
				ctx.addError(errs.ErrRequiredMissing.WithArgs(c.qualified))
			}
			continue
		}
		if e.source == SourceDefault {
			continue
		}

		for _, dep := range c.requires {
			if !ctx.isSet(dep) {
				ctx.addError(errs.ErrDependencyMissing.WithArgs(c.qualified, "'"+dep.qualified+"'"))
			}
		}
		if len(c.requiresOneOf) > 0 && !ctx.anySet(c.requiresOneOf) {
			ctx.addError(errs.ErrDependencyMissing.WithArgs(c.qualified, "one of "+qualifiedNames(c.requiresOneOf)))
		}
		for _, other := range c.conflicts {
			if !ctx.isSet(other) {
				continue
			}
			key := [2]uuid.UUID{c.id, other.id}
			if c.id.String() > other.id.String() {
				key = [2]uuid.UUID{other.id, c.id}
			}
			if reported[key] {
				continue
			}
			reported[key] = true
			ctx.addError(errs.ErrConflictPresent.WithArgs(c.qualified, other.qualified))
		}
	}

	for _, g := range ctx.scope.groups {
		if !g.exclusive {
			continue
		}
		var set []*compiledOption
		for _, m := range g.members {
			if ctx.isSet(m) {
				set = append(set, m)
			}
		}
		if len(set) > 1 {
			ctx.addError(errs.ErrExclusiveGroupViolation.WithArgs(g.name, qualifiedNames(set)))
		}
	}
}

func (c *Context) isSet(o *compiledOption) bool {
	e := c.entry(o)
	return e != nil && e.set
}

func (c *Context) anySet(options []*compiledOption) bool {
	for _, o := range options {
		if c.isSet(o) {
			return true
		}
	}
	return false
}

func qualifiedNames(options []*compiledOption) string {
	names := make([]string, len(options))
	for i, o := range options {
		names[i] = "'" + o.qualified + "'"
	}
	return strings.Join(names, ", ")
}
