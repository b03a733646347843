package argus

import (
	"github.com/napalu/argus/errs"
	"github.com/napalu/argus/types"
)

// resolveEnvAndDefaults fills options left unset by the command line: first from a
// present, non-empty environment variable, validated like a command-line value,
// then from the declared default
func (p *Parser) resolveEnvAndDefaults(ctx *Context) {
	for pair := ctx.entries.Oldest(); pair != nil; pair = pair.Next() {
		e := pair.Value
		if e.set {
			continue
		}
		c := e.opt

		if c.env != "" {
			if raw := p.resolver.Get(c.env); raw != "" {
				p.logger.Debug("env fallback", "option", c.qualified, "var", c.env)
				if err := p.acceptEnv(e, raw); err != nil {
					ctx.addError(err)
				}
				if e.set {
					continue
				}
			}
		}

		if c.opt.Default != nil {
			p.logger.Debug("default installed", "option", c.qualified, "value", c.opt.Default.String())
			e.value = c.opt.Default.Clone()
			e.set = true
			e.source = SourceDefault
		}
	}
}

// acceptEnv coerces and validates an environment value. A flag reads its variable
// as a boolean and stays unset when the variable is false.
func (p *Parser) acceptEnv(e *entry, raw string) error {
	c := e.opt
	if c.opt.ValueKind == types.Flag {
		on, err := types.ParseBool(raw)
		if err != nil {
			e.set = true
			e.failed = true
			e.source = SourceEnv
			return errs.ErrCoercion.WithArgs(c.qualified, raw, types.Flag).Wrap(err)
		}
		if on {
			e.value = types.NewFlag()
			e.set = true
			e.source = SourceEnv
		}
		return nil
	}

	if err := p.accept(e, raw, SourceEnv); err != nil {
		return err
	}
	if err := validateChain(e); err != nil {
		e.failed = true
		return err
	}
	return nil
}
