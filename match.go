package argus

import (
	"strconv"
	"strings"

	"github.com/napalu/argus/errs"
	"github.com/napalu/argus/internal/parse"
	"github.com/napalu/argus/types"
)

// matcher walks the argument vector left to right against the active scope
type matcher struct {
	p     *Parser
	root  *Context
	ctx   *Context
	state parse.State
}

func newMatcher(p *Parser, root *Context, state parse.State) *matcher {
	return &matcher{p: p, root: root, ctx: root, state: state}
}

// run consumes every token. It stops early only when an exit option is matched.
func (m *matcher) run() *ExitError {
	for m.state.Advance() {
		tok := m.state.CurrentArg()
		switch {
		case m.state.Terminated():
			m.literal(tok)
		case tok == "--":
			m.p.logger.Debug("option parsing terminated", "pos", m.state.Pos())
			m.state.Terminate()
		case strings.HasPrefix(tok, "--"):
			if exit := m.long(tok); exit != nil {
				return exit
			}
		case len(tok) > 1 && tok[0] == '-':
			if exit := m.short(tok); exit != nil {
				return exit
			}
		default:
			m.literal(tok)
		}
	}

	return nil
}

// long handles --name and --name=value
func (m *matcher) long(tok string) *ExitError {
	name, value, attached := strings.Cut(tok[2:], "=")
	c, ok := m.ctx.scope.long.Get(name)
	if !ok {
		m.root.addError(errs.ErrUnknownToken.WithArgs("--" + name))
		return nil
	}

	if !c.opt.TakesValue() {
		if attached {
			m.root.addError(errs.ErrUnexpectedValue.WithArgs(c.qualified))
			return nil
		}
		return m.flag(c)
	}
	if !attached {
		if value, attached = m.nextValue(); !attached {
			m.root.addError(errs.ErrMissingValue.WithArgs(c.qualified))
			return nil
		}
	}
	m.occurrence(c, value)

	return nil
}

// short handles -x, bundled flags such as -abc, and -xvalue / -x=value / -x value
func (m *matcher) short(tok string) *ExitError {
	letters := []rune(tok[1:])
	if _, declared := m.ctx.scope.short[letters[0]]; !declared && looksNumeric(tok) {
		m.literal(tok)
		return nil
	}

	for i, r := range letters {
		c, ok := m.ctx.scope.short[r]
		if !ok {
			m.root.addError(errs.ErrUnknownToken.WithArgs("-" + string(r)))
			return nil
		}
		if !c.opt.TakesValue() {
			if exit := m.flag(c); exit != nil {
				return exit
			}
			continue
		}

		value := string(letters[i+1:])
		if value != "" {
			value = strings.TrimPrefix(value, "=")
		} else {
			var ok bool
			if value, ok = m.nextValue(); !ok {
				m.root.addError(errs.ErrMissingValue.WithArgs(c.qualified))
				return nil
			}
		}
		m.occurrence(c, value)
		return nil
	}

	return nil
}

// literal assigns a non-option token to a subcommand or the next free positional.
// A subcommand name always wins over a positional.
func (m *matcher) literal(tok string) {
	if sub, ok := m.ctx.scope.subcommands.Get(tok); ok {
		child := newContext(m.p, sub.sub, m.ctx)
		m.ctx.child = child
		m.ctx = child
		m.p.logger.Debug("subcommand activated", "name", sub.qualified, "pos", m.state.Pos())
		return
	}

	positionals := m.ctx.scope.positionals
	if m.ctx.nextPositional < len(positionals) {
		c := positionals[m.ctx.nextPositional]
		m.ctx.nextPositional++
		m.occurrence(c, tok)
		return
	}

	m.root.addError(errs.ErrUnexpectedPositional.WithArgs(tok))
}

func (m *matcher) flag(c *compiledOption) *ExitError {
	e := m.ctx.entry(c)
	e.value = types.NewFlag()
	e.set = true
	e.source = SourceCli
	if c.opt.Flags.Has(FlagExit) {
		m.p.logger.Debug("exit requested", "option", c.qualified, "ignored", m.state.Remaining())
		return &ExitError{Option: c.name, Path: m.ctx.Path()}
	}
	return nil
}

func (m *matcher) occurrence(c *compiledOption, raw string) {
	m.p.logger.Debug("matched", "option", c.qualified, "value", raw, "pos", m.state.Pos())
	if err := m.p.accept(m.ctx.entry(c), raw, SourceCli); err != nil {
		m.root.addError(err)
	}
}

// nextValue takes the following token as an option value. A "--" is never a value:
// it is consumed as the terminator.
func (m *matcher) nextValue() (string, bool) {
	value, ok := m.state.TakeNext()
	if ok && value == "--" {
		m.p.logger.Debug("option parsing terminated", "pos", m.state.Pos())
		m.state.Terminate()
		return "", false
	}
	return value, ok
}

// looksNumeric reports whether a dash-prefixed token is a negative decimal number
// such as -5, -0.5 or -.5
func looksNumeric(tok string) bool {
	digits := tok[1:]
	if strings.HasPrefix(digits, ".") {
		digits = digits[1:]
	}
	if digits == "" || digits[0] < '0' || digits[0] > '9' {
		return false
	}
	if strings.ContainsAny(digits, "xXpP") {
		return false
	}
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}
