package argus

import (
	"github.com/napalu/argus/errs"
)

// validateValues runs the validator chain of every option set on the command line
// once, on its final accumulated value
func (p *Parser) validateValues(ctx *Context) {
	for pair := ctx.entries.Oldest(); pair != nil; pair = pair.Next() {
		e := pair.Value
		if e.set && !e.failed && e.source == SourceCli {
			if err := validateChain(e); err != nil {
				ctx.addError(err)
			}
		}
	}
}

// validateChain stops at the first failing validator
func validateChain(e *entry) error {
	for _, v := range e.opt.opt.Validators {
		if err := v.Validate(e.value); err != nil {
			return errs.ErrValidatorFailure.WithArgs(e.opt.qualified, e.value.String(), v.Description()).Wrap(err)
		}
	}
	return nil
}
