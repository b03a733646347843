package argus

import (
	"strings"

	"github.com/napalu/argus/errs"
	"github.com/napalu/argus/types"
)

// accept runs one raw occurrence through the pre-validator, coercion and choices,
// then folds it into the entry: arrays append, maps overwrite by key, scalars take
// the last occurrence. The entry counts as set even when the occurrence is
// rejected so that a bad value is not also reported as missing.
func (p *Parser) accept(e *entry, raw string, src Source) error {
	c := e.opt
	kind := c.opt.ValueKind
	if e.value.Kind() != kind || e.source != src {
		e.value = types.Empty(kind)
	}
	e.set = true
	e.source = src

	pieces := []string{raw}
	if c.opt.Separator != 0 {
		pieces = strings.Split(raw, string(c.opt.Separator))
	}
	for _, piece := range pieces {
		if err := p.acceptPiece(e, piece); err != nil {
			e.failed = true
			return err
		}
	}

	return nil
}

func (p *Parser) acceptPiece(e *entry, raw string) error {
	c := e.opt
	kind := c.opt.ValueKind
	if pre := c.opt.PreValidator; pre != nil {
		if err := pre.Validate(raw); err != nil {
			return errs.ErrValidatorFailure.WithArgs(c.qualified, raw, pre.Description()).Wrap(err)
		}
	}

	switch {
	case kind.IsMap():
		key, v, err := types.ParseEntry(kind, raw)
		if err != nil {
			return errs.ErrCoercion.WithArgs(c.qualified, raw, kind).Wrap(err)
		}
		if err = c.checkChoices(v); err != nil {
			return err
		}
		return e.value.Put(key, v)
	case kind.IsArray():
		v, err := types.Parse(kind, raw)
		if err != nil {
			return errs.ErrCoercion.WithArgs(c.qualified, raw, kind.Element()).Wrap(err)
		}
		if err = c.checkChoices(v); err != nil {
			return err
		}
		return e.value.Append(v)
	default:
		v, err := types.Parse(kind, raw)
		if err != nil {
			return errs.ErrCoercion.WithArgs(c.qualified, raw, kind).Wrap(err)
		}
		if err = c.checkChoices(v); err != nil {
			return err
		}
		e.value = v
	}

	return nil
}

// checkChoices verifies every scalar member of v is one of the declared choices
func (c *compiledOption) checkChoices(v types.Value) error {
	if len(c.opt.Choices) == 0 {
		return nil
	}
	for _, elem := range v.Elements() {
		allowed := false
		for _, choice := range c.opt.Choices {
			if choice.Equal(elem) {
				allowed = true
				break
			}
		}
		if !allowed {
			return errs.ErrChoiceViolation.WithArgs(c.qualified, elem.String(), c.choiceList())
		}
	}
	return nil
}

func (c *compiledOption) choiceList() string {
	parts := make([]string, len(c.opt.Choices))
	for i, choice := range c.opt.Choices {
		parts[i] = choice.String()
	}
	return strings.Join(parts, ", ")
}
