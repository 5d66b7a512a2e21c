package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/dshills/torq/internal/settings"
	"github.com/dshills/torq/internal/value"
)

// evalSuffix on a setting name runs the value as a shell command and
// uses its stdout instead.
const evalSuffix = ":eval"

// splitOperator detects a leading delta operator in a value argument.
func splitOperator(arg string) (op value.Op, rest string, ok bool) {
	if len(arg) < 3 {
		return 0, arg, false
	}
	switch arg[:2] {
	case "+=":
		return value.Add, arg[2:], true
	case "-=":
		return value.Subtract, arg[2:], true
	}
	return 0, arg, false
}

// resolveValue turns the raw value arguments of a set operation into
// input for the settings registry: it strips the ":eval" suffix and
// runs the shell command, and applies delta operators against the
// current value of numeric settings. A delta operator on a non-numeric
// setting is not applied; the literal argument passes through to the
// write unchanged.
func (c *Context) resolveValue(ctx context.Context, name string, args []string) (base string, raw any, err error) {
	base, eval := strings.CutSuffix(name, evalSuffix)
	if !c.Settings.Has(base) {
		return base, nil, fmt.Errorf("%w: %s", settings.ErrNotFound, base)
	}

	// Operators and eval listing need the current value; remote values
	// must be fresh for that.
	if c.Settings.IsRemote(base) {
		if err := c.Settings.Update(ctx); err != nil {
			return base, nil, err
		}
	}

	if eval {
		out, err := evalShell(ctx, strings.Join(args, " "))
		if err != nil {
			return base, nil, err
		}
		args = []string{out}
	}

	if len(args) == 1 {
		if op, deltaStr, ok := splitOperator(args[0]); ok {
			return c.applyOperator(base, op, deltaStr, args[0])
		}
		return base, args[0], nil
	}
	return base, args, nil
}

// applyOperator computes current <op> delta for a numeric setting.
// Non-numeric settings get the unmodified literal instead. An infinite
// current value counts as zero. A result outside the setting's bounds
// is recomputed without bounds so the error can name it.
func (c *Context) applyOperator(base string, op value.Op, deltaStr, literal string) (string, any, error) {
	current, err := c.Settings.Get(base)
	if err != nil {
		return base, nil, err
	}
	num, ok := current.(value.Number)
	if !ok {
		return base, literal, nil
	}

	delta, err := value.NewFloat(deltaStr, num.Unbounded().Config())
	if err != nil {
		return base, nil, err
	}

	if num.IsInf() {
		if num, err = value.IntOf(0, num.Config()); err != nil {
			return base, nil, err
		}
	}

	result, err := op.Apply(num, delta)
	if err != nil {
		if unbounded, uerr := op.Apply(num.Unbounded(), delta); uerr == nil {
			return base, nil, fmt.Errorf("%s = %s: %w", base, unbounded.String(), err)
		}
		return base, nil, err
	}
	return base, result, nil
}
