package command

import (
	"context"
	"strings"

	"github.com/dshills/torq/internal/keymap"

	"github.com/spf13/pflag"
)

// Bind implements the bind command:
//
//	bind [--context <name>] <key> <action>...
//
// The key may be a chord sequence in quotes ("g g"). Without arguments
// the current bindings are listed.
func (c *Context) Bind(ctx context.Context, args []string) Status {
	flags := pflag.NewFlagSet("bind", pflag.ContinueOnError)
	bindCtx := flags.StringP("context", "c", "", "context the binding applies in")
	flags.SetInterspersed(false)
	if err := flags.Parse(args); err != nil {
		c.Out.Error("bind: %v", err)
		return StatusFailure
	}
	args = flags.Args()

	if c.Keys == nil {
		c.Out.Error("bind: no keymap available")
		return StatusFailure
	}

	if len(args) == 0 {
		for _, b := range c.Keys.All() {
			c.Out.Print("bind --context %s %s %s", b.Context, quoteArg(b.Key), b.Action)
		}
		return StatusSuccess
	}
	if len(args) < 2 {
		c.Out.Error("bind: expected a key and an action")
		return StatusFailure
	}

	err := c.Keys.Bind(keymap.Binding{
		Context: *bindCtx,
		Key:     args[0],
		Action:  strings.Join(args[1:], " "),
	})
	if err != nil {
		c.Out.Error("bind %s: %v", args[0], err)
		return StatusFailure
	}
	return StatusSuccess
}

// Unbind implements the unbind command:
//
//	unbind [--context <name>] <key>
func (c *Context) Unbind(ctx context.Context, args []string) Status {
	flags := pflag.NewFlagSet("unbind", pflag.ContinueOnError)
	bindCtx := flags.StringP("context", "c", "", "context the binding applies in")
	flags.SetInterspersed(false)
	if err := flags.Parse(args); err != nil {
		c.Out.Error("unbind: %v", err)
		return StatusFailure
	}
	args = flags.Args()

	if c.Keys == nil {
		c.Out.Error("unbind: no keymap available")
		return StatusFailure
	}
	if len(args) != 1 {
		c.Out.Error("unbind: expected exactly one key argument")
		return StatusFailure
	}
	if err := c.Keys.Unbind(*bindCtx, args[0]); err != nil {
		c.Out.Error("unbind %s: %v", args[0], err)
		return StatusFailure
	}
	return StatusSuccess
}
