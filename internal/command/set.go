package command

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Set implements the set command:
//
//	set                          list all settings
//	set <name>                   show one setting
//	set <name> <value>...        change a setting
//	set <name>:eval <command>... set from a shell command's output
//	set <name> +=<delta>         adjust a numeric setting
func (c *Context) Set(ctx context.Context, args []string) Status {
	flags := pflag.NewFlagSet("set", pflag.ContinueOnError)
	verbose := flags.BoolP("verbose", "v", false, "include descriptions when listing")
	// "-=..." arguments must not be mistaken for flags.
	flags.SetInterspersed(false)
	if err := flags.Parse(args); err != nil {
		c.Out.Error("set: %v", err)
		return StatusFailure
	}
	args = flags.Args()

	if len(args) == 0 {
		// List best-effort: a failed update still lists local values
		// and cached remote ones, but fails the command afterward.
		updateErr := c.Settings.Update(ctx)
		c.listSettings(*verbose)
		if updateErr != nil {
			c.Out.Error("set: %v", updateErr)
			return StatusFailure
		}
		return StatusSuccess
	}

	name := args[0]
	if len(args) == 1 && !strings.HasSuffix(name, evalSuffix) {
		return c.showSetting(name, *verbose)
	}

	base, raw, err := c.resolveValue(ctx, name, args[1:])
	if err != nil {
		c.Out.Error("set: %v", err)
		return StatusFailure
	}

	if err := c.Settings.Set(ctx, base, raw); err != nil {
		c.Out.Error("set %s: %v", base, err)
		return StatusFailure
	}
	return StatusSuccess
}

func (c *Context) listSettings(verbose bool) {
	for _, name := range c.Settings.Names() {
		c.printSetting(name, verbose)
	}
}

func (c *Context) showSetting(name string, verbose bool) Status {
	if !c.Settings.Has(name) {
		c.Out.Error("Unknown setting: %s", name)
		return StatusFailure
	}
	c.printSetting(name, verbose)
	return StatusSuccess
}

func (c *Context) printSetting(name string, verbose bool) {
	display := "?"
	if v, err := c.Settings.Get(name); err == nil {
		display = quoteArg(v.String())
	}
	if verbose {
		c.Out.Print("%s = %s  # %s", name, display, c.Settings.Description(name))
		return
	}
	c.Out.Print("%s = %s", name, display)
}

// quoteArg quotes a value so a replayed command line tokenizes back to
// the same single argument.
func quoteArg(s string) string {
	if s == "" || strings.ContainsAny(s, " \t'\"#") {
		return strconv.Quote(s)
	}
	return s
}
