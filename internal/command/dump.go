package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

// Dump implements the dump command: it renders the current local
// settings and key bindings as an rc script. With a file argument the
// script is written there; without one it goes to the output sink.
// Settings still at their default are written commented out.
func (c *Context) Dump(ctx context.Context, args []string) Status {
	flags := pflag.NewFlagSet("dump", pflag.ContinueOnError)
	force := flags.BoolP("force", "f", false, "overwrite an existing file")
	if err := flags.Parse(args); err != nil {
		c.Out.Error("dump: %v", err)
		return StatusFailure
	}
	args = flags.Args()

	script := c.renderRC()

	if len(args) == 0 {
		c.Out.Print("%s", strings.TrimRight(script, "\n"))
		return StatusSuccess
	}

	path := args[0]
	if exists, _ := afero.Exists(c.Fs, path); exists && !*force {
		c.Out.Error("File exists: %s (use --force to overwrite)", path)
		return StatusFailure
	}
	if err := afero.WriteFile(c.Fs, path, []byte(script), 0o644); err != nil {
		c.Out.Error("dump %s: %v", path, err)
		return StatusFailure
	}
	return StatusSuccess
}

// renderRC builds the rc script text.
func (c *Context) renderRC() string {
	var b strings.Builder

	local := c.Settings.Local()
	for _, name := range local.Names() {
		if desc := local.Description(name); desc != "" {
			fmt.Fprintf(&b, "# %s\n", desc)
		}
		def, err := local.Default(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "# Default: %s\n", quoteArg(def.String()))

		v, err := local.Get(name)
		if err != nil {
			continue
		}
		line := fmt.Sprintf("set %s %s", name, quoteArg(v.String()))
		if v.String() == def.String() {
			line = "# " + line
		}
		b.WriteString(line + "\n\n")
	}

	if c.Keys != nil {
		for _, bind := range c.Keys.All() {
			if bind.Description != "" {
				fmt.Fprintf(&b, "# %s\n", bind.Description)
			}
			fmt.Fprintf(&b, "bind --context %s %s %s\n",
				bind.Context, quoteArg(bind.Key), bind.Action)
		}
	}
	return b.String()
}
