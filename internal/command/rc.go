package command

import (
	"context"
	"strings"

	"github.com/dshills/torq/internal/value"

	"github.com/spf13/afero"
	"mvdan.cc/sh/v3/shell"
)

// RC implements the rc command: it replays a script of command lines.
// Blank lines and "#" comments are skipped; the run aborts at the first
// failing line. Files ending in ".lua" are delegated to the script
// engine.
func (c *Context) RC(ctx context.Context, args []string) Status {
	if len(args) != 1 {
		c.Out.Error("rc: expected exactly one file argument")
		return StatusFailure
	}

	p, err := value.NewPath(args[0], value.PathConfig{})
	if err != nil {
		c.Out.Error("rc: %v", err)
		return StatusFailure
	}
	path := p.Abs()

	if strings.HasSuffix(path, ".lua") {
		if c.Scripts == nil {
			c.Out.Error("rc %s: script support is not available", args[0])
			return StatusFailure
		}
		if err := c.Scripts.RunFile(ctx, path); err != nil {
			c.Out.Error("rc %s: %v", args[0], err)
			return StatusFailure
		}
		return StatusSuccess
	}

	data, err := afero.ReadFile(c.Fs, path)
	if err != nil {
		c.Out.Error("rc %s: %v", args[0], err)
		return StatusFailure
	}

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields, err := shell.Fields(line, nil)
		if err != nil {
			c.Out.Error("rc %s line %d: %v", args[0], i+1, err)
			return StatusFailure
		}
		if st := c.Run(ctx, fields); st == StatusFailure {
			c.Out.Error("rc %s line %d: command failed", args[0], i+1)
			return StatusFailure
		}
	}
	return StatusSuccess
}
