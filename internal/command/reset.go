package command

import (
	"context"
	"errors"

	"github.com/dshills/torq/internal/settings"
)

// Reset restores each named setting to its default. Targets are handled
// best-effort: every failure is reported and the remaining targets are
// still reset.
func (c *Context) Reset(ctx context.Context, args []string) Status {
	if len(args) == 0 {
		c.Out.Error("reset: missing setting name")
		return StatusFailure
	}

	failures := 0
	for _, name := range args {
		err := c.Settings.Reset(name)
		switch {
		case err == nil:
		case errors.Is(err, settings.ErrRemoteReset):
			c.Out.Error("Remote settings cannot be reset: %s", name)
			failures++
		case errors.Is(err, settings.ErrNotFound):
			c.Out.Error("Unknown setting: %s", name)
			failures++
		default:
			c.Out.Error("reset %s: %v", name, err)
			failures++
		}
	}
	if failures > 0 {
		return StatusFailure
	}
	return StatusSuccess
}
