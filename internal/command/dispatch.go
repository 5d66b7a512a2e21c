package command

import "context"

// uiOnly commands exist for interactive frontends; in a line-driven run
// they are accepted but do nothing.
var uiOnly = map[string]bool{
	"quit": true, "help": true, "move": true, "mark": true,
}

// Run dispatches one tokenized command line. Context implements Runner
// so rc scripts and key bindings can replay command lines.
func (c *Context) Run(ctx context.Context, args []string) Status {
	if len(args) == 0 {
		return StatusSuccess
	}
	name, rest := args[0], args[1:]
	switch name {
	case "set":
		return c.Set(ctx, rest)
	case "reset":
		return c.Reset(ctx, rest)
	case "ratelimit", "rate", "rl":
		return c.RateLimit(ctx, rest)
	case "dump":
		return c.Dump(ctx, rest)
	case "rc", "source":
		return c.RC(ctx, rest)
	case "bind":
		return c.Bind(ctx, rest)
	case "unbind":
		return c.Unbind(ctx, rest)
	case "update":
		if err := c.Settings.Update(ctx); err != nil {
			c.Out.Error("update: %v", err)
			return StatusFailure
		}
		return StatusSuccess
	}
	if uiOnly[name] {
		return StatusInapplicable
	}
	c.Out.Error("Unknown command: %s", name)
	return StatusFailure
}
