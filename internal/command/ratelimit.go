package command

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/dshills/torq/internal/client"
	"github.com/dshills/torq/internal/value"

	"github.com/spf13/pflag"
)

// offWords disable a rate limit.
var offWords = map[string]bool{"off": true, "none": true, "unlimited": true}

// RateLimit implements the ratelimit command:
//
//	ratelimit [<dir>[,<dir>]]                  show the global limits
//	ratelimit <dir>[,<dir>] <limit>            set the global limits
//	ratelimit <dir>[,<dir>] +=<delta>          adjust the global limits
//	ratelimit <dir>[,<dir>] <limit> <filter>…  apply per matching torrent
//
// A missing direction means both. Limits are read and written in the
// configured bandwidth unit; "off" removes a limit. Targets are handled
// best-effort.
func (c *Context) RateLimit(ctx context.Context, args []string) Status {
	flags := pflag.NewFlagSet("ratelimit", pflag.ContinueOnError)
	quiet := flags.BoolP("quiet", "q", false, "do not print the resulting limits")
	// "-=..." arguments must not be mistaken for flags.
	flags.SetInterspersed(false)
	if err := flags.Parse(args); err != nil {
		c.Out.Error("ratelimit: %v", err)
		return StatusFailure
	}
	args = flags.Args()

	if len(args) == 0 {
		args = []string{"up,down"}
	}

	var dirs []client.Direction
	for _, d := range strings.Split(args[0], ",") {
		dir, err := client.ParseDirection(strings.TrimSpace(d))
		if err != nil {
			c.Out.Error("ratelimit: %v", err)
			return StatusFailure
		}
		dirs = append(dirs, dir)
	}

	limit := "show"
	if len(args) >= 2 {
		limit = args[1]
	}
	var filters []string
	if len(args) > 2 {
		filters = args[2:]
	}

	conv, err := c.bandwidthConverter()
	if err != nil {
		c.Out.Error("ratelimit: %v", err)
		return StatusFailure
	}

	failures := 0
	for _, dir := range dirs {
		if len(filters) == 0 {
			if err := c.globalRate(ctx, dir, limit, conv, *quiet); err != nil {
				c.Out.Error("ratelimit %s: %v", dir, err)
				failures++
			}
			continue
		}
		for _, filter := range filters {
			if err := c.torrentRate(ctx, dir, limit, filter, conv, *quiet); err != nil {
				c.Out.Error("ratelimit %s %q: %v", dir, filter, err)
				failures++
			}
		}
	}
	if failures > 0 {
		return StatusFailure
	}
	return StatusSuccess
}

// rateName is the setting name of the global limit in one direction.
func rateName(dir client.Direction) string {
	return "srv.limit.rate." + string(dir)
}

// parseRate parses user rate input in the display unit into wire bytes.
func parseRate(conv *value.Converter, raw string) (value.Number, error) {
	if offWords[raw] {
		return value.FloatOf(math.Inf(1), value.NumberConfig{Unit: "B"})
	}
	cfg := value.NumberConfig{
		Unit:      conv.Unit(),
		ConvertTo: "B",
		Prefix:    conv.Prefix(),
		Min:       value.Bound(0),
	}
	return value.NewFloat(raw, cfg)
}

// formatRate renders a wire-side rate in the display unit.
func (c *Context) formatRate(conv *value.Converter, n value.Number) string {
	if converted, err := conv.Convert(n); err == nil {
		n = converted
	}
	return n.String() + "/s"
}

func (c *Context) globalRate(ctx context.Context, dir client.Direction, limit string, conv *value.Converter, quiet bool) error {
	name := rateName(dir)

	show := func() error {
		v, err := c.Settings.Get(name)
		if err != nil {
			return err
		}
		n, ok := v.(value.Number)
		if !ok {
			return fmt.Errorf("unexpected value type for %s", name)
		}
		if !quiet {
			c.Out.Print("%s: %s", name, c.formatRate(conv, n))
		}
		return nil
	}

	if limit == "show" {
		if err := c.Settings.Update(ctx); err != nil {
			return err
		}
		return show()
	}

	if op, deltaStr, ok := splitOperator(limit); ok {
		if err := c.Settings.Update(ctx); err != nil {
			return err
		}
		v, err := c.Settings.Get(name)
		if err != nil {
			return err
		}
		current, isNum := v.(value.Number)
		if !isNum {
			return fmt.Errorf("unexpected value type for %s", name)
		}
		if current.IsInf() {
			if current, err = value.IntOf(0, current.Config()); err != nil {
				return err
			}
		}
		delta, err := parseRate(conv, deltaStr)
		if err != nil {
			return err
		}
		result, err := op.Apply(current, delta)
		if err != nil {
			if unbounded, uerr := op.Apply(current.Unbounded(), delta); uerr == nil {
				return fmt.Errorf("%s = %s: %w", name, c.formatRate(conv, unbounded), err)
			}
			return err
		}
		if err := c.Settings.Set(ctx, name, result); err != nil {
			return err
		}
		return show()
	}

	n, err := parseRate(conv, limit)
	if err != nil {
		return err
	}
	if err := c.Settings.Set(ctx, name, n); err != nil {
		return err
	}
	return show()
}

func (c *Context) torrentRate(ctx context.Context, dir client.Direction, limit, filter string, conv *value.Converter, quiet bool) error {
	if c.Torrents == nil {
		return errors.New("no daemon connection")
	}

	report := func(torrents []client.Torrent) {
		if quiet {
			return
		}
		for _, t := range torrents {
			c.Out.Print("%s: %s", t.Name, c.formatRate(conv, t.LimitRate(dir)))
		}
	}

	if limit == "show" {
		torrents, err := c.Torrents.Torrents(ctx, filter)
		if err != nil {
			return err
		}
		report(torrents)
		return nil
	}

	if op, deltaStr, ok := splitOperator(limit); ok {
		delta, err := parseRate(conv, deltaStr)
		if err != nil {
			return err
		}
		torrents, err := c.Torrents.AdjustTorrentLimitRate(ctx, filter, dir, op, delta)
		if err != nil {
			return err
		}
		report(torrents)
		return nil
	}

	n, err := parseRate(conv, limit)
	if err != nil {
		return err
	}
	torrents, err := c.Torrents.SetTorrentLimitRate(ctx, filter, dir, n)
	if err != nil {
		return err
	}
	report(torrents)
	return nil
}
