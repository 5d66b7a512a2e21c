package client

import (
	"context"
	"fmt"
	"math"

	"github.com/dshills/torq/internal/value"
)

// Direction identifies a transfer direction.
type Direction string

const (
	// Up is the upload direction.
	Up Direction = "up"
	// Down is the download direction.
	Down Direction = "down"
)

// ParseDirection resolves a direction name or alias.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up", "u":
		return Up, nil
	case "down", "dn", "d":
		return Down, nil
	}
	return "", fmt.Errorf("invalid direction: %q", s)
}

// Session field names for the global rate limit in each direction.
func rateKeys(dir Direction) (limit, enabled string) {
	return "speed-limit-" + string(dir), "speed-limit-" + string(dir) + "-enabled"
}

// rateConfig is the wire-side configuration of rate limit numbers:
// bytes per second.
var rateConfig = value.NumberConfig{Unit: "B", Min: value.Bound(0)}

// LimitRate returns the global rate limit for dir from the session
// snapshot. A disabled limit is infinity.
func (c *Client) LimitRate(dir Direction) (value.Number, error) {
	limitKey, enabledKey := rateKeys(dir)
	enabled, err := c.SessionBool(enabledKey)
	if err != nil {
		return value.Number{}, err
	}
	if !enabled {
		return value.FloatOf(math.Inf(1), rateConfig)
	}
	v, err := c.SessionFloat(limitKey)
	if err != nil {
		return value.Number{}, err
	}
	return value.IntOf(v, rateConfig)
}

// SetLimitRate sets the global rate limit for dir. An infinite limit
// disables limiting.
func (c *Client) SetLimitRate(ctx context.Context, dir Direction, n value.Number) error {
	limitKey, enabledKey := rateKeys(dir)
	if n.IsInf() {
		return c.SetSession(ctx, enabledKey, false)
	}
	if err := c.SetSession(ctx, limitKey, n.Int64()); err != nil {
		return err
	}
	return c.SetSession(ctx, enabledKey, true)
}
