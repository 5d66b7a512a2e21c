package client

import (
	"context"
	"math"
	"strings"

	"github.com/dshills/torq/internal/value"

	"github.com/tidwall/gjson"
)

// Torrent is the subset of per-torrent state the client exposes.
type Torrent struct {
	ID   int64
	Name string

	// LimitRateUp and LimitRateDown are per-torrent rate limits in bytes
	// per second; a disabled limit is infinity.
	LimitRateUp   value.Number
	LimitRateDown value.Number
}

// LimitRate returns the torrent's limit for dir.
func (t Torrent) LimitRate(dir Direction) value.Number {
	if dir == Up {
		return t.LimitRateUp
	}
	return t.LimitRateDown
}

// torrentFields are the per-torrent fields requested from the daemon.
var torrentFields = []string{
	"id", "name",
	"uploadLimit", "uploadLimited",
	"downloadLimit", "downloadLimited",
}

func torrentRate(item gjson.Result, dir Direction) (value.Number, error) {
	prefix := "upload"
	if dir == Down {
		prefix = "download"
	}
	if !item.Get(prefix + "Limited").Bool() {
		return value.FloatOf(math.Inf(1), rateConfig)
	}
	return value.IntOf(item.Get(prefix+"Limit").Float(), rateConfig)
}

// Torrents lists torrents whose name contains filter. An empty filter
// matches every torrent.
func (c *Client) Torrents(ctx context.Context, filter string) ([]Torrent, error) {
	body, err := request("torrent-get", map[string]any{"fields": torrentFields})
	if err != nil {
		return nil, err
	}
	args, err := c.call(ctx, "torrent-get", body)
	if err != nil {
		return nil, err
	}

	var torrents []Torrent
	for _, item := range args.Get("torrents").Array() {
		name := item.Get("name").String()
		if filter != "" && !strings.Contains(name, filter) {
			continue
		}
		up, err := torrentRate(item, Up)
		if err != nil {
			return nil, err
		}
		down, err := torrentRate(item, Down)
		if err != nil {
			return nil, err
		}
		torrents = append(torrents, Torrent{
			ID:            item.Get("id").Int(),
			Name:          name,
			LimitRateUp:   up,
			LimitRateDown: down,
		})
	}
	return torrents, nil
}

// SetTorrentLimitRate sets the per-torrent rate limit for dir on every
// torrent whose name contains filter. An infinite limit disables
// limiting. It returns the affected torrents.
func (c *Client) SetTorrentLimitRate(ctx context.Context, filter string, dir Direction, n value.Number) ([]Torrent, error) {
	torrents, err := c.Torrents(ctx, filter)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(torrents))
	for i, t := range torrents {
		ids[i] = t.ID
	}

	prefix := "upload"
	if dir == Down {
		prefix = "download"
	}
	args := map[string]any{"ids": ids}
	if n.IsInf() {
		args[prefix+"Limited"] = false
	} else {
		args[prefix+"Limit"] = n.Int64()
		args[prefix+"Limited"] = true
	}
	body, err := request("torrent-set", args)
	if err != nil {
		return nil, err
	}
	if _, err := c.call(ctx, "torrent-set", body); err != nil {
		return nil, err
	}
	return torrents, nil
}

// AdjustTorrentLimitRate applies op with delta to each matching
// torrent's current limit for dir. An infinite current limit counts as
// zero. It returns the affected torrents with their new limits.
func (c *Client) AdjustTorrentLimitRate(ctx context.Context, filter string, dir Direction, op value.Op, delta value.Number) ([]Torrent, error) {
	torrents, err := c.Torrents(ctx, filter)
	if err != nil {
		return nil, err
	}

	prefix := "upload"
	if dir == Down {
		prefix = "download"
	}
	adjusted := make([]Torrent, 0, len(torrents))
	for _, t := range torrents {
		current := t.LimitRate(dir)
		if current.IsInf() {
			current, err = value.IntOf(0, current.Config())
			if err != nil {
				return nil, err
			}
		}
		next, err := op.Apply(current, delta)
		if err != nil {
			return nil, err
		}
		args := map[string]any{
			"ids":              []int64{t.ID},
			prefix + "Limit":   next.Int64(),
			prefix + "Limited": true,
		}
		body, err := request("torrent-set", args)
		if err != nil {
			return nil, err
		}
		if _, err := c.call(ctx, "torrent-set", body); err != nil {
			return nil, err
		}
		if dir == Up {
			t.LimitRateUp = next
		} else {
			t.LimitRateDown = next
		}
		adjusted = append(adjusted, t)
	}
	return adjusted, nil
}
