package command

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dshills/torq/internal/client"
	"github.com/dshills/torq/internal/keymap"
	"github.com/dshills/torq/internal/settings"
	"github.com/dshills/torq/internal/value"

	"github.com/spf13/afero"
)

// sink collects command output for assertions.
type sink struct {
	outs []string
	errs []string
}

func (s *sink) Print(format string, args ...any) {
	s.outs = append(s.outs, fmt.Sprintf(format, args...))
}

func (s *sink) Error(format string, args ...any) {
	s.errs = append(s.errs, fmt.Sprintf(format, args...))
}

func (s *sink) lastErr() string {
	if len(s.errs) == 0 {
		return ""
	}
	return s.errs[len(s.errs)-1]
}

// memRate is an in-memory accessor for a global rate limit setting.
type memRate struct {
	n value.Number
}

func newMemRate(t *testing.T, v float64) *memRate {
	t.Helper()
	n, err := value.IntOf(v, value.NumberConfig{Unit: "B", Min: value.Bound(0)})
	if err != nil {
		t.Fatal(err)
	}
	return &memRate{n: n}
}

func (m *memRate) Fetch(ctx context.Context) (value.Value, error) {
	return m.n, nil
}

func (m *memRate) Push(ctx context.Context, raw any) error {
	switch v := raw.(type) {
	case value.Number:
		m.n = v
		return nil
	case string:
		n, err := value.NewFloat(v, m.n.Config())
		if err != nil {
			return err
		}
		m.n = n
		return nil
	}
	return fmt.Errorf("unsupported input type %T", raw)
}

// fakeTorrents serves two torrents and records limit writes.
type fakeTorrents struct {
	torrents []client.Torrent
}

func newFakeTorrents(t *testing.T) *fakeTorrents {
	t.Helper()
	limit := func(v float64) value.Number {
		n, err := value.IntOf(v, value.NumberConfig{Unit: "B", Min: value.Bound(0)})
		if err != nil {
			t.Fatal(err)
		}
		return n
	}
	return &fakeTorrents{torrents: []client.Torrent{
		{ID: 1, Name: "alpha", LimitRateUp: limit(1000), LimitRateDown: limit(2000)},
		{ID: 2, Name: "beta", LimitRateUp: limit(3000), LimitRateDown: limit(4000)},
	}}
}

func (f *fakeTorrents) matching(filter string) []int {
	var idx []int
	for i, t := range f.torrents {
		if filter == "" || strings.Contains(t.Name, filter) {
			idx = append(idx, i)
		}
	}
	return idx
}

func (f *fakeTorrents) Torrents(ctx context.Context, filter string) ([]client.Torrent, error) {
	var out []client.Torrent
	for _, i := range f.matching(filter) {
		out = append(out, f.torrents[i])
	}
	return out, nil
}

func (f *fakeTorrents) SetTorrentLimitRate(ctx context.Context, filter string, dir client.Direction, n value.Number) ([]client.Torrent, error) {
	var out []client.Torrent
	for _, i := range f.matching(filter) {
		if dir == client.Up {
			f.torrents[i].LimitRateUp = n
		} else {
			f.torrents[i].LimitRateDown = n
		}
		out = append(out, f.torrents[i])
	}
	return out, nil
}

func (f *fakeTorrents) AdjustTorrentLimitRate(ctx context.Context, filter string, dir client.Direction, op value.Op, delta value.Number) ([]client.Torrent, error) {
	var out []client.Torrent
	for _, i := range f.matching(filter) {
		current := f.torrents[i].LimitRate(dir)
		next, err := op.Apply(current, delta)
		if err != nil {
			return nil, err
		}
		if dir == client.Up {
			f.torrents[i].LimitRateUp = next
		} else {
			f.torrents[i].LimitRateDown = next
		}
		out = append(out, f.torrents[i])
	}
	return out, nil
}

// newTestContext builds a Context with the default local catalog, a
// fake remote rate limit in each direction and a memory file system.
func newTestContext(t *testing.T) (*Context, *sink, *memRate) {
	t.Helper()
	up := newMemRate(t, 50)
	down := newMemRate(t, 50)

	r := settings.NewRemote(nil)
	r.MustRegister(settings.RemoteSetting{
		Name: "srv.limit.rate.up", Description: "Global upload rate limit", Access: up,
	})
	r.MustRegister(settings.RemoteSetting{
		Name: "srv.limit.rate.down", Description: "Global download rate limit", Access: down,
	})

	out := &sink{}
	cctx := &Context{
		Settings: settings.New(settings.DefaultLocal(), r),
		Out:      out,
		Fs:       afero.NewMemMapFs(),
		Keys:     keymap.New(),
	}
	return cctx, out, up
}
