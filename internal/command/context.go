package command

import (
	"context"

	"github.com/dshills/torq/internal/client"
	"github.com/dshills/torq/internal/keymap"
	"github.com/dshills/torq/internal/settings"
	"github.com/dshills/torq/internal/value"

	"github.com/spf13/afero"
)

// Status is the outcome of one command run.
type Status int

const (
	// StatusSuccess means the command ran and every target succeeded.
	StatusSuccess Status = iota

	// StatusFailure means the command failed for at least one target.
	StatusFailure

	// StatusInapplicable means the command exists but does nothing in
	// the current frontend (e.g. UI navigation in a one-shot run).
	StatusInapplicable
)

// Output receives command results and diagnostics.
type Output interface {
	Print(format string, args ...any)
	Error(format string, args ...any)
}

// Runner executes one tokenized command line.
type Runner interface {
	Run(ctx context.Context, args []string) Status
}

// ScriptRunner runs a script file. Lua rc files are delegated to it.
type ScriptRunner interface {
	RunFile(ctx context.Context, path string) error
}

// TorrentAPI is the per-torrent slice of the daemon client commands use.
type TorrentAPI interface {
	Torrents(ctx context.Context, filter string) ([]client.Torrent, error)
	SetTorrentLimitRate(ctx context.Context, filter string, dir client.Direction, n value.Number) ([]client.Torrent, error)
	AdjustTorrentLimitRate(ctx context.Context, filter string, dir client.Direction, op value.Op, delta value.Number) ([]client.Torrent, error)
}

// Context bundles everything commands operate on.
type Context struct {
	// Settings is the combined local/remote registry.
	Settings *settings.Settings

	// Torrents is the per-torrent daemon API. Nil means no daemon
	// connection; torrent-filtered commands then fail.
	Torrents TorrentAPI

	// Out receives results and diagnostics.
	Out Output

	// Fs is the file system used by dump and rc.
	Fs afero.Fs

	// Keys is the key binding registry.
	Keys *keymap.Registry

	// Scripts runs Lua rc files. Nil disables script support.
	Scripts ScriptRunner
}

// bandwidthConverter builds a Number converter from the unit.bandwidth
// and unitprefix.bandwidth settings.
func (c *Context) bandwidthConverter() (*value.Converter, error) {
	conv := value.NewConverter()
	unit, err := c.Settings.Get("unit.bandwidth")
	if err != nil {
		return nil, err
	}
	if err := conv.SetUnit(unit.String()); err != nil {
		return nil, err
	}
	prefix, err := c.Settings.Get("unitprefix.bandwidth")
	if err != nil {
		return nil, err
	}
	if err := conv.SetPrefix(prefix.String()); err != nil {
		return nil, err
	}
	return conv, nil
}
