package settings

import (
	"strings"

	"github.com/dshills/torq/internal/value"
)

// Column names available for the torrent list.
var torrentColumns = []string{
	"id", "marked", "name", "path", "status", "error", "progress",
	"size", "downloaded", "uploaded", "ratio", "peers", "seeds",
	"rate-up", "rate-down", "rate-limit-up", "rate-limit-down", "eta",
}

// Sort orders available for the torrent list. A leading "!" on an item
// reverses that order.
var torrentSortOrders = []string{
	"name", "path", "status", "progress", "size", "downloaded",
	"uploaded", "ratio", "peers", "seeds", "rate-up", "rate-down",
	"rate", "eta", "id",
}

// sortTuple defines a tuple setting whose items validate against orders
// after stripping an optional "!" reverse marker.
func sortTuple(name, description string, def []string, orders []string) LocalSetting {
	withReversed := make([]string, 0, len(orders)*2)
	for _, o := range orders {
		withReversed = append(withReversed, o, "!"+o)
	}
	cfg := value.TupleConfig{Options: withReversed, Dedup: true}
	return LocalSetting{
		Name:        name,
		Description: description,
		Default:     value.MustTuple(def, cfg),
		Construct: func(raw any) (value.Value, error) {
			items, err := rawList(raw)
			if err != nil {
				return nil, err
			}
			return value.NewTuple(items, cfg)
		},
	}
}

// DefaultLocal builds the built-in local setting catalog.
func DefaultLocal() *Local {
	l := NewLocal()

	l.MustRegister(String("connect.host",
		"Hostname or IP address of the torrent daemon",
		"localhost", value.StringConfig{MinLen: value.MinLen(1)}))
	l.MustRegister(Integer("connect.port",
		"Port of the torrent daemon's Transfer API",
		"9091", value.NumberConfig{Min: value.Bound(1), Max: value.Bound(65535), HideUnit: true, Precise: true}))
	l.MustRegister(String("connect.path",
		"Path of the Transfer API endpoint",
		"/transmission/rpc", value.StringConfig{}))
	l.MustRegister(String("connect.user",
		"Username for authenticating against the daemon",
		"", value.StringConfig{}))
	l.MustRegister(String("connect.password",
		"Password for authenticating against the daemon",
		"", value.StringConfig{}))
	l.MustRegister(Bool("connect.tls",
		"Whether to connect via HTTPS", false))
	l.MustRegister(Float("connect.timeout",
		"Seconds before a Transfer API request is abandoned",
		"30", value.NumberConfig{Min: value.Bound(0), HideUnit: true, Precise: true}))

	l.MustRegister(Tuple("columns.torrents",
		"Columns of the torrent list",
		[]string{"marked", "size", "downloaded", "uploaded", "rate-down", "rate-up", "eta", "progress", "name"},
		value.TupleConfig{Options: torrentColumns, Dedup: true}))
	l.MustRegister(sortTuple("sort.torrents",
		"Sort order of the torrent list; prelude an order with ! to reverse it",
		[]string{"name"}, torrentSortOrders))

	l.MustRegister(Path("tui.theme",
		"Path to a theme file",
		"default.theme", value.PathConfig{}))
	l.MustRegister(Integer("tui.log.height",
		"Maximum height of the log section",
		"10", value.NumberConfig{Min: value.Bound(1), HideUnit: true, Precise: true}))
	l.MustRegister(Float("tui.log.autohide",
		"Seconds before the log section disappears; 0 disables hiding",
		"10", value.NumberConfig{Min: value.Bound(0), HideUnit: true, Precise: true}))
	l.MustRegister(Path("tui.cli.history-file",
		"File for storing command line history",
		"~/.cache/torq/history", value.PathConfig{}))
	l.MustRegister(Integer("tui.cli.history-size",
		"Maximum number of commands kept in history",
		"10000", value.NumberConfig{Min: value.Bound(0), HideUnit: true, Precise: true}))
	l.MustRegister(Float("tui.poll",
		"Seconds between updates from the daemon",
		"5", value.NumberConfig{Min: value.Bound(0.1), HideUnit: true, Precise: true}))
	l.MustRegister(String("tui.marked.on",
		"Character displayed in the marked column of marked list items",
		"✔", value.StringConfig{MinLen: value.MinLen(1), MaxLen: value.MaxLen(1)}))
	l.MustRegister(String("tui.marked.off",
		"Character displayed in the marked column of unmarked list items",
		" ", value.StringConfig{MinLen: value.MinLen(1), MaxLen: value.MaxLen(1)}))

	l.MustRegister(Option("unit.bandwidth",
		"Unit bandwidth is displayed in",
		"byte", value.OptionConfig{
			Options: []string{"bit", "byte"},
			Aliases: map[string]string{"b": "bit", "B": "byte"},
		}))
	l.MustRegister(Option("unitprefix.bandwidth",
		"Prefix bandwidth is displayed with",
		"metric", value.OptionConfig{
			Options: []string{"metric", "binary"},
			Aliases: map[string]string{"m": "metric", "b": "binary"},
		}))
	l.MustRegister(Option("unit.size",
		"Unit sizes are displayed in",
		"byte", value.OptionConfig{
			Options: []string{"bit", "byte"},
			Aliases: map[string]string{"b": "bit", "B": "byte"},
		}))
	l.MustRegister(Option("unitprefix.size",
		"Prefix sizes are displayed with",
		"binary", value.OptionConfig{
			Options: []string{"metric", "binary"},
			Aliases: map[string]string{"m": "metric", "b": "binary"},
		}))

	return l
}

// SortKey splits a sort order item into its base order and reverse flag.
func SortKey(item string) (order string, reverse bool) {
	if strings.HasPrefix(item, "!") {
		return item[1:], true
	}
	return item, false
}
