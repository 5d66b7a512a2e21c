package settings

import (
	"context"

	"github.com/dshills/torq/internal/client"
	"github.com/dshills/torq/internal/value"
)

// boolAccessor maps a boolean session field.
type boolAccessor struct {
	c   *client.Client
	key string
}

func (a boolAccessor) Fetch(ctx context.Context) (value.Value, error) {
	v, err := a.c.SessionBool(a.key)
	if err != nil {
		return nil, err
	}
	return value.BoolOf(v, value.BoolConfig{}), nil
}

func (a boolAccessor) Push(ctx context.Context, raw any) error {
	s, err := rawString(raw)
	if err != nil {
		return err
	}
	b, err := value.NewBool(s, value.BoolConfig{})
	if err != nil {
		return err
	}
	return a.c.SetSession(ctx, a.key, b.Value())
}

// intAccessor maps an integer session field.
type intAccessor struct {
	c   *client.Client
	key string
	cfg value.NumberConfig
}

func (a intAccessor) Fetch(ctx context.Context) (value.Value, error) {
	v, err := a.c.SessionFloat(a.key)
	if err != nil {
		return nil, err
	}
	return value.IntOf(v, a.cfg)
}

func (a intAccessor) Push(ctx context.Context, raw any) error {
	var n value.Number
	var err error
	if num, ok := raw.(value.Number); ok {
		n, err = value.IntOf(num.Float64(), a.cfg)
	} else {
		var s string
		if s, err = rawString(raw); err != nil {
			return err
		}
		n, err = value.NewInt(s, a.cfg)
	}
	if err != nil {
		return err
	}
	return a.c.SetSession(ctx, a.key, n.Int64())
}

// optionAccessor maps a fixed-choice session field.
type optionAccessor struct {
	c   *client.Client
	key string
	cfg value.OptionConfig
}

func (a optionAccessor) Fetch(ctx context.Context) (value.Value, error) {
	s, err := a.c.SessionString(a.key)
	if err != nil {
		return nil, err
	}
	return value.NewOption(s, a.cfg)
}

func (a optionAccessor) Push(ctx context.Context, raw any) error {
	s, err := rawString(raw)
	if err != nil {
		return err
	}
	o, err := value.NewOption(s, a.cfg)
	if err != nil {
		return err
	}
	return a.c.SetSession(ctx, a.key, o.String())
}

// pathAccessor maps a file system path session field.
type pathAccessor struct {
	c   *client.Client
	key string
}

func (a pathAccessor) Fetch(ctx context.Context) (value.Value, error) {
	s, err := a.c.SessionString(a.key)
	if err != nil {
		return nil, err
	}
	return value.NewPath(s, value.PathConfig{})
}

func (a pathAccessor) Push(ctx context.Context, raw any) error {
	s, err := rawString(raw)
	if err != nil {
		return err
	}
	p, err := value.NewPath(s, value.PathConfig{})
	if err != nil {
		return err
	}
	return a.c.SetSession(ctx, a.key, p.Abs())
}

// togglePathAccessor maps a path field with a companion enabled flag.
// A boolean input toggles the flag; a path input stores the path and
// enables the flag. A disabled field reads as a false boolean.
type togglePathAccessor struct {
	c          *client.Client
	pathKey    string
	enabledKey string
}

func (a togglePathAccessor) Fetch(ctx context.Context) (value.Value, error) {
	enabled, err := a.c.SessionBool(a.enabledKey)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return value.BoolOf(false, value.BoolConfig{}), nil
	}
	s, err := a.c.SessionString(a.pathKey)
	if err != nil {
		return nil, err
	}
	return value.NewPath(s, value.PathConfig{})
}

func (a togglePathAccessor) Push(ctx context.Context, raw any) error {
	s, err := rawString(raw)
	if err != nil {
		return err
	}
	if b, err := value.NewBool(s, value.BoolConfig{}); err == nil {
		return a.c.SetSession(ctx, a.enabledKey, b.Value())
	}
	p, err := value.NewPath(s, value.PathConfig{})
	if err != nil {
		return err
	}
	if err := a.c.SetSession(ctx, a.pathKey, p.Abs()); err != nil {
		return err
	}
	return a.c.SetSession(ctx, a.enabledKey, true)
}

// rateAccessor maps the global rate limit of one direction.
type rateAccessor struct {
	c   *client.Client
	dir client.Direction
}

func (a rateAccessor) Fetch(ctx context.Context) (value.Value, error) {
	return a.c.LimitRate(a.dir)
}

func (a rateAccessor) Push(ctx context.Context, raw any) error {
	var n value.Number
	var err error
	if num, ok := raw.(value.Number); ok {
		n = num
	} else {
		var s string
		if s, err = rawString(raw); err != nil {
			return err
		}
		n, err = value.NewFloat(s, value.NumberConfig{Unit: "B", Min: value.Bound(0)})
		if err != nil {
			return err
		}
	}
	return a.c.SetLimitRate(ctx, a.dir, n)
}

// DefaultRemote builds the daemon-owned setting catalog backed by c.
func DefaultRemote(c *client.Client) *Remote {
	r := NewRemote(c.RefreshSession)

	portCfg := value.NumberConfig{Min: value.Bound(1), Max: value.Bound(65535), HideUnit: true, Precise: true}
	countCfg := value.NumberConfig{Min: value.Bound(0), HideUnit: true, Precise: true}
	encryption := value.OptionConfig{Options: []string{"required", "preferred", "tolerated"}}

	r.MustRegister(RemoteSetting{
		Name:        "srv.utp",
		Description: "Whether to use Micro Transport Protocol to mitigate poor network conditions",
		Access:      boolAccessor{c, "utp-enabled"},
	})
	r.MustRegister(RemoteSetting{
		Name:        "srv.dht",
		Description: "Whether to use the Distributed Hash Table to discover peers",
		Access:      boolAccessor{c, "dht-enabled"},
	})
	r.MustRegister(RemoteSetting{
		Name:        "srv.lpd",
		Description: "Whether to use Local Peer Discovery to discover nearby peers",
		Access:      boolAccessor{c, "lpd-enabled"},
	})
	r.MustRegister(RemoteSetting{
		Name:        "srv.pex",
		Description: "Whether to use Peer Exchange to discover peers",
		Access:      boolAccessor{c, "pex-enabled"},
	})
	r.MustRegister(RemoteSetting{
		Name:        "srv.port",
		Description: "Port used to communicate with peers",
		Access:      intAccessor{c, "peer-port", portCfg},
	})
	r.MustRegister(RemoteSetting{
		Name:        "srv.port-forwarding",
		Description: "Whether to forward the peer port via UPnP/NAT-PMP",
		Access:      boolAccessor{c, "port-forwarding-enabled"},
	})
	r.MustRegister(RemoteSetting{
		Name:        "srv.encryption",
		Description: "Protocol encryption policy: required, preferred or tolerated",
		Access:      optionAccessor{c, "encryption", encryption},
	})
	r.MustRegister(RemoteSetting{
		Name:        "srv.limit.peers.global",
		Description: "Maximum number of peer connections overall",
		Access:      intAccessor{c, "peer-limit-global", countCfg},
	})
	r.MustRegister(RemoteSetting{
		Name:        "srv.limit.peers.torrent",
		Description: "Maximum number of peer connections per torrent",
		Access:      intAccessor{c, "peer-limit-per-torrent", countCfg},
	})
	r.MustRegister(RemoteSetting{
		Name:        "srv.limit.rate.up",
		Description: "Global upload rate limit",
		Access:      rateAccessor{c, client.Up},
	})
	r.MustRegister(RemoteSetting{
		Name:        "srv.limit.rate.down",
		Description: "Global download rate limit",
		Access:      rateAccessor{c, client.Down},
	})
	r.MustRegister(RemoteSetting{
		Name:        "srv.part-files",
		Description: "Whether to append '.part' to the name of incomplete files",
		Access:      boolAccessor{c, "rename-partial-files"},
	})
	r.MustRegister(RemoteSetting{
		Name:        "srv.path.complete",
		Description: "Where the daemon puts complete downloads",
		Access:      pathAccessor{c, "download-dir"},
	})
	r.MustRegister(RemoteSetting{
		Name:        "srv.path.incomplete",
		Description: "Where the daemon puts incomplete downloads; a boolean toggles the separate location",
		Access:      togglePathAccessor{c, "incomplete-dir", "incomplete-dir-enabled"},
	})
	r.MustRegister(RemoteSetting{
		Name:        "srv.autostart-torrents",
		Description: "Whether added torrents are started automatically",
		Access:      boolAccessor{c, "start-added-torrents"},
	})

	return r
}
