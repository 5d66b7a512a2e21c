package settings

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/torq/internal/value"
)

// Accessor reads and writes one remote setting over the Transfer API.
// Fetch reads from the client's cached session snapshot; Push sends a
// mutation to the daemon.
type Accessor interface {
	Fetch(ctx context.Context) (value.Value, error)
	Push(ctx context.Context, raw any) error
}

// RemoteSetting defines a daemon-owned setting.
type RemoteSetting struct {
	// Name is the dotted setting name (e.g. "srv.limit.rate.up").
	Name string

	// Description is human-readable documentation.
	Description string

	// Access fetches and pushes the value.
	Access Accessor
}

// Remote stores daemon-owned settings behind a bulk-refreshed cache.
type Remote struct {
	mu    sync.RWMutex
	defs  map[string]RemoteSetting
	cache map[string]value.Value

	// refresh performs the single round trip that renews the session
	// snapshot all Accessors read from.
	refresh func(ctx context.Context) error
}

// NewRemote creates an empty remote registry. refresh renews the
// underlying session snapshot; it may be nil when no daemon is wired
// (Update then only re-reads each accessor).
func NewRemote(refresh func(ctx context.Context) error) *Remote {
	return &Remote{
		defs:    make(map[string]RemoteSetting),
		cache:   make(map[string]value.Value),
		refresh: refresh,
	}
}

// Register adds a remote setting definition.
func (r *Remote) Register(def RemoteSetting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.defs[def.Name]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, def.Name)
	}
	r.defs[def.Name] = def
	return nil
}

// MustRegister adds a remote setting definition, panicking on duplicates.
func (r *Remote) MustRegister(def RemoteSetting) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Has reports whether name is a registered remote setting.
func (r *Remote) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.defs[name]
	return ok
}

// Update renews the session snapshot with one round trip and refills the
// cache from every accessor. On error the previous cache is kept.
func (r *Remote) Update(ctx context.Context) error {
	if r.refresh != nil {
		if err := r.refresh(ctx); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	fresh := make(map[string]value.Value, len(r.defs))
	for name, def := range r.defs {
		v, err := def.Access.Fetch(ctx)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", name, err)
		}
		fresh[name] = v
	}
	r.cache = fresh
	return nil
}

// Get returns the cached value of name. It fails with ErrNotFetched
// while the value has neither been fetched by an Update nor refreshed
// by a successful Set.
func (r *Remote) Get(name string) (value.Value, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.defs[name]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	v, ok := r.cache[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFetched, name)
	}
	return v, nil
}

// Set pushes raw to the daemon and refreshes the setting's cached value.
func (r *Remote) Set(ctx context.Context, name string, raw any) error {
	r.mu.RLock()
	def, ok := r.defs[name]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err := def.Access.Push(ctx, raw); err != nil {
		return err
	}
	v, err := def.Access.Fetch(ctx)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.cache[name] = v
	r.mu.Unlock()
	return nil
}

// Description returns the documentation string of name.
func (r *Remote) Description(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defs[name].Description
}

// Names returns all registered names in sorted order.
func (r *Remote) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
