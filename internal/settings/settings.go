package settings

import (
	"context"
	"fmt"

	"github.com/dshills/torq/internal/value"
)

// Settings merges the local and remote registries into one namespace.
// Lookups try local names first, then remote.
type Settings struct {
	local  *Local
	remote *Remote
}

// New combines a local and a remote registry.
func New(local *Local, remote *Remote) *Settings {
	return &Settings{local: local, remote: remote}
}

// Local returns the underlying local registry.
func (s *Settings) Local() *Local { return s.local }

// Remote returns the underlying remote registry.
func (s *Settings) Remote() *Remote { return s.remote }

// Has reports whether name exists in either registry.
func (s *Settings) Has(name string) bool {
	return s.local.Has(name) || s.remote.Has(name)
}

// IsRemote reports whether name is daemon-owned.
func (s *Settings) IsRemote(name string) bool {
	return !s.local.Has(name) && s.remote.Has(name)
}

// Get returns the current value of name from the owning registry.
func (s *Settings) Get(name string) (value.Value, error) {
	if s.local.Has(name) {
		return s.local.Get(name)
	}
	if s.remote.Has(name) {
		return s.remote.Get(name)
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Set stores raw in the owning registry. Remote writes go to the daemon.
func (s *Settings) Set(ctx context.Context, name string, raw any) error {
	if s.local.Has(name) {
		return s.local.Set(name, raw)
	}
	if s.remote.Has(name) {
		return s.remote.Set(ctx, name, raw)
	}
	return fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Reset restores a local setting to its default. Remote settings have no
// default and fail with ErrRemoteReset.
func (s *Settings) Reset(name string) error {
	if s.local.Has(name) {
		return s.local.Reset(name)
	}
	if s.remote.Has(name) {
		return fmt.Errorf("%w: %s", ErrRemoteReset, name)
	}
	return fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Default returns the built-in default of a local setting.
func (s *Settings) Default(name string) (value.Value, error) {
	if s.local.Has(name) {
		return s.local.Default(name)
	}
	if s.remote.Has(name) {
		return nil, fmt.Errorf("%w: %s", ErrRemoteReset, name)
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Update refreshes the remote cache with one round trip.
func (s *Settings) Update(ctx context.Context) error {
	return s.remote.Update(ctx)
}

// Description returns the documentation string of name.
func (s *Settings) Description(name string) string {
	if s.local.Has(name) {
		return s.local.Description(name)
	}
	return s.remote.Description(name)
}

// Names returns every setting name, local first, each group sorted.
func (s *Settings) Names() []string {
	names := s.local.Names()
	return append(names, s.remote.Names()...)
}
