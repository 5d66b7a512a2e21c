package settings

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/torq/internal/value"
)

// Local stores client-side settings with their defaults.
type Local struct {
	mu   sync.RWMutex
	defs map[string]LocalSetting
	vals map[string]value.Value
}

// NewLocal creates an empty local registry.
func NewLocal() *Local {
	return &Local{
		defs: make(map[string]LocalSetting),
		vals: make(map[string]value.Value),
	}
}

// Register adds a setting definition. The setting starts at its default.
func (l *Local) Register(def LocalSetting) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.defs[def.Name]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, def.Name)
	}
	l.defs[def.Name] = def
	l.vals[def.Name] = def.Default
	return nil
}

// MustRegister adds a setting definition, panicking on duplicates.
// Intended for the built-in catalog at startup.
func (l *Local) MustRegister(def LocalSetting) {
	if err := l.Register(def); err != nil {
		panic(err)
	}
}

// Has reports whether name is a registered local setting.
func (l *Local) Has(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.defs[name]
	return ok
}

// Get returns the current value of name.
func (l *Local) Get(name string) (value.Value, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	v, ok := l.vals[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return v, nil
}

// Set types raw through the setting's constructor and stores the result.
func (l *Local) Set(name string, raw any) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	def, ok := l.defs[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	v, err := def.Construct(raw)
	if err != nil {
		return err
	}
	l.vals[name] = v
	return nil
}

// Reset restores name to its default value.
func (l *Local) Reset(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	def, ok := l.defs[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	l.vals[name] = def.Default
	return nil
}

// Default returns the built-in default of name.
func (l *Local) Default(name string) (value.Value, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	def, ok := l.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return def.Default, nil
}

// Description returns the documentation string of name.
func (l *Local) Description(name string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.defs[name].Description
}

// Names returns all registered names in sorted order.
func (l *Local) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.defs))
	for name := range l.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
