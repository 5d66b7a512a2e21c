package keymap

import (
	"sort"
	"sync"
)

// ContextAll applies a binding in every UI context.
const ContextAll = "all"

// Binding ties a chord sequence to a command line in one context.
type Binding struct {
	// Context is the UI context name ("all", "torrentlist", ...).
	Context string

	// Key is the canonical chord sequence spelling.
	Key string

	// Action is the command line run when the sequence fires.
	Action string

	// Description is shown in help listings.
	Description string
}

// Registry holds bindings grouped by context.
type Registry struct {
	mu       sync.RWMutex
	contexts map[string]map[string]Binding
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{contexts: make(map[string]map[string]Binding)}
}

// Bind validates the chord sequence and stores the binding under its
// canonical spelling, replacing any previous binding of the sequence in
// the same context. An empty context means "all".
func (r *Registry) Bind(b Binding) error {
	keys, err := ParseSequence(b.Key)
	if err != nil {
		return err
	}
	b.Key = SequenceString(keys)
	if b.Context == "" {
		b.Context = ContextAll
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	ctx := r.contexts[b.Context]
	if ctx == nil {
		ctx = make(map[string]Binding)
		r.contexts[b.Context] = ctx
	}
	ctx[b.Key] = b
	return nil
}

// Unbind removes the binding of a chord sequence in a context.
func (r *Registry) Unbind(context, key string) error {
	keys, err := ParseSequence(key)
	if err != nil {
		return err
	}
	if context == "" {
		context = ContextAll
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.contexts[context], SequenceString(keys))
	return nil
}

// Lookup resolves a chord sequence in context, falling back to "all".
func (r *Registry) Lookup(context, key string) (Binding, bool) {
	keys, err := ParseSequence(key)
	if err != nil {
		return Binding{}, false
	}
	canonical := SequenceString(keys)

	r.mu.RLock()
	defer r.mu.RUnlock()
	if b, ok := r.contexts[context][canonical]; ok {
		return b, true
	}
	b, ok := r.contexts[ContextAll][canonical]
	return b, ok
}

// Map returns the bindings of one context sorted by chord spelling.
func (r *Registry) Map(context string) []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctx := r.contexts[context]
	bindings := make([]Binding, 0, len(ctx))
	for _, b := range ctx {
		bindings = append(bindings, b)
	}
	sort.Slice(bindings, func(i, j int) bool { return bindings[i].Key < bindings[j].Key })
	return bindings
}

// Contexts returns all context names in sorted order.
func (r *Registry) Contexts() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.contexts))
	for name := range r.contexts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every binding, grouped by context and sorted.
func (r *Registry) All() []Binding {
	var all []Binding
	for _, ctx := range r.Contexts() {
		all = append(all, r.Map(ctx)...)
	}
	return all
}
