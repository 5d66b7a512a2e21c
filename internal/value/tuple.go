package value

import "strings"

// TupleConfig controls splitting, alias resolution, deduplication and
// membership validation of Tuple items.
type TupleConfig struct {
	// Sep separates items in the string form. String inputs are split on
	// the trimmed separator. Empty means ", ".
	Sep string

	// Options restricts items to a fixed set when non-nil.
	Options []string

	// Aliases maps an alias to its replacement, applied per item.
	Aliases map[string]string

	// Dedup removes duplicate items, preserving first-seen order.
	Dedup bool
}

// Tuple is an immutable ordered list of strings.
type Tuple struct {
	items []string
	cfg   TupleConfig
}

// NewTuple flattens the inputs, splitting each on the configured
// separator, resolves aliases, optionally deduplicates, and validates
// every item against the option set. The error lists all invalid items.
func NewTuple(raw []string, cfg TupleConfig) (Tuple, error) {
	if cfg.Sep == "" {
		cfg.Sep = ", "
	}
	sep := strings.TrimSpace(cfg.Sep)

	var items []string
	for _, r := range raw {
		for _, item := range strings.Split(r, sep) {
			items = append(items, strings.TrimSpace(item))
		}
	}

	if len(cfg.Aliases) > 0 {
		for i, item := range items {
			items[i] = resolveAlias(item, cfg.Aliases)
		}
	}

	if cfg.Dedup {
		seen := make(map[string]bool, len(items))
		deduped := items[:0]
		for _, item := range items {
			if !seen[item] {
				seen[item] = true
				deduped = append(deduped, item)
			}
		}
		items = deduped
	}

	if cfg.Options != nil {
		valid := make(map[string]bool, len(cfg.Options))
		for _, o := range cfg.Options {
			valid[o] = true
		}
		var invalid []string
		for _, item := range items {
			if !valid[item] {
				invalid = append(invalid, item)
			}
		}
		if len(invalid) > 0 {
			plural := ""
			if len(invalid) != 1 {
				plural = "s"
			}
			return Tuple{}, validationErrorf(strings.Join(raw, cfg.Sep),
				"Invalid option%s: %s", plural, strings.Join(invalid, cfg.Sep))
		}
	}

	return Tuple{items: items, cfg: cfg}, nil
}

// MustTuple panics if raw is invalid. Used for built-in defaults.
func MustTuple(raw []string, cfg TupleConfig) Tuple {
	t, err := NewTuple(raw, cfg)
	if err != nil {
		panic(err)
	}
	return t
}

// Items returns a copy of the item list.
func (t Tuple) Items() []string {
	items := make([]string, len(t.items))
	copy(items, t.items)
	return items
}

// Len returns the number of items.
func (t Tuple) Len() int { return len(t.items) }

// String joins the items with the configured separator.
func (t Tuple) String() string { return strings.Join(t.items, t.cfg.Sep) }

// Syntax describes the accepted input.
func (t Tuple) Syntax() string {
	sep := strings.TrimSpace(t.cfg.Sep)
	return "<OPTION>" + sep + "<OPTION>" + sep + "..."
}

// Options returns the allowed option set, or nil when unrestricted.
func (t Tuple) Options() []string { return t.cfg.Options }
