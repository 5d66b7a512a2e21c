package value

import "strings"

// Default truthy/falsy literal tokens. The first entry of each list is the
// canonical string form.
var (
	DefaultTrueWords  = []string{"enabled", "yes", "on", "true", "1"}
	DefaultFalseWords = []string{"disabled", "no", "off", "false", "0"}
)

// BoolConfig overrides the recognized truthy/falsy literal tokens.
// Empty slices select the defaults.
type BoolConfig struct {
	True  []string
	False []string
}

// Bool maps a configurable set of literal tokens to a boolean value that
// prints as the first truthy/falsy literal.
type Bool struct {
	value bool
	cfg   BoolConfig
}

// NewBool validates raw against the configured truthy/falsy tokens.
func NewBool(raw string, cfg BoolConfig) (Bool, error) {
	if len(cfg.True) == 0 {
		cfg.True = DefaultTrueWords
	}
	if len(cfg.False) == 0 {
		cfg.False = DefaultFalseWords
	}
	for _, w := range cfg.True {
		if raw == w {
			return Bool{value: true, cfg: cfg}, nil
		}
	}
	for _, w := range cfg.False {
		if raw == w {
			return Bool{value: false, cfg: cfg}, nil
		}
	}
	return Bool{}, validationErrorf(raw, "Not a boolean value: %q", raw)
}

// BoolOf wraps an already-typed boolean.
func BoolOf(v bool, cfg BoolConfig) Bool {
	if len(cfg.True) == 0 {
		cfg.True = DefaultTrueWords
	}
	if len(cfg.False) == 0 {
		cfg.False = DefaultFalseWords
	}
	return Bool{value: v, cfg: cfg}
}

// Value returns the boolean value.
func (b Bool) Value() bool { return b.value }

// String returns the first truthy or falsy literal.
func (b Bool) String() string {
	if b.value {
		return b.cfg.True[0]
	}
	return b.cfg.False[0]
}

// Syntax lists the recognized token pairs, e.g. "enabled/disabled|yes/no".
func (b Bool) Syntax() string {
	n := len(b.cfg.True)
	if len(b.cfg.False) < n {
		n = len(b.cfg.False)
	}
	pairs := make([]string, 0, n)
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		pair := b.cfg.True[i] + "/" + b.cfg.False[i]
		if !seen[pair] {
			seen[pair] = true
			pairs = append(pairs, pair)
		}
	}
	return strings.Join(pairs, "|")
}
