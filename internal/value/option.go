package value

import "strings"

// OptionConfig restricts an Option to a fixed set, with optional aliases.
type OptionConfig struct {
	Options []string
	Aliases map[string]string
}

// Option is a single string that can only be one of a fixed set.
type Option struct {
	value string
	cfg   OptionConfig
}

// NewOption resolves raw through the alias map and validates membership.
func NewOption(raw string, cfg OptionConfig) (Option, error) {
	resolved := resolveAlias(raw, cfg.Aliases)
	for _, o := range cfg.Options {
		if resolved == o {
			return Option{value: resolved, cfg: cfg}, nil
		}
	}
	return Option{}, validationErrorf(raw, "Not one of: %s", strings.Join(cfg.Options, ", "))
}

// MustOption panics if raw is invalid. Used for built-in defaults.
func MustOption(raw string, cfg OptionConfig) Option {
	o, err := NewOption(raw, cfg)
	if err != nil {
		panic(err)
	}
	return o
}

// String returns the resolved value.
func (o Option) String() string { return o.value }

// Syntax lists the allowed values separated by |.
func (o Option) Syntax() string { return strings.Join(o.cfg.Options, "|") }

// Options returns the allowed option set.
func (o Option) Options() []string { return o.cfg.Options }
