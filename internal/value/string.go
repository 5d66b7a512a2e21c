package value

import "fmt"

// StringConfig bounds the length of a String value.
// Nil MinLen/MaxLen mean unbounded.
type StringConfig struct {
	MinLen *int
	MaxLen *int
}

// MinLen creates a pointer to an int for use in StringConfig.
func MinLen(v int) *int { return &v }

// MaxLen creates a pointer to an int for use in StringConfig.
func MaxLen(v int) *int { return &v }

// String is a length-bounded text value.
type String struct {
	value string
	cfg   StringConfig
}

// NewString validates raw against the length bounds in cfg.
func NewString(raw string, cfg StringConfig) (String, error) {
	n := len([]rune(raw))
	if cfg.MaxLen != nil && n > *cfg.MaxLen {
		return String{}, validationErrorf(raw, "Too long (maximum length is %d)", *cfg.MaxLen)
	}
	if cfg.MinLen != nil && n < *cfg.MinLen {
		return String{}, validationErrorf(raw, "Too short (minimum length is %d)", *cfg.MinLen)
	}
	return String{value: raw, cfg: cfg}, nil
}

// MustString panics if raw is invalid. Used for built-in defaults.
func MustString(raw string, cfg StringConfig) String {
	s, err := NewString(raw, cfg)
	if err != nil {
		panic(err)
	}
	return s
}

// String returns the text.
func (s String) String() string { return s.value }

// Syntax describes the accepted input.
func (s String) Syntax() string {
	minlen, maxlen := s.cfg.MinLen, s.cfg.MaxLen
	chrstr := "characters"
	if (minlen == nil || *minlen <= 1) && (maxlen == nil || *maxlen == 1) {
		chrstr = "character"
	}
	switch {
	case minlen != nil && *minlen > 0 && maxlen != nil:
		if *minlen == *maxlen {
			return fmt.Sprintf("string (%d %s)", *minlen, chrstr)
		}
		return fmt.Sprintf("string (%d-%d %s)", *minlen, *maxlen, chrstr)
	case minlen != nil && *minlen > 0:
		return fmt.Sprintf("string (at least %d %s)", *minlen, chrstr)
	case maxlen != nil:
		return fmt.Sprintf("string (at most %d %s)", *maxlen, chrstr)
	default:
		return "string"
	}
}
