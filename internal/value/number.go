package value

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Prefix selects the magnitude-prefix table used for parsing suffixes and
// for pretty-printing. The zero value is metric.
type Prefix uint8

const (
	// PrefixMetric scales by powers of 1000 (k, M, G, T).
	PrefixMetric Prefix = iota
	// PrefixBinary scales by powers of 1024 (Ki, Mi, Gi, Ti).
	PrefixBinary
)

// String returns "metric" or "binary".
func (p Prefix) String() string {
	if p == PrefixBinary {
		return "binary"
	}
	return "metric"
}

// ParsePrefix converts "metric" or "binary" to a Prefix.
func ParsePrefix(s string) (Prefix, error) {
	switch s {
	case "metric":
		return PrefixMetric, nil
	case "binary":
		return PrefixBinary, nil
	}
	return PrefixMetric, validationErrorf(s, "Prefix must be 'binary' or 'metric', not %q", s)
}

type magnitude struct {
	token string
	size  float64
}

var (
	binaryMagnitudes = []magnitude{
		{"Ti", 1 << 40}, {"Gi", 1 << 30}, {"Mi", 1 << 20}, {"Ki", 1 << 10},
	}
	metricMagnitudes = []magnitude{
		{"T", 1e12}, {"G", 1e9}, {"M", 1e6}, {"k", 1e3},
	}

	// magnitudeSizes maps lowercased prefix tokens to multipliers.
	magnitudeSizes = map[string]float64{
		"ti": 1 << 40, "gi": 1 << 30, "mi": 1 << 20, "ki": 1 << 10,
		"t": 1e12, "g": 1e9, "m": 1e6, "k": 1e3,
	}

	// numberPattern matches [sign]DIGITS[.DIGITS]|inf|∞, an optional
	// magnitude-prefix token (two-character tokens first so they win),
	// and an optional free-form unit token. "∞" is accepted so the
	// canonical string form of an infinite value re-parses.
	numberPattern = regexp.MustCompile(`(?i)^([-+]?(?:\d+\.\d+|\d+|\.\d+|inf|∞)) ?(Ti|Gi|Mi|Ki|T|G|M|k|)([^\s0-9]*?)$`)
)

// unitConverters maps source unit -> target unit -> conversion.
var unitConverters = map[string]map[string]func(float64) float64{
	"B": {"b": func(v float64) float64 { return v * 8 }}, // bytes to bits
	"b": {"B": func(v float64) float64 { return v / 8 }}, // bits to bytes
}

// NumberConfig carries the persistent configuration of a Number. The zero
// value means: unitless, metric prefix, unbounded, imprecise printing.
type NumberConfig struct {
	// Unit is a free-form unit token ("b" for bits, "B" for bytes).
	// Empty means unitless.
	Unit string

	// ConvertTo converts the parsed value into a different unit at
	// construction. A unitless value is assumed to already be in the
	// target unit.
	ConvertTo string

	// Prefix selects the magnitude table. A prefix token in parsed input
	// overrides it (two-character tokens select binary, one-character
	// metric).
	Prefix Prefix

	// HideUnit suppresses the unit suffix in the string form.
	HideUnit bool

	// Min and Max bound the value; nil means unbounded.
	Min *float64
	Max *float64

	// Precise prints the exact value instead of the prefix-scaled form.
	Precise bool
}

// Bound creates a pointer to a float64 for use as Min or Max.
func Bound(v float64) *float64 { return &v }

// Number is an immutable numeric value with unit, magnitude prefix and
// bounds. It narrows to an integer variant when the value is an exact
// integer (see IsInt).
type Number struct {
	val   float64
	isInt bool
	cfg   NumberConfig
}

// NewFloat parses raw as a float Number using cfg.
func NewFloat(raw string, cfg NumberConfig) (Number, error) {
	return parseNumber(raw, cfg, false)
}

// NewInt parses raw and rounds the final value to the nearest integer.
func NewInt(raw string, cfg NumberConfig) (Number, error) {
	return parseNumber(raw, cfg, true)
}

// FloatOf wraps an already-numeric value.
func FloatOf(v float64, cfg NumberConfig) (Number, error) {
	return makeNumber(v, cfg, false)
}

// IntOf wraps an already-numeric value, rounding to the nearest integer.
func IntOf(v float64, cfg NumberConfig) (Number, error) {
	return makeNumber(v, cfg, true)
}

// MustFloat panics if raw is invalid. Used for built-in defaults.
func MustFloat(raw string, cfg NumberConfig) Number {
	n, err := NewFloat(raw, cfg)
	if err != nil {
		panic(err)
	}
	return n
}

// MustInt panics if raw is invalid. Used for built-in defaults.
func MustInt(raw string, cfg NumberConfig) Number {
	n, err := NewInt(raw, cfg)
	if err != nil {
		panic(err)
	}
	return n
}

func parseNumber(raw string, cfg NumberConfig, integer bool) (Number, error) {
	m := numberPattern.FindStringSubmatch(raw)
	if m == nil {
		return Number{}, validationErrorf(raw, "Not a number: %q", raw)
	}

	val, err := strconv.ParseFloat(strings.ToLower(strings.Replace(m[1], "∞", "inf", 1)), 64)
	if err != nil {
		return Number{}, validationErrorf(raw, "Not a number: %q", raw)
	}

	if tok := m[2]; tok != "" {
		val *= magnitudeSizes[strings.ToLower(tok)]
		// The matched token decides the prefix table.
		if len(tok) == 2 {
			cfg.Prefix = PrefixBinary
		} else {
			cfg.Prefix = PrefixMetric
		}
	}
	if unit := m[3]; unit != "" {
		cfg.Unit = unit
	}

	n, err := makeNumber(val, cfg, integer)
	if err != nil {
		// Bounds errors keep the original input.
		if verr, ok := err.(*ValidationError); ok {
			verr.Input = raw
		}
		return Number{}, err
	}
	return n, nil
}

func makeNumber(val float64, cfg NumberConfig, integer bool) (Number, error) {
	if cfg.ConvertTo != "" && cfg.Unit != cfg.ConvertTo {
		if cfg.Unit == "" {
			// No unit given: assume the value is already in the target unit.
			cfg.Unit = cfg.ConvertTo
		} else {
			targets, ok := unitConverters[cfg.Unit]
			convert, ok2 := targets[cfg.ConvertTo]
			if !ok || !ok2 {
				return Number{}, validationErrorf(formatExact(val),
					"Cannot convert %s to %s", cfg.Unit, cfg.ConvertTo)
			}
			val = convert(val)
			cfg.Unit = cfg.ConvertTo
		}
	}
	cfg.ConvertTo = ""

	if integer && !math.IsInf(val, 0) {
		val = math.Round(val)
	}

	if cfg.Min != nil && val < *cfg.Min {
		return Number{}, validationErrorf(formatExact(val), "Too small (minimum is %s)", formatExact(*cfg.Min))
	}
	if cfg.Max != nil && val > *cfg.Max {
		return Number{}, validationErrorf(formatExact(val), "Too big (maximum is %s)", formatExact(*cfg.Max))
	}

	return Number{val: val, isInt: integer && !math.IsInf(val, 0), cfg: cfg}, nil
}

// Float64 returns the numeric value.
func (n Number) Float64() float64 { return n.val }

// Int64 returns the value rounded to the nearest integer.
func (n Number) Int64() int64 { return int64(math.Round(n.val)) }

// IsInt reports whether this is the integer variant.
func (n Number) IsInt() bool { return n.isInt }

// IsInf reports whether the magnitude is infinite.
func (n Number) IsInf() bool { return math.IsInf(n.val, 0) }

// Config returns the number's configuration record.
func (n Number) Config() NumberConfig { return n.cfg }

// Unit returns the unit token, or "" for unitless numbers.
func (n Number) Unit() string { return n.cfg.Unit }

// Unbounded returns a copy with the min/max bounds lifted to infinities.
// Used to recompute an out-of-bounds arithmetic result for error reporting.
func (n Number) Unbounded() Number {
	n.cfg.Min = nil
	n.cfg.Max = nil
	return n
}

// Equal reports whether two numbers have the same magnitude.
func (n Number) Equal(o Number) bool { return n.val == o.val }

// Syntax describes the accepted input.
func (n Number) Syntax() string {
	tokens := make([]string, 0, len(binaryMagnitudes)+len(metricMagnitudes))
	for _, m := range binaryMagnitudes {
		tokens = append(tokens, m.token)
	}
	for _, m := range metricMagnitudes {
		tokens = append(tokens, m.token)
	}
	return "[+|-]<NUMBER>[" + strings.Join(tokens, "|") + "]"
}

// String returns the canonical string form: "0" for zero, "∞"/"-∞" for
// infinite magnitude, otherwise the prefix-scaled form (or the exact form
// in precise mode), followed by the unit unless hidden.
func (n Number) String() string {
	return n.Format(!n.cfg.HideUnit, n.cfg.Precise)
}

// Format renders the number, optionally with unit and in precise mode.
func (n Number) Format(withUnit, precise bool) string {
	unit := ""
	if withUnit {
		unit = n.cfg.Unit
	}

	abs := math.Abs(n.val)
	switch {
	case n.val == 0:
		return "0"
	case math.IsInf(abs, 1):
		return prettyFloat(n.val)
	case precise:
		return formatExact(n.val) + unit
	}

	for _, m := range n.magnitudes() {
		if abs >= m.size {
			return prettyFloat(n.val/m.size) + m.token + unit
		}
	}
	return prettyFloat(n.val) + unit
}

func (n Number) magnitudes() []magnitude {
	if n.cfg.Prefix == PrefixBinary {
		return binaryMagnitudes
	}
	return metricMagnitudes
}

// prettyFloat renders with adaptive precision: integral values get no
// decimals, values under 10 up to 2 decimals, under 100 up to 1 decimal,
// otherwise none. Trailing zeros are stripped.
func prettyFloat(v float64) string {
	abs := math.Abs(v)
	if math.IsInf(abs, 1) {
		if v < 0 {
			return "-∞"
		}
		return "∞"
	}
	if abs == 0 {
		return "0"
	}
	switch {
	case roundTo(abs, 2) == math.Trunc(abs):
		return fmt.Sprintf("%.0f", v)
	case roundTo(abs, 2) < 10:
		return strings.TrimRight(fmt.Sprintf("%.2f", v), "0")
	case roundTo(abs, 1) < 100:
		return strings.TrimRight(fmt.Sprintf("%.1f", v), "0")
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

// formatExact renders the full value without prefix scaling.
func formatExact(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	if math.IsInf(v, -1) {
		return "-∞"
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
