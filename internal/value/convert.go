package value

// shortUnits maps long unit names to the tokens used in string forms.
var shortUnits = map[string]string{"bit": "b", "byte": "B"}

// Converter normalizes numbers to a configured unit (bit/byte) and
// magnitude prefix (metric/binary). It is used to present transfer rates
// and sizes in the user's preferred unit regardless of how the daemon
// reports them.
type Converter struct {
	unit   string
	prefix Prefix
}

// NewConverter returns a converter targeting bytes with metric prefixes.
func NewConverter() *Converter {
	return &Converter{unit: "B", prefix: PrefixMetric}
}

// Unit returns the target unit: "b" (bits) or "B" (bytes).
func (c *Converter) Unit() string { return c.unit }

// SetUnit sets the target unit; accepts "bit", "byte", "b" or "B".
func (c *Converter) SetUnit(unit string) error {
	switch unit {
	case "bit", "byte":
		c.unit = shortUnits[unit]
	case "b", "B":
		c.unit = unit
	default:
		return validationErrorf(unit, "Unit must be 'bit' or 'byte'")
	}
	return nil
}

// Prefix returns the target magnitude prefix.
func (c *Converter) Prefix() Prefix { return c.prefix }

// SetPrefix sets the target magnitude prefix; accepts "metric" or
// "binary".
func (c *Converter) SetPrefix(prefix string) error {
	p, err := ParsePrefix(prefix)
	if err != nil {
		return err
	}
	c.prefix = p
	return nil
}

// Parse builds a Number from raw input in the given source unit
// (defaulting to the converter's unit if empty and none is parsed from
// the input) and converts it to the configured unit and prefix.
func (c *Converter) Parse(raw string, unit string) (Number, error) {
	if short, ok := shortUnits[unit]; ok {
		unit = short
	}
	if unit == "" {
		unit = c.unit
	}
	n, err := NewFloat(raw, NumberConfig{Unit: unit, Prefix: c.prefix})
	if err != nil {
		return Number{}, err
	}
	return c.Convert(n)
}

// From wraps a plain float in the converter's unit and prefix.
func (c *Converter) From(v float64, unit string) (Number, error) {
	if short, ok := shortUnits[unit]; ok {
		unit = short
	}
	if unit == "" {
		unit = c.unit
	}
	n, err := FloatOf(v, NumberConfig{Unit: unit, Prefix: c.prefix})
	if err != nil {
		return Number{}, err
	}
	return c.Convert(n)
}

// Convert re-expresses n in the converter's unit and prefix. It fails if
// n's unit is not a recognized data unit.
func (c *Converter) Convert(n Number) (Number, error) {
	unit := n.Unit()
	if unit == "" {
		unit = c.unit
	}
	if unit != "b" && unit != "B" {
		return Number{}, validationErrorf(n.String(),
			"Unit must be 'b' (bit) or 'B' (byte), not %q", unit)
	}
	cfg := n.Config()
	cfg.Unit = unit
	cfg.ConvertTo = c.unit
	cfg.Prefix = c.prefix
	return FloatOf(n.Float64(), cfg)
}
