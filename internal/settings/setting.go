package settings

import (
	"fmt"
	"strings"

	"github.com/dshills/torq/internal/value"
)

// Constructor converts raw command input into a setting's value type.
// Raw input is a string literal, a list of items, or an already-typed
// value (a value.Number produced by delta arithmetic, or any
// value.Value).
type Constructor func(raw any) (value.Value, error)

// LocalSetting defines a locally-stored setting: its name, default,
// description and the constructor that types raw input.
type LocalSetting struct {
	// Name is the dotted setting name (e.g. "connect.host").
	Name string

	// Description is human-readable documentation.
	Description string

	// Default is the built-in default value.
	Default value.Value

	// Construct types and validates raw input.
	Construct Constructor
}

// rawString flattens raw input into a single string.
func rawString(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case []string:
		return strings.Join(v, " "), nil
	case value.Value:
		return v.String(), nil
	}
	return "", fmt.Errorf("unsupported input type %T", raw)
}

// rawList flattens raw input into a list of items.
func rawList(raw any) ([]string, error) {
	switch v := raw.(type) {
	case []string:
		return v, nil
	case string:
		return []string{v}, nil
	case value.Value:
		return []string{v.String()}, nil
	}
	return nil, fmt.Errorf("unsupported input type %T", raw)
}

// Integer defines an integer-valued local setting.
func Integer(name, description, def string, cfg value.NumberConfig) LocalSetting {
	return LocalSetting{
		Name:        name,
		Description: description,
		Default:     value.MustInt(def, cfg),
		Construct: func(raw any) (value.Value, error) {
			if n, ok := raw.(value.Number); ok {
				return value.IntOf(n.Float64(), cfg)
			}
			s, err := rawString(raw)
			if err != nil {
				return nil, err
			}
			return value.NewInt(s, cfg)
		},
	}
}

// Float defines a float-valued local setting.
func Float(name, description, def string, cfg value.NumberConfig) LocalSetting {
	return LocalSetting{
		Name:        name,
		Description: description,
		Default:     value.MustFloat(def, cfg),
		Construct: func(raw any) (value.Value, error) {
			if n, ok := raw.(value.Number); ok {
				return value.FloatOf(n.Float64(), cfg)
			}
			s, err := rawString(raw)
			if err != nil {
				return nil, err
			}
			return value.NewFloat(s, cfg)
		},
	}
}

// String defines a text local setting.
func String(name, description, def string, cfg value.StringConfig) LocalSetting {
	return LocalSetting{
		Name:        name,
		Description: description,
		Default:     value.MustString(def, cfg),
		Construct: func(raw any) (value.Value, error) {
			s, err := rawString(raw)
			if err != nil {
				return nil, err
			}
			return value.NewString(s, cfg)
		},
	}
}

// Bool defines a boolean local setting.
func Bool(name, description string, def bool) LocalSetting {
	return LocalSetting{
		Name:        name,
		Description: description,
		Default:     value.BoolOf(def, value.BoolConfig{}),
		Construct: func(raw any) (value.Value, error) {
			s, err := rawString(raw)
			if err != nil {
				return nil, err
			}
			return value.NewBool(s, value.BoolConfig{})
		},
	}
}

// Path defines a file system path local setting.
func Path(name, description, def string, cfg value.PathConfig) LocalSetting {
	return LocalSetting{
		Name:        name,
		Description: description,
		Default:     value.MustPath(def, cfg),
		Construct: func(raw any) (value.Value, error) {
			s, err := rawString(raw)
			if err != nil {
				return nil, err
			}
			return value.NewPath(s, cfg)
		},
	}
}

// Option defines a fixed-choice local setting.
func Option(name, description, def string, cfg value.OptionConfig) LocalSetting {
	return LocalSetting{
		Name:        name,
		Description: description,
		Default:     value.MustOption(def, cfg),
		Construct: func(raw any) (value.Value, error) {
			s, err := rawString(raw)
			if err != nil {
				return nil, err
			}
			return value.NewOption(s, cfg)
		},
	}
}

// Tuple defines a list local setting.
func Tuple(name, description string, def []string, cfg value.TupleConfig) LocalSetting {
	return LocalSetting{
		Name:        name,
		Description: description,
		Default:     value.MustTuple(def, cfg),
		Construct: func(raw any) (value.Value, error) {
			items, err := rawList(raw)
			if err != nil {
				return nil, err
			}
			return value.NewTuple(items, cfg)
		},
	}
}
