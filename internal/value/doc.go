// Package value provides self-validating, string-convertible value types
// for torq settings.
//
// Every type in this package is constructed from raw user input and either
// yields a fully valid, immutable value or fails with a ValidationError
// carrying a human-readable reason. There is no partially-valid state.
//
// The canonical string form of every value round-trips: parsing the string
// form with the same configuration produces an equal value.
//
// # Types
//
//   - String: length-bounded text
//   - Bool: canonicalized boolean literals (enabled/yes/on/true/1, ...)
//   - Path: file system path with ~ expansion and optional existence check
//   - Tuple: separator-delimited list with alias resolution and dedup
//   - Option: single value from a fixed set
//   - Number: float/integer with unit and magnitude-prefix handling
//
// # Numbers
//
// Numbers parse an optional magnitude prefix (k, M, G, T metric; Ki, Mi,
// Gi, Ti binary) and an optional free-form unit token:
//
//	n, err := value.NewFloat("2Mi", value.NumberConfig{})
//	n.Float64() // 2097152
//	n.String()  // "2Mi"
//
// Arithmetic on numbers produces a new Number inheriting the operand's
// unit, prefix and bounds; exact integer results narrow to the integer
// variant. The Converter normalizes numbers to a configured unit
// (bit/byte) and prefix (metric/binary).
package value
