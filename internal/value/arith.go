package value

import "math"

// Op is an arithmetic operator applied between a setting's current value
// and a user-supplied delta. Operators are resolved once during parsing,
// never dispatched by name.
type Op uint8

const (
	// Add applies a += delta.
	Add Op = iota
	// Subtract applies a -= delta.
	Subtract
)

// String returns the operator's delta spelling.
func (op Op) String() string {
	if op == Subtract {
		return "-="
	}
	return "+="
}

// opFuncs maps operators to pure functions over Numbers. The table is
// exposed through Apply so callers can re-run an operation on an
// unbounded copy when reporting bounds violations.
var opFuncs = map[Op]func(Number, Number) (Number, error){
	Add:      Number.Add,
	Subtract: Number.Sub,
}

// Apply runs the operator between a and b.
func (op Op) Apply(a, b Number) (Number, error) {
	return opFuncs[op](a, b)
}

// Add returns n + o with n's configuration.
func (n Number) Add(o Number) (Number, error) {
	return n.arith(o, func(a, b float64) float64 { return a + b })
}

// Sub returns n - o with n's configuration.
func (n Number) Sub(o Number) (Number, error) {
	return n.arith(o, func(a, b float64) float64 { return a - b })
}

// Mul returns n * o with n's configuration.
func (n Number) Mul(o Number) (Number, error) {
	return n.arith(o, func(a, b float64) float64 { return a * b })
}

// Div returns n / o with n's configuration.
func (n Number) Div(o Number) (Number, error) {
	return n.arith(o, func(a, b float64) float64 { return a / b })
}

// Floor returns the largest integer value not greater than n.
func (n Number) Floor() (Number, error) {
	return n.unary(math.Floor)
}

// Ceil returns the smallest integer value not less than n.
func (n Number) Ceil() (Number, error) {
	return n.unary(math.Ceil)
}

// Round returns n rounded to the nearest integer.
func (n Number) Round() (Number, error) {
	return n.unary(math.Round)
}

// arith applies f and rewraps the result with n's configuration. The
// result narrows to the integer variant when it is an exact integer;
// infinity stays a float because the integer variant has no infinite
// form.
func (n Number) arith(o Number, f func(a, b float64) float64) (Number, error) {
	var result float64
	if math.IsInf(n.val, 0) {
		result = n.val
	} else {
		result = f(n.val, o.val)
	}
	return n.rewrap(result)
}

func (n Number) unary(f func(float64) float64) (Number, error) {
	var result float64
	if math.IsInf(n.val, 0) {
		result = n.val
	} else {
		result = f(n.val)
	}
	return n.rewrap(result)
}

func (n Number) rewrap(result float64) (Number, error) {
	integer := !math.IsInf(result, 0) && result == math.Trunc(result)
	return makeNumber(result, n.cfg, integer)
}
