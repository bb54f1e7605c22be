package model

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// numForm distinguishes finite rationals from the IEEE non-finite values a
// derivation may hand us.
type numForm uint8

const (
	formFinite numForm = iota
	formNaN
	formPosInf
	formNegInf
)

// Number is an immutable exact numeric value. Finite Numbers are arbitrary
// precision rationals, so sigma classification at the 1, 2 and 3 sigma
// boundaries never depends on binary rounding. NaN and the infinities are
// carried as explicit non-finite forms: a bad computed value must survive
// into the report as INVALID rather than corrupt it.
//
// The zero value is the finite number 0. All operations return new values;
// a Number is never mutated after construction, so copies may be shared
// freely.
type Number struct {
	form numForm
	rat  *big.Rat // nil means 0 when form == formFinite
}

// ParseNumber parses an exact decimal, integer, scientific, or a/b rational
// string. The spellings "NaN", "Inf", "+Inf" and "-Inf" produce the matching
// non-finite Number. Anything else fails with ErrDataFormat.
func ParseNumber(s string) (Number, error) {
	switch strings.TrimSpace(s) {
	case "NaN":
		return Number{form: formNaN}, nil
	case "Inf", "+Inf":
		return Number{form: formPosInf}, nil
	case "-Inf":
		return Number{form: formNegInf}, nil
	}
	rat, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return Number{}, fmt.Errorf("cannot parse %q as a number: %w", s, ErrDataFormat)
	}
	return Number{rat: rat}, nil
}

// MustNumber is ParseNumber for literals known at compile time; it panics on
// malformed input.
func MustNumber(s string) Number {
	n, err := ParseNumber(s)
	if err != nil {
		panic(err)
	}
	return n
}

// NumberFromFloat converts a float64 exactly. Every finite float64 is a
// rational, so no precision is lost; NaN and the infinities map onto the
// matching non-finite forms.
func NumberFromFloat(f float64) Number {
	switch {
	case math.IsNaN(f):
		return Number{form: formNaN}
	case math.IsInf(f, 1):
		return Number{form: formPosInf}
	case math.IsInf(f, -1):
		return Number{form: formNegInf}
	}
	return Number{rat: new(big.Rat).SetFloat64(f)}
}

// NumberFromInt converts an int64 exactly.
func NumberFromInt(i int64) Number {
	return Number{rat: new(big.Rat).SetInt64(i)}
}

// IsFinite reports whether the Number is an ordinary rational rather than
// NaN or an infinity.
func (n Number) IsFinite() bool { return n.form == formFinite }

// IsZero reports whether the Number is exactly zero.
func (n Number) IsZero() bool {
	return n.form == formFinite && n.ratOrZero().Sign() == 0
}

// Sign returns -1, 0, or +1 for negative, zero, and positive values. The
// infinities carry their sign; NaN reports 0.
func (n Number) Sign() int {
	switch n.form {
	case formNaN:
		return 0
	case formPosInf:
		return 1
	case formNegInf:
		return -1
	}
	return n.ratOrZero().Sign()
}

// Cmp compares two finite Numbers, returning -1, 0, or +1. Ordering is
// undefined for non-finite values, so comparing one is a programmer error
// and panics; callers gate on IsFinite first.
func (n Number) Cmp(o Number) int {
	if !n.IsFinite() || !o.IsFinite() {
		panic("model: Cmp called on a non-finite Number")
	}
	return n.ratOrZero().Cmp(o.ratOrZero())
}

// Equal reports structural equality. Unlike IEEE comparison, NaN equals NaN:
// Equal answers "is this the same recorded value", not "are these ordered".
func (n Number) Equal(o Number) bool {
	if n.form != o.form {
		return false
	}
	if n.form != formFinite {
		return true
	}
	return n.ratOrZero().Cmp(o.ratOrZero()) == 0
}

// Add returns n + o. Any non-finite operand yields NaN.
func (n Number) Add(o Number) Number {
	if !n.IsFinite() || !o.IsFinite() {
		return Number{form: formNaN}
	}
	return Number{rat: new(big.Rat).Add(n.ratOrZero(), o.ratOrZero())}
}

// Sub returns n - o. Any non-finite operand yields NaN.
func (n Number) Sub(o Number) Number {
	if !n.IsFinite() || !o.IsFinite() {
		return Number{form: formNaN}
	}
	return Number{rat: new(big.Rat).Sub(n.ratOrZero(), o.ratOrZero())}
}

// Mul returns n * o. Any non-finite operand yields NaN.
func (n Number) Mul(o Number) Number {
	if !n.IsFinite() || !o.IsFinite() {
		return Number{form: formNaN}
	}
	return Number{rat: new(big.Rat).Mul(n.ratOrZero(), o.ratOrZero())}
}

// Quo returns n / o. A non-finite operand or a zero divisor yields NaN; the
// caller decides what an undefined quotient means, division itself never
// aborts a run.
func (n Number) Quo(o Number) Number {
	if !n.IsFinite() || !o.IsFinite() || o.IsZero() {
		return Number{form: formNaN}
	}
	return Number{rat: new(big.Rat).Quo(n.ratOrZero(), o.ratOrZero())}
}

// Abs returns the absolute value. NaN stays NaN; both infinities map to
// +Inf.
func (n Number) Abs() Number {
	switch n.form {
	case formNaN:
		return n
	case formPosInf, formNegInf:
		return Number{form: formPosInf}
	}
	return Number{rat: new(big.Rat).Abs(n.ratOrZero())}
}

// Float64 returns the nearest float64 for display and export. Exactness is
// preserved only by String.
func (n Number) Float64() float64 {
	switch n.form {
	case formNaN:
		return math.NaN()
	case formPosInf:
		return math.Inf(1)
	case formNegInf:
		return math.Inf(-1)
	}
	f, _ := n.ratOrZero().Float64()
	return f
}

// String renders the canonical exact form: a plain decimal when the value
// has a terminating decimal expansion, an a/b rational otherwise, and the
// standard spellings for the non-finite forms.
func (n Number) String() string {
	switch n.form {
	case formNaN:
		return "NaN"
	case formPosInf:
		return "+Inf"
	case formNegInf:
		return "-Inf"
	}
	r := n.ratOrZero()
	if r.IsInt() {
		return r.Num().String()
	}
	if digits, ok := decimalDigits(r); ok {
		// Exact by construction: digits is the minimal expansion length, so
		// FloatString neither rounds nor pads.
		return r.FloatString(digits)
	}
	return r.RatString()
}

// ratOrZero returns the underlying rational, treating the nil zero value as
// 0. Callers must not mutate the result.
func (n Number) ratOrZero() *big.Rat {
	if n.rat == nil {
		return new(big.Rat)
	}
	return n.rat
}

var bigOne = big.NewInt(1)

// decimalDigits reports the number of digits in the exact decimal expansion
// of r, and whether such an expansion exists. It does for exactly the
// denominators of the form 2^a * 5^b, where max(a, b) digits suffice.
func decimalDigits(r *big.Rat) (int, bool) {
	den := new(big.Int).Set(r.Denom())
	twos := 0
	for den.Bit(0) == 0 {
		den.Rsh(den, 1)
		twos++
	}
	five := big.NewInt(5)
	fives := 0
	for {
		quo, rem := new(big.Int).QuoRem(den, five, new(big.Int))
		if rem.Sign() != 0 {
			break
		}
		den = quo
		fives++
	}
	if den.Cmp(bigOne) != 0 {
		return 0, false
	}
	if twos > fives {
		return twos, true
	}
	return fives, true
}
