package fixnum

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// FromDecimal returns a fixed-point number equal to mantissa * 10^exponent.
//
// FromDecimal returns an error if:
//   - the exponent is less than -P or greater than 10 ([ErrUnsupportedExponent]);
//   - the result does not fit the backing integer ([ErrTooBigMantissa]).
func FromDecimal[I Integer[I], P Precision](mantissa I, exponent int) (FixedPoint[I, P], error) {
	p := digits[P]()
	if exponent < -p || exponent > 10 {
		return FixedPoint[I, P]{}, ErrUnsupportedExponent
	}
	if mantissa.sign() == 0 {
		return FixedPoint[I, P]{}, nil
	}
	m, ok := mantissa.pow10(exponent + p)
	if !ok {
		return FixedPoint[I, P]{}, ErrTooBigMantissa
	}
	z, ok := mantissa.mul(m)
	if !ok {
		return FixedPoint[I, P]{}, ErrTooBigMantissa
	}
	return FixedPoint[I, P]{inner: z}, nil
}

// FromInt converts an integer of any Go integer type to a fixed-point number.
//
// FromInt returns [ErrTooBigNumber] if the value does not fit the type.
func FromInt[I Integer[I], P Precision, T constraints.Integer](v T) (FixedPoint[I, P], error) {
	var (
		x  I
		n  I
		ok bool
	)
	if v < 0 {
		n, ok = x.fromInt64(int64(v))
	} else {
		n, ok = x.fromUint64(uint64(v))
	}
	if !ok {
		return FixedPoint[I, P]{}, ErrTooBigNumber
	}
	z, ok := n.mul(coef[I, P]())
	if !ok {
		return FixedPoint[I, P]{}, ErrTooBigNumber
	}
	return FixedPoint[I, P]{inner: z}, nil
}

// Parse converts a string to a fixed-point number.
// Leading and trailing white space is ignored.
// The input string must be in one of the following formats:
//
//	1234.56
//	-1234.56
//	+1234.56
//	1234
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	number         ::= [sign] digits ['.' digits]
//
// Both the integral and the fractional parts must have at least one digit
// when the decimal point is present. Parse never rounds.
//
// Parse returns an error if:
//   - the integral part is not a valid integer ([ErrIntegralPart]);
//   - the fractional part is empty ([ErrFractionalPart]) or has anything
//     but digits ([ErrFractionalDigits]);
//   - the fractional part has more than P digits ([ErrPrecisionTooHigh]);
//   - the number does not fit the backing integer ([ErrTooBigIntegral],
//     [ErrTooBigNumber]).
func Parse[I Integer[I], P Precision](s string) (FixedPoint[I, P], error) {
	s = strings.TrimSpace(s)
	c := coef[I, P]()
	pos := strings.IndexByte(s, '.')
	if pos < 0 {
		n, ok := parseInteger[I](s)
		if !ok {
			return FixedPoint[I, P]{}, ErrIntegralPart
		}
		z, ok := n.mul(c)
		if !ok {
			return FixedPoint[I, P]{}, ErrTooBigIntegral
		}
		return FixedPoint[I, P]{inner: z}, nil
	}

	n, ok := parseInteger[I](s[:pos])
	if !ok {
		return FixedPoint[I, P]{}, ErrIntegralPart
	}
	frac := s[pos+1:]
	for i := 0; i < len(frac); i++ {
		if frac[i] < '0' || frac[i] > '9' {
			return FixedPoint[I, P]{}, ErrFractionalDigits
		}
	}
	if len(frac) > digits[P]() {
		return FixedPoint[I, P]{}, ErrPrecisionTooHigh
	}
	f, ok := parseInteger[I](frac)
	if !ok {
		return FixedPoint[I, P]{}, ErrFractionalPart
	}

	n, ok = n.mul(c)
	if !ok {
		return FixedPoint[I, P]{}, ErrTooBigIntegral
	}
	e, _ := c.pow10(len(frac))
	u, _ := c.quoRem(e)
	f, _ = f.mul(u)
	if s[0] == '-' {
		f, _ = f.neg()
	}
	z, ok := n.add(f)
	if !ok {
		return FixedPoint[I, P]{}, ErrTooBigNumber
	}
	return FixedPoint[I, P]{inner: z}, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of f.
// The fractional part is always present and has no trailing zeros,
// so one is rendered as "1.0" and minus one half as "-0.5".
func (f FixedPoint[I, P]) String() string {
	return string(f.appendText(make([]byte, 0, 48)))
}

func (f FixedPoint[I, P]) appendText(b []byte) []byte {
	q, r := f.inner.quoRem(coef[I, P]())
	if f.inner.sign() < 0 {
		b = append(b, '-')
	}
	b = q.appendAbs(b)
	b = append(b, '.')
	if r.sign() == 0 {
		return append(b, '0')
	}
	var buf [40]byte
	frac := r.appendAbs(buf[:0])
	width := digits[P]()
	for frac[len(frac)-1] == '0' {
		frac = frac[:len(frac)-1]
		width--
	}
	for i := len(frac); i < width; i++ {
		b = append(b, '0')
	}
	return append(b, frac...)
}

// Float64 returns a binary floating-point approximation of f.
// The integral and the fractional parts are converted separately.
func (f FixedPoint[I, P]) Float64() float64 {
	c := coef[I, P]()
	q, r := f.inner.quoRem(c)
	return q.float64() + r.float64()/c.float64()
}

// FromFloat64 converts a float64 to a fixed-point number.
// The value is rendered with 15 significant digits, but no more than P
// fractional digits, and then parsed.
//
// FromFloat64 returns an error if:
//   - v is NaN or infinite ([ErrNotFinite]);
//   - the value does not fit the type (see [Parse]).
func FromFloat64[I Integer[I], P Precision](v float64) (FixedPoint[I, P], error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return FixedPoint[I, P]{}, ErrNotFinite
	}
	prec := 15
	if e := math.Ceil(math.Log10(math.Abs(v))); e > 0 {
		prec = max(prec-int(e), 0)
	}
	prec = min(prec, digits[P]())
	return Parse[I, P](strconv.FormatFloat(v, 'f', prec, 64))
}
