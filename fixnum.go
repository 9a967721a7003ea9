package fixnum

import "fmt"

// FixedPoint is a representation of a fixed-point decimal number.
// It is stored as a backing integer I scaled by 10^P, so the numeric value
// of a fixed-point number is inner / 10^P.
// The zero value is the numeric value of 0.
// It is safe for concurrent use by multiple goroutines.
//
// Fixed-point numbers of different precisions or backing integers are
// different types and cannot be mixed.
type FixedPoint[I Integer[I], P Precision] struct {
	inner I
}

// coef returns 10^P as the backing integer.
// It panics if the precision is too high for the backing integer.
func coef[I Integer[I], P Precision]() I {
	var (
		x I
		p P
	)
	c, ok := x.pow10(p.Digits())
	if !ok {
		panic(fmt.Sprintf("fixnum: precision %v is too high for %T", p.Digits(), x))
	}
	return c
}

func digits[P Precision]() int {
	var p P
	return p.Digits()
}

// FromBits returns a fixed-point number with the given raw scaled value.
func FromBits[I Integer[I], P Precision](raw I) FixedPoint[I, P] {
	return FixedPoint[I, P]{inner: raw}
}

// Bits returns the raw scaled value of f.
func (f FixedPoint[I, P]) Bits() I {
	return f.inner
}

// Precision returns the number of digits after the decimal point.
func (FixedPoint[I, P]) Precision() int {
	return digits[P]()
}

// Coef returns the scale 10^P as the backing integer.
func (FixedPoint[I, P]) Coef() I {
	return coef[I, P]()
}

// Zero returns a fixed-point number with a value of 0.
func (FixedPoint[I, P]) Zero() FixedPoint[I, P] {
	return FixedPoint[I, P]{}
}

// One returns a fixed-point number with a value of 1.
func (FixedPoint[I, P]) One() FixedPoint[I, P] {
	return FixedPoint[I, P]{inner: coef[I, P]()}
}

// Epsilon returns the smallest representable positive fixed-point number.
func (FixedPoint[I, P]) Epsilon() FixedPoint[I, P] {
	var x I
	e, _ := x.fromInt64(1)
	return FixedPoint[I, P]{inner: e}
}

// Min returns the smallest representable fixed-point number.
func (FixedPoint[I, P]) Min() FixedPoint[I, P] {
	var x I
	m, _ := x.bounds()
	return FixedPoint[I, P]{inner: m}
}

// Max returns the largest representable fixed-point number.
func (FixedPoint[I, P]) Max() FixedPoint[I, P] {
	var x I
	_, m := x.bounds()
	return FixedPoint[I, P]{inner: m}
}

// Add returns the exact sum f + g.
//
// Add returns [Overflow] if the sum does not fit the backing integer.
func (f FixedPoint[I, P]) Add(g FixedPoint[I, P]) (FixedPoint[I, P], error) {
	z, ok := f.inner.add(g.inner)
	if !ok {
		return FixedPoint[I, P]{}, Overflow
	}
	return FixedPoint[I, P]{inner: z}, nil
}

// Sub returns the exact difference f - g.
//
// Sub returns [Overflow] if the difference does not fit the backing integer.
func (f FixedPoint[I, P]) Sub(g FixedPoint[I, P]) (FixedPoint[I, P], error) {
	z, ok := f.inner.sub(g.inner)
	if !ok {
		return FixedPoint[I, P]{}, Overflow
	}
	return FixedPoint[I, P]{inner: z}, nil
}

// Neg returns -f.
// Neg returns [Overflow] if f is the minimum value.
func (f FixedPoint[I, P]) Neg() (FixedPoint[I, P], error) {
	z, ok := f.inner.neg()
	if !ok {
		return FixedPoint[I, P]{}, Overflow
	}
	return FixedPoint[I, P]{inner: z}, nil
}

// Abs returns the absolute value of f.
// Abs returns [Overflow] if f is the minimum value.
func (f FixedPoint[I, P]) Abs() (FixedPoint[I, P], error) {
	if f.inner.sign() >= 0 {
		return f, nil
	}
	return f.Neg()
}

// MulInt returns the exact product f * k.
//
// MulInt returns [Overflow] if the product does not fit the backing integer.
func (f FixedPoint[I, P]) MulInt(k I) (FixedPoint[I, P], error) {
	z, ok := f.inner.mul(k)
	if !ok {
		return FixedPoint[I, P]{}, Overflow
	}
	return FixedPoint[I, P]{inner: z}, nil
}

// IntMul returns the exact product k * f.
// See [FixedPoint.MulInt].
func IntMul[I Integer[I], P Precision](k I, f FixedPoint[I, P]) (FixedPoint[I, P], error) {
	return f.MulInt(k)
}

// SaturatingAdd returns f + g clamped to the range of the type.
func (f FixedPoint[I, P]) SaturatingAdd(g FixedPoint[I, P]) FixedPoint[I, P] {
	z, ok := f.inner.add(g.inner)
	if !ok {
		return f.saturate(g.inner.sign())
	}
	return FixedPoint[I, P]{inner: z}
}

// SaturatingSub returns f - g clamped to the range of the type.
func (f FixedPoint[I, P]) SaturatingSub(g FixedPoint[I, P]) FixedPoint[I, P] {
	z, ok := f.inner.sub(g.inner)
	if !ok {
		return f.saturate(-g.inner.sign())
	}
	return FixedPoint[I, P]{inner: z}
}

// SaturatingMulInt returns f * k clamped to the range of the type.
func (f FixedPoint[I, P]) SaturatingMulInt(k I) FixedPoint[I, P] {
	z, ok := f.inner.mul(k)
	if !ok {
		return f.saturate(f.inner.sign() * k.sign())
	}
	return FixedPoint[I, P]{inner: z}
}

// SaturatingMul returns f * g rounded by mode and clamped to the range of
// the type.
func (f FixedPoint[I, P]) SaturatingMul(g FixedPoint[I, P], mode RoundMode) FixedPoint[I, P] {
	z, err := f.Mul(g, mode)
	if err != nil {
		return f.saturate(f.inner.sign() * g.inner.sign())
	}
	return z
}

// saturate returns the maximum value for a positive sign and the minimum
// value otherwise.
func (f FixedPoint[I, P]) saturate(sign int) FixedPoint[I, P] {
	if sign > 0 {
		return f.Max()
	}
	return f.Min()
}

// Mul returns the product f * g rounded by mode.
// The product is computed in double width, so it is correctly rounded
// whenever the rounded result fits the backing integer.
//
// Mul returns [Overflow] if the rounded product does not fit.
func (f FixedPoint[I, P]) Mul(g FixedPoint[I, P], mode RoundMode) (FixedPoint[I, P], error) {
	z, ok := f.inner.mulQuo(g.inner, coef[I, P](), mode)
	if !ok {
		return FixedPoint[I, P]{}, Overflow
	}
	return FixedPoint[I, P]{inner: z}, nil
}

// Quo returns the quotient f / g rounded by mode.
//
// Quo returns an error if:
//   - g is zero ([DivisionByZero]);
//   - the rounded quotient does not fit the backing integer ([Overflow]).
func (f FixedPoint[I, P]) Quo(g FixedPoint[I, P], mode RoundMode) (FixedPoint[I, P], error) {
	if g.inner.sign() == 0 {
		return FixedPoint[I, P]{}, DivisionByZero
	}
	z, ok := f.inner.mulQuo(coef[I, P](), g.inner, mode)
	if !ok {
		return FixedPoint[I, P]{}, Overflow
	}
	return FixedPoint[I, P]{inner: z}, nil
}

// QuoInt returns the quotient f / k rounded by mode.
//
// QuoInt returns an error if:
//   - k is zero ([DivisionByZero]);
//   - f is the minimum value and k is -1 ([Overflow]).
func (f FixedPoint[I, P]) QuoInt(k I, mode RoundMode) (FixedPoint[I, P], error) {
	if k.sign() == 0 {
		return FixedPoint[I, P]{}, DivisionByZero
	}
	z, ok := f.inner.quo(k, mode)
	if !ok {
		return FixedPoint[I, P]{}, Overflow
	}
	return FixedPoint[I, P]{inner: z}, nil
}

// IntQuo returns the quotient k / f rounded by mode.
//
// IntQuo returns an error if:
//   - f is zero ([DivisionByZero]);
//   - k or the rounded quotient does not fit the type ([Overflow]).
func IntQuo[I Integer[I], P Precision](k I, f FixedPoint[I, P], mode RoundMode) (FixedPoint[I, P], error) {
	if f.inner.sign() == 0 {
		return FixedPoint[I, P]{}, DivisionByZero
	}
	n, ok := k.mul(coef[I, P]())
	if !ok {
		return FixedPoint[I, P]{}, Overflow
	}
	return FixedPoint[I, P]{inner: n}.Quo(f, mode)
}

// Inv returns the reciprocal 1 / f rounded by mode.
func (f FixedPoint[I, P]) Inv(mode RoundMode) (FixedPoint[I, P], error) {
	return f.One().Quo(f, mode)
}

// Sqrt returns the square root of f rounded by mode.
// The radicand is computed in double width, so the result is exact up to
// the final rounding.
//
// Sqrt returns [DomainViolation] if f is negative.
func (f FixedPoint[I, P]) Sqrt(mode RoundMode) (FixedPoint[I, P], error) {
	if f.inner.sign() < 0 {
		return FixedPoint[I, P]{}, DomainViolation
	}
	return FixedPoint[I, P]{inner: f.inner.sqrtMul(coef[I, P](), mode)}, nil
}

// Integral returns the integral part of f rounded by mode.
// For example, the integral part of -8273.519 is -8274 when rounding with
// [Floor] and -8273 when rounding with [Ceil].
func (f FixedPoint[I, P]) Integral(mode RoundMode) I {
	q, r := f.inner.quoRem(coef[I, P]())
	if r.sign() != 0 {
		if s := f.inner.sign(); mode.adjusts(s) {
			u, _ := q.fromInt64(int64(s))
			q, _ = q.add(u)
		}
	}
	return q
}

// Int64 returns the integral part of f rounded by mode as an int64.
// Int64 returns [Overflow] if the integral part does not fit.
func (f FixedPoint[I, P]) Int64(mode RoundMode) (int64, error) {
	n, ok := f.Integral(mode).int64()
	if !ok {
		return 0, Overflow
	}
	return n, nil
}

// HalfSum returns (a + b) / 2 rounded by mode.
// It never overflows, even when a + b does not fit the type.
func HalfSum[I Integer[I], P Precision](a, b FixedPoint[I, P], mode RoundMode) FixedPoint[I, P] {
	var x I
	two, _ := x.fromInt64(2)
	if a.inner.sign() != b.inner.sign() {
		// Operands of different signs cannot overflow.
		s, _ := a.inner.add(b.inner)
		z, _ := s.quo(two, mode)
		return FixedPoint[I, P]{inner: z}
	}
	lo, hi := a.inner, b.inner
	if lo.cmp(hi) > 0 {
		lo, hi = hi, lo
	}
	d, _ := hi.sub(lo)
	if lo.sign() < 0 {
		// The half difference is taken with the sign of the mean.
		d, _ = d.neg()
		h, _ := d.quo(two, mode)
		z, _ := hi.add(h)
		return FixedPoint[I, P]{inner: z}
	}
	h, _ := d.quo(two, mode)
	z, _ := lo.add(h)
	return FixedPoint[I, P]{inner: z}
}

// NextPowerOfTen returns the smallest power of ten not less than f.
// For negative f it returns the negation of the next power of ten of -f.
// Zero is mapped to the raw value 1, the smallest power of ten of the
// backing integer.
//
// NextPowerOfTen returns [Overflow] if the power of ten does not fit.
func (f FixedPoint[I, P]) NextPowerOfTen() (FixedPoint[I, P], error) {
	if f.inner.sign() < 0 {
		n, err := f.Neg()
		if err != nil {
			return FixedPoint[I, P]{}, err
		}
		n, err = n.NextPowerOfTen()
		if err != nil {
			return FixedPoint[I, P]{}, err
		}
		return n.Neg()
	}
	lz := f.inner.leadingZeros()
	v, ok := f.inner.powerAt(lz)
	if ok && f.inner.cmp(v) > 0 {
		v, ok = f.inner.powerAt(lz - 1)
	}
	if !ok {
		return FixedPoint[I, P]{}, Overflow
	}
	return FixedPoint[I, P]{inner: v}, nil
}

// TruncBy rounds f towards zero to a multiple of step.
// It returns f unchanged if step is zero or the multiple does not fit.
func (f FixedPoint[I, P]) TruncBy(step FixedPoint[I, P]) FixedPoint[I, P] {
	if step.inner.sign() == 0 {
		return f
	}
	q, ok := f.inner.quo(step.inner, TowardZero)
	if !ok {
		return f
	}
	z, ok := q.mul(step.inner)
	if !ok {
		return f
	}
	return FixedPoint[I, P]{inner: z}
}

// Cmp compares f and g and returns:
//
//	-1 if f < g
//	 0 if f == g
//	+1 if f > g
func (f FixedPoint[I, P]) Cmp(g FixedPoint[I, P]) int {
	return f.inner.cmp(g.inner)
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f == 0
//	+1 if f > 0
func (f FixedPoint[I, P]) Sign() int {
	return f.inner.sign()
}

// IsZero returns true if f == 0.
func (f FixedPoint[I, P]) IsZero() bool {
	return f.inner.sign() == 0
}

// IsNeg returns true if f < 0.
func (f FixedPoint[I, P]) IsNeg() bool {
	return f.inner.sign() < 0
}

// IsPos returns true if f > 0.
func (f FixedPoint[I, P]) IsPos() bool {
	return f.inner.sign() > 0
}
