package fixnum

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding fixed-point
// numbers.
func MustParse[I Integer[I], P Precision](s string) FixedPoint[I, P] {
	f, err := Parse[I, P](s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return f
}

// MustFromDecimal is like [FromDecimal] but panics if the conversion fails.
func MustFromDecimal[I Integer[I], P Precision](mantissa I, exponent int) FixedPoint[I, P] {
	f, err := FromDecimal[I, P](mantissa, exponent)
	if err != nil {
		panic(fmt.Sprintf("MustFromDecimal(%v, %v) failed: %v", mantissa, exponent, err))
	}
	return f
}

// MustAdd is like [FixedPoint.Add] but panics if computing error.
func (f FixedPoint[I, P]) MustAdd(g FixedPoint[I, P]) FixedPoint[I, P] {
	z, err := f.Add(g)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", g, err))
	}
	return z
}

// MustSub is like [FixedPoint.Sub] but panics if computing error.
func (f FixedPoint[I, P]) MustSub(g FixedPoint[I, P]) FixedPoint[I, P] {
	z, err := f.Sub(g)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", g, err))
	}
	return z
}

// MustMul is like [FixedPoint.Mul] but panics if computing error.
func (f FixedPoint[I, P]) MustMul(g FixedPoint[I, P], mode RoundMode) FixedPoint[I, P] {
	z, err := f.Mul(g, mode)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v, %v) failed: %v", g, mode, err))
	}
	return z
}

// MustQuo is like [FixedPoint.Quo] but panics if computing error.
func (f FixedPoint[I, P]) MustQuo(g FixedPoint[I, P], mode RoundMode) FixedPoint[I, P] {
	z, err := f.Quo(g, mode)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v, %v) failed: %v", g, mode, err))
	}
	return z
}
