package fixnum

import "github.com/holiman/uint256"

// wide is a signed 256-bit integer in sign and magnitude form.
// It holds the double-width intermediates of [I64] and [I128].
// The zero value is 0, and zero is never negative.
type wide struct {
	neg bool
	mag uint256.Int
}

func wideFromInt64(v int64) wide {
	if v < 0 {
		return wide{neg: true, mag: uint256.Int{-uint64(v), 0, 0, 0}}
	}
	return wide{mag: uint256.Int{uint64(v), 0, 0, 0}}
}

func wideFromI128(x I128) wide {
	if x.isNeg() {
		m := x.negRaw()
		return wide{neg: true, mag: uint256.Int{m.lo, m.hi, 0, 0}}
	}
	return wide{mag: uint256.Int{x.lo, x.hi, 0, 0}}
}

func (x wide) sign() int {
	switch {
	case x.mag.IsZero():
		return 0
	case x.neg:
		return -1
	}
	return 1
}

func (x wide) cmp(y wide) int {
	sx, sy := x.sign(), y.sign()
	switch {
	case sx < sy:
		return -1
	case sx > sy:
		return 1
	}
	c := x.mag.Cmp(&y.mag)
	if x.neg {
		return -c
	}
	return c
}

func (x wide) abs() wide {
	x.neg = false
	return x
}

// mul calculates x * y and reports false if the magnitude of the product
// exceeds 256 bits.
func (x wide) mul(y wide) (wide, bool) {
	var z wide
	_, overflow := z.mag.MulOverflow(&x.mag, &y.mag)
	z.neg = x.neg != y.neg && !z.mag.IsZero()
	return z, !overflow
}

// quoRem calculates q = trunc(x / y) and r = x - y * q.
// y must not be zero.
func (x wide) quoRem(y wide) (q, r wide) {
	q.mag.DivMod(&x.mag, &y.mag, &r.mag)
	q.neg = x.neg != y.neg && !q.mag.IsZero()
	r.neg = x.neg && !r.mag.IsZero()
	return q, r
}

// quoRound calculates x / y rounded by mode.
// y must not be zero.
func (x wide) quoRound(y wide, mode RoundMode) wide {
	q, r := x.quoRem(y)
	if r.sign() != 0 {
		if s := x.sign() * y.sign(); mode.adjusts(s) {
			q = q.step(s)
		}
	}
	return q
}

// step moves x by one unit in the direction of sign.
// x must be zero or have the same sign.
func (x wide) step(sign int) wide {
	x.mag.AddUint64(&x.mag, 1)
	x.neg = sign < 0
	return x
}

// sqrt calculates the square root of x rounded by mode.
// x must not be negative.
func (x wide) sqrt(mode RoundMode) wide {
	var z wide
	var sq uint256.Int
	z.mag.Sqrt(&x.mag)
	sq.Mul(&z.mag, &z.mag)
	if !sq.Eq(&x.mag) && mode.adjusts(1) {
		z.mag.AddUint64(&z.mag, 1)
	}
	return z
}

// i128 converts x to [I128] and reports false if x does not fit.
func (x wide) i128() (I128, bool) {
	if x.mag[2] != 0 || x.mag[3] != 0 {
		return I128{}, false
	}
	z := I128{hi: x.mag[1], lo: x.mag[0]}
	if !x.neg {
		if z.isNeg() {
			return I128{}, false
		}
		return z, true
	}
	if z.hi > 1<<63 || (z.hi == 1<<63 && z.lo != 0) {
		return I128{}, false
	}
	return z.negRaw(), true
}

// int64 converts x to int64 and reports false if x does not fit.
func (x wide) int64() (int64, bool) {
	if !x.mag.IsUint64() {
		return 0, false
	}
	m := x.mag.Uint64()
	if !x.neg {
		if m > 1<<63-1 {
			return 0, false
		}
		return int64(m), true
	}
	if m > 1<<63 {
		return 0, false
	}
	return int64(-m), true
}

// String returns the decimal representation of x.
func (x wide) String() string {
	if x.sign() < 0 {
		return "-" + x.mag.Dec()
	}
	return x.mag.Dec()
}
