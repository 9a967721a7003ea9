package fixnum

import (
	"encoding/binary"
	"math"
	"math/bits"
)

// I128 is a signed 128-bit two's complement integer, the backing integer of
// the widest fixed-point types. Its products and quotients are computed in
// 256 bits.
//
// The zero value is 0.
type I128 struct {
	hi uint64
	lo uint64
}

var (
	minI128 = I128{hi: 1 << 63}
	maxI128 = I128{hi: math.MaxInt64, lo: math.MaxUint64}
)

// pow10I128 is a cache of powers of 10 up to the largest one that fits I128.
var pow10I128 = newPow10I128()

func newPow10I128() [39]I128 {
	var t [39]I128
	t[0] = I128FromInt64(1)
	ten := I128FromInt64(10)
	for i := 1; i < len(t); i++ {
		t[i], _ = t[i-1].mul(ten)
	}
	return t
}

// I128FromInt64 converts an int64 to I128.
func I128FromInt64(v int64) I128 {
	return I128{hi: uint64(v >> 63), lo: uint64(v)}
}

// I128FromRaw returns the integer hi * 2^64 + lo.
func I128FromRaw(hi int64, lo uint64) I128 {
	return I128{hi: uint64(hi), lo: lo}
}

// Raw returns the high and low 64-bit halves of x, such that
// x = hi * 2^64 + lo.
func (x I128) Raw() (hi int64, lo uint64) {
	return int64(x.hi), x.lo
}

// Int64 converts x to int64 and reports false if x does not fit.
func (x I128) Int64() (int64, bool) {
	if x.hi != uint64(int64(x.lo)>>63) {
		return 0, false
	}
	return int64(x.lo), true
}

// Sign returns -1 if x < 0, 0 if x == 0 and +1 if x > 0.
func (x I128) Sign() int {
	switch {
	case x.isNeg():
		return -1
	case x.hi == 0 && x.lo == 0:
		return 0
	}
	return 1
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x I128) Cmp(y I128) int {
	xh, yh := int64(x.hi), int64(y.hi)
	switch {
	case xh < yh:
		return -1
	case xh > yh:
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	}
	return 0
}

// String returns the decimal representation of x.
func (x I128) String() string {
	b := make([]byte, 0, 40)
	if x.isNeg() {
		b = append(b, '-')
	}
	return string(x.appendAbs(b))
}

func (x I128) isNeg() bool {
	return int64(x.hi) < 0
}

// negRaw returns -x in two's complement, the minimum value maps to itself.
func (x I128) negRaw() I128 {
	lo, carry := bits.Add64(^x.lo, 1, 0)
	return I128{hi: ^x.hi + carry, lo: lo}
}

func (I128) bounds() (I128, I128) { return minI128, maxI128 }

func (I128) pow10(n int) (I128, bool) {
	if n < 0 || n >= len(pow10I128) {
		return I128{}, false
	}
	return pow10I128[n], true
}

func (x I128) powerAt(lz int) (I128, bool) {
	if lz < 0 || lz >= len(power128) {
		return I128{}, false
	}
	return x.pow10(power128[lz])
}

func (x I128) sign() int      { return x.Sign() }
func (x I128) cmp(y I128) int { return x.Cmp(y) }

// float64 converts the magnitude and then applies the sign.
func (x I128) float64() float64 {
	m := wideFromI128(x).mag
	f := float64(m[1])*0x1p64 + float64(m[0])
	if x.isNeg() {
		return -f
	}
	return f
}

func (x I128) leadingZeros() int {
	if x.hi != 0 {
		return bits.LeadingZeros64(x.hi)
	}
	return 64 + bits.LeadingZeros64(x.lo)
}

// add calculates x + y and checks overflow.
func (x I128) add(y I128) (I128, bool) {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	hi, _ := bits.Add64(x.hi, y.hi, carry)
	z := I128{hi: hi, lo: lo}
	if x.isNeg() == y.isNeg() && z.isNeg() != x.isNeg() {
		return I128{}, false
	}
	return z, true
}

// sub calculates x - y and checks overflow.
func (x I128) sub(y I128) (I128, bool) {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)
	hi, _ := bits.Sub64(x.hi, y.hi, borrow)
	z := I128{hi: hi, lo: lo}
	if x.isNeg() != y.isNeg() && z.isNeg() != x.isNeg() {
		return I128{}, false
	}
	return z, true
}

// mul calculates x * y and checks overflow.
func (x I128) mul(y I128) (I128, bool) {
	z, _ := wideFromI128(x).mul(wideFromI128(y))
	return z.i128()
}

func (x I128) neg() (I128, bool) {
	if x == minI128 {
		return I128{}, false
	}
	return x.negRaw(), true
}

// quoRem calculates q = trunc(x / y) and r = x - y * q.
// y must not be zero and the quotient must fit I128.
func (x I128) quoRem(y I128) (q, r I128) {
	wq, wr := wideFromI128(x).quoRem(wideFromI128(y))
	q, _ = wq.i128()
	r, _ = wr.i128()
	return q, r
}

func (x I128) mulQuo(y, d I128, mode RoundMode) (I128, bool) {
	n, _ := wideFromI128(x).mul(wideFromI128(y))
	return n.quoRound(wideFromI128(d), mode).i128()
}

func (x I128) quo(y I128, mode RoundMode) (I128, bool) {
	return wideFromI128(x).quoRound(wideFromI128(y), mode).i128()
}

func (x I128) sqrtMul(c I128, mode RoundMode) I128 {
	n, _ := wideFromI128(x).mul(wideFromI128(c))
	z, ok := n.sqrt(mode).i128()
	if !ok {
		panic("fixnum: square root does not fit the backing integer")
	}
	return z
}

func (I128) fromInt64(v int64) (I128, bool) {
	return I128FromInt64(v), true
}

func (I128) fromUint64(v uint64) (I128, bool) {
	return I128{lo: v}, true
}

func (x I128) int64() (int64, bool) {
	return x.Int64()
}

func (x I128) appendAbs(b []byte) []byte {
	m := wideFromI128(x).mag
	return append(b, m.Dec()...)
}

func (x I128) appendBytes(b []byte) []byte {
	b = binary.BigEndian.AppendUint64(b, x.hi)
	return binary.BigEndian.AppendUint64(b, x.lo)
}

func (I128) fromBytes(b []byte) (I128, bool) {
	if len(b) != 16 {
		return I128{}, false
	}
	return I128{hi: binary.BigEndian.Uint64(b[:8]), lo: binary.BigEndian.Uint64(b[8:])}, true
}
