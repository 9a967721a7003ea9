package fixnum

import (
	"encoding/binary"
	"math"
	"math/bits"
	"strconv"
)

// Integer is a constraint satisfied by the backing integers of [FixedPoint]:
// [I16], [I32], [I64] and [I128].
// The set is closed, its methods are not exported.
type Integer[I any] interface {
	comparable

	bounds() (min, max I)
	pow10(n int) (I, bool)
	powerAt(lz int) (I, bool)

	sign() int
	cmp(y I) int
	leadingZeros() int

	add(y I) (I, bool)
	sub(y I) (I, bool)
	mul(y I) (I, bool)
	neg() (I, bool)
	quoRem(y I) (q, r I)

	// mulQuo calculates x * y / d rounded by mode in double width.
	mulQuo(y, d I, mode RoundMode) (I, bool)
	// quo calculates x / y rounded by mode.
	quo(y I, mode RoundMode) (I, bool)
	// sqrtMul calculates the square root of x * c rounded by mode.
	// x and c must not be negative.
	sqrtMul(c I, mode RoundMode) I

	fromInt64(v int64) (I, bool)
	fromUint64(v uint64) (I, bool)
	int64() (int64, bool)
	float64() float64
	appendAbs(b []byte) []byte
	appendBytes(b []byte) []byte
	fromBytes(b []byte) (I, bool)
}

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]uint64{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// native is a type set of the backing integers implemented on Go integers.
type native interface {
	~int16 | ~int32 | ~int64
}

// I16 is a 16-bit backing integer. Its intermediates are computed in int32.
type I16 int16

// I32 is a 32-bit backing integer. Its intermediates are computed in int64.
type I32 int32

// I64 is a 64-bit backing integer. Its products are computed with
// [bits.Mul64] and divided with [bits.Div64].
type I64 int64

func (I16) bounds() (I16, I16) { return math.MinInt16, math.MaxInt16 }

func (I16) pow10(n int) (I16, bool)     { return nativePow10[I16](n, math.MaxInt16) }
func (I16) powerAt(lz int) (I16, bool)  { return nativePowerAt[I16](power16, lz, math.MaxInt16) }
func (x I16) sign() int                 { return signOf(x) }
func (x I16) cmp(y I16) int             { return cmpOf(x, y) }
func (x I16) leadingZeros() int         { return bits.LeadingZeros16(uint16(x)) }
func (x I16) add(y I16) (I16, bool)     { return addOf(x, y) }
func (x I16) sub(y I16) (I16, bool)     { return subOf(x, y) }
func (x I16) mul(y I16) (I16, bool)     { return mulOf(x, y, math.MinInt16) }
func (x I16) neg() (I16, bool)          { return negOf(x, math.MinInt16) }
func (x I16) quoRem(y I16) (I16, I16)   { return x / y, x % y }
func (x I16) int64() (int64, bool)      { return int64(x), true }
func (x I16) float64() float64          { return float64(x) }
func (x I16) appendAbs(b []byte) []byte { return strconv.AppendUint(b, absOf(x), 10) }

func (x I16) mulQuo(y, d I16, mode RoundMode) (I16, bool) {
	return mulQuoOf[I16, int32](x, y, d, mode)
}

func (x I16) quo(y I16, mode RoundMode) (I16, bool) {
	return quoOf(x, y, math.MinInt16, mode)
}

func (x I16) sqrtMul(c I16, mode RoundMode) I16 {
	return sqrtMulOf[I16, int32](x, c, mode)
}

func (I16) fromInt64(v int64) (I16, bool) {
	return narrowOf[I16](v)
}

func (I16) fromUint64(v uint64) (I16, bool) {
	if v > math.MaxInt16 {
		return 0, false
	}
	return I16(v), true
}

func (x I16) appendBytes(b []byte) []byte {
	return binary.BigEndian.AppendUint16(b, uint16(x))
}

func (I16) fromBytes(b []byte) (I16, bool) {
	if len(b) != 2 {
		return 0, false
	}
	return I16(binary.BigEndian.Uint16(b)), true
}

func (I32) bounds() (I32, I32) { return math.MinInt32, math.MaxInt32 }

func (I32) pow10(n int) (I32, bool)     { return nativePow10[I32](n, math.MaxInt32) }
func (I32) powerAt(lz int) (I32, bool)  { return nativePowerAt[I32](power32, lz, math.MaxInt32) }
func (x I32) sign() int                 { return signOf(x) }
func (x I32) cmp(y I32) int             { return cmpOf(x, y) }
func (x I32) leadingZeros() int         { return bits.LeadingZeros32(uint32(x)) }
func (x I32) add(y I32) (I32, bool)     { return addOf(x, y) }
func (x I32) sub(y I32) (I32, bool)     { return subOf(x, y) }
func (x I32) mul(y I32) (I32, bool)     { return mulOf(x, y, math.MinInt32) }
func (x I32) neg() (I32, bool)          { return negOf(x, math.MinInt32) }
func (x I32) quoRem(y I32) (I32, I32)   { return x / y, x % y }
func (x I32) int64() (int64, bool)      { return int64(x), true }
func (x I32) float64() float64          { return float64(x) }
func (x I32) appendAbs(b []byte) []byte { return strconv.AppendUint(b, absOf(x), 10) }

func (x I32) mulQuo(y, d I32, mode RoundMode) (I32, bool) {
	return mulQuoOf[I32, int64](x, y, d, mode)
}

func (x I32) quo(y I32, mode RoundMode) (I32, bool) {
	return quoOf(x, y, math.MinInt32, mode)
}

func (x I32) sqrtMul(c I32, mode RoundMode) I32 {
	return sqrtMulOf[I32, int64](x, c, mode)
}

func (I32) fromInt64(v int64) (I32, bool) {
	return narrowOf[I32](v)
}

func (I32) fromUint64(v uint64) (I32, bool) {
	if v > math.MaxInt32 {
		return 0, false
	}
	return I32(v), true
}

func (x I32) appendBytes(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, uint32(x))
}

func (I32) fromBytes(b []byte) (I32, bool) {
	if len(b) != 4 {
		return 0, false
	}
	return I32(binary.BigEndian.Uint32(b)), true
}

func (I64) bounds() (I64, I64) { return math.MinInt64, math.MaxInt64 }

func (I64) pow10(n int) (I64, bool)     { return nativePow10[I64](n, math.MaxInt64) }
func (I64) powerAt(lz int) (I64, bool)  { return nativePowerAt[I64](power64, lz, math.MaxInt64) }
func (x I64) sign() int                 { return signOf(x) }
func (x I64) cmp(y I64) int             { return cmpOf(x, y) }
func (x I64) leadingZeros() int         { return bits.LeadingZeros64(uint64(x)) }
func (x I64) add(y I64) (I64, bool)     { return addOf(x, y) }
func (x I64) sub(y I64) (I64, bool)     { return subOf(x, y) }
func (x I64) mul(y I64) (I64, bool)     { return mulOf(x, y, math.MinInt64) }
func (x I64) neg() (I64, bool)          { return negOf(x, math.MinInt64) }
func (x I64) quoRem(y I64) (I64, I64)   { return x / y, x % y }
func (x I64) int64() (int64, bool)      { return int64(x), true }
func (x I64) float64() float64          { return float64(x) }
func (x I64) appendAbs(b []byte) []byte { return strconv.AppendUint(b, absOf(x), 10) }

func (x I64) quo(y I64, mode RoundMode) (I64, bool) {
	return quoOf(x, y, math.MinInt64, mode)
}

// mulQuo multiplies magnitudes into 128 bits and divides them by the
// magnitude of d, the sign is restored after rounding.
func (x I64) mulQuo(y, d I64, mode RoundMode) (I64, bool) {
	hi, lo := bits.Mul64(absOf(x), absOf(y))
	m := absOf(d)
	if hi >= m {
		return 0, false
	}
	q, r := bits.Div64(hi, lo, m)
	s := signOf(x) * signOf(y) * signOf(d)
	if r != 0 && mode.adjusts(s) {
		if q == math.MaxUint64 {
			return 0, false
		}
		q++
	}
	if s < 0 {
		if q > 1<<63 {
			return 0, false
		}
		return I64(-q), true
	}
	if q > math.MaxInt64 {
		return 0, false
	}
	return I64(q), true
}

func (x I64) sqrtMul(c I64, mode RoundMode) I64 {
	n, _ := wideFromInt64(int64(x)).mul(wideFromInt64(int64(c)))
	z, ok := n.sqrt(mode).int64()
	if !ok {
		panic("fixnum: square root does not fit the backing integer")
	}
	return I64(z)
}

func (I64) fromInt64(v int64) (I64, bool) {
	return I64(v), true
}

func (I64) fromUint64(v uint64) (I64, bool) {
	if v > math.MaxInt64 {
		return 0, false
	}
	return I64(v), true
}

func (x I64) appendBytes(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, uint64(x))
}

func (I64) fromBytes(b []byte) (I64, bool) {
	if len(b) != 8 {
		return 0, false
	}
	return I64(binary.BigEndian.Uint64(b)), true
}

func signOf[T native](x T) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

func cmpOf[T native](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// absOf returns the magnitude of x, it is exact for the minimum value too.
func absOf[T native](x T) uint64 {
	if x < 0 {
		return -uint64(x)
	}
	return uint64(x)
}

// addOf calculates x + y and checks overflow.
func addOf[T native](x, y T) (T, bool) {
	z := x + y
	if (y > 0 && z < x) || (y < 0 && z > x) {
		return 0, false
	}
	return z, true
}

// subOf calculates x - y and checks overflow.
func subOf[T native](x, y T) (T, bool) {
	z := x - y
	if (y > 0 && z > x) || (y < 0 && z < x) {
		return 0, false
	}
	return z, true
}

// mulOf calculates x * y and checks overflow.
func mulOf[T native](x, y, min T) (T, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if (x == -1 && y == min) || (y == -1 && x == min) {
		return 0, false
	}
	z := x * y
	if z/y != x {
		return 0, false
	}
	return z, true
}

func negOf[T native](x, min T) (T, bool) {
	if x == min {
		return 0, false
	}
	return -x, true
}

// narrowOf converts v to T and reports false if the value changes.
func narrowOf[T, W native](v W) (T, bool) {
	z := T(v)
	if W(z) != v {
		return 0, false
	}
	return z, true
}

// quoOf calculates x / y rounded by mode without promotion.
// y must not be zero.
func quoOf[T native](x, y, min T, mode RoundMode) (T, bool) {
	if x == min && y == -1 {
		return 0, false
	}
	q, r := x/y, x%y
	if r != 0 {
		if s := signOf(x) * signOf(y); mode.adjusts(s) {
			return addOf(q, T(s))
		}
	}
	return q, true
}

// mulQuoOf calculates x * y / d rounded by mode in the promoted type W.
// d must not be zero.
func mulQuoOf[T, W native](x, y, d T, mode RoundMode) (T, bool) {
	n, m := W(x)*W(y), W(d)
	q, r := n/m, n%m
	if r != 0 {
		if s := signOf(n) * signOf(m); mode.adjusts(s) {
			q += W(s)
		}
	}
	return narrowOf[T](q)
}

// sqrtMulOf calculates the square root of x * c rounded by mode in the
// promoted type W.
func sqrtMulOf[T, W native](x, c T, mode RoundMode) T {
	root, rem := sqrt64(uint64(W(x) * W(c)))
	if rem != 0 && mode.adjusts(1) {
		root++
	}
	z, ok := narrowOf[T](W(root))
	if !ok {
		panic("fixnum: square root does not fit the backing integer")
	}
	return z
}

// sqrt64 calculates the integer square root of n and the remainder
// n - root^2. n must be less than 2^63.
func sqrt64(n uint64) (root, rem uint64) {
	root = uint64(math.Sqrt(float64(n)))
	for root*root > n {
		root--
	}
	for (root+1)*(root+1) <= n {
		root++
	}
	return root, n - root*root
}

// nativePow10 returns 10^n and reports false if it exceeds max.
func nativePow10[T native](n int, max T) (T, bool) {
	if n < 0 || n >= len(pow10) || pow10[n] > uint64(max) {
		return 0, false
	}
	return T(pow10[n]), true
}

func nativePowerAt[T native](t []int, lz int, max T) (T, bool) {
	if lz < 0 || lz >= len(t) {
		return 0, false
	}
	return nativePow10(t[lz], max)
}

// parseInteger converts a string of decimal digits with an optional sign
// to a backing integer. Digits are accumulated as a negative number, so the
// minimum value is reachable.
func parseInteger[I Integer[I]](s string) (I, bool) {
	var z, zero I
	neg := false
	if s != "" {
		switch s[0] {
		case '-':
			neg = true
			s = s[1:]
		case '+':
			s = s[1:]
		}
	}
	if s == "" {
		return zero, false
	}
	ten, _ := zero.fromInt64(10)
	var ok bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return zero, false
		}
		d, _ := zero.fromInt64(int64(c - '0'))
		if z, ok = z.mul(ten); !ok {
			return zero, false
		}
		if z, ok = z.sub(d); !ok {
			return zero, false
		}
	}
	if !neg {
		return z.neg()
	}
	return z, true
}
