package fixnum

import (
	"math"
	"math/big"
	"testing"
)

var roundModes = []RoundMode{Floor, TowardZero, Ceil, AwayFromZero}

// bigQuoRound calculates n / d rounded by mode.
func bigQuoRound(n, d *big.Int, mode RoundMode) *big.Int {
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))
	if r.Sign() == 0 {
		return q
	}
	neg := (n.Sign() < 0) != (d.Sign() < 0)
	switch mode {
	case Floor:
		if neg {
			q.Sub(q, big.NewInt(1))
		}
	case Ceil:
		if !neg {
			q.Add(q, big.NewInt(1))
		}
	case AwayFromZero:
		if neg {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return q
}

// bigSqrtRound calculates the square root of n rounded by mode.
func bigSqrtRound(n *big.Int, mode RoundMode) *big.Int {
	z := new(big.Int).Sqrt(n)
	if new(big.Int).Mul(z, z).Cmp(n) != 0 && (mode == Ceil || mode == AwayFromZero) {
		z.Add(z, big.NewInt(1))
	}
	return z
}

// bigFits reports whether z fits a signed bits-wide integer.
func bigFits(z *big.Int, bits int) bool {
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	return z.Cmp(new(big.Int).Neg(limit)) >= 0 && z.Cmp(limit) < 0
}

func TestRoundMode_adjusts(t *testing.T) {
	tests := []struct {
		mode           RoundMode
		neg, zero, pos bool
	}{
		{Floor, true, false, false},
		{TowardZero, false, false, false},
		{Ceil, false, false, true},
		{AwayFromZero, true, false, true},
		{RoundMode(42), false, false, false},
	}
	for _, tt := range tests {
		if got := tt.mode.adjusts(-1); got != tt.neg {
			t.Errorf("%v.adjusts(-1) = %v, want %v", tt.mode, got, tt.neg)
		}
		if got := tt.mode.adjusts(0); got != tt.zero {
			t.Errorf("%v.adjusts(0) = %v, want %v", tt.mode, got, tt.zero)
		}
		if got := tt.mode.adjusts(1); got != tt.pos {
			t.Errorf("%v.adjusts(1) = %v, want %v", tt.mode, got, tt.pos)
		}
	}
}

func TestRoundMode_String(t *testing.T) {
	tests := []struct {
		mode RoundMode
		want string
	}{
		{Floor, "Floor"},
		{TowardZero, "TowardZero"},
		{Ceil, "Ceil"},
		{AwayFromZero, "AwayFromZero"},
		{RoundMode(7), "RoundMode(7)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("RoundMode(%d).String() = %q, want %q", int8(tt.mode), got, tt.want)
		}
	}
}

func TestNative_add(t *testing.T) {
	tests := []struct {
		x, y I16
		want I16
		ok   bool
	}{
		{1, 2, 3, true},
		{math.MaxInt16, 0, math.MaxInt16, true},
		{math.MaxInt16, 1, 0, false},
		{math.MinInt16, -1, 0, false},
		{math.MinInt16, math.MaxInt16, -1, true},
		{-5, 3, -2, true},
	}
	for _, tt := range tests {
		got, ok := tt.x.add(tt.y)
		if got != tt.want || ok != tt.ok {
			t.Errorf("%v.add(%v) = %v, %v, want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNative_sub(t *testing.T) {
	tests := []struct {
		x, y I32
		want I32
		ok   bool
	}{
		{1, 2, -1, true},
		{math.MinInt32, 1, 0, false},
		{math.MaxInt32, -1, 0, false},
		{0, math.MinInt32, 0, false},
		{-1, math.MinInt32, math.MaxInt32, true},
	}
	for _, tt := range tests {
		got, ok := tt.x.sub(tt.y)
		if got != tt.want || ok != tt.ok {
			t.Errorf("%v.sub(%v) = %v, %v, want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNative_mul(t *testing.T) {
	tests := []struct {
		x, y I64
		want I64
		ok   bool
	}{
		{0, math.MinInt64, 0, true},
		{-1, math.MaxInt64, -math.MaxInt64, true},
		{-1, math.MinInt64, 0, false},
		{math.MinInt64, -1, 0, false},
		{math.MinInt64, 1, math.MinInt64, true},
		{1 << 32, 1 << 31, 0, false},
		{1 << 31, 1 << 31, 1 << 62, true},
		{-(1 << 31), 1 << 32, math.MinInt64, true},
	}
	for _, tt := range tests {
		got, ok := tt.x.mul(tt.y)
		if got != tt.want || ok != tt.ok {
			t.Errorf("%v.mul(%v) = %v, %v, want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNative_neg(t *testing.T) {
	if _, ok := I16(math.MinInt16).neg(); ok {
		t.Errorf("I16(%v).neg() did not fail", math.MinInt16)
	}
	if got, ok := I32(math.MaxInt32).neg(); !ok || got != -math.MaxInt32 {
		t.Errorf("I32(%v).neg() = %v, %v, want %v, true", math.MaxInt32, got, ok, -math.MaxInt32)
	}
}

func TestNative_absOf(t *testing.T) {
	tests := []struct {
		x    I64
		want uint64
	}{
		{0, 0},
		{-1, 1},
		{math.MaxInt64, math.MaxInt64},
		{math.MinInt64, 1 << 63},
	}
	for _, tt := range tests {
		if got := absOf(tt.x); got != tt.want {
			t.Errorf("absOf(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestNative_quo(t *testing.T) {
	tests := []struct {
		x, y I16
		mode RoundMode
		want I16
		ok   bool
	}{
		{7, 2, Floor, 3, true},
		{7, 2, Ceil, 4, true},
		{-7, 2, Floor, -4, true},
		{-7, 2, Ceil, -3, true},
		{-7, 2, TowardZero, -3, true},
		{-7, 2, AwayFromZero, -4, true},
		{7, -2, AwayFromZero, -4, true},
		{6, 2, AwayFromZero, 3, true},
		{math.MinInt16, -1, Floor, 0, false},
		{math.MinInt16, 1, Floor, math.MinInt16, true},
	}
	for _, tt := range tests {
		got, ok := tt.x.quo(tt.y, tt.mode)
		if got != tt.want || ok != tt.ok {
			t.Errorf("%v.quo(%v, %v) = %v, %v, want %v, %v", tt.x, tt.y, tt.mode, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSqrt64(t *testing.T) {
	tests := []uint64{0, 1, 2, 3, 4, 15, 16, 17, 1<<62 - 1, 1 << 62, 1<<63 - 1, 999999999999999999}
	for _, n := range tests {
		root, rem := sqrt64(n)
		want := new(big.Int).Sqrt(new(big.Int).SetUint64(n))
		if root != want.Uint64() {
			t.Errorf("sqrt64(%v) = %v, want %v", n, root, want)
			continue
		}
		if root*root+rem != n {
			t.Errorf("sqrt64(%v) remainder = %v, want %v", n, rem, n-root*root)
		}
	}
}

func TestNativePow10(t *testing.T) {
	tests := []struct {
		n    int
		want I32
		ok   bool
	}{
		{-1, 0, false},
		{0, 1, true},
		{9, 1_000_000_000, true},
		{10, 0, false},
	}
	for _, tt := range tests {
		got, ok := I32(0).pow10(tt.n)
		if got != tt.want || ok != tt.ok {
			t.Errorf("I32.pow10(%v) = %v, %v, want %v, %v", tt.n, got, ok, tt.want, tt.ok)
		}
	}
	if _, ok := I64(0).pow10(19); ok {
		t.Errorf("I64.pow10(19) did not fail")
	}
	if got, ok := I64(0).pow10(18); !ok || got != 1e18 {
		t.Errorf("I64.pow10(18) = %v, %v, want 1e18, true", got, ok)
	}
}

func TestPowerTable(t *testing.T) {
	for _, bits := range []int{16, 32, 64, 128} {
		table := powerTable(bits)
		if len(table) != bits+1 {
			t.Errorf("len(powerTable(%v)) = %v, want %v", bits, len(table), bits+1)
			continue
		}
		limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
		for lz, k := range table {
			low := big.NewInt(1)
			if n := bits - 1 - lz; n > 0 {
				low.Lsh(low, uint(n))
			}
			want := 0
			p := big.NewInt(1)
			for p.Cmp(low) < 0 {
				p.Mul(p, big.NewInt(10))
				want++
			}
			if p.Cmp(limit) >= 0 {
				want = -1
			}
			if k != want {
				t.Errorf("powerTable(%v)[%v] = %v, want %v", bits, lz, k, want)
			}
		}
	}
}

func TestParseInteger(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want I16
		}{
			{"0", 0},
			{"-0", 0},
			{"+7", 7},
			{"0000123", 123},
			{"32767", math.MaxInt16},
			{"-32768", math.MinInt16},
		}
		for _, tt := range tests {
			got, ok := parseInteger[I16](tt.s)
			if !ok || got != tt.want {
				t.Errorf("parseInteger(%q) = %v, %v, want %v, true", tt.s, got, ok, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"",
			"-",
			"+",
			"--1",
			"1-",
			"1.0",
			" 1",
			"32768",
			"-32769",
			"1e3",
		}
		for _, s := range tests {
			_, ok := parseInteger[I16](s)
			if ok {
				t.Errorf("parseInteger(%q) did not fail", s)
			}
		}
	})
}

func FuzzI16_mulQuo(f *testing.F) {
	for _, x := range []int16{math.MinInt16, -1000, -7, -1, 0, 1, 7, 1000, math.MaxInt16} {
		for _, d := range []int16{math.MinInt16, -3, -1, 1, 3, 1000} {
			f.Add(x, int16(10), d, int8(Floor))
		}
	}

	f.Fuzz(
		func(t *testing.T, x, y, d int16, m int8) {
			if d == 0 {
				t.Skip()
				return
			}
			mode := RoundMode(m)
			got, ok := I16(x).mulQuo(I16(y), I16(d), mode)
			n := new(big.Int).Mul(big.NewInt(int64(x)), big.NewInt(int64(y)))
			want := bigQuoRound(n, big.NewInt(int64(d)), mode)
			if !want.IsInt64() || want.Int64() < math.MinInt16 || want.Int64() > math.MaxInt16 {
				if ok {
					t.Errorf("I16(%v).mulQuo(%v, %v, %v) = %v, want overflow", x, y, d, mode, got)
				}
				return
			}
			if !ok || int64(got) != want.Int64() {
				t.Errorf("I16(%v).mulQuo(%v, %v, %v) = %v, %v, want %v", x, y, d, mode, got, ok, want)
			}
		},
	)
}

func FuzzI32_mulQuo(f *testing.F) {
	for _, x := range []int32{math.MinInt32, -1_000_000, -7, -1, 0, 1, 7, 1_000_000, math.MaxInt32} {
		for _, d := range []int32{math.MinInt32, -3, -1, 1, 3, 1_000_000} {
			f.Add(x, int32(1_000_000), d, int8(Ceil))
		}
	}

	f.Fuzz(
		func(t *testing.T, x, y, d int32, m int8) {
			if d == 0 {
				t.Skip()
				return
			}
			mode := RoundMode(m)
			got, ok := I32(x).mulQuo(I32(y), I32(d), mode)
			n := new(big.Int).Mul(big.NewInt(int64(x)), big.NewInt(int64(y)))
			want := bigQuoRound(n, big.NewInt(int64(d)), mode)
			if !want.IsInt64() || want.Int64() < math.MinInt32 || want.Int64() > math.MaxInt32 {
				if ok {
					t.Errorf("I32(%v).mulQuo(%v, %v, %v) = %v, want overflow", x, y, d, mode, got)
				}
				return
			}
			if !ok || int64(got) != want.Int64() {
				t.Errorf("I32(%v).mulQuo(%v, %v, %v) = %v, %v, want %v", x, y, d, mode, got, ok, want)
			}
		},
	)
}

func FuzzI64_mulQuo(f *testing.F) {
	for _, x := range []int64{math.MinInt64, -1e18, -7, -1, 0, 1, 7, 1e18, math.MaxInt64} {
		for _, d := range []int64{math.MinInt64, -3, -1, 1, 3, 1e9} {
			f.Add(x, int64(1e9), d, int8(AwayFromZero))
		}
	}

	f.Fuzz(
		func(t *testing.T, x, y, d int64, m int8) {
			if d == 0 {
				t.Skip()
				return
			}
			mode := RoundMode(m)
			got, ok := I64(x).mulQuo(I64(y), I64(d), mode)
			n := new(big.Int).Mul(big.NewInt(x), big.NewInt(y))
			want := bigQuoRound(n, big.NewInt(d), mode)
			if !want.IsInt64() {
				if ok {
					t.Errorf("I64(%v).mulQuo(%v, %v, %v) = %v, want overflow", x, y, d, mode, got)
				}
				return
			}
			if !ok || int64(got) != want.Int64() {
				t.Errorf("I64(%v).mulQuo(%v, %v, %v) = %v, %v, want %v", x, y, d, mode, got, ok, want)
			}
		},
	)
}

func FuzzI64_quo(f *testing.F) {
	for _, x := range []int64{math.MinInt64, -7, 0, 7, math.MaxInt64} {
		for _, y := range []int64{math.MinInt64, -2, -1, 1, 2, math.MaxInt64} {
			f.Add(x, y, int8(Floor))
		}
	}

	f.Fuzz(
		func(t *testing.T, x, y int64, m int8) {
			if y == 0 {
				t.Skip()
				return
			}
			mode := RoundMode(m)
			got, ok := I64(x).quo(I64(y), mode)
			want := bigQuoRound(big.NewInt(x), big.NewInt(y), mode)
			if !want.IsInt64() {
				if ok {
					t.Errorf("I64(%v).quo(%v, %v) = %v, want overflow", x, y, mode, got)
				}
				return
			}
			if !ok || int64(got) != want.Int64() {
				t.Errorf("I64(%v).quo(%v, %v) = %v, %v, want %v", x, y, mode, got, ok, want)
			}
		},
	)
}

func FuzzNative_sqrtMul(f *testing.F) {
	for _, x := range []int64{0, 1, 2, 3, 1e9, math.MaxInt32, math.MaxInt64} {
		f.Add(x, int8(Floor))
		f.Add(x, int8(Ceil))
	}

	f.Fuzz(
		func(t *testing.T, x int64, m int8) {
			if x < 0 {
				t.Skip()
				return
			}
			mode := RoundMode(m)
			n := new(big.Int).Mul(big.NewInt(x), big.NewInt(1e9))
			want := bigSqrtRound(n, mode)
			if got := I64(x).sqrtMul(1e9, mode); int64(got) != want.Int64() {
				t.Errorf("I64(%v).sqrtMul(1e9, %v) = %v, want %v", x, mode, got, want)
			}
			if x > math.MaxInt32 {
				return
			}
			n = new(big.Int).Mul(big.NewInt(x), big.NewInt(1e6))
			want = bigSqrtRound(n, mode)
			if got := I32(x).sqrtMul(1e6, mode); int64(got) != want.Int64() {
				t.Errorf("I32(%v).sqrtMul(1e6, %v) = %v, want %v", x, mode, got, want)
			}
		},
	)
}
