package fixnum

import "github.com/holiman/uint256"

// Exponents of the least powers of ten not less than the smallest positive
// integer with a given number of leading zeros, per backing width.
var (
	power16  = powerTable(16)
	power32  = powerTable(32)
	power64  = powerTable(64)
	power128 = powerTable(128)
)

// powerTable returns t, where 10^t[lz] is the least power of ten not less than
// 2^(bits-1-lz), the smallest positive integer with lz leading zeros in a
// bits-wide integer. t[bits] describes zero and holds 10^0.
// t[lz] is -1 when the power of ten exceeds the maximum signed bits-wide integer.
func powerTable(bits int) []int {
	ten := uint256.NewInt(10)
	limit := new(uint256.Int).Lsh(uint256.NewInt(1), uint(bits-1))
	t := make([]int, bits+1)
	for lz := range t {
		k, p := 0, uint256.NewInt(1)
		if n := bits - 1 - lz; n > 0 {
			low := new(uint256.Int).Lsh(uint256.NewInt(1), uint(n))
			for p.Lt(low) {
				p.Mul(p, ten)
				k++
			}
		}
		if !p.Lt(limit) {
			k = -1
		}
		t[lz] = k
	}
	return t
}
