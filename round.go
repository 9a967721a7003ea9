package fixnum

import "fmt"

// RoundMode selects how operations round results that are not exactly
// representable with the precision of the fixed-point type.
//
// The zero value is [TowardZero].
type RoundMode int8

const (
	// Floor rounds towards negative infinity.
	Floor RoundMode = -1
	// TowardZero truncates the result.
	TowardZero RoundMode = 0
	// Ceil rounds towards positive infinity.
	Ceil RoundMode = 1
	// AwayFromZero rounds towards the infinity of the same sign as the result.
	AwayFromZero RoundMode = 2
)

// adjusts reports whether a truncated inexact result of the given sign
// has to be moved by one unit in the direction of that sign.
func (m RoundMode) adjusts(sign int) bool {
	switch m {
	case Floor:
		return sign < 0
	case Ceil:
		return sign > 0
	case AwayFromZero:
		return sign != 0
	}
	return false
}

// String implements the [fmt.Stringer] interface.
func (m RoundMode) String() string {
	switch m {
	case Floor:
		return "Floor"
	case TowardZero:
		return "TowardZero"
	case Ceil:
		return "Ceil"
	case AwayFromZero:
		return "AwayFromZero"
	}
	return fmt.Sprintf("RoundMode(%d)", int8(m))
}
